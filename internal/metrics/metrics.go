// Package metrics exposes render and animation counters to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector holds the orrery collectors. A nil *Collector records nothing.
type Collector struct {
	renderDuration prometheus.Histogram
	ticks          prometheus.Counter
	frames         *prometheus.CounterVec
	triangles      prometheus.Gauge
}

// NewCollector creates the collectors and registers them with reg.
func NewCollector(reg prometheus.Registerer) *Collector {
	m := &Collector{
		renderDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "orrery_frame_render_seconds",
				Help:    "Time spent rasterizing one frame",
				Buckets: prometheus.ExponentialBuckets(0.001, 2, 14),
			},
		),
		ticks: prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: "orrery_ticks_total",
				Help: "Animation steps applied to the scene",
			},
		),
		frames: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orrery_frames_total",
				Help: "Frames written, by outcome",
			},
			[]string{"status"},
		),
		triangles: prometheus.NewGauge(
			prometheus.GaugeOpts{
				Name: "orrery_frame_triangles",
				Help: "Triangles rasterized in the last frame",
			},
		),
	}

	reg.MustRegister(m.renderDuration, m.ticks, m.frames, m.triangles)
	return m
}

// RecordRender observes one composed frame.
func (m *Collector) RecordRender(d time.Duration, triangles int) {
	if m == nil {
		return
	}
	m.renderDuration.Observe(d.Seconds())
	m.triangles.Set(float64(triangles))
}

// AddTicks counts n animation steps.
func (m *Collector) AddTicks(n int) {
	if m == nil {
		return
	}
	m.ticks.Add(float64(n))
}

// RecordFrame counts an encoded frame; err marks it failed.
func (m *Collector) RecordFrame(err error) {
	if m == nil {
		return
	}
	status := "ok"
	if err != nil {
		status = "error"
	}
	m.frames.WithLabelValues(status).Inc()
}

// Serve exposes gatherer on addr under /metrics in the background. The
// returned server should be closed by the caller.
func Serve(addr string, gatherer prometheus.Gatherer) *http.Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}))
	srv := &http.Server{Addr: addr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			fmt.Printf("metrics: serve %s: %v\n", addr, err)
		}
	}()
	return srv
}
