// Package batch renders an animation offline: frames are composed in tick
// order on one goroutine and encoded to WebP by a worker pool.
package batch

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"golang.org/x/sync/errgroup"

	"orrery/internal/frame"
	"orrery/internal/input"
	"orrery/internal/metrics"
	"orrery/internal/overlay"
	"orrery/internal/scene"
)

// Config holds all shared settings for a batch run.
type Config struct {
	OutputDir     string
	Frames        int
	TicksPerFrame int
	Workers       int
	Overlay       bool
	Clock         overlay.Clock
	Metrics       *metrics.Collector // optional
	Progress      time.Duration      // 0 disables the progress ticker
}

// Result holds the outcome of one frame.
type Result struct {
	Frame     int
	Tick      int
	File      string
	Attached  string
	Triangles int
	Success   bool
	Error     string
}

type job struct {
	result Result
	img    *image.NRGBA
}

// FileName is the output name of frame i.
func FileName(i int) string {
	return fmt.Sprintf("frame_%05d.webp", i)
}

// Run renders cfg.Frames frames of sys as seen through ctl, advancing the
// animation cfg.TicksPerFrame ticks between frames. Frame 0 shows the
// initial state. The first write error cancels the run and is returned
// alongside the results gathered so far.
func Run(ctx context.Context, cfg Config, sys *scene.System, comp *frame.Composer, ctl *input.Controller) ([]Result, error) {
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	if err := os.MkdirAll(cfg.OutputDir, 0755); err != nil {
		return nil, fmt.Errorf("batch: create %s: %w", cfg.OutputDir, err)
	}

	total := cfg.Frames
	results := make([]Result, total)
	for i := range results {
		results[i] = Result{Frame: i, File: FileName(i), Error: "not rendered"}
	}
	var processed atomic.Int64

	start := time.Now()

	// Progress reporter
	done := make(chan struct{})
	defer close(done)
	if cfg.Progress > 0 {
		go func() {
			ticker := time.NewTicker(cfg.Progress)
			defer ticker.Stop()
			for {
				select {
				case <-done:
					return
				case <-ticker.C:
					p := processed.Load()
					if p > 0 {
						elapsed := time.Since(start).Seconds()
						rate := float64(p) / elapsed
						fmt.Printf("  [%d/%d] %.1f frames/sec\n", p, total, rate)
					}
				}
			}
		}()
	}

	g, ctx := errgroup.WithContext(ctx)
	jobs := make(chan job, cfg.Workers*2)

	// Producer: the scene is mutated by ticks, so frames are composed in order.
	g.Go(func() error {
		defer close(jobs)
		tick := 0
		for i := 0; i < total; i++ {
			if i > 0 {
				for k := 0; k < cfg.TicksPerFrame; k++ {
					sys.Tick(ctl.Options)
				}
				tick += cfg.TicksPerFrame
				cfg.Metrics.AddTicks(cfg.TicksPerFrame)
			}

			res := comp.Render(frame.ShotFrom(ctl, tick, cfg.Clock, cfg.Overlay))
			cfg.Metrics.RecordRender(res.Elapsed, res.Stats.Triangles)

			r := Result{Frame: i, Tick: tick, File: FileName(i), Triangles: res.Stats.Triangles}
			if b, ok := ctl.Selected(); ok {
				r.Attached = b.Name()
			}
			select {
			case jobs <- job{result: r, img: res.Image}:
			case <-ctx.Done():
				return ctx.Err()
			}
		}
		return nil
	})

	// Encoders
	for w := 0; w < cfg.Workers; w++ {
		g.Go(func() error {
			for j := range jobs {
				r := j.result
				err := writeFrame(filepath.Join(cfg.OutputDir, r.File), j.img)
				cfg.Metrics.RecordFrame(err)
				if err != nil {
					r.Error = err.Error()
					results[r.Frame] = r
					return err
				}
				r.Success = true
				r.Error = ""
				results[r.Frame] = r
				processed.Add(1)
			}
			return nil
		})
	}

	err := g.Wait()
	return results, err
}

func writeFrame(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("batch: create %s: %w", path, err)
	}
	if err := nativewebp.Encode(f, img, nil); err != nil {
		f.Close()
		return fmt.Errorf("batch: encode %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("batch: close %s: %w", path, err)
	}
	return nil
}
