package main

import (
	"fmt"
	"math/rand"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"orrery/internal/camera"
	"orrery/internal/config"
	"orrery/internal/frame"
	"orrery/internal/generate"
	"orrery/internal/input"
	"orrery/internal/metrics"
	"orrery/internal/overlay"
	"orrery/internal/scene"
	"orrery/internal/starfield"
	"orrery/internal/texture"
)

// session is everything a subcommand needs to animate and draw the scene.
type session struct {
	cfg     config.Config
	system  *scene.System
	comp    *frame.Composer
	ctl     *input.Controller
	clock   overlay.Clock
	metrics *metrics.Collector
	server  *http.Server
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	var cfg config.Config
	if configPath != "" {
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return cfg, err
		}
	}

	flags := config.Flags{
		OutputDir:   outputDir,
		Width:       width,
		Height:      height,
		Supersample: supersample,
		Frames:      frames,
		Workers:     workers,
		Seed:        seed,
		Systems:     systems,
		Backdrop:    backdrop,
		TextureDir:  textureDir,
		Stare:       stare,
		MetricsAddr: metricsAddr,
	}
	if cmd.Flags().Changed("attach") {
		flags.Attach = &attach
	}
	cfg.Resolve(flags)
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func newSession(cfg config.Config) (*session, error) {
	sys := generate.Build(generate.Settings{
		Seed:     cfg.Seed,
		Systems:  cfg.Systems,
		Textures: cfg.Textures,
	})

	var stars *starfield.Field
	if cfg.Stars > 0 {
		stars = starfield.Generate(rand.New(rand.NewSource(cfg.Seed)), cfg.Stars, starfield.DefaultSpace)
	}

	settings := frame.Settings{
		Width:       cfg.Width,
		Height:      cfg.Height,
		Supersample: cfg.Supersample,
		StackDepth:  cfg.StackDepth,
	}
	if cfg.TextureDir != "" {
		idx := texture.BuildIndex(cfg.TextureDir)
		fmt.Printf("Textures: %d indexed in %s\n", idx.Len(), cfg.TextureDir)
		settings.Textures = texture.NewCache(idx, 0)
	}
	if cfg.Backdrop != "" {
		img, err := texture.LoadTexture(cfg.Backdrop)
		if err != nil {
			return nil, fmt.Errorf("backdrop: %w", err)
		}
		settings.Backdrop = img
	}

	comp, err := frame.NewComposer(sys, stars, settings)
	if err != nil {
		return nil, err
	}

	cam := camera.New(comp.Aspect(), cfg.Far)
	cam.Fov = cfg.Fov
	ctl := input.New(cam, sys)
	ctl.Options = scene.Options{
		Spinning:     *cfg.Spinning,
		Trajectories: *cfg.Trajectories,
		Axes:         *cfg.Axes,
	}
	ctl.Staring = cfg.Stare
	if n := *cfg.Attach; n >= 0 && !ctl.Attach(n) {
		return nil, fmt.Errorf("attach %d: only bodies 0-%d are selectable", n, sys.Len()-1)
	}

	epoch, err := cfg.EpochTime()
	if err != nil {
		return nil, err
	}

	s := &session{
		cfg:    cfg,
		system: sys,
		comp:   comp,
		ctl:    ctl,
		clock:  overlay.NewClock(epoch, cfg.TickStep()),
	}
	if cfg.MetricsAddr != "" {
		s.metrics = metrics.NewCollector(prometheus.DefaultRegisterer)
		s.server = metrics.Serve(cfg.MetricsAddr, prometheus.DefaultGatherer)
		fmt.Printf("Metrics: http://%s/metrics\n", cfg.MetricsAddr)
	}
	return s, nil
}

func (s *session) close() {
	if s.server != nil {
		s.server.Close()
	}
}
