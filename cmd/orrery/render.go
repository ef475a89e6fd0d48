package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"orrery/internal/batch"
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render an animation to WebP frames",
	Long: `Render advances the animation and writes one WebP image per frame to the
output directory, followed by a manifest.json describing each frame.`,
	Args: cobra.NoArgs,
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	fmt.Printf("Bodies: %d (%d suns, %d selectable), depth %d\n",
		s.system.Count(), len(s.system.Suns()), s.system.Len(), s.system.Depth())
	fmt.Printf("Frames: %d, Workers: %d, Size: %dx%d (x%d)\n",
		cfg.Frames, cfg.Workers, cfg.Width, cfg.Height, cfg.Supersample)
	fmt.Printf("Output: %s\n", cfg.OutputDir)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	start := time.Now()
	results, runErr := batch.Run(ctx, batch.Config{
		OutputDir:     cfg.OutputDir,
		Frames:        cfg.Frames,
		TicksPerFrame: cfg.TicksPerFrame,
		Workers:       cfg.Workers,
		Overlay:       *cfg.Overlay,
		Clock:         s.clock,
		Metrics:       s.metrics,
		Progress:      2 * time.Second,
	}, s.system, s.comp, s.ctl)
	elapsed := time.Since(start)

	rendered := 0
	var failed []batch.Result
	for _, r := range results {
		if r.Success {
			rendered++
		} else {
			failed = append(failed, r)
		}
	}

	fmt.Printf("\nDone in %.1fs\n", elapsed.Seconds())
	fmt.Printf("  Rendered: %d/%d\n", rendered, len(results))
	if len(failed) > 0 {
		fmt.Printf("  Failed:   %d\n", len(failed))
		limit := min(len(failed), 10)
		for _, r := range failed[:limit] {
			fmt.Printf("  %s: %s\n", r.File, r.Error)
		}
	}

	if len(results) > 0 {
		manifestPath := filepath.Join(cfg.OutputDir, "manifest.json")
		if err := batch.WriteManifest(manifestPath, results, s.clock); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: manifest write failed: %v\n", err)
		} else {
			fmt.Printf("Manifest: %s\n", manifestPath)
		}
	}

	if runErr != nil {
		return runErr
	}
	if len(failed) > 0 {
		return fmt.Errorf("%d frames failed", len(failed))
	}
	return nil
}
