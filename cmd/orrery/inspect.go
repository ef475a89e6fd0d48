package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"orrery/internal/mathutil"
	"orrery/internal/matstack"
	"orrery/internal/scene"
)

var inspectTicks int

var inspectCmd = &cobra.Command{
	Use:   "inspect",
	Short: "Print body locations after N ticks",
	Long: `Inspect advances the animation without drawing, runs one traversal and
prints the summary of every selectable body.`,
	Args: cobra.NoArgs,
	RunE: runInspect,
}

func init() {
	inspectCmd.Flags().IntVar(&inspectTicks, "ticks", 0, "Ticks to advance before the traversal")
}

func runInspect(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	s, err := newSession(cfg)
	if err != nil {
		return err
	}
	defer s.close()

	opts := s.ctl.Options
	opts.Spinning = true
	for i := 0; i < inspectTicks; i++ {
		s.system.Tick(opts)
	}

	var rec scene.Recorder
	stack := matstack.New(cfg.StackDepth)
	s.system.Render(mathutil.Mat4Identity(), stack, s.ctl.Options, &rec)

	fmt.Printf("Tick %d, %s (JD %.4f)\n", inspectTicks, s.clock.At(inspectTicks).Format("2006-01-02 15:04"), s.clock.JD(inspectTicks))
	fmt.Printf("Bodies: %d, draw calls: %d, lights: %d\n\n", s.system.Count(), len(rec.Calls), len(rec.Lights))
	for i := 0; i < s.system.Len(); i++ {
		b, _ := s.system.Body(i)
		fmt.Printf("[%d] angle %.1f, speed %.2f\n%s\n", i, b.Angle(), b.Speed(), b.Stats())
	}
	return nil
}
