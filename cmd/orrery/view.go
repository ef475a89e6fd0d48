package main

import (
	"github.com/spf13/cobra"

	"orrery/internal/viewer"
)

var viewCmd = &cobra.Command{
	Use:   "view",
	Short: "Explore the scene in a window",
	Long: `View opens an interactive window. Type the help keys shown in the
overlay to fly the camera, attach to a body or toggle display options.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		s, err := newSession(cfg)
		if err != nil {
			return err
		}
		defer s.close()

		g := viewer.New(s.system, s.comp, s.ctl, s.clock, s.metrics, cfg.Width, cfg.Height)
		return viewer.Run(g, "Solar System")
	},
}
