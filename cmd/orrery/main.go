// Command orrery renders and explores a procedurally generated solar system.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	configPath  string
	outputDir   string
	width       int
	height      int
	supersample int
	frames      int
	workers     int
	seed        int64
	systems     int
	backdrop    string
	textureDir  string
	attach      int
	stare       bool
	metricsAddr string
)

var rootCmd = &cobra.Command{
	Use:   "orrery",
	Short: "Solar system scene renderer",
	Long: `Orrery builds a hierarchy of orbiting bodies (a home system of nine
bodies plus randomly generated suns), animates it and renders it with a
software rasterizer. Frames can be written to disk or explored in a window.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "Path to config.json")
	pf.StringVar(&outputDir, "output", "", "Output directory")
	pf.IntVar(&width, "width", 0, "Frame width in pixels")
	pf.IntVar(&height, "height", 0, "Frame height in pixels")
	pf.IntVar(&supersample, "supersample", 0, "Supersampling factor")
	pf.IntVar(&frames, "frames", 0, "Number of frames to render")
	pf.IntVar(&workers, "workers", 0, "Encoder workers (default: NumCPU)")
	pf.Int64Var(&seed, "seed", 0, "Random seed for generated systems and stars")
	pf.IntVar(&systems, "systems", 0, "Random suns to generate (negative for none)")
	pf.StringVar(&backdrop, "backdrop", "", "Backdrop image")
	pf.StringVar(&textureDir, "textures", "", "Texture directory")
	pf.IntVar(&attach, "attach", -1, "Attach the camera to home body N (0 is the sun)")
	pf.BoolVar(&stare, "stare", false, "Look at the home system origin")
	pf.StringVar(&metricsAddr, "metrics", "", "Serve Prometheus metrics on this address")

	rootCmd.AddCommand(renderCmd, viewCmd, inspectCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
