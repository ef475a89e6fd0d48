package config

import (
	"encoding/json"
	"fmt"
	"os"
	"runtime"
	"time"
)

// Config holds all output, scene and camera settings.
type Config struct {
	// Output
	OutputDir     string `json:"output_dir"`
	Width         int    `json:"width"`
	Height        int    `json:"height"`
	Supersample   int    `json:"supersample"`
	Frames        int    `json:"frames"`
	TicksPerFrame int    `json:"ticks_per_frame"`
	Workers       int    `json:"workers"`
	Overlay       *bool  `json:"overlay"`

	// Scene. Negative Systems or Stars disable them.
	Seed       int64             `json:"seed"`
	Systems    int               `json:"systems"`
	Stars      int               `json:"stars"`
	Backdrop   string            `json:"backdrop"`
	TextureDir string            `json:"texture_dir"`
	Textures   map[string]string `json:"textures"` // body name → texture name

	// Camera and display
	Fov          float64 `json:"fov"`
	Far          float64 `json:"far"`
	Attach       *int    `json:"attach"`
	Stare        bool    `json:"stare"`
	Spinning     *bool   `json:"spinning"`
	Trajectories *bool   `json:"trajectories"`
	Axes         *bool   `json:"axes"`

	// Clock
	Epoch       string  `json:"epoch"` // RFC3339
	TickMinutes float64 `json:"tick_minutes"`

	StackDepth  int    `json:"stack_depth"`
	MetricsAddr string `json:"metrics_addr"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
// Zero values and nil pointers leave the file setting alone.
type Flags struct {
	OutputDir   string
	Width       int
	Height      int
	Supersample int
	Frames      int
	Workers     int
	Seed        int64
	Systems     int
	Backdrop    string
	TextureDir  string
	Attach      *int
	Stare       bool
	MetricsAddr string
}

func boolPtr(b bool) *bool { return &b }

// Resolve fills in any empty fields with defaults.
// CLI flags take priority when non-zero/non-empty.
func (c *Config) Resolve(flags Flags) {
	// CLI flags override config file
	if flags.OutputDir != "" {
		c.OutputDir = flags.OutputDir
	}
	if flags.Width > 0 {
		c.Width = flags.Width
	}
	if flags.Height > 0 {
		c.Height = flags.Height
	}
	if flags.Supersample > 0 {
		c.Supersample = flags.Supersample
	}
	if flags.Frames > 0 {
		c.Frames = flags.Frames
	}
	if flags.Workers > 0 {
		c.Workers = flags.Workers
	}
	if flags.Seed != 0 {
		c.Seed = flags.Seed
	}
	if flags.Systems != 0 {
		c.Systems = flags.Systems
	}
	if flags.Backdrop != "" {
		c.Backdrop = flags.Backdrop
	}
	if flags.TextureDir != "" {
		c.TextureDir = flags.TextureDir
	}
	if flags.Attach != nil {
		a := *flags.Attach
		c.Attach = &a
	}
	if flags.Stare {
		c.Stare = true
	}
	if flags.MetricsAddr != "" {
		c.MetricsAddr = flags.MetricsAddr
	}

	// Defaults
	if c.OutputDir == "" {
		c.OutputDir = "frames"
	}
	if c.Width <= 0 {
		c.Width = 640
	}
	if c.Height <= 0 {
		c.Height = 360
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.Frames <= 0 {
		c.Frames = 120
	}
	if c.TicksPerFrame <= 0 {
		c.TicksPerFrame = 1
	}
	if c.Workers <= 0 {
		c.Workers = runtime.NumCPU()
	}
	if c.Overlay == nil {
		c.Overlay = boolPtr(true)
	}
	if c.Seed == 0 {
		c.Seed = 1
	}
	if c.Systems == 0 {
		c.Systems = 24
	} else if c.Systems < 0 {
		c.Systems = 0
	}
	if c.Stars == 0 {
		c.Stars = 10000
	} else if c.Stars < 0 {
		c.Stars = 0
	}
	if c.Fov <= 0 {
		c.Fov = 75
	}
	if c.Far <= 0 {
		c.Far = 4000
	}
	if c.Attach == nil {
		a := -1
		c.Attach = &a
	}
	if c.Spinning == nil {
		c.Spinning = boolPtr(true)
	}
	if c.Trajectories == nil {
		c.Trajectories = boolPtr(true)
	}
	if c.Axes == nil {
		c.Axes = boolPtr(true)
	}
	if c.TickMinutes <= 0 {
		c.TickMinutes = 60
	}
	if c.StackDepth <= 0 {
		c.StackDepth = 32
	}
}

// Validate reports settings that cannot be rendered. Call after Resolve.
func (c *Config) Validate() error {
	if c.Width > 8192 || c.Height > 8192 {
		return fmt.Errorf("config: frame %dx%d too large", c.Width, c.Height)
	}
	if c.Supersample > 8 {
		return fmt.Errorf("config: supersample %d out of range 1-8", c.Supersample)
	}
	if c.Fov > 180 {
		return fmt.Errorf("config: fov %v out of range 0-180", c.Fov)
	}
	if _, err := c.EpochTime(); err != nil {
		return err
	}
	return nil
}

// EpochTime parses Epoch. An empty epoch returns the zero time.
func (c *Config) EpochTime() (time.Time, error) {
	if c.Epoch == "" {
		return time.Time{}, nil
	}
	t, err := time.Parse(time.RFC3339, c.Epoch)
	if err != nil {
		return time.Time{}, fmt.Errorf("config: parse epoch %q: %w", c.Epoch, err)
	}
	return t, nil
}

// TickStep is the simulated time per tick.
func (c *Config) TickStep() time.Duration {
	return time.Duration(c.TickMinutes * float64(time.Minute))
}
