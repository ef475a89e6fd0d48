// Package frame composes complete frames: backdrop, bodies, stars and the
// text overlay. Both the offline renderer and the viewer draw through it.
package frame

import (
	"fmt"
	"image"
	"time"

	"orrery/internal/input"
	"orrery/internal/mathutil"
	"orrery/internal/matstack"
	"orrery/internal/mesh"
	"orrery/internal/overlay"
	"orrery/internal/postprocess"
	"orrery/internal/raster"
	"orrery/internal/scene"
	"orrery/internal/starfield"
	"orrery/internal/texture"
)

// Settings are the output dimensions of a Composer.
type Settings struct {
	Width       int
	Height      int
	Supersample int
	StackDepth  int
	Backdrop    image.Image // optional; scaled to cover the frame
	Textures    texture.Resolver
}

// Shot is the camera and display state of one frame.
type Shot struct {
	View       mathutil.Mat4
	Projection mathutil.Mat4
	Eye        mathutil.Vec3
	Options    scene.Options
	Overlay    *overlay.State // nil draws no text
}

// ShotFrom captures the controller's current view.
func ShotFrom(ctl *input.Controller, tick int, clock overlay.Clock, text bool) Shot {
	s := Shot{
		View:       ctl.View(),
		Projection: ctl.Camera.Projection(),
		Eye:        ctl.Eye(),
		Options:    ctl.Options,
	}
	if text {
		sel, _ := ctl.Selected()
		s.Overlay = &overlay.State{
			Options:  ctl.Options,
			Staring:  ctl.Staring,
			Fov:      ctl.Camera.Fov,
			Selected: sel,
			Tick:     tick,
			Clock:    clock,
		}
	}
	return s
}

// Result is a composed frame and what it cost.
type Result struct {
	Image   *image.NRGBA
	Stats   raster.Stats
	Elapsed time.Duration
}

// Composer renders a system repeatedly into one reusable framebuffer. It is
// not safe for concurrent use.
type Composer struct {
	system   *scene.System
	stars    *starfield.Field
	settings Settings

	stack    *matstack.Stack
	fb       *raster.FrameBuffer
	renderer *raster.Renderer
}

// NewComposer validates s against the system and allocates buffers. The
// matrix stack must hold the deepest body chain plus the ring and axes
// helpers.
func NewComposer(sys *scene.System, stars *starfield.Field, s Settings) (*Composer, error) {
	if s.Width <= 0 || s.Height <= 0 {
		return nil, fmt.Errorf("frame: invalid size %dx%d", s.Width, s.Height)
	}
	if s.Supersample <= 0 {
		s.Supersample = 1
	}
	if s.StackDepth <= 0 {
		s.StackDepth = matstack.DefaultCapacity
	}
	if need := sys.Depth() + 2; s.StackDepth < need {
		return nil, fmt.Errorf("frame: stack depth %d too small for tree depth %d (need %d)", s.StackDepth, sys.Depth(), need)
	}

	fb := raster.NewFrameBuffer(s.Width*s.Supersample, s.Height*s.Supersample)
	return &Composer{
		system:   sys,
		stars:    stars,
		settings: s,
		stack:    matstack.New(s.StackDepth),
		fb:       fb,
		renderer: raster.NewRenderer(fb, mesh.NewLibrary(), s.Textures),
	}, nil
}

// Aspect is the output width over height.
func (c *Composer) Aspect() float64 {
	return float64(c.settings.Width) / float64(c.settings.Height)
}

// Render composes one frame. The returned image is owned by the caller.
func (c *Composer) Render(shot Shot) Result {
	start := time.Now()

	if c.settings.Backdrop != nil {
		c.fb.ClearDepth()
		postprocess.Cover(c.fb.Image(), c.settings.Backdrop)
	} else {
		c.fb.Fill(0, 0, 0, 255)
	}

	c.renderer.Stats = raster.Stats{}
	c.renderer.SetCamera(shot.View, shot.Projection, shot.Eye)
	c.system.Render(mathutil.Mat4Identity(), c.stack, shot.Options, c.renderer)
	if c.stars != nil {
		c.renderer.Stars(c.stars)
	}

	var img *image.NRGBA
	if c.settings.Supersample > 1 {
		img = postprocess.Downsample(c.fb.Image(), c.settings.Width, c.settings.Height)
	} else {
		src := c.fb.Image()
		img = image.NewNRGBA(src.Rect)
		copy(img.Pix, src.Pix)
	}

	if shot.Overlay != nil {
		overlay.Draw(img, *shot.Overlay)
	}

	return Result{Image: img, Stats: c.renderer.Stats, Elapsed: time.Since(start)}
}
