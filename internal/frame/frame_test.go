package frame

import (
	"image"
	"image/color"
	"math/rand"
	"testing"
	"time"

	"orrery/internal/camera"
	"orrery/internal/generate"
	"orrery/internal/input"
	"orrery/internal/overlay"
	"orrery/internal/scene"
	"orrery/internal/starfield"
)

func TestNewComposerChecksStackDepth(t *testing.T) {
	sys := generate.Build(generate.Settings{Seed: 1})
	if _, err := NewComposer(sys, nil, Settings{Width: 8, Height: 8, StackDepth: sys.Depth() + 1}); err == nil {
		t.Fatal("shallow stack accepted")
	}
	if _, err := NewComposer(sys, nil, Settings{Width: 8, Height: 8, StackDepth: sys.Depth() + 2}); err != nil {
		t.Fatalf("minimal stack rejected: %v", err)
	}
	if _, err := NewComposer(sys, nil, Settings{Width: 0, Height: 8}); err == nil {
		t.Fatal("zero width accepted")
	}
}

func TestRenderHomeSystem(t *testing.T) {
	sys := generate.Build(generate.Settings{Seed: 1, Systems: 2})
	stars := starfield.Generate(rand.New(rand.NewSource(1)), 500, starfield.DefaultSpace)
	c, err := NewComposer(sys, stars, Settings{Width: 96, Height: 54, Supersample: 2, StackDepth: sys.Depth() + 2})
	if err != nil {
		t.Fatal(err)
	}

	ctl := input.New(camera.New(c.Aspect(), 0), sys)
	ctl.Apply(input.ToggleStare, 0)
	res := c.Render(ShotFrom(ctl, 0, overlay.NewClock(time.Time{}, 0), false))

	if b := res.Image.Bounds(); b.Dx() != 96 || b.Dy() != 54 {
		t.Fatalf("bounds %v", b)
	}
	if res.Stats.Triangles == 0 || res.Stats.Lines == 0 {
		t.Fatalf("stats %+v", res.Stats)
	}
	// Staring at the home sun puts it in the middle of the frame.
	if p := res.Image.NRGBAAt(48, 27); p.R < 100 {
		t.Fatalf("center pixel %v is not the sun", p)
	}
	// The stack is balanced after a pass.
	if c.stack.Len() != 0 {
		t.Fatalf("stack holds %d matrices", c.stack.Len())
	}
}

func TestRenderIsRepeatable(t *testing.T) {
	render := func() *image.NRGBA {
		sys := generate.Build(generate.Settings{Seed: 3, Systems: 1})
		c, err := NewComposer(sys, nil, Settings{Width: 32, Height: 18})
		if err != nil {
			t.Fatal(err)
		}
		ctl := input.New(camera.New(c.Aspect(), 0), sys)
		for i := 0; i < 10; i++ {
			sys.Tick(ctl.Options)
		}
		return c.Render(ShotFrom(ctl, 10, overlay.Clock{}, false)).Image
	}
	a, b := render(), render()
	for i := range a.Pix {
		if a.Pix[i] != b.Pix[i] {
			t.Fatalf("byte %d differs", i)
		}
	}
}

func TestBackdropAndOverlay(t *testing.T) {
	sys := scene.NewSystem()
	c, err := NewComposer(sys, nil, Settings{
		Width:    160,
		Height:   90,
		Backdrop: &image.NRGBA{Pix: []uint8{0, 0, 80, 255}, Stride: 4, Rect: image.Rect(0, 0, 1, 1)},
	})
	if err != nil {
		t.Fatal(err)
	}
	ctl := input.New(camera.New(c.Aspect(), 0), sys)
	res := c.Render(ShotFrom(ctl, 0, overlay.NewClock(time.Time{}, 0), true))

	if p := res.Image.NRGBAAt(159, 89); p != (color.NRGBA{0, 0, 80, 255}) {
		t.Fatalf("backdrop pixel %v", p)
	}
	white := 0
	for y := 0; y < 30; y++ {
		for x := 0; x < 160; x++ {
			if res.Image.NRGBAAt(x, y).R == 255 {
				white++
			}
		}
	}
	if white == 0 {
		t.Fatal("no overlay text drawn")
	}
}
