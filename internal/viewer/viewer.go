// Package viewer shows the scene in a desktop window and forwards keyboard
// and mouse input to the controller.
package viewer

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"orrery/internal/frame"
	"orrery/internal/input"
	"orrery/internal/metrics"
	"orrery/internal/overlay"
	"orrery/internal/scene"
)

// TPS is the animation rate: one tick per update.
const TPS = 30

// Game drives the tick/render loop. It implements ebiten.Game.
type Game struct {
	system  *scene.System
	comp    *frame.Composer
	ctl     *input.Controller
	clock   overlay.Clock
	metrics *metrics.Collector

	width, height int
	tick          int
	img           *ebiten.Image

	dragging     bool
	lastX, lastY int
}

// New creates a game rendering width×height frames.
func New(sys *scene.System, comp *frame.Composer, ctl *input.Controller, clock overlay.Clock, m *metrics.Collector, width, height int) *Game {
	return &Game{
		system:  sys,
		comp:    comp,
		ctl:     ctl,
		clock:   clock,
		metrics: m,
		width:   width,
		height:  height,
	}
}

var arrows = []struct {
	key    ebiten.Key
	action input.Action
}{
	{ebiten.KeyArrowLeft, input.YawLeft},
	{ebiten.KeyArrowRight, input.YawRight},
	{ebiten.KeyArrowDown, input.PitchDown},
	{ebiten.KeyArrowUp, input.PitchUp},
}

func (g *Game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}
	for _, r := range ebiten.AppendInputChars(nil) {
		a, arg := input.FromRune(r)
		if g.ctl.Apply(a, arg) {
			return ebiten.Termination
		}
	}
	for _, k := range arrows {
		if ebiten.IsKeyPressed(k.key) {
			g.ctl.Apply(k.action, 0)
		}
	}

	x, y := ebiten.CursorPosition()
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		if g.dragging {
			g.ctl.Drag(float64(x-g.lastX), float64(y-g.lastY))
		}
		g.dragging = true
	} else {
		g.dragging = false
	}
	g.lastX, g.lastY = x, y

	if g.ctl.Options.Spinning {
		g.system.Tick(g.ctl.Options)
		g.tick++
		g.metrics.AddTicks(1)
	}
	return nil
}

func (g *Game) Draw(screen *ebiten.Image) {
	res := g.comp.Render(frame.ShotFrom(g.ctl, g.tick, g.clock, true))
	g.metrics.RecordRender(res.Elapsed, res.Stats.Triangles)

	if g.img == nil {
		g.img = ebiten.NewImage(g.width, g.height)
	}
	// Frames are opaque, so straight and premultiplied alpha agree.
	g.img.WritePixels(res.Image.Pix)
	screen.DrawImage(g.img, nil)
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.width, g.height
}

// Run opens the window and blocks until it closes or the user quits.
func Run(g *Game, title string) error {
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowSize(g.width, g.height)
	ebiten.SetTPS(TPS)
	return ebiten.RunGame(g)
}
