// Package input maps user actions onto the camera, the display options and
// the selected body. It knows nothing about windows or key codes beyond the
// rune bindings below.
package input

import (
	"math"

	"orrery/internal/camera"
	"orrery/internal/mathutil"
	"orrery/internal/scene"
)

// Action is one discrete user command.
type Action int

const (
	None Action = iota
	Quit
	FovDown
	FovUp
	ToggleSpinning
	ToggleTrajectories
	ToggleAxes
	ToggleStare
	Reset
	Detach
	Attach // index in Controller.Apply's arg
	Forward
	StrafeLeft
	StrafeRight
	Back
	Up
	Down
	SlowDown
	SpeedUp
	YawLeft
	YawRight
	PitchDown
	PitchUp
)

// Step sizes.
const (
	FovStep   = 5.0
	MoveStep  = 10.0
	SpeedStep = 0.1
	TurnStep  = 0.017
	DragScale = math.Pi / 2000 // radians per pixel
)

var runes = map[rune]Action{
	27:  Quit,
	'q': Quit,
	'Q': Quit,
	'n': FovDown,
	'w': FovUp,
	's': ToggleSpinning,
	't': ToggleTrajectories,
	'a': ToggleAxes,
	'd': ToggleStare,
	'r': Reset,
	'0': Detach,
	'i': Forward,
	'j': StrafeLeft,
	'k': StrafeRight,
	'm': Back,
	'u': Up,
	'o': Down,
	'-': SlowDown,
	'=': SpeedUp,
}

// FromRune resolves a typed character. Digits 1-9 yield Attach with the
// digit as index.
func FromRune(r rune) (Action, int) {
	if r >= '1' && r <= '9' {
		return Attach, int(r - '0')
	}
	return runes[r], 0
}

// Controller owns the navigation state of a session.
type Controller struct {
	Camera  *camera.Camera
	Options scene.Options
	Staring bool
	// Attached is the selected body index or -1.
	Attached int

	system *scene.System
}

// New creates a controller with default options and a free camera.
func New(cam *camera.Camera, sys *scene.System) *Controller {
	return &Controller{
		Camera:   cam,
		Options:  scene.DefaultOptions(),
		Attached: -1,
		system:   sys,
	}
}

// Selected returns the attached body, if any.
func (c *Controller) Selected() (*scene.Body, bool) {
	if c.Attached < 0 {
		return nil, false
	}
	return c.system.Body(c.Attached)
}

// Attach selects body i. Out-of-range indices are ignored.
func (c *Controller) Attach(i int) bool {
	if i < 0 || i >= c.system.Len() {
		return false
	}
	c.Attached = i
	return true
}

func (c *Controller) free() bool { return c.Attached < 0 && !c.Staring }

// Apply executes a; arg is the body index for Attach. It reports whether
// the session should end.
func (c *Controller) Apply(a Action, arg int) (quit bool) {
	cam := c.Camera
	switch a {
	case Quit:
		return true
	case FovDown:
		cam.Zoom(-FovStep)
	case FovUp:
		cam.Zoom(FovStep)
	case ToggleSpinning:
		c.Options.Spinning = !c.Options.Spinning
	case ToggleTrajectories:
		c.Options.Trajectories = !c.Options.Trajectories
	case ToggleAxes:
		c.Options.Axes = !c.Options.Axes
	case ToggleStare:
		c.Staring = !c.Staring
	case Reset:
		cam.Reset()
		c.Options = scene.DefaultOptions()
		c.Staring = false
		c.Attached = -1
	case Detach:
		c.Attached = -1
	case Attach:
		c.Attach(arg)
	case Forward, Back, StrafeLeft, StrafeRight, Up, Down:
		if c.free() {
			c.move(a)
		}
	case SlowDown, SpeedUp:
		if b, ok := c.Selected(); ok {
			if a == SlowDown {
				b.IncreaseSpeed(-SpeedStep)
			} else {
				b.IncreaseSpeed(SpeedStep)
			}
		}
	case YawLeft, YawRight, PitchDown, PitchUp:
		if !c.Staring {
			c.turn(a)
		}
	}
	return false
}

func (c *Controller) move(a Action) {
	cam := c.Camera
	switch a {
	case Forward:
		cam.Walk(MoveStep, 0)
	case Back:
		cam.Walk(-MoveStep, 0)
	case StrafeLeft:
		cam.Walk(0, MoveStep)
	case StrafeRight:
		cam.Walk(0, -MoveStep)
	case Up:
		cam.Lift(MoveStep)
	case Down:
		cam.Lift(-MoveStep)
	}
}

func (c *Controller) turn(a Action) {
	switch a {
	case YawLeft:
		c.Camera.Turn(TurnStep, 0)
	case YawRight:
		c.Camera.Turn(-TurnStep, 0)
	case PitchDown:
		c.Camera.Turn(0, -TurnStep)
	case PitchUp:
		c.Camera.Turn(0, TurnStep)
	}
}

// Drag turns the camera by a pointer movement in pixels.
func (c *Controller) Drag(dx, dy float64) {
	c.Camera.Turn(dx*DragScale, dy*DragScale)
}

// View returns the current view matrix.
func (c *Controller) View() mathutil.Mat4 {
	var anchor camera.Anchor
	if b, ok := c.Selected(); ok {
		anchor = b
	}
	var stare *mathutil.Vec3
	if c.Staring {
		o := c.system.Origin.XYZ()
		stare = &o
	}
	return c.Camera.View(anchor, stare)
}

// Eye is the current camera position in world space.
func (c *Controller) Eye() mathutil.Vec3 {
	var anchor camera.Anchor
	if b, ok := c.Selected(); ok {
		anchor = b
	}
	return c.Camera.Position(anchor)
}
