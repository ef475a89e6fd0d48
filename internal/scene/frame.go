package scene

import (
	"orrery/internal/mathutil"
	"orrery/internal/matstack"
)

// Options are the simulation and display toggles read by Tick and Render.
type Options struct {
	Spinning     bool
	Trajectories bool
	Axes         bool
}

// DefaultOptions has everything switched on.
func DefaultOptions() Options {
	return Options{Spinning: true, Trajectories: true, Axes: true}
}

// Frame is the traversal state of one render pass. Model is the current
// transform; bodies save it on Stack before changing it and restore it on
// the way out.
type Frame struct {
	Model   mathutil.Mat4
	Stack   *matstack.Stack
	Options Options
	Sink    Sink
}

// NewFrame starts a pass at the given base transform.
func NewFrame(base mathutil.Mat4, stack *matstack.Stack, opts Options, sink Sink) *Frame {
	return &Frame{Model: base, Stack: stack, Options: opts, Sink: sink}
}

func (f *Frame) save() { f.Stack.Push(f.Model) }

func (f *Frame) restore() { f.Model = f.Stack.Pop() }

// trajectory draws the orbit ring around the current (parent) pivot.
func (f *Frame) trajectory(orbit mathutil.Mat4, radius float64, color mathutil.Vec4) {
	f.save()
	defer f.restore()

	f.Model = f.Model.Mul(orbit).Mul(mathutil.Scale(radius, radius, radius))
	f.Sink.Draw(DrawCall{
		Prim:    Ring,
		Model:   f.Model,
		Color:   color,
		Shading: Unlit,
	})
}

// axes draws the reference triad at twice the current scale.
func (f *Frame) axes(body string) {
	f.save()
	defer f.restore()

	f.Model = f.Model.Mul(mathutil.Scale(2, 2, 2))
	f.Sink.Draw(DrawCall{
		Prim:    Axes,
		Model:   f.Model,
		Color:   mathutil.Vec4{1, 1, 1, 1},
		Shading: Unlit,
		Body:    body,
	})
}
