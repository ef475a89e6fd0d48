// Package scene holds the orbiting-body tree and its per-frame traversal.
package scene

import (
	"fmt"
	"strings"

	"orrery/internal/mathutil"
)

// Params are the construction-time properties of a body.
type Params struct {
	Name string

	// Tilt turns the orbit plane around Z, then Swing turns it around Y.
	// Both in degrees.
	Tilt  float64
	Swing float64

	Speed  float64 // degrees of spin per tick
	Radius float64 // orbit radius around the parent's pivot
	Center mathutil.Vec3

	Detail   int // sphere tessellation level
	Size     float64
	Color    mathutil.Vec4
	Shading  ShadingMode
	Material Material
	Texture  string
}

// Body is one orbiting node. It exclusively owns its children.
type Body struct {
	name     string
	axis     mathutil.Vec3
	orbit    mathutil.Mat4
	radius   float64
	center   mathutil.Vec3
	detail   int
	size     float64
	color    mathutil.Vec4
	shading  ShadingMode
	material Material
	texture  string

	speed    float64
	angle    float64
	location mathutil.Vec4

	children []*Body
}

// New builds a body. The orbit-plane alignment is the composed rotation
// tilt·swing; the spin axis is the local up vector carried through it.
func New(p Params) *Body {
	tilt := mathutil.QuatFromAxisAngle(mathutil.ZAxis, mathutil.Deg2Rad(p.Tilt))
	swing := mathutil.QuatFromAxisAngle(mathutil.YAxis, mathutil.Deg2Rad(p.Swing))
	orbit := tilt.Mul(swing).Mat4()
	up := orbit.MulVec4(mathutil.YAxis.Dir())

	return &Body{
		name:     p.Name,
		axis:     up.XYZ(),
		orbit:    orbit,
		radius:   p.Radius,
		center:   p.Center,
		detail:   p.Detail,
		size:     p.Size,
		color:    p.Color,
		shading:  p.Shading,
		material: p.Material,
		texture:  p.Texture,
		speed:    p.Speed,
		location: mathutil.Origin,
	}
}

// AddChild appends c to the owned children. c must not already be in a tree.
func (b *Body) AddChild(c *Body) {
	b.children = append(b.children, c)
}

// Children returns the owned children in insertion order.
func (b *Body) Children() []*Body { return b.children }

func (b *Body) Name() string               { return b.name }
func (b *Body) Size() float64              { return b.size }
func (b *Body) Speed() float64             { return b.speed }
func (b *Body) Axis() mathutil.Vec3        { return b.axis }
func (b *Body) OrbitMatrix() mathutil.Mat4 { return b.orbit }

// Angle returns the accumulated spin in degrees.
func (b *Body) Angle() float64 { return b.angle }

// Center returns the orbit center offset as a homogeneous point. Suns use it
// as their light position.
func (b *Body) Center() mathutil.Vec4 { return b.center.Point() }

// Location returns the world position computed by the last Render.
func (b *Body) Location() mathutil.Vec4 { return b.location }

// WorldAnchor is a point 2×size above the body, used by the chase camera.
func (b *Body) WorldAnchor() mathutil.Vec4 {
	l := b.location
	return mathutil.Vec4{l[0], l[1] + 2*b.size, l[2], 1}
}

// IncreaseSpeed adds delta to the spin speed. Negative speeds reverse the orbit.
func (b *Body) IncreaseSpeed(delta float64) {
	b.speed += delta
}

// Tick advances the spin of b and its subtree when spinning is enabled.
func (b *Body) Tick(opts Options) {
	if !opts.Spinning {
		return
	}
	b.angle += b.speed
	for _, c := range b.children {
		c.Tick(opts)
	}
}

// spin is the rotation around the orbit axis by the current angle.
func (b *Body) spin() mathutil.Mat4 {
	return mathutil.QuatFromAxisAngle(b.axis, mathutil.Deg2Rad(b.angle)).Mat4()
}

// Render draws b and its subtree into f and records the world location of
// every body visited. f.Model is restored before returning.
func (b *Body) Render(f *Frame) {
	b.location = mathutil.Origin
	f.save()
	defer f.restore()

	// The ring is centered on the parent: nothing of b is applied yet.
	if f.Options.Trajectories {
		f.trajectory(b.orbit, b.radius, b.color)
	}

	// Applied right to left: out along X, into the orbit plane, around the
	// spin axis, then offset to the center.
	f.Model = f.Model.
		Mul(mathutil.Translate(b.center[0], b.center[1], b.center[2])).
		Mul(b.spin()).
		Mul(b.orbit).
		Mul(mathutil.Translate(b.radius, 0, 0))

	// Children orbit the unscaled pivot.
	for _, c := range b.children {
		c.Render(f)
	}

	b.location = f.Model.MulVec4(mathutil.Origin)

	f.Model = f.Model.Mul(mathutil.Scale(b.size, b.size, b.size))
	f.Sink.Draw(DrawCall{
		Prim:     Sphere,
		Detail:   b.detail,
		Model:    f.Model,
		Color:    b.color,
		Shading:  b.shading,
		Material: b.material,
		Texture:  b.texture,
		Body:     b.name,
	})

	if f.Options.Axes {
		f.axes(b.name)
	}
}

// Stats is a short human-readable summary for the overlay.
func (b *Body) Stats() string {
	var sb strings.Builder
	sb.WriteString(b.name)
	sb.WriteByte('\n')
	fmt.Fprintf(&sb, "Location: %.2f, %.2f, %.2f\n", b.location[0], b.location[1], b.location[2])
	fmt.Fprintf(&sb, "Shading type: %s\n", b.shading)
	return sb.String()
}
