package scene

import (
	"orrery/internal/mathutil"
	"orrery/internal/matstack"
)

// System is a forest of body trees. Suns are the roots; each lights its own
// subtree. Selectable bodies are kept in a flat list for camera attachment.
type System struct {
	Origin mathutil.Vec4 // point the camera stares at

	suns       []*Body
	selectable []*Body
}

// NewSystem creates an empty system staring at the world origin.
func NewSystem() *System {
	return &System{Origin: mathutil.Origin}
}

// AddSun adds a root body.
func (s *System) AddSun(b *Body) {
	s.suns = append(s.suns, b)
}

// Register makes b selectable by index.
func (s *System) Register(b ...*Body) {
	s.selectable = append(s.selectable, b...)
}

// Suns returns the root bodies.
func (s *System) Suns() []*Body { return s.suns }

// Len is the number of selectable bodies.
func (s *System) Len() int { return len(s.selectable) }

// Body returns selectable body i.
func (s *System) Body(i int) (*Body, bool) {
	if i < 0 || i >= len(s.selectable) {
		return nil, false
	}
	return s.selectable[i], true
}

// Count returns the number of bodies in all trees.
func (s *System) Count() int {
	n := 0
	var walk func(b *Body)
	walk = func(b *Body) {
		n++
		for _, c := range b.children {
			walk(c)
		}
	}
	for _, sun := range s.suns {
		walk(sun)
	}
	return n
}

// Depth returns the height of the tallest tree.
func (s *System) Depth() int {
	var depth func(b *Body) int
	depth = func(b *Body) int {
		d := 0
		for _, c := range b.children {
			if cd := depth(c); cd > d {
				d = cd
			}
		}
		return d + 1
	}
	max := 0
	for _, sun := range s.suns {
		if d := depth(sun); d > max {
			max = d
		}
	}
	return max
}

// Tick advances every tree by one animation step.
func (s *System) Tick(opts Options) {
	for _, sun := range s.suns {
		sun.Tick(opts)
	}
}

// Render traverses every tree from base. Each sun's center becomes the
// light before its subtree is drawn.
func (s *System) Render(base mathutil.Mat4, stack *matstack.Stack, opts Options, sink Sink) {
	f := NewFrame(base, stack, opts, sink)
	for _, sun := range s.suns {
		sink.Light(sun.Center())
		sun.Render(f)
	}
}
