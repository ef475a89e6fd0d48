package camera

import (
	"math"
	"testing"

	"orrery/internal/mathutil"
)

func near(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

type fixedAnchor struct {
	pos   mathutil.Vec4
	angle float64
}

func (f fixedAnchor) WorldAnchor() mathutil.Vec4 { return f.pos }
func (f fixedAnchor) Angle() float64             { return f.angle }

func TestDefaults(t *testing.T) {
	c := New(16.0/9.0, 0)
	if c.Eye != DefaultEye || c.Fov != 75 || c.Far != DefaultFar {
		t.Fatalf("defaults %+v", c)
	}
	d := c.Direction()
	if !near(d[0], 0) || !near(d[1], -0.5) || !near(d[2], math.Sqrt(3)/2) {
		t.Fatalf("direction %v", d)
	}
}

func TestViewMapsEyeToOrigin(t *testing.T) {
	c := New(1, 100)
	v := c.View(nil, nil)
	p := v.MulPoint(c.Eye)
	if p.Len() > 1e-9 {
		t.Fatalf("eye maps to %v", p)
	}
	// A point straight ahead lands on the negative Z axis.
	ahead := v.MulPoint(c.Eye.Add(c.Direction().Scale(5)))
	if !near(ahead[0], 0) || !near(ahead[1], 0) || !near(ahead[2], -5) {
		t.Fatalf("ahead maps to %v", ahead)
	}
}

func TestAttachedViewTurnsWithAngle(t *testing.T) {
	c := New(1, 100)
	c.Pitch = 0
	a := fixedAnchor{pos: mathutil.Vec4{1, 2, 3, 1}, angle: 90}
	v := c.View(a, nil)
	if p := v.MulPoint(mathutil.Vec3{1, 2, 3}); p.Len() > 1e-9 {
		t.Fatalf("anchor maps to %v", p)
	}
	// Yaw 0 looks along +Z; RotY(-90°) turns that to -X.
	p := v.MulPoint(mathutil.Vec3{-4, 2, 3})
	if !near(p[2], -5) || !near(p[0], 0) {
		t.Fatalf("rotated ahead maps to %v", p)
	}
}

func TestStare(t *testing.T) {
	c := New(1, 100)
	target := mathutil.Vec3{10, 10, 10}
	v := c.View(nil, &target)
	p := v.MulPoint(target)
	if !near(p[0], 0) || !near(p[1], 0) || p[2] >= 0 {
		t.Fatalf("stare target maps to %v", p)
	}
}

func TestZoomClamps(t *testing.T) {
	c := New(1, 100)
	for i := 0; i < 40; i++ {
		c.Zoom(5)
	}
	if c.Fov != 180 {
		t.Fatalf("fov %v", c.Fov)
	}
	for i := 0; i < 40; i++ {
		c.Zoom(-5)
	}
	if c.Fov != 0 {
		t.Fatalf("fov %v", c.Fov)
	}
}

func TestWalk(t *testing.T) {
	c := New(1, 100)
	c.Eye = mathutil.Vec3{}
	c.Yaw = math.Pi / 2
	c.Walk(10, 0)
	if !near(c.Eye[0], 10) || !near(c.Eye[2], 0) {
		t.Fatalf("forward to %v", c.Eye)
	}
	c.Walk(0, 10)
	if !near(c.Eye[0], 10) || !near(c.Eye[2], -10) {
		t.Fatalf("strafe to %v", c.Eye)
	}
}
