package scene

import (
	"testing"

	"orrery/internal/mathutil"
	"orrery/internal/matstack"
)

func TestSystemLightsEachSun(t *testing.T) {
	s := NewSystem()
	a := New(Params{Name: "a", Center: mathutil.Vec3{1, 2, 3}})
	b := New(Params{Name: "b", Center: mathutil.Vec3{-5, 0, 0}})
	a.AddChild(New(Params{Name: "a1", Radius: 4}))
	s.AddSun(a)
	s.AddSun(b)
	s.Register(a, b)

	rec := &Recorder{}
	s.Render(mathutil.Mat4Identity(), matstack.New(0), Options{}, rec)

	if len(rec.Lights) != 2 || rec.Lights[0] != a.Center() || rec.Lights[1] != b.Center() {
		t.Fatalf("lights %v", rec.Lights)
	}
	if len(rec.Bodies()) != 3 {
		t.Fatalf("%d bodies drawn", len(rec.Bodies()))
	}
	if s.Count() != 3 || s.Depth() != 2 || s.Len() != 2 {
		t.Fatalf("count %d depth %d len %d", s.Count(), s.Depth(), s.Len())
	}
	if _, ok := s.Body(2); ok {
		t.Fatal("Body(2) should be out of range")
	}
}

func TestSystemTick(t *testing.T) {
	s := NewSystem()
	a := New(Params{Speed: 2})
	s.AddSun(a)
	s.Tick(DefaultOptions())
	s.Tick(Options{})
	if a.Angle() != 2 {
		t.Fatalf("angle %v", a.Angle())
	}
}
