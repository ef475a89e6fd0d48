package generate

import (
	"testing"

	"orrery/internal/scene"
)

func TestHome(t *testing.T) {
	sun, bodies := Home(map[string]string{"Atlantis": "ocean"})
	if len(bodies) != 9 || bodies[0] != sun {
		t.Fatalf("home has %d bodies", len(bodies))
	}
	if sun.Name() != "Sun" || len(sun.Children()) != 5 {
		t.Fatalf("sun %q with %d planets", sun.Name(), len(sun.Children()))
	}
	if sun.Center() != HomeOrigin.Point() {
		t.Fatalf("sun center %v", sun.Center())
	}
	titan := bodies[4]
	if titan.Name() != "Titan" || len(titan.Children()) != 1 || titan.Children()[0].Name() != "Titan junior" {
		t.Fatalf("Titan subtree wrong")
	}
}

func TestBuildIsSeeded(t *testing.T) {
	a := Build(Settings{Seed: 42, Systems: 5})
	b := Build(Settings{Seed: 42, Systems: 5})
	if len(a.Suns()) != 6 || a.Len() != 9 {
		t.Fatalf("%d suns, %d selectable", len(a.Suns()), a.Len())
	}
	if a.Count() != b.Count() {
		t.Fatalf("body counts differ: %d vs %d", a.Count(), b.Count())
	}
	for i := 0; i < 20; i++ {
		a.Tick(scene.DefaultOptions())
		b.Tick(scene.DefaultOptions())
	}
	for i, s := range a.Suns() {
		if s.Center() != b.Suns()[i].Center() {
			t.Fatalf("sun %d placed differently", i)
		}
	}
	if a.Depth() > 4 {
		t.Fatalf("depth %d", a.Depth())
	}
}

func TestRandomPlanetsStepOutward(t *testing.T) {
	a := Build(Settings{Seed: 9, Systems: 10})
	for _, sun := range a.Suns()[1:] {
		n := len(sun.Children())
		if n < 2 || n > 6 {
			t.Fatalf("%d planets", n)
		}
	}
}
