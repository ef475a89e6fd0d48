// Package generate builds the solar-system scene: the named home system plus
// randomly scattered neighbours.
package generate

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"orrery/internal/mathutil"
	"orrery/internal/scene"
)

// Extent of the random neighbourhood on each axis.
const (
	SpaceX = 3000
	SpaceY = 3000
	SpaceZ = 3000
)

// HomeOrigin is the center of the home system and the stare target.
var HomeOrigin = mathutil.Vec3{10, 10, 10}

// Settings control scene construction.
type Settings struct {
	Seed     int64
	Systems  int               // random systems besides the home one
	Textures map[string]string // body name -> texture name
}

// Build creates the full scene. Only home bodies are selectable.
func Build(s Settings) *scene.System {
	sys := scene.NewSystem()
	sys.Origin = HomeOrigin.Point()

	sun, bodies := Home(s.Textures)
	sys.AddSun(sun)
	sys.Register(bodies...)

	rng := rand.New(rand.NewSource(s.Seed))
	for _, b := range Random(rng, s.Systems) {
		sys.AddSun(b)
	}
	return sys
}

func rgba(c colorful.Color) mathutil.Vec4 {
	c = c.Clamped()
	return mathutil.Vec4{c.R, c.G, c.B, 1}
}

var (
	red     = colorful.Color{R: 1}
	yellow  = colorful.Color{R: 1, G: 1}
	magenta = colorful.Color{R: 1, B: 1}
	black   = colorful.Color{}
)

type home struct {
	swing, tilt, speed, radius float64
	detail                     int
	size                       float64
	color                      colorful.Color
	shading                    scene.ShadingMode
	mat                        scene.Material
	name                       string
	parent                     int // index into the table, -1 for the sun
}

var homeTable = []home{
	{180, 0, 0, 0, 7, 6, red.BlendRgb(yellow, 0.5), scene.Flat, scene.Material{Ambient: 1, Diffuse: 1, Specular: 1, Shininess: 9}, "Sun", -1},
	{0, 0, 0.7, 57, 1, 5, colorful.Color{R: 0.8, G: 0.8, B: 1}, scene.Flat, scene.Material{Ambient: 0.5, Diffuse: 0.5, Specular: 0.8, Shininess: 6}, "Frostivus", 0},
	{-30, 15, 0.75, 48, 2, 3, colorful.Color{R: 0.4, G: 0.8}, scene.Gouraud, scene.Material{Ambient: 0.5, Diffuse: 0.5, Shininess: 3}, "Bogoria", 0},
	{0, -15, -0.6, 37, 6, 5, colorful.Color{G: 0.3, B: 0.9}, scene.Phong, scene.Material{Ambient: 0.4, Diffuse: 0.3, Specular: 0.8, Shininess: 9}, "Atlantis", 0},
	{0, 80, 0.5, 8.5, 2, 2, magenta, scene.Phong, scene.Material{Ambient: 0.4, Diffuse: 0.2, Specular: 0.6, Shininess: 2.3}, "Titan", 3},
	{0, -80, 0.8, 3.5, 3, 0.5, black, scene.Flat, scene.Material{Ambient: 0.4, Diffuse: 0.2, Specular: 0.6, Shininess: 1.3}, "Titan junior", 4},
	{-30, 45, 1, 11, 3, 2, colorful.Color{R: 0.8, G: 0.3, B: 0.2}, scene.Gouraud, scene.Material{Ambient: 0.4, Diffuse: 0.1, Shininess: 9}, "Murs", 0},
	{0, 20, 1, 3.5, 3, 0.5, red, scene.Flat, scene.Material{Ambient: 0.4, Diffuse: 0.2, Specular: 0.6, Shininess: 1.3}, "Dwurf", 6},
	{0, -10, 1, 18, 3, 2, magenta, scene.Gouraud, scene.Material{Ambient: 0.4, Diffuse: 0.1, Shininess: 9}, "Murs Omega", 0},
}

// Home builds the named system. It returns the sun and every body in
// selection order (sun first).
func Home(textures map[string]string) (*scene.Body, []*scene.Body) {
	bodies := make([]*scene.Body, len(homeTable))
	for i, h := range homeTable {
		p := scene.Params{
			Name:     h.name,
			Tilt:     h.tilt,
			Swing:    h.swing,
			Speed:    h.speed,
			Radius:   h.radius,
			Detail:   h.detail,
			Size:     h.size,
			Color:    rgba(h.color),
			Shading:  h.shading,
			Material: h.mat,
			Texture:  textures[h.name],
		}
		if h.parent < 0 {
			p.Center = HomeOrigin
		}
		bodies[i] = scene.New(p)
		if h.parent >= 0 {
			bodies[h.parent].AddChild(bodies[i])
		}
	}
	return bodies[0], bodies
}

// unit returns a value in [0, 1) with the coarse 1/500 steps of the scene
// parameters.
func unit(rng *rand.Rand) float64 {
	return float64(rng.Intn(500)) / 500
}

func randomColor(rng *rand.Rand) mathutil.Vec4 {
	return rgba(colorful.Hcl(float64(rng.Intn(360)), 0.3+0.5*unit(rng), 0.4+0.5*unit(rng)))
}

func randomMaterial(rng *rand.Rand) scene.Material {
	return scene.Material{
		Ambient:   unit(rng),
		Diffuse:   unit(rng),
		Specular:  unit(rng),
		Shininess: float64(rng.Intn(14)),
	}
}

func randomBody(rng *rand.Rand, speed, radius, size float64, center mathutil.Vec3) *scene.Body {
	detail := rng.Intn(6)
	shading := scene.ShadingMode(rng.Intn(3))
	return scene.New(scene.Params{
		Name:     "Unnamed",
		Tilt:     float64(rng.Intn(70)),
		Swing:    float64(rng.Intn(360)),
		Speed:    speed,
		Radius:   radius,
		Center:   center,
		Detail:   detail,
		Size:     size,
		Color:    randomColor(rng),
		Shading:  shading,
		Material: randomMaterial(rng),
	})
}

// Random scatters n systems of 2-6 planets through the neighbourhood. Each
// planet orbits further out than the last and has a one-in-four chance of a
// moon.
func Random(rng *rand.Rand, n int) []*scene.Body {
	suns := make([]*scene.Body, 0, n)
	for i := 0; i < n; i++ {
		planets := rng.Intn(5) + 2
		center := mathutil.Vec3{
			float64(rng.Intn(SpaceX/2) - SpaceX/4),
			float64(rng.Intn(SpaceY/2) - SpaceY/4),
			float64(rng.Intn(SpaceZ/2) - SpaceZ/4),
		}
		size := float64(rng.Intn(18) + 3)
		sun := randomBody(rng, 0, 0, size, center)

		radius := 0.0
		for j := 0; j < planets; j++ {
			speed := unit(rng) + 0.5
			radius += float64(rng.Intn(30)) + size
			size = float64(rng.Intn(8) + 2)
			planet := randomBody(rng, speed, radius, size, mathutil.Vec3{})
			sun.AddChild(planet)

			if rng.Intn(4) == 0 {
				moonSpeed := unit(rng) + 0.5
				orbit := float64(rng.Intn(10)) + size
				moonSize := float64(rng.Intn(4) + 1)
				planet.AddChild(randomBody(rng, moonSpeed, orbit, moonSize, mathutil.Vec3{}))
			}
		}
		suns = append(suns, sun)
	}
	return suns
}
