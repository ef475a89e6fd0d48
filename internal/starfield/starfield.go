// Package starfield generates the point-star backdrop.
package starfield

import (
	"math"
	"math/rand"

	"orrery/internal/mathutil"
)

// Defaults for the backdrop.
const (
	DefaultCount = 10000
	DefaultSpace = 3000
	// ClearRadius keeps stars out of the home system: |x|+|y|+|z| must reach it.
	ClearRadius = 200
)

// Star is one backdrop point.
type Star struct {
	Pos   mathutil.Vec3
	Color mathutil.Vec4 // RGBA, alpha in [0, 1)
}

// Field is a fixed set of stars.
type Field struct {
	Stars []Star
}

// Generate scatters n stars through a cube of side space centered on the
// origin, rejecting points inside the clear zone.
func Generate(rng *rand.Rand, n, space int) *Field {
	f := &Field{Stars: make([]Star, 0, n)}
	half := space / 2
	for len(f.Stars) < n {
		c := mathutil.Vec4{
			float64(rng.Intn(500)) / 500,
			float64(rng.Intn(500)) / 500,
			float64(rng.Intn(500)) / 500,
			float64(rng.Intn(500)) / 500,
		}
		p := mathutil.Vec3{
			float64(rng.Intn(space) - half),
			float64(rng.Intn(space) - half),
			float64(rng.Intn(space) - half),
		}
		if math.Abs(p[0])+math.Abs(p[1])+math.Abs(p[2]) < ClearRadius {
			continue
		}
		f.Stars = append(f.Stars, Star{Pos: p, Color: c})
	}
	return f
}
