// Package mesh generates the static geometry used by the rasterizer.
package mesh

import (
	"math"
	"sync"

	"orrery/internal/mathutil"
)

// MaxDetail is the finest sphere tessellation level.
const MaxDetail = 7

// RingPoints is the number of vertices in a trajectory ring.
const RingPoints = 32

// Triangles is unindexed triangle soup: three consecutive vertices per face.
type Triangles struct {
	Positions   []mathutil.Vec3
	Normals     []mathutil.Vec3 // smooth, per vertex
	FlatNormals []mathutil.Vec3 // per face, repeated on each corner
}

// Len returns the number of vertices.
func (t *Triangles) Len() int { return len(t.Positions) }

// Sphere builds a unit sphere by subdividing a tetrahedron level times.
// The result has SphereVertices(level) vertices.
func Sphere(level int) *Triangles {
	level = clampDetail(level)
	n := SphereVertices(level)
	t := &Triangles{
		Positions:   make([]mathutil.Vec3, 0, n),
		Normals:     make([]mathutil.Vec3, 0, n),
		FlatNormals: make([]mathutil.Vec3, 0, n),
	}
	v := [4]mathutil.Vec3{
		{0, 0, 1},
		{0, 0.942809, -0.333333},
		{-0.816497, -0.471405, -0.333333},
		{0.816497, -0.471405, -0.333333},
	}
	for i := range v {
		v[i] = v[i].Normalize()
	}
	t.divide(v[0], v[1], v[2], level)
	t.divide(v[3], v[2], v[1], level)
	t.divide(v[0], v[3], v[1], level)
	t.divide(v[0], v[2], v[3], level)
	return t
}

// SphereVertices is 3·4^(level+1).
func SphereVertices(level int) int {
	return 3 * int(math.Pow(4, float64(clampDetail(level)+1)))
}

func clampDetail(level int) int {
	if level < 0 {
		return 0
	}
	if level > MaxDetail {
		return MaxDetail
	}
	return level
}

func (t *Triangles) divide(a, b, c mathutil.Vec3, count int) {
	if count <= 0 {
		t.triangle(a, b, c)
		return
	}
	v1 := a.Add(b).Normalize()
	v2 := a.Add(c).Normalize()
	v3 := b.Add(c).Normalize()
	t.divide(a, v1, v2, count-1)
	t.divide(c, v2, v3, count-1)
	t.divide(b, v3, v1, count-1)
	t.divide(v1, v3, v2, count-1)
}

func (t *Triangles) triangle(a, b, c mathutil.Vec3) {
	flat := b.Sub(a).Cross(c.Sub(b)).Normalize()
	t.Positions = append(t.Positions, a, b, c)
	t.Normals = append(t.Normals, a, b, c)
	t.FlatNormals = append(t.FlatNormals, flat, flat, flat)
}

// Ring returns RingPoints points of the unit circle in the XZ plane.
func Ring() []mathutil.Vec3 {
	pts := make([]mathutil.Vec3, RingPoints)
	for i := range pts {
		angle := 2 * math.Pi * float64(i) / RingPoints
		pts[i] = mathutil.Vec3{math.Cos(angle), 0, math.Sin(angle)}
	}
	return pts
}

// Segment is a colored line from the origin.
type Segment struct {
	From, To mathutil.Vec3
	Color    mathutil.Vec4
}

// Axes returns the unit triad: X red, Y green, Z blue.
func Axes() []Segment {
	return []Segment{
		{To: mathutil.XAxis, Color: mathutil.Vec4{1, 0, 0, 1}},
		{To: mathutil.YAxis, Color: mathutil.Vec4{0, 1, 0, 1}},
		{To: mathutil.ZAxis, Color: mathutil.Vec4{0, 0, 1, 1}},
	}
}

// Library lazily builds and keeps one sphere per detail level.
type Library struct {
	mu      sync.Mutex
	spheres [MaxDetail + 1]*Triangles
	ring    []mathutil.Vec3
	axes    []Segment
}

// NewLibrary creates an empty library.
func NewLibrary() *Library {
	return &Library{ring: Ring(), axes: Axes()}
}

// Sphere returns the cached sphere for level.
func (l *Library) Sphere(level int) *Triangles {
	level = clampDetail(level)
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.spheres[level] == nil {
		l.spheres[level] = Sphere(level)
	}
	return l.spheres[level]
}

func (l *Library) Ring() []mathutil.Vec3 { return l.ring }

func (l *Library) Axes() []Segment { return l.axes }
