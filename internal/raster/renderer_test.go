package raster

import (
	"image"
	"image/color"
	"math"
	"testing"

	"orrery/internal/mathutil"
	"orrery/internal/mesh"
	"orrery/internal/scene"
	"orrery/internal/starfield"
)

const size = 64

func newTestRenderer() *Renderer {
	r := NewRenderer(NewFrameBuffer(size, size), mesh.NewLibrary(), nil)
	eye := mathutil.Vec3{0, 0, 5}
	view := mathutil.LookAt(eye, mathutil.Vec3{}, mathutil.YAxis)
	proj := mathutil.Perspective(60, 1, 0.1, 100)
	r.SetCamera(view, proj, eye)
	r.Light(mathutil.Vec4{0, 0, 10, 1})
	return r
}

func pixel(fb *FrameBuffer, x, y int) color.NRGBA {
	return fb.Image().NRGBAAt(x, y)
}

func sphere(model mathutil.Mat4, c mathutil.Vec4, mode scene.ShadingMode) scene.DrawCall {
	return scene.DrawCall{
		Prim:     scene.Sphere,
		Detail:   3,
		Model:    model,
		Color:    c,
		Shading:  mode,
		Material: scene.Material{Ambient: 0.2, Diffuse: 0.8, Specular: 0.5, Shininess: 8},
	}
}

func TestSphereCoverage(t *testing.T) {
	for _, mode := range []scene.ShadingMode{scene.Unlit, scene.Flat, scene.Gouraud, scene.Phong} {
		r := newTestRenderer()
		r.Draw(sphere(mathutil.Mat4Identity(), mathutil.Vec4{1, 1, 1, 1}, mode))

		if p := pixel(r.fb, size/2, size/2); p.A != 255 || p.R == 0 {
			t.Errorf("%v: center pixel %v", mode, p)
		}
		if p := pixel(r.fb, 0, 0); p.A != 0 {
			t.Errorf("%v: corner pixel %v", mode, p)
		}
		if r.Stats.Triangles == 0 || r.Stats.Culled == 0 {
			t.Errorf("%v: stats %+v", mode, r.Stats)
		}
	}
}

func TestDepthOrderIndependent(t *testing.T) {
	nearCall := sphere(mathutil.Translate(0, 0, 1).Mul(mathutil.Scale(0.5, 0.5, 0.5)), mathutil.Vec4{1, 0, 0, 1}, scene.Unlit)
	farCall := sphere(mathutil.Translate(0, 0, -2).Mul(mathutil.Scale(1.5, 1.5, 1.5)), mathutil.Vec4{0, 0, 1, 1}, scene.Unlit)

	for _, order := range [][]scene.DrawCall{{nearCall, farCall}, {farCall, nearCall}} {
		r := newTestRenderer()
		for _, c := range order {
			r.Draw(c)
		}
		if p := pixel(r.fb, size/2, size/2); p != (color.NRGBA{255, 0, 0, 255}) {
			t.Fatalf("center pixel %v, want red", p)
		}
	}
}

func TestLitSideIsBrighter(t *testing.T) {
	r := newTestRenderer()
	r.Light(mathutil.Vec4{10, 0, 0, 1})
	r.Draw(sphere(mathutil.Mat4Identity(), mathutil.Vec4{1, 1, 1, 1}, scene.Phong))

	// The sphere spans roughly 11 pixels around the center.
	lit := pixel(r.fb, size/2+6, size/2)
	dark := pixel(r.fb, size/2-6, size/2)
	if lit.R <= dark.R {
		t.Fatalf("lit %v not brighter than dark %v", lit, dark)
	}
}

func TestRingAndAxes(t *testing.T) {
	r := newTestRenderer()
	model := mathutil.RotX(math.Pi / 2).Mul(mathutil.Scale(2, 2, 2))
	r.Draw(scene.DrawCall{Prim: scene.Ring, Model: model, Color: mathutil.Vec4{0, 1, 0, 1}, Shading: scene.Unlit})
	if r.Stats.Lines != mesh.RingPoints {
		t.Fatalf("ring drew %d lines", r.Stats.Lines)
	}
	p, ok := r.project(mathutil.Vec3{2, 0, 0})
	if !ok {
		t.Fatal("ring point not projected")
	}
	lit := false
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if pixel(r.fb, int(p.x)+dx, int(p.y)+dy).G == 255 {
				lit = true
			}
		}
	}
	if !lit {
		t.Fatal("no ring pixel near (2, 0, 0)")
	}

	r.Draw(scene.DrawCall{Prim: scene.Axes, Model: mathutil.Mat4Identity(), Shading: scene.Unlit})
	if r.Stats.Lines != mesh.RingPoints+3 {
		t.Fatalf("axes drew %d lines", r.Stats.Lines-mesh.RingPoints)
	}
}

func TestStarsHideBehindBodies(t *testing.T) {
	r := newTestRenderer()
	r.Draw(sphere(mathutil.Mat4Identity(), mathutil.Vec4{0, 0, 1, 1}, scene.Unlit))
	before := pixel(r.fb, size/2, size/2)

	field := &starfield.Field{Stars: []starfield.Star{
		{Pos: mathutil.Vec3{0, 0, -20}, Color: mathutil.Vec4{1, 1, 1, 0.9}},
		{Pos: mathutil.Vec3{6, 6, -20}, Color: mathutil.Vec4{1, 1, 1, 0.5}},
	}}
	r.Stars(field)

	if pixel(r.fb, size/2, size/2) != before {
		t.Fatal("star drawn over the body")
	}
	p, _ := r.project(mathutil.Vec3{6, 6, -20})
	if got := pixel(r.fb, int(p.x), int(p.y)); got.R == 0 || got.A == 0 {
		t.Fatalf("visible star pixel %v", got)
	}
}

func TestProjectRejectsBehindEye(t *testing.T) {
	r := newTestRenderer()
	if _, ok := r.project(mathutil.Vec3{0, 0, 10}); ok {
		t.Fatal("point behind the eye projected")
	}
}

func TestPhong(t *testing.T) {
	m := scene.Material{Ambient: 0.25, Diffuse: 0.5, Specular: 1, Shininess: 4}
	pos := mathutil.Vec3{}
	n := mathutil.ZAxis

	front := Phong(m, pos, n, mathutil.Vec3{0, 0, 10}, mathutil.Vec3{0, 0, 10})
	if math.Abs(front.Diffuse-0.75) > 1e-12 || math.Abs(front.Specular-1) > 1e-12 {
		t.Fatalf("front %+v", front)
	}
	back := Phong(m, pos, n, mathutil.Vec3{0, 0, -10}, mathutil.Vec3{0, 0, 10})
	if back.Diffuse != 0.25 || back.Specular != 0 {
		t.Fatalf("back %+v", back)
	}
}

func TestSphereUV(t *testing.T) {
	tests := []struct {
		p    mathutil.Vec3
		u, v float64
	}{
		{mathutil.Vec3{0, 0, 1}, 0, 0.5},
		{mathutil.Vec3{1, 0, 0}, 0.25, 0.5},
		{mathutil.Vec3{0, 1, 0}, 0, 0},
		{mathutil.Vec3{0, -2, 0}, 0, 1},
	}
	for _, tt := range tests {
		u, v := SphereUV(tt.p)
		if math.Abs(u-tt.u) > 1e-9 || math.Abs(v-tt.v) > 1e-9 {
			t.Errorf("SphereUV(%v) = %v, %v; want %v, %v", tt.p, u, v, tt.u, tt.v)
		}
	}
}

func TestSampleTextureUniform(t *testing.T) {
	tex := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := 0; i < len(tex.Pix); i += 4 {
		copy(tex.Pix[i:], []uint8{40, 80, 120, 255})
	}
	for _, uv := range [][2]float64{{0, 0}, {0.3, 0.7}, {1.5, -0.25}} {
		r, g, b, a := SampleTexture(tex, uv[0], uv[1])
		if r != 40 || g != 80 || b != 120 || a != 255 {
			t.Fatalf("sample at %v = %d %d %d %d", uv, r, g, b, a)
		}
	}
}

func TestClear(t *testing.T) {
	fb := NewFrameBuffer(2, 2)
	fb.Color[0] = 9
	fb.ZBuf[0] = 1
	fb.Clear()
	if fb.Color[0] != 0 || !math.IsInf(fb.ZBuf[0], -1) {
		t.Fatal("clear left state behind")
	}
}
