package raster

import (
	"image"
	"math"

	"orrery/internal/mathutil"
	"orrery/internal/scene"
)

// vertex is one projected triangle corner with the attributes the pixel
// loop interpolates.
type vertex struct {
	x, y, z float64       // screen space; z grows toward the viewer
	world   mathutil.Vec3 // world position, for per-pixel lighting
	normal  mathutil.Vec3 // world normal, for per-pixel lighting
	local   mathutil.Vec3 // unit-sphere position, for texture lookup
	light   shade         // per-vertex (or per-face) lighting
}

// surface is the per-draw state shared by every pixel of a triangle.
type surface struct {
	mode     scene.ShadingMode
	material scene.Material
	r, g, b  uint8
	alpha    uint8
	tex      *image.NRGBA
	light    mathutil.Vec3
	eye      mathutil.Vec3
	lc       *LightConfig
}

// rasterizeTriangle fills one triangle with z-buffering, shading by s.mode.
//
// This is the HOT PATH: no allocation in the pixel loop.
func rasterizeTriangle(fb *FrameBuffer, v *[3]vertex, s *surface) {
	x0, y0, z0 := v[0].x, v[0].y, v[0].z
	x1, y1, z1 := v[1].x, v[1].y, v[1].z
	x2, y2, z2 := v[2].x, v[2].y, v[2].z

	// Bounding box
	minX := int(math.Min(math.Min(x0, x1), x2))
	maxX := int(math.Max(math.Max(x0, x1), x2)) + 1
	minY := int(math.Min(math.Min(y0, y1), y2))
	maxY := int(math.Max(math.Max(y0, y1), y2)) + 1

	if minX < 0 {
		minX = 0
	}
	if maxX >= fb.Width {
		maxX = fb.Width - 1
	}
	if minY < 0 {
		minY = 0
	}
	if maxY >= fb.Height {
		maxY = fb.Height - 1
	}
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (y1-y2)*(x0-x2) + (x2-x1)*(y0-y2)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1.0 / det

	dy12 := y1 - y2
	dx21 := x2 - x1
	dy20 := y2 - y0
	dx02 := x0 - x2

	for sy := minY; sy <= maxY; sy++ {
		py := float64(sy) + 0.5
		dsy := py - y2
		rowOff := sy * fb.Width
		for sx := minX; sx <= maxX; sx++ {
			dsx := float64(sx) + 0.5 - x2
			w0 := (dy12*dsx + dx21*dsy) * invDet
			w1 := (dy20*dsx + dx02*dsy) * invDet
			w2 := 1.0 - w0 - w1

			if w0 < -0.001 || w1 < -0.001 || w2 < -0.001 {
				continue
			}

			z := w0*z0 + w1*z1 + w2*z2
			zIdx := rowOff + sx
			if z <= fb.ZBuf[zIdx] {
				continue
			}

			cr, cg, cb, ca := s.r, s.g, s.b, s.alpha
			if s.tex != nil {
				local := v[0].local.Scale(w0).Add(v[1].local.Scale(w1)).Add(v[2].local.Scale(w2))
				u, tv := SphereUV(local)
				cr, cg, cb, ca = SampleTexture(s.tex, u, tv)
			}
			// Skip transparent texels
			if ca < 8 {
				continue
			}
			fb.ZBuf[zIdx] = z

			switch s.mode {
			case scene.Unlit:
			case scene.Phong:
				pos := v[0].world.Scale(w0).Add(v[1].world.Scale(w1)).Add(v[2].world.Scale(w2))
				n := v[0].normal.Scale(w0).Add(v[1].normal.Scale(w1)).Add(v[2].normal.Scale(w2)).Normalize()
				cr, cg, cb = s.lc.apply(cr, cg, cb, Phong(s.material, pos, n, s.light, s.eye))
			default:
				cr, cg, cb = s.lc.apply(cr, cg, cb, lerpShade(v[0].light, v[1].light, v[2].light, w0, w1, w2))
			}

			pxIdx := zIdx * 4
			fb.Color[pxIdx] = cr
			fb.Color[pxIdx+1] = cg
			fb.Color[pxIdx+2] = cb
			fb.Color[pxIdx+3] = 255
		}
	}
}

func clamp255(v float64) uint8 {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return uint8(v + 0.5)
}
