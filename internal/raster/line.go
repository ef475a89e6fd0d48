package raster

import "math"

// point is a projected position.
type point struct {
	x, y, z float64
}

// lineBias lets lines win depth ties against the surfaces they lie on.
const lineBias = 1e-6

// drawLine rasterizes a depth-tested segment by stepping one pixel along its
// major axis.
func drawLine(fb *FrameBuffer, a, b point, r, g, bl uint8) {
	a, b, ok := clipSegment(a, b, float64(fb.Width), float64(fb.Height))
	if !ok {
		return
	}
	dx := b.x - a.x
	dy := b.y - a.y
	steps := int(math.Ceil(math.Max(math.Abs(dx), math.Abs(dy))))
	if steps == 0 {
		steps = 1
	}
	inv := 1.0 / float64(steps)
	for i := 0; i <= steps; i++ {
		t := float64(i) * inv
		x := int(a.x + dx*t)
		y := int(a.y + dy*t)
		if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
			continue
		}
		z := a.z + (b.z-a.z)*t + lineBias
		idx := y*fb.Width + x
		if z <= fb.ZBuf[idx] {
			continue
		}
		fb.ZBuf[idx] = z
		p := idx * 4
		fb.Color[p] = r
		fb.Color[p+1] = g
		fb.Color[p+2] = bl
		fb.Color[p+3] = 255
	}
}

// clipSegment trims a-b to the rectangle [0,w]×[0,h] (Liang-Barsky),
// interpolating depth along with position. It reports false when the
// segment misses the rectangle.
func clipSegment(a, b point, w, h float64) (point, point, bool) {
	dx, dy := b.x-a.x, b.y-a.y
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{{-dx, a.x}, {dx, w - a.x}, {-dy, a.y}, {dy, h - a.y}}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return a, b, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return a, b, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return a, b, false
			}
			t1 = math.Min(t1, t)
		}
	}
	at := func(t float64) point {
		return point{a.x + dx*t, a.y + dy*t, a.z + (b.z-a.z)*t}
	}
	return at(t0), at(t1), true
}

// drawPoint blends a one-pixel point behind any nearer geometry. It does
// not write depth.
func drawPoint(fb *FrameBuffer, p point, r, g, b uint8, a float64) {
	x, y := int(p.x), int(p.y)
	if x < 0 || y < 0 || x >= fb.Width || y >= fb.Height {
		return
	}
	idx := y*fb.Width + x
	if p.z <= fb.ZBuf[idx] {
		return
	}
	fb.blend(idx, r, g, b, a)
}
