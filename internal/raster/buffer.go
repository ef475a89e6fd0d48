package raster

import (
	"image"
	"math"
)

// FrameBuffer holds the rendering target as flat slices for cache locality.
// Depth grows toward the viewer.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8   // RGBA interleaved, len = W*H*4
	ZBuf   []float64 // depth per pixel, len = W*H, initialized to -inf
}

// NewFrameBuffer allocates a zeroed color buffer and -inf z-buffer.
func NewFrameBuffer(w, h int) *FrameBuffer {
	n := w * h
	fb := &FrameBuffer{
		Width:  w,
		Height: h,
		Color:  make([]uint8, n*4),
		ZBuf:   make([]float64, n),
	}
	fb.ClearDepth()
	return fb
}

// Clear resets color to transparent black and depth to -inf.
func (fb *FrameBuffer) Clear() {
	clear(fb.Color)
	fb.ClearDepth()
}

// Fill sets every pixel to one color and resets depth.
func (fb *FrameBuffer) Fill(r, g, b, a uint8) {
	for i := 0; i < len(fb.Color); i += 4 {
		fb.Color[i] = r
		fb.Color[i+1] = g
		fb.Color[i+2] = b
		fb.Color[i+3] = a
	}
	fb.ClearDepth()
}

// ClearDepth resets the z-buffer only.
func (fb *FrameBuffer) ClearDepth() {
	for i := range fb.ZBuf {
		fb.ZBuf[i] = math.Inf(-1)
	}
}

// Image wraps the color buffer without copying. Writes to either side are
// shared.
func (fb *FrameBuffer) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    fb.Color,
		Stride: fb.Width * 4,
		Rect:   image.Rect(0, 0, fb.Width, fb.Height),
	}
}

// blend composites an 8-bit color over pixel i with coverage a in [0, 1].
func (fb *FrameBuffer) blend(i int, r, g, b uint8, a float64) {
	p := i * 4
	inv := 1 - a
	fb.Color[p] = clamp255(float64(r)*a + float64(fb.Color[p])*inv)
	fb.Color[p+1] = clamp255(float64(g)*a + float64(fb.Color[p+1])*inv)
	fb.Color[p+2] = clamp255(float64(b)*a + float64(fb.Color[p+2])*inv)
	fb.Color[p+3] = clamp255(255*a + float64(fb.Color[p+3])*inv)
}
