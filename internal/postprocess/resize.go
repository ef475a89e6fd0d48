// Package postprocess resamples rendered frames and backdrops.
package postprocess

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample reduces a supersampled frame to w×h. Filtering runs on
// premultiplied alpha so transparent pixels do not darken their neighbors.
// Frames no larger than w×h are returned as is.
func Downsample(img *image.NRGBA, w, h int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= w && b.Dy() <= h {
		return img
	}

	// draw converts NRGBA to premultiplied RGBA and back.
	premul := image.NewRGBA(b)
	draw.Draw(premul, b, img, b.Min, draw.Src)

	small := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(small, small.Bounds(), premul, b, draw.Src, nil)

	out := image.NewNRGBA(small.Bounds())
	draw.Draw(out, out.Bounds(), small, image.Point{}, draw.Src)
	return out
}

// Cover scales src to fill dst completely, keeping its aspect ratio and
// cropping the overflow evenly on both sides.
func Cover(dst draw.Image, src image.Image) {
	db, sb := dst.Bounds(), src.Bounds()
	if db.Empty() || sb.Empty() {
		return
	}
	draw.ApproxBiLinear.Scale(dst, db, src, coverWindow(db, sb), draw.Src, nil)
}

// coverWindow is the centered part of sb with db's aspect ratio.
func coverWindow(db, sb image.Rectangle) image.Rectangle {
	sw, sh := sb.Dx(), sb.Dy()
	if sw*db.Dy() > sh*db.Dx() {
		sw = sh * db.Dx() / db.Dy()
	} else {
		sh = sw * db.Dy() / db.Dx()
	}
	sw, sh = max(sw, 1), max(sh, 1)
	x0 := sb.Min.X + (sb.Dx()-sw)/2
	y0 := sb.Min.Y + (sb.Dy()-sh)/2
	return image.Rect(x0, y0, x0+sw, y0+sh)
}
