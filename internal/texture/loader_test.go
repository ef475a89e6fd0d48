package texture

import (
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ftrvxmtrx/tga"
	xtiff "golang.org/x/image/tiff"
)

func solid(c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func writeImage(t *testing.T, path string, img image.Image, encode func(io.Writer, image.Image) error) {
	t.Helper()
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func near(a, b uint8, tol int) bool {
	d := int(a) - int(b)
	return d >= -tol && d <= tol
}

func TestLoadTextureFormats(t *testing.T) {
	want := color.NRGBA{200, 40, 90, 255}
	tests := []struct {
		name   string
		file   string
		encode func(io.Writer, image.Image) error
		tol    int
	}{
		{"png", "moss.png", png.Encode, 0},
		{"jpeg", "moss.jpg", func(w io.Writer, m image.Image) error {
			return jpeg.Encode(w, m, &jpeg.Options{Quality: 100})
		}, 8},
		{"tga", "moss.tga", tga.Encode, 0},
		{"tiff", "moss.tif", func(w io.Writer, m image.Image) error {
			return xtiff.Encode(w, m, nil)
		}, 0},
		{"upper-case extension", "MOSS.PNG", png.Encode, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), tt.file)
			writeImage(t, path, solid(want), tt.encode)

			img, err := LoadTexture(path)
			if err != nil {
				t.Fatalf("LoadTexture: %v", err)
			}
			if b := img.Bounds(); b != image.Rect(0, 0, 4, 2) {
				t.Fatalf("bounds %v", b)
			}
			got := img.NRGBAAt(2, 1)
			if !near(got.R, want.R, tt.tol) || !near(got.G, want.G, tt.tol) ||
				!near(got.B, want.B, tt.tol) || got.A != 255 {
				t.Fatalf("pixel %v, want %v", got, want)
			}
		})
	}
}

func TestLoadTextureRejects(t *testing.T) {
	dir := t.TempDir()
	bmp := filepath.Join(dir, "sky.bmp")
	if err := os.WriteFile(bmp, []byte("BM"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadTexture(bmp); err == nil || !strings.Contains(err.Error(), "unknown extension") {
		t.Fatalf("bmp: %v", err)
	}

	// A PNG stored under a .tga name is decoded as TGA, not sniffed.
	fake := filepath.Join(dir, "sky.tga")
	writeImage(t, fake, solid(color.NRGBA{1, 2, 3, 255}), png.Encode)
	if _, err := LoadTexture(fake); err == nil {
		t.Fatal("png bytes decoded as tga")
	}

	if _, err := LoadTexture(filepath.Join(dir, "missing.png")); err == nil {
		t.Fatal("missing file loaded")
	}
}
