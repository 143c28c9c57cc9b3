package annotate

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"testing"

	"github.com/gogpu/ggtools/clip"
)

var (
	white  = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	orange = color.RGBA{R: 255, G: 165, B: 0, A: 255}
	blue   = color.RGBA{R: 0, G: 0, B: 255, A: 255}
)

// solidImage returns an opaque image filled with c.
func solidImage(w, h int, c color.Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// pngItem encodes a solid image as an image/png clipboard item.
func pngItem(t *testing.T, w, h int, c color.Color) clip.Item {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, solidImage(w, h, c)); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return clip.ImageItem(buf.Bytes())
}

// pixelAt reads one pixel from an image returned by the annotator.
func pixelAt(t *testing.T, img image.Image, x, y int) color.RGBA {
	t.Helper()
	if img == nil {
		t.Fatal("image is nil")
	}
	return color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
}

func toRGBA(img image.Image) *image.RGBA {
	if rgba, ok := img.(*image.RGBA); ok {
		return rgba
	}
	b := img.Bounds()
	out := image.NewRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out.Set(x, y, img.At(x, y))
		}
	}
	return out
}

// near reports whether two colors match within antialiasing rounding.
func near(a, b color.RGBA) bool {
	d := func(x, y uint8) int {
		if x > y {
			return int(x - y)
		}
		return int(y - x)
	}
	return d(a.R, b.R) <= 3 && d(a.G, b.G) <= 3 && d(a.B, b.B) <= 3 && d(a.A, b.A) <= 3
}
