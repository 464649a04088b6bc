package still

import (
	"image"
	"image/color"
	"testing"

	"github.com/soocke/docscan-go/domain/geometry"
)

func solid(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetRGBA(x, y, c)
		}
	}
	return img
}

func TestNormalize_PortraitSwapsDimensions(t *testing.T) {
	img := solid(40, 20, color.RGBA{R: 255, A: 255})
	got := Normalize(img, true)
	if got.Bounds().Dx() != 20 || got.Bounds().Dy() != 40 {
		t.Fatalf("expected 20x40 after rotation, got %v", got.Bounds())
	}
}

func TestNormalize_LandscapePassthrough(t *testing.T) {
	img := solid(40, 20, color.RGBA{G: 255, A: 255})
	if got := Normalize(img, false); got != img {
		t.Fatalf("landscape still must pass through unchanged")
	}
	if Normalize(nil, true) != nil {
		t.Fatalf("nil still must stay nil")
	}
}

func TestCropToQuad(t *testing.T) {
	img := solid(100, 100, color.RGBA{B: 255, A: 255})
	q := geometry.Quadrilateral{
		TopLeft:     geometry.Point{X: 10, Y: 20},
		TopRight:    geometry.Point{X: 60, Y: 20},
		BottomLeft:  geometry.Point{X: 10, Y: 80},
		BottomRight: geometry.Point{X: 60, Y: 80},
	}
	got := CropToQuad(img, &q)
	if got.Bounds().Dx() != 50 || got.Bounds().Dy() != 60 {
		t.Fatalf("expected 50x60 crop, got %v", got.Bounds())
	}
}

func TestCropToQuad_ClampsToImage(t *testing.T) {
	img := solid(30, 30, color.RGBA{A: 255})
	q := geometry.Quadrilateral{
		TopLeft:     geometry.Point{X: -100, Y: -100},
		TopRight:    geometry.Point{X: 200, Y: -100},
		BottomLeft:  geometry.Point{X: -100, Y: 200},
		BottomRight: geometry.Point{X: 200, Y: 200},
	}
	got := CropToQuad(img, &q)
	if got.Bounds().Dx() != 30 || got.Bounds().Dy() != 30 {
		t.Fatalf("crop must clamp to image bounds, got %v", got.Bounds())
	}
}

func TestCropToQuad_DegenerateReturnsOriginal(t *testing.T) {
	img := solid(30, 30, color.RGBA{A: 255})
	p := geometry.Point{X: 500, Y: 500} // bbox entirely outside the image
	q := geometry.Quadrilateral{TopLeft: p, TopRight: p, BottomLeft: p, BottomRight: p}
	if got := CropToQuad(img, &q); got != img {
		t.Fatalf("out-of-bounds quad should return the original image")
	}
	if got := CropToQuad(img, nil); got != img {
		t.Fatalf("nil quad should return the original image")
	}
}
