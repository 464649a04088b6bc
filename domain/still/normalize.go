// Package still post-processes captured still images: orientation
// normalization and cropping to the detected document boundary.
package still

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/soocke/docscan-go/domain/geometry"
)

// Normalize rotates a captured still into upright UI orientation. Frames are
// captured in the fixed sensor orientation, so a portrait UI needs a 270
// degree counter-clockwise rotation to stand the image up; landscape stills
// are already upright.
func Normalize(img *image.RGBA, portrait bool) *image.RGBA {
	if img == nil {
		return nil
	}
	if !portrait {
		return img
	}
	rotated := imaging.Rotate270(img)
	out := image.NewRGBA(rotated.Bounds())
	copyNRGBA(out, rotated)
	return out
}

// CropToQuad crops the still to the bounding box of the detected quad,
// clamped to the image bounds. A nil quad or a degenerate bounding box
// returns the image unchanged.
func CropToQuad(img *image.RGBA, quad *geometry.Quadrilateral) *image.RGBA {
	if img == nil || quad == nil {
		return img
	}
	box := quad.BoundingBox()
	r := image.Rect(
		int(box.Origin.X),
		int(box.Origin.Y),
		int(box.Origin.X+box.Size.Width+0.5),
		int(box.Origin.Y+box.Size.Height+0.5),
	).Intersect(img.Bounds())
	if r.Empty() {
		return img
	}
	cropped := imaging.Crop(img, r)
	out := image.NewRGBA(cropped.Bounds())
	copyNRGBA(out, cropped)
	return out
}

// copyNRGBA converts the imaging library's NRGBA result back to the RGBA
// representation the rest of the pipeline uses.
func copyNRGBA(dst *image.RGBA, src *image.NRGBA) {
	b := src.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dst.Set(x, y, src.NRGBAAt(x, y))
		}
	}
}
