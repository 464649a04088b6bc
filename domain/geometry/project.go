package geometry

import "math"

// ProjectionTransforms returns the ordered transform list mapping a
// quadrilateral detected in raw frame pixels onto overlayBounds.
//
// The raw frame is captured in a fixed sensor orientation, so when the UI is
// portrait the scale factor is computed from the width/height swapped size
// while the scaled extent is still taken from the raw size: the 90 degree
// rotation that follows is what performs the swap geometrically. Changing
// that asymmetry breaks portrait projection even though the code looks wrong
// at first glance.
func ProjectionTransforms(frameSize Size, overlayBounds Rect, portrait bool) []Matrix {
	adjusted := frameSize
	if portrait {
		adjusted = frameSize.Swapped()
	}
	scale := AspectFillScale(adjusted, overlayBounds.Size)
	scaledImageSize := frameSize.Applying(scale)

	rotation := Identity()
	if portrait {
		rotation = Rotate(math.Pi / 2)
	}
	imageBounds := Rect{Size: scaledImageSize}.Applying(rotation)
	translation := TranslateCenters(imageBounds, overlayBounds)

	return []Matrix{scale, rotation, translation}
}

// ProjectQuad maps a quadrilateral from raw frame pixel space into overlay
// view space. Pure function; safe to call concurrently.
func ProjectQuad(q Quadrilateral, frameSize Size, overlayBounds Rect, portrait bool) Quadrilateral {
	return q.Apply(ProjectionTransforms(frameSize, overlayBounds, portrait)...)
}
