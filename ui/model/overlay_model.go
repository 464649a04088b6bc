package model

import (
	"github.com/soocke/docscan-go/domain/geometry"
)

// OverlayModel holds the quadrilateral currently drawn on the overlay, in
// overlay-view coordinates. Zero value means no shape and is usable.
// No synchronization needed: updates occur on the detection delivery path.
type OverlayModel struct {
	quad *geometry.Quadrilateral
}

func NewOverlayModel() *OverlayModel { return &OverlayModel{} }

// Set stores the drawn quadrilateral.
func (m *OverlayModel) Set(q geometry.Quadrilateral) {
	if m == nil {
		return
	}
	m.quad = &q
}

// Clear removes the stored shape. Clearing an already-clear model is a no-op.
func (m *OverlayModel) Clear() {
	if m == nil {
		return
	}
	m.quad = nil
}

// Current returns the drawn quadrilateral, or nil when the overlay is clear.
func (m *OverlayModel) Current() *geometry.Quadrilateral {
	if m == nil {
		return nil
	}
	return m.quad
}
