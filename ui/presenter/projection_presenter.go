package presenter

import (
	"log/slog"

	"github.com/soocke/docscan-go/domain/camera"
	"github.com/soocke/docscan-go/domain/geometry"
	"github.com/soocke/docscan-go/domain/scan"
	"github.com/soocke/docscan-go/ui/model"
)

// OverlayView is the surface the projected quadrilateral is drawn on.
// RemoveQuadrilateral on an already-clear overlay must be a no-op.
type OverlayView interface {
	Bounds() geometry.Rect
	DrawQuadrilateral(q geometry.Quadrilateral, animated bool)
	RemoveQuadrilateral()
}

// ProjectionPresenter maps raw-frame detections into overlay coordinates and
// drives the overlay view. Each call is independent: no state is carried
// between frames besides the orientation flag, read exactly once per
// detection, so an orientation change takes effect on the very next frame.
type ProjectionPresenter struct {
	States  scan.StateSource
	View    OverlayView
	Model   *model.OverlayModel
	Animate bool
	Logger  *slog.Logger
}

// NewProjectionPresenter constructs a projection presenter. Detected shapes
// are drawn animated; pass animate=false only for tests that compare frames.
func NewProjectionPresenter(states scan.StateSource, view OverlayView, overlayModel *model.OverlayModel, animate bool, logger *slog.Logger) *ProjectionPresenter {
	return &ProjectionPresenter{States: states, View: view, Model: overlayModel, Animate: animate, Logger: logger}
}

// OnDetection consumes one detection result. A missing quad clears the
// overlay; a present quad is projected with the current portrait flag and
// drawn.
func (p *ProjectionPresenter) OnDetection(d camera.Detection) {
	if p == nil || p.View == nil {
		return
	}
	if d.Quad == nil {
		p.Model.Clear()
		p.View.RemoveQuadrilateral()
		return
	}

	portrait := true
	if p.States != nil {
		portrait = p.States.Snapshot().Portrait
	}
	projected := geometry.ProjectQuad(*d.Quad, d.FrameSize, p.View.Bounds(), portrait)

	p.Model.Set(projected)
	p.View.DrawQuadrilateral(projected, p.Animate)
}

var _ camera.DetectionHandler = (*ProjectionPresenter)(nil)
