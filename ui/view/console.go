// Package view holds reference implementations of the view contracts: they
// log what a real overlay/status surface would render, so the pipeline can be
// driven headless by the demo binary and inspected in structured output.
package view

import (
	"log/slog"
	"sync"
	"time"

	"github.com/soocke/docscan-go/domain/geometry"
	"github.com/soocke/docscan-go/ui/presenter"
)

// ConsoleOverlayView stands in for the on-screen overlay polygon layer.
type ConsoleOverlayView struct {
	logger *slog.Logger
	bounds geometry.Rect

	mu    sync.Mutex
	last  *geometry.Quadrilateral
	draws uint64
}

func NewConsoleOverlayView(bounds geometry.Rect, logger *slog.Logger) *ConsoleOverlayView {
	return &ConsoleOverlayView{logger: logger, bounds: bounds}
}

// Bounds returns the overlay's coordinate space.
func (v *ConsoleOverlayView) Bounds() geometry.Rect { return v.bounds }

// DrawQuadrilateral renders the projected boundary.
func (v *ConsoleOverlayView) DrawQuadrilateral(q geometry.Quadrilateral, animated bool) {
	v.mu.Lock()
	v.last = &q
	v.draws++
	n := v.draws
	v.mu.Unlock()
	if v.logger != nil && n%30 == 1 { // sampled; one log line per second of frames
		box := q.BoundingBox()
		v.logger.Debug("overlay.draw",
			"animated", animated,
			"path", q.Path(),
			"x", box.Origin.X, "y", box.Origin.Y,
			"w", box.Size.Width, "h", box.Size.Height,
		)
	}
}

// RemoveQuadrilateral clears the drawn shape. No-op when already clear.
func (v *ConsoleOverlayView) RemoveQuadrilateral() {
	v.mu.Lock()
	wasDrawn := v.last != nil
	v.last = nil
	v.mu.Unlock()
	if wasDrawn && v.logger != nil {
		v.logger.Debug("overlay.clear")
	}
}

// OverlayReset clears the shape on screen transitions.
func (v *ConsoleOverlayView) OverlayReset() { v.RemoveQuadrilateral() }

// Last returns the most recently drawn quadrilateral, or nil.
func (v *ConsoleOverlayView) Last() *geometry.Quadrilateral {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.last
}

// ConsoleStatusView stands in for the status labels of the scanning screen.
type ConsoleStatusView struct {
	logger *slog.Logger

	mu    sync.Mutex
	label string
}

func NewConsoleStatusView(logger *slog.Logger) *ConsoleStatusView {
	return &ConsoleStatusView{logger: logger}
}

// SetStateLabel updates the session state line.
func (v *ConsoleStatusView) SetStateLabel(s string) {
	v.mu.Lock()
	v.label = s
	v.mu.Unlock()
	if v.logger != nil {
		v.logger.Info("status", "state", s)
	}
}

// SetSession displays live and total scanning durations.
func (v *ConsoleStatusView) SetSession(live, total time.Duration) {
	if v.logger != nil {
		v.logger.Debug("session", "live", live, "total", total)
	}
}

// StateLabel returns the last label pushed by the presenter.
func (v *ConsoleStatusView) StateLabel() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.label
}

var _ presenter.OverlayView = (*ConsoleOverlayView)(nil)
var _ presenter.ScreenView = (*ConsoleOverlayView)(nil)
var _ presenter.StatusView = (*ConsoleStatusView)(nil)
var _ presenter.SessionView = (*ConsoleStatusView)(nil)
