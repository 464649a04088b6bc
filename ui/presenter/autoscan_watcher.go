package presenter

import (
	"log/slog"
	"sync"

	"github.com/soocke/docscan-go/domain/camera"
	"github.com/soocke/docscan-go/domain/geometry"
	"github.com/soocke/docscan-go/domain/scan"
)

// AutoScanCoordinator narrows the coordinator contract the watcher needs.
type AutoScanCoordinator interface {
	Snapshot() scan.State
	CapturePhoto()
}

// AutoScanWatcher observes the detection stream and triggers a single capture
// once the detected quadrilateral has held still for enough consecutive
// frames while auto-scan is enabled. It fires once per stable streak and
// re-arms when the quad is lost or Reset is called. Detections arrive on the
// camera delivery goroutine while resets come from screen transitions and
// orientation listeners, so the funnel state is mutex-guarded.
type AutoScanWatcher struct {
	Coordinator  AutoScanCoordinator
	Logger       *slog.Logger
	StableFrames int     // consecutive stable frames required
	MaxDrift     float64 // per-corner movement tolerated between frames, frame pixels

	mu     sync.Mutex
	prev   *geometry.Quadrilateral
	streak int
	fired  bool
}

// NewAutoScanWatcher constructs a watcher with the given stability threshold.
func NewAutoScanWatcher(coordinator AutoScanCoordinator, stableFrames int, maxDrift float64, logger *slog.Logger) *AutoScanWatcher {
	if stableFrames < 1 {
		stableFrames = 1
	}
	if maxDrift <= 0 {
		maxDrift = 8
	}
	return &AutoScanWatcher{
		Coordinator:  coordinator,
		Logger:       logger,
		StableFrames: stableFrames,
		MaxDrift:     maxDrift,
	}
}

// OnDetection feeds one detection result into the stability funnel.
func (w *AutoScanWatcher) OnDetection(d camera.Detection) {
	if w == nil || w.Coordinator == nil {
		return
	}
	if d.Quad == nil {
		w.Reset()
		return
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.prev != nil && w.prev.MaxCornerDistance(*d.Quad) <= w.MaxDrift {
		w.streak++
	} else {
		w.streak = 1
		w.fired = false
	}
	q := *d.Quad
	w.prev = &q

	if w.fired || w.streak < w.StableFrames {
		return
	}
	st := w.Coordinator.Snapshot()
	if !st.AutoScanEnabled || st.Capturing || st.Editing {
		return
	}
	w.fired = true
	if w.Logger != nil {
		w.Logger.Debug("auto-scan capture", "streak", w.streak)
	}
	w.Coordinator.CapturePhoto()
}

// Reset clears the stability streak, re-arming the watcher. Call it on quad
// loss and on orientation changes, where frame coordinates jump.
func (w *AutoScanWatcher) Reset() {
	if w == nil {
		return
	}
	w.mu.Lock()
	w.prev = nil
	w.streak = 0
	w.fired = false
	w.mu.Unlock()
}

var _ camera.DetectionHandler = (*AutoScanWatcher)(nil)
