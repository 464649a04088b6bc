package app

import (
	"log/slog"
	"sync"

	"github.com/soocke/docscan-go/domain/camera"
	"github.com/soocke/docscan-go/domain/scan"
	"github.com/soocke/docscan-go/domain/still"
)

// resultSink is the headless stand-in for the review screen: it crops the
// still to the detected boundary, records it and flips the coordinator into
// editing so auto-scan stays quiet.
type resultSink struct {
	logger      *slog.Logger
	coordinator *scan.Coordinator

	mu   sync.Mutex
	last *camera.Still
}

func newResultSink(logger *slog.Logger) *resultSink {
	return &resultSink{logger: logger}
}

var (
	_ scan.ResultObserver = (*resultSink)(nil)
	_ scan.FaultObserver  = (*resultSink)(nil)
)

func (r *resultSink) OnCaptureSuccess(s camera.Still) {
	s.Image = still.CropToQuad(s.Image, s.Quad)
	r.mu.Lock()
	r.last = &s
	r.mu.Unlock()
	if r.logger != nil {
		size := "none"
		if s.Image != nil {
			size = s.Image.Bounds().Size().String()
		}
		r.logger.Info("still ready", "id", s.ID.String(), "size", size)
	}
	if r.coordinator != nil {
		r.coordinator.SetEditing(true)
	}
}

func (r *resultSink) OnCaptureFailure(err error) {
	if r.logger != nil {
		r.logger.Error("capture failed", "error", err)
	}
}

func (r *resultSink) OnFault(err error) {
	if r.logger != nil {
		r.logger.Warn("device fault", "error", err)
	}
}

// Last returns the most recent processed still, nil before the first capture.
func (r *resultSink) Last() *camera.Still {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.last
}
