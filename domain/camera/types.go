package camera

import (
	"image"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/docscan-go/domain/geometry"
	"github.com/soocke/docscan-go/domain/orientation"
)

// Detection is the per-frame output of the rectangle detector: the strongest
// candidate quadrilateral in raw frame pixel coordinates, or nil when the
// frame contained none, plus the frame's pixel dimensions.
type Detection struct {
	Quad       *geometry.Quadrilateral
	FrameSize  geometry.Size
	Sequence   uint64
	CapturedAt time.Time
}

// Still is a completed single-shot capture. The ID correlates the request
// with its completion in logs and observers.
type Still struct {
	ID         uuid.UUID
	Image      *image.RGBA
	Quad       *geometry.Quadrilateral
	CapturedAt time.Time
}

// DetectionHandler receives one Detection per analyzed frame. Set a nil
// handler to unregister; no detection is delivered after unregistration
// returns.
type DetectionHandler interface {
	OnDetection(Detection)
}

// CaptureHandler receives still-capture completions and faults.
type CaptureHandler interface {
	OnCapture(Still)
	OnCaptureError(error)
}

// Session is the camera-side seam: the live video/detection pipeline this
// module coordinates but does not implement. Start/Stop are idempotent.
type Session interface {
	Start()
	Stop()
	Running() bool
	CapturePhoto()
	SetRotation(orientation.Rotation)
	SetDetectionHandler(DetectionHandler)
	SetCaptureHandler(CaptureHandler)
}
