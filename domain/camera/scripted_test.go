package camera

import (
	"sync"
	"testing"
	"time"

	"github.com/soocke/docscan-go/domain/geometry"
)

type recordingHandler struct {
	mu         sync.Mutex
	detections []Detection
}

func (h *recordingHandler) OnDetection(d Detection) {
	h.mu.Lock()
	h.detections = append(h.detections, d)
	h.mu.Unlock()
}

func (h *recordingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.detections)
}

type recordingCaptures struct {
	mu     sync.Mutex
	stills []Still
	errs   []error
}

func (h *recordingCaptures) OnCapture(s Still)      { h.mu.Lock(); h.stills = append(h.stills, s); h.mu.Unlock() }
func (h *recordingCaptures) OnCaptureError(e error) { h.mu.Lock(); h.errs = append(h.errs, e); h.mu.Unlock() }

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

func testQuad() *geometry.Quadrilateral {
	q := geometry.QuadForSize(geometry.Size{Width: 500, Height: 800})
	return &q
}

func TestScriptedSession_DeliversScriptInOrder(t *testing.T) {
	script := []*geometry.Quadrilateral{testQuad(), nil, testQuad()}
	s := NewScriptedSession(script, geometry.Size{Width: 1080, Height: 1920}, 5*time.Millisecond, nil)
	h := &recordingHandler{}
	s.SetDetectionHandler(h)

	s.Start()
	defer s.Stop()
	waitFor(t, 2*time.Second, func() bool { return h.count() >= 3 })

	h.mu.Lock()
	defer h.mu.Unlock()
	if h.detections[0].Quad == nil || h.detections[1].Quad != nil || h.detections[2].Quad == nil {
		t.Fatalf("script order not honoured: %+v", h.detections[:3])
	}
	if h.detections[0].FrameSize != (geometry.Size{Width: 1080, Height: 1920}) {
		t.Fatalf("frame size not carried: %+v", h.detections[0].FrameSize)
	}
	if h.detections[1].Sequence != h.detections[0].Sequence+1 {
		t.Fatalf("sequence not monotonic: %d then %d", h.detections[0].Sequence, h.detections[1].Sequence)
	}
}

func TestScriptedSession_StopHaltsDelivery(t *testing.T) {
	s := NewScriptedSession([]*geometry.Quadrilateral{testQuad()}, geometry.Size{Width: 100, Height: 100}, 5*time.Millisecond, nil)
	h := &recordingHandler{}
	s.SetDetectionHandler(h)
	s.Start()
	waitFor(t, 2*time.Second, func() bool { return h.count() >= 1 })

	s.Stop()
	n := h.count()
	time.Sleep(50 * time.Millisecond)
	if got := h.count(); got > n+1 { // at most one in-flight tick
		t.Fatalf("detections continued after Stop: %d -> %d", n, got)
	}
	if s.Running() {
		t.Fatalf("session still reports running after Stop")
	}
}

func TestScriptedSession_StartStopIdempotent(t *testing.T) {
	s := NewScriptedSession(nil, geometry.Size{Width: 100, Height: 100}, 5*time.Millisecond, nil)
	s.Start()
	s.Start()
	if !s.Running() {
		t.Fatalf("expected running after Start")
	}
	s.Stop()
	s.Stop()
	if s.Running() {
		t.Fatalf("expected stopped after Stop")
	}
}

func TestScriptedSession_CapturePhoto(t *testing.T) {
	s := NewScriptedSession([]*geometry.Quadrilateral{testQuad()}, geometry.Size{Width: 640, Height: 480}, 5*time.Millisecond, nil)
	det := &recordingHandler{}
	capt := &recordingCaptures{}
	s.SetDetectionHandler(det)
	s.SetCaptureHandler(capt)
	s.Start()
	defer s.Stop()
	waitFor(t, 2*time.Second, func() bool { return det.count() >= 1 })

	s.CapturePhoto()
	capt.mu.Lock()
	defer capt.mu.Unlock()
	if len(capt.stills) != 1 {
		t.Fatalf("expected one still, got %d", len(capt.stills))
	}
	still := capt.stills[0]
	if still.Image == nil || still.Image.Bounds().Dx() != 640 || still.Image.Bounds().Dy() != 480 {
		t.Fatalf("unexpected still image: %+v", still.Image)
	}
	if still.Quad == nil {
		t.Fatalf("still should carry the latest detected quad")
	}
	if still.ID == (Still{}).ID {
		t.Fatalf("still must carry a capture ID")
	}
}

func TestScriptedSession_CaptureFailure(t *testing.T) {
	s := NewScriptedSession(nil, geometry.Size{Width: 10, Height: 10}, 5*time.Millisecond, nil)
	capt := &recordingCaptures{}
	s.SetCaptureHandler(capt)
	s.SetFailCapture(true)

	s.CapturePhoto()
	capt.mu.Lock()
	defer capt.mu.Unlock()
	if len(capt.errs) != 1 || len(capt.stills) != 0 {
		t.Fatalf("expected one capture error, got errs=%d stills=%d", len(capt.errs), len(capt.stills))
	}
}
