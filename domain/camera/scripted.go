package camera

import (
	"errors"
	"image"
	"log/slog"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"

	"github.com/soocke/docscan-go/domain/geometry"
	"github.com/soocke/docscan-go/domain/orientation"
)

const statsLogInterval = 5 * time.Second

// ScriptedSession is a reference Session that replays a fixed script of
// detections on a ticker. It stands in for the real camera pipeline in the
// demo binary and in tests; steps with a nil quad model frames where the
// detector found nothing.
type ScriptedSession struct {
	script    []*geometry.Quadrilateral
	frameSize geometry.Size
	interval  time.Duration
	logger    *slog.Logger

	running  atomic.Bool
	done     chan struct{}
	sequence atomic.Uint64
	frames   atomic.Uint64
	withQuad atomic.Uint64
	captures atomic.Uint64

	mu             sync.Mutex
	detections     DetectionHandler
	captureHandler CaptureHandler
	rotation       orientation.Rotation
	lastQuad       *geometry.Quadrilateral
	lastDetection  time.Time
	failCapture    bool
}

// NewScriptedSession returns a session replaying script at the given
// interval. Frames carry frameSize as their pixel dimensions.
func NewScriptedSession(script []*geometry.Quadrilateral, frameSize geometry.Size, interval time.Duration, logger *slog.Logger) *ScriptedSession {
	if interval <= 0 {
		interval = 33 * time.Millisecond
	}
	return &ScriptedSession{
		script:    script,
		frameSize: frameSize,
		interval:  interval,
		logger:    logger,
		rotation:  orientation.Rotate90,
	}
}

// SetDetectionHandler registers h for per-frame detections. Passing nil
// unregisters; once it returns, no further detections are delivered.
func (s *ScriptedSession) SetDetectionHandler(h DetectionHandler) {
	s.mu.Lock()
	s.detections = h
	s.mu.Unlock()
}

// SetCaptureHandler registers h for still-capture completions.
func (s *ScriptedSession) SetCaptureHandler(h CaptureHandler) {
	s.mu.Lock()
	s.captureHandler = h
	s.mu.Unlock()
}

// SetFailCapture makes subsequent CapturePhoto calls fail. Test hook.
func (s *ScriptedSession) SetFailCapture(fail bool) {
	s.mu.Lock()
	s.failCapture = fail
	s.mu.Unlock()
}

// SupportsRotation satisfies orientation.Connection; the scripted stream can
// always be rotated.
func (s *ScriptedSession) SupportsRotation() bool { return true }

// SetRotation records the stream rotation pushed by the orientation tracker.
func (s *ScriptedSession) SetRotation(r orientation.Rotation) {
	s.mu.Lock()
	s.rotation = r
	s.mu.Unlock()
}

// Rotation returns the last rotation programmed into the session.
func (s *ScriptedSession) Rotation() orientation.Rotation {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rotation
}

// Running reports whether the replay loop is active.
func (s *ScriptedSession) Running() bool { return s.running.Load() }

// Start begins replaying the script. Idempotent.
func (s *ScriptedSession) Start() {
	if s.running.Swap(true) {
		return
	}
	s.done = make(chan struct{})
	go s.loop(s.done)
}

// Stop halts the replay loop. Idempotent; pending ticks are dropped.
func (s *ScriptedSession) Stop() {
	if !s.running.Swap(false) {
		return
	}
	close(s.done)
}

func (s *ScriptedSession) loop(done chan struct{}) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	logTicker := time.NewTicker(statsLogInterval)
	defer logTicker.Stop()
	step := 0
	for {
		select {
		case <-done:
			return
		case <-ticker.C:
			s.deliver(step)
			if len(s.script) > 0 {
				step = (step + 1) % len(s.script)
			}
		case <-logTicker.C:
			s.logStats()
		}
	}
}

func (s *ScriptedSession) deliver(step int) {
	var quad *geometry.Quadrilateral
	if len(s.script) > 0 {
		quad = s.script[step]
	}

	s.mu.Lock()
	handler := s.detections
	s.lastQuad = quad
	s.lastDetection = time.Now()
	s.mu.Unlock()
	if handler == nil {
		return
	}

	seq := s.sequence.Add(1)
	s.frames.Add(1)
	if quad != nil {
		s.withQuad.Add(1)
		q := *quad // handlers must not alias script storage
		quad = &q
	}
	handler.OnDetection(Detection{
		Quad:       quad,
		FrameSize:  s.frameSize,
		Sequence:   seq,
		CapturedAt: time.Now(),
	})
}

// CapturePhoto synthesizes a still of the configured frame size carrying the
// most recent script quad and hands it to the capture handler.
func (s *ScriptedSession) CapturePhoto() {
	s.mu.Lock()
	handler := s.captureHandler
	quad := s.lastQuad
	fail := s.failCapture
	s.mu.Unlock()
	if handler == nil {
		return
	}
	if fail {
		handler.OnCaptureError(errors.New("scripted capture failure"))
		return
	}
	s.captures.Add(1)
	img := image.NewRGBA(image.Rect(0, 0, int(s.frameSize.Width), int(s.frameSize.Height)))
	handler.OnCapture(Still{
		ID:         uuid.New(),
		Image:      img,
		Quad:       quad,
		CapturedAt: time.Now(),
	})
}

// Stats returns replay counters.
func (s *ScriptedSession) Stats() Stats {
	s.mu.Lock()
	last := s.lastDetection
	s.mu.Unlock()
	return Stats{
		Frames:         s.frames.Load(),
		FramesWithQuad: s.withQuad.Load(),
		Captures:       s.captures.Load(),
		LastDetection:  last,
		Sequence:       s.sequence.Load(),
	}
}

func (s *ScriptedSession) logStats() {
	if s.logger == nil {
		return
	}
	stats := s.Stats()
	s.logger.Debug("camera.stats",
		"frames", stats.Frames,
		"with_quad", stats.FramesWithQuad,
		"captures", stats.Captures,
	)
}

var _ Session = (*ScriptedSession)(nil)
var _ orientation.Connection = (*ScriptedSession)(nil)
