package orientation

import (
	"log/slog"
	"sync"
)

// WindowProvider reports the current foreground interface orientation. It is
// the seam onto the windowing system.
type WindowProvider interface {
	InterfaceOrientation() Orientation
}

// Connection is the capture connection whose stream rotation the tracker
// programs. Connections that cannot rotate report SupportsRotation false and
// the tracker leaves them alone.
type Connection interface {
	SupportsRotation() bool
	SetRotation(Rotation)
}

// Listener is invoked after the tracker accepts a new cardinal orientation.
type Listener func(o Orientation, r Rotation)

// Tracker derives the portrait flag and stream rotation from device-rotation
// notifications. Unmapped orientations (face up/down) retain the previous
// state; that is expected device behaviour, not an error.
type Tracker struct {
	windows WindowProvider
	conn    Connection
	logger  *slog.Logger

	mu        sync.Mutex
	rotation  Rotation
	portrait  bool
	listeners []Listener
}

// NewTracker returns a tracker starting in portrait with a 90 degree stream
// rotation, matching a scanning screen presented portrait-first.
func NewTracker(windows WindowProvider, conn Connection, logger *slog.Logger) *Tracker {
	return &Tracker{
		windows:  windows,
		conn:     conn,
		logger:   logger,
		rotation: Rotate90,
		portrait: true,
	}
}

// AddListener registers l for accepted orientation changes.
func (t *Tracker) AddListener(l Listener) {
	if t == nil || l == nil {
		return
	}
	t.mu.Lock()
	t.listeners = append(t.listeners, l)
	t.mu.Unlock()
}

// Current returns the tracked rotation and portrait flag.
func (t *Tracker) Current() (Rotation, bool) {
	if t == nil {
		return Rotate90, true
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.rotation, t.portrait
}

// OnOrientationChanged handles one device-rotation notification. It never
// fails: unsupported connections and unmapped orientations both leave the
// previous state untouched.
func (t *Tracker) OnOrientationChanged() {
	if t == nil || t.windows == nil {
		return
	}
	if t.conn != nil && !t.conn.SupportsRotation() {
		return
	}
	o := t.windows.InterfaceOrientation()
	r, ok := RotationFor(o)
	if !ok {
		return
	}

	t.mu.Lock()
	t.rotation = r
	t.portrait = o.IsPortrait()
	listeners := make([]Listener, len(t.listeners))
	copy(listeners, t.listeners)
	t.mu.Unlock()

	if t.conn != nil {
		t.conn.SetRotation(r)
	}
	if t.logger != nil {
		t.logger.Debug("orientation changed", "orientation", o.String(), "rotation", r.String())
	}
	for _, l := range listeners {
		l(o, r)
	}
}
