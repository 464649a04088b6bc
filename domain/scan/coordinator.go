package scan

import (
	"log/slog"
	"runtime/debug"
	"sync/atomic"

	"github.com/soocke/docscan-go/domain/camera"
	"github.com/soocke/docscan-go/domain/geometry"
	"github.com/soocke/docscan-go/domain/orientation"
	"github.com/soocke/docscan-go/domain/still"
)

// Coordinator owns the capture session state. Detection results, orientation
// notifications, subject-area changes and touch-driven focus requests arrive
// from independent goroutines; every mutation is funneled through one event
// inbox and applied by a single loop goroutine, so writers never race on
// Capturing, FlashOn or Portrait. A full State snapshot is republished after
// every event for lock-free consistent reads.
type Coordinator struct {
	logger  *slog.Logger
	device  Device
	session camera.Session
	actions Callbacks
	faults  FaultObserver
	results ResultObserver

	events    chan interface{}
	done      chan struct{} // closed once the loop has shut down and drained
	closed    atomic.Bool
	snap      atomic.Value // State
	state     State        // loop-owned
	listeners []Listener
}

// events
type (
	evtSetFocus       struct{ pt geometry.Point }
	evtResetFocus     struct{}
	evtToggleFlash    struct{ reply chan FlashState }
	evtToggleAutoScan struct{ reply chan bool }
	evtCapture        struct{}
	evtCaptureDone    struct {
		still camera.Still
		err   error
	}
	evtOrientation  struct{ portrait bool }
	evtSetEditing   struct{ editing bool }
	evtScreenShown  struct{}
	evtScreenHidden struct{}
	evtAddListener  struct{ l Listener }
	evtShutdown     struct{}
)

// NewCoordinator constructs the coordinator and starts its event loop. It
// registers itself as the session's capture handler; callers keep the session
// detection side for their projection pipeline.
func NewCoordinator(logger *slog.Logger, device Device, session camera.Session, actions Callbacks, faults FaultObserver, results ResultObserver) *Coordinator {
	c := &Coordinator{
		logger:  logger,
		device:  device,
		session: session,
		actions: actions,
		faults:  faults,
		results: results,
		events:  make(chan interface{}, 64),
		done:    make(chan struct{}),
		state:   State{Portrait: true, AutoScanEnabled: true},
	}
	c.snap.Store(c.state)
	if session != nil {
		session.SetCaptureHandler(c)
	}
	go func() {
		defer func() {
			if r := recover(); r != nil {
				stack := string(debug.Stack())
				if logger != nil {
					logger.Error("coordinator panic", "error", r, "stack", stack)
				}
			}
		}()
		c.loop()
	}()
	return c
}

func (c *Coordinator) loop() {
	for ev := range c.events {
		switch e := ev.(type) {
		case evtSetFocus:
			c.handleSetFocus(e.pt)
		case evtResetFocus:
			c.handleResetFocus()
		case evtToggleFlash:
			e.reply <- c.handleToggleFlash()
		case evtToggleAutoScan:
			c.state.AutoScanEnabled = !c.state.AutoScanEnabled
			e.reply <- c.state.AutoScanEnabled
		case evtCapture:
			c.handleCapture()
		case evtCaptureDone:
			c.handleCaptureDone(e.still, e.err)
		case evtOrientation:
			c.state.Portrait = e.portrait
		case evtSetEditing:
			c.state.Editing = e.editing
		case evtScreenShown:
			c.handleScreenShown()
		case evtScreenHidden:
			c.handleScreenHidden()
		case evtAddListener:
			c.listeners = append(c.listeners, e.l)
			continue // no state change to publish
		case evtShutdown:
			c.handleShutdown()
			c.drain()
			close(c.done)
			// A sender can slip an event in between the first drain and the
			// close; answer those too, later ones bail on done themselves.
			c.drain()
			return
		}
		c.publish()
	}
}

// publish republishes the state snapshot and notifies listeners of changes.
func (c *Coordinator) publish() {
	prev := c.snap.Load().(State)
	if prev == c.state {
		return
	}
	c.snap.Store(c.state)
	for _, l := range c.listeners {
		l(prev, c.state)
	}
}

func (c *Coordinator) handleSetFocus(pt geometry.Point) {
	if c.device == nil {
		return
	}
	if err := c.device.SetFocusPoint(pt); err != nil {
		c.fault(&InputDeviceError{Op: "set focus point", Err: err})
		return // prior focus state untouched
	}
	p := pt
	c.state.FocusPoint = &p
	if c.actions.ShowFocus != nil {
		c.actions.ShowFocus(pt)
	}
}

func (c *Coordinator) handleResetFocus() {
	if c.device == nil {
		return
	}
	if err := c.device.ResetFocusToAuto(); err != nil {
		c.fault(&InputDeviceError{Op: "reset focus", Err: err})
		return
	}
	c.state.FocusPoint = nil
	if c.actions.HideFocus != nil {
		c.actions.HideFocus()
	}
}

func (c *Coordinator) handleToggleFlash() FlashState {
	if c.device == nil || !c.device.HasTorch() {
		return FlashUnavailable
	}
	fs := c.device.ToggleFlash()
	c.state.FlashOn = fs == FlashOn
	return fs
}

func (c *Coordinator) handleCapture() {
	if c.state.Capturing { // single in-flight capture
		return
	}
	c.state.Capturing = true
	if c.session != nil {
		c.session.CapturePhoto()
	}
}

func (c *Coordinator) handleCaptureDone(s camera.Still, err error) {
	c.state.Capturing = false
	// Stop the live session so no further detection races the completion.
	if c.session != nil {
		c.session.Stop()
	}
	c.state.Live = false
	if err != nil {
		if c.results != nil {
			c.results.OnCaptureFailure(&CaptureFault{Err: err})
		}
		return
	}
	if s.Image != nil {
		s.Image = still.Normalize(s.Image, c.state.Portrait)
	}
	if c.logger != nil {
		c.logger.Info("capture completed", "id", s.ID.String())
	}
	if c.results != nil {
		c.results.OnCaptureSuccess(s)
	}
}

func (c *Coordinator) handleScreenShown() {
	c.state.Editing = false
	if c.actions.ClearOverlay != nil {
		c.actions.ClearOverlay()
	}
	if c.session != nil {
		c.session.Start()
	}
	c.state.Live = true
	if c.actions.DisableIdleTimer != nil {
		c.actions.DisableIdleTimer(true)
	}
}

func (c *Coordinator) handleScreenHidden() {
	if c.actions.DisableIdleTimer != nil {
		c.actions.DisableIdleTimer(false)
	}
	if c.session != nil {
		c.session.Stop()
	}
	c.state.Live = false
	c.torchOffIfOn()
}

func (c *Coordinator) handleShutdown() {
	// Teardown is best effort: unregister first so no completion arrives
	// after state is released, then stop and make sure the torch is off.
	if c.session != nil {
		c.session.SetCaptureHandler(nil)
		c.session.Stop()
	}
	c.state.Live = false
	c.state.Capturing = false
	c.torchOffIfOn()
	c.publish()
}

func (c *Coordinator) torchOffIfOn() {
	if c.device != nil && c.device.TorchOn() {
		c.device.TorchOff()
	}
	c.state.FlashOn = false
}

func (c *Coordinator) fault(err error) {
	if c.logger != nil {
		c.logger.Error("device fault", "error", err)
	}
	if c.faults != nil {
		c.faults.OnFault(err)
	}
}

func (c *Coordinator) send(ev interface{}) {
	if c == nil || c.closed.Load() {
		return
	}
	select {
	case c.events <- ev:
	case <-c.done:
	}
}

// Public API.

// Snapshot returns the current session state as one consistent value.
func (c *Coordinator) Snapshot() State {
	if c == nil {
		return State{Portrait: true, AutoScanEnabled: true}
	}
	return c.snap.Load().(State)
}

// SetFocusPoint programs the device focus point (touch-to-focus). Device
// failures reach the fault observer; prior focus state is kept.
func (c *Coordinator) SetFocusPoint(pt geometry.Point) { c.send(evtSetFocus{pt: pt}) }

// ResetFocusToAuto restores continuous autofocus. Triggered by
// subject-area-change signals from the device.
func (c *Coordinator) ResetFocusToAuto() { c.send(evtResetFocus{}) }

// ToggleFlash flips the torch and returns the resulting state.
// FlashUnavailable is returned when the device has no torch; callers treat
// Unknown and Unavailable as off.
func (c *Coordinator) ToggleFlash() FlashState {
	if c == nil || c.closed.Load() {
		return FlashUnknown
	}
	reply := make(chan FlashState, 1)
	select {
	case c.events <- evtToggleFlash{reply: reply}:
	case <-c.done:
		return FlashUnknown
	}
	select {
	case v := <-reply:
		return v
	case <-c.done:
		// The drain may have answered just before shutting down.
		select {
		case v := <-reply:
			return v
		default:
			return FlashUnknown
		}
	}
}

// ToggleAutoScan flips the auto-scan flag and returns the new value.
func (c *Coordinator) ToggleAutoScan() bool {
	if c == nil || c.closed.Load() {
		return c.Snapshot().AutoScanEnabled
	}
	reply := make(chan bool, 1)
	select {
	case c.events <- evtToggleAutoScan{reply: reply}:
	case <-c.done:
		return c.Snapshot().AutoScanEnabled
	}
	select {
	case v := <-reply:
		return v
	case <-c.done:
		select {
		case v := <-reply:
			return v
		default:
			return c.Snapshot().AutoScanEnabled
		}
	}
}

// CapturePhoto requests one still capture. A second call while a capture is
// in flight is a no-op, not a second device request.
func (c *Coordinator) CapturePhoto() { c.send(evtCapture{}) }

// SetEditing marks the review/edit phase after a successful capture.
func (c *Coordinator) SetEditing(editing bool) { c.send(evtSetEditing{editing: editing}) }

// OrientationChanged records the new interface orientation's portrait flag.
// Orientations outside the four cardinals (face up/down) keep the prior flag.
func (c *Coordinator) OrientationChanged(o orientation.Orientation) {
	if _, ok := orientation.RotationFor(o); !ok {
		return
	}
	c.send(evtOrientation{portrait: o.IsPortrait()})
}

// ScreenWillAppear resets editing, clears stale overlay shapes, starts the
// session and disables the idle timer.
func (c *Coordinator) ScreenWillAppear() { c.send(evtScreenShown{}) }

// ScreenDidDisappear re-enables the idle timer, stops the session and forces
// the torch off so the device is never left lit after dismissal.
func (c *Coordinator) ScreenDidDisappear() { c.send(evtScreenHidden{}) }

// AddListener registers l for state-change notifications.
func (c *Coordinator) AddListener(l Listener) { c.send(evtAddListener{l: l}) }

// Close tears the coordinator down: unregisters from the session, stops it,
// forces the torch off and ends the event loop. Idempotent.
func (c *Coordinator) Close() {
	if c == nil || c.closed.Swap(true) {
		return
	}
	c.events <- evtShutdown{}
}

// camera.CaptureHandler implementation; completions re-enter the inbox so
// they are serialized with every other mutation.

func (c *Coordinator) OnCapture(s camera.Still) { c.send(evtCaptureDone{still: s}) }
func (c *Coordinator) OnCaptureError(err error) { c.send(evtCaptureDone{err: err}) }

// drain answers any toggle replies buffered behind the shutdown event so
// their callers never block.
func (c *Coordinator) drain() {
	for {
		select {
		case ev := <-c.events:
			switch e := ev.(type) {
			case evtToggleFlash:
				e.reply <- FlashUnknown
			case evtToggleAutoScan:
				e.reply <- c.state.AutoScanEnabled
			}
		default:
			return
		}
	}
}

// Ensure contract satisfaction.
var _ CoordinatorContract = (*Coordinator)(nil)
var _ camera.CaptureHandler = (*Coordinator)(nil)
