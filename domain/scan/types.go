package scan

import (
	"github.com/soocke/docscan-go/domain/camera"
	"github.com/soocke/docscan-go/domain/geometry"
)

// FlashState is the outcome of a flash toggle. Unknown and Unavailable are
// treated as "off" by callers.
type FlashState int

const (
	FlashOff FlashState = iota
	FlashOn
	FlashUnknown
	FlashUnavailable
)

func (s FlashState) String() string {
	switch s {
	case FlashOff:
		return "off"
	case FlashOn:
		return "on"
	case FlashUnknown:
		return "unknown"
	case FlashUnavailable:
		return "unavailable"
	default:
		return "invalid"
	}
}

// State is a consistent snapshot of the capture session. It is owned by the
// Coordinator and only ever mutated inside its event loop; consumers read
// whole snapshots, never individual fields mid-update.
type State struct {
	AutoScanEnabled bool
	Editing         bool
	FlashOn         bool
	Portrait        bool
	Capturing       bool
	Live            bool
	FocusPoint      *geometry.Point
}

// Device externalizes the camera-device calls (focus programming, torch).
// Errors from focus operations become InputDeviceError; capability probes
// (HasTorch) absorb variance silently.
type Device interface {
	SetFocusPoint(geometry.Point) error
	ResetFocusToAuto() error
	ToggleFlash() FlashState
	HasTorch() bool
	TorchOn() bool
	TorchOff()
}

// Callbacks externalize UI side effects the coordinator triggers.
type Callbacks struct {
	DisableIdleTimer func(disabled bool)
	ShowFocus        func(geometry.Point)
	HideFocus        func()
	ClearOverlay     func()
}

// FaultObserver receives non-fatal device faults.
type FaultObserver interface {
	OnFault(err error)
}

// ResultObserver receives capture completions, the upward interface of the
// scanning core.
type ResultObserver interface {
	OnCaptureSuccess(still camera.Still)
	OnCaptureFailure(err error)
}

// Listener is called on each published state change.
type Listener func(prev, next State)

// Interface slices for consumers (presenters).
type StateSource interface{ Snapshot() State }
type CaptureControl interface{ CapturePhoto() }
type FocusControl interface {
	SetFocusPoint(geometry.Point)
	ResetFocusToAuto()
}
type Toggles interface {
	ToggleFlash() FlashState
	ToggleAutoScan() bool
}
type ScreenLifecycle interface {
	ScreenWillAppear()
	ScreenDidDisappear()
}

// CoordinatorContract aggregate for DI.
type CoordinatorContract interface {
	StateSource
	CaptureControl
	FocusControl
	Toggles
	ScreenLifecycle
	SetEditing(bool)
	AddListener(Listener)
	Close()
}
