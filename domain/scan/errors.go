package scan

import (
	"errors"
	"fmt"
)

// ErrUnsupported marks expected device-capability variance (no torch, no
// orientation support). Call sites absorb it silently; it is never forwarded
// to the fault observer.
var ErrUnsupported = errors.New("operation unsupported by device")

// ErrInputDevice is the errors.Is target for any InputDeviceError.
var ErrInputDevice = errors.New("input device error")

// InputDeviceError wraps a failure while programming the capture device
// (focus or exposure). It is forwarded to the fault observer and never aborts
// the detection loop.
type InputDeviceError struct {
	Op  string
	Err error
}

func (e *InputDeviceError) Error() string {
	return fmt.Sprintf("input device: %s: %v", e.Op, e.Err)
}

func (e *InputDeviceError) Unwrap() error { return e.Err }

// Is matches ErrInputDevice so callers can classify without the concrete type.
func (e *InputDeviceError) Is(target error) bool { return target == ErrInputDevice }

// CaptureFault wraps a failed still-image capture. It is always surfaced to
// the result observer, never dropped.
type CaptureFault struct {
	Err error
}

func (e *CaptureFault) Error() string {
	return fmt.Sprintf("capture failed: %v", e.Err)
}

func (e *CaptureFault) Unwrap() error { return e.Err }
