// Package device provides a reference implementation of the capture-device
// seam for the demo binary: focus programming always succeeds and a torch is
// present unless configured away.
package device

import (
	"sync"

	"github.com/soocke/docscan-go/domain/geometry"
	"github.com/soocke/docscan-go/domain/scan"
)

// Sim is an in-memory capture device.
type Sim struct {
	mu       sync.Mutex
	hasTorch bool
	torchOn  bool
	focus    *geometry.Point
	focusErr error
}

// NewSim returns a device with a torch.
func NewSim() *Sim { return &Sim{hasTorch: true} }

// NewSimWithoutTorch returns a device lacking a torch, for exercising the
// FlashUnavailable path.
func NewSimWithoutTorch() *Sim { return &Sim{} }

// SetFocusError makes subsequent focus operations fail. Test hook.
func (d *Sim) SetFocusError(err error) {
	d.mu.Lock()
	d.focusErr = err
	d.mu.Unlock()
}

func (d *Sim) SetFocusPoint(p geometry.Point) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.focusErr != nil {
		return d.focusErr
	}
	d.focus = &p
	return nil
}

func (d *Sim) ResetFocusToAuto() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.focusErr != nil {
		return d.focusErr
	}
	d.focus = nil
	return nil
}

// FocusPoint returns the programmed focus point, or nil under autofocus.
func (d *Sim) FocusPoint() *geometry.Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.focus
}

func (d *Sim) ToggleFlash() scan.FlashState {
	d.mu.Lock()
	defer d.mu.Unlock()
	if !d.hasTorch {
		return scan.FlashUnavailable
	}
	d.torchOn = !d.torchOn
	if d.torchOn {
		return scan.FlashOn
	}
	return scan.FlashOff
}

func (d *Sim) HasTorch() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.hasTorch
}

func (d *Sim) TorchOn() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.torchOn
}

func (d *Sim) TorchOff() {
	d.mu.Lock()
	d.torchOn = false
	d.mu.Unlock()
}

var _ scan.Device = (*Sim)(nil)
