package presenter

import (
	"github.com/soocke/docscan-go/domain/scan"
)

// ScreenView updates UI elements affected by screen visibility changes.
type ScreenView interface {
	OverlayReset()
}

// ScreenPresenter owns presentation logic for the scanning screen's
// visibility transitions. Appear/Disappear are idempotent.
type ScreenPresenter struct {
	coordinator scan.ScreenLifecycle
	view        ScreenView
	watcher     *AutoScanWatcher
	visible     bool
}

func NewScreenPresenter(coordinator scan.ScreenLifecycle, view ScreenView, watcher *AutoScanWatcher) *ScreenPresenter {
	return &ScreenPresenter{coordinator: coordinator, view: view, watcher: watcher}
}

// Appear marks the screen visible: resets the overlay and watcher, then lets
// the coordinator restart the session and disable the idle timer.
func (p *ScreenPresenter) Appear() {
	if p == nil || p.coordinator == nil || p.view == nil {
		return
	}
	if p.visible { // already visible
		return
	}
	p.visible = true
	p.view.OverlayReset()
	p.watcher.Reset()
	p.coordinator.ScreenWillAppear()
}

// Disappear marks the screen hidden; the coordinator stops the session,
// re-enables the idle timer and forces the torch off.
func (p *ScreenPresenter) Disappear() {
	if p == nil || p.coordinator == nil || p.view == nil {
		return
	}
	if !p.visible { // already hidden
		return
	}
	p.visible = false
	p.coordinator.ScreenDidDisappear()
}

// Visible reports the tracked visibility.
func (p *ScreenPresenter) Visible() bool {
	if p == nil {
		return false
	}
	return p.visible
}
