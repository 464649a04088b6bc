package presenter

import (
	"fmt"
	"sync"
	"time"

	"github.com/soocke/docscan-go/domain/scan"
)

// StatusView sets the session status label in the view.
type StatusView interface{ SetStateLabel(string) }

// StatePresenter receives coordinator state changes and reflects the most
// recent one into the view on tick. Changes arrive on the coordinator
// goroutine while Tick runs on the UI loop, so the pending queue is guarded.
type StatePresenter struct {
	view StatusView

	mu      sync.Mutex
	pending []scan.State
	latest  string
}

func NewStatePresenter(view StatusView) *StatePresenter {
	return &StatePresenter{view: view}
}

// OnState queues a transitioned state from the coordinator listener.
//
// The latest queued state will be reflected on the next Tick.
func (p *StatePresenter) OnState(prev, next scan.State) {
	if p == nil {
		return
	}
	p.mu.Lock()
	p.pending = append(p.pending, next)
	p.mu.Unlock()
}

// Tick processes queued states and updates the view with the most recent
// one. It clears the pending queue after processing.
func (p *StatePresenter) Tick(now time.Time) {
	if p == nil || p.view == nil {
		return
	}
	p.mu.Lock()
	if len(p.pending) == 0 {
		p.mu.Unlock()
		return
	}
	last := p.pending[len(p.pending)-1]
	p.pending = p.pending[:0]
	p.mu.Unlock()

	label := formatState(last)
	if label != p.latest {
		p.latest = label
		p.view.SetStateLabel(label)
	}
}

func formatState(s scan.State) string {
	mode := "suspended"
	switch {
	case s.Capturing:
		mode = "capturing"
	case s.Live:
		mode = "live"
	}
	return fmt.Sprintf("State: %s | auto-scan %s | flash %s | %s",
		mode, onOff(s.AutoScanEnabled), onOff(s.FlashOn), layout(s.Portrait))
}

func onOff(b bool) string {
	if b {
		return "on"
	}
	return "off"
}

func layout(portrait bool) string {
	if portrait {
		return "portrait"
	}
	return "landscape"
}
