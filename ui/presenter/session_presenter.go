package presenter

import (
	"time"

	"github.com/soocke/docscan-go/domain/scan"
	"github.com/soocke/docscan-go/ui/model"
)

// SessionView displays formatted live and total scanning durations.
type SessionView interface {
	SetSession(live, total time.Duration)
}

// SessionPresenter advances the session model from coordinator liveness and
// pushes the durations to the view.
type SessionPresenter struct {
	sess   *model.SessionModel
	states scan.StateSource
	view   SessionView
}

// NewSessionPresenter returns a new SessionPresenter.
func NewSessionPresenter(sess *model.SessionModel, states scan.StateSource, view SessionView) *SessionPresenter {
	return &SessionPresenter{sess: sess, states: states, view: view}
}

// Tick updates the presenter: advance the session model and push values to
// the view.
func (p *SessionPresenter) Tick(now time.Time) {
	if p == nil || p.sess == nil || p.states == nil || p.view == nil {
		return
	}
	p.sess.OnTick(p.states.Snapshot().Live, now)
	live, total := p.sess.Values()
	p.view.SetSession(live, total)
}
