package presenter

import "time"

// Loop aggregates feature presenters and drives periodic updates.
//
// It calls Tick on the sub-presenters and invokes a scheduler callback. The
// zero value is usable (methods are nil-safe). Detection-driven presenters
// (projection, auto-scan) are fed by the camera stream, not the loop.
type Loop struct {
	Session  *SessionPresenter
	State    *StatePresenter
	Schedule func()
}

func NewLoop(sess *SessionPresenter, state *StatePresenter, schedule func()) *Loop {
	return &Loop{Session: sess, State: state, Schedule: schedule}
}

func (l *Loop) Tick() {
	if l == nil {
		return
	}
	now := time.Now()
	// Drive the state presenter first so it can flush pending changes.
	if l.State != nil {
		l.State.Tick(now)
	}
	if l.Session != nil {
		l.Session.Tick(now)
	}
	if l.Schedule != nil {
		l.Schedule()
	}
}
