package tui

import (
	"github.com/dulina20231254-glitch/urbannest/internal/session"
)

// watcher is the session subscriber. Mutators notify synchronously, so the
// latest snapshot is parked here until the model applies it.
type watcher struct {
	pending *session.Snapshot
}

func (w *watcher) notify(s session.Snapshot) {
	w.pending = &s
}

// take returns the parked snapshot and clears it. ok is false when the
// session has not changed since the last take.
func (w *watcher) take() (snap session.Snapshot, ok bool) {
	if w.pending == nil {
		return session.Snapshot{}, false
	}
	snap = *w.pending
	w.pending = nil
	return snap, true
}
