package notifymock

import (
	"sync"

	"solvency-backend/internal/notify"
)

// Recorder captures dispatched events for assertions. Safe for use
// from the dispatcher goroutine.
type Recorder struct {
	mu     sync.Mutex
	events []notify.Event
}

func (r *Recorder) Dispatch(ev notify.Event) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.events = append(r.events, ev)
}

func (r *Recorder) Events() []notify.Event {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]notify.Event, len(r.events))
	copy(out, r.events)
	return out
}
