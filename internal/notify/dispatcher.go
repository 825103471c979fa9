// Package notify delivers regulator-facing alerts when a submission
// reaches a state needing attention. Delivery is best-effort and fully
// decoupled from the lifecycle transition: a slow or failing channel
// can drop alerts but never blocks or rolls back a decision.
package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"solvency-backend/internal/domain/submission"
)

type Kind string

const (
	KindNewSubmission Kind = "NewSubmission"
	KindApproved      Kind = "Approved"
	KindRejected      Kind = "Rejected"
)

// Event carries everything a sink needs, so sinks never read the store.
type Event struct {
	Kind          Kind               `json:"kind"`
	SubmissionID  string             `json:"submissionId"`
	InsurerID     string             `json:"insurerId"`
	DataHash      string             `json:"dataHash"`
	SolvencyRatio submission.Ratio   `json:"solvencyRatio"`
	Verdict       submission.Verdict `json:"complianceVerdict"`
	OccurredAt    time.Time          `json:"occurredAt"`
}

type Sink interface {
	Deliver(ctx context.Context, ev Event) error
}

const deliverTimeout = 5 * time.Second

// Dispatcher fans events out to its sinks from a single worker
// goroutine fed by a bounded queue. Enqueue never blocks: when the
// queue is full the event is dropped and logged.
type Dispatcher struct {
	sinks []Sink
	ch    chan Event
	done  chan struct{}

	mu     sync.RWMutex
	closed bool
}

func NewDispatcher(buffer int, sinks ...Sink) *Dispatcher {
	if buffer <= 0 {
		buffer = 64
	}
	d := &Dispatcher{
		sinks: sinks,
		ch:    make(chan Event, buffer),
		done:  make(chan struct{}),
	}
	go d.run()
	return d
}

func (d *Dispatcher) Dispatch(ev Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()
	if d.closed {
		log.Printf("notify: dispatcher closed, dropping %s event for submission %s", ev.Kind, ev.SubmissionID)
		return
	}
	select {
	case d.ch <- ev:
	default:
		log.Printf("notify: queue full, dropping %s event for submission %s", ev.Kind, ev.SubmissionID)
	}
}

func (d *Dispatcher) run() {
	defer close(d.done)
	for ev := range d.ch {
		for _, s := range d.sinks {
			ctx, cancel := context.WithTimeout(context.Background(), deliverTimeout)
			if err := s.Deliver(ctx, ev); err != nil {
				log.Printf("notify: %T failed for submission %s: %v", s, ev.SubmissionID, err)
			}
			cancel()
		}
	}
}

// Close drains queued events and stops the worker. A Dispatch racing
// Close drops its event instead of sending on the closed channel.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if !d.closed {
		d.closed = true
		close(d.ch)
	}
	d.mu.Unlock()
	<-d.done
}
