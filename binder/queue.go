package binder

import (
	"context"
	"errors"

	"github.com/spektr-org/launchdash/engine"
)

// ErrQueueClosed is returned by Submit and Snapshot once Run has returned.
var ErrQueueClosed = errors.New("binder: queue closed")

// EventKind names an input event produced by the UI.
type EventKind string

const (
	EventSiteChanged         EventKind = "site-selection-changed"
	EventPayloadRangeChanged EventKind = "payload-range-changed"
)

// Event is one user input.
type Event struct {
	Kind  EventKind           `json:"kind"`
	Site  string              `json:"site,omitempty"`
	Range engine.PayloadRange `json:"range"`
}

// SiteChanged builds a site-selection-changed event.
func SiteChanged(site string) Event {
	return Event{Kind: EventSiteChanged, Site: site}
}

// PayloadRangeChanged builds a payload-range-changed event.
func PayloadRangeChanged(lo, hi float64) Event {
	return Event{Kind: EventPayloadRangeChanged, Range: engine.PayloadRange{Lo: lo, Hi: hi}}
}

// Result is the binder's state after an event has been handled.
type Result struct {
	State      engine.ControlState `json:"state"`
	Recomputed []ViewID            `json:"recomputed"`
	Views      Views               `json:"views"`
}

type request struct {
	event *Event // nil for a snapshot
	reply chan Result
}

// Queue serializes events from concurrent producers onto a single drain
// goroutine, so each event is handled to completion before the next starts.
type Queue struct {
	binder   *Binder
	requests chan request
	done     chan struct{}
}

// NewQueue wraps b. size is the number of events that may wait while one is
// being handled; values below 1 are treated as 1.
func NewQueue(b *Binder, size int) *Queue {
	if size < 1 {
		size = 1
	}
	return &Queue{
		binder:   b,
		requests: make(chan request, size),
		done:     make(chan struct{}),
	}
}

// Run drains events until ctx is done. It must be called exactly once.
// After it returns, pending and future submissions fail with ErrQueueClosed.
func (q *Queue) Run(ctx context.Context) error {
	defer close(q.done)
	for {
		select {
		case <-ctx.Done():
			return nil
		case req := <-q.requests:
			var recomputed []ViewID
			if req.event != nil {
				recomputed = q.binder.Apply(*req.event)
			}
			req.reply <- Result{
				State:      q.binder.State(),
				Recomputed: recomputed,
				Views:      q.binder.Views(),
			}
		}
	}
}

// Submit enqueues ev and waits for it to be handled.
func (q *Queue) Submit(ctx context.Context, ev Event) (Result, error) {
	return q.do(ctx, &ev)
}

// Snapshot returns the current state and views, ordered after every event
// submitted before it.
func (q *Queue) Snapshot(ctx context.Context) (Result, error) {
	return q.do(ctx, nil)
}

func (q *Queue) do(ctx context.Context, ev *Event) (Result, error) {
	req := request{event: ev, reply: make(chan Result, 1)}

	select {
	case <-q.done:
		return Result{}, ErrQueueClosed
	default:
	}

	select {
	case q.requests <- req:
	case <-q.done:
		return Result{}, ErrQueueClosed
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}

	select {
	case res := <-req.reply:
		return res, nil
	case <-q.done:
		// Run may have handled the request just before exiting.
		select {
		case res := <-req.reply:
			return res, nil
		default:
			return Result{}, ErrQueueClosed
		}
	case <-ctx.Done():
		return Result{}, ctx.Err()
	}
}
