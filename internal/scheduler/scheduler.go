package scheduler

import (
	"context"
	"time"
)

// DefaultMaxWait caps a single sleep slice of the watch loop.
const DefaultMaxWait = 300 * time.Second

// Queue is the event queue: a min-heap of Events keyed by trigger time.
// Queue is not safe for concurrent use; the owner serializes access.
type Queue struct {
	h   eventHeap
	seq uint64
}

// NewQueue creates an empty Queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Push enqueues an event for task at the given time.
func (q *Queue) Push(at time.Time, kind Kind, task Handle) {
	q.seq++
	heapPush(&q.h, Event{At: at, Kind: kind, Task: task, seq: q.seq})
}

// Peek returns the earliest event without removing it.
func (q *Queue) Peek() (Event, bool) {
	if len(q.h) == 0 {
		return Event{}, false
	}
	return q.h[0], true
}

// Pop removes and returns the earliest event.
func (q *Queue) Pop() (Event, bool) {
	if len(q.h) == 0 {
		return Event{}, false
	}
	return heapPop(&q.h), true
}

// Len returns the number of events still waiting to fire.
func (q *Queue) Len() int {
	return len(q.h)
}

// Clock reports the current wall-clock time.
type Clock interface {
	Now() time.Time
}

// Sleeper suspends the calling goroutine for up to d. An implementation
// may return early when its own context is cancelled; Run then notices the
// cancellation at its next check.
type Sleeper interface {
	Sleep(d time.Duration)
}

// Dispatcher fires due events on behalf of the Watcher.
type Dispatcher interface {
	// Dispatch pops and fires every event due at now and returns the
	// trigger time of the earliest event left. ok is false once the
	// queue is empty.
	Dispatch(now time.Time) (next time.Time, ok bool)
}

// Watcher runs the cooperative notification loop. All state lives in the
// Dispatcher's queue, so Run may be called again later to resume.
type Watcher struct {
	Clock   Clock
	Sleeper Sleeper
	// Ask is called before every sleep with the time left until the next
	// event. Returning false stops the watch. A nil Ask always continues.
	Ask func(wait time.Duration) (bool, error)
	// MaxWait caps one sleep slice. Zero means DefaultMaxWait.
	MaxWait time.Duration
}

// Run fires events until the queue is empty, the caller declines to keep
// watching, or ctx is cancelled. ctx is checked before each wait, ahead of
// Ask, so a cancelled watch never prompts.
func (w *Watcher) Run(ctx context.Context, d Dispatcher) error {
	maxWait := w.MaxWait
	if maxWait <= 0 {
		maxWait = DefaultMaxWait
	}
	for {
		now := w.Clock.Now()
		next, ok := d.Dispatch(now)
		if !ok {
			return nil
		}
		wait := next.Sub(now)
		if wait <= 0 {
			continue
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if w.Ask != nil {
			cont, err := w.Ask(wait)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
		w.Sleeper.Sleep(min(maxWait, wait))
	}
}
