package scheduler

import "time"

// Handle identifies a task in the caller's arena.
type Handle int

// Kind tells whether an Event marks the start or the deadline of a task.
type Kind string

const (
	KindStart    Kind = "start"
	KindDeadline Kind = "deadline"
)

// Event is a single pending notification in the queue.
type Event struct {
	// At is the wall-clock time the event becomes due.
	At time.Time
	// Kind is either KindStart or KindDeadline.
	Kind Kind
	// Task is the handle of the task the event belongs to.
	Task Handle

	// seq is the push order, used as the last tie-break.
	seq uint64
}
