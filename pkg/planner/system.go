package planner

import (
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/tasktide/tasktide/internal/scheduler"
	"github.com/tasktide/tasktide/pkg/logger"
)

// Event is a pending or fired start/deadline notification.
type Event = scheduler.Event

// EventKind tells a start event from a deadline event.
type EventKind = scheduler.Kind

const (
	EventStart    = scheduler.KindStart
	EventDeadline = scheduler.KindDeadline
)

// EventHandler is called once for every event the notification loop fires,
// after the event's effect has been applied to the task.
type EventHandler func(ev Event, t *Task)

// System is the context object every operation runs against. It owns the
// task arena, the start-ordered Store and the event queue, and guards all
// three with one mutex so an insert and its two queue pushes are a single
// step.
type System struct {
	mu      sync.Mutex
	arena   []*Task
	store   Store
	queue   *scheduler.Queue
	log     logger.Logger
	onEvent EventHandler
}

// Option configures a System.
type Option func(*System)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logger.Logger) Option {
	return func(s *System) { s.log = l }
}

// WithEventHandler registers the callback for fired events.
func WithEventHandler(h EventHandler) Option {
	return func(s *System) { s.onEvent = h }
}

// NewSystem creates an empty System.
func NewSystem(opts ...Option) *System {
	s := &System{
		queue: scheduler.NewQueue(),
		log:   logger.NewNopLogger(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Add creates a task, inserts it in start order and queues its start and
// deadline events. Nothing is validated.
func (s *System) Add(name string, category Category, start, deadline time.Time, priority, duration int) *Task {
	t := NewTask(name, category, start, deadline, priority, duration)
	s.Insert(t)
	return t
}

// Insert adds a caller-built task the same way Add does and returns it.
func (s *System) Insert(t *Task) *Task {
	return s.Restore(t)
}

// Restore re-adds a task loaded from storage. Events listed in fired were
// consumed in an earlier run and are not queued again.
func (s *System) Restore(t *Task, fired ...EventKind) *Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	if t.ID == "" {
		t.ID = uuid.NewString()
	}
	if t.Status == "" {
		t.Status = Upcoming
	}
	t.handle = Handle(len(s.arena))
	s.arena = append(s.arena, t)
	pos := s.store.Insert(t)

	if !hasKind(fired, EventStart) {
		s.queue.Push(t.Start, EventStart, t.handle)
	}
	if !hasKind(fired, EventDeadline) {
		s.queue.Push(t.Deadline, EventDeadline, t.handle)
	}
	s.log.Debug("task %q stored at position %d, %d event(s) pending", t.Name, pos, s.queue.Len())
	return t
}

func hasKind(kinds []EventKind, k EventKind) bool {
	for _, x := range kinds {
		if x == k {
			return true
		}
	}
	return false
}

// Task resolves a handle.
func (s *System) Task(h Handle) (*Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if h < 0 || int(h) >= len(s.arena) {
		return nil, fmt.Errorf("%w: %d", ErrUnknownHandle, h)
	}
	return s.arena[h], nil
}

// Tasks returns the tasks in start order.
func (s *System) Tasks() []*Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Snapshot()
}

// Len returns the number of tasks.
func (s *System) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.store.Len()
}

// Pending returns the number of events that have not fired yet.
func (s *System) Pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queue.Len()
}

// Sort returns the tasks ordered by key without touching start order.
func (s *System) Sort(key SortKey) ([]*Task, error) {
	return Sort(s.Tasks(), key)
}

// Optimize selects tasks for a budget of hours, considering them in start
// order. The System is not modified.
func (s *System) Optimize(budget int) Selection {
	return Optimize(s.Tasks(), budget)
}

// GanttRow is the read-only shape exported for chart rendering.
type GanttRow struct {
	Name     string    `json:"name" yaml:"name"`
	Category Category  `json:"category" yaml:"category"`
	Start    time.Time `json:"start" yaml:"start"`
	Deadline time.Time `json:"deadline" yaml:"deadline"`
}

// Snapshot exports one GanttRow per task in start order.
func (s *System) Snapshot() []GanttRow {
	tasks := s.Tasks()
	rows := make([]GanttRow, 0, len(tasks))
	for _, t := range tasks {
		rows = append(rows, GanttRow{
			Name:     t.Name,
			Category: t.Category,
			Start:    t.Start,
			Deadline: t.Deadline,
		})
	}
	return rows
}
