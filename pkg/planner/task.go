package planner

import (
	"fmt"
	"strings"
	"time"

	"github.com/tasktide/tasktide/internal/scheduler"
)

// Category is the task type.
type Category string

const (
	Academic Category = "academic"
	Personal Category = "personal"
)

// ParseCategory validates a user supplied task type.
func ParseCategory(s string) (Category, error) {
	switch c := Category(strings.ToLower(strings.TrimSpace(s))); c {
	case Academic, Personal:
		return c, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownCategory, s)
}

// Status is the lifecycle state of a task.
type Status string

const (
	Upcoming  Status = "upcoming"
	Ongoing   Status = "ongoing"
	Completed Status = "completed"
	Missed    Status = "missed"
)

// Handle identifies a task inside a System. Events refer to tasks by handle.
type Handle = scheduler.Handle

// Task is a time-bounded unit of work. Identity is the pointer (or its
// Handle), never the name; names need not be unique.
//
// Deadline is not required to fall after Start.
type Task struct {
	// ID is an opaque identifier, used by persistence.
	ID       string
	Name     string
	Category Category
	Start    time.Time
	Deadline time.Time
	// Priority: higher is more important.
	Priority int
	// Duration in whole hours.
	Duration int
	Status   Status

	handle Handle
}

// NewTask creates an upcoming task. It validates nothing.
func NewTask(name string, category Category, start, deadline time.Time, priority, duration int) *Task {
	return &Task{
		Name:     name,
		Category: category,
		Start:    start,
		Deadline: deadline,
		Priority: priority,
		Duration: duration,
		Status:   Upcoming,
	}
}

// Handle returns the task's handle in the System it was added to.
func (t *Task) Handle() Handle {
	return t.handle
}

// End is the time the task's working window closes: Start plus Duration hours.
func (t *Task) End() time.Time {
	return t.Start.Add(time.Duration(t.Duration) * time.Hour)
}

// AdjustedPriority is the value the budget optimizer maximizes: the full
// priority for academic tasks, half of it (floored) otherwise.
func (t *Task) AdjustedPriority() int {
	if t.Category == Academic {
		return t.Priority
	}
	return floorDiv(t.Priority, 2)
}

func (t *Task) String() string {
	return fmt.Sprintf("Task: %s, Type: %s Start: %s, Deadline: %s, Priority: %d, Duration: %d hours",
		t.Name, t.Category, t.Start.Format(time.DateTime), t.Deadline.Format(time.DateTime), t.Priority, t.Duration)
}

// floorDiv rounds toward negative infinity, unlike Go's / operator.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
