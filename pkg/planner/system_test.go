package planner

import (
	"errors"
	"testing"
	"time"

	"github.com/tasktide/tasktide/pkg/logger"
)

func TestSystem_AddKeepsStartOrder(t *testing.T) {
	s := NewSystem()
	for i, off := range []int{3, -1, 7, 0, 3, -5, 2} {
		s.Add("t", Academic, base.Add(time.Duration(off)*time.Hour), base, 1, 1)
		if s.Len() != i+1 {
			t.Fatalf("expected %d tasks, got %d", i+1, s.Len())
		}
		assertStartOrder(t, s.Tasks())
	}
}

func TestSystem_TwoEventsPerTask(t *testing.T) {
	s := sampleSystem(t)
	if got, want := s.Pending(), 2*s.Len(); got != want {
		t.Fatalf("expected %d pending events, got %d", want, got)
	}
}

func TestSystem_AssignsIDs(t *testing.T) {
	s := NewSystem()
	a := s.Add("a", Academic, base, base, 1, 1)
	b := s.Add("b", Academic, base, base, 1, 1)
	if a.ID == "" || b.ID == "" || a.ID == b.ID {
		t.Fatalf("expected distinct ids, got %q and %q", a.ID, b.ID)
	}

	kept := NewTask("kept", Personal, base, base, 1, 1)
	kept.ID = "fixed"
	s.Insert(kept)
	if kept.ID != "fixed" {
		t.Errorf("expected id to be kept, got %q", kept.ID)
	}
}

func TestSystem_HandleResolves(t *testing.T) {
	s := sampleSystem(t)
	for _, task := range s.Tasks() {
		got, err := s.Task(task.Handle())
		if err != nil {
			t.Fatalf("resolve %q: %v", task.Name, err)
		}
		if got != task {
			t.Fatalf("handle of %q resolved to %q", task.Name, got.Name)
		}
	}
	if _, err := s.Task(Handle(99)); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("expected ErrUnknownHandle, got %v", err)
	}
	if _, err := s.Task(Handle(-1)); !errors.Is(err, ErrUnknownHandle) {
		t.Errorf("expected ErrUnknownHandle, got %v", err)
	}
}

func TestSystem_RestoreSkipsFiredEvents(t *testing.T) {
	s := NewSystem()
	done := NewTask("done", Academic, base, base.Add(time.Hour), 1, 1)
	done.Status = Completed
	s.Restore(done, EventStart, EventDeadline)

	half := NewTask("half", Academic, base, base.Add(time.Hour), 1, 1)
	s.Restore(half, EventStart)

	if s.Pending() != 1 {
		t.Fatalf("expected 1 pending event, got %d", s.Pending())
	}
	if done.Status != Completed {
		t.Errorf("restore overwrote status: %s", done.Status)
	}
	if s.Len() != 2 {
		t.Errorf("expected 2 tasks, got %d", s.Len())
	}
}

func TestSystem_InsertLogsAtDebug(t *testing.T) {
	mock := logger.NewMockLogger()
	s := NewSystem(WithLogger(mock))
	s.Add("a", Academic, base, base, 1, 1)
	if len(mock.DebugCalls) != 1 {
		t.Fatalf("expected 1 debug line, got %v", mock.DebugCalls)
	}
}

func TestSystem_Snapshot(t *testing.T) {
	s := sampleSystem(t)
	rows := s.Snapshot()
	tasks := s.Tasks()
	if len(rows) != len(tasks) {
		t.Fatalf("expected %d rows, got %d", len(tasks), len(rows))
	}
	for i, row := range rows {
		task := tasks[i]
		if row.Name != task.Name || row.Category != task.Category ||
			!row.Start.Equal(task.Start) || !row.Deadline.Equal(task.Deadline) {
			t.Errorf("row %d does not match task %q: %+v", i, task.Name, row)
		}
	}
}
