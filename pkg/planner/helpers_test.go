package planner

import (
	"errors"
	"testing"
	"time"
)

var base = time.Date(2024, 11, 20, 9, 0, 0, 0, time.UTC)

func at(day, hour, minute int) time.Time {
	return time.Date(2024, 11, day, hour, minute, 0, 0, time.UTC)
}

// sampleTasks builds the eight demo tasks in insertion order.
func sampleTasks(t *testing.T) []*Task {
	t.Helper()
	return []*Task{
		NewTask("Task 8", Academic, at(22, 14, 30), at(22, 16, 0), 5, 1),
		NewTask("Task 9", Personal, at(20, 10, 0), at(23, 12, 0), 3, 4),
		NewTask("Task 10", Personal, at(24, 7, 0), at(24, 8, 0), 2, 2),
		NewTask("Task 11", Academic, at(24, 8, 30), at(20, 9, 57), 1, 1),
		NewTask("Task 12", Personal, at(25, 12, 0), at(25, 14, 0), 4, 2),
		NewTask("Task 13", Academic, at(25, 15, 0), at(25, 17, 0), 6, 3),
		NewTask("Task 14", Personal, at(20, 9, 56), at(26, 10, 0), 3, 1),
		NewTask("Task 15", Academic, at(27, 13, 0), at(27, 15, 0), 4, 2),
	}
}

func sampleSystem(t *testing.T) *System {
	t.Helper()
	s := NewSystem()
	for _, task := range sampleTasks(t) {
		s.Insert(task)
	}
	return s
}

func names(tasks []*Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Name
	}
	return out
}

func assertNames(t *testing.T, got []*Task, want ...string) {
	t.Helper()
	g := names(got)
	if len(g) != len(want) {
		t.Fatalf("expected %v, got %v", want, g)
	}
	for i := range want {
		if g[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, g)
		}
	}
}

// fakeClock is a Clock and Sleeper driven by the test.
type fakeClock struct {
	now   time.Time
	slept []time.Duration
}

func (c *fakeClock) Now() time.Time { return c.now }

func (c *fakeClock) Sleep(d time.Duration) {
	c.slept = append(c.slept, d)
	c.now = c.now.Add(d)
}

type reply struct {
	yes bool
	err error
}

var errNoReply = errors.New("no scripted reply left")

// scriptedPrompter answers questions from a fixed script.
type scriptedPrompter struct {
	replies   []reply
	questions []string
}

func (p *scriptedPrompter) Confirm(q string) (bool, error) {
	p.questions = append(p.questions, q)
	if len(p.replies) == 0 {
		return false, errNoReply
	}
	r := p.replies[0]
	p.replies = p.replies[1:]
	return r.yes, r.err
}

// alwaysPrompter gives the same answer to every question.
type alwaysPrompter struct {
	yes   bool
	asked int
}

func (p *alwaysPrompter) Confirm(string) (bool, error) {
	p.asked++
	return p.yes, nil
}
