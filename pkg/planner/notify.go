package planner

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tasktide/tasktide/internal/scheduler"
)

// Watch configures one run of Notify.
type Watch struct {
	Clock   Clock
	Sleeper Sleeper
	// Prompter is asked before every sleep whether to keep watching.
	// Unrecognized replies are reported and asked again. nil keeps watching.
	Prompter Prompter
	// MaxWait caps a single sleep. Zero means five minutes.
	MaxWait time.Duration
}

// Notify fires due start/deadline events and waits for upcoming ones until
// the queue is empty, the user stops watching, or ctx is cancelled. A start
// event marks its task ongoing; a deadline event only reports. Calling
// Notify again later resumes where the previous call stopped.
func (s *System) Notify(ctx context.Context, w Watch) error {
	if w.Clock == nil {
		w.Clock = SystemClock{}
	}
	if w.Sleeper == nil {
		w.Sleeper = SystemSleeper{}
	}
	watcher := &scheduler.Watcher{
		Clock:   w.Clock,
		Sleeper: w.Sleeper,
		MaxWait: w.MaxWait,
	}
	if w.Prompter != nil {
		watcher.Ask = s.keepWatching(w.Prompter)
	}
	return watcher.Run(ctx, s)
}

func (s *System) keepWatching(p Prompter) func(time.Duration) (bool, error) {
	return func(wait time.Duration) (bool, error) {
		question := fmt.Sprintf("Sleeping for %s until the next event. Keep watching?", FormatWait(wait))
		for {
			ok, err := p.Confirm(question)
			if errors.Is(err, ErrInvalidAnswer) {
				s.log.Warning("notify: %v", err)
				continue
			}
			if err != nil {
				return false, err
			}
			return ok, nil
		}
	}
}

// Dispatch pops every event due at now, applies it and reports the
// trigger time of the earliest event left. It satisfies
// scheduler.Dispatcher.
func (s *System) Dispatch(now time.Time) (time.Time, bool) {
	type firing struct {
		ev   Event
		task *Task
	}
	var fired []firing

	s.mu.Lock()
	for {
		ev, ok := s.queue.Peek()
		if !ok || ev.At.After(now) {
			break
		}
		s.queue.Pop()
		t := s.arena[ev.Task]
		if ev.Kind == EventStart {
			t.Status = Ongoing
		}
		fired = append(fired, firing{ev, t})
	}
	next, pending := s.queue.Peek()
	s.mu.Unlock()

	for _, f := range fired {
		switch f.ev.Kind {
		case EventStart:
			s.log.Info("'%s' has started", f.task.Name)
		case EventDeadline:
			s.log.Warning("'%s' has reached its deadline", f.task.Name)
		}
		if s.onEvent != nil {
			s.onEvent(f.ev, f.task)
		}
	}
	return next.At, pending
}

// FormatWait renders a wait as days, hours and minutes.
func FormatWait(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	days := d / (24 * time.Hour)
	d -= days * 24 * time.Hour
	hours := d / time.Hour
	d -= hours * time.Hour
	minutes := d / time.Minute
	return fmt.Sprintf("%d day(s), %d hour(s), and %d minute(s)", days, hours, minutes)
}
