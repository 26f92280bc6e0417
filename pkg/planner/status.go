package planner

import (
	"errors"
	"fmt"
	"time"
)

// RefreshResult reports what RefreshStatuses did.
type RefreshResult struct {
	// Changed holds tasks whose status differs from before the refresh.
	Changed []*Task
	// Skipped holds past-deadline tasks whose prompt got an unrecognized reply.
	Skipped []*Task
	// Prompted counts the questions asked.
	Prompted int
}

// RefreshStatuses re-evaluates every task against now, in start order.
//
// A task inside its working window [Start, Start+Duration) becomes ongoing.
// Otherwise, once its deadline has passed, p is asked whether it was
// completed: yes marks it completed, no marks it missed, an unrecognized
// reply leaves it alone. Past-deadline tasks are asked about on every
// call, even when already completed or missed. With a nil p nobody is
// asked and every past-deadline task is skipped.
func (s *System) RefreshStatuses(now time.Time, p Prompter) (RefreshResult, error) {
	var res RefreshResult
	for _, t := range s.Tasks() {
		v := s.view(t)
		switch {
		case !now.Before(v.Start) && now.Before(v.End()):
			s.setStatus(t, Ongoing, &res)
		case !now.Before(v.Deadline):
			if p == nil {
				res.Skipped = append(res.Skipped, t)
				continue
			}
			res.Prompted++
			done, err := p.Confirm(fmt.Sprintf("%s\nHave you completed the task?", &v))
			if errors.Is(err, ErrInvalidAnswer) {
				s.log.Warning("refresh: %q left as %s: %v", v.Name, v.Status, err)
				res.Skipped = append(res.Skipped, t)
				continue
			}
			if err != nil {
				return res, fmt.Errorf("refresh %q: %w", v.Name, err)
			}
			if done {
				s.setStatus(t, Completed, &res)
			} else {
				s.setStatus(t, Missed, &res)
			}
		}
	}
	return res, nil
}

// view copies t under the lock.
func (s *System) view(t *Task) Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	return *t
}

func (s *System) setStatus(t *Task, st Status, res *RefreshResult) {
	s.mu.Lock()
	old := t.Status
	t.Status = st
	s.mu.Unlock()
	if old != st {
		s.log.Info("%q: %s -> %s", t.Name, old, st)
		res.Changed = append(res.Changed, t)
	}
}
