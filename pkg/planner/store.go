package planner

import (
	"slices"
	"sort"
)

// Store keeps task references ordered ascending by Start.
// It holds references only; the System's arena owns the tasks.
type Store struct {
	tasks []*Task
}

// Insert places t at the smallest index i with tasks[i].Start >= t.Start,
// found by binary search, and returns that index. Tasks sharing a start
// time therefore land in front of the existing equal entries.
func (s *Store) Insert(t *Task) int {
	i := sort.Search(len(s.tasks), func(i int) bool {
		return !s.tasks[i].Start.Before(t.Start)
	})
	s.tasks = slices.Insert(s.tasks, i, t)
	return i
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// At returns the task at index i in start order.
func (s *Store) At(i int) *Task {
	return s.tasks[i]
}

// Snapshot returns a copy of the ordered references.
func (s *Store) Snapshot() []*Task {
	return slices.Clone(s.tasks)
}
