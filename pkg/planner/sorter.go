package planner

import (
	"fmt"
	"strings"
)

// SortKey selects the ordering used by Sort.
type SortKey string

const (
	// SortByPriority orders by priority, highest first.
	SortByPriority SortKey = "priority"
	// SortByType orders by category name, descending ("personal" before "academic").
	SortByType SortKey = "type"
	// SortByStart orders by start time, earliest first.
	SortByStart SortKey = "start"
	// SortByEnd orders by deadline, earliest first.
	SortByEnd SortKey = "end"
)

// ParseSortKey validates a user supplied sort key.
func ParseSortKey(s string) (SortKey, error) {
	switch k := SortKey(strings.ToLower(strings.TrimSpace(s))); k {
	case SortByPriority, SortByType, SortByStart, SortByEnd:
		return k, nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidSortKey, s)
}

// precedes reports whether a goes strictly before b under the key.
type precedes func(a, b *Task) bool

func (k SortKey) comparator() (precedes, error) {
	switch k {
	case SortByPriority:
		return func(a, b *Task) bool { return a.Priority > b.Priority }, nil
	case SortByType:
		return func(a, b *Task) bool { return a.Category > b.Category }, nil
	case SortByStart:
		return func(a, b *Task) bool { return a.Start.Before(b.Start) }, nil
	case SortByEnd:
		return func(a, b *Task) bool { return a.Deadline.Before(b.Deadline) }, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrInvalidSortKey, string(k))
}

// Sort returns a new slice with tasks ordered by key. The input is left
// untouched. Tasks that compare equal keep their input order.
//
// It is a quicksort with a middle pivot and non-in-place partitioning, so
// it costs O(n^2) time in the worst case and allocates at every level.
func Sort(tasks []*Task, key SortKey) ([]*Task, error) {
	before, err := key.comparator()
	if err != nil {
		return nil, err
	}
	out := make([]*Task, len(tasks))
	copy(out, tasks)
	return partitionSort(out, before), nil
}

func partitionSort(tasks []*Task, before precedes) []*Task {
	if len(tasks) <= 1 {
		return tasks
	}
	mid := len(tasks) / 2
	pivot := tasks[mid]

	var lower, higher []*Task
	for i, t := range tasks {
		if i == mid {
			continue
		}
		// ties go to the side they were on
		if before(t, pivot) || (!before(pivot, t) && i < mid) {
			lower = append(lower, t)
		} else {
			higher = append(higher, t)
		}
	}

	out := append(partitionSort(lower, before), pivot)
	return append(out, partitionSort(higher, before)...)
}
