package scheduler

import "container/heap"

// eventHeap implements container/heap.Interface for Event,
// sorted by At (earliest first — min-heap).
// Equal times pop deadlines before starts, then in push order.
type eventHeap []Event

func (h eventHeap) Len() int { return len(h) }

func (h eventHeap) Less(i, j int) bool {
	a, b := h[i], h[j]
	if !a.At.Equal(b.At) {
		return a.At.Before(b.At)
	}
	if a.Kind != b.Kind {
		// "deadline" < "start"
		return a.Kind < b.Kind
	}
	return a.seq < b.seq
}

func (h eventHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

func (h *eventHeap) Push(x any) {
	*h = append(*h, x.(Event))
}

func (h *eventHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// heapPush adds an Event to the heap, maintaining heap invariant.
func heapPush(h *eventHeap, e Event) {
	heap.Push(h, e)
}

// heapPop removes and returns the Event with the earliest At.
// Panics if the heap is empty.
func heapPop(h *eventHeap) Event {
	return heap.Pop(h).(Event)
}
