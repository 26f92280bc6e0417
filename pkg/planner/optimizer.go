package planner

// Selection is the outcome of Optimize.
type Selection struct {
	// Tasks are the chosen tasks in input order.
	Tasks []*Task
	// Value is the sum of their adjusted priorities.
	Value int
	// Hours is the sum of their durations.
	Hours int
}

// Optimize picks the subset of tasks with the highest total adjusted
// priority whose durations fit into budget hours (0/1 knapsack).
//
// A task is taken only when it strictly improves on leaving it out, so
// ties favor exclusion. budget <= 0 selects nothing, and tasks with a
// negative duration are never selected.
func Optimize(tasks []*Task, budget int) Selection {
	if budget <= 0 || len(tasks) == 0 {
		return Selection{}
	}
	n := len(tasks)

	// best[i][h]: best value using the first i tasks within h hours.
	// take[i][h]: whether task i-1 is part of that best value.
	best := make([][]int, n+1)
	take := make([][]bool, n+1)
	for i := range best {
		best[i] = make([]int, budget+1)
		take[i] = make([]bool, budget+1)
	}

	for i := 1; i <= n; i++ {
		t := tasks[i-1]
		d, v := t.Duration, t.AdjustedPriority()
		for h := 0; h <= budget; h++ {
			best[i][h] = best[i-1][h]
			if d < 0 || d > h {
				continue
			}
			if with := best[i-1][h-d] + v; best[i-1][h] < with {
				best[i][h] = with
				take[i][h] = true
			}
		}
	}

	sel := Selection{Value: best[n][budget]}
	h := budget
	for i := n; i >= 1; i-- {
		if take[i][h] {
			t := tasks[i-1]
			sel.Tasks = append(sel.Tasks, t)
			sel.Hours += t.Duration
			h -= t.Duration
		}
	}
	for l, r := 0, len(sel.Tasks)-1; l < r; l, r = l+1, r-1 {
		sel.Tasks[l], sel.Tasks[r] = sel.Tasks[r], sel.Tasks[l]
	}
	return sel
}
