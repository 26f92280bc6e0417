package planner

import "testing"

func TestOptimize(t *testing.T) {
	a := NewTask("A", Academic, base, base, 6, 3)
	b := NewTask("B", Personal, base, base, 10, 2)

	tests := []struct {
		name      string
		budget    int
		want      []string
		wantValue int
		wantHours int
	}{
		{"tight budget", 3, []string{"A"}, 6, 3},
		{"fits both", 5, []string{"A", "B"}, 11, 5},
		{"only B fits", 2, []string{"B"}, 5, 2},
		{"nothing fits", 1, nil, 0, 0},
		{"zero budget", 0, nil, 0, 0},
		{"negative budget", -4, nil, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sel := Optimize([]*Task{a, b}, tt.budget)
			assertNames(t, sel.Tasks, tt.want...)
			if sel.Value != tt.wantValue {
				t.Errorf("expected value %d, got %d", tt.wantValue, sel.Value)
			}
			if sel.Hours != tt.wantHours {
				t.Errorf("expected %d hours, got %d", tt.wantHours, sel.Hours)
			}
		})
	}
}

func TestOptimize_TieFavorsExclusion(t *testing.T) {
	x := NewTask("X", Academic, base, base, 4, 2)
	y := NewTask("Y", Academic, base, base, 4, 2)
	sel := Optimize([]*Task{x, y}, 2)
	assertNames(t, sel.Tasks, "X")
}

func TestOptimize_LargeBudgetTakesEverythingPositive(t *testing.T) {
	tasks := sampleTasks(t)
	total := 0
	for _, task := range tasks {
		total += task.Duration
	}
	sel := Optimize(tasks, total)
	if len(sel.Tasks) != len(tasks) {
		t.Fatalf("expected all %d tasks, got %v", len(tasks), names(sel.Tasks))
	}
	if sel.Hours != total {
		t.Errorf("expected %d hours, got %d", total, sel.Hours)
	}
}

func TestOptimize_SelectionFitsBudget(t *testing.T) {
	tasks := sampleTasks(t)
	for budget := 0; budget <= 20; budget++ {
		sel := Optimize(tasks, budget)
		hours, value := 0, 0
		for _, task := range sel.Tasks {
			hours += task.Duration
			value += task.AdjustedPriority()
		}
		if hours > budget {
			t.Errorf("budget %d: selection uses %d hours", budget, hours)
		}
		if value != sel.Value || hours != sel.Hours {
			t.Errorf("budget %d: totals %d/%d do not match %d/%d", budget, value, hours, sel.Value, sel.Hours)
		}
	}
}

func TestOptimize_SampleTasks(t *testing.T) {
	s := sampleSystem(t)
	sel := s.Optimize(3)
	assertNames(t, sel.Tasks, "Task 8", "Task 15")
	if sel.Value != 9 {
		t.Errorf("expected value 9, got %d", sel.Value)
	}
}

func TestOptimize_SkipsBadDurations(t *testing.T) {
	neg := NewTask("negative", Academic, base, base, 100, -1)
	zero := NewTask("zero", Academic, base, base, 2, 0)
	sel := Optimize([]*Task{neg, zero}, 1)
	assertNames(t, sel.Tasks, "zero")
}

func TestOptimize_SkipsNonPositiveValue(t *testing.T) {
	low := NewTask("low", Personal, base, base, 1, 1)
	sel := Optimize([]*Task{low}, 5)
	if len(sel.Tasks) != 0 {
		t.Errorf("expected empty selection, got %v", names(sel.Tasks))
	}
}

func TestOptimize_LeavesInputAlone(t *testing.T) {
	tasks := sampleTasks(t)
	before := names(tasks)
	Optimize(tasks, 6)
	assertNames(t, tasks, before...)
}
