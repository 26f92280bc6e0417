package cmd

// timeFormatHint is shown when a date flag does not match the configured layout.
const timeFormatHint = "YYYY-MM-DD HH:MM"

const DESCRIPTION = `
TaskTide keeps your academic and personal tasks ordered by start time,
tells you when a task starts or reaches its deadline, asks you whether
overdue work got done, and picks the most valuable tasks that fit into
the hours you have left.
`

const (
	AddDescription = `The add command stores a new task. Start and deadline use
the configured time layout (default YYYY-MM-DD HH:MM, local time).

Example:
        tasktide add -n "Essay" -t academic -s "2024-11-22 14:30" \
                -d "2024-11-22 16:00" -p 5 -u 1

`
	ListDescription = `The list command prints every task. The --by flag picks
the order: priority (highest first), type (personal before
academic), start or end (earliest first). Tasks that tie keep
their start-time order.

Example:
        tasktide list --by priority

`
	NotifyDescription = `The notify command fires every start and deadline that is
due, then waits for the next one. A started task becomes
ongoing. On a terminal you are asked before each wait whether
to keep watching; press Ctrl+C to stop at any time.

Example:
        tasktide notify

`
	RefreshDescription = `The refresh command marks tasks inside their working window
as ongoing and asks, for every task past its deadline, whether
you completed it.

Example:
        tasktide refresh

`
	OptimizeDescription = `The optimize command selects the tasks with the highest total
priority whose durations fit into the given number of hours.
Personal tasks count for half their priority.

Example:
        tasktide optimize 6

`
	GanttDescription = `The gantt command draws one bar per task from its start to its
deadline. Academic tasks are sky blue, personal tasks light green.

Example:
        tasktide gantt
        tasktide gantt --from tasks.yaml

`
	ExportDescription = `The export command writes every task's name, type, start and
deadline to a file. The format follows the extension (.json,
.yaml or .yml).

Example:
        tasktide export tasks.json

`
)
