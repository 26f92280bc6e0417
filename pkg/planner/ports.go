package planner

import (
	"time"

	"github.com/tasktide/tasktide/internal/scheduler"
)

// Clock reports the current time.
type Clock = scheduler.Clock

// Sleeper suspends the caller for a duration.
type Sleeper = scheduler.Sleeper

// Prompter asks the user a yes/no question. An unrecognized reply yields
// ErrInvalidAnswer; any other error means the prompt is unusable.
type Prompter interface {
	Confirm(question string) (bool, error)
}

// SystemClock is the wall clock.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now() }

// SystemSleeper sleeps with time.Sleep.
type SystemSleeper struct{}

func (SystemSleeper) Sleep(d time.Duration) { time.Sleep(d) }
