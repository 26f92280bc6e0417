package cmd

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/tasktide/tasktide/cmd/common"
	"github.com/vbauerster/mpb/v8"
)

const barRefresh = 200 * time.Millisecond

// waitSleeper sleeps until d has passed or ctx is done, so Ctrl+C ends a
// wait at once. With progress set it draws a countdown bar while waiting.
type waitSleeper struct {
	ctx      context.Context
	progress bool
	out      io.Writer
}

func newSleeper(ctx context.Context) *waitSleeper {
	return &waitSleeper{ctx: ctx, progress: isTerminal(os.Stdout), out: os.Stdout}
}

func (s *waitSleeper) Sleep(d time.Duration) {
	if d <= 0 {
		return
	}
	if !s.progress {
		t := time.NewTimer(d)
		defer t.Stop()
		select {
		case <-t.C:
		case <-s.ctx.Done():
		}
		return
	}

	p := mpb.NewWithContext(s.ctx, mpb.WithOutput(s.out), mpb.WithWidth(40), mpb.WithAutoRefresh())
	bar := common.InitWaitBar(p, "Waiting", d)
	start := time.Now()
	ticker := time.NewTicker(barRefresh)
	defer ticker.Stop()
	for {
		select {
		case <-s.ctx.Done():
			bar.Abort(false)
			p.Wait()
			return
		case <-ticker.C:
			elapsed := time.Since(start)
			if elapsed >= d {
				bar.SetCurrent(d.Milliseconds())
				p.Wait()
				return
			}
			bar.SetCurrent(elapsed.Milliseconds())
		}
	}
}
