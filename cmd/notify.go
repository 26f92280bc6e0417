package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/tasktide/tasktide/cmd/common"
	"github.com/tasktide/tasktide/pkg/planner"
	"github.com/urfave/cli"
)

var (
	noPrompt bool

	notifyFlags = []cli.Flag{
		cli.BoolFlag{
			Name:        "no-prompt, y",
			Usage:       "use this flag to keep watching without asking (default: false)",
			Destination: &noPrompt,
		},
	}
)

func notify(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s, err := openSession(sigCtx)
	if err != nil {
		common.PrintRuntimeErr(ctx, "notify", "open_session", err)
		return nil
	}
	defer s.Close()

	fmt.Println("Checking notifications...")
	w := planner.Watch{
		Sleeper: newSleeper(sigCtx),
		MaxWait: s.cfg.MaxWait,
	}
	if !noPrompt && isTerminal(os.Stdin) {
		w.Prompter = newPrompter()
	}
	err = s.sys.Notify(sigCtx, w)
	switch {
	case errors.Is(err, context.Canceled):
		fmt.Println("Stopped watching.")
	case err != nil:
		common.PrintRuntimeErr(ctx, "notify", "watch", err)
		return nil
	case s.sys.Pending() == 0:
		fmt.Println("No more events.")
	default:
		fmt.Printf("Stopped watching, %d event(s) still pending.\n", s.sys.Pending())
	}
	return nil
}
