package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/tasktide/tasktide/cmd/common"
	"github.com/urfave/cli"
)

var now = time.Now

func refresh(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	s, err := openSession(context.Background())
	if err != nil {
		common.PrintRuntimeErr(ctx, "refresh", "open_session", err)
		return nil
	}
	defer s.Close()

	fmt.Println("Updating task statuses...")
	res, err := s.sys.RefreshStatuses(now(), newPrompter())
	// Persist whatever changed before a failing prompt.
	for _, t := range res.Changed {
		if uerr := s.repo.UpdateStatus(context.Background(), t.ID, t.Status); uerr != nil {
			common.PrintRuntimeErr(ctx, "refresh", "store_status", uerr)
			return nil
		}
	}
	if err != nil {
		common.PrintRuntimeErr(ctx, "refresh", "prompt", err)
		return nil
	}
	for _, t := range res.Changed {
		fmt.Printf("'%s' is now %s\n", t.Name, t.Status)
	}
	fmt.Printf("%d task(s) updated, %d skipped.\n", len(res.Changed), len(res.Skipped))
	return nil
}
