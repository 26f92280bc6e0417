package cmd

import (
	"context"
	"fmt"

	"github.com/tasktide/tasktide/cmd/common"
	"github.com/tasktide/tasktide/pkg/planner"
	"github.com/urfave/cli"
)

var (
	sortBy string

	lsFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "by, b",
			Usage:       "order: priority, type, start or end",
			Value:       string(planner.SortByStart),
			Destination: &sortBy,
		},
	}
)

func list(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	key, err := planner.ParseSortKey(sortBy)
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	s, err := openSession(context.Background())
	if err != nil {
		common.PrintRuntimeErr(ctx, "list", "open_session", err)
		return nil
	}
	defer s.Close()

	tasks, err := s.sys.Sort(key)
	if err != nil {
		common.PrintRuntimeErr(ctx, "list", "sort", err)
		return nil
	}
	if len(tasks) == 0 {
		fmt.Println("tasktide: no tasks found")
		return nil
	}
	fmt.Printf("Tasks sorted by %s:\n\n", key)
	for _, t := range tasks {
		fmt.Printf("[%s] %s\n", common.Beaut(string(t.Status), 9), t)
	}
	return nil
}
