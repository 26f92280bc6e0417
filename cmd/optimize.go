package cmd

import (
	"context"
	"fmt"
	"strconv"

	"github.com/tasktide/tasktide/cmd/common"
	"github.com/urfave/cli"
)

func optimize(ctx *cli.Context) error {
	arg := ctx.Args().First()
	if arg == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if arg == "" {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("available hours are required"))
	}
	hours, err := strconv.Atoi(arg)
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("invalid hours %q: expected a whole number", arg))
	}

	s, err := openSession(context.Background())
	if err != nil {
		common.PrintRuntimeErr(ctx, "optimize", "open_session", err)
		return nil
	}
	defer s.Close()

	sel := s.sys.Optimize(hours)
	if len(sel.Tasks) == 0 {
		fmt.Printf("No tasks fit into %d hour(s).\n", hours)
		return nil
	}
	fmt.Println("Selected tasks based on available time:")
	for _, t := range sel.Tasks {
		fmt.Printf("Task: %s, Type: %s, Duration: %d hours, Priority: %d\n", t.Name, t.Category, t.Duration, t.Priority)
	}
	fmt.Printf("\nTotal: %d hour(s), value %d\n", sel.Hours, sel.Value)
	return nil
}
