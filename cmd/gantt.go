package cmd

import (
	"context"
	"os"

	"github.com/tasktide/tasktide/cmd/common"
	snapshot "github.com/tasktide/tasktide/internal/export"
	chart "github.com/tasktide/tasktide/internal/gantt"
	"github.com/tasktide/tasktide/pkg/planner"
	"github.com/urfave/cli"
)

var (
	ganttFrom  string
	ganttWidth int

	ganttFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "from, f",
			Usage:       "draw tasks from an exported JSON or YAML file",
			Destination: &ganttFrom,
		},
		cli.IntFlag{
			Name:        "width, w",
			Usage:       "columns of the time axis (default: chart_width setting)",
			Destination: &ganttWidth,
		},
	}
)

func gantt(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	s, err := openSession(context.Background())
	if err != nil {
		common.PrintRuntimeErr(ctx, "gantt", "open_session", err)
		return nil
	}
	defer s.Close()

	var rows []planner.GanttRow
	if ganttFrom != "" {
		rows, err = snapshot.New(exportFs).Read(ganttFrom)
		if err != nil {
			common.PrintRuntimeErr(ctx, "gantt", "read_snapshot", err)
			return nil
		}
	} else {
		rows = s.sys.Snapshot()
	}

	width := ganttWidth
	if width <= 0 {
		width = s.cfg.ChartWidth
	}
	err = chart.Render(os.Stdout, rows, chart.Options{
		Width: width,
		Color: isTerminal(os.Stdout),
	})
	if err != nil {
		common.PrintRuntimeErr(ctx, "gantt", "render", err)
	}
	return nil
}
