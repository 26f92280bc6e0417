package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tasktide/tasktide/cmd/common"
	"github.com/tasktide/tasktide/pkg/planner"
	"github.com/urfave/cli"
)

var (
	taskName     string
	taskType     string
	taskStart    string
	taskDeadline string
	taskPriority int
	taskDuration int

	addFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "name, n",
			Usage:       "name of the task",
			Destination: &taskName,
		},
		cli.StringFlag{
			Name:        "type, t",
			Usage:       "task type: academic or personal",
			Destination: &taskType,
		},
		cli.StringFlag{
			Name:        "start, s",
			Usage:       "start time (" + timeFormatHint + ")",
			Destination: &taskStart,
		},
		cli.StringFlag{
			Name:        "deadline, d",
			Usage:       "deadline (" + timeFormatHint + ")",
			Destination: &taskDeadline,
		},
		cli.IntFlag{
			Name:        "priority, p",
			Usage:       "priority, higher is more important",
			Destination: &taskPriority,
		},
		cli.IntFlag{
			Name:        "duration, u",
			Usage:       "hours of work the task needs",
			Destination: &taskDuration,
		},
	}
)

var errNoName = errors.New("task name cannot be empty")

func add(ctx *cli.Context) error {
	if ctx.Args().First() == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	name := strings.TrimSpace(taskName)
	if name == "" {
		return common.PrintErrWithCmdHelp(ctx, errNoName)
	}
	category, err := planner.ParseCategory(taskType)
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	if taskDuration < 0 {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("duration cannot be negative, got %d", taskDuration))
	}

	s, err := openSession(context.Background())
	if err != nil {
		common.PrintRuntimeErr(ctx, "add", "open_session", err)
		return nil
	}
	defer s.Close()

	start, err := parseTime(s.cfg.TimeLayout, "start", taskStart)
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}
	deadline, err := parseTime(s.cfg.TimeLayout, "deadline", taskDeadline)
	if err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}

	t := s.sys.Add(name, category, start, deadline, taskPriority, taskDuration)
	if err := s.repo.Insert(context.Background(), t); err != nil {
		common.PrintRuntimeErr(ctx, "add", "store_task", err)
		return nil
	}
	fmt.Printf("Task '%s' added successfully.\n", t.Name)
	return nil
}

// parseTime reads a flag value in the configured layout, in local time.
func parseTime(layout, flag, value string) (time.Time, error) {
	if value == "" {
		return time.Time{}, fmt.Errorf("error: --%s is required, expected %s", flag, timeFormatHint)
	}
	t, err := time.ParseInLocation(layout, value, time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("error: invalid --%s format, expected %s", flag, layout)
	}
	return t, nil
}
