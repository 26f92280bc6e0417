package cmd

import (
	"fmt"
	"runtime"

	"github.com/tasktide/tasktide/cmd/common"
	appcommon "github.com/tasktide/tasktide/common"
	"github.com/urfave/cli"
)

type BuildArgs struct {
	Version   string
	BuildType string
	Date      string
	Commit    string
}

var (
	configFile   string
	databasePath string
	verbose      bool

	globalFlags = []cli.Flag{
		cli.StringFlag{
			Name:        "config",
			Usage:       "use this flag to read settings from a custom config file",
			EnvVar:      appcommon.ConfigEnv,
			Destination: &configFile,
		},
		cli.StringFlag{
			Name:        "database, db",
			Usage:       "use this flag to store tasks in a custom sqlite file",
			Destination: &databasePath,
		},
		cli.BoolFlag{
			Name:        "verbose, V",
			Usage:       "use this flag to print debug logs (default: false)",
			Destination: &verbose,
		},
	}
)

func Execute(args []string, bArgs BuildArgs) error {
	app := cli.App{
		Name:                  "tasktide",
		HelpName:              "tasktide",
		Usage:                 "A deadline-aware task planner.",
		Version:               fmt.Sprintf("%s-%s", bArgs.Version, bArgs.BuildType),
		UsageText:             "tasktide [global options] <command> [arguments...]",
		Description:           DESCRIPTION,
		CustomAppHelpTemplate: HELP_TEMPL,
		OnUsageError:          common.UsageErrorCallback,
		Flags:                 globalFlags,
		Commands: []cli.Command{
			{
				Name:                   "add",
				Aliases:                []string{"a"},
				Usage:                  "add a task to the planner",
				Description:            AddDescription,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Action:                 add,
				UseShortOptionHandling: true,
				Flags:                  addFlags,
			},
			{
				Name:                   "list",
				Aliases:                []string{"l", "sort"},
				Usage:                  "display tasks in the chosen order",
				Description:            ListDescription,
				OnUsageError:           common.UsageErrorCallback,
				CustomHelpTemplate:     CMD_HELP_TEMPL,
				Action:                 list,
				UseShortOptionHandling: true,
				Flags:                  lsFlags,
			},
			{
				Name:               "notify",
				Aliases:            []string{"n", "watch"},
				Usage:              "fire due start and deadline notifications",
				Description:        NotifyDescription,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             notify,
				Flags:              notifyFlags,
			},
			{
				Name:               "refresh",
				Aliases:            []string{"r"},
				Usage:              "update task statuses",
				Description:        RefreshDescription,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             refresh,
			},
			{
				Name:               "optimize",
				Aliases:            []string{"o"},
				Usage:              "pick the most valuable tasks for the hours you have",
				ArgsUsage:          "<hours>",
				UsageText:          "<hours>",
				Description:        OptimizeDescription,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             optimize,
			},
			{
				Name:               "gantt",
				Aliases:            []string{"g"},
				Usage:              "draw a timeline of all tasks",
				Description:        GanttDescription,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             gantt,
				Flags:              ganttFlags,
			},
			{
				Name:               "export",
				Aliases:            []string{"e"},
				Usage:              "write a task snapshot to a JSON or YAML file",
				UsageText:          "<file.json|file.yaml>",
				Description:        ExportDescription,
				OnUsageError:       common.UsageErrorCallback,
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             export,
			},
			{
				Name:    "help",
				Aliases: []string{"h"},
				Usage:   "prints the help message",
				Action:  common.Help,
			},
			{
				Name:               "version",
				Aliases:            []string{"v"},
				Usage:              "prints installed version of tasktide",
				UsageText:          " ",
				CustomHelpTemplate: CMD_HELP_TEMPL,
				Action:             common.GetVersion,
			},
		},
		Action:      common.Help,
		HideHelp:    true,
		HideVersion: true,
	}
	common.VersionCmdStr = fmt.Sprintf("%s %s (%s_%s)\nBuild: %s=%s\n",
		app.Name,
		app.Version,
		runtime.GOOS,
		runtime.GOARCH,
		bArgs.Date, bArgs.Commit,
	)
	return app.Run(args)
}
