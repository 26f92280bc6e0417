package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/afero"
	"github.com/tasktide/tasktide/cmd/common"
	snapshot "github.com/tasktide/tasktide/internal/export"
	"github.com/urfave/cli"
)

var exportFs = afero.NewOsFs()

func export(ctx *cli.Context) error {
	path := ctx.Args().First()
	if path == "help" {
		return cli.ShowCommandHelp(ctx, ctx.Command.Name)
	}
	if path == "" {
		return common.PrintErrWithCmdHelp(ctx, fmt.Errorf("output file is required"))
	}
	if _, err := snapshot.FormatFromPath(path); err != nil {
		return common.PrintErrWithCmdHelp(ctx, err)
	}

	s, err := openSession(context.Background())
	if err != nil {
		common.PrintRuntimeErr(ctx, "export", "open_session", err)
		return nil
	}
	defer s.Close()

	rows := s.sys.Snapshot()
	if err := snapshot.New(exportFs).Write(path, rows); err != nil {
		common.PrintRuntimeErr(ctx, "export", "write", err)
		return nil
	}
	fmt.Printf("Exported %d task(s) to %s\n", len(rows), path)
	return nil
}
