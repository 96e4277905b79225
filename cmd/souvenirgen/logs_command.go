package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/logging"
	"github.com/ObjectsCountries/KtaneSouvenir/internal/logs"
)

const followWait = 5 * time.Second

func newLogsCommand(ctx *commandContext) *cobra.Command {
	var lines int
	var follow bool

	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Show recent log entries",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			path := logging.FilePath(cfg)
			if path == "" {
				return errors.New("no log directory configured")
			}

			out := cmd.OutOrStdout()
			result, err := logs.Tail(cmd.Context(), path, logs.Options{Offset: -1, Limit: lines})
			if err != nil {
				return err
			}
			printLogLines(out, result.Lines)
			if !follow {
				return nil
			}

			offset := result.Offset
			for {
				res, err := logs.Tail(cmd.Context(), path, logs.Options{Offset: offset, Follow: true, Wait: followWait})
				if err != nil {
					if errors.Is(err, context.Canceled) {
						return nil
					}
					return err
				}
				printLogLines(out, res.Lines)
				offset = res.Offset
			}
		},
	}

	cmd.Flags().IntVarP(&lines, "lines", "n", 50, "Number of trailing lines to show")
	cmd.Flags().BoolVarP(&follow, "follow", "f", false, "Keep watching for new log entries")
	return cmd
}

func printLogLines(out io.Writer, lines []string) {
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
}
