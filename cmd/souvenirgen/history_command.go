package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/history"
)

func newHistoryCommand(ctx *commandContext) *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history [run-id]",
		Short: "Show recorded regeneration runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return ctx.withHistory(func(store *history.Store) error {
				if len(args) == 1 {
					return renderRunDetail(cmd, store, args[0])
				}
				return renderRunList(cmd, store, limit)
			})
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "Maximum number of runs to list")
	return cmd
}

func renderRunList(cmd *cobra.Command, store *history.Store, limit int) error {
	runs, err := store.RecentRuns(cmd.Context(), limit)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet")
		return nil
	}

	rows := make([][]string, 0, len(runs))
	for _, run := range runs {
		rows = append(rows, []string{
			run.RunID,
			run.StartedAt.Local().Format(time.RFC3339),
			run.Duration().Round(time.Millisecond).String(),
			strconv.Itoa(run.Questions),
			yesNo(run.CreditsWritten),
			strconv.Itoa(run.ExportsWritten),
		})
	}
	table := renderTable(
		[]string{"Run", "Started", "Elapsed", "Questions", "Credits", "Exports"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignLeft, alignRight},
	)
	fmt.Fprintln(out, table)
	return nil
}

func renderRunDetail(cmd *cobra.Command, store *history.Store, runID string) error {
	run, err := store.FindRun(cmd.Context(), runID)
	if err != nil {
		return err
	}
	if run == nil {
		return fmt.Errorf("run %q not found", runID)
	}

	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)
	for _, line := range renderSectionHeader("Run "+run.RunID, colorize) {
		fmt.Fprintln(out, line)
	}
	fmt.Fprintln(out, renderStatusLine("Started", statusInfo, run.StartedAt.Local().Format(time.RFC3339), colorize))
	fmt.Fprintln(out, renderStatusLine("Elapsed", statusInfo, run.Duration().Round(time.Millisecond).String(), colorize))
	fmt.Fprintln(out, renderStatusLine("Questions", statusInfo, strconv.Itoa(run.Questions), colorize))
	fmt.Fprintln(out, renderStatusLine("Credits written", statusInfo, yesNo(run.CreditsWritten), colorize))
	fmt.Fprintln(out, renderStatusLine("Exports written", statusInfo, strconv.Itoa(run.ExportsWritten), colorize))

	files, err := store.RunFiles(cmd.Context(), run.ID)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return nil
	}

	rows := make([][]string, 0, len(files))
	for _, file := range files {
		entries := "-"
		if file.Entries > 0 {
			entries = strconv.Itoa(file.Entries)
		}
		rows = append(rows, []string{
			string(file.Kind),
			file.Language,
			outcomeCell(file.Status, colorize),
			entries,
			outputDetail(file.Detail, file.Path),
		})
	}
	fmt.Fprintln(out)
	table := renderTable(
		[]string{"Output", "Language", "Status", "Entries", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
	fmt.Fprintln(out, table)
	return nil
}
