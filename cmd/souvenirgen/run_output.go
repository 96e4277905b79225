package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/ObjectsCountries/KtaneSouvenir/internal/regen"
)

// runAndReport executes one regeneration run and renders its summary. The
// returned error is non-nil when the run aborted or produced nothing, which
// is what drives the process exit code.
func runAndReport(ctx *commandContext, cmd *cobra.Command, opts regen.Options) error {
	return ctx.withRunner(func(runner *regen.Runner) error {
		summary, err := runner.Run(cmd.Context(), opts)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		renderRunSummary(out, summary, shouldColorize(out))

		if summary.Failed() {
			_, _, failed := summary.Counts()
			return fmt.Errorf("regeneration produced no outputs (%d failed)", failed)
		}
		return nil
	})
}

func renderRunSummary(out io.Writer, summary *regen.Summary, colorize bool) {
	for _, line := range renderSectionHeader("Regeneration summary", colorize) {
		fmt.Fprintln(out, line)
	}

	elapsed := summary.FinishedAt.Sub(summary.StartedAt).Round(time.Millisecond)
	ok, skipped, failed := summary.Counts()

	fmt.Fprintln(out, renderStatusLine("Run", statusInfo, summary.RunID, colorize))
	fmt.Fprintln(out, renderStatusLine("Questions", statusInfo, fmt.Sprintf("%d catalog entries", summary.Questions), colorize))
	fmt.Fprintln(out, renderStatusLine("Elapsed", statusInfo, elapsed.String(), colorize))
	fmt.Fprintln(out, renderStatusLine("Outputs", outputsKind(ok, skipped, failed),
		fmt.Sprintf("%d written, %d skipped, %d failed", ok, skipped, failed), colorize))

	rows := buildSummaryRows(summary, colorize)
	if len(rows) == 0 {
		return
	}
	fmt.Fprintln(out)
	table := renderTable(
		[]string{"Output", "Language", "Status", "Entries", "Detail"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	)
	fmt.Fprintln(out, table)
}

func outputsKind(ok, skipped, failed int) statusKind {
	switch {
	case failed > 0 && ok == 0:
		return statusError
	case failed > 0 || skipped > 0:
		return statusWarn
	default:
		return statusOK
	}
}

func buildSummaryRows(summary *regen.Summary, colorize bool) [][]string {
	var rows [][]string
	for _, file := range summary.Translations {
		rows = append(rows, fileRow("translation", file, colorize))
	}
	if credits := summary.Credits; credits != nil {
		rows = append(rows, []string{
			"credits", "-", outcomeCell(credits.Status, colorize), "-", outputDetail(credits.Detail, credits.Path),
		})
	}
	for _, file := range summary.Exports {
		rows = append(rows, fileRow("export", file, colorize))
	}
	return rows
}

func fileRow(kind string, file regen.FileResult, colorize bool) []string {
	entries := "-"
	if file.Entries > 0 {
		entries = strconv.Itoa(file.Entries)
	}
	return []string{kind, file.Language, outcomeCell(file.Status, colorize), entries, outputDetail(file.Detail, file.Path)}
}

// outputDetail prefers the failure or skip detail; successful rows show the
// produced file name instead.
func outputDetail(detail, path string) string {
	if detail != "" {
		return detail
	}
	if path == "" {
		return ""
	}
	return filepath.Base(path)
}
