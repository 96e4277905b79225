package credits

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Options control table shape. Callers pass the configured values; see the
// [credits] section of the configuration.
type Options struct {
	// Columns is the width of each major contributor's module table.
	Columns int
	// MajorThreshold is the module count a contributor must strictly exceed
	// to earn an individual table.
	MajorThreshold int
}

type majorGroup struct {
	Name    string
	Modules []string
}

type minorRow struct {
	Module      string
	Contributor string
}

// Generate renders the full credits document from contributor groups as
// produced by contributors.Collect.
func Generate(groups map[string][]string, opts Options) string {
	majors, minors := partition(groups, opts.MajorThreshold)

	var b strings.Builder
	b.WriteString("# Contributors\n")

	for _, m := range majors {
		b.WriteString(fmt.Sprintf("\n## %s (%d %s)\n\n", m.Name, len(m.Modules), plural(len(m.Modules), "module")))
		b.WriteString(moduleGrid(m.Modules, opts.Columns))
		b.WriteString("\n")
	}

	if len(minors) > 0 {
		b.WriteString("\n## Other contributors\n\n")
		b.WriteString(minorTable(minors))
		b.WriteString("\n")
	}

	return b.String()
}

func partition(groups map[string][]string, threshold int) ([]majorGroup, []minorRow) {
	var majors []majorGroup
	var minors []minorRow
	for name, modules := range groups {
		if len(modules) > threshold {
			sorted := append([]string(nil), modules...)
			sort.Strings(sorted)
			majors = append(majors, majorGroup{Name: name, Modules: sorted})
			continue
		}
		for _, mod := range modules {
			minors = append(minors, minorRow{Module: mod, Contributor: name})
		}
	}

	sort.Slice(majors, func(i, j int) bool {
		if len(majors[i].Modules) != len(majors[j].Modules) {
			return len(majors[i].Modules) > len(majors[j].Modules)
		}
		return majors[i].Name < majors[j].Name
	})
	sort.Slice(minors, func(i, j int) bool {
		return minors[i].Module < minors[j].Module
	})
	return majors, minors
}

// layout distributes items column-major: consecutive names run down a column
// before spilling into the next. The grid always spans the full column count.
func layout(items []string, columns int) [][]string {
	if columns < 1 {
		columns = 1
	}
	rows := (len(items) + columns - 1) / columns
	grid := make([][]string, rows)
	for r := range grid {
		grid[r] = make([]string, columns)
	}
	for i, item := range items {
		grid[i%rows][i/rows] = item
	}
	return grid
}

func moduleGrid(modules []string, columns int) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	for _, row := range layout(modules, columns) {
		r := make(table.Row, len(row))
		for i, cell := range row {
			r[i] = cell
		}
		tw.AppendRow(r)
	}
	return tw.Render()
}

func minorTable(rows []minorRow) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Module", "Contributor"})
	for _, r := range rows {
		tw.AppendRow(table.Row{r.Module, r.Contributor})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func plural(n int, word string) string {
	if n == 1 {
		return word
	}
	return word + "s"
}
