package probe

import (
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

// Renders probe results as a terminal table.
//
// The platform result is appended as the last row when its name is set.
func Table(results []Result, platform Result) string {
	w := table.NewWriter()
	w.SetStyle(table.StyleLight)
	w.AppendHeader(table.Row{"#", "Module", "Note", "Status"})

	for i, r := range results {
		w.AppendRow(table.Row{i + 1, r.Candidate.Name, r.Candidate.Note, status(r.Present)})
	}
	if platform.Candidate.Name != "" {
		w.AppendSeparator()
		w.AppendRow(table.Row{"-", platform.Candidate.Name, platform.Candidate.Note, status(platform.Present)})
	}

	w.AppendFooter(table.Row{"", "", "present", CountPresent(results)})
	w.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight},
	})

	return w.Render()
}

func status(present bool) string {
	if present {
		return "found"
	}
	return "missing"
}
