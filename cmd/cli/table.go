package main

import (
	"strconv"

	"accuracycheck/app"
	"accuracycheck/domain/report"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

func renderResults(t *report.Table) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, len(report.Columns))
	for i, c := range report.Columns {
		header[i] = c
	}
	tw.AppendHeader(header)

	for _, r := range t.Rows {
		tw.AppendRow(table.Row{r.Sheet, r.Row, formatScore(r.Score), string(r.Verdict)})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func renderSummary(s app.Summary) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault
	tw.AppendHeader(table.Row{"Rows", "Passed", "Failed", "Mean", "Median", "Min", "Max"})
	tw.AppendRow(table.Row{
		s.Rows, s.Passed, s.Failed,
		formatScore(s.Mean), formatScore(s.Median), formatScore(s.Min), formatScore(s.Max),
	})
	return tw.Render()
}

func formatScore(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}
