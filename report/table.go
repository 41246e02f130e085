package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/qwalk/search"
)

// summaryHeaders is the shared column order of the terminal table and the
// CSV export.
var summaryHeaders = []string{"FAMILY", "N", "EDGES", "ENGINE", "PEAK X", "PEAK P", "CLASSICAL", "SPEEDUP"}

// summaryCells formats one summary row into the shared column order.
func summaryCells(r search.Summary) []string {
	hitting := "never"
	speedup := "-"
	if !math.IsInf(r.Hitting, 1) {
		hitting = strconv.FormatFloat(r.Hitting, 'f', 0, 64)
		speedup = strconv.FormatFloat(r.Speedup, 'f', 2, 64)
	}
	return []string{
		string(r.Family),
		strconv.Itoa(r.Nodes),
		strconv.Itoa(r.Edges),
		r.Engine.String(),
		strconv.FormatFloat(r.PeakX, 'f', 2, 64),
		strconv.FormatFloat(r.PeakP, 'f', 4, 64),
		hitting,
		speedup,
	}
}

// RenderSummaryTable renders benchmark rows as a bordered terminal table.
func RenderSummaryTable(rows []search.Summary) string {
	headerStyle := lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers(summaryHeaders...)
	for _, r := range rows {
		t.Row(summaryCells(r)...)
	}
	return t.String()
}

// WriteSummaryCSV writes benchmark rows as CSV with a header line.
func WriteSummaryCSV(w io.Writer, rows []search.Summary) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(summaryHeaders); err != nil {
		return fmt.Errorf("report: csv header: %w", err)
	}
	for _, r := range rows {
		if err := cw.Write(summaryCells(r)); err != nil {
			return fmt.Errorf("report: csv row n=%d: %w", r.Nodes, err)
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("report: csv flush: %w", err)
	}
	return nil
}
