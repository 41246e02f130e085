// Package report renders the artifacts a benchmark run leaves behind:
// probability-vs-step/time line charts, per-vertex distribution bar
// charts, the quantum-vs-classical scaling chart, a terminal summary
// table, and a CSV export of the results.
//
// Charts are drawn with gonum/plot and saved by file extension (use .png).
// Tables render with lipgloss for the terminal and encoding/csv for the
// delimited export; both consume search.Summary rows, so the whole
// reporting surface is a pure consumer of evaluator output.
package report
