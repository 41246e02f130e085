package report

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/qwalk/search"
	"github.com/katalvlaran/qwalk/walk"
)

// ErrNoSeries is returned when a chart is requested with nothing to draw.
var ErrNoSeries = errors.New("report: no series to plot")

// Chart geometry.
const (
	chartWidth  = 8 * vg.Inch
	chartHeight = 4 * vg.Inch
	barWidth    = 12 // printer's points per distribution bar

	// maxBarLabels caps the number of x-axis labels on distribution
	// charts; denser axes become unreadable.
	maxBarLabels = 32
)

// Series is one labeled trajectory on a chart.
type Series struct {
	Name       string
	Trajectory walk.Trajectory
}

// SaveTrajectoryChart draws one line per series (probability against
// xLabel) and writes the chart to path.
func SaveTrajectoryChart(path, title, xLabel string, series ...Series) error {
	if len(series) == 0 {
		return ErrNoSeries
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = "Probability"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	for i, s := range series {
		xys := make(plotter.XYs, len(s.Trajectory))
		for j, pt := range s.Trajectory {
			xys[j].X = pt.X
			xys[j].Y = pt.Probability
		}
		line, err := plotter.NewLine(xys)
		if err != nil {
			return fmt.Errorf("report: series %q: %w", s.Name, err)
		}
		line.Color = plotutil.Color(i)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

// SaveDistributionChart draws a per-vertex probability distribution as a
// bar chart and writes it to path.
func SaveDistributionChart(path, title string, probs []float64) error {
	if len(probs) == 0 {
		return ErrNoSeries
	}
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Vertex"
	p.Y.Label.Text = "Probability"

	bars, err := plotter.NewBarChart(plotter.Values(probs), vg.Points(barWidth))
	if err != nil {
		return fmt.Errorf("report: distribution: %w", err)
	}
	bars.Color = plotutil.Color(0)
	p.Add(bars)

	labels := make([]string, len(probs))
	stride := 1
	if len(probs) > maxBarLabels {
		stride = (len(probs) + maxBarLabels - 1) / maxBarLabels
	}
	for v := range labels {
		if v%stride == 0 {
			labels[v] = strconv.Itoa(v)
		}
	}
	p.NominalX(labels...)

	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}

// SaveScalingChart plots quantum peak time/steps and classical hitting
// steps against graph size, one point per summary row. Rows whose
// classical walk never hit the threshold (infinite hitting estimate) keep
// their quantum point and drop the classical one.
func SaveScalingChart(path string, rows []search.Summary) error {
	if len(rows) == 0 {
		return ErrNoSeries
	}
	p := plot.New()
	p.Title.Text = "Search scaling: quantum vs classical"
	p.X.Label.Text = "Number of vertices"
	p.Y.Label.Text = "Steps / time to find target"
	p.Add(plotter.NewGrid())
	p.Legend.Top = true

	quantum := make(plotter.XYs, 0, len(rows))
	classic := make(plotter.XYs, 0, len(rows))
	for _, r := range rows {
		quantum = append(quantum, plotter.XY{X: float64(r.Nodes), Y: r.PeakX})
		if !math.IsInf(r.Hitting, 1) {
			classic = append(classic, plotter.XY{X: float64(r.Nodes), Y: r.Hitting})
		}
	}
	if err := plotutil.AddLinePoints(p, "Classical random walk", classic, "Quantum walk", quantum); err != nil {
		return fmt.Errorf("report: scaling: %w", err)
	}
	if err := p.Save(chartWidth, chartHeight, path); err != nil {
		return fmt.Errorf("report: save %s: %w", path, err)
	}
	return nil
}
