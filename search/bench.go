package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/qwalk/classical"
	"github.com/katalvlaran/qwalk/coined"
	"github.com/katalvlaran/qwalk/continuous"
	"github.com/katalvlaran/qwalk/graph"
	"github.com/katalvlaran/qwalk/walk"
)

// ErrNoSizes is returned when a benchmark config lists no graph sizes.
var ErrNoSizes = errors.New("search: benchmark needs at least one size")

// HittingThreshold is the cumulative probability at which the classical
// absorbing walk counts as having found the mark (the median hitting time).
const HittingThreshold = 0.5

// classicalHorizonFactor bounds the classical propagation at factor·N²
// steps, past any reasonable hitting time on the benchmarked families.
const classicalHorizonFactor = 10

// EngineKind selects which quantum engine a benchmark runs.
type EngineKind uint8

const (
	// EngineContinuous benchmarks Hamiltonian-evolution search (default).
	EngineContinuous EngineKind = iota

	// EngineCoined benchmarks discrete coined-walk search.
	EngineCoined
)

// String implements fmt.Stringer for log and table output.
func (k EngineKind) String() string {
	if k == EngineCoined {
		return "coined"
	}
	return "continuous"
}

// BenchConfig describes one family sweep.
type BenchConfig struct {
	// Family is the graph family to sweep.
	Family graph.Family

	// Sizes lists the vertex counts to benchmark, typically ascending.
	Sizes []int

	// Marked is the search target on every size. Defaults to vertex 0.
	Marked int

	// Engine selects the quantum engine. Defaults to EngineContinuous.
	Engine EngineKind
}

// Summary is one row of the benchmark results table.
type Summary struct {
	Family  graph.Family
	Engine  EngineKind
	Nodes   int
	Edges   int
	PeakX   float64 // step count or time of the quantum peak
	PeakP   float64 // quantum peak probability
	Hitting float64 // classical steps to HittingThreshold; +Inf if unreached
	Speedup float64 // Hitting / PeakX
}

// DefaultHorizon returns the evaluation horizon for a graph of n vertices:
// (π/2)·√n for the continuous engine (the complete-graph resonance time)
// and ⌈π·√n⌉ steps for the coined engine, which comfortably covers its
// (π/2√2)·√n peak.
func DefaultHorizon(k EngineKind, n int) float64 {
	if k == EngineCoined {
		return math.Ceil(math.Pi * math.Sqrt(float64(n)))
	}
	return math.Pi / 2 * math.Sqrt(float64(n))
}

// Benchmark sweeps cfg.Family over cfg.Sizes, running the quantum search
// and the absorbing classical baseline for each size.
// Complexity per size: O(N³) dominated by engine construction.
func Benchmark(cfg BenchConfig) ([]Summary, error) {
	if len(cfg.Sizes) == 0 {
		return nil, ErrNoSizes
	}

	rows := make([]Summary, 0, len(cfg.Sizes))
	for _, n := range cfg.Sizes {
		g, err := graph.Build(cfg.Family, n)
		if err != nil {
			return nil, fmt.Errorf("benchmark %s n=%d: %w", cfg.Family, n, err)
		}

		var w walk.Walker
		if cfg.Engine == EngineCoined {
			w, err = coined.New(g, coined.WithMarked(cfg.Marked))
		} else {
			w, err = continuous.New(g, continuous.WithMarked(cfg.Marked))
		}
		if err != nil {
			return nil, fmt.Errorf("benchmark %s n=%d: %w", cfg.Family, n, err)
		}

		res, err := Run(w, cfg.Marked, DefaultHorizon(cfg.Engine, n))
		if err != nil {
			return nil, fmt.Errorf("benchmark %s n=%d: %w", cfg.Family, n, err)
		}

		ctr, err := classical.Run(g, cfg.Marked, classicalHorizonFactor*n*n, classical.WithAbsorbing())
		if err != nil {
			return nil, fmt.Errorf("benchmark %s n=%d: %w", cfg.Family, n, err)
		}
		hitting := math.Inf(1)
		if pt, ok := ctr.FirstAbove(HittingThreshold); ok {
			hitting = pt.X
		}

		row := Summary{
			Family:  cfg.Family,
			Engine:  cfg.Engine,
			Nodes:   n,
			Edges:   g.NumEdges(),
			PeakX:   res.Peak.X,
			PeakP:   res.Peak.Probability,
			Hitting: hitting,
			Speedup: math.Inf(1),
		}
		if row.PeakX > 0 {
			row.Speedup = hitting / row.PeakX
		}
		rows = append(rows, row)
	}
	return rows, nil
}
