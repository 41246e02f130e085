package search

import (
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/qwalk/walk"
)

// ErrNilWalker is returned when Run receives a nil walker.
var ErrNilWalker = errors.New("search: walker is nil")

// Result is one search evaluation: the full trajectory and its peak.
type Result struct {
	// Trajectory holds (step-or-time, marked-vertex probability) samples,
	// starting at X=0.
	Trajectory walk.Trajectory

	// Peak is the highest-probability sample, first occurrence on ties.
	Peak walk.Point
}

// Option configures a Run.
type Option func(*options)

type options struct {
	samples   int // 0 = ask the walker
	tolerance float64
}

func defaultOptions() options {
	return options{tolerance: walk.DefaultTolerance}
}

// WithSampleCount overrides the walker's suggested sampling resolution.
func WithSampleCount(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.samples = n
		}
	}
}

// WithTolerance overrides the probability-mass drift tolerance.
// Default: walk.DefaultTolerance.
func WithTolerance(tol float64) Option {
	return func(o *options) {
		if tol > 0 {
			o.tolerance = tol
		}
	}
}

// Run drives w from its initial state to horizon, sampling the marked
// vertex's probability at evenly spaced points (X=0 included), and returns
// the trajectory with its peak.
//
// Fails with walk.ErrVertexOutOfRange when marked is not a vertex of the
// walker's graph, walk.ErrHorizonNonPositive when horizon ≤ 0 (or NaN),
// and walk.ErrUnitarityLost when probability mass drifts beyond tolerance.
// Complexity: samples · cost(Advance).
func Run(w walk.Walker, marked int, horizon float64, opts ...Option) (*Result, error) {
	if w == nil {
		return nil, ErrNilWalker
	}
	if marked < 0 || marked >= w.VertexCount() {
		return nil, fmt.Errorf("search: marked vertex %d of %d: %w", marked, w.VertexCount(), walk.ErrVertexOutOfRange)
	}
	if !(horizon > 0) { // also rejects NaN
		return nil, fmt.Errorf("search: horizon %g: %w", horizon, walk.ErrHorizonNonPositive)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	samples := o.samples
	if samples == 0 {
		samples = w.Samples(horizon)
	}
	if samples < 1 {
		samples = 1
	}

	s := w.InitialState()
	tr := make(walk.Trajectory, 0, samples+1)

	p0, err := w.ProbabilityAt(s, marked)
	if err != nil {
		return nil, err
	}
	tr = append(tr, walk.Point{X: 0, Probability: p0})

	dx := horizon / float64(samples)
	for i := 1; i <= samples; i++ {
		s, err = w.Advance(s, dx)
		if err != nil {
			return nil, err
		}
		if drift := math.Abs(s.Norm() - 1); drift > o.tolerance {
			return nil, fmt.Errorf("search: mass drift %.3e after x=%g: %w", drift, dx*float64(i), walk.ErrUnitarityLost)
		}
		p, err := w.ProbabilityAt(s, marked)
		if err != nil {
			return nil, err
		}
		tr = append(tr, walk.Point{X: dx * float64(i), Probability: p})
	}

	peak, _ := tr.Peak() // trajectory is never empty here
	return &Result{Trajectory: tr, Peak: peak}, nil
}
