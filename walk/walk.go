package walk

import "errors"

// DefaultTolerance bounds the acceptable drift of total probability mass
// from 1 during evolution. Unitary maps preserve mass exactly; anything
// past this is numerical instability.
const DefaultTolerance = 1e-9

// Sentinel errors shared across engines and the evaluator.
var (
	// ErrVertexOutOfRange indicates a vertex id outside [0, N).
	ErrVertexOutOfRange = errors.New("walk: vertex out of range")

	// ErrHorizonNonPositive indicates a non-positive step or time budget.
	ErrHorizonNonPositive = errors.New("walk: horizon must be positive")

	// ErrUnitarityLost indicates that total probability mass drifted from 1
	// beyond the configured tolerance.
	ErrUnitarityLost = errors.New("walk: probability mass drifted beyond tolerance")
)

// Walker is the capability interface a walk engine exposes to the search
// evaluator. Implementations are immutable once built and safe for
// concurrent read-only reuse across evaluator runs.
type Walker interface {
	// InitialState returns a fresh, normalized state at step/time zero.
	InitialState() *State

	// Advance evolves s by amount and returns the evolved state, leaving s
	// untouched. For discrete engines amount is a whole, non-negative step
	// count; for continuous engines it is a real time delta.
	Advance(s *State, amount float64) (*State, error)

	// ProbabilityAt returns the probability of observing vertex v when
	// measuring the position register of s.
	ProbabilityAt(s *State, v int) (float64, error)

	// VertexCount reports the number of vertices of the underlying graph.
	VertexCount() int

	// Samples suggests how many evenly spaced samples the evaluator should
	// take to cover the given horizon: one per step for discrete engines, a
	// fixed time-grid resolution for continuous ones.
	Samples(horizon float64) int
}
