package walk

import "math/cmplx"

// State is a complex amplitude vector over an engine-defined basis:
// (vertex, direction) arcs for coined walks, plain vertices for continuous
// walks. The owning engine interprets the indexing; State only carries the
// amplitudes and their norm bookkeeping.
type State struct {
	// Amps holds the complex amplitudes in basis order.
	Amps []complex128
}

// NewState wraps amps in a State without copying. Callers that need the
// original untouched should pass a copy.
func NewState(amps []complex128) *State {
	return &State{Amps: amps}
}

// NewZeroState allocates an all-zero state of the given dimension.
func NewZeroState(dim int) *State {
	return &State{Amps: make([]complex128, dim)}
}

// Dim returns the dimension of the underlying basis.
// Complexity: O(1).
func (s *State) Dim() int { return len(s.Amps) }

// Clone returns a deep copy of the state.
// Complexity: O(dim).
func (s *State) Clone() *State {
	out := make([]complex128, len(s.Amps))
	copy(out, s.Amps)
	return &State{Amps: out}
}

// Norm returns the total probability mass Σ|a|². For a valid walk state
// this is 1 up to floating-point tolerance.
// Complexity: O(dim).
func (s *State) Norm() float64 {
	var sum float64
	for _, a := range s.Amps {
		abs := cmplx.Abs(a)
		sum += abs * abs
	}
	return sum
}
