package continuous

import "errors"

// Sentinel errors for Hamiltonian construction and evolution.
var (
	// ErrNilGraph is returned when New receives a nil graph.
	ErrNilGraph = errors.New("continuous: graph is nil")

	// ErrBadCoupling is returned for a non-positive hopping rate γ or a
	// negative oracle weight.
	ErrBadCoupling = errors.New("continuous: invalid coupling")

	// ErrFactorizationFailed is returned when the eigendecomposition of the
	// Hamiltonian does not converge; evolution would be numerically
	// meaningless, so the engine refuses to build.
	ErrFactorizationFailed = errors.New("continuous: eigendecomposition failed")

	// ErrDimensionMismatch is returned when a state's dimension does not
	// match the vertex count.
	ErrDimensionMismatch = errors.New("continuous: state dimension mismatch")
)
