package coined

import "errors"

// Sentinel errors for coined walk construction and stepping.
var (
	// ErrNilGraph is returned when New receives a nil graph.
	ErrNilGraph = errors.New("coined: graph is nil")

	// ErrCoinUnsupported is returned when the selected coin cannot act on
	// the graph's degree structure (Hadamard requires every degree == 2) or
	// the coin tag is unknown.
	ErrCoinUnsupported = errors.New("coined: coin unsupported for graph")

	// ErrFractionalStep is returned when Advance receives an amount that is
	// not a whole number of steps.
	ErrFractionalStep = errors.New("coined: step amount must be a whole number")

	// ErrDimensionMismatch is returned when a state's dimension does not
	// match the engine's arc space.
	ErrDimensionMismatch = errors.New("coined: state dimension mismatch")
)
