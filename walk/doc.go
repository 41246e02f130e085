// Package walk defines the pieces shared by every walk engine: the complex
// amplitude State, the Walker capability interface that lets one evaluator
// drive both the discrete (coined) and continuous (Hamiltonian) engines,
// and the probability Trajectory the evaluator records.
//
// The Walker contract deliberately avoids engine subtypes: an engine
// exposes an initial state, an Advance(state, amount) step where amount is
// a whole step count for discrete walks and a real time delta for
// continuous ones, and a per-vertex probability readout. Everything else —
// coins, shifts, Hamiltonians — stays private to the engine.
//
// Errors:
//
//   - ErrVertexOutOfRange: a vertex id outside [0, N).
//   - ErrHorizonNonPositive: a step/time budget ≤ 0.
//   - ErrUnitarityLost: total probability mass drifted beyond tolerance;
//     evolution is exactly unitary, so drift beyond DefaultTolerance marks
//     numerical instability, not physics.
package walk
