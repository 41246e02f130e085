// Package continuous implements the continuous-time quantum walk engine:
// a state vector indexed by vertex, evolved under a fixed Hermitian
// Hamiltonian as exp(-i·H·t) for a real time parameter t.
//
// What:
//
//   - Generator: the graph's adjacency matrix (default) or combinatorial
//     Laplacian, scaled by the hopping rate γ (default 1/N).
//   - Search: a marked vertex adds the rank-one oracle term, giving the
//     Childs–Goldstone search Hamiltonian
//
//     H = -γ·A - c·|w⟩⟨w|   (adjacency generator)
//     H = +γ·L - c·|w⟩⟨w|   (Laplacian generator)
//
//     with oracle weight c (default 1). On regular graphs the two
//     generators differ by a multiple of the identity, i.e. by a global
//     phase, so they produce identical probabilities.
//   - Evolution: H is real symmetric, so the engine factorizes it once
//     with gonum's EigenSym and applies exp(-iHt) through the eigenbasis —
//     direct diagonalization, not iterative stepping.
//
// Determinism:
//
//   - The Hamiltonian and its factorization are built once per
//     (graph, marked vertex) pair and never mutated; identical inputs give
//     identical states at every t.
//
// Complexity:
//
//   - New: O(N³) for the factorization (N ≤ a few hundred in scope).
//   - Advance: O(N²) per time point.
//
// Errors:
//
//   - ErrNilGraph, ErrBadCoupling, ErrFactorizationFailed, and the shared
//     walk.ErrVertexOutOfRange / walk.ErrHorizonNonPositive.
package continuous
