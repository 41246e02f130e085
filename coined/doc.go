// Package coined implements the discrete-time coined quantum walk engine.
//
// What:
//
//   - State space: one basis vector per directed arc (u→v) of the graph,
//     grouped by tail vertex in ascending (u, v) order; dimension Σ deg(u).
//   - Coin: a per-vertex unitary on the local direction subspace. The
//     default Grover coin reflects about the uniform superposition of
//     outgoing directions; the Hadamard coin serves degree-2 graphs
//     (cycles, closed lines). A marked vertex swaps its coin for -I, the
//     standard walk-search oracle.
//   - Shift: the flip-flop permutation (u→v) ↦ (v→u).
//   - Step: shift ∘ coin, one fixed unitary applied per iteration.
//
// Why:
//
//   - Marked-vertex search: with a Grover coin everywhere and -I on the
//     marked vertex, the walk concentrates probability on the mark in
//     O(√N) steps on well-connected graphs — the quantum half of the
//     classical-vs-quantum benchmark.
//
// Determinism:
//
//   - Arc numbering is fixed by the graph's sorted adjacency; given the
//     same graph and options, N steps always produce the same state.
//
// Complexity:
//
//   - New: O(Σ deg) time and memory.
//   - Step: O(Σ deg) time (the coin is block-local, the shift a
//     permutation).
//   - OperatorMatrix: O(dim²) time and memory; intended for inspection and
//     tests, not for stepping.
//
// Errors:
//
//   - ErrNilGraph, ErrCoinUnsupported, ErrFractionalStep,
//     ErrDimensionMismatch, graph.ErrIsolatedVertex (wrapped when the graph
//     has a degree-0 vertex), and the shared walk.ErrVertexOutOfRange /
//     walk.ErrHorizonNonPositive.
package coined
