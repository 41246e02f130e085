// Package graph builds the immutable undirected graphs that the walk
// engines consume: vertices are dense integers 0..N-1, adjacency is a
// simple symmetric relation (no self-loops, no parallel edges), and the
// whole structure is frozen at construction.
//
// What:
//
//   - Family constructors: Complete, Cycle, Star, Hypercube, Grid.
//   - A Family registry (Build) so callers can select a family by tag
//     without module-level state.
//   - Matrix views backed by gonum: AdjacencyMatrix, Laplacian and the
//     row-stochastic TransitionMatrix.
//
// Why:
//
//   - Quantum walk engines need deterministic vertex numbering and stable
//     neighbor order; both are guaranteed here (neighbors ascending).
//   - Immutability makes a built graph safe to share read-only across
//     evaluator runs without synchronization.
//
// Determinism:
//
//   - Vertex numbering and edge emission order are fixed per family.
//   - Neighbors(v) is always sorted ascending.
//
// Errors:
//
//   - ErrTooFewVertices: size parameters below the family minimum or
//     producing zero edges.
//   - ErrUnknownFamily: Build received an unregistered family tag.
//   - ErrSizeUnsupported: the requested vertex count cannot be realized by
//     the family (e.g. a hypercube with a non power-of-two count).
//   - ErrIsolatedVertex: a degree-0 vertex where positive degree is required
//     (TransitionMatrix).
package graph
