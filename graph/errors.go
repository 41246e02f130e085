// SPDX-License-Identifier: MIT
// Package: qwalk/graph
//
// errors.go — sentinel errors for graph construction and matrix views.
//
// Error policy:
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context with %w wrapping; sentinels stay bare.
//   • Constructors never panic at runtime.

package graph

import "errors"

// ErrTooFewVertices indicates that a size parameter (n, rows, cols, dim) is
// below the minimum for the requested family, or would produce a graph with
// zero edges.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* report invalid size */ }.
var ErrTooFewVertices = errors.New("graph: parameter too small")

// ErrUnknownFamily indicates that Build received a family tag that is not
// registered. Use ParseFamily to validate user input first.
var ErrUnknownFamily = errors.New("graph: unknown family")

// ErrSizeUnsupported indicates that the requested vertex count cannot be
// realized by the family (hypercubes require a power of two, grids require
// a non-trivial factorization).
var ErrSizeUnsupported = errors.New("graph: size unsupported for family")

// ErrIsolatedVertex indicates a degree-0 vertex in a context that requires
// every vertex to have at least one neighbor (transition matrices, walks).
var ErrIsolatedVertex = errors.New("graph: isolated vertex")
