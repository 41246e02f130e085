// SPDX-License-Identifier: MIT
// Package: qwalk/graph
//
// families.go — deterministic constructors for the benchmarked families.
//
// Contract (all constructors):
//   • Vertices are numbered 0..N-1 in the documented order for the family.
//   • Each unordered edge {u,v} is emitted exactly once; no loops, no
//     parallel edges.
//   • Size parameters that are non-positive or would produce zero edges
//     fail with ErrTooFewVertices.
//   • Returns only sentinel errors; never panics at runtime.

package graph

import "fmt"

// File-local constants: method tags and parameter minima (no magic numbers).
const (
	methodComplete  = "Complete"
	methodCycle     = "Cycle"
	methodStar      = "Star"
	methodHypercube = "Hypercube"
	methodGrid      = "Grid"

	minCompleteNodes = 2 // K1 has zero edges
	minCycleNodes    = 3 // C2 would be a parallel edge
	minStarNodes     = 2 // a star needs at least one leaf
	minHypercubeDim  = 1
	minGridCells     = 2 // a 1×1 grid has zero edges
	minWrapDimension = 3 // wraparound below 3 duplicates an existing edge
)

// Complete builds the complete simple graph K_n: an edge between every pair
// of distinct vertices.
//
// Determinism: pairs are emitted lexicographically by (i,j), i<j.
// Complexity: O(n²) time, O(n²) memory.
func Complete(n int) (*Graph, error) {
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewVertices)
	}
	g := newGraph(n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			g.addEdge(i, j)
		}
	}
	return g.freeze(), nil
}

// Cycle builds the cycle C_n: vertex i adjacent to (i±1) mod n.
//
// Complexity: O(n) time and memory.
func Cycle(n int) (*Graph, error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewVertices)
	}
	g := newGraph(n)
	for i := 0; i < n; i++ {
		g.addEdge(i, (i+1)%n)
	}
	return g.freeze(), nil
}

// Star builds the star S_n on n vertices: hub 0 adjacent to leaves 1..n-1.
//
// Complexity: O(n) time and memory.
func Star(n int) (*Graph, error) {
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewVertices)
	}
	g := newGraph(n)
	for leaf := 1; leaf < n; leaf++ {
		g.addEdge(0, leaf)
	}
	return g.freeze(), nil
}

// Hypercube builds the dim-dimensional hypercube Q_dim: 2^dim vertices,
// with an edge between vertices whose binary labels differ in exactly one
// bit.
//
// Determinism: for each vertex v ascending and each bit b ascending, the
// edge {v, v^(1<<b)} is emitted once (when v has bit b clear).
// Complexity: O(dim·2^dim) time and memory.
func Hypercube(dim int) (*Graph, error) {
	if dim < minHypercubeDim {
		return nil, fmt.Errorf("%s: dim=%d < min=%d: %w", methodHypercube, dim, minHypercubeDim, ErrTooFewVertices)
	}
	n := 1 << dim
	g := newGraph(n)
	for v := 0; v < n; v++ {
		for b := 0; b < dim; b++ {
			if v&(1<<b) == 0 {
				g.addEdge(v, v|(1<<b))
			}
		}
	}
	return g.freeze(), nil
}

// GridOption configures Grid construction.
type GridOption func(*gridOptions)

type gridOptions struct {
	wrap bool
}

// WithWrap adds toroidal wraparound edges along any axis of length ≥ 3.
// Shorter axes are left open: wrapping an axis of length 2 would duplicate
// an existing edge, and length 1 would be a self-loop.
func WithWrap() GridOption {
	return func(o *gridOptions) { o.wrap = true }
}

// Grid builds the rows×cols rectangular lattice: vertex (r,c) is numbered
// r*cols+c and joined to its axis-adjacent cells. No wraparound unless
// WithWrap is given.
//
// Determinism: cells in row-major order; per cell, the right edge is
// emitted before the bottom edge.
// Complexity: O(rows·cols) time and memory.
func Grid(rows, cols int, opts ...GridOption) (*Graph, error) {
	if rows < 1 || cols < 1 || rows*cols < minGridCells {
		return nil, fmt.Errorf("%s: rows=%d, cols=%d (need rows,cols ≥ 1 and rows·cols ≥ %d): %w",
			methodGrid, rows, cols, minGridCells, ErrTooFewVertices)
	}
	var o gridOptions
	for _, opt := range opts {
		opt(&o)
	}

	g := newGraph(rows * cols)
	id := func(r, c int) int { return r*cols + c }
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if c+1 < cols {
				g.addEdge(id(r, c), id(r, c+1))
			}
			if r+1 < rows {
				g.addEdge(id(r, c), id(r+1, c))
			}
		}
	}
	if o.wrap {
		if cols >= minWrapDimension {
			for r := 0; r < rows; r++ {
				g.addEdge(id(r, cols-1), id(r, 0))
			}
		}
		if rows >= minWrapDimension {
			for c := 0; c < cols; c++ {
				g.addEdge(id(rows-1, c), id(0, c))
			}
		}
	}
	return g.freeze(), nil
}
