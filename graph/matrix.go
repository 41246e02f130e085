// SPDX-License-Identifier: MIT
// Package: qwalk/graph
//
// matrix.go — dense matrix views of a Graph, backed by gonum.
//
// Contract:
//   • Every view is a fresh allocation; mutating the returned matrix never
//     touches the Graph.
//   • AdjacencyMatrix and Laplacian are exact symmetric integers stored as
//     float64 (entries 0/1 and degrees), suitable for EigenSym.
//   • TransitionMatrix is row-stochastic and requires MinDegree ≥ 1.

package graph

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// AdjacencyMatrix returns the symmetric 0/1 adjacency matrix A of g.
// Complexity: O(n² + Σ deg) time, O(n²) memory.
func (g *Graph) AdjacencyMatrix() *mat.SymDense {
	a := mat.NewSymDense(g.n, nil)
	for u := 0; u < g.n; u++ {
		for _, v := range g.adj[u] {
			if v > u {
				a.SetSym(u, v, 1)
			}
		}
	}
	return a
}

// Laplacian returns the combinatorial Laplacian L = D - A of g, where D is
// the diagonal degree matrix.
// Complexity: O(n² + Σ deg) time, O(n²) memory.
func (g *Graph) Laplacian() *mat.SymDense {
	l := mat.NewSymDense(g.n, nil)
	for u := 0; u < g.n; u++ {
		l.SetSym(u, u, float64(len(g.adj[u])))
		for _, v := range g.adj[u] {
			if v > u {
				l.SetSym(u, v, -1)
			}
		}
	}
	return l
}

// TransitionMatrix returns the row-stochastic classical random-walk matrix
// P with P[u][v] = 1/deg(u) for each neighbor v of u. A walker on a
// degree-0 vertex has nowhere to go, so graphs with isolated vertices are
// rejected with ErrIsolatedVertex.
// Complexity: O(n² + Σ deg) time, O(n²) memory.
func (g *Graph) TransitionMatrix() (*mat.Dense, error) {
	p := mat.NewDense(g.n, g.n, nil)
	for u := 0; u < g.n; u++ {
		d := len(g.adj[u])
		if d == 0 {
			return nil, fmt.Errorf("TransitionMatrix: vertex %d has degree 0: %w", u, ErrIsolatedVertex)
		}
		w := 1 / float64(d)
		for _, v := range g.adj[u] {
			p.Set(u, v, w)
		}
	}
	return p, nil
}
