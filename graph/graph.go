package graph

import "sort"

// Graph is an immutable undirected simple graph over vertices 0..N-1.
//
// Adjacency lists are kept sorted ascending so every traversal of the
// structure is deterministic. A Graph never changes after its family
// constructor returns, which makes it safe to share read-only across
// concurrent evaluator runs.
type Graph struct {
	n   int     // number of vertices
	m   int     // number of undirected edges
	adj [][]int // adj[u] = sorted neighbor list of u
}

// newGraph allocates an edgeless graph on n vertices.
// Callers are responsible for n >= 1.
// Complexity: O(n).
func newGraph(n int) *Graph {
	return &Graph{n: n, adj: make([][]int, n)}
}

// addEdge records the undirected edge {u,v}. Family constructors emit each
// unordered pair exactly once; the final sort in freeze() restores the
// ascending neighbor invariant regardless of emission order.
// Complexity: O(1) amortized.
func (g *Graph) addEdge(u, v int) {
	g.adj[u] = append(g.adj[u], v)
	g.adj[v] = append(g.adj[v], u)
	g.m++
}

// freeze sorts every adjacency list, sealing the determinism invariant.
// Complexity: O(Σ deg·log deg).
func (g *Graph) freeze() *Graph {
	for u := range g.adj {
		sort.Ints(g.adj[u])
	}
	return g
}

// NumVertices returns N, fixed at construction.
// Complexity: O(1).
func (g *Graph) NumVertices() int { return g.n }

// NumEdges returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) NumEdges() int { return g.m }

// HasVertex reports whether v is a valid vertex identifier.
// Complexity: O(1).
func (g *Graph) HasVertex(v int) bool { return v >= 0 && v < g.n }

// Degree returns the number of neighbors of v, or 0 for an invalid id.
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	if !g.HasVertex(v) {
		return 0
	}
	return len(g.adj[v])
}

// MinDegree returns the smallest vertex degree in the graph.
// Complexity: O(n).
func (g *Graph) MinDegree() int {
	if g.n == 0 {
		return 0
	}
	min := len(g.adj[0])
	for _, nb := range g.adj[1:] {
		if len(nb) < min {
			min = len(nb)
		}
	}
	return min
}

// Neighbors returns a copy of v's neighbor list in ascending order.
// The copy keeps the underlying graph immutable.
// Complexity: O(deg(v)).
func (g *Graph) Neighbors(v int) []int {
	if !g.HasVertex(v) {
		return nil
	}
	out := make([]int, len(g.adj[v]))
	copy(out, g.adj[v])
	return out
}

// HasEdge reports whether {u,v} is an edge. Binary search over the sorted
// neighbor list of the smaller-degree endpoint.
// Complexity: O(log deg).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.HasVertex(u) || !g.HasVertex(v) || u == v {
		return false
	}
	if len(g.adj[v]) < len(g.adj[u]) {
		u, v = v, u
	}
	nb := g.adj[u]
	i := sort.SearchInts(nb, v)
	return i < len(nb) && nb[i] == v
}
