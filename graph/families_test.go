package graph_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/qwalk/graph"
)

//----------------------------------------------------------------------------//
// Family constructor tests
//----------------------------------------------------------------------------//

// TestFamilySizes verifies vertex and edge counts for each family.
func TestFamilySizes(t *testing.T) {
	cases := []struct {
		name     string
		build    func() (*graph.Graph, error)
		vertices int
		edges    int
	}{
		{"Complete4", func() (*graph.Graph, error) { return graph.Complete(4) }, 4, 6},
		{"Complete2", func() (*graph.Graph, error) { return graph.Complete(2) }, 2, 1},
		{"Cycle5", func() (*graph.Graph, error) { return graph.Cycle(5) }, 5, 5},
		{"Star6", func() (*graph.Graph, error) { return graph.Star(6) }, 6, 5},
		{"Hypercube3", func() (*graph.Graph, error) { return graph.Hypercube(3) }, 8, 12},
		{"Grid2x3", func() (*graph.Graph, error) { return graph.Grid(2, 3) }, 6, 7},
		{"Grid1x4", func() (*graph.Graph, error) { return graph.Grid(1, 4) }, 4, 3},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			g, err := tc.build()
			if err != nil {
				t.Fatalf("build error: %v", err)
			}
			if g.NumVertices() != tc.vertices {
				t.Errorf("NumVertices = %d; want %d", g.NumVertices(), tc.vertices)
			}
			if g.NumEdges() != tc.edges {
				t.Errorf("NumEdges = %d; want %d", g.NumEdges(), tc.edges)
			}
		})
	}
}

// TestFamilyErrors verifies that undersized parameters fail with
// ErrTooFewVertices.
func TestFamilyErrors(t *testing.T) {
	cases := []struct {
		name  string
		build func() (*graph.Graph, error)
	}{
		{"Complete1", func() (*graph.Graph, error) { return graph.Complete(1) }},
		{"Complete0", func() (*graph.Graph, error) { return graph.Complete(0) }},
		{"CompleteNegative", func() (*graph.Graph, error) { return graph.Complete(-3) }},
		{"Cycle2", func() (*graph.Graph, error) { return graph.Cycle(2) }},
		{"Star1", func() (*graph.Graph, error) { return graph.Star(1) }},
		{"Hypercube0", func() (*graph.Graph, error) { return graph.Hypercube(0) }},
		{"Grid1x1", func() (*graph.Graph, error) { return graph.Grid(1, 1) }},
		{"Grid0x5", func() (*graph.Graph, error) { return graph.Grid(0, 5) }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tc.build()
			if !errors.Is(err, graph.ErrTooFewVertices) {
				t.Errorf("error = %v; want ErrTooFewVertices", err)
			}
		})
	}
}

// TestHypercubeStructure checks degrees and one-bit adjacency on Q3.
func TestHypercubeStructure(t *testing.T) {
	g, err := graph.Hypercube(3)
	if err != nil {
		t.Fatalf("Hypercube(3): %v", err)
	}
	for v := 0; v < g.NumVertices(); v++ {
		if g.Degree(v) != 3 {
			t.Errorf("Degree(%d) = %d; want 3", v, g.Degree(v))
		}
	}
	if !g.HasEdge(0b000, 0b100) {
		t.Error("expected edge 000↔100")
	}
	if g.HasEdge(0b000, 0b011) {
		t.Error("unexpected edge 000↔011 (two bits differ)")
	}
}

// TestGridWrap verifies that WithWrap closes long axes and leaves short
// ones open.
func TestGridWrap(t *testing.T) {
	g, err := graph.Grid(2, 4, graph.WithWrap())
	if err != nil {
		t.Fatalf("Grid(2,4,wrap): %v", err)
	}
	// Columns wrap (length 4 ≥ 3): (0,3)↔(0,0) is vertex 3 ↔ vertex 0.
	if !g.HasEdge(3, 0) {
		t.Error("expected wrapped edge 3↔0 along the length-4 axis")
	}
	// Rows do not wrap (length 2 < 3): the open edges already connect them,
	// so the total must be plain grid (10) + 2 wrapped column edges.
	if g.NumEdges() != 12 {
		t.Errorf("NumEdges = %d; want 12", g.NumEdges())
	}
}

// TestNeighborsSortedAndImmutable verifies the determinism contract and
// that mutating a returned slice does not corrupt the graph.
func TestNeighborsSortedAndImmutable(t *testing.T) {
	g, err := graph.Complete(5)
	if err != nil {
		t.Fatalf("Complete(5): %v", err)
	}
	nb := g.Neighbors(2)
	want := []int{0, 1, 3, 4}
	for i, v := range want {
		if nb[i] != v {
			t.Fatalf("Neighbors(2) = %v; want %v", nb, want)
		}
	}
	nb[0] = 99
	if g.Neighbors(2)[0] != 0 {
		t.Error("mutating the returned neighbor slice leaked into the graph")
	}
}

//----------------------------------------------------------------------------//
// Registry tests
//----------------------------------------------------------------------------//

// TestBuildRegistry verifies the per-family size conventions.
func TestBuildRegistry(t *testing.T) {
	cases := []struct {
		family   graph.Family
		n        int
		vertices int
		err      error
	}{
		{graph.FamilyComplete, 8, 8, nil},
		{graph.FamilyCycle, 8, 8, nil},
		{graph.FamilyStar, 8, 8, nil},
		{graph.FamilyHypercube, 8, 8, nil},
		{graph.FamilyHypercube, 6, 0, graph.ErrSizeUnsupported},
		{graph.FamilyGrid, 12, 12, nil}, // 3×4
		{graph.FamilyGrid, 7, 7, nil},   // degrades to a 1×7 path
		{graph.Family("moebius"), 8, 0, graph.ErrUnknownFamily},
	}
	for _, tc := range cases {
		g, err := graph.Build(tc.family, tc.n)
		if tc.err != nil {
			if !errors.Is(err, tc.err) {
				t.Errorf("Build(%s,%d) error = %v; want %v", tc.family, tc.n, err, tc.err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Build(%s,%d): %v", tc.family, tc.n, err)
			continue
		}
		if g.NumVertices() != tc.vertices {
			t.Errorf("Build(%s,%d) vertices = %d; want %d", tc.family, tc.n, g.NumVertices(), tc.vertices)
		}
	}
}

// TestParseFamily covers normalization and rejection.
func TestParseFamily(t *testing.T) {
	if f, err := graph.ParseFamily("  Complete "); err != nil || f != graph.FamilyComplete {
		t.Errorf("ParseFamily: got (%v, %v)", f, err)
	}
	if _, err := graph.ParseFamily("torus"); !errors.Is(err, graph.ErrUnknownFamily) {
		t.Errorf("ParseFamily(torus) error = %v; want ErrUnknownFamily", err)
	}
}
