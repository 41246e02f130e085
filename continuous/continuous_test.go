package continuous_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/qwalk/continuous"
	"github.com/katalvlaran/qwalk/graph"
	"github.com/katalvlaran/qwalk/walk"
)

//----------------------------------------------------------------------------//
// Construction errors
//----------------------------------------------------------------------------//

func TestNewErrors(t *testing.T) {
	g, err := graph.Complete(4)
	require.NoError(t, err)

	cases := []struct {
		name string
		run  func() error
		want error
	}{
		{"NilGraph", func() error { _, e := continuous.New(nil); return e }, continuous.ErrNilGraph},
		{"NegativeGamma", func() error { _, e := continuous.New(g, continuous.WithGamma(-0.5)); return e }, continuous.ErrBadCoupling},
		{"NegativeOracle", func() error { _, e := continuous.New(g, continuous.WithOracleWeight(-1)); return e }, continuous.ErrBadCoupling},
		{"MarkedOutOfRange", func() error { _, e := continuous.New(g, continuous.WithMarked(4)); return e }, walk.ErrVertexOutOfRange},
		{"MarkedMinusOne", func() error { _, e := continuous.New(g, continuous.WithMarked(-1)); return e }, walk.ErrVertexOutOfRange},
		{"StartOutOfRange", func() error { _, e := continuous.New(g, continuous.WithLocalStart(-1)); return e }, walk.ErrVertexOutOfRange},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.ErrorIs(t, tc.run(), tc.want)
		})
	}
}

func TestAdvanceErrors(t *testing.T) {
	g, err := graph.Cycle(5)
	require.NoError(t, err)
	e, err := continuous.New(g)
	require.NoError(t, err)

	_, err = e.Advance(e.InitialState(), -0.1)
	require.ErrorIs(t, err, walk.ErrHorizonNonPositive)

	bad := walk.NewZeroState(4)
	_, err = e.Advance(bad, 1)
	require.ErrorIs(t, err, continuous.ErrDimensionMismatch)
	_, err = e.ProbabilityAt(bad, 0)
	require.ErrorIs(t, err, continuous.ErrDimensionMismatch)
	_, err = e.Distribution(bad)
	require.ErrorIs(t, err, continuous.ErrDimensionMismatch)
	_, err = e.ProbabilityAt(e.InitialState(), 5)
	require.ErrorIs(t, err, walk.ErrVertexOutOfRange)
}

//----------------------------------------------------------------------------//
// Closed-form dynamics
//----------------------------------------------------------------------------//

// TestTwoVertexTransfer pins the walk on K2 against the closed form: with
// γ=1 and all amplitude on vertex 0, the probability at vertex 1 is sin²(t).
func TestTwoVertexTransfer(t *testing.T) {
	g, err := graph.Complete(2)
	require.NoError(t, err)
	e, err := continuous.New(g, continuous.WithGamma(1), continuous.WithLocalStart(0))
	require.NoError(t, err)

	for _, tm := range []float64{0, 0.3, math.Pi / 4, 1.0, math.Pi / 2, 2.5} {
		s, err := e.Evolve(tm)
		require.NoError(t, err)
		p1, err := e.ProbabilityAt(s, 1)
		require.NoError(t, err)
		want := math.Sin(tm) * math.Sin(tm)
		require.InDelta(t, want, p1, 1e-9, "t=%g", tm)
		require.InDelta(t, 1, s.Norm(), 1e-9, "t=%g", tm)
	}
}

// TestEvolveZeroIsIdentity verifies exp(-iH·0) = I.
func TestEvolveZeroIsIdentity(t *testing.T) {
	g, err := graph.Hypercube(3)
	require.NoError(t, err)
	e, err := continuous.New(g, continuous.WithMarked(2))
	require.NoError(t, err)

	init := e.InitialState()
	s, err := e.Evolve(0)
	require.NoError(t, err)
	for i := range init.Amps {
		require.InDelta(t, real(init.Amps[i]), real(s.Amps[i]), 1e-12)
		require.InDelta(t, imag(init.Amps[i]), imag(s.Amps[i]), 1e-12)
	}
}

// TestUnitarity checks norm preservation across families, generators and
// long evolution times.
func TestUnitarity(t *testing.T) {
	builds := map[string]func() (*graph.Graph, error){
		"complete":  func() (*graph.Graph, error) { return graph.Complete(10) },
		"cycle":     func() (*graph.Graph, error) { return graph.Cycle(9) },
		"star":      func() (*graph.Graph, error) { return graph.Star(7) },
		"hypercube": func() (*graph.Graph, error) { return graph.Hypercube(4) },
	}
	for name, build := range builds {
		t.Run(name, func(t *testing.T) {
			g, err := build()
			require.NoError(t, err)
			for _, gen := range []continuous.Generator{continuous.Adjacency, continuous.Laplacian} {
				e, err := continuous.New(g, continuous.WithGenerator(gen), continuous.WithMarked(1))
				require.NoError(t, err)
				for _, tm := range []float64{0.7, 5, 40} {
					s, err := e.Evolve(tm)
					require.NoError(t, err)
					require.InDelta(t, 1, s.Norm(), 1e-9, "%s t=%g", gen, tm)
				}
			}
		})
	}
}

// TestGeneratorsAgreeOnRegularGraphs verifies that adjacency and Laplacian
// generators differ only by a global phase on a regular graph: identical
// per-vertex probabilities at every time.
func TestGeneratorsAgreeOnRegularGraphs(t *testing.T) {
	g, err := graph.Cycle(8)
	require.NoError(t, err)
	adj, err := continuous.New(g,
		continuous.WithGenerator(continuous.Adjacency),
		continuous.WithGamma(0.5), continuous.WithMarked(3))
	require.NoError(t, err)
	lap, err := continuous.New(g,
		continuous.WithGenerator(continuous.Laplacian),
		continuous.WithGamma(0.5), continuous.WithMarked(3))
	require.NoError(t, err)

	for _, tm := range []float64{0.4, 1.7, 6.0} {
		sa, err := adj.Evolve(tm)
		require.NoError(t, err)
		sl, err := lap.Evolve(tm)
		require.NoError(t, err)
		da, err := adj.Distribution(sa)
		require.NoError(t, err)
		dl, err := lap.Distribution(sl)
		require.NoError(t, err)
		require.InDelta(t, 1, floats.Sum(da), 1e-9)
		for v := range da {
			require.InDelta(t, da[v], dl[v], 1e-9, "t=%g vertex %d", tm, v)
		}
	}
}

//----------------------------------------------------------------------------//
// Marked-vertex search
//----------------------------------------------------------------------------//

// TestCompleteGraphSearch verifies the resonance: at γ=1/N the success
// probability on the complete graph climbs from 1/N to at least 1/2 within
// a horizon of order √N.
func TestCompleteGraphSearch(t *testing.T) {
	for _, n := range []int{4, 16, 64} {
		g, err := graph.Complete(n)
		require.NoError(t, err)
		e, err := continuous.New(g, continuous.WithMarked(0))
		require.NoError(t, err)
		require.InDelta(t, 1/float64(n), e.Gamma(), 1e-15, "default rate")

		horizon := 1.25 * math.Pi / 2 * math.Sqrt(float64(n))
		best := 0.0
		for i := 0; i <= 200; i++ {
			s, err := e.Evolve(horizon * float64(i) / 200)
			require.NoError(t, err)
			p, err := e.ProbabilityAt(s, 0)
			require.NoError(t, err)
			if p > best {
				best = p
			}
		}
		require.GreaterOrEqual(t, best, 0.5, "N=%d peak success probability", n)
	}
}

//----------------------------------------------------------------------------//
// Misc accessors
//----------------------------------------------------------------------------//

func TestHamiltonianMatrix(t *testing.T) {
	g, err := graph.Complete(2)
	require.NoError(t, err)
	e, err := continuous.New(g, continuous.WithGamma(1), continuous.WithMarked(0))
	require.NoError(t, err)

	h := e.HamiltonianMatrix()
	require.InDelta(t, -1, h.At(0, 1), 1e-15, "hopping term -γ·A")
	require.InDelta(t, -1, h.At(0, 0), 1e-15, "oracle term -c·|w⟩⟨w|")
	require.InDelta(t, 0, h.At(1, 1), 1e-15)

	// Mutating the copy must not disturb the engine.
	h.SetSym(0, 1, 99)
	require.InDelta(t, -1, e.HamiltonianMatrix().At(0, 1), 1e-15)
}

func TestDeterminism(t *testing.T) {
	g, err := graph.Star(6)
	require.NoError(t, err)
	e, err := continuous.New(g, continuous.WithMarked(2))
	require.NoError(t, err)

	a, err := e.Evolve(3.21)
	require.NoError(t, err)
	b, err := e.Evolve(3.21)
	require.NoError(t, err)
	require.Equal(t, a.Amps, b.Amps)
}

func TestSamplesAndStrings(t *testing.T) {
	g, err := graph.Cycle(4)
	require.NoError(t, err)
	e, err := continuous.New(g, continuous.WithSampleCount(50))
	require.NoError(t, err)
	require.Equal(t, 50, e.Samples(123.0))

	require.Equal(t, "adjacency", continuous.Adjacency.String())
	require.Equal(t, "laplacian", continuous.Laplacian.String())
	require.Equal(t, "unknown", continuous.Generator(7).String())
}

func TestLocalStart(t *testing.T) {
	g, err := graph.Cycle(5)
	require.NoError(t, err)
	e, err := continuous.New(g, continuous.WithLocalStart(3))
	require.NoError(t, err)
	p, err := e.ProbabilityAt(e.InitialState(), 3)
	require.NoError(t, err)
	require.InDelta(t, 1, p, 1e-15)
}
