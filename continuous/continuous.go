package continuous

import (
	"fmt"
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qwalk/graph"
	"github.com/katalvlaran/qwalk/walk"
)

// Engine is an immutable continuous-time walk over a fixed graph: the
// Hamiltonian and its spectral decomposition are built once in New, after
// which Advance is a pure function of (state, Δt).
type Engine struct {
	g *graph.Graph
	n int

	gen    Generator
	gamma  float64
	oracle float64
	marked int
	start  int

	samples int

	h     *mat.SymDense // the Hamiltonian, kept for HamiltonianMatrix
	evals []float64     // eigenvalues λ_k
	evecs *mat.Dense    // orthonormal eigenvectors, column k ↔ λ_k
}

// Compile-time check: Engine satisfies the shared walker contract.
var _ walk.Walker = (*Engine)(nil)

// New builds and factorizes the Hamiltonian for g under the given options.
// Complexity: O(N³) time for the factorization, O(N²) memory.
func New(g *graph.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumVertices()

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.gamma < 0 {
		return nil, fmt.Errorf("continuous: gamma=%g must be positive: %w", o.gamma, ErrBadCoupling)
	}
	if o.gamma == 0 {
		o.gamma = 1 / float64(n) // resonant rate for complete-graph search
	}
	if o.oracle < 0 {
		return nil, fmt.Errorf("continuous: oracle weight %g must be non-negative: %w", o.oracle, ErrBadCoupling)
	}
	if o.samples < 1 {
		o.samples = DefaultSampleCount
	}
	if o.hasMarked && !g.HasVertex(o.marked) {
		return nil, fmt.Errorf("continuous: marked vertex %d: %w", o.marked, walk.ErrVertexOutOfRange)
	}
	if o.hasStart && !g.HasVertex(o.start) {
		return nil, fmt.Errorf("continuous: start vertex %d: %w", o.start, walk.ErrVertexOutOfRange)
	}

	h := buildHamiltonian(g, o)

	var eig mat.EigenSym
	if !eig.Factorize(h, true) {
		return nil, fmt.Errorf("continuous: n=%d: %w", n, ErrFactorizationFailed)
	}
	var evecs mat.Dense
	eig.VectorsTo(&evecs)

	return &Engine{
		g:       g,
		n:       n,
		gen:     o.gen,
		gamma:   o.gamma,
		oracle:  o.oracle,
		marked:  o.marked,
		start:   o.start,
		samples: o.samples,
		h:       h,
		evals:   eig.Values(nil),
		evecs:   &evecs,
	}, nil
}

// buildHamiltonian assembles H = ±γ·M - c·|w⟩⟨w| with the sign fixed by
// the generator: -γ·A for adjacency, +γ·L for Laplacian. Matching signs of
// the hopping and oracle terms keep the search on resonance (the
// Childs–Goldstone construction).
func buildHamiltonian(g *graph.Graph, o options) *mat.SymDense {
	var h *mat.SymDense
	if o.gen == Laplacian {
		h = g.Laplacian()
		scaleSym(h, o.gamma)
	} else {
		h = g.AdjacencyMatrix()
		scaleSym(h, -o.gamma)
	}
	if o.hasMarked {
		h.SetSym(o.marked, o.marked, h.At(o.marked, o.marked)-o.oracle)
	}
	return h
}

// scaleSym multiplies a symmetric matrix in place by f.
func scaleSym(m *mat.SymDense, f float64) {
	n := m.SymmetricDim()
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m.SetSym(i, j, f*m.At(i, j))
		}
	}
}

// Graph returns the underlying graph.
func (e *Engine) Graph() *graph.Graph { return e.g }

// VertexCount reports the number of vertices of the underlying graph.
func (e *Engine) VertexCount() int { return e.n }

// Gamma returns the hopping rate in effect (the default 1/N if none was
// configured).
func (e *Engine) Gamma() float64 { return e.gamma }

// Samples suggests the engine's configured time-grid resolution for any
// horizon; continuous time has no natural step, so the grid is fixed.
func (e *Engine) Samples(_ float64) int { return e.samples }

// HamiltonianMatrix returns a copy of the Hamiltonian.
// Complexity: O(N²).
func (e *Engine) HamiltonianMatrix() *mat.SymDense {
	out := mat.NewSymDense(e.n, nil)
	out.CopySym(e.h)
	return out
}

// InitialState returns the configured start state: the uniform
// superposition 1/√N over all vertices by default (the search convention),
// or the basis vector |v⟩ when WithLocalStart was given.
// Complexity: O(N).
func (e *Engine) InitialState() *walk.State {
	s := walk.NewZeroState(e.n)
	if e.start == unset {
		a := complex(1/math.Sqrt(float64(e.n)), 0)
		for i := range s.Amps {
			s.Amps[i] = a
		}
		return s
	}
	s.Amps[e.start] = 1
	return s
}

// Advance evolves s by the time delta dt, computing exp(-iH·dt)·s through
// the eigenbasis: project onto eigenvectors, rotate each coefficient by
// its eigenphase, and transform back. s is left untouched.
// Complexity: O(N²).
func (e *Engine) Advance(s *walk.State, dt float64) (*walk.State, error) {
	if s.Dim() != e.n {
		return nil, fmt.Errorf("continuous: state dim %d, graph has %d vertices: %w",
			s.Dim(), e.n, ErrDimensionMismatch)
	}
	if dt < 0 {
		return nil, fmt.Errorf("continuous: advance by %g: %w", dt, walk.ErrHorizonNonPositive)
	}

	// Coefficients in the eigenbasis: c_k = Σ_i Q[i][k]·ψ_i (Q real).
	coeff := make([]complex128, e.n)
	for k := 0; k < e.n; k++ {
		var c complex128
		for i := 0; i < e.n; i++ {
			c += complex(e.evecs.At(i, k), 0) * s.Amps[i]
		}
		coeff[k] = c
	}
	// Rotate by the eigenphases exp(-iλ_k·dt).
	for k := 0; k < e.n; k++ {
		coeff[k] *= cmplx.Exp(complex(0, -e.evals[k]*dt))
	}
	// Back to the vertex basis: ψ'_i = Σ_k Q[i][k]·c_k.
	out := walk.NewZeroState(e.n)
	for i := 0; i < e.n; i++ {
		var a complex128
		for k := 0; k < e.n; k++ {
			a += complex(e.evecs.At(i, k), 0) * coeff[k]
		}
		out.Amps[i] = a
	}
	return out, nil
}

// Evolve is shorthand for advancing the initial state by t.
func (e *Engine) Evolve(t float64) (*walk.State, error) {
	return e.Advance(e.InitialState(), t)
}

// ProbabilityAt returns |ψ_v|², the probability of observing vertex v.
// Complexity: O(1).
func (e *Engine) ProbabilityAt(s *walk.State, v int) (float64, error) {
	if !e.g.HasVertex(v) {
		return 0, fmt.Errorf("continuous: vertex %d: %w", v, walk.ErrVertexOutOfRange)
	}
	if s.Dim() != e.n {
		return 0, fmt.Errorf("continuous: state dim %d, graph has %d vertices: %w",
			s.Dim(), e.n, ErrDimensionMismatch)
	}
	abs := cmplx.Abs(s.Amps[v])
	return abs * abs, nil
}

// Distribution returns the full per-vertex probability distribution of s.
// Complexity: O(N).
func (e *Engine) Distribution(s *walk.State) ([]float64, error) {
	if s.Dim() != e.n {
		return nil, fmt.Errorf("continuous: state dim %d, graph has %d vertices: %w",
			s.Dim(), e.n, ErrDimensionMismatch)
	}
	out := make([]float64, e.n)
	for v, a := range s.Amps {
		abs := cmplx.Abs(a)
		out[v] = abs * abs
	}
	return out, nil
}
