package coined

import (
	"fmt"
	"math"
	"math/cmplx"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qwalk/graph"
	"github.com/katalvlaran/qwalk/walk"
)

// stepEpsilon tolerates float noise when checking that an Advance amount is
// a whole step count.
const stepEpsilon = 1e-9

// Engine is an immutable discrete-time coined walk over a fixed graph.
// Build it once with New and reuse it read-only across evaluator runs.
type Engine struct {
	g   *graph.Graph
	dim int // number of arcs = Σ deg(u)

	// Arc layout: arcs grouped by tail vertex, heads ascending within a
	// group. offset[u] is the first arc of u's group, offset[n] == dim.
	offset  []int
	arcHead []int
	rev     []int // rev[i] = arc index of the reversed arc

	coin   Coin
	marked int
	start  int
}

// Compile-time check: Engine satisfies the shared walker contract.
var _ walk.Walker = (*Engine)(nil)

// New builds the step machinery for g: arc layout, flip-flop permutation
// and coin configuration. Graphs with isolated vertices are invalid input
// (a degree-0 vertex has no direction subspace to coin).
// Complexity: O(Σ deg) time and memory.
func New(g *graph.Graph, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	n := g.NumVertices()
	if g.MinDegree() == 0 {
		return nil, fmt.Errorf("coined: %w", graph.ErrIsolatedVertex)
	}

	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasMarked && !g.HasVertex(o.marked) {
		return nil, fmt.Errorf("coined: marked vertex %d: %w", o.marked, walk.ErrVertexOutOfRange)
	}
	if o.hasStart && !g.HasVertex(o.start) {
		return nil, fmt.Errorf("coined: start vertex %d: %w", o.start, walk.ErrVertexOutOfRange)
	}
	switch o.coin {
	case CoinGrover:
		// any degree
	case CoinHadamard:
		for v := 0; v < n; v++ {
			if g.Degree(v) != 2 {
				return nil, fmt.Errorf("coined: hadamard coin needs degree 2, vertex %d has %d: %w",
					v, g.Degree(v), ErrCoinUnsupported)
			}
		}
	default:
		return nil, fmt.Errorf("coined: coin %d: %w", o.coin, ErrCoinUnsupported)
	}

	// Lay out arcs by ascending (tail, head); graph adjacency is already
	// sorted, so a single pass fixes the numbering.
	nbrs := make([][]int, n)
	offset := make([]int, n+1)
	for u := 0; u < n; u++ {
		nbrs[u] = g.Neighbors(u)
		offset[u+1] = offset[u] + len(nbrs[u])
	}
	dim := offset[n]
	arcHead := make([]int, dim)
	for u := 0; u < n; u++ {
		copy(arcHead[offset[u]:offset[u+1]], nbrs[u])
	}

	// rev[(u→v)] = (v→u): binary search u inside v's sorted neighbor list.
	rev := make([]int, dim)
	for u := 0; u < n; u++ {
		for i, v := range nbrs[u] {
			j := sort.SearchInts(nbrs[v], u)
			rev[offset[u]+i] = offset[v] + j
		}
	}

	return &Engine{
		g:       g,
		dim:     dim,
		offset:  offset,
		arcHead: arcHead,
		rev:     rev,
		coin:    o.coin,
		marked:  o.marked,
		start:   o.start,
	}, nil
}

// Graph returns the underlying graph.
func (e *Engine) Graph() *graph.Graph { return e.g }

// VertexCount reports the number of vertices of the underlying graph.
func (e *Engine) VertexCount() int { return e.g.NumVertices() }

// Dim returns the dimension of the arc state space.
func (e *Engine) Dim() int { return e.dim }

// Samples suggests one sample per step: a horizon of k steps is sampled k
// times (plus the evaluator's own zero point).
func (e *Engine) Samples(horizon float64) int {
	k := int(math.Round(horizon))
	if k < 1 {
		k = 1
	}
	return k
}

// InitialState returns the configured start state: a uniform superposition
// over all arcs by default, or over the start vertex's outgoing arcs when
// WithLocalStart was given.
// Complexity: O(dim).
func (e *Engine) InitialState() *walk.State {
	s := walk.NewZeroState(e.dim)
	if e.start == unset {
		a := complex(1/math.Sqrt(float64(e.dim)), 0)
		for i := range s.Amps {
			s.Amps[i] = a
		}
		return s
	}
	lo, hi := e.offset[e.start], e.offset[e.start+1]
	a := complex(1/math.Sqrt(float64(hi-lo)), 0)
	for i := lo; i < hi; i++ {
		s.Amps[i] = a
	}
	return s
}

// Step applies the full step operator shift∘coin once, returning a new
// state and leaving s untouched.
// Complexity: O(Σ deg).
func (e *Engine) Step(s *walk.State) (*walk.State, error) {
	if s.Dim() != e.dim {
		return nil, fmt.Errorf("coined: state dim %d, engine dim %d: %w", s.Dim(), e.dim, ErrDimensionMismatch)
	}
	coined := make([]complex128, e.dim)
	e.applyCoin(s.Amps, coined)

	// Flip-flop shift: amplitude on (u→v) lands on (v→u).
	out := walk.NewZeroState(e.dim)
	for i, a := range coined {
		out.Amps[e.rev[i]] = a
	}
	return out, nil
}

// applyCoin writes the coined amplitudes of in to out, block by block.
func (e *Engine) applyCoin(in, out []complex128) {
	n := e.g.NumVertices()
	for u := 0; u < n; u++ {
		lo, hi := e.offset[u], e.offset[u+1]
		if u == e.marked {
			// Oracle coin: -I on the marked vertex.
			for i := lo; i < hi; i++ {
				out[i] = -in[i]
			}
			continue
		}
		switch e.coin {
		case CoinHadamard:
			inv := complex(1/math.Sqrt2, 0)
			out[lo] = (in[lo] + in[lo+1]) * inv
			out[lo+1] = (in[lo] - in[lo+1]) * inv
		default: // CoinGrover
			var sum complex128
			for i := lo; i < hi; i++ {
				sum += in[i]
			}
			twiceMean := sum * complex(2/float64(hi-lo), 0)
			for i := lo; i < hi; i++ {
				out[i] = twiceMean - in[i]
			}
		}
	}
}

// Advance applies amount whole steps to s. Advance(s, 0) returns an
// unchanged copy; negative amounts fail with walk.ErrHorizonNonPositive
// and fractional ones with ErrFractionalStep.
// Complexity: O(amount · Σ deg).
func (e *Engine) Advance(s *walk.State, amount float64) (*walk.State, error) {
	if amount < 0 {
		return nil, fmt.Errorf("coined: advance by %g: %w", amount, walk.ErrHorizonNonPositive)
	}
	k := math.Round(amount)
	if math.Abs(amount-k) > stepEpsilon {
		return nil, fmt.Errorf("coined: advance by %g: %w", amount, ErrFractionalStep)
	}
	cur := s.Clone()
	for step := 0; step < int(k); step++ {
		next, err := e.Step(cur)
		if err != nil {
			return nil, err
		}
		cur = next
	}
	return cur, nil
}

// ProbabilityAt returns the probability of measuring the walker's position
// at vertex v: the squared magnitudes of v's outgoing arcs, summed. Summing
// |amplitude|² (rather than squaring a summed amplitude) traces out the
// coin register, so the per-vertex probabilities always total 1.
// Complexity: O(deg(v)).
func (e *Engine) ProbabilityAt(s *walk.State, v int) (float64, error) {
	if !e.g.HasVertex(v) {
		return 0, fmt.Errorf("coined: vertex %d: %w", v, walk.ErrVertexOutOfRange)
	}
	if s.Dim() != e.dim {
		return 0, fmt.Errorf("coined: state dim %d, engine dim %d: %w", s.Dim(), e.dim, ErrDimensionMismatch)
	}
	var p float64
	for i := e.offset[v]; i < e.offset[v+1]; i++ {
		abs := cmplx.Abs(s.Amps[i])
		p += abs * abs
	}
	return p, nil
}

// Distribution returns the full per-vertex probability distribution of s.
// Complexity: O(Σ deg).
func (e *Engine) Distribution(s *walk.State) ([]float64, error) {
	if s.Dim() != e.dim {
		return nil, fmt.Errorf("coined: state dim %d, engine dim %d: %w", s.Dim(), e.dim, ErrDimensionMismatch)
	}
	n := e.g.NumVertices()
	out := make([]float64, n)
	for v := 0; v < n; v++ {
		for i := e.offset[v]; i < e.offset[v+1]; i++ {
			abs := cmplx.Abs(s.Amps[i])
			out[v] += abs * abs
		}
	}
	return out, nil
}

// OperatorMatrix materializes the dense step operator U = S·C by applying
// one step to each basis vector. Intended for inspection and unitarity
// tests; stepping through Step/Advance never builds this matrix.
// Complexity: O(dim·Σ deg) time, O(dim²) memory.
func (e *Engine) OperatorMatrix() *mat.CDense {
	u := mat.NewCDense(e.dim, e.dim, nil)
	basis := walk.NewZeroState(e.dim)
	for j := 0; j < e.dim; j++ {
		basis.Amps[j] = 1
		col, _ := e.Step(basis) // basis state always matches engine dim
		for i := 0; i < e.dim; i++ {
			u.Set(i, j, col.Amps[i])
		}
		basis.Amps[j] = 0
	}
	return u
}
