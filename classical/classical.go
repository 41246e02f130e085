package classical

import (
	"errors"
	"fmt"
	"math/rand"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/qwalk/graph"
	"github.com/katalvlaran/qwalk/walk"
)

// ErrNilGraph is returned when a nil graph is supplied.
var ErrNilGraph = errors.New("classical: graph is nil")

// Monte Carlo defaults, matching the usual benchmarking setup.
const (
	// DefaultTrials is the number of Monte Carlo walks per estimate.
	DefaultTrials = 10000

	// DefaultSeed makes estimates reproducible by default.
	DefaultSeed = 42

	// stepCapFactor bounds a single trial at stepCapFactor·N² steps so a
	// pathological walk cannot hang the estimator.
	stepCapFactor = 10
)

// Option configures Run and HittingTime.
type Option func(*options)

// options tracks the start vertex separately from its presence so that an
// explicitly supplied vertex is always validated, whatever its value.
type options struct {
	start     int
	hasStart  bool
	absorbing bool
	trials    int
	seed      int64
}

func defaultOptions() options {
	return options{trials: DefaultTrials, seed: DefaultSeed}
}

// WithStart concentrates the initial distribution on vertex v instead of
// the default uniform distribution over all vertices.
func WithStart(v int) Option {
	return func(o *options) { o.start, o.hasStart = v, true }
}

// WithAbsorbing makes the marked vertex absorbing, so Run's curve reads as
// the cumulative probability of having found the mark by each step.
func WithAbsorbing() Option {
	return func(o *options) { o.absorbing = true }
}

// WithTrials sets the Monte Carlo trial count. Default: DefaultTrials.
func WithTrials(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.trials = n
		}
	}
}

// WithSeed sets the Monte Carlo seed. Default: DefaultSeed.
func WithSeed(seed int64) Option {
	return func(o *options) { o.seed = seed }
}

// Run propagates the classical random-walk distribution for horizon steps
// and returns the marked vertex's probability mass at steps 0..horizon.
//
// Validation mirrors the quantum evaluator: marked must be a vertex of g,
// horizon ≥ 1, and every vertex needs at least one neighbor.
// Complexity: O(horizon·N²) time, O(N²) memory.
func Run(g *graph.Graph, marked, horizon int, opts ...Option) (walk.Trajectory, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if !g.HasVertex(marked) {
		return nil, fmt.Errorf("classical: marked vertex %d: %w", marked, walk.ErrVertexOutOfRange)
	}
	if horizon < 1 {
		return nil, fmt.Errorf("classical: horizon %d: %w", horizon, walk.ErrHorizonNonPositive)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.hasStart && !g.HasVertex(o.start) {
		return nil, fmt.Errorf("classical: start vertex %d: %w", o.start, walk.ErrVertexOutOfRange)
	}

	p, err := g.TransitionMatrix()
	if err != nil {
		return nil, fmt.Errorf("classical: %w", err)
	}
	n := g.NumVertices()
	if o.absorbing {
		// Replace the marked row with a self-loop: mass that arrives stays.
		for v := 0; v < n; v++ {
			p.Set(marked, v, 0)
		}
		p.Set(marked, marked, 1)
	}

	dist := mat.NewVecDense(n, nil)
	if o.hasStart {
		dist.SetVec(o.start, 1)
	} else {
		for v := 0; v < n; v++ {
			dist.SetVec(v, 1/float64(n))
		}
	}

	tr := make(walk.Trajectory, 0, horizon+1)
	tr = append(tr, walk.Point{X: 0, Probability: dist.AtVec(marked)})

	next := mat.NewVecDense(n, nil)
	for step := 1; step <= horizon; step++ {
		// dist_{t+1} = Pᵀ·dist_t: mass flows along edges, 1/deg per neighbor.
		next.MulVec(p.T(), dist)
		dist, next = next, dist
		tr = append(tr, walk.Point{X: float64(step), Probability: dist.AtVec(marked)})
	}
	return tr, nil
}

// HittingTime estimates the mean number of steps a uniform random walk
// started at start needs to first reach target, by seeded Monte Carlo.
// Trials that exceed stepCapFactor·N² steps are truncated at the cap.
// Complexity: O(trials · hitting time) expected.
func HittingTime(g *graph.Graph, start, target int, opts ...Option) (float64, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	if !g.HasVertex(start) {
		return 0, fmt.Errorf("classical: start vertex %d: %w", start, walk.ErrVertexOutOfRange)
	}
	if !g.HasVertex(target) {
		return 0, fmt.Errorf("classical: target vertex %d: %w", target, walk.ErrVertexOutOfRange)
	}
	if g.MinDegree() == 0 {
		return 0, fmt.Errorf("classical: %w", graph.ErrIsolatedVertex)
	}
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	n := g.NumVertices()
	nbrs := make([][]int, n)
	for v := 0; v < n; v++ {
		nbrs[v] = g.Neighbors(v)
	}

	rng := rand.New(rand.NewSource(o.seed))
	maxSteps := stepCapFactor * n * n
	var total int
	for trial := 0; trial < o.trials; trial++ {
		cur, steps := start, 0
		for cur != target && steps < maxSteps {
			nb := nbrs[cur]
			cur = nb[rng.Intn(len(nb))]
			steps++
		}
		total += steps
	}
	return float64(total) / float64(o.trials), nil
}
