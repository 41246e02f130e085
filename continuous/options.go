package continuous

// Generator selects the Hermitian generator of the walk.
type Generator uint8

const (
	// Adjacency uses the graph adjacency matrix: H = -γ·A. The default,
	// matching the usual continuous-time walk convention.
	Adjacency Generator = iota

	// Laplacian uses the combinatorial Laplacian: H = +γ·L. Equivalent to
	// Adjacency up to a global phase on regular graphs.
	Laplacian
)

// String implements fmt.Stringer for log and error output.
func (g Generator) String() string {
	switch g {
	case Adjacency:
		return "adjacency"
	case Laplacian:
		return "laplacian"
	default:
		return "unknown"
	}
}

// Defaults, overridable per engine.
const (
	// DefaultOracleWeight scales the marked-vertex projector.
	DefaultOracleWeight = 1.0

	// DefaultSampleCount is the time-grid resolution suggested to the
	// evaluator when sampling a horizon.
	DefaultSampleCount = 200
)

// unset marks an optional vertex parameter as absent.
const unset = -1

// Option configures an Engine before construction.
type Option func(*options)

// options tracks configured values separately from presence so that an
// explicitly supplied vertex is always validated, whatever its value.
type options struct {
	gen       Generator
	gamma     float64 // 0 = default 1/N
	oracle    float64
	marked    int
	hasMarked bool
	start     int
	hasStart  bool
	samples   int
}

func defaultOptions() options {
	return options{
		gen:     Adjacency,
		gamma:   0,
		oracle:  DefaultOracleWeight,
		marked:  unset,
		start:   unset,
		samples: DefaultSampleCount,
	}
}

// WithGenerator selects adjacency or Laplacian form. Default: Adjacency.
func WithGenerator(g Generator) Option {
	return func(o *options) { o.gen = g }
}

// WithGamma sets the hopping rate γ. Default: 1/N, the rate that puts the
// complete-graph search Hamiltonian on resonance.
func WithGamma(gamma float64) Option {
	return func(o *options) { o.gamma = gamma }
}

// WithMarked designates v as the search target, adding the -c·|v⟩⟨v|
// oracle term to the Hamiltonian. Default: no marked vertex.
func WithMarked(v int) Option {
	return func(o *options) { o.marked, o.hasMarked = v, true }
}

// WithOracleWeight sets the oracle weight c. Only meaningful together with
// WithMarked. Default: DefaultOracleWeight.
func WithOracleWeight(c float64) Option {
	return func(o *options) { o.oracle = c }
}

// WithLocalStart makes the initial state the basis vector |v⟩ instead of
// the default uniform superposition over all vertices.
func WithLocalStart(v int) Option {
	return func(o *options) { o.start, o.hasStart = v, true }
}

// WithSampleCount sets the time-grid resolution the engine suggests to the
// evaluator. Default: DefaultSampleCount.
func WithSampleCount(n int) Option {
	return func(o *options) { o.samples = n }
}
