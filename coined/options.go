package coined

// Coin selects the per-vertex coin operator.
type Coin uint8

const (
	// CoinGrover is the Grover diffusion coin (2/d)·J - I on each degree-d
	// direction subspace. Works for any degree; the default.
	CoinGrover Coin = iota

	// CoinHadamard is the 2×2 Hadamard coin. Valid only when every vertex
	// has degree exactly 2.
	CoinHadamard
)

// String implements fmt.Stringer for log and error output.
func (c Coin) String() string {
	switch c {
	case CoinGrover:
		return "grover"
	case CoinHadamard:
		return "hadamard"
	default:
		return "unknown"
	}
}

// unset marks an optional vertex parameter as absent.
const unset = -1

// Option configures an Engine before construction.
type Option func(*options)

// options tracks configured values separately from presence so that an
// explicitly supplied vertex is always validated, whatever its value.
type options struct {
	coin      Coin
	marked    int
	hasMarked bool
	start     int
	hasStart  bool
}

func defaultOptions() options {
	return options{coin: CoinGrover, marked: unset, start: unset}
}

// WithCoin selects the coin operator. Default: CoinGrover.
func WithCoin(c Coin) Option {
	return func(o *options) { o.coin = c }
}

// WithMarked designates v as the search target: its coin becomes -I while
// every other vertex keeps the configured coin. Default: no marked vertex.
func WithMarked(v int) Option {
	return func(o *options) { o.marked, o.hasMarked = v, true }
}

// WithLocalStart makes the initial state a uniform superposition over v's
// outgoing arcs instead of the default uniform superposition over all arcs.
func WithLocalStart(v int) Option {
	return func(o *options) { o.start, o.hasStart = v, true }
}
