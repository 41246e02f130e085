package graph

import (
	"fmt"
	"math"
	"math/bits"
	"strings"
)

// Family tags a graph family for registry-driven construction. The registry
// exists so benchmark sweeps and command-line front ends can select a family
// by name while construction stays a pure function of (family, n).
type Family string

// Registered families.
const (
	FamilyComplete  Family = "complete"
	FamilyCycle     Family = "cycle"
	FamilyStar      Family = "star"
	FamilyHypercube Family = "hypercube"
	FamilyGrid      Family = "grid"
)

// Families lists the registered family tags in stable order.
func Families() []Family {
	return []Family{FamilyComplete, FamilyCycle, FamilyStar, FamilyHypercube, FamilyGrid}
}

// ParseFamily normalizes s into a registered Family tag.
// Returns ErrUnknownFamily for anything else.
func ParseFamily(s string) (Family, error) {
	f := Family(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range Families() {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("ParseFamily(%q): %w", s, ErrUnknownFamily)
}

// Build constructs a graph of the given family with exactly n vertices.
//
// Size conventions per family:
//   - complete, cycle, star: n vertices directly.
//   - hypercube: n must be a power of two ≥ 2; the dimension is log₂(n).
//   - grid: rows is the largest divisor of n with rows ≤ √n (so the grid is
//     as square as n allows), cols = n/rows.
//
// Violations surface as ErrSizeUnsupported; family minima as
// ErrTooFewVertices; unregistered tags as ErrUnknownFamily.
func Build(f Family, n int) (*Graph, error) {
	switch f {
	case FamilyComplete:
		return Complete(n)
	case FamilyCycle:
		return Cycle(n)
	case FamilyStar:
		return Star(n)
	case FamilyHypercube:
		if n < 2 || n&(n-1) != 0 {
			return nil, fmt.Errorf("Build(%s, n=%d): vertex count must be a power of two ≥ 2: %w",
				f, n, ErrSizeUnsupported)
		}
		return Hypercube(bits.TrailingZeros(uint(n)))
	case FamilyGrid:
		if n < minGridCells {
			return nil, fmt.Errorf("Build(%s, n=%d): %w", f, n, ErrTooFewVertices)
		}
		rows := squarestDivisor(n)
		return Grid(rows, n/rows)
	default:
		return nil, fmt.Errorf("Build(%q): %w", f, ErrUnknownFamily)
	}
}

// squarestDivisor returns the largest divisor of n that does not exceed √n.
// For primes this is 1, degrading the grid to a path — still a valid
// lattice, just maximally elongated.
func squarestDivisor(n int) int {
	best := 1
	for d := 2; d <= int(math.Sqrt(float64(n))); d++ {
		if n%d == 0 {
			best = d
		}
	}
	return best
}
