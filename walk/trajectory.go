package walk

// Point is one sample of a probability trajectory: X is the step count
// (discrete engines) or elapsed time (continuous engines), Probability is
// the marked-vertex probability observed there.
type Point struct {
	X           float64
	Probability float64
}

// Trajectory is an ordered sequence of trajectory samples, ascending in X.
// It is the shared output type of the quantum evaluator and the classical
// baseline, so the two plot directly against each other.
type Trajectory []Point

// Peak returns the sample with the highest probability, taking the first
// occurrence on ties. ok is false for an empty trajectory.
// Complexity: O(len).
func (tr Trajectory) Peak() (p Point, ok bool) {
	if len(tr) == 0 {
		return Point{}, false
	}
	p = tr[0]
	for _, q := range tr[1:] {
		if q.Probability > p.Probability {
			p = q
		}
	}
	return p, true
}

// FirstAbove returns the earliest sample whose probability is at least
// threshold, or ok=false if the trajectory never reaches it. Useful for
// hitting-style readings of absorbing classical baselines.
// Complexity: O(len).
func (tr Trajectory) FirstAbove(threshold float64) (Point, bool) {
	for _, q := range tr {
		if q.Probability >= threshold {
			return q, true
		}
	}
	return Point{}, false
}

// XValues returns the X coordinates of the trajectory, in order.
func (tr Trajectory) XValues() []float64 {
	out := make([]float64, len(tr))
	for i, q := range tr {
		out[i] = q.X
	}
	return out
}

// Probabilities returns the probability values of the trajectory, in order.
func (tr Trajectory) Probabilities() []float64 {
	out := make([]float64, len(tr))
	for i, q := range tr {
		out[i] = q.Probability
	}
	return out
}
