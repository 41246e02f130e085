package classical_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qwalk/classical"
	"github.com/katalvlaran/qwalk/graph"
	"github.com/katalvlaran/qwalk/walk"
)

//----------------------------------------------------------------------------//
// Run
//----------------------------------------------------------------------------//

func TestRunErrors(t *testing.T) {
	g, err := graph.Complete(4)
	require.NoError(t, err)

	_, err = classical.Run(nil, 0, 10)
	require.ErrorIs(t, err, classical.ErrNilGraph)
	_, err = classical.Run(g, 4, 10)
	require.ErrorIs(t, err, walk.ErrVertexOutOfRange)
	_, err = classical.Run(g, 0, 0)
	require.ErrorIs(t, err, walk.ErrHorizonNonPositive)
	_, err = classical.Run(g, 0, 10, classical.WithStart(-2))
	require.ErrorIs(t, err, walk.ErrVertexOutOfRange)
	_, err = classical.Run(g, 0, 10, classical.WithStart(-1))
	require.ErrorIs(t, err, walk.ErrVertexOutOfRange)
}

// TestStationaryOnRegularGraph verifies that the uniform distribution is a
// fixed point of the walk on a regular graph: the marked vertex holds 1/N
// at every step.
func TestStationaryOnRegularGraph(t *testing.T) {
	g, err := graph.Complete(8)
	require.NoError(t, err)
	tr, err := classical.Run(g, 3, 20)
	require.NoError(t, err)

	require.Len(t, tr, 21)
	for _, pt := range tr {
		require.InDelta(t, 1.0/8, pt.Probability, 1e-12, "step %g", pt.X)
	}
}

// TestAbsorbingCurveMonotone verifies the cumulative reading: with an
// absorbing mark the curve never decreases and eventually nears 1.
func TestAbsorbingCurveMonotone(t *testing.T) {
	g, err := graph.Cycle(6)
	require.NoError(t, err)
	tr, err := classical.Run(g, 0, 400, classical.WithAbsorbing())
	require.NoError(t, err)

	for i := 1; i < len(tr); i++ {
		require.GreaterOrEqual(t, tr[i].Probability, tr[i-1].Probability-1e-12, "step %d", i)
	}
	require.Greater(t, tr[len(tr)-1].Probability, 0.99, "long horizon absorbs almost everything")
}

// TestAbsorbingMedianOnComplete pins the half-mass crossing on K64. From a
// uniform start the survival probability decays by 62/63 per step, putting
// the median near 42 steps.
func TestAbsorbingMedianOnComplete(t *testing.T) {
	g, err := graph.Complete(64)
	require.NoError(t, err)
	tr, err := classical.Run(g, 0, 200, classical.WithAbsorbing())
	require.NoError(t, err)

	pt, ok := tr.FirstAbove(0.5)
	require.True(t, ok, "half mass must be absorbed within 200 steps")
	require.GreaterOrEqual(t, pt.X, 30.0)
	require.LessOrEqual(t, pt.X, 70.0)
}

// TestLocalStartMassConservation checks a concentrated start on the star
// hub: after one step the mass is on the leaves, after two it is back.
func TestLocalStartMassConservation(t *testing.T) {
	g, err := graph.Star(5)
	require.NoError(t, err)
	tr, err := classical.Run(g, 0, 4, classical.WithStart(0))
	require.NoError(t, err)

	require.InDelta(t, 1, tr[0].Probability, 1e-12)
	require.InDelta(t, 0, tr[1].Probability, 1e-12)
	require.InDelta(t, 1, tr[2].Probability, 1e-12)
}

//----------------------------------------------------------------------------//
// HittingTime
//----------------------------------------------------------------------------//

func TestHittingTimeErrors(t *testing.T) {
	g, err := graph.Complete(3)
	require.NoError(t, err)

	_, err = classical.HittingTime(nil, 0, 1)
	require.ErrorIs(t, err, classical.ErrNilGraph)
	_, err = classical.HittingTime(g, 3, 1)
	require.ErrorIs(t, err, walk.ErrVertexOutOfRange)
	_, err = classical.HittingTime(g, 0, -1)
	require.ErrorIs(t, err, walk.ErrVertexOutOfRange)
}

// TestHittingTimeTwoVertices: on K2 every step crosses the single edge, so
// the hitting time is exactly 1 in every trial.
func TestHittingTimeTwoVertices(t *testing.T) {
	g, err := graph.Complete(2)
	require.NoError(t, err)
	h, err := classical.HittingTime(g, 0, 1, classical.WithTrials(100))
	require.NoError(t, err)
	require.Equal(t, 1.0, h)
}

// TestHittingTimeCycleAdjacent checks the classic d·(N-d) formula: adjacent
// vertices on C4 have expected hitting time 1·3 = 3.
func TestHittingTimeCycleAdjacent(t *testing.T) {
	g, err := graph.Cycle(4)
	require.NoError(t, err)
	h, err := classical.HittingTime(g, 0, 1)
	require.NoError(t, err)
	require.InDelta(t, 3.0, h, 0.3, "10000 seeded trials keep the estimate tight")
}

// TestHittingTimeSeededDeterminism verifies bit-identical replays under the
// same seed and a changed estimate under a different one.
func TestHittingTimeSeededDeterminism(t *testing.T) {
	g, err := graph.Cycle(8)
	require.NoError(t, err)

	a, err := classical.HittingTime(g, 0, 4, classical.WithTrials(500))
	require.NoError(t, err)
	b, err := classical.HittingTime(g, 0, 4, classical.WithTrials(500))
	require.NoError(t, err)
	require.Equal(t, a, b)

	c, err := classical.HittingTime(g, 0, 4, classical.WithTrials(500), classical.WithSeed(7))
	require.NoError(t, err)
	require.NotEqual(t, a, c)
}

// TestHittingTimeSelf: target equals start, zero steps needed.
func TestHittingTimeSelf(t *testing.T) {
	g, err := graph.Complete(3)
	require.NoError(t, err)
	h, err := classical.HittingTime(g, 2, 2, classical.WithTrials(10))
	require.NoError(t, err)
	require.Zero(t, h)
}
