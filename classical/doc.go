// Package classical computes the classical random-walk comparison curves
// for the quantum search benchmark.
//
// What:
//
//   - Run propagates a probability distribution (not amplitudes) under the
//     uniform-over-neighbors transition matrix, recording the marked
//     vertex's mass after each step. With WithAbsorbing the marked vertex
//     becomes a sink, turning the curve into cumulative hitting
//     probability — the classical cost of finding the mark.
//   - HittingTime estimates the mean hitting time by seeded Monte Carlo,
//     the traditional sanity check against the exact propagation.
//
// Determinism:
//
//   - Run is exact linear algebra, fully deterministic.
//   - HittingTime is random but seeded; a fixed seed reproduces the
//     estimate bit for bit.
//
// The trajectory type is shared with the quantum evaluator (walk.Trajectory)
// so classical and quantum curves plot directly against each other.
package classical
