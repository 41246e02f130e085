// Package search evaluates marked-vertex search: it drives any walk.Walker
// for a horizon, records the marked vertex's probability after every
// sample, and reports where that probability peaks.
//
// What:
//
//   - Run: one (walker, marked vertex, horizon) evaluation producing a
//     walk.Trajectory and its peak (first occurrence on ties). The same
//     code path serves the coined engine (horizon = whole steps, one
//     sample per step) and the continuous engine (horizon = real time,
//     fixed-resolution grid), because both hide behind walk.Walker.
//   - Benchmark: sweeps one graph family over a list of sizes, running the
//     quantum search and the absorbing classical baseline per size, and
//     emits Summary rows (peak time/steps, peak probability, classical
//     steps to 50% hitting probability, speedup ratio) for reporting.
//
// Invariants checked while running:
//
//   - Probability mass stays within tolerance of 1 after every advance
//     (walk.ErrUnitarityLost otherwise); evolution is unitary, so drift is
//     numerical instability, never physics.
//
// Errors:
//
//   - ErrNilWalker, ErrNoSizes, and the shared walk.ErrVertexOutOfRange /
//     walk.ErrHorizonNonPositive.
package search
