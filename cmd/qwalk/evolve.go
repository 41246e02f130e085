package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qwalk/continuous"
	"github.com/katalvlaran/qwalk/graph"
	"github.com/katalvlaran/qwalk/report"
	"github.com/katalvlaran/qwalk/walk"
)

// maxEvolveSeries caps how many per-vertex curves land on the evolution
// chart before it turns into noise.
const maxEvolveSeries = 8

func newEvolveCmd() *cobra.Command {
	var (
		family  string
		nodes   int
		start   int
		horizon float64
	)
	cmd := &cobra.Command{
		Use:   "evolve",
		Short: "Sweep a continuous-time walk from a localized start",
		RunE: func(_ *cobra.Command, _ []string) error {
			if !(horizon > 0) {
				return fmt.Errorf("evolve: time %g: %w", horizon, walk.ErrHorizonNonPositive)
			}
			fam, err := graph.ParseFamily(family)
			if err != nil {
				return err
			}
			g, err := graph.Build(fam, nodes)
			if err != nil {
				return err
			}
			gen, err := cfg.generator()
			if err != nil {
				return err
			}
			eng, err := continuous.New(g,
				continuous.WithGenerator(gen),
				continuous.WithGamma(cfg.Gamma),
				continuous.WithLocalStart(start),
			)
			if err != nil {
				return err
			}

			samples := cfg.Samples
			if samples <= 0 {
				samples = eng.Samples(horizon)
			}
			log.Info().Str("family", string(fam)).Int("nodes", nodes).
				Int("start", start).Float64("time", horizon).Int("samples", samples).
				Float64("gamma", eng.Gamma()).Msg("sweeping continuous walk")

			// One trajectory per charted vertex, all advanced on the same
			// time grid from the single evolving state.
			tracked := g.NumVertices()
			if tracked > maxEvolveSeries {
				tracked = maxEvolveSeries
			}
			series := make([]report.Series, tracked)
			for v := range series {
				series[v] = report.Series{
					Name:       fmt.Sprintf("vertex %d", v),
					Trajectory: make(walk.Trajectory, 0, samples+1),
				}
			}

			s := eng.InitialState()
			dt := horizon / float64(samples)
			for i := 0; i <= samples; i++ {
				if i > 0 {
					if s, err = eng.Advance(s, dt); err != nil {
						return err
					}
				}
				t := dt * float64(i)
				for v := range series {
					p, err := eng.ProbabilityAt(s, v)
					if err != nil {
						return err
					}
					series[v].Trajectory = append(series[v].Trajectory, walk.Point{X: t, Probability: p})
				}
			}

			evoPath := filepath.Join(cfg.OutputDir, "walk_evolution.png")
			if err := report.SaveTrajectoryChart(evoPath,
				fmt.Sprintf("Continuous-time walk on %s (N=%d)", fam, nodes),
				"Time", series...); err != nil {
				return err
			}
			log.Info().Str("chart", evoPath).Msg("wrote evolution chart")

			final, err := eng.Distribution(s)
			if err != nil {
				return err
			}
			distPath := filepath.Join(cfg.OutputDir, "walk_distribution.png")
			if err := report.SaveDistributionChart(distPath,
				fmt.Sprintf("Distribution at t=%.2f", horizon), final); err != nil {
				return err
			}
			log.Info().Str("chart", distPath).Msg("wrote distribution chart")
			return nil
		},
	}
	cmd.Flags().StringVar(&family, "family", string(graph.FamilyCycle), "graph family")
	cmd.Flags().IntVar(&nodes, "nodes", 16, "vertex count")
	cmd.Flags().IntVar(&start, "start", 0, "start vertex for the localized state")
	cmd.Flags().Float64Var(&horizon, "time", 10, "total evolution time")
	return cmd
}
