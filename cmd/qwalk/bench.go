package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/qwalk/graph"
	"github.com/katalvlaran/qwalk/report"
	"github.com/katalvlaran/qwalk/search"
)

func newBenchCmd() *cobra.Command {
	var (
		family string
		sizes  []int
		marked int
		engine string
	)
	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Benchmark quantum vs classical search across graph sizes",
		RunE: func(cmd *cobra.Command, _ []string) error {
			fam, err := graph.ParseFamily(family)
			if err != nil {
				return err
			}
			kind := search.EngineContinuous
			if engine == search.EngineCoined.String() {
				kind = search.EngineCoined
			} else if engine != search.EngineContinuous.String() {
				return fmt.Errorf("unknown engine %q (want continuous or coined)", engine)
			}

			log.Info().Str("family", string(fam)).Ints("sizes", sizes).
				Stringer("engine", kind).Msg("benchmarking")
			rows, err := search.Benchmark(search.BenchConfig{
				Family: fam,
				Sizes:  sizes,
				Marked: marked,
				Engine: kind,
			})
			if err != nil {
				return err
			}

			fmt.Fprintln(cmd.OutOrStdout(), report.RenderSummaryTable(rows))

			csvPath := filepath.Join(cfg.OutputDir, "benchmark.csv")
			f, err := os.Create(csvPath)
			if err != nil {
				return err
			}
			defer f.Close()
			if err := report.WriteSummaryCSV(f, rows); err != nil {
				return err
			}
			log.Info().Str("csv", csvPath).Msg("wrote benchmark CSV")

			chartPath := filepath.Join(cfg.OutputDir, "scaling_comparison.png")
			if err := report.SaveScalingChart(chartPath, rows); err != nil {
				return err
			}
			log.Info().Str("chart", chartPath).Msg("wrote scaling chart")
			return nil
		},
	}
	cmd.Flags().StringVar(&family, "family", string(graph.FamilyComplete), "graph family")
	cmd.Flags().IntSliceVar(&sizes, "sizes", []int{8, 16, 32, 64}, "vertex counts to sweep")
	cmd.Flags().IntVar(&marked, "marked", 0, "marked vertex")
	cmd.Flags().StringVar(&engine, "engine", search.EngineContinuous.String(), "continuous or coined")
	return cmd
}
