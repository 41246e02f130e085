package main

import (
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// CLI state shared by subcommands, resolved in the root PersistentPreRunE.
var (
	cfgPath   string
	outputDir string
	verbose   bool

	cfg Config
	log zerolog.Logger
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "qwalk",
		Short:         "Quantum walk simulation and search benchmarking",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			level := zerolog.InfoLevel
			if verbose {
				level = zerolog.DebugLevel
			}
			log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
				Level(level).
				With().Timestamp().Logger()

			var err error
			cfg, err = loadConfig(cfgPath)
			if err != nil {
				return err
			}
			if outputDir != "" {
				cfg.OutputDir = outputDir
			}
			return os.MkdirAll(cfg.OutputDir, 0o755)
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&cfgPath, "config", "", "YAML config file (flags win over file values)")
	pf.StringVar(&outputDir, "output", "", "directory for charts and CSV exports")
	pf.BoolVarP(&verbose, "verbose", "v", false, "debug logging")

	root.AddCommand(newEvolveCmd(), newSearchCmd(), newBenchCmd())
	return root
}
