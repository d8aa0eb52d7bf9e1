package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool

	cfg    *Config
	logger *slog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "stacktc",
	Short: "Compute and inspect transitive closures of directed graphs",
	Long: `stacktc loads a directed graph, computes its transitive closure
using Nuutila's STACK_TC algorithm, and emits the result in one of
several formats, or cross-checks it against a reference Warshall
implementation.`,
	PersistentPreRunE: func(c *cobra.Command, args []string) error {
		loaded, err := loadConfig(cfgFile)
		if err != nil {
			return err
		}
		if verbose {
			loaded.Verbose = true
		}
		cfg = loaded
		logger = newLogger(cfg.Verbose)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default .stacktc.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}
