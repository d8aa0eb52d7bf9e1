package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitrdm/stacktc/pkg/graphio"
	"github.com/gitrdm/stacktc/pkg/stacktc"
)

var (
	closureIn       string
	closureInFormat string
	closureOut      string
	closureFormat   string
)

var closureCmd = &cobra.Command{
	Use:   "closure",
	Short: "Compute the transitive closure of a digraph and print it",
	RunE:  runClosure,
}

func init() {
	rootCmd.AddCommand(closureCmd)
	closureCmd.Flags().StringVar(&closureIn, "in", "", "input digraph file (required)")
	closureCmd.Flags().StringVar(&closureInFormat, "in-format", "", "override input format: csv, json, yaml")
	closureCmd.Flags().StringVar(&closureOut, "out", "", "output file (default stdout)")
	closureCmd.Flags().StringVar(&closureFormat, "format", "", "output format (default from config)")
	closureCmd.MarkFlagRequired("in")
}

func runClosure(c *cobra.Command, args []string) error {
	format := closureFormat
	if format == "" {
		format = cfg.DefaultFormat
	}

	start := time.Now()
	g, err := loadDigraphFile(closureIn, closureInFormat)
	if err != nil {
		return err
	}
	logger.Info("loaded digraph", "file", closureIn, "vertices", g.VertexCount())

	tc := stacktc.Closure(g)
	logger.Info("computed closure", "sccs", tc.SCCCount(), "duration", time.Since(start))

	w := os.Stdout
	if closureOut != "" {
		f, err := os.Create(closureOut)
		if err != nil {
			return fmt.Errorf("cmd: creating %s: %w", closureOut, err)
		}
		defer f.Close()
		return graphio.Dispatch(graphio.Format(format), f, tc)
	}
	return graphio.Dispatch(graphio.Format(format), w, tc)
}
