package cmd

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/spf13/cobra"

	"github.com/gitrdm/stacktc/internal/batch"
	"github.com/gitrdm/stacktc/pkg/stacktc"
)

var (
	benchDir     string
	benchWorkers int
)

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run stacktc.Closure over every digraph file in a directory",
	RunE:  runBench,
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringVar(&benchDir, "in", "", "directory of digraph files (required)")
	benchCmd.Flags().IntVar(&benchWorkers, "workers", 0, "concurrent workers (default from config)")
	benchCmd.MarkFlagRequired("in")
}

func runBench(c *cobra.Command, args []string) error {
	entries, err := os.ReadDir(benchDir)
	if err != nil {
		return fmt.Errorf("cmd: reading %s: %w", benchDir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	var names []string
	var digraphs []*stacktc.Digraph
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		path := filepath.Join(benchDir, e.Name())
		g, err := loadDigraphFile(path, "")
		if err != nil {
			logger.Warn("skipping file", "file", path, "error", err)
			continue
		}
		names = append(names, e.Name())
		digraphs = append(digraphs, g)
	}

	workers := benchWorkers
	if workers == 0 {
		workers = cfg.Workers
	}

	start := time.Now()
	results, err := batch.Run(context.Background(), digraphs, batch.Options{Workers: workers})
	if err != nil {
		return fmt.Errorf("cmd: batch run: %w", err)
	}
	elapsed := time.Since(start)

	for i, r := range results {
		if r.Err != nil {
			fmt.Printf("%-30s ERROR: %v\n", names[i], r.Err)
			continue
		}
		fmt.Printf("%-30s vertices=%-8d sccs=%-8d\n", names[i], digraphs[i].VertexCount(), r.TC.SCCCount())
	}
	logger.Info("bench complete", "files", len(digraphs), "workers", workers, "duration", elapsed)
	return nil
}
