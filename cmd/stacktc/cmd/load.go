package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gitrdm/stacktc/pkg/graphio"
	"github.com/gitrdm/stacktc/pkg/stacktc"
)

// loadDigraphFile loads a digraph from path, auto-detecting the format
// from its extension unless override is non-empty ("csv", "json", or
// "yaml"/"yml").
func loadDigraphFile(path, override string) (*stacktc.Digraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cmd: opening %s: %w", path, err)
	}
	defer f.Close()

	format := override
	if format == "" {
		format = strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	}

	switch format {
	case "csv":
		return graphio.LoadCSV(f)
	case "json":
		return graphio.LoadJSON(f)
	case "yaml", "yml":
		return graphio.LoadYAML(f)
	default:
		return nil, fmt.Errorf("cmd: cannot determine digraph format for %s (use --in-format)", path)
	}
}
