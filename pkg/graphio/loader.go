package graphio

import (
	"bufio"
	"bytes"
	_ "embed"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v6"
	"gopkg.in/yaml.v3"

	"github.com/gitrdm/stacktc/pkg/stacktc"
)

// ErrVertexOutOfRange is returned when a loaded edge references a
// vertex id outside [0, vertex_count). It is a loader-level contract
// boundary error, not a core stacktc contract violation.
var ErrVertexOutOfRange = errors.New("graphio: vertex id out of range")

//go:embed schema.json
var digraphSchemaJSON []byte

var digraphSchema *jsonschema.Schema

func init() {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(digraphSchemaJSON))
	if err != nil {
		panic(err)
	}
	c := jsonschema.NewCompiler()
	if err := c.AddResource("digraph.json", doc); err != nil {
		panic(err)
	}
	digraphSchema = c.MustCompile("digraph.json")
}

// digraphDoc is the shared wire shape of the JSON and YAML digraph
// documents.
type digraphDoc struct {
	VertexCount int     `json:"vertex_count" yaml:"vertex_count"`
	Edges       [][]int `json:"edges" yaml:"edges"`
}

func (doc digraphDoc) build() (*stacktc.Digraph, error) {
	g := stacktc.NewDigraph(doc.VertexCount)
	for _, e := range doc.Edges {
		if len(e) != 2 {
			return nil, fmt.Errorf("graphio: edge %v does not have exactly two endpoints", e)
		}
		from, to := e[0], e[1]
		if from < 0 || from >= doc.VertexCount || to < 0 || to >= doc.VertexCount {
			return nil, fmt.Errorf("%w: edge (%d, %d), vertex_count %d", ErrVertexOutOfRange, from, to, doc.VertexCount)
		}
		g.AddEdge(from, to)
	}
	return g, nil
}

// LoadCSV parses a streaming CSV edge list: one edge per line,
// "from,to" using 0-based vertex ids. An optional "from,to" header
// line is detected and skipped; blank lines and lines beginning with
// "#" are ignored. The vertex count is inferred as one greater than
// the largest vertex id seen.
func LoadCSV(r io.Reader) (*stacktc.Digraph, error) {
	type edge struct{ from, to int }
	var edges []edge
	maxVertex := -1

	scanner := bufio.NewScanner(r)
	first := true
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if first {
			first = false
			if strings.EqualFold(line, "from,to") {
				continue
			}
		}

		rec, err := csv.NewReader(strings.NewReader(line)).Read()
		if err != nil {
			return nil, fmt.Errorf("graphio: parsing CSV line %q: %w", line, err)
		}
		if len(rec) != 2 {
			return nil, fmt.Errorf("graphio: CSV line %q does not have exactly two fields", line)
		}
		from, err := strconv.Atoi(strings.TrimSpace(rec[0]))
		if err != nil {
			return nil, fmt.Errorf("graphio: CSV line %q: %w", line, err)
		}
		to, err := strconv.Atoi(strings.TrimSpace(rec[1]))
		if err != nil {
			return nil, fmt.Errorf("graphio: CSV line %q: %w", line, err)
		}
		if from < 0 || to < 0 {
			return nil, fmt.Errorf("%w: negative vertex id in %q", ErrVertexOutOfRange, line)
		}
		if from > maxVertex {
			maxVertex = from
		}
		if to > maxVertex {
			maxVertex = to
		}
		edges = append(edges, edge{from, to})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("graphio: reading CSV: %w", err)
	}

	g := stacktc.NewDigraph(maxVertex + 1)
	for _, e := range edges {
		g.AddEdge(e.from, e.to)
	}
	return g, nil
}

// LoadJSON decodes a JSON digraph document, validating it against the
// embedded digraph.json schema before unmarshalling into a Digraph.
func LoadJSON(r io.Reader) (*stacktc.Digraph, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("graphio: reading JSON: %w", err)
	}

	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("graphio: parsing JSON: %w", err)
	}
	if err := digraphSchema.Validate(inst); err != nil {
		return nil, fmt.Errorf("graphio: JSON failed schema validation: %w", err)
	}

	var doc digraphDoc
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("graphio: decoding JSON digraph: %w", err)
	}
	return doc.build()
}

// LoadYAML decodes a YAML digraph document with the same shape as
// LoadJSON's input, for hand-written fixtures and CLI graph specs.
func LoadYAML(r io.Reader) (*stacktc.Digraph, error) {
	var doc digraphDoc
	dec := yaml.NewDecoder(r)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("graphio: decoding YAML digraph: %w", err)
	}
	return doc.build()
}
