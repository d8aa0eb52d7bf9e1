package graphio

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/gitrdm/stacktc/pkg/stacktc"
)

// Format names one of the five closure output formats.
type Format string

const (
	FormatVerticesJSON   Format = "vertices-json"
	FormatComponentsJSON Format = "components-json"
	FormatVertexEdgesCSV Format = "vertex-edges-csv"
	FormatComponentEdges Format = "component-edges-csv"
	FormatIntervalsJSON  Format = "intervals-json"
)

// Dispatch writes tc to w in the named format.
func Dispatch(f Format, w io.Writer, tc *stacktc.TC) error {
	switch f {
	case FormatVerticesJSON:
		return WriteVerticesJSON(w, tc)
	case FormatComponentsJSON:
		return WriteComponentsJSON(w, tc)
	case FormatVertexEdgesCSV:
		return WriteVertexEdgesCSV(w, tc)
	case FormatComponentEdges:
		return WriteComponentEdgesCSV(w, tc)
	case FormatIntervalsJSON:
		return WriteIntervalsJSON(w, tc)
	default:
		return fmt.Errorf("graphio: unknown format %q", f)
	}
}

func successorVertices(tc *stacktc.TC, sccID int) []int {
	succSCCs := tc.SCCSuccessors(sccID)
	if succSCCs == nil {
		return nil
	}
	var out []int
	it := succSCCs.Iter()
	for {
		s, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, tc.SCC(s).VertexList...)
	}
	return out
}

// WriteVerticesJSON emits the vertices-json format: one object per
// vertex with its owning SCC id and vertex-level successor list.
func WriteVerticesJSON(w io.Writer, tc *stacktc.TC) error {
	enc := json.NewEncoder(w)
	type vertexRow struct {
		Vertex     int   `json:"vertex"`
		SCCID      int   `json:"scc_id"`
		Successors []int `json:"successors"`
	}
	rows := make([]vertexRow, 0, tc.VertexCount())
	for v := 0; v < tc.VertexCount(); v++ {
		scc := tc.VertexToSCC(v)
		rows = append(rows, vertexRow{
			Vertex:     v,
			SCCID:      scc,
			Successors: successorVertices(tc, scc),
		})
	}
	return enc.Encode(rows)
}

// WriteComponentsJSON emits the components-json format: one object
// per SCC, successors reported as the native [low, high] interval
// pairs rather than expanded vertex ids.
func WriteComponentsJSON(w io.Writer, tc *stacktc.TC) error {
	enc := json.NewEncoder(w)
	type componentRow struct {
		SCCID      int     `json:"scc_id"`
		Root       int     `json:"root"`
		Vertices   []int   `json:"vertices"`
		Successors [][2]int `json:"successors"`
	}
	rows := make([]componentRow, 0, tc.SCCCount())
	for id := 0; id < tc.SCCCount(); id++ {
		scc := tc.SCC(id)
		var succ [][2]int
		if ivs := tc.SCCSuccessors(id); ivs != nil {
			for _, iv := range ivs.Intervals() {
				succ = append(succ, [2]int{iv.Low, iv.High})
			}
		}
		rows = append(rows, componentRow{
			SCCID:      id,
			Root:       scc.RootVertexID,
			Vertices:   append([]int(nil), scc.VertexList...),
			Successors: succ,
		})
	}
	return enc.Encode(rows)
}

// WriteVertexEdgesCSV emits one row per (u, v) pair for which
// tc.VerticesEdgeExist(u, v) holds.
func WriteVertexEdgesCSV(w io.Writer, tc *stacktc.TC) error {
	cw := csv.NewWriter(w)
	n := tc.VertexCount()
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if !tc.VerticesEdgeExist(u, v) {
				continue
			}
			if err := cw.Write([]string{strconv.Itoa(u), strconv.Itoa(v)}); err != nil {
				return fmt.Errorf("graphio: writing vertex-edges-csv: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteComponentEdgesCSV emits one row per (a, b) pair, a != b, for
// which tc.SCCsEdgeExist(a, b) holds.
func WriteComponentEdgesCSV(w io.Writer, tc *stacktc.TC) error {
	cw := csv.NewWriter(w)
	n := tc.SCCCount()
	for a := 0; a < n; a++ {
		for b := 0; b < n; b++ {
			if a == b || !tc.SCCsEdgeExist(a, b) {
				continue
			}
			if err := cw.Write([]string{strconv.Itoa(a), strconv.Itoa(b)}); err != nil {
				return fmt.Errorf("graphio: writing component-edges-csv: %w", err)
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteIntervalsJSON emits the intervals-json format: one object per
// SCC, successors reported as the literal IntervalSet representation.
func WriteIntervalsJSON(w io.Writer, tc *stacktc.TC) error {
	enc := json.NewEncoder(w)
	type intervalPair struct {
		Low  int `json:"low"`
		High int `json:"high"`
	}
	type intervalRow struct {
		SCCID      int            `json:"scc_id"`
		Successors []intervalPair `json:"successors"`
	}
	rows := make([]intervalRow, 0, tc.SCCCount())
	for id := 0; id < tc.SCCCount(); id++ {
		var succ []intervalPair
		if ivs := tc.SCCSuccessors(id); ivs != nil {
			for _, iv := range ivs.Intervals() {
				succ = append(succ, intervalPair{Low: iv.Low, High: iv.High})
			}
		}
		rows = append(rows, intervalRow{SCCID: id, Successors: succ})
	}
	return enc.Encode(rows)
}
