// Package graphio loads stacktc.Digraph values from CSV, JSON, and
// YAML edge-list documents, and formats a *stacktc.TC back out in five
// output shapes: vertices-json, components-json, vertex-edges-csv,
// component-edges-csv, and intervals-json.
//
// Loaders return ordinary errors: malformed input is expected at this
// boundary, not a bug, unlike a contract violation inside pkg/stacktc
// itself (which panics).
package graphio
