package stacktc

// buildContext bundles all of the driver's working state for a single
// Closure call: DFS numbering, the two Tarjan-style stacks, the arena
// backing in-progress successor sets, and the SCC store being filled
// in. Nothing here is shared across calls or stored as a package-level
// global. Bundling it this way is what makes two unrelated Closure
// calls safe to run concurrently (internal/batch relies on this).
type buildContext struct {
	digraph *Digraph

	dfn        []int
	dfnCounter int

	vertexStack []int
	sccStack    []int

	arena *arena
	store *sccStore
}

func newBuildContext(d *Digraph) *buildContext {
	n := d.VertexCount()
	dfn := make([]int, n)
	for i := range dfn {
		dfn[i] = -1
	}
	return &buildContext{
		digraph:     d,
		dfn:         dfn,
		vertexStack: make([]int, 0, n),
		sccStack:    make([]int, 0, n),
		arena:       newArena(n),
		store:       newSCCStore(n),
	}
}

// Closure runs Nuutila's STACK_TC algorithm on d and returns the
// resulting transitive closure. The computation runs to completion
// synchronously within this call; d is read-only throughout and the
// returned TC is immutable.
//
// Closure panics on a malformed Digraph (a child id outside [0, n)) or
// on an internal invariant violation — both are contract violations,
// not recoverable errors. Callers accepting untrusted graphs should
// validate with a pkg/graphio loader first, or recover at the
// orchestration boundary (see internal/batch).
func Closure(d *Digraph) *TC {
	ctx := newBuildContext(d)
	n := d.VertexCount()
	threshold := recursionThreshold
	for v := 0; v < n; v++ {
		if ctx.dfn[v] >= 0 {
			continue
		}
		if n > threshold {
			ctx.visitIterative(v)
		} else {
			ctx.visit(v)
		}
	}
	return &TC{
		n:           n,
		sccs:        ctx.store.sccs,
		vertexToSCC: ctx.store.vertexToSCC,
	}
}

// recursionThreshold is the vertex count above which Closure switches
// from the recursive driver to the explicitly-stacked iterative one, to
// avoid exhausting the native call stack on very large graphs.
const recursionThreshold = 4096
