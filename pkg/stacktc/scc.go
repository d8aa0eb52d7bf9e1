package stacktc

// SCC is one strongly connected component of a closed Digraph. SCCs are
// allocated once, in the order they are completed by the driver
// (reverse-topological order of the condensation: if A has an edge to
// B in the condensation, B.SCCID < A.SCCID), and are immutable after
// completion.
type SCC struct {
	// SCCID is this SCC's dense index in [0, TC.SCCCount()).
	SCCID int

	// RootVertexID is the vertex at which this SCC was first
	// discovered — its lowlink root during the DFS.
	RootVertexID int

	// VertexList is the contiguous slice of sccStore.vertexTable holding
	// every vertex in this SCC, including the root. Ordering within
	// VertexList is the pop order from the DFS vertex stack:
	// later-discovered vertices first, root last.
	VertexList []int

	// Successors is the set of SCC ids reachable from this SCC via
	// one or more edges in the condensation, including this SCC's own
	// id when it contains an internal cycle. Nil only for single-
	// vertex SCCs with no self-loop and no outgoing edges.
	Successors *IntervalSet
}

// sccStore owns the growing table of SCC records plus the flat vertex
// table their VertexList slices point into. It is created fresh for
// each Closure call.
type sccStore struct {
	sccs         []SCC
	vertexTable  []int
	cursor       int // next free slot in vertexTable
	savedCursor  int // start of the SCC currently being built
	vertexToSCC  []int
}

func newSCCStore(n int) *sccStore {
	vertexToSCC := make([]int, n)
	for i := range vertexToSCC {
		vertexToSCC[i] = -1
	}
	return &sccStore{
		sccs:        make([]SCC, 0, n),
		vertexTable: make([]int, n),
		vertexToSCC: vertexToSCC,
	}
}

// createSCC reserves the next scc id and starts a new SCC rooted at
// rootID. Its VertexList begins empty at the current cursor position.
func (st *sccStore) createSCC(rootID int) int {
	id := len(st.sccs)
	st.sccs = append(st.sccs, SCC{
		SCCID:        id,
		RootVertexID: rootID,
		VertexList:   st.vertexTable[st.cursor:st.cursor],
	})
	return id
}

// insertVertex appends v to the vertex table at the cursor and records
// its owning SCC.
func (st *sccStore) insertVertex(v int) {
	st.vertexTable[st.cursor] = v
	st.cursor++
	st.vertexToSCC[v] = len(st.sccs) - 1
}

// sccCompleted freezes the current SCC's VertexList to the vertices
// inserted since the last completion.
func (st *sccStore) sccCompleted() {
	id := len(st.sccs) - 1
	st.sccs[id].VertexList = st.vertexTable[st.savedCursor:st.cursor]
	st.savedCursor = st.cursor
}
