package stacktc_test

import (
	"math/rand"
	"testing"

	"github.com/gitrdm/stacktc/pkg/stacktc"
	"github.com/gitrdm/stacktc/pkg/warshall"
)

func buildDigraph(n int, edges [][2]int) *stacktc.Digraph {
	g := stacktc.NewDigraph(n)
	for _, e := range edges {
		g.AddEdge(e[0], e[1])
	}
	return g
}

func successorsOf(tc *stacktc.TC, sccID int) []int {
	succ := tc.SCCSuccessors(sccID)
	if succ == nil {
		return nil
	}
	var out []int
	it := succ.Iter()
	for {
		v, ok := it.Next()
		if !ok {
			break
		}
		out = append(out, v)
	}
	return out
}

func containsInt(xs []int, v int) bool {
	for _, x := range xs {
		if x == v {
			return true
		}
	}
	return false
}

// TestClosureEmptyGraph covers the boundary case: n = 0.
func TestClosureEmptyGraph(t *testing.T) {
	g := stacktc.NewDigraph(0)
	tc := stacktc.Closure(g)
	if tc.VertexCount() != 0 {
		t.Errorf("VertexCount() = %d, want 0", tc.VertexCount())
	}
	if tc.SCCCount() != 0 {
		t.Errorf("SCCCount() = %d, want 0", tc.SCCCount())
	}
}

// TestClosureSingleVertexNoEdges covers the boundary case: n = 1, no edges.
func TestClosureSingleVertexNoEdges(t *testing.T) {
	g := stacktc.NewDigraph(1)
	tc := stacktc.Closure(g)
	if tc.SCCCount() != 1 {
		t.Fatalf("SCCCount() = %d, want 1", tc.SCCCount())
	}
	if succ := tc.SCCSuccessors(0); succ != nil {
		t.Errorf("SCCSuccessors(0) = %v, want nil", succ)
	}
}

// TestClosureSelfLoop covers the boundary case: n = 1, self-loop.
func TestClosureSelfLoop(t *testing.T) {
	g := buildDigraph(1, [][2]int{{0, 0}})
	tc := stacktc.Closure(g)
	if tc.SCCCount() != 1 {
		t.Fatalf("SCCCount() = %d, want 1", tc.SCCCount())
	}
	succ := tc.SCCSuccessors(0)
	if succ == nil || !succ.Find(0) {
		t.Errorf("SCCSuccessors(0) should contain 0")
	}
	if !tc.VerticesEdgeExist(0, 0) {
		t.Errorf("VerticesEdgeExist(0, 0) = false, want true")
	}
}

// TestClosureLinearChain covers the boundary case: a linear chain.
func TestClosureLinearChain(t *testing.T) {
	n := 5
	edges := make([][2]int, 0, n-1)
	for i := 0; i < n-1; i++ {
		edges = append(edges, [2]int{i, i + 1})
	}
	g := buildDigraph(n, edges)
	tc := stacktc.Closure(g)

	if tc.SCCCount() != n {
		t.Fatalf("SCCCount() = %d, want %d", tc.SCCCount(), n)
	}
	for i := 0; i < n; i++ {
		if len(tc.SCC(i).VertexList) != 1 {
			t.Errorf("SCC(%d) has %d vertices, want 1", i, len(tc.SCC(i).VertexList))
		}
	}
	// Vertex i's SCC id is n-1-i (reverse-topological): the last vertex
	// in the chain (no outgoing edges) is discovered last but completed
	// first, getting id 0.
	for i := 0; i < n; i++ {
		wantID := n - 1 - i
		if got := tc.VertexToSCC(i); got != wantID {
			t.Errorf("VertexToSCC(%d) = %d, want %d", i, got, wantID)
		}
	}
	for i := 0; i < n; i++ {
		sccID := tc.VertexToSCC(i)
		wantSucc := make([]int, 0, sccID)
		for s := 0; s < sccID; s++ {
			wantSucc = append(wantSucc, s)
		}
		got := successorsOf(tc, sccID)
		if len(got) != len(wantSucc) {
			t.Errorf("successors(SCC(%d)) = %v, want %v", sccID, got, wantSucc)
			continue
		}
		for _, w := range wantSucc {
			if !containsInt(got, w) {
				t.Errorf("successors(SCC(%d)) = %v missing %d", sccID, got, w)
			}
		}
	}
}

// TestClosureCompleteCycle covers the boundary case: a full cycle.
func TestClosureCompleteCycle(t *testing.T) {
	n := 6
	edges := make([][2]int, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, [2]int{i, (i + 1) % n})
	}
	g := buildDigraph(n, edges)
	tc := stacktc.Closure(g)

	if tc.SCCCount() != 1 {
		t.Fatalf("SCCCount() = %d, want 1", tc.SCCCount())
	}
	if len(tc.SCC(0).VertexList) != n {
		t.Errorf("SCC(0) has %d vertices, want %d", len(tc.SCC(0).VertexList), n)
	}
	succ := tc.SCCSuccessors(0)
	if succ == nil || succ.Size() != 1 || !succ.Find(0) {
		t.Errorf("successors(SCC(0)) should be exactly {0}")
	}
}

// TestClosureCompleteDigraph covers the boundary case: Kn.
func TestClosureCompleteDigraph(t *testing.T) {
	n := 5
	var edges [][2]int
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i != j {
				edges = append(edges, [2]int{i, j})
			}
		}
	}
	g := buildDigraph(n, edges)
	tc := stacktc.Closure(g)

	if tc.SCCCount() != 1 {
		t.Fatalf("SCCCount() = %d, want 1", tc.SCCCount())
	}
	succ := tc.SCCSuccessors(0)
	if succ == nil || succ.Size() != 1 || !succ.Find(0) {
		t.Errorf("successors(SCC(0)) should be exactly {0}")
	}
}

// TestClosureScenarioA: a cyclic component feeding into an acyclic one.
func TestClosureScenarioA(t *testing.T) {
	g := buildDigraph(4, [][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 3}})
	tc := stacktc.Closure(g)

	if tc.SCCCount() != 2 {
		t.Fatalf("SCCCount() = %d, want 2", tc.SCCCount())
	}
	sccY := tc.VertexToSCC(3) // {3} is acyclic, completes first.
	sccX := tc.VertexToSCC(0) // {0,1,2} is cyclic, completes second.
	if sccY != 0 || sccX != 1 {
		t.Fatalf("got SCC(3)=%d SCC(0)=%d, want 0 and 1", sccY, sccX)
	}
	for _, v := range []int{0, 1, 2} {
		if tc.VertexToSCC(v) != sccX {
			t.Errorf("vertex %d not in SCC X", v)
		}
	}
	if succ := tc.SCCSuccessors(sccY); succ != nil && succ.Size() != 0 {
		t.Errorf("successors(SCC Y) = %v, want empty", successorsOf(tc, sccY))
	}
	gotX := successorsOf(tc, sccX)
	if len(gotX) != 2 || !containsInt(gotX, sccY) || !containsInt(gotX, sccX) {
		t.Errorf("successors(SCC X) = %v, want {%d,%d}", gotX, sccY, sccX)
	}
	if !tc.VerticesEdgeExist(0, 3) {
		t.Errorf("VerticesEdgeExist(0,3) = false, want true")
	}
	if tc.VerticesEdgeExist(3, 0) {
		t.Errorf("VerticesEdgeExist(3,0) = true, want false")
	}
}

// TestClosureScenarioB: a diamond DAG, no cycles at all.
func TestClosureScenarioB(t *testing.T) {
	g := buildDigraph(4, [][2]int{{0, 1}, {0, 2}, {1, 3}, {2, 3}})
	tc := stacktc.Closure(g)

	if tc.SCCCount() != 4 {
		t.Fatalf("SCCCount() = %d, want 4", tc.SCCCount())
	}
	for i := 0; i < 4; i++ {
		if len(tc.SCC(i).VertexList) != 1 {
			t.Errorf("SCC(%d) is not a singleton", i)
		}
	}
	succ0 := successorsOf(tc, tc.VertexToSCC(0))
	for _, v := range []int{1, 2, 3} {
		if !containsInt(succ0, tc.VertexToSCC(v)) {
			t.Errorf("successors(SCC(0)) = %v missing SCC(%d)=%d", succ0, v, tc.VertexToSCC(v))
		}
	}
	if !tc.VerticesEdgeExist(0, 3) {
		t.Errorf("VerticesEdgeExist(0,3) = false, want true")
	}
}

// TestClosureScenarioC: two disjoint 2-cycles.
func TestClosureScenarioC(t *testing.T) {
	g := buildDigraph(4, [][2]int{{0, 1}, {1, 0}, {2, 3}, {3, 2}})
	tc := stacktc.Closure(g)

	if tc.SCCCount() != 2 {
		t.Fatalf("SCCCount() = %d, want 2", tc.SCCCount())
	}
	for i := 0; i < 2; i++ {
		if len(tc.SCC(i).VertexList) != 2 {
			t.Errorf("SCC(%d) has %d vertices, want 2", i, len(tc.SCC(i).VertexList))
		}
		succ := tc.SCCSuccessors(i)
		if succ == nil || succ.Size() != 1 || !succ.Find(i) {
			t.Errorf("successors(SCC(%d)) should be exactly {%d}", i, i)
		}
	}
	if tc.VerticesEdgeExist(0, 2) {
		t.Errorf("VerticesEdgeExist(0,2) = true, want false")
	}
}

// TestClosureScenarioD: a single vertex with a self-loop.
func TestClosureScenarioD(t *testing.T) {
	g := buildDigraph(1, [][2]int{{0, 0}})
	tc := stacktc.Closure(g)
	if tc.SCCCount() != 1 {
		t.Fatalf("SCCCount() = %d, want 1", tc.SCCCount())
	}
	succ := tc.SCCSuccessors(0)
	if succ == nil || succ.Size() != 1 || !succ.Find(0) {
		t.Errorf("successors(SCC(0)) should be exactly {0}")
	}
}

// TestClosureScenarioE: parallel edges must not produce duplicate
// intervals or spurious SCCs.
func TestClosureScenarioE(t *testing.T) {
	g := buildDigraph(3, [][2]int{{0, 1}, {0, 1}, {1, 2}})
	tc := stacktc.Closure(g)

	if tc.SCCCount() != 3 {
		t.Fatalf("SCCCount() = %d, want 3", tc.SCCCount())
	}
	for i := 0; i < 3; i++ {
		succ := tc.SCCSuccessors(i)
		if succ != nil && !succ.Check() {
			t.Errorf("SCCSuccessors(%d) fails Check()", i)
		}
	}
}

// TestClosureInvariantsRandom fuzzes small random digraphs and checks
// a battery of structural invariants, plus the Warshall round-trip.
func TestClosureInvariantsRandom(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(12) + 1
		m := rng.Intn(n * n)
		edges := make([][2]int, 0, m)
		for i := 0; i < m; i++ {
			edges = append(edges, [2]int{rng.Intn(n), rng.Intn(n)})
		}
		g := buildDigraph(n, edges)
		tc := stacktc.Closure(g)

		checkInvariants(t, g, tc, edges)

		ref := warshall.Closure(g)
		for u := 0; u < n; u++ {
			for v := 0; v < n; v++ {
				got := tc.VerticesEdgeExist(u, v)
				want := ref.Get(u, v)
				if got != want {
					t.Fatalf("trial %d: VerticesEdgeExist(%d,%d) = %v, want %v (edges=%v)", trial, u, v, got, want, edges)
				}
			}
		}
	}
}

func checkInvariants(t *testing.T, g *stacktc.Digraph, tc *stacktc.TC, edges [][2]int) {
	t.Helper()
	n := g.VertexCount()

	// Every vertex appears in exactly one SCC's VertexList.
	seen := make([]int, n)
	for s := 0; s < tc.SCCCount(); s++ {
		for _, v := range tc.SCC(s).VertexList {
			seen[v]++
		}
	}
	for v := 0; v < n; v++ {
		if seen[v] != 1 {
			t.Fatalf("vertex %d appears in %d SCCs, want 1", v, seen[v])
		}
	}

	// VertexToSCC agrees with VertexList membership.
	for s := 0; s < tc.SCCCount(); s++ {
		for _, v := range tc.SCC(s).VertexList {
			if tc.VertexToSCC(v) != s {
				t.Fatalf("VertexToSCC(%d) = %d, want %d", v, tc.VertexToSCC(v), s)
			}
		}
	}

	// RootVertexID is a member of its own SCC.
	for s := 0; s < tc.SCCCount(); s++ {
		scc := tc.SCC(s)
		found := false
		for _, v := range scc.VertexList {
			if v == scc.RootVertexID {
				found = true
			}
		}
		if !found {
			t.Fatalf("SCC(%d) root %d not in its own VertexList %v", s, scc.RootVertexID, scc.VertexList)
		}
	}

	// Condensation ordering and successor containment: every edge must
	// flow from a higher-numbered SCC to a lower-or-equal one, and cross-
	// component edges must show up in the source SCC's successor set.
	for _, e := range edges {
		u, v := e[0], e[1]
		su, sv := tc.VertexToSCC(u), tc.VertexToSCC(v)
		if sv > su {
			t.Fatalf("edge (%d,%d) has SCC(%d)=%d > SCC(%d)=%d", u, v, v, sv, u, su)
		}
		if su != sv {
			succ := tc.SCCSuccessors(su)
			if succ == nil || !succ.Find(sv) {
				t.Fatalf("successors(SCC(%d)) should contain SCC(%d) for edge (%d,%d)", su, sv, u, v)
			}
		}
	}

	// Every successor set passes its own structural check.
	for s := 0; s < tc.SCCCount(); s++ {
		if succ := tc.SCCSuccessors(s); succ != nil && !succ.Check() {
			t.Fatalf("SCCSuccessors(%d) fails Check()", s)
		}
	}

	// An SCC is in its own successor set iff it contains an internal cycle.
	for s := 0; s < tc.SCCCount(); s++ {
		scc := tc.SCC(s)
		hasCycle := len(scc.VertexList) > 1
		if !hasCycle {
			for _, c := range g.Children(scc.RootVertexID) {
				if c == scc.RootVertexID {
					hasCycle = true
				}
			}
		}
		succ := tc.SCCSuccessors(s)
		selfPresent := succ != nil && succ.Find(s)
		if selfPresent != hasCycle {
			t.Fatalf("SCC(%d) hasCycle=%v selfPresent=%v", s, hasCycle, selfPresent)
		}
	}
}

// TestClosureDeterminism runs Closure twice on the same input and
// checks the results agree on every query.
func TestClosureDeterminism(t *testing.T) {
	edges := [][2]int{{0, 1}, {1, 2}, {2, 0}, {1, 3}, {3, 4}, {4, 3}}
	g1 := buildDigraph(5, edges)
	g2 := buildDigraph(5, edges)

	tc1 := stacktc.Closure(g1)
	tc2 := stacktc.Closure(g2)

	if tc1.SCCCount() != tc2.SCCCount() {
		t.Fatalf("SCCCount() differs: %d vs %d", tc1.SCCCount(), tc2.SCCCount())
	}
	for v := 0; v < 5; v++ {
		if tc1.VertexToSCC(v) != tc2.VertexToSCC(v) {
			t.Fatalf("VertexToSCC(%d) differs between runs", v)
		}
	}
	for u := 0; u < 5; u++ {
		for v := 0; v < 5; v++ {
			if tc1.VerticesEdgeExist(u, v) != tc2.VerticesEdgeExist(u, v) {
				t.Fatalf("VerticesEdgeExist(%d,%d) differs between runs", u, v)
			}
		}
	}
}

// TestClosureLargeGraphUsesIterativeDriver exercises the iterative
// driver path (n above stacktc's recursion threshold) on a graph large
// enough to matter, checking it finds the single SCC holding all n
// vertices.
func TestClosureLargeGraphUsesIterativeDriver(t *testing.T) {
	n := 5000
	g := stacktc.NewDigraph(n)
	for i := 0; i < n-1; i++ {
		g.AddEdge(i, i+1)
	}
	g.AddEdge(n-1, 0) // one big cycle, stresses a single deep SCC.
	tc := stacktc.Closure(g)

	if tc.SCCCount() != 1 {
		t.Fatalf("SCCCount() = %d, want 1", tc.SCCCount())
	}
	if len(tc.SCC(0).VertexList) != n {
		t.Fatalf("SCC(0) has %d vertices, want %d", len(tc.SCC(0).VertexList), n)
	}
}
