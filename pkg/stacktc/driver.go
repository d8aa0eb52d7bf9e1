package stacktc

import "sort"

// visit is the recursive form of Nuutila's STACK_TC driver. It
// assumes v is unvisited; the caller (Closure) checks that.
func (ctx *buildContext) visit(v int) int {
	base := len(ctx.sccStack)
	ctx.vertexStack = append(ctx.vertexStack, v)
	ctx.dfn[v] = ctx.dfnCounter
	dfnV := ctx.dfnCounter
	lowest := dfnV
	ctx.dfnCounter++

	selfLoop := false
	for _, c := range ctx.digraph.Children(v) {
		if c < 0 || c >= ctx.digraph.n {
			panic("stacktc: child id out of range")
		}
		childDfn := ctx.dfn[c]
		switch {
		case childDfn < 0:
			// Tree edge: recurse.
			if low := ctx.visit(c); low < lowest {
				lowest = low
			}
		case childDfn > dfnV:
			// Forward edge to an already-finished descendant: ignore.
		default:
			if sccID := ctx.store.vertexToSCC[c]; sccID >= 0 {
				// Intercomponent cross edge to an already-completed SCC.
				ctx.sccStack = append(ctx.sccStack, sccID)
			} else if childDfn < lowest {
				// Back edge or intracomponent cross edge.
				lowest = childDfn
			} else if c == v {
				selfLoop = true
			}
		}
	}

	if lowest == dfnV {
		ctx.completeSCC(v, base, selfLoop)
	}
	return lowest
}

// completeSCC forms the SCC rooted at v once the DFS determines v is a
// component root (lowest == dfn[v]).
func (ctx *buildContext) completeSCC(v, base int, selfLoop bool) {
	sccID := ctx.store.createSCC(v)

	selfInsert := selfLoop || ctx.vertexStack[len(ctx.vertexStack)-1] != v
	adjacent := ctx.sccStack[base:]

	var succ *IntervalSet
	if selfInsert || len(adjacent) > 0 {
		succ = newIntervalSet(ctx.arena)
	}

	if len(adjacent) > 0 {
		sort.Ints(adjacent)
		prev := -1
		for i := len(adjacent) - 1; i >= 0; i-- {
			id := adjacent[i]
			if id != prev {
				if !succ.Insert(id) {
					succ.UnionWith(ctx.store.sccs[id].Successors)
				}
				prev = id
			}
		}
	}
	ctx.sccStack = ctx.sccStack[:base]

	if selfInsert {
		succ.Insert(sccID)
	}
	if succ != nil {
		succ.Complete()
		ctx.store.sccs[sccID].Successors = succ
	}

	for {
		popped := ctx.vertexStack[len(ctx.vertexStack)-1]
		ctx.vertexStack = ctx.vertexStack[:len(ctx.vertexStack)-1]
		ctx.store.insertVertex(popped)
		if popped == v {
			break
		}
	}
	ctx.store.sccCompleted()
	ctx.sccStack = append(ctx.sccStack, sccID)
}
