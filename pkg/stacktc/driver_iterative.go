package stacktc

// frame is one level of the explicit DFS stack used by visitIterative,
// replacing a native call frame. Its fields mirror exactly the state a
// recursive call to visit would otherwise keep on the Go stack: the
// vertex, how far we've gotten through its children, the lowlink
// accumulated so far, whether a self-loop was seen, and the scc_stack
// base this frame's subtree should treat as adjacent-component
// territory.
type frame struct {
	v        int
	dfn      int
	lowest   int
	childIdx int
	selfLoop bool
	base     int
}

// visitIterative computes the same SCCs and successor sets as visit,
// using an explicitly-managed stack instead of native recursion so
// that graphs with n in the millions don't overflow the call stack.
func (ctx *buildContext) visitIterative(start int) {
	stack := make([]frame, 0, 64)
	push := func(v int) {
		base := len(ctx.sccStack)
		ctx.vertexStack = append(ctx.vertexStack, v)
		dfnV := ctx.dfnCounter
		ctx.dfn[v] = dfnV
		ctx.dfnCounter++
		stack = append(stack, frame{v: v, dfn: dfnV, lowest: dfnV, base: base})
	}
	push(start)

	for len(stack) > 0 {
		top := &stack[len(stack)-1]
		children := ctx.digraph.Children(top.v)
		pushedChild := false

		for top.childIdx < len(children) {
			c := children[top.childIdx]
			top.childIdx++
			if c < 0 || c >= ctx.digraph.n {
				panic("stacktc: child id out of range")
			}
			childDfn := ctx.dfn[c]
			switch {
			case childDfn < 0:
				push(c)
				pushedChild = true
			case childDfn > top.dfn:
				// Forward edge: ignore.
			default:
				if sccID := ctx.store.vertexToSCC[c]; sccID >= 0 {
					ctx.sccStack = append(ctx.sccStack, sccID)
				} else if childDfn < top.lowest {
					top.lowest = childDfn
				} else if c == top.v {
					top.selfLoop = true
				}
			}
			if pushedChild {
				break
			}
		}
		if pushedChild {
			continue
		}

		if top.lowest == top.dfn {
			ctx.completeSCC(top.v, top.base, top.selfLoop)
		}
		finishedLowest := top.lowest
		stack = stack[:len(stack)-1]
		if len(stack) > 0 {
			parent := &stack[len(stack)-1]
			if finishedLowest < parent.lowest {
				parent.lowest = finishedLowest
			}
		}
	}
}
