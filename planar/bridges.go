package planar

// removeBridges is G.7: find every bridge edge (an edge whose removal would
// disconnect the graph) via Tarjan low-link DFS over the undirected
// multigraph of live edges, and tombstone them. A bridge bounds no area on
// either side - both its half-edges would trace the same face when walked -
// so it can only be a spurious connector, not part of any real boundary
// (the typical cause: two shapes that only touch at a single point or
// along a dangling stub). The DFS marks edges, not vertex pairs, as
// visited/tree so parallel edges between the same two vertices are never
// mistaken for a trivial back-edge to the parent.
func removeBridges(g *Graph) error {
	n := len(g.vertices)
	disc := make([]int, n)
	low := make([]int, n)
	visited := make([]bool, n)
	for i := range disc {
		disc[i] = -1
	}
	timer := 0

	type frame struct {
		v         int
		parentEdge EdgeID
		outIdx    int
	}

	var bridges []EdgeID

	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		stack := []frame{{v: start, parentEdge: -1, outIdx: 0}}
		visited[start] = true
		disc[start] = timer
		low[start] = timer
		timer++

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			out := g.vertices[top.v].Out
			advanced := false
			for top.outIdx < len(out) {
				he := out[top.outIdx]
				top.outIdx++
				eid := g.halfEdges[he].Edge
				if g.edges[eid].Removed || eid == top.parentEdge {
					continue
				}
				w := int(g.Dest(he))
				if !visited[w] {
					visited[w] = true
					disc[w] = timer
					low[w] = timer
					timer++
					stack = append(stack, frame{v: w, parentEdge: eid, outIdx: 0})
					advanced = true
					break
				}
				if disc[w] < low[top.v] {
					low[top.v] = disc[w]
				}
			}
			if advanced {
				continue
			}

			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				continue
			}
			parent := &stack[len(stack)-1]
			if low[top.v] < low[parent.v] {
				low[parent.v] = low[top.v]
			}
			if low[top.v] > disc[parent.v] {
				bridges = append(bridges, top.parentEdge)
			}
		}
	}

	for _, eid := range bridges {
		g.edges[eid].Bridge = true
		g.removeEdge(eid)
	}
	return nil
}
