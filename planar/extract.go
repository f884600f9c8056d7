package planar

// extractFaces is G.10: assign each half-edge's Next pointer by the
// standard planar-subdivision rule - at he's destination vertex, Next(he)
// is the half-edge immediately clockwise from Twin(he) in the
// counterclockwise tangent order orderVertexEdges (G.9) built - and then
// walk the resulting cycles into Boundaries. Every live half-edge ends up
// on exactly one boundary; an outer (CCW, positive signed area) boundary is
// a face candidate; a hole (CW) boundary is nested under one by
// computeBoundaryGraph (G.11).
func extractFaces(g *Graph) error {
	for _, he := range g.liveHalfEdges() {
		dest := g.Dest(he)
		out := g.vertices[dest].Out
		n := len(out)
		if n == 0 {
			continue
		}
		twin := g.Twin(he)
		pos := indexOfHalfEdge(out, twin)
		if pos < 0 {
			continue
		}
		g.halfEdges[he].Next = out[(pos-1+n)%n]
	}

	visited := make([]bool, len(g.halfEdges))
	for _, he := range g.liveHalfEdges() {
		if visited[he] {
			continue
		}
		var cycle []HalfEdgeID
		cur := he
		for {
			if visited[cur] {
				break
			}
			visited[cur] = true
			cycle = append(cycle, cur)
			cur = g.halfEdges[cur].Next
			if cur == NoHalfEdge {
				break
			}
			if cur == he {
				break
			}
		}
		if len(cycle) > 0 {
			g.addBoundary(cycle)
		}
	}
	return nil
}

func indexOfHalfEdge(s []HalfEdgeID, v HalfEdgeID) int {
	for i, h := range s {
		if h == v {
			return i
		}
	}
	return -1
}
