package planar

// removeSingleEdgeVertices is G.8: repeatedly strip any vertex left with
// degree 1 once bridges have been removed. A degree-1 vertex is the tip of
// a dangling edge that cannot be part of any face boundary; removing its
// one edge can expose a new degree-1 vertex further back along the same
// dangling chain, so this runs to a fixed point.
func removeSingleEdgeVertices(g *Graph) error {
	for {
		pruned := false
		for v := range g.vertices {
			if g.Degree(VertexID(v)) != 1 {
				continue
			}
			for _, he := range append([]HalfEdgeID(nil), g.vertices[v].Out...) {
				eid := g.halfEdges[he].Edge
				if !g.edges[eid].Removed {
					g.removeEdge(eid)
					pruned = true
				}
			}
		}
		if !pruned {
			return nil
		}
	}
}
