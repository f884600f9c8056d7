package planar

import cag "pathkit.dev/cag"

// vertex is a fused point shared by every edge endpoint within
// VertexEpsilon of it. Out holds the half-edges whose origin is this vertex;
// orderVertexEdges (G.9) sorts it into counterclockwise tangent order, which
// extractFaces (G.10) then walks to build Next links.
type vertex struct {
	Point cag.Point
	Out   []HalfEdgeID
}

// Vertex returns the position of v.
func (g *Graph) Vertex(v VertexID) cag.Point {
	return g.vertices[v].Point
}

// newVertex always allocates a fresh vertex at pt. Ingestion (G.1) uses it
// to create a distinct vertex per join point, per spec.md §4.G.1; the
// splitting phases (G.2-G.4) go through findOrAddVertex instead, and the
// remaining epsilon-fusion of coincident vertices is done by
// collapseVertices (G.6) once the full topology for this pipeline pass is
// in place.
func (g *Graph) newVertex(pt cag.Point) VertexID {
	g.vertices = append(g.vertices, vertex{Point: pt})
	return VertexID(len(g.vertices) - 1)
}

// findOrAddVertex returns the id of an existing vertex within VertexEpsilon
// of pt, if one exists, or else allocates a fresh one there. Splitting
// phases (G.2-G.4) use this instead of newVertex so that two independent
// splits landing on the same point - the common case of an edge split at
// the same parameter from both sides of an intersection - share a single
// vertex immediately rather than leaving it to collapseVertices (G.6) to
// clean up later.
func (g *Graph) findOrAddVertex(pt cag.Point) VertexID {
	for i := range g.vertices {
		if g.vertices[i].Point.Distance(pt) <= VertexEpsilon {
			return VertexID(i)
		}
	}
	return g.newVertex(pt)
}

// addOut records he as departing from its origin vertex.
func (g *Graph) addOut(v VertexID, he HalfEdgeID) {
	g.vertices[v].Out = append(g.vertices[v].Out, he)
}

// removeOut drops he from its origin vertex's departure list, used when a
// half-edge is deleted (removeBridges, removeSingleEdgeVertices).
func (g *Graph) removeOut(v VertexID, he HalfEdgeID) {
	out := g.vertices[v].Out
	for i, h := range out {
		if h == he {
			g.vertices[v].Out = append(out[:i], out[i+1:]...)
			return
		}
	}
}

// Degree returns the number of half-edges departing v that are still live
// (their edge has not been soft-deleted).
func (g *Graph) Degree(v VertexID) int {
	n := 0
	for _, he := range g.vertices[v].Out {
		if !g.edges[g.halfEdges[he].Edge].Removed {
			n++
		}
	}
	return n
}
