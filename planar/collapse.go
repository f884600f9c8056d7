package planar

// collapseVertices is G.6: union-find over every vertex pair within
// VertexEpsilon and rewrite every edge endpoint to its representative. The
// continuous fusion findOrAddVertex performs during ingestion and
// splitting keeps this mostly a no-op in practice, but independently
// created vertices (for instance, two different intersection splits that
// land on the same point from different edge pairs without ever being
// compared to each other directly) can still end up as separate, nearly
// coincident vertices; this phase is the cleanup pass that guarantees no
// two live vertices remain within VertexEpsilon of one another.
func collapseVertices(g *Graph) error {
	n := len(g.vertices)
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}
		return x
	}
	union := func(a, b int) {
		ra, rb := find(a), find(b)
		if ra != rb {
			parent[rb] = ra
		}
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if g.vertices[i].Point.Distance(g.vertices[j].Point) <= VertexEpsilon {
				union(i, j)
			}
		}
	}

	changed := false
	for i := range g.edges {
		e := &g.edges[i]
		if e.Removed {
			continue
		}
		if r := VertexID(find(int(e.V0))); r != e.V0 {
			e.V0 = r
			changed = true
		}
		if r := VertexID(find(int(e.V1))); r != e.V1 {
			e.V1 = r
			changed = true
		}
		if e.V0 == e.V1 {
			// Collapsed to a point: both endpoints fused onto the same
			// representative vertex. Tombstone it rather than let a
			// zero-length self-loop reach orderVertexEdges/extractFaces.
			e.Removed = true
			changed = true
		}
	}
	if !changed {
		return nil
	}

	// Rebuild every vertex's Out list from the rewritten edges rather than
	// trying to patch it in place.
	for i := range g.vertices {
		g.vertices[i].Out = nil
	}
	for eid := range g.edges {
		e := g.edges[eid]
		if e.Removed {
			continue
		}
		fwd := HalfEdgeID(2 * eid)
		g.addOut(e.V0, fwd)
		g.addOut(e.V1, fwd+1)
	}
	return nil
}
