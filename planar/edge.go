package planar

// contribution records that one input shape's loop ran along an edge,
// either agreeing with the edge's canonical V0->V1 direction or opposing
// it. An edge carries one contribution per input loop that turned out to
// run along the same geometry once eliminateOverlap (G.2) has merged
// coincident edges; computeWindingMap (G.12) reads Forward to know which
// sign to apply to each shape's crossing differential.
type contribution struct {
	ShapeID int
	Loop    LoopID
	Forward bool
}

// edge is an undirected arc of the subdivision, carrying the segment
// geometry in its canonical (V0 -> V1) direction plus the one or more input
// loops that run along it. Edges are never removed from the arena;
// eliminated edges are tombstoned via Removed so HalfEdgeIDs and EdgeIDs
// issued earlier in the pipeline stay valid.
type edge struct {
	Seg      Segment
	V0, V1   VertexID
	Contribs []contribution
	Removed  bool
	Bridge   bool
}

// halfEdge is one of the two directed traversals of an edge. Half-edges are
// allocated in (forward, reverse) pairs so that the twin of half-edge h is
// h^1 (Graph.Twin).
type halfEdge struct {
	Edge    EdgeID
	Forward bool
	Next    HalfEdgeID
	Boundary BoundaryID
}

// addEdge allocates a new edge between existing vertices v0 and v1 carrying
// seg (oriented v0 -> v1) and a single initial contribution, along with its
// forward/reverse half-edge pair, and returns the forward half-edge id.
func (g *Graph) addEdge(seg Segment, v0, v1 VertexID, shapeID int, loop LoopID) HalfEdgeID {
	eid := EdgeID(len(g.edges))
	g.edges = append(g.edges, edge{
		Seg:      seg,
		V0:       v0,
		V1:       v1,
		Contribs: []contribution{{ShapeID: shapeID, Loop: loop, Forward: true}},
	})

	fwd := HalfEdgeID(len(g.halfEdges))
	g.halfEdges = append(g.halfEdges,
		halfEdge{Edge: eid, Forward: true, Next: NoHalfEdge, Boundary: NoBoundary},
		halfEdge{Edge: eid, Forward: false, Next: NoHalfEdge, Boundary: NoBoundary},
	)
	rev := fwd + 1

	g.addOut(v0, fwd)
	g.addOut(v1, rev)
	g.loops[loop].Edges = append(g.loops[loop].Edges, eid)
	return fwd
}

// Twin returns the other half-edge of he's edge.
func (g *Graph) Twin(he HalfEdgeID) HalfEdgeID {
	return he ^ 1
}

// Origin returns the vertex he departs from.
func (g *Graph) Origin(he HalfEdgeID) VertexID {
	h := g.halfEdges[he]
	e := g.edges[h.Edge]
	if h.Forward {
		return e.V0
	}
	return e.V1
}

// Dest returns the vertex he arrives at.
func (g *Graph) Dest(he HalfEdgeID) VertexID {
	return g.Origin(g.Twin(he))
}

// Segment returns the geometry of he, oriented in its direction of travel.
func (g *Graph) Segment(he HalfEdgeID) Segment {
	h := g.halfEdges[he]
	seg := g.edges[h.Edge].Seg
	if h.Forward {
		return seg
	}
	return seg.Reversed()
}

// removeEdge tombstones an edge and detaches both its half-edges from their
// origin vertices' Out lists.
func (g *Graph) removeEdge(eid EdgeID) {
	if g.edges[eid].Removed {
		return
	}
	g.edges[eid].Removed = true
	fwd := HalfEdgeID(2 * int(eid))
	rev := fwd + 1
	g.removeOut(g.Origin(fwd), fwd)
	g.removeOut(g.Origin(rev), rev)
}

// addEdgeWithContribs is addEdge generalized to an explicit contribution
// list, used when eliminateOverlap (G.2) merges two coincident edges into
// one, or when a split piece is re-added carrying its parent's contributions.
func (g *Graph) addEdgeWithContribs(seg Segment, v0, v1 VertexID, contribs []contribution) HalfEdgeID {
	eid := EdgeID(len(g.edges))
	g.edges = append(g.edges, edge{Seg: seg, V0: v0, V1: v1, Contribs: contribs})

	fwd := HalfEdgeID(len(g.halfEdges))
	g.halfEdges = append(g.halfEdges,
		halfEdge{Edge: eid, Forward: true, Next: NoHalfEdge, Boundary: NoBoundary},
		halfEdge{Edge: eid, Forward: false, Next: NoHalfEdge, Boundary: NoBoundary},
	)
	rev := fwd + 1
	g.addOut(v0, fwd)
	g.addOut(v1, rev)
	return fwd
}

// reversedContribs flips Forward on every contribution, used when an edge's
// piece is re-added in the opposite direction (e.g. an overlap's second
// edge ran V1->V0 relative to the first).
func reversedContribs(cs []contribution) []contribution {
	out := make([]contribution, len(cs))
	for i, c := range cs {
		out[i] = contribution{ShapeID: c.ShapeID, Loop: c.Loop, Forward: !c.Forward}
	}
	return out
}

// splitEdge tombstones eid and re-adds it as two edges at parameter t,
// introducing (or reusing, via findOrAddVertex) a vertex at the split
// point. It returns the midpoint vertex. Both new edges inherit eid's
// contributions and orientation.
func (g *Graph) splitEdge(eid EdgeID, t float64) VertexID {
	e := g.edges[eid]
	mid := g.findOrAddVertex(e.Seg.PositionAt(t))
	if mid == e.V0 || mid == e.V1 {
		return mid
	}
	lo, hi := e.Seg.Subdivided(t)
	g.removeEdge(eid)
	loFwd := g.addEdgeWithContribs(lo, e.V0, mid, e.Contribs)
	hiFwd := g.addEdgeWithContribs(hi, mid, e.V1, e.Contribs)
	g.spliceEdge(eid, []EdgeID{g.halfEdges[loFwd].Edge, g.halfEdges[hiFwd].Edge})
	return mid
}

// splitEdgeAtParams tombstones eid and re-adds it as len(ts)+1 consecutive
// edges, one per gap between 0, the sorted interior parameters in ts (each
// strictly between 0 and 1), and 1. Every piece inherits eid's Contribs.
// It returns the new edges in order from V0 to V1.
func (g *Graph) splitEdgeAtParams(eid EdgeID, ts []float64) []EdgeID {
	if len(ts) == 0 {
		return []EdgeID{eid}
	}
	e := g.edges[eid]
	bounds := append(append([]float64{0}, ts...), 1)

	verts := make([]VertexID, len(bounds))
	verts[0] = e.V0
	verts[len(verts)-1] = e.V1
	for i := 1; i < len(bounds)-1; i++ {
		verts[i] = g.findOrAddVertex(e.Seg.PositionAt(bounds[i]))
	}

	g.removeEdge(eid)
	out := make([]EdgeID, 0, len(bounds)-1)
	for i := 0; i < len(bounds)-1; i++ {
		piece := e.Seg.Subrange(bounds[i], bounds[i+1])
		fwd := g.addEdgeWithContribs(piece, verts[i], verts[i+1], e.Contribs)
		out = append(out, g.halfEdges[fwd].Edge)
	}
	g.spliceEdge(eid, out)
	return out
}

// liveHalfEdges returns every half-edge whose edge has not been removed.
func (g *Graph) liveHalfEdges() []HalfEdgeID {
	var out []HalfEdgeID
	for i, h := range g.halfEdges {
		if !g.edges[h.Edge].Removed {
			out = append(out, HalfEdgeID(i))
		}
	}
	return out
}
