package planar

import cag "pathkit.dev/cag"

// Graph is the planar subdivision built incrementally from one or more input
// Shapes. It owns every vertex, edge, half-edge, loop, boundary, and face as
// parallel arenas indexed by the id types in ids.go, following the
// arena-plus-integer-id style spec.md's design notes recommend over a
// pointer-linked graph: ids stay valid across tombstoning, and the whole
// graph is disposed in one step when dropped.
type Graph struct {
	vertices   []vertex
	edges      []edge
	halfEdges  []halfEdge
	loops      []loop
	boundaries []boundary
	faces      []face

	nextShapeID int
}

// NewGraph returns an empty planar subdivision.
func NewGraph() *Graph {
	return &Graph{}
}

// AddShape ingests shape's subpaths as a new shape id. Per spec.md §4.G.1 a
// distinct vertex is created at every segment join; the only fusion applied
// here is the same-subpath snap joinPoint performs for two segments whose
// endpoints were meant to meet but drifted by less than VertexEpsilon.
// Fusing vertices across different subpaths or shapes is collapseVertices'
// job (G.6), not ingestion's. AddShape returns the id assigned to this
// shape, used later to read its winding number out of a face, or
// ErrInvalidGeometry if any segment has a non-finite coordinate.
func (g *Graph) AddShape(shape Shape) (int, error) {
	shapeID := g.nextShapeID
	g.nextShapeID++

	for si, sub := range shape.Subpaths {
		segs := sub.allSegments()
		if len(segs) == 0 {
			continue
		}
		for _, seg := range segs {
			if !finite(seg.Start()) || !finite(seg.End()) {
				return 0, wrapf(ErrInvalidGeometry, "shape %d subpath %d has a non-finite endpoint", shapeID, si)
			}
		}

		loopID := g.addLoop(shapeID, true)
		n := len(segs)
		verts := make([]VertexID, n)
		for i := range segs {
			verts[i] = g.newVertex(joinPoint(segs, i))
		}
		for i, seg := range segs {
			g.addEdge(seg, verts[i], verts[(i+1)%n], shapeID, loopID)
		}
	}

	return shapeID, nil
}

// joinPoint is the vertex position where segs[i-1]'s end meets segs[i]'s
// start (indices wrap around the closed subpath segs forms): the shared
// point itself if the two already coincide exactly, their midpoint if they
// are merely within VertexEpsilon of one another, or segs[i]'s own start
// otherwise.
func joinPoint(segs []Segment, i int) cag.Point {
	n := len(segs)
	prevEnd := segs[(i-1+n)%n].End()
	curStart := segs[i].Start()
	if prevEnd == curStart {
		return curStart
	}
	if prevEnd.Distance(curStart) <= VertexEpsilon {
		return prevEnd.Lerp(curStart, 0.5)
	}
	return curStart
}

// NumVertices, NumEdges, and NumFaces report the current size of the
// subdivision, chiefly useful for tests checking Euler's formula.
func (g *Graph) NumVertices() int { return len(g.vertices) }
func (g *Graph) NumEdges() int {
	n := 0
	for _, e := range g.edges {
		if !e.Removed {
			n++
		}
	}
	return n
}
func (g *Graph) NumFaces() int { return len(g.faces) }

// Bounds returns the bounding box of every live edge in the graph.
func (g *Graph) Bounds() cag.Rect {
	var r cag.Rect
	first := true
	for _, e := range g.edges {
		if e.Removed {
			continue
		}
		b := e.Seg.Bounds()
		if first {
			r = b
			first = false
		} else {
			r = r.Union(b)
		}
	}
	return r
}
