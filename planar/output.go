package planar

import (
	"math"

	cag "pathkit.dev/cag"
)

// collinear reports whether line a followed immediately by line b runs in
// a single direction within CollinearTangentEpsilon.
func collinear(a, b cag.Line) bool {
	d0, _ := a.Tangents()
	d1, _ := b.Tangents()
	n0, n1 := d0.Hypot(), d1.Hypot()
	if n0 < 1e-12 || n1 < 1e-12 {
		return false
	}
	cross := (d0.X*d1.Y - d0.Y*d1.X) / (n0 * n1)
	dot := d0.X*d1.X + d0.Y*d1.Y
	return math.Abs(cross) < CollinearTangentEpsilon && dot > 0
}

func cagLineJoin(a, b cag.Line) cag.Line {
	return cag.Line{P0: a.P0, P1: b.P1}
}

// facesToShape is G.15: retrace the kept half-edges (createFilledSubGraph's
// output) into closed loops and emit each as a Subpath. It reruns the same
// CCW-tangent-order next-pointer rule extractFaces (G.10) used for the full
// subdivision, restricted to the kept subset at each vertex, so the merged
// outline of several adjacent included faces comes out as a single clean
// loop rather than retracing each face's original boundary piecewise.
//
// Every kept edge contributes two half-edges to that retrace - one on the
// filled side, one the twin on the excluded side - since the twin has to be
// present for the next-pointer rule to find its place in the ordering. Only
// the filled-side one is an actual boundary of the result, though, so a
// trace only starts (and only gets emitted) from a half-edge whose own
// Boundary is included; starting from its twin as well would retrace the
// exact same loop in reverse as a spurious second subpath.
func facesToShape(g *Graph, keep map[HalfEdgeID]bool, included func(BoundaryID) bool) Shape {
	next := make(map[HalfEdgeID]HalfEdgeID, len(keep))

	// Next(he) is found at he's destination vertex: among that vertex's
	// kept half-edges (already in CCW order from orderVertexEdges),
	// Next(he) is the one immediately clockwise from Twin(he).
	for he := range keep {
		dest := g.Dest(he)
		var kept []HalfEdgeID
		for _, cand := range g.vertices[dest].Out {
			if keep[cand] {
				kept = append(kept, cand)
			}
		}
		twin := g.Twin(he)
		pos := indexOfHalfEdge(kept, twin)
		if pos < 0 || len(kept) == 0 {
			continue
		}
		next[he] = kept[(pos-1+len(kept))%len(kept)]
	}

	visited := make(map[HalfEdgeID]bool, len(keep))
	var subpaths []Subpath
	for start := range keep {
		if visited[start] || !included(g.halfEdges[start].Boundary) {
			continue
		}
		var segs []Segment
		cur := start
		for !visited[cur] {
			visited[cur] = true
			segs = append(segs, g.Segment(cur))
			nxt, ok := next[cur]
			if !ok {
				break
			}
			cur = nxt
			if cur == start {
				break
			}
		}
		if len(segs) > 0 {
			subpaths = append(subpaths, Subpath{Segments: collapseAdjacentEdges(segs), Closed: true})
		}
	}

	return Shape{Subpaths: subpaths}
}

// collapseAdjacentEdges merges consecutive Line segments of one output loop
// that run collinear, in the same direction, within CollinearTangentEpsilon
// into a single Line, so the output doesn't carry spurious extra vertices
// along what is, geometrically, one straight edge. It looks only at the
// loop's own segments: it does not check the degree of the vertex they
// share or whether that vertex came from the input geometry, so a collinear
// join that was an input vertex is merged as well.
func collapseAdjacentEdges(segs []Segment) []Segment {
	if len(segs) < 2 {
		return segs
	}
	out := make([]Segment, 0, len(segs))
	out = append(out, segs[0])
	for _, seg := range segs[1:] {
		last := out[len(out)-1]
		la, lok := Line(last)
		sa, sok := Line(seg)
		if lok && sok && collinear(la, sa) {
			out[len(out)-1] = NewLine(cagLineJoin(la, sa))
			continue
		}
		out = append(out, seg)
	}
	// The loop is closed: also try to merge the last piece into the first.
	if len(out) > 1 {
		la, lok := Line(out[len(out)-1])
		fa, fok := Line(out[0])
		if lok && fok && collinear(la, fa) {
			out[0] = NewLine(cagLineJoin(la, fa))
			out = out[:len(out)-1]
		}
	}
	return out
}

