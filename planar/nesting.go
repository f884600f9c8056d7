package planar

import (
	"math"

	cag "pathkit.dev/cag"
)

// computeBoundaryGraph is G.11: every outer (CCW) boundary becomes a face,
// and every hole (CW) boundary is nested under the face whose outer
// boundary most tightly contains it. Containment is tested the way a
// point-in-polygon test is, but by casting the ray at the single fixed
// angle ExtremeRayAngle rather than picking a direction per query, which
// sidesteps the usual "ray grazes a vertex" instability for typical input.
// A ray that does graze a vertex or touch a segment tangentially is not
// detected; ErrIndeterminateRay is never returned.
func computeBoundaryGraph(g *Graph) error {
	var outers, holes []BoundaryID
	for i, b := range g.boundaries {
		if b.Outer() {
			outers = append(outers, BoundaryID(i))
		} else {
			holes = append(holes, BoundaryID(i))
		}
	}

	holesOf := make(map[BoundaryID][]BoundaryID, len(outers))

	for _, h := range holes {
		pt := g.boundaryPoint(h)
		var parent BoundaryID = NoBoundary
		var parentArea float64
		for _, o := range outers {
			if !rayContains(g, pt, o) {
				continue
			}
			area := boundaryBoundsArea(g, o)
			if parent == NoBoundary || area < parentArea {
				parent = o
				parentArea = area
			}
		}
		if parent == NoBoundary {
			// No enclosing outer boundary: h is a hole of the unbounded
			// face. There's no explicit Face value for the unbounded
			// face (see DESIGN.md); leaving h out of every holesOf
			// entry is that attachment, since computeWindingMap and
			// createFilledSubGraph both already treat a boundary absent
			// from their face-lookup map as bordering the exterior.
			continue
		}
		holesOf[parent] = append(holesOf[parent], h)
	}

	for _, o := range outers {
		g.addFace(o, holesOf[o])
	}
	return nil
}

// rayContains reports whether pt lies inside the region bounded by
// boundary b, via a crossing-number test along the fixed-angle ray from pt.
func rayContains(g *Graph, pt cag.Point, b BoundaryID) bool {
	dir := cag.Vec(math.Cos(ExtremeRayAngle), math.Sin(ExtremeRayAngle))
	count := 0
	for _, he := range g.boundaries[b].HalfEdges {
		seg := g.Segment(he)
		if hit, ok := rayHitsSegment(pt, dir, seg); ok && hit > RayBackClipEpsilon {
			count++
		}
	}
	return count%2 == 1
}

// rayHitsSegment finds the ray parameter (distance along dir from origin)
// at which the ray origin+s*dir crosses seg, approximating curved segments
// by their chord-subdivided polyline for robustness, matching the
// tolerance eliminateIntersection already uses elsewhere.
func rayHitsSegment(origin cag.Point, dir cag.Vec2, seg Segment) (float64, bool) {
	const samples = 16
	prev := seg.Start()
	for i := 1; i <= samples; i++ {
		t := float64(i) / samples
		cur := seg.PositionAt(t)
		if s, ok := rayHitsLine(origin, dir, prev, cur); ok {
			return s, true
		}
		prev = cur
	}
	return 0, false
}

// rayHitsLine solves origin+s*dir = p0+u*(p1-p0) for s, u and reports a hit
// when u in [0, 1) and s > 0.
func rayHitsLine(origin cag.Point, dir cag.Vec2, p0, p1 cag.Point) (float64, bool) {
	e := p1.Sub(p0)
	denom := dir.X*e.Y - dir.Y*e.X
	if math.Abs(denom) < 1e-12 {
		return 0, false
	}
	w := p0.Sub(origin)
	s := (w.X*e.Y - w.Y*e.X) / denom
	u := (w.X*dir.Y - w.Y*dir.X) / denom
	if u < 0 || u >= 1 {
		return 0, false
	}
	return s, s > 0
}

func boundaryBoundsArea(g *Graph, b BoundaryID) float64 {
	var r cag.Rect
	first := true
	for _, he := range g.boundaries[b].HalfEdges {
		bb := g.Segment(he).Bounds()
		if first {
			r = bb
			first = false
		} else {
			r = r.Union(bb)
		}
	}
	return r.Width() * r.Height()
}
