package planar

import (
	"math"

	cag "pathkit.dev/cag"
)

// boundary is one maximal cycle of half-edges produced by extractFaces
// (G.10): following Next from any of its half-edges eventually returns to
// the start. Its SignedArea determines whether it encloses area on its
// left (Outer, a candidate face boundary) or on its right (a hole boundary,
// CCW when traversed the other way), per spec.md §4.G.10-G.11.
type boundary struct {
	HalfEdges  []HalfEdgeID
	SignedArea float64
}

// Outer reports whether this boundary is traversed counterclockwise, i.e.
// it is the outer rim of a face rather than a hole cut into one.
func (b boundary) Outer() bool {
	return b.SignedArea > 0
}

func (g *Graph) addBoundary(cycle []HalfEdgeID) BoundaryID {
	id := BoundaryID(len(g.boundaries))
	var area float64
	for _, he := range cycle {
		g.halfEdges[he].Boundary = id
		seg := g.Segment(he)
		area += signedAreaContribution(seg)
	}
	g.boundaries = append(g.boundaries, boundary{HalfEdges: cycle, SignedArea: 0.5 * area})
	return id
}

// signedAreaContribution is the shoelace-formula contribution of seg (twice
// the signed area, which addBoundary halves), computed over the polyline
// through 9 evenly spaced points of seg for Line/Quadratic/Cubic/Arc alike
// (exact for straight edges; an approximation for curved ones).
func signedAreaContribution(seg Segment) float64 {
	const samples = 8
	p0 := seg.Start()
	sum := 0.0
	prev := p0
	for i := 1; i <= samples; i++ {
		t := float64(i) / samples
		cur := seg.PositionAt(t)
		sum += prev.X*cur.Y - cur.X*prev.Y
		prev = cur
	}
	return sum
}

// Boundary returns the half-edge cycle for id.
func (g *Graph) Boundary(id BoundaryID) []HalfEdgeID {
	return g.boundaries[id].HalfEdges
}

// boundaryPoint returns the point of the boundary (sampled at 16 points per
// half-edge) that lies farthest along the ExtremeRayAngle direction, used as
// the origin of the extreme ray cast during computeBoundaryGraph (G.11), so
// the ray points away from the boundary it starts on.
func (g *Graph) boundaryPoint(id BoundaryID) cag.Point {
	dir := cag.Vec(math.Cos(ExtremeRayAngle), math.Sin(ExtremeRayAngle))
	var best cag.Point
	bestDot := math.Inf(-1)
	for _, he := range g.boundaries[id].HalfEdges {
		seg := g.Segment(he)
		for i := 0; i < 16; i++ {
			p := seg.PositionAt(float64(i) / 16)
			if d := p.X*dir.X + p.Y*dir.Y; d > bestDot {
				best, bestDot = p, d
			}
		}
	}
	return best
}
