package planar

import cag "pathkit.dev/cag"

// maxIntersectDepth bounds the recursive bounding-box subdivision used by
// Intersect and GetSelfIntersection, matching the teacher's own preference
// for an explicit recursion bound over relying on tolerance alone to
// terminate (see dominikh-go-curve's subdivide-based Nearest solvers).
const maxIntersectDepth = 24

// SegmentIntersection is a single crossing between two segments, given as
// the parameter on each at which it occurs.
type SegmentIntersection struct {
	TA, TB float64
	Point  cag.Point
}

// Intersect finds every transversal crossing of segments a and b via
// recursive bounding-box subdivision: the pair is discarded once its boxes
// stop overlapping and subdivided otherwise, down to a parameter width below
// IntersectionEndpointEpsilon, at which point the midpoint is reported as a
// crossing. Two straight lines are solved analytically instead, reusing
// dominikh-go-curve's own Line.IntersectLine.
func Intersect(a, b Segment) []SegmentIntersection {
	if la, ok := Line(a); ok {
		if lb, ok := Line(b); ok {
			return intersectLines(la, lb)
		}
	}

	var hits []SegmentIntersection
	subdivideIntersect(a, b, 0, 1, 0, 1, 0, &hits)
	return dedupIntersections(hits)
}

// a.IntersectLine(b) reports the crossing in terms of b (the "line"
// argument, LineT) and a (the receiving "segment", SegmentT).
func intersectLines(a, b cag.Line) []SegmentIntersection {
	results, n := a.IntersectLine(b)
	hits := make([]SegmentIntersection, 0, n)
	for i := 0; i < n; i++ {
		hits = append(hits, SegmentIntersection{
			TA:    results[i].SegmentT,
			TB:    results[i].LineT,
			Point: a.Eval(results[i].SegmentT),
		})
	}
	return hits
}

func subdivideIntersect(a, b Segment, a0, a1, b0, b1 float64, depth int, out *[]SegmentIntersection) {
	if !bboxOverlap(a.Bounds(), b.Bounds()) {
		return
	}
	if depth >= maxIntersectDepth || (a1-a0) < IntersectionEndpointEpsilon && (b1-b0) < IntersectionEndpointEpsilon {
		ta, tb := 0.5*(a0+a1), 0.5*(b0+b1)
		*out = append(*out, SegmentIntersection{TA: ta, TB: tb, Point: a.PositionAt(0.5)})
		return
	}

	am := 0.5 * (a0 + a1)
	bm := 0.5 * (b0 + b1)
	a0s, a1s := a.Subdivided(0.5)
	b0s, b1s := b.Subdivided(0.5)

	subdivideIntersect(a0s, b0s, a0, am, b0, bm, depth+1, out)
	subdivideIntersect(a0s, b1s, a0, am, bm, b1, depth+1, out)
	subdivideIntersect(a1s, b0s, am, a1, b0, bm, depth+1, out)
	subdivideIntersect(a1s, b1s, am, a1, bm, b1, depth+1, out)
}

// dedupIntersections merges hits whose parameters on both curves are within
// IntersectionEndpointEpsilon of one another, which recursive subdivision
// commonly produces near a crossing that lands close to a subdivision
// boundary.
func dedupIntersections(hits []SegmentIntersection) []SegmentIntersection {
	var out []SegmentIntersection
	for _, h := range hits {
		dup := false
		for i := range out {
			if abs(out[i].TA-h.TA) < IntersectionEndpointEpsilon && abs(out[i].TB-h.TB) < IntersectionEndpointEpsilon {
				dup = true
				break
			}
		}
		if !dup {
			out = append(out, h)
		}
	}
	return out
}

func bboxOverlap(a, b cag.Rect) bool {
	const pad = 1e-9
	return a.MinX() <= b.MaxX()+pad && b.MinX() <= a.MaxX()+pad &&
		a.MinY() <= b.MaxY()+pad && b.MinY() <= a.MaxY()+pad
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
