package planar

import (
	"math"

	cag "pathkit.dev/cag"
)

// Overlap describes a shared sub-range between two like-kind segments: the
// parameter range [TA0, TA1] on a coincides, point for point, with
// [TB0, TB1] on b (possibly reversed, if TB0 > TB1).
type Overlap struct {
	TA0, TA1, TB0, TB1 float64
}

// overlapDistEpsilon is how close two points must land to be considered
// coincident when testing for an overlap or self-intersection.
const overlapDistEpsilon = 1e-7

// GetOverlaps reports the coincident sub-range of a and b, if any, for two
// segments of the same underlying kind (Line-Line, Quadratic-Quadratic, or
// Cubic-Cubic). It samples a at nine evenly spaced parameters, keeps those
// that lie on b (found via dominikh-go-curve's own Nearest), fits the affine
// map between the two parameter domains from the first and last kept
// samples, and validates the fit at the middle kept sample -
// eliminateOverlap (G.2) uses this to collapse coincident boundary to a
// single shared edge before intersection splitting runs.
func GetOverlaps(a, b Segment) (Overlap, bool) {
	if a.Kind() != b.Kind() || a.Kind() == ArcSegment {
		return Overlap{}, false
	}

	nearest := nearestOnFunc(b)
	if nearest == nil {
		return Overlap{}, false
	}

	thresh := overlapDistEpsilon * overlapDistEpsilon
	var ss, ts []float64
	for i := 0; i <= 8; i++ {
		if d, t := nearest(a.PositionAt(float64(i) / 8)); d <= thresh {
			ss, ts = append(ss, float64(i)/8), append(ts, t)
		}
	}
	if len(ss) < 3 {
		return Overlap{}, false
	}
	s0, s1, s2 := ss[0], ss[len(ss)-1], ss[len(ss)/2]
	t0, t1, t2 := ts[0], ts[len(ts)-1], ts[len(ts)/2]

	// Fit t_b = m*t_a + c from (s0, t0) and (s1, t1); validate against s2.
	// An overlap that contains fewer than three of the nine samples is not
	// reported; this holds for any overlap shorter than 1/4 of a's domain.
	if s1 == s0 {
		return Overlap{}, false
	}
	m := (t1 - t0) / (s1 - s0)
	c := t0 - m*s0
	predicted := m*s2 + c
	if math.Abs(predicted-t2) > 1e-4 {
		return Overlap{}, false
	}
	if math.Abs(m) < 1e-9 {
		return Overlap{}, false
	}

	// Clip a's full [0, 1] domain to the sub-range whose image under the
	// affine map also lies in b's [0, 1] domain.
	ta0, ta1 := 0.0, 1.0
	tb0 := m*ta0 + c
	tb1 := m*ta1 + c
	lo, hi := 0.0, 1.0
	if m > 0 {
		if tb0 < lo {
			ta0 = (lo - c) / m
		}
		if tb1 > hi {
			ta1 = (hi - c) / m
		}
	} else {
		if tb0 > hi {
			ta0 = (hi - c) / m
		}
		if tb1 < lo {
			ta1 = (lo - c) / m
		}
	}
	if ta1-ta0 < OverlapParameterEpsilon {
		return Overlap{}, false
	}

	return Overlap{TA0: ta0, TA1: ta1, TB0: m*ta0 + c, TB1: m*ta1 + c}, true
}

// nearestAccuracy bounds the accuracy of the underlying cubic-root/ITP
// search Nearest performs; it need only be tight relative to
// overlapDistEpsilon.
const nearestAccuracy = 1e-9

func nearestOnFunc(s Segment) func(cag.Point) (distSq, t float64) {
	if l, ok := Line(s); ok {
		return func(pt cag.Point) (float64, float64) { return l.Nearest(pt, nearestAccuracy) }
	}
	if q, ok := Quadratic(s); ok {
		return func(pt cag.Point) (float64, float64) { return q.Nearest(pt, nearestAccuracy) }
	}
	if c, ok := Cubic(s); ok {
		return func(pt cag.Point) (float64, float64) { return c.Nearest(pt, nearestAccuracy) }
	}
	return nil
}

// SelfIntersection is a single point where a cubic crosses its own path,
// given as the two (necessarily distinct, non-adjacent) parameters at which
// it passes through the same point.
type SelfIntersection struct {
	T0, T1 float64
	Point  cag.Point
}

// selfIntersectMinGap is the minimum parameter separation between t0 and t1
// for a coincidence to be treated as a genuine self-intersection rather than
// the trivial match of a point with itself.
const selfIntersectMinGap = 1e-3

// GetSelfIntersection finds the point, if any, where cubic c crosses itself.
// A non-degenerate cubic has at most one such point. It reuses the same
// recursive bounding-box subdivision core as Intersect, restricted to the
// off-diagonal region t0 < t1 - selfIntersectMinGap so the trivial diagonal
// match is never considered.
func GetSelfIntersection(c cag.CubicBez) (SelfIntersection, bool) {
	seg := NewCubic(c)
	var hits []SegmentIntersection
	subdivideSelf(seg, 0, 1, 0, 1, 0, &hits)
	if len(hits) == 0 {
		return SelfIntersection{}, false
	}
	h := hits[0]
	for _, c := range hits[1:] {
		if seg.PositionAt(c.TA).DistanceSquared(seg.PositionAt(c.TB)) < seg.PositionAt(h.TA).DistanceSquared(seg.PositionAt(h.TB)) {
			h = c
		}
	}
	return SelfIntersection{T0: h.TA, T1: h.TB, Point: h.Point}, true
}

func subdivideSelf(seg Segment, a0, a1, b0, b1 float64, depth int, out *[]SegmentIntersection) {
	if b1 <= a0+selfIntersectMinGap {
		return
	}
	a := seg.Subrange(a0, a1)
	b := seg.Subrange(b0, b1)
	if !bboxOverlap(a.Bounds(), b.Bounds()) {
		return
	}
	if depth >= maxIntersectDepth || ((a1-a0) < IntersectionEndpointEpsilon && (b1-b0) < IntersectionEndpointEpsilon) {
		*out = append(*out, SegmentIntersection{TA: 0.5 * (a0 + a1), TB: 0.5 * (b0 + b1), Point: a.PositionAt(0.5)})
		return
	}
	am := 0.5 * (a0 + a1)
	bm := 0.5 * (b0 + b1)
	subdivideSelf(seg, a0, am, b0, bm, depth+1, out)
	subdivideSelf(seg, a0, am, bm, b1, depth+1, out)
	subdivideSelf(seg, am, a1, b0, bm, depth+1, out)
	subdivideSelf(seg, am, a1, bm, b1, depth+1, out)
}
