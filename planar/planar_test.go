package planar

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	cag "pathkit.dev/cag"
)

// diff mirrors dominikh-go-curve's own util_test.go helper of the same
// name, kept for planar's tests so table-driven comparisons read the same
// way the teacher's do.
func diff(t *testing.T, want, got any, opts ...cmp.Option) {
	t.Helper()
	if d := cmp.Diff(want, got, opts...); d != "" {
		t.Error(d)
	}
}

// rect builds a closed rectangular subpath from lines, CCW, matching the
// orientation dominikh-go-curve's own tests use for polygon fixtures.
func rect(x0, y0, x1, y1 float64) Subpath {
	p00, p10, p11, p01 := cag.Pt(x0, y0), cag.Pt(x1, y0), cag.Pt(x1, y1), cag.Pt(x0, y1)
	return Subpath{
		Closed: true,
		Segments: []Segment{
			NewLine(cag.Line{P0: p00, P1: p10}),
			NewLine(cag.Line{P0: p10, P1: p11}),
			NewLine(cag.Line{P0: p11, P1: p01}),
			NewLine(cag.Line{P0: p01, P1: p00}),
		},
	}
}

func triangle(a, b, c cag.Point) Subpath {
	return Subpath{
		Closed: true,
		Segments: []Segment{
			NewLine(cag.Line{P0: a, P1: b}),
			NewLine(cag.Line{P0: b, P1: c}),
			NewLine(cag.Line{P0: c, P1: a}),
		},
	}
}

func shapeOf(subs ...Subpath) Shape {
	return Shape{Subpaths: subs}
}

// windingNumber computes pt's winding number with respect to shape by
// casting a ray at the same fixed angle computeBoundaryGraph (G.11) uses,
// counting a segment crossing as +1 or -1 depending on which side of the
// ray direction it crosses. This gives the test suite an oracle for
// point-membership independent of the pipeline under test.
func windingNumber(shape Shape, pt cag.Point) int {
	dir := cag.Vec(math.Cos(ExtremeRayAngle), math.Sin(ExtremeRayAngle))
	w := 0
	for _, sub := range shape.Subpaths {
		for _, seg := range sub.allSegments() {
			w += crossingContribution(pt, dir, seg)
		}
	}
	return w
}

func crossingContribution(origin cag.Point, dir cag.Vec2, seg Segment) int {
	const samples = 32
	prev := seg.Start()
	total := 0
	for i := 1; i <= samples; i++ {
		t := float64(i) / samples
		cur := seg.PositionAt(t)
		if s, u, ok := rayLineParams(origin, dir, prev, cur); ok && s > RayBackClipEpsilon && u >= 0 && u < 1 {
			e := cur.Sub(prev)
			cross := dir.X*e.Y - dir.Y*e.X
			if cross > 0 {
				total++
			} else {
				total--
			}
		}
		prev = cur
	}
	return total
}

func rayLineParams(origin cag.Point, dir cag.Vec2, p0, p1 cag.Point) (s, u float64, ok bool) {
	e := p1.Sub(p0)
	denom := dir.X*e.Y - dir.Y*e.X
	if math.Abs(denom) < 1e-12 {
		return 0, 0, false
	}
	w := p0.Sub(origin)
	s = (w.X*e.Y - w.Y*e.X) / denom
	u = (w.X*dir.Y - w.Y*dir.X) / denom
	return s, u, true
}

func inside(shape Shape, pt cag.Point) bool {
	return windingNumber(shape, pt) != 0
}

// polygonArea sums the shoelace contribution of every subpath (outer
// boundaries positive, holes negative, by construction of the input), used
// to sanity-check idempotence and round-trip properties on shapes built
// entirely from straight edges.
func polygonArea(shape Shape) float64 {
	total := 0.0
	for _, sub := range shape.Subpaths {
		segs := sub.allSegments()
		sum := 0.0
		for _, seg := range segs {
			p0, p1 := seg.Start(), seg.End()
			sum += p0.X*p1.Y - p1.X*p0.Y
		}
		total += 0.5 * sum
	}
	if total < 0 {
		total = -total
	}
	return total
}

func mustBinary(t *testing.T, a, b Shape, op BinaryOp) Shape {
	t.Helper()
	out, err := BinaryResult(a, b, op)
	if err != nil {
		t.Fatalf("BinaryResult: %v", err)
	}
	return out
}
