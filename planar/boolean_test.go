package planar

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	cag "pathkit.dev/cag"
)

// samplePoints are probed against both the naive overlay and the CAG result
// for the overlapping-squares fixture used throughout this file; they cover
// each square's exclusive region, their shared region, and outside both.
func samplePoints() []cag.Point {
	return []cag.Point{
		cag.Pt(2, 2),   // inside A only
		cag.Pt(12, 12), // inside B only
		cag.Pt(7, 7),   // inside both
		cag.Pt(20, 20), // inside neither
		cag.Pt(9, 1),   // inside A only, near A's bottom-right corner
	}
}

func naiveUnion(a, b Shape, pt cag.Point) bool { return inside(a, pt) || inside(b, pt) }
func naiveInter(a, b Shape, pt cag.Point) bool { return inside(a, pt) && inside(b, pt) }
func naiveDiff(a, b Shape, pt cag.Point) bool  { return inside(a, pt) && !inside(b, pt) }
func naiveXOR(a, b Shape, pt cag.Point) bool   { return inside(a, pt) != inside(b, pt) }

// TestBinaryResultOverlappingSquares is the S1-style scenario of spec.md §8,
// adapted to axis-aligned squares: it checks each of the four standard
// binary filters against a naive point-membership oracle over both inputs.
func TestBinaryResultOverlappingSquares(t *testing.T) {
	a := shapeOf(rect(0, 0, 10, 10))
	b := shapeOf(rect(5, 5, 15, 15))

	cases := []struct {
		name  string
		op    BinaryOp
		naive func(Shape, Shape, cag.Point) bool
	}{
		{"Union", OpUnion, naiveUnion},
		{"Intersection", OpIntersection, naiveInter},
		{"Difference", OpDifference, naiveDiff},
		{"XOR", OpXOR, naiveXOR},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			out := mustBinary(t, a, b, c.op)
			for _, pt := range samplePoints() {
				want := c.naive(a, b, pt)
				got := inside(out, pt)
				if got != want {
					t.Errorf("%s at %v: got inside=%v, want %v", c.name, pt, got, want)
				}
			}
		})
	}
}

// TestUnionOfOverlappingTriangles is the S1 scenario of spec.md §8: two
// opposite-oriented triangles that overlap around (50, 50). Their union must
// contain each triangle's interior and nothing outside either.
func TestUnionOfOverlappingTriangles(t *testing.T) {
	a := shapeOf(triangle(cag.Pt(10, 10), cag.Pt(90, 10), cag.Pt(50, 90)))
	b := shapeOf(triangle(cag.Pt(10, 90), cag.Pt(90, 90), cag.Pt(50, 10)))

	out := mustBinary(t, a, b, OpUnion)
	for _, pt := range []cag.Point{cag.Pt(50, 30), cag.Pt(50, 70), cag.Pt(50, 50)} {
		want := inside(a, pt) || inside(b, pt)
		if got := inside(out, pt); got != want {
			t.Errorf("union at %v: got %v, want %v", pt, got, want)
		}
	}
	if inside(out, cag.Pt(1, 1)) {
		t.Error("union: (1,1) should be outside both triangles")
	}
}

// TestUnionWithEmptyIsIdentity checks invariant 6 of spec.md §8: union(A,
// empty) reproduces A, up to vertex epsilon.
func TestUnionWithEmptyIsIdentity(t *testing.T) {
	a := shapeOf(rect(0, 0, 10, 10))
	empty := Shape{}

	out := mustBinary(t, a, empty, OpUnion)
	diff(t, polygonArea(a), polygonArea(out), cmpopts.EquateApprox(0, 1e-6))
	for _, pt := range []cag.Point{cag.Pt(5, 5), cag.Pt(20, 20)} {
		if inside(out, pt) != inside(a, pt) {
			t.Errorf("union(A, empty) at %v diverges from A", pt)
		}
	}
}

// TestIdempotence checks invariant 7 of spec.md §8: union(A,A) == A,
// intersection(A,A) == A, difference(A,A) == empty.
func TestIdempotence(t *testing.T) {
	a := shapeOf(rect(0, 0, 10, 10))

	if out := mustBinary(t, a, a, OpUnion); true {
		diff(t, polygonArea(a), polygonArea(out), cmpopts.EquateApprox(0, 1e-6))
	}
	if out := mustBinary(t, a, a, OpIntersection); true {
		diff(t, polygonArea(a), polygonArea(out), cmpopts.EquateApprox(0, 1e-6))
	}
	out := mustBinary(t, a, a, OpDifference)
	if polygonArea(out) > 1e-6 {
		t.Errorf("difference(A, A) area = %v, want ~0", polygonArea(out))
	}
}

// TestGridDifference is the S3 scenario of spec.md §8: five horizontal bars
// minus five vertical bars leaves a waffle of 25 small squares, whose total
// area must equal the naive set-difference area.
func TestGridDifference(t *testing.T) {
	var horizBars, vertBars []Subpath
	for i := 0; i < 5; i++ {
		y := float64(i * 20)
		horizBars = append(horizBars, rect(0, y, 100, y+10))
		x := float64(i * 20)
		vertBars = append(vertBars, rect(x, 0, x+10, 100))
	}
	a := shapeOf(horizBars...)
	b := shapeOf(vertBars...)

	out := mustBinary(t, a, b, OpDifference)

	// Each horizontal bar is 100x10 = 1000; five vertical bars of width 10
	// cross each bar, removing 5*10*10 = 500 per bar, leaving 500 per bar,
	// 2500 total across all five bars.
	diff(t, 2500.0, polygonArea(out), cmpopts.EquateApprox(0, 1.0))
}

// TestSelfUnionOfOverlappingSubpaths checks that a shape built from two
// overlapping subpaths of the same shape-id (the doubled-back case union's
// nonzero rule is built to repair) still evaluates membership correctly
// under Union against a second, disjoint shape.
func TestSelfUnionOfOverlappingSubpaths(t *testing.T) {
	a := shapeOf(rect(0, 0, 10, 10), rect(5, 5, 15, 15))
	b := shapeOf(rect(100, 100, 110, 110))

	out := mustBinary(t, a, b, OpUnion)
	for _, pt := range []cag.Point{cag.Pt(2, 2), cag.Pt(12, 12), cag.Pt(7, 7), cag.Pt(105, 105)} {
		want := inside(a, pt) || inside(b, pt)
		if got := inside(out, pt); got != want {
			t.Errorf("union at %v: got %v, want %v", pt, got, want)
		}
	}
}
