package planar

import (
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
	cag "pathkit.dev/cag"
)

// TestIntersectLines checks the analytic line/line fast path.
func TestIntersectLines(t *testing.T) {
	a := NewLine(cag.Line{P0: cag.Pt(0, 0), P1: cag.Pt(10, 10)})
	b := NewLine(cag.Line{P0: cag.Pt(0, 10), P1: cag.Pt(10, 0)})

	hits := Intersect(a, b)
	if len(hits) != 1 {
		t.Fatalf("Intersect: got %d hits, want 1", len(hits))
	}
	diff(t, 5.0, hits[0].Point.X, cmpopts.EquateApprox(0, 1e-9))
	diff(t, 5.0, hits[0].Point.Y, cmpopts.EquateApprox(0, 1e-9))
	diff(t, 0.5, hits[0].TA, cmpopts.EquateApprox(0, 1e-9))
	diff(t, 0.5, hits[0].TB, cmpopts.EquateApprox(0, 1e-9))
}

// TestIntersectParallelLines checks that parallel, non-coincident lines
// report no intersection.
func TestIntersectParallelLines(t *testing.T) {
	a := NewLine(cag.Line{P0: cag.Pt(0, 0), P1: cag.Pt(10, 0)})
	b := NewLine(cag.Line{P0: cag.Pt(0, 5), P1: cag.Pt(10, 5)})
	if hits := Intersect(a, b); len(hits) != 0 {
		t.Fatalf("Intersect: got %d hits for parallel lines, want 0", len(hits))
	}
}

// TestIntersectLineQuadratic checks the generic recursive-subdivision path
// against a line crossing a quadratic once.
func TestIntersectLineQuadratic(t *testing.T) {
	q := NewQuadratic(cag.QuadBez{P0: cag.Pt(0, 0), P1: cag.Pt(50, 100), P2: cag.Pt(100, 0)})
	l := NewLine(cag.Line{P0: cag.Pt(0, 50), P1: cag.Pt(100, 50)})

	hits := Intersect(q, l)
	if len(hits) == 0 {
		t.Fatal("Intersect: no hits between a quadratic arch and a line through its midheight")
	}
	for _, h := range hits {
		p := q.PositionAt(h.TA)
		diff(t, 50.0, p.Y, cmpopts.EquateApprox(0, 1e-3))
	}
}

// TestIntersectCubicCubic checks the generic path on two crossing cubics.
func TestIntersectCubicCubic(t *testing.T) {
	a := NewCubic(cag.CubicBez{P0: cag.Pt(0, 0), P1: cag.Pt(30, 100), P2: cag.Pt(70, 100), P3: cag.Pt(100, 0)})
	b := NewCubic(cag.CubicBez{P0: cag.Pt(0, 100), P1: cag.Pt(30, 0), P2: cag.Pt(70, 0), P3: cag.Pt(100, 100)})

	hits := Intersect(a, b)
	if len(hits) == 0 {
		t.Fatal("Intersect: no hits between two crossing cubics")
	}
	for _, h := range hits {
		pa := a.PositionAt(h.TA)
		pb := b.PositionAt(h.TB)
		diff(t, pa.X, pb.X, cmpopts.EquateApprox(0, 1e-3))
		diff(t, pa.Y, pb.Y, cmpopts.EquateApprox(0, 1e-3))
	}
}

// TestIntersectDisjointBounds checks that segments whose bounding boxes
// never overlap produce no spurious hits.
func TestIntersectDisjointBounds(t *testing.T) {
	a := NewLine(cag.Line{P0: cag.Pt(0, 0), P1: cag.Pt(1, 1)})
	b := NewLine(cag.Line{P0: cag.Pt(100, 100), P1: cag.Pt(101, 101)})
	if hits := Intersect(a, b); len(hits) != 0 {
		t.Fatalf("Intersect: got %d hits for disjoint segments, want 0", len(hits))
	}
}
