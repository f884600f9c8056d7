package planar

import (
	"errors"
	"math"
	"testing"

	cag "pathkit.dev/cag"
)

// TestIngestSquare checks G.1: one subpath of four lines produces four
// vertices and four edges, with no fusion (the corners are far apart).
func TestIngestSquare(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddShape(shapeOf(rect(0, 0, 10, 10))); err != nil {
		t.Fatalf("AddShape: %v", err)
	}
	if got, want := g.NumVertices(), 4; got != want {
		t.Errorf("NumVertices() = %d, want %d", got, want)
	}
	if got, want := g.NumEdges(), 4; got != want {
		t.Errorf("NumEdges() = %d, want %d", got, want)
	}
}

// TestIngestInvalidGeometry checks G.1's InvalidGeometry rejection of a
// non-finite coordinate.
func TestIngestInvalidGeometry(t *testing.T) {
	bad := shapeOf(Subpath{
		Closed: true,
		Segments: []Segment{
			NewLine(cag.Line{P0: cag.Pt(0, 0), P1: cag.Pt(math.NaN(), 10)}),
			NewLine(cag.Line{P0: cag.Pt(math.NaN(), 10), P1: cag.Pt(10, 10)}),
			NewLine(cag.Line{P0: cag.Pt(10, 10), P1: cag.Pt(0, 0)}),
		},
	})
	g := NewGraph()
	_, err := g.AddShape(bad)
	if err == nil {
		t.Fatal("AddShape with a NaN coordinate: got nil error")
	}
	if !errors.Is(err, ErrInvalidGeometry) {
		t.Errorf("AddShape error = %v, want ErrInvalidGeometry", err)
	}
}

// TestTwinInvolution checks invariant 1 of spec.md §8: every half-edge's
// twin's twin is itself, and never itself directly.
func TestTwinInvolution(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddShape(shapeOf(rect(0, 0, 10, 10))); err != nil {
		t.Fatalf("AddShape: %v", err)
	}
	for _, he := range g.liveHalfEdges() {
		twin := g.Twin(he)
		if got := g.Twin(twin); got != he {
			t.Errorf("Twin(Twin(%d)) = %d, want %d", he, got, he)
		}
		if twin == he {
			t.Errorf("Twin(%d) == %d, want distinct", he, he)
		}
	}
}

// TestEulerFormula checks invariant 3 of spec.md §8 on the result of a full
// union pipeline over two overlapping squares: V - E + F = 2, counting the
// unbounded face once.
func TestEulerFormula(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddShape(shapeOf(rect(0, 0, 10, 10))); err != nil {
		t.Fatalf("AddShape a: %v", err)
	}
	if _, err := g.AddShape(shapeOf(rect(5, 5, 15, 15))); err != nil {
		t.Fatalf("AddShape b: %v", err)
	}
	if _, err := g.Result(Union(0, 1)); err != nil {
		t.Fatalf("Result: %v", err)
	}

	v := g.NumVertices()
	e := g.NumEdges()
	f := g.NumFaces() + 1 // NumFaces has no entry for the unbounded face
	if got := v - e + f; got != 2 {
		t.Errorf("V - E + F = %d - %d + %d = %d, want 2", v, e, f, got)
	}
}

// TestFaceDuality checks invariant 2 of spec.md §8: after extraction, an
// edge's two half-edges never belong to the same face.
func TestFaceDuality(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddShape(shapeOf(rect(0, 0, 10, 10))); err != nil {
		t.Fatalf("AddShape a: %v", err)
	}
	if _, err := g.AddShape(shapeOf(rect(5, 5, 15, 15))); err != nil {
		t.Fatalf("AddShape b: %v", err)
	}
	if _, err := g.Result(Union(0, 1)); err != nil {
		t.Fatalf("Result: %v", err)
	}

	boundaryFace := make(map[BoundaryID]FaceID)
	for fid, f := range g.faces {
		boundaryFace[f.Outer] = FaceID(fid)
		for _, h := range f.Holes {
			boundaryFace[h] = FaceID(fid)
		}
	}
	for _, he := range g.liveHalfEdges() {
		b := g.halfEdges[he].Boundary
		tb := g.halfEdges[g.Twin(he)].Boundary
		fa, aok := boundaryFace[b]
		fb, bok := boundaryFace[tb]
		if !aok || !bok {
			continue
		}
		if fa == fb {
			t.Errorf("half-edge %d and its twin share face %d", he, fa)
		}
	}
}

// TestUnboundedFaceWindingZero checks invariant 5 of spec.md §8.
func TestUnboundedFaceWindingZero(t *testing.T) {
	g := NewGraph()
	if _, err := g.AddShape(shapeOf(rect(0, 0, 10, 10))); err != nil {
		t.Fatalf("AddShape: %v", err)
	}
	if _, err := g.Result(Union(0, 0)); err != nil {
		t.Fatalf("Result: %v", err)
	}

	// The unbounded face is the only one with no outer boundary containing
	// it; find it as the face whose winding is zero for every shape and
	// whose area (via its outer boundary's bounding box) dominates the
	// others is not a robust test here, so instead check directly: every
	// face reachable from outside the square must show winding 0 for shape
	// 0 except the square's own interior face.
	insideCount := 0
	for _, f := range g.faces {
		if f.Winding[0] != 0 {
			insideCount++
		}
	}
	if insideCount != 1 {
		t.Errorf("expected exactly one face with nonzero winding, got %d", insideCount)
	}
}
