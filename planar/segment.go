package planar

import (
	"iter"
	"math"

	cag "pathkit.dev/cag"
)

// SegmentKind tags the concrete type behind a Segment, mirroring the tagged
// variant pathkit.dev/cag's own PathSegmentKind uses for Line/Quad/Cubic,
// extended with a fourth case for Arc (spec.md §3/§9: "Segment = Line |
// Quadratic | Cubic | Arc plus a trait for the shared capability set").
type SegmentKind int

const (
	LineSegment SegmentKind = iota + 1
	QuadraticSegment
	CubicSegment
	ArcSegment
)

func (k SegmentKind) String() string {
	switch k {
	case LineSegment:
		return "Line"
	case QuadraticSegment:
		return "Quadratic"
	case CubicSegment:
		return "Cubic"
	case ArcSegment:
		return "Arc"
	default:
		return "InvalidSegmentKind"
	}
}

// Segment is the capability set required of every parametric curve the
// engine consumes, per spec.md §3/§6. Concrete segments are produced by
// NewLine, NewQuadratic, NewCubic, and NewArc, wrapping the corresponding
// pathkit.dev/cag type.
type Segment interface {
	Kind() SegmentKind

	Start() cag.Point
	End() cag.Point
	Bounds() cag.Rect
	PositionAt(t float64) cag.Point
	// TangentAt returns the non-normalized tangent vector at t.
	TangentAt(t float64) cag.Vec2
	// Subdivided splits the segment at t into two segments of the same kind.
	Subdivided(t float64) (Segment, Segment)
	// Subrange returns the portion of the segment between parameters t0 and
	// t1 (0 <= t0 <= t1 <= 1), as a segment of the same kind reparametrized
	// to [0, 1].
	Subrange(t0, t1 float64) Segment
	// Reversed returns a segment tracing the same points in the opposite
	// direction.
	Reversed() Segment

	// pathElements appends the drawing commands for this segment (excluding
	// the initial MoveTo) to the sequence, flattening arcs to cubics. This is
	// the hook a renderer (out of scope, per spec.md §1) would consume; the
	// engine itself only uses it to re-emit result shapes and in tests.
	pathElements(tolerance float64) iter.Seq[cag.PathElement]
}

func finite(p cag.Point) bool {
	return !math.IsNaN(p.X) && !math.IsNaN(p.Y) && !math.IsInf(p.X, 0) && !math.IsInf(p.Y, 0)
}

// --- Line ---

type lineSegment struct{ l cag.Line }

// NewLine wraps a straight line segment.
func NewLine(l cag.Line) Segment { return lineSegment{l} }

func (s lineSegment) Kind() SegmentKind       { return LineSegment }
func (s lineSegment) Start() cag.Point        { return s.l.Start() }
func (s lineSegment) End() cag.Point          { return s.l.End() }
func (s lineSegment) Bounds() cag.Rect        { return s.l.BoundingBox() }
func (s lineSegment) PositionAt(t float64) cag.Point { return s.l.Eval(t) }
func (s lineSegment) TangentAt(t float64) cag.Vec2 {
	d0, _ := s.l.Tangents()
	return d0
}
func (s lineSegment) Subdivided(t float64) (Segment, Segment) {
	return NewLine(s.l.Subsegment(0, t)), NewLine(s.l.Subsegment(t, 1))
}
func (s lineSegment) Reversed() Segment { return NewLine(cag.Line{P0: s.l.P1, P1: s.l.P0}) }
func (s lineSegment) Subrange(t0, t1 float64) Segment { return NewLine(s.l.Subsegment(t0, t1)) }
func (s lineSegment) pathElements(tolerance float64) iter.Seq[cag.PathElement] {
	return func(yield func(cag.PathElement) bool) { yield(cag.LineTo(s.l.P1)) }
}

// Line returns the underlying line and true if s wraps one.
func Line(s Segment) (cag.Line, bool) {
	l, ok := s.(lineSegment)
	return l.l, ok
}

// --- Quadratic ---

type quadSegment struct{ q cag.QuadBez }

// NewQuadratic wraps a quadratic Bézier segment.
func NewQuadratic(q cag.QuadBez) Segment { return quadSegment{q} }

func (s quadSegment) Kind() SegmentKind       { return QuadraticSegment }
func (s quadSegment) Start() cag.Point        { return s.q.Start() }
func (s quadSegment) End() cag.Point          { return s.q.End() }
func (s quadSegment) Bounds() cag.Rect        { return s.q.BoundingBox() }
func (s quadSegment) PositionAt(t float64) cag.Point { return s.q.Eval(t) }
func (s quadSegment) TangentAt(t float64) cag.Vec2 {
	return cag.Vec2(s.q.Differentiate().Eval(t))
}
func (s quadSegment) Subdivided(t float64) (Segment, Segment) {
	return NewQuadratic(s.q.Subsegment(0, t)), NewQuadratic(s.q.Subsegment(t, 1))
}
func (s quadSegment) Reversed() Segment {
	return NewQuadratic(cag.QuadBez{P0: s.q.P2, P1: s.q.P1, P2: s.q.P0})
}
func (s quadSegment) Subrange(t0, t1 float64) Segment { return NewQuadratic(s.q.Subsegment(t0, t1)) }
func (s quadSegment) pathElements(tolerance float64) iter.Seq[cag.PathElement] {
	return func(yield func(cag.PathElement) bool) { yield(cag.QuadTo(s.q.P1, s.q.P2)) }
}

// Quadratic returns the underlying quadratic Bézier and true if s wraps one.
func Quadratic(s Segment) (cag.QuadBez, bool) {
	q, ok := s.(quadSegment)
	return q.q, ok
}

// --- Cubic ---

type cubicSegment struct{ c cag.CubicBez }

// NewCubic wraps a cubic Bézier segment.
func NewCubic(c cag.CubicBez) Segment { return cubicSegment{c} }

func (s cubicSegment) Kind() SegmentKind       { return CubicSegment }
func (s cubicSegment) Start() cag.Point        { return s.c.Start() }
func (s cubicSegment) End() cag.Point          { return s.c.End() }
func (s cubicSegment) Bounds() cag.Rect        { return s.c.BoundingBox() }
func (s cubicSegment) PositionAt(t float64) cag.Point { return s.c.Eval(t) }
func (s cubicSegment) TangentAt(t float64) cag.Vec2 {
	return cag.Vec2(s.c.Differentiate().Eval(t))
}
func (s cubicSegment) Subdivided(t float64) (Segment, Segment) {
	return NewCubic(s.c.Subsegment(0, t)), NewCubic(s.c.Subsegment(t, 1))
}
func (s cubicSegment) Reversed() Segment {
	return NewCubic(cag.CubicBez{P0: s.c.P3, P1: s.c.P2, P2: s.c.P1, P3: s.c.P0})
}
func (s cubicSegment) Subrange(t0, t1 float64) Segment { return NewCubic(s.c.Subsegment(t0, t1)) }
func (s cubicSegment) pathElements(tolerance float64) iter.Seq[cag.PathElement] {
	return func(yield func(cag.PathElement) bool) { yield(cag.CubicTo(s.c.P1, s.c.P2, s.c.P3)) }
}

// Cubic returns the underlying cubic Bézier and true if s wraps one.
func Cubic(s Segment) (cag.CubicBez, bool) {
	c, ok := s.(cubicSegment)
	return c.c, ok
}

// --- Arc ---

type arcSegment struct{ a cag.Arc }

// NewArc wraps a circular or elliptical arc segment.
func NewArc(a cag.Arc) Segment { return arcSegment{a} }

func (s arcSegment) Kind() SegmentKind       { return ArcSegment }
func (s arcSegment) Start() cag.Point        { return s.a.Start() }
func (s arcSegment) End() cag.Point          { return s.a.End() }
func (s arcSegment) Bounds() cag.Rect        { return s.a.BoundingBox() }
func (s arcSegment) PositionAt(t float64) cag.Point { return s.a.Eval(t) }
func (s arcSegment) TangentAt(t float64) cag.Vec2   { return s.a.TangentAt(t) }
func (s arcSegment) Subdivided(t float64) (Segment, Segment) {
	return NewArc(s.a.Subsegment(0, t)), NewArc(s.a.Subsegment(t, 1))
}
func (s arcSegment) Reversed() Segment { return NewArc(s.a.Reversed()) }
func (s arcSegment) Subrange(t0, t1 float64) Segment { return NewArc(s.a.Subsegment(t0, t1)) }
func (s arcSegment) pathElements(tolerance float64) iter.Seq[cag.PathElement] {
	return func(yield func(cag.PathElement) bool) {
		first := true
		for el := range s.a.PathElements(tolerance) {
			if first {
				// Skip the arc's own MoveTo; the caller already positioned
				// the pen at this segment's start.
				first = false
				continue
			}
			if !yield(el) {
				return
			}
		}
	}
}

// Arc returns the underlying arc and true if s wraps one.
func Arc(s Segment) (cag.Arc, bool) {
	a, ok := s.(arcSegment)
	return a.a, ok
}
