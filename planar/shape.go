package planar

import (
	cag "pathkit.dev/cag"
)

// Shape is a set of closed subpaths bounding a (possibly multiply-connected,
// possibly self-overlapping) planar region. It is both the input and output
// type of the engine: [Graph.Result] produces a Shape from the faces a
// filter selects, and [BinaryResult] consumes two of them.
type Shape struct {
	Subpaths []Subpath
}

// Subpath is one closed or open chain of segments. Per spec.md's ingestion
// rule (G.1), a subpath marked Closed is implicitly closed by a straight
// line from its last segment's end back to its first segment's start when
// the author didn't already duplicate the start point as the end point (the
// usual moveTo/lineTo.../closePath idiom); HasClosingSegment/ClosingSegment
// expose that implicit edge without mutating Segments. A subpath with
// Closed false is genuinely open and never gets one.
type Subpath struct {
	Segments []Segment
	Closed   bool
}

// HasClosingSegment reports whether walking this subpath's edges requires an
// extra implicit closing edge (the subpath is closed, and its endpoints
// don't already coincide).
func (s Subpath) HasClosingSegment() bool {
	if !s.Closed || len(s.Segments) == 0 {
		return false
	}
	first := s.Segments[0].Start()
	last := s.Segments[len(s.Segments)-1].End()
	return first.Distance(last) > VertexEpsilon
}

// ClosingSegment returns the implicit line segment closing this subpath. It
// panics if HasClosingSegment is false.
func (s Subpath) ClosingSegment() Segment {
	if !s.HasClosingSegment() {
		panic("planar: subpath has no closing segment")
	}
	last := s.Segments[len(s.Segments)-1].End()
	first := s.Segments[0].Start()
	return NewLine(cag.Line{P0: last, P1: first})
}

// allSegments returns this subpath's explicit segments plus its implicit
// closing segment, if any, forming a fully closed loop.
func (s Subpath) allSegments() []Segment {
	if !s.HasClosingSegment() {
		return s.Segments
	}
	return append(append([]Segment(nil), s.Segments...), s.ClosingSegment())
}
