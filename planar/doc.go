// Package planar implements a constructive area geometry (CAG) engine for 2D
// planar regions bounded by curved subpaths.
//
// Given two or more shapes, each a set of closed subpaths of line, quadratic,
// cubic, and arc segments, [Graph] resolves them into a planar subdivision (a
// doubly-connected edge list of vertices, edges, and faces), assigns each
// face a per-shape winding number, and re-emits the faces selected by a
// filter function as a new [Shape]. [BinaryResult] wraps this for the common
// case of combining exactly two shapes with [Union], [Intersection],
// [Difference], or [XOR].
//
// The pipeline is the planar-subdivision half of a curve renderer: it
// consumes already-built segment objects (see [Segment]) and never
// constructs or draws them; shape construction and rendering are the
// caller's job.
package planar
