package planar

// VertexID indexes into Graph.vertices. Ids start at zero, so the zero
// value is the first vertex; NoVertex is used as an explicit "none".
type VertexID int

// EdgeID indexes into Graph.edges.
type EdgeID int

// HalfEdgeID indexes into Graph.halfEdges. Half-edges are allocated in
// forward/reverse pairs, so a half-edge's twin is always the other member of
// its pair (see Graph.Twin).
type HalfEdgeID int

// LoopID indexes into Graph.loops, one per input subpath.
type LoopID int

// BoundaryID indexes into Graph.boundaries, one per maximal half-edge cycle
// produced by extractFaces (G.10).
type BoundaryID int

// FaceID indexes into Graph.faces, one per outer boundary once holes have
// been nested under it (G.11).
type FaceID int

// NoVertex, NoHalfEdge, NoBoundary, and NoFace are sentinel "absent" values, used
// where -1 is clearer than a boolean alongside a zero id.
const (
	NoVertex    VertexID   = -1
	NoHalfEdge  HalfEdgeID = -1
	NoBoundary  BoundaryID = -1
	NoFace      FaceID     = -1
)
