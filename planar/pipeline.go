package planar

// Result runs every phase of the pipeline over g's ingested shapes in
// order (G.2 through G.15) and returns the Shape formed by the faces
// filter selects. It is the single entry point every other convenience in
// this package (BinaryResult) is built on.
func (g *Graph) Result(filter Filter) (Shape, error) {
	phases := []func(*Graph) error{
		eliminateOverlap,
		eliminateSelfIntersection,
		eliminateIntersection,
		collapseVertices,
		removeBridges,
		removeSingleEdgeVertices,
		orderVertexEdges,
		extractFaces,
		computeBoundaryGraph,
		computeWindingMap,
	}
	for _, phase := range phases {
		if err := phase(g); err != nil {
			return Shape{}, err
		}
	}
	if err := computeFaceInclusion(g, filter); err != nil {
		return Shape{}, err
	}
	kept, included := createFilledSubGraph(g)
	return facesToShape(g, kept, included), nil
}

// BinaryOp is one of the four standard boolean combinations of two shapes,
// as a convenience over the general Filter interface (spec.md §4.G.16).
type BinaryOp int

const (
	OpUnion BinaryOp = iota
	OpIntersection
	OpDifference
	OpXOR
)

// BinaryResult combines exactly two shapes with op and returns the result.
// It is a thin convenience wrapper: build a fresh Graph, ingest a as shape
// 0 and b as shape 1, and run Result with the matching Filter.
func BinaryResult(a, b Shape, op BinaryOp) (Shape, error) {
	g := NewGraph()
	idA, err := g.AddShape(a)
	if err != nil {
		return Shape{}, err
	}
	idB, err := g.AddShape(b)
	if err != nil {
		return Shape{}, err
	}

	var filter Filter
	switch op {
	case OpUnion:
		filter = Union(idA, idB)
	case OpIntersection:
		filter = Intersection(idA, idB)
	case OpDifference:
		filter = Difference(idA, idB)
	case OpXOR:
		filter = XOR(idA, idB)
	default:
		return Shape{}, wrapf(ErrInvalidGeometry, "unknown binary operation %d", op)
	}

	return g.Result(filter)
}
