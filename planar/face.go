package planar

// face pairs an outer boundary with the hole boundaries nested directly
// inside it (G.11) and, once computeWindingMap (G.12) has run, a signed
// winding number per input shape. Included is set by computeFaceInclusion
// (G.13) from the caller's filter.
type face struct {
	Outer    BoundaryID
	Holes    []BoundaryID
	Winding  map[int]int
	Included bool
}

func (g *Graph) addFace(outer BoundaryID, holes []BoundaryID) FaceID {
	id := FaceID(len(g.faces))
	g.faces = append(g.faces, face{Outer: outer, Holes: holes, Winding: map[int]int{}})
	return id
}

// Winding returns the signed winding number face id has with respect to
// shapeID, 0 if the shape never wound around it.
func (g *Graph) Winding(id FaceID, shapeID int) int {
	return g.faces[id].Winding[shapeID]
}

// faceBoundaries returns every boundary (outer and holes) belonging to face id.
func (g *Graph) faceBoundaries(id FaceID) []BoundaryID {
	f := g.faces[id]
	return append([]BoundaryID{f.Outer}, f.Holes...)
}
