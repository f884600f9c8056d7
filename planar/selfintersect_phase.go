package planar

// eliminateSelfIntersection is G.3: split every cubic edge that crosses
// itself into three pieces at its self-intersection point, so the crossing
// becomes a degree-4 vertex like any other. Lines, quadratics, and arcs
// cannot self-intersect (their control points are never wound tightly
// enough within a single segment) and are skipped; spec.md's Glossary
// limits GetSelfIntersection to the cubic case for the same reason.
func eliminateSelfIntersection(g *Graph) error {
	for i := 0; i < len(g.edges); i++ {
		e := g.edges[i]
		if e.Removed {
			continue
		}
		c, ok := Cubic(e.Seg)
		if !ok {
			continue
		}
		si, ok := GetSelfIntersection(c)
		if !ok {
			continue
		}
		g.splitEdgeAtParams(EdgeID(i), []float64{si.T0, si.T1})
	}
	return nil
}
