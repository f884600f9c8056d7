package planar

// eliminateIntersection is G.4: find every transversal crossing between two
// distinct edges (after overlap and self-intersection have already been
// resolved) and split both edges there, so every crossing becomes a shared
// vertex. Candidates already adjacent in their original input loop are
// skipped outright (two neighboring segments of the same subpath meet at
// their shared endpoint, not a new crossing); any remaining hit whose
// parameter lands within IntersectionEndpointEpsilon of an edge's existing
// endpoint is simpleSplit's job to discard rather than introduce as a
// redundant near-duplicate vertex.
func eliminateIntersection(g *Graph) error {
	for {
		split, err := splitOneIntersection(g)
		if err != nil {
			return err
		}
		if !split {
			return nil
		}
	}
}

func splitOneIntersection(g *Graph) (bool, error) {
	n := len(g.edges)
	for i := 0; i < n; i++ {
		ei := g.edges[i]
		if ei.Removed {
			continue
		}
		for j := i + 1; j < n; j++ {
			ej := g.edges[j]
			if ej.Removed {
				continue
			}
			if g.adjacentInLoop(EdgeID(i), EdgeID(j)) {
				continue
			}
			if !bboxOverlap(ei.Seg.Bounds(), ej.Seg.Bounds()) {
				continue
			}
			hits := Intersect(ei.Seg, ej.Seg)
			for _, h := range hits {
				ta, ok1 := simpleSplit(h.TA)
				tb, ok2 := simpleSplit(h.TB)
				if !ok1 && !ok2 {
					continue
				}
				if ok1 {
					g.splitEdgeAtParams(EdgeID(i), []float64{ta})
				}
				if ok2 {
					g.splitEdgeAtParams(EdgeID(j), []float64{tb})
				}
				return true, nil
			}
		}
	}
	return false, nil
}

// simpleSplit reports whether t lands strictly inside (IntersectionEndpointEpsilon,
// 1-IntersectionEndpointEpsilon), meaning a real new vertex is needed there,
// as opposed to landing close enough to an existing endpoint that splitting
// would only introduce a near-duplicate vertex findOrAddVertex would fuse
// away anyway.
func simpleSplit(t float64) (float64, bool) {
	if t <= IntersectionEndpointEpsilon || t >= 1-IntersectionEndpointEpsilon {
		return t, false
	}
	return t, true
}
