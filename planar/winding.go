package planar

// computeWindingMap is G.12: propagate each input shape's signed winding
// number across every face by a BFS over the face adjacency graph (two
// faces are adjacent when they share an edge), starting from whichever
// faces border the unbounded exterior (winding 0 for every shape, per
// spec.md §8's unbounded-face invariant) and applying, at each edge
// crossing, the differential every contributing shape's loop carries: a
// shape's winding decreases by one crossing in the same rotational sense
// as its boundary and increases crossing against it.
func computeWindingMap(g *Graph) error {
	boundaryFace := make(map[BoundaryID]FaceID, 2*len(g.faces))
	for fid, f := range g.faces {
		boundaryFace[f.Outer] = FaceID(fid)
		for _, h := range f.Holes {
			boundaryFace[h] = FaceID(fid)
		}
	}

	visited := make([]bool, len(g.faces))
	type queued struct {
		face    FaceID
		winding map[int]int
	}
	var queue []queued

	neighborFaceOf := func(he HalfEdgeID) (FaceID, bool) {
		twinBoundary := g.halfEdges[g.Twin(he)].Boundary
		fid, ok := boundaryFace[twinBoundary]
		return fid, ok
	}

	crossingDelta := func(cur map[int]int, he HalfEdgeID) map[int]int {
		h := g.halfEdges[he]
		next := make(map[int]int, len(cur))
		for k, v := range cur {
			next[k] = v
		}
		for _, c := range g.edges[h.Edge].Contribs {
			agree := h.Forward == c.Forward
			if agree {
				next[c.ShapeID]--
			} else {
				next[c.ShapeID]++
			}
		}
		return next
	}

	// Seed with every face that borders the unbounded exterior directly.
	for fid, f := range g.faces {
		if visited[fid] {
			continue
		}
		for _, he := range g.Boundary(f.Outer) {
			if _, ok := neighborFaceOf(he); ok {
				continue
			}
			w := crossingDelta(map[int]int{}, g.Twin(he))
			visited[fid] = true
			g.faces[fid].Winding = w
			queue = append(queue, queued{FaceID(fid), w})
			break
		}
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, b := range g.faceBoundaries(cur.face) {
			for _, he := range g.Boundary(b) {
				nfid, ok := neighborFaceOf(he)
				if !ok || visited[nfid] {
					continue
				}
				w := crossingDelta(cur.winding, he)
				visited[nfid] = true
				g.faces[nfid].Winding = w
				queue = append(queue, queued{nfid, w})
			}
		}
	}

	// Any face unreached by the exterior-seeded BFS is a consistency
	// failure: bridge/single-edge pruning (G.7/G.8) should already
	// guarantee every face connects back to the unbounded exterior through
	// some chain of shared edges, so a gap here means the subdivision is
	// malformed rather than that the face is legitimately isolated.
	for fid := range g.faces {
		if !visited[fid] {
			return wrapf(ErrNumericalFailure, "face %d unreachable during winding propagation", fid)
		}
	}
	return nil
}
