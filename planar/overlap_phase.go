package planar

import "sort"

// eliminateOverlap is G.2: find every pair of distinct edges whose geometry
// coincides along a shared sub-range and merge that sub-range into a single
// edge carrying both edges' contributions, so two input shapes that trace
// the same boundary (a typical case: two adjacent rectangles sharing a
// side) end up with exactly one shared edge rather than two coincident
// ones that would otherwise need a degenerate zero-width face between them.
func eliminateOverlap(g *Graph) error {
	for {
		merged, err := mergeOneOverlap(g)
		if err != nil {
			return err
		}
		if !merged {
			return nil
		}
	}
}

// mergeOneOverlap finds and merges a single overlapping pair, restarting
// the scan from scratch afterward since splitting invalidates edge indices
// beyond the pair just handled. It is not the most efficient approach, but
// the shape sizes spec.md's Non-goals allow (~10^4 segments) keep repeated
// O(n^2) scans affordable.
func mergeOneOverlap(g *Graph) (bool, error) {
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
			if ei.Seg.Kind() != ej.Seg.Kind() {
				continue
			}
			if !bboxOverlap(ei.Seg.Bounds(), ej.Seg.Bounds()) {
				continue
			}
			ov, ok := GetOverlaps(ei.Seg, ej.Seg)
			if !ok {
				continue
			}
			mergeOverlap(g, EdgeID(i), EdgeID(j), ov)
			return true, nil
		}
	}
	return false, nil
}

func mergeOverlap(g *Graph, a, b EdgeID, ov Overlap) {
	aPieces := g.splitEdgeAtParams(a, interiorParams(ov.TA0, ov.TA1))
	aMid := pieceFor(g, aPieces, ov.TA0, ov.TA1)

	bLo, bHi := ov.TB0, ov.TB1
	reversedB := bLo > bHi
	if reversedB {
		bLo, bHi = bHi, bLo
	}
	bPieces := g.splitEdgeAtParams(b, interiorParams(bLo, bHi))
	bMid := pieceFor(g, bPieces, bLo, bHi)

	mergedEdge := g.edges[aMid]
	bContribs := g.edges[bMid].Contribs
	if reversedB {
		bContribs = reversedContribs(bContribs)
	}
	mergedEdge.Contribs = append(append([]contribution{}, mergedEdge.Contribs...), bContribs...)

	v0, v1 := mergedEdge.V0, mergedEdge.V1
	seg := mergedEdge.Seg
	contribs := mergedEdge.Contribs

	g.removeEdge(aMid)
	g.removeEdge(bMid)
	fwd := g.addEdgeWithContribs(seg, v0, v1, contribs)
	merged := g.halfEdges[fwd].Edge
	g.spliceEdge(aMid, []EdgeID{merged})
	g.spliceEdge(bMid, []EdgeID{merged})
}

// interiorParams returns the sorted open-interval split points needed to
// isolate [lo, hi] within [0, 1], omitting endpoints that coincide with 0
// or 1 within OverlapParameterEpsilon.
func interiorParams(lo, hi float64) []float64 {
	var ts []float64
	if lo > OverlapParameterEpsilon {
		ts = append(ts, lo)
	}
	if hi < 1-OverlapParameterEpsilon {
		ts = append(ts, hi)
	}
	sort.Float64s(ts)
	return ts
}

// pieceFor returns the edge among pieces (consecutive sub-edges of the
// original, in order) whose domain corresponds to [lo, hi] in the original
// parametrization: the one immediately following however many split points
// fell at or before lo.
func pieceFor(g *Graph, pieces []EdgeID, lo, hi float64) EdgeID {
	idx := 0
	if lo > OverlapParameterEpsilon {
		idx++
	}
	if idx >= len(pieces) {
		idx = len(pieces) - 1
	}
	return pieces[idx]
}
