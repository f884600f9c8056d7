package planar

// loop is the per-input-subpath identity threaded through ingestion
// (spec.md §4.G.1). Edges keep a reference to the loop they came from so
// later phases (notably eliminateSelfIntersection, which must not flag a
// segment's shared endpoint with its own neighbor as a spurious
// self-intersection) can tell "adjacent in the original subpath" apart from
// "coincidentally touching."
type loop struct {
	ShapeID int
	Closed  bool
	// Edges lists this loop's edges in subpath order. Splitting and merging
	// phases keep it live: spliceEdge replaces a rewritten edge's id in place
	// with the ids of its replacement pieces, preserving the order.
	Edges []EdgeID
}

func (g *Graph) addLoop(shapeID int, closed bool) LoopID {
	g.loops = append(g.loops, loop{ShapeID: shapeID, Closed: closed})
	return LoopID(len(g.loops) - 1)
}

// adjacentInLoop reports whether edges a and b are consecutive (or the same)
// in some input subpath they both still carry a contribution for, in either
// order. An edge can carry contributions from several loops once
// eliminateOverlap (G.2) has merged coincident edges, so every pairing of
// a's and b's contributions sharing a loop is checked.
func (g *Graph) adjacentInLoop(a, b EdgeID) bool {
	if a == b {
		return true
	}
	for _, ca := range g.edges[a].Contribs {
		for _, cb := range g.edges[b].Contribs {
			if ca.Loop != cb.Loop {
				continue
			}
			l := g.loops[ca.Loop]
			ia, ib := indexOf(l.Edges, a), indexOf(l.Edges, b)
			if ia < 0 || ib < 0 {
				continue
			}
			n := len(l.Edges)
			d := ia - ib
			if d < 0 {
				d = -d
			}
			if d == 1 {
				return true
			}
			if l.Closed && n > 2 && d == n-1 {
				return true
			}
		}
	}
	return false
}

// spliceEdge replaces every occurrence of old across every loop's Edges with
// replacement, in place and order-preserving. Splitting phases (G.2-G.4)
// call this after dividing an edge into pieces (or merging several into
// one) so each loop's traversal order stays accurate across the rewrite,
// per spec.md's Loop invariant that its edge sequence is "preserved across
// splits." An edge carrying contributions from several input loops (after
// eliminateOverlap has merged coincident edges) is spliced in every one of
// them, since old may appear in more than one loop's Edges.
func (g *Graph) spliceEdge(old EdgeID, replacement []EdgeID) {
	for i := range g.loops {
		edges := g.loops[i].Edges
		idx := indexOf(edges, old)
		if idx < 0 {
			continue
		}
		next := make([]EdgeID, 0, len(edges)-1+len(replacement))
		next = append(next, edges[:idx]...)
		next = append(next, replacement...)
		next = append(next, edges[idx+1:]...)
		g.loops[i].Edges = next
	}
}

func indexOf(s []EdgeID, v EdgeID) int {
	for i, e := range s {
		if e == v {
			return i
		}
	}
	return -1
}
