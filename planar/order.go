package planar

import (
	"math"
	"sort"
)

// orderVertexEdges is G.9: sort every vertex's departing half-edges into
// counterclockwise order by outgoing tangent angle. extractFaces (G.10)
// depends on this order to find, for each half-edge, the next half-edge
// around its destination vertex.
func orderVertexEdges(g *Graph) error {
	for v := range g.vertices {
		out := g.vertices[v].Out
		live := out[:0:0]
		for _, he := range out {
			if !g.edges[g.halfEdges[he].Edge].Removed {
				live = append(live, he)
			}
		}
		angle := make(map[HalfEdgeID]float64, len(live))
		for _, he := range live {
			tangent := g.Segment(he).TangentAt(0)
			angle[he] = math.Atan2(tangent.Y, tangent.X)
		}
		sort.Slice(live, func(i, j int) bool { return angle[live[i]] < angle[live[j]] })
		g.vertices[v].Out = live
	}
	return nil
}
