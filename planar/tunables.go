package planar

// Tunable epsilons, following dominikh-go-curve's convention of exported
// tuning constants (DefaultAccuracy, MaxExtrema in curve.go).
const (
	// VertexEpsilon is the distance under which two vertices are fused into
	// one during ingestion (G.1) and collapse (G.6).
	VertexEpsilon = 1e-5

	// OverlapParameterEpsilon is the minimum parameter-range width for an
	// overlap to be considered significant in eliminateOverlap (G.2).
	OverlapParameterEpsilon = 1e-5

	// IntersectionEndpointEpsilon is the distance, in parameter space, within
	// which an intersection is considered a touch at an existing endpoint and
	// therefore discarded by eliminateIntersection (G.4).
	IntersectionEndpointEpsilon = 1e-5

	// RayBackClipEpsilon discards ray/segment intersections behind the ray
	// origin when casting rays for hole nesting (G.11).
	RayBackClipEpsilon = 1e-8

	// CollinearTangentEpsilon is the tolerance used by
	// collapseAdjacentEdges (G.14) to decide that two consecutive Line
	// segments of an output loop are collinear and can be merged.
	CollinearTangentEpsilon = 1e-6

	// ExtremeRayAngle is the fixed ray angle used by computeBoundaryGraph
	// (G.11) to avoid axis-aligned degeneracies. Per spec.md's design notes,
	// this is a single hard-coded angle rather than a retried/perturbed one;
	// see ErrIndeterminateRay.
	ExtremeRayAngle = 1.5729657
)
