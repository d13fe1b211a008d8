package longread

// Path is an opaque handle to a caller-maintained path object, used only as
// an argument/return type for PairedInfoOracle and CoverageMap; this
// package never constructs or inspects one.
type Path interface{}

// PairedInfoOracle is the external collaborator the Path Extender consults
// for paired-end-derived distance and support evidence (§4.E, §6). The
// core never computes paired-info statistics itself.
type PairedInfoOracle interface {
	// CountPairInfo returns the weight of paired-end support for extending
	// path[fromIdx:toIdx] with candidate at the given gap.
	CountPairInfo(path Walk, fromIdx, toIdx int, candidate EdgeID, gap int) float64
	// FindJumpCandidates appends to out every edge whose paired-end
	// statistics place it within [minDist, maxDist] of edge and whose
	// length is at least minLen.
	FindJumpCandidates(edge EdgeID, minDist, maxDist, minLen int, out []EdgeID) []EdgeID
	// FindJumpEdges appends to out every edge in candidates with
	// paired-info-estimated distance from edge within [minDist, maxDist].
	FindJumpEdges(edge EdgeID, candidates []EdgeID, minDist, maxDist int, out []EdgeID) []EdgeID
	// LeftVariance returns the standard deviation used to compute the
	// search window's left slack (σ_left in §4.E step 1).
	LeftVariance() float64
	// HasPairInfo reports whether any paired-end linkage exists between e1
	// and e2 within [minDist, maxDist].
	HasPairInfo(e1, e2 EdgeID, minDist, maxDist int) bool
}

// CoverageMap is the external collaborator providing per-edge coverage and
// the set of known paths already covering an edge, used to break bubble
// ties and to detect when a candidate edge is already part of the
// extension's own history (§4.E).
type CoverageMap interface {
	// CoveringPaths returns every known path that covers e.
	CoveringPaths(e EdgeID) []Path
	// Coverage returns a coverage depth estimate for e.
	Coverage(e EdgeID) uint32
}
