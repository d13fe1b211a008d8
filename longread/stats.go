package longread

// Stats accumulates per-read counters across a run of the long-read
// path-finding core, mirroring fusion.Stats: one value per worker, merged at
// the end.
type Stats struct {
	// ReadsProcessed is the number of reads that reached anchor location.
	ReadsProcessed int
	// AnchorsRaw is the number of anchors Locate returned, counted after
	// banned k-mers and vertex-overlap offsets were dropped.
	AnchorsRaw int
	// AnchorsBanned is a counter for k-mer hits dropped as banned
	// near-homopolymer k-mers. Locate drops them without counting, so Worker
	// leaves it at zero.
	AnchorsBanned int
	// ClustersFormed is the number of clusters surviving ClusterAndFilter.
	ClustersFormed int
	// ClustersDroppedTooSmall is a counter for clusters with fewer than
	// Config.MinClusterSize unique anchors. ClusterAndFilter drops them
	// without counting, so Worker leaves it at zero.
	ClustersDroppedTooSmall int
	// ClustersDroppedOverlap is a counter for clusters lying entirely within
	// a vertex-overlap region. ClusterAndFilter drops them without counting,
	// so Worker leaves it at zero.
	ClustersDroppedOverlap int
	// ClustersDroppedDominated is a counter for clusters dominated by a
	// larger same-edge cluster. ClusterAndFilter drops them without counting,
	// so Worker leaves it at zero.
	ClustersDroppedDominated int
	// ChainsEmitted is the number of chains BuildChains produced.
	ChainsEmitted int
	// GapsClosed is the number of adjacent cluster pairs in emitted chains
	// that raised no diagnostic, including same-edge pairs, which need no
	// connecting walk.
	GapsClosed int
	// GapsUnclosed is the number of diagnostics CloseChain raised while
	// closing chain gaps (GapUnclosed or DegenerateInput).
	GapsUnclosed int
	// PathsExplored is the total number of terminated branches (ExtendResult
	// values) Extend returned across ExtendRead calls; intermediate
	// extension-tree nodes are not counted.
	PathsExplored int
	// PathExplosions is the number of Extend calls that aborted with a
	// PathExplosion diagnostic.
	PathExplosions int
}

// Merge adds the field values of s and o and returns a new Stats, following
// the same accumulate-by-value pattern as fusion.Stats.Merge so per-worker
// totals can be folded into a single run total without shared mutable
// state.
func (s Stats) Merge(o Stats) Stats {
	s.ReadsProcessed += o.ReadsProcessed
	s.AnchorsRaw += o.AnchorsRaw
	s.AnchorsBanned += o.AnchorsBanned
	s.ClustersFormed += o.ClustersFormed
	s.ClustersDroppedTooSmall += o.ClustersDroppedTooSmall
	s.ClustersDroppedOverlap += o.ClustersDroppedOverlap
	s.ClustersDroppedDominated += o.ClustersDroppedDominated
	s.ChainsEmitted += o.ChainsEmitted
	s.GapsClosed += o.GapsClosed
	s.GapsUnclosed += o.GapsUnclosed
	s.PathsExplored += o.PathsExplored
	s.PathExplosions += o.PathExplosions
	return s
}
