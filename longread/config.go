// Package longread implements the long-read path-finding core of a de
// Bruijn-graph genome assembler: k-mer anchor indexing, cluster chaining,
// gap closure by banded edit distance, and path extension/scaffolding.
//
// The package consumes a read-only Graph and KmerIndex built by the
// caller, and never reaches into process-wide configuration; every tunable
// is carried explicitly in a Config value passed to each component's
// constructor.
package longread

// Config carries every tunable read once at construction. There is no
// ambient/global configuration; callers build one Config and pass it to
// each component explicitly.
type Config struct {
	// KIndex is the k-mer length used by the index and anchor extraction.
	KIndex int
	// KGraph is the de Bruijn graph's own k, always >= KIndex.
	KGraph int

	// CompressionCutoff bounds the edge/read offset compression ratio that two
	// anchors must fall within to be considered collinear.
	CompressionCutoff float64
	// DominationCutoff is the size ratio above which one cluster dominates
	// (and hides) another on the same edge.
	DominationCutoff float64
	// MinClusterSize is the minimum number of unique anchors a cluster must
	// retain to survive filtering.
	MinClusterSize int
	// ShortEdgeCutoff is an edge-length threshold (kept at 0, matching the
	// source). No code in this package reads it: clusters on short edges are
	// neither logged nor treated differently.
	ShortEdgeCutoff int

	// LongEdge is the minimum length an edge must have to be considered a
	// scaffolding candidate.
	LongEdge int
	// MaxPaths bounds the number of extension-tree nodes explored before the
	// search gives up and returns no extensions.
	MaxPaths int
	// MPMaxLoops is the number of times a suffix may repeat before the
	// extender treats the path as cycled.
	MPMaxLoops int

	// BandWidthCoefficient and BandWidthFloor determine the banded edit
	// distance band: d = max(BandWidthFloor, min(len(a),len(b))*BandWidthCoefficient).
	BandWidthCoefficient float64
	BandWidthFloor       int

	// PathLenMinMult and PathLenMaxMult bound the candidate walk length as a
	// multiple of the read-gap length.
	PathLenMinMult float64
	PathLenMaxMult float64
}

// DefaultConfig mirrors the tunables named in spec.md/SPEC_FULL.md §6.
var DefaultConfig = Config{
	KIndex:               19,
	KGraph:               21,
	CompressionCutoff:    0.6,
	DominationCutoff:     1.5,
	MinClusterSize:       8,
	ShortEdgeCutoff:      0,
	LongEdge:             500,
	MaxPaths:             1000,
	MPMaxLoops:           2,
	BandWidthCoefficient: 1.0 / 3.0,
	BandWidthFloor:       10,
	PathLenMinMult:       0.7,
	PathLenMaxMult:       1.3,
}
