package longread

import "github.com/grailbio/base/log"

// AlignedRead is the final per-read output of the pipeline: every walk the
// read was resolved to, in chain order (ascending first read offset of each
// chain's first cluster, as BuildChains returns them, with a split chain's
// segments in read order), plus any
// diagnostics raised along the way and per-read counters folded into the
// worker's running Stats.
type AlignedRead struct {
	ReadID      string
	Walks       []Walk
	Diagnostics []Diagnostic
}

// Worker bundles the private, per-goroutine state needed to process reads
// against one shared, read-only Graph/KmerIndex: a DistanceCache (§5, never
// shared across workers) and an accumulating Stats. Callers run one Worker
// per goroutine and Merge their Stats when done, the same single-threaded-
// per-invocation/parallel-across-reads split fusion uses for its Stats.
type Worker struct {
	cfg    Config
	g      Graph
	idx    *KmerIndex
	banned map[Kmer]bool
	oracle PairedInfoOracle
	cov    CoverageMap
	dc     *DistanceCache
	Stats  Stats
}

// NewWorker constructs a Worker bound to the shared, read-only graph state.
// oracle and cov may be nil, in which case bubble resolution and tip
// scaffolding are skipped and Extend only follows unambiguous graph edges.
func NewWorker(cfg Config, g Graph, idx *KmerIndex, banned map[Kmer]bool, oracle PairedInfoOracle, cov CoverageMap) *Worker {
	return &Worker{
		cfg:    cfg,
		g:      g,
		idx:    idx,
		banned: banned,
		oracle: oracle,
		cov:    cov,
		dc:     NewDistanceCache(g),
	}
}

// AlignRead runs one read through the full core: anchor location,
// clustering, chaining, and gap closure. Path extension/scaffolding beyond
// the chained clusters is left to the caller via Extend, since it requires
// a target search distance the core cannot infer from the read alone.
func (w *Worker) AlignRead(readID, read string) AlignedRead {
	w.Stats.ReadsProcessed++

	perEdge := Locate(w.cfg, w.g, w.idx, w.banned, read)
	for _, anchors := range perEdge {
		w.Stats.AnchorsRaw += len(anchors)
	}

	clusters := ClusterAndFilter(w.cfg, w.g, perEdge)
	w.Stats.ClustersFormed += len(clusters)
	if len(clusters) == 0 {
		return AlignedRead{
			ReadID:      readID,
			Diagnostics: []Diagnostic{{Kind: NoHits, ReadID: readID, Detail: "no clusters survived filtering"}},
		}
	}

	chains := BuildChains(w.cfg, w.g, w.dc, len(read), clusters)
	w.Stats.ChainsEmitted += len(chains)

	var walks []Walk
	var diags []Diagnostic
	for _, chain := range chains {
		segments, chainDiags := CloseChain(w.cfg, w.g, readID, read, chain)
		for range chainDiags {
			w.Stats.GapsUnclosed++
		}
		closedGaps := len(chain.Clusters) - 1 - len(chainDiags)
		if closedGaps > 0 {
			w.Stats.GapsClosed += closedGaps
		}
		diags = append(diags, chainDiags...)
		walks = append(walks, segments...)
	}

	if len(diags) > 0 {
		log.Debug.Printf("longread: %s: %d diagnostic(s) during chain closure", readID, len(diags))
	}

	return AlignedRead{ReadID: readID, Walks: walks, Diagnostics: diags}
}

// ExtendRead grows every walk produced by AlignRead outward by searchDist
// bases using Extend, deduplicating the results with JoinByGraph. It is
// kept separate from AlignRead because scaffolding needs paired-end and
// coverage collaborators that may not be available to every caller (e.g.
// tests exercising chaining alone).
func (w *Worker) ExtendRead(aligned AlignedRead, searchDist int) ([]ExtendResult, []Diagnostic) {
	var all []ExtendResult
	var diags []Diagnostic
	for _, walk := range aligned.Walks {
		if len(walk) == 0 {
			continue
		}
		startVertex := w.g.End(walk[len(walk)-1])
		results, d := Extend(w.cfg, w.g, w.oracle, w.cov, walk, startVertex, searchDist)
		w.Stats.PathsExplored += len(results)
		if len(d) > 0 {
			w.Stats.PathExplosions++
		}
		diags = append(diags, d...)
		all = append(all, results...)
	}
	return JoinByGraph(all), diags
}
