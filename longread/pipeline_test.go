package longread

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func testConfig() Config {
	cfg := DefaultConfig
	cfg.KIndex = 15
	cfg.KGraph = 15
	cfg.MinClusterSize = 5
	cfg.BandWidthFloor = 5
	cfg.MaxPaths = 200
	return cfg
}

func TestAlignReadCleanMultiEdgeSpan(t *testing.T) {
	cfg := testConfig()
	seg1 := "ACGTGGCATTACGGTACCTGACTGATCGGATCCAGTGCATGGTACCGTAG"
	seg2 := "CTAGCATCGTAGCATCGTACGTACGGATCGTAGCTAGCTAGCTGATCGAT"
	seg3 := "CGTAGCTAGCATGTTCGACTGGAACCTTGGAACGTCAGTTCCAGGTACCA"
	g, edges := buildLinearGraph(t, seg1, seg2, seg3)
	idx := BuildKmerIndex(g, edges, cfg.KIndex)
	banned := BannedKmers(cfg.KIndex)

	read := ConcatSeq(g, Walk{edges[0], edges[1], edges[2]})

	w := NewWorker(cfg, g, idx, banned, nil, nil)
	aligned := w.AlignRead("read1", read)

	expect.True(t, len(aligned.Walks) >= 1)
	seen := map[EdgeID]bool{}
	for _, walk := range aligned.Walks {
		for _, e := range walk {
			seen[e] = true
		}
	}
	expect.True(t, seen[edges[0]])
}

func TestAlignReadNoHitsOnShortRead(t *testing.T) {
	cfg := testConfig()
	g, edges := buildLinearGraph(t, "ACGTGGCATTACGGTACCTGACTGATCGGATCCAGTGCATGGTACCGTAG")
	idx := BuildKmerIndex(g, edges, cfg.KIndex)
	banned := BannedKmers(cfg.KIndex)

	w := NewWorker(cfg, g, idx, banned, nil, nil)
	// Shorter than KIndex: the kmerizer can never scan a single k-mer, so no
	// anchors are ever located.
	aligned := w.AlignRead("short", "ACGT")

	expect.EQ(t, len(aligned.Walks), 0)
	expect.EQ(t, len(aligned.Diagnostics), 1)
	expect.EQ(t, aligned.Diagnostics[0].Kind, NoHits)
}

func TestExtendGrowsAlongUnbranchedPath(t *testing.T) {
	cfg := testConfig()
	g, edges := buildLinearGraph(t, "AAAAACCCCC", "GGGGGTTTTT", "ACGTACGTAC")
	init := Walk{edges[0]}
	start := g.End(edges[0])
	results, diags := Extend(cfg, g, nil, nil, init, start, 5)
	expect.EQ(t, len(diags), 0)
	expect.True(t, len(results) >= 1)
	for _, r := range results {
		expect.True(t, len(r.Walk) >= len(init))
	}
}

func TestExtendStopsAtTipWithNoScaffolder(t *testing.T) {
	cfg := testConfig()
	g, edges := buildLinearGraph(t, "AAAAACCCCC")
	init := Walk{edges[0]}
	start := g.End(edges[0])
	results, diags := Extend(cfg, g, nil, nil, init, start, 100)
	expect.EQ(t, len(diags), 0)
	expect.EQ(t, len(results), 1)
	expect.EQ(t, results[0].State, stoppedTip)
}

func TestDistanceCachePathLengthsFindsDirectEdge(t *testing.T) {
	g, edges := buildLinearGraph(t, "AAAAACCCCC", "GGGGGTTTTT")
	dc := NewDistanceCache(g)
	lens := dc.PathLengths(g.End(edges[0]), g.Start(edges[1]), 100)
	expect.EQ(t, len(lens), 1)
	expect.EQ(t, lens[0], 0)
}

func TestBuildChainsGroupsCollinearClusters(t *testing.T) {
	cfg := testConfig()
	g, edges := buildLinearGraph(t, stringOfLen(200), stringOfLen(200))
	dc := NewDistanceCache(g)
	c1 := Cluster{Edge: edges[0], Anchors: synthCollinearRun(10, 20, 20)}
	c2 := Cluster{Edge: edges[1], Anchors: synthCollinearRun(10, 20, 150)}
	chains := BuildChains(cfg, g, dc, 300, []Cluster{c1, c2})
	expect.True(t, len(chains) >= 1)
}
