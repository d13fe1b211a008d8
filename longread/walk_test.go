package longread

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

// buildLinearGraph builds a-b-c-d, a single unbranched path, for tests that
// need deterministic walk enumeration.
func buildLinearGraph(t *testing.T, segs ...string) (*MemGraph, []EdgeID) {
	g := NewMemGraph(4)
	var edges []EdgeID
	prev := g.NewVertex()
	prevConj := g.NewVertex()
	for _, s := range segs {
		v := g.NewVertex()
		vConj := g.NewVertex()
		fwd, _ := g.AddEdgePair(prev, v, s, vConj, prevConj)
		edges = append(edges, fwd)
		prev, prevConj = v, vConj
	}
	return g, edges
}

func TestEnumerateWalksSingleLinearPath(t *testing.T) {
	g, edges := buildLinearGraph(t, "AAAAA", "CCCCC", "GGGGG")
	start := g.Start(edges[0])
	end := g.End(edges[len(edges)-1])
	walks := EnumerateWalks(g, start, end, 0, 100)
	expect.EQ(t, len(walks), 1)
	expect.EQ(t, len(walks[0]), 3)
}

func TestEnumerateWalksRespectsLengthBounds(t *testing.T) {
	g, edges := buildLinearGraph(t, "AAAAA", "CCCCC")
	start := g.Start(edges[0])
	end := g.End(edges[len(edges)-1])
	// Each edge has Length 5-4+1 = 2, so the total is 4; a max length of 1
	// must exclude it.
	walks := EnumerateWalks(g, start, end, 0, 1)
	expect.EQ(t, len(walks), 0)
}

func TestEnumerateWalksBranching(t *testing.T) {
	g := NewMemGraph(4)
	v0, v0c := g.NewVertex(), g.NewVertex()
	v1, v1c := g.NewVertex(), g.NewVertex()
	v2a, v2ac := g.NewVertex(), g.NewVertex()
	v2b, v2bc := g.NewVertex(), g.NewVertex()
	_, _ = g.AddEdgePair(v0, v1, "AAAA", v1c, v0c)
	ea, _ := g.AddEdgePair(v1, v2a, "CCCC", v2ac, v1c)
	eb, _ := g.AddEdgePair(v1, v2b, "GGGG", v2bc, v1c)
	_ = ea
	_ = eb

	walksA := EnumerateWalks(g, v0, v2a, 0, 100)
	walksB := EnumerateWalks(g, v0, v2b, 0, 100)
	expect.EQ(t, len(walksA), 1)
	expect.EQ(t, len(walksB), 1)
}

func TestConcatSeqTruncatesOverlap(t *testing.T) {
	g, edges := buildLinearGraph(t, "AAAACC", "CCGGGG")
	w := Walk{edges[0], edges[1]}
	got := ConcatSeq(g, w)
	// kGraph=4: Length(e) = len(seq)-3, so each edge contributes len(seq)-3
	// bases; overlap bases are excluded from the first edge.
	expect.EQ(t, len(got), g.Length(edges[0])+g.Length(edges[1]))
}
