package longread

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestBuildKmerIndexFindsExactOccurrence(t *testing.T) {
	g, edges := buildLinearGraph(t, "ACGTACGTACGT")
	idx := BuildKmerIndex(g, edges, 5)
	km := asciiToKmer("ACGTA").canonicalize(5)
	expect.True(t, idx.Contains(km))
	occs := idx.Lookup(km)
	expect.True(t, len(occs) > 0)
	for _, o := range occs {
		expect.EQ(t, o.Edge, edges[0])
	}
}

func TestBuildKmerIndexMissingKmer(t *testing.T) {
	g, edges := buildLinearGraph(t, "AAAAAAAAAA")
	idx := BuildKmerIndex(g, edges, 5)
	km := asciiToKmer("CCCCC").canonicalize(5)
	expect.False(t, idx.Contains(km))
	expect.EQ(t, len(idx.Lookup(km)), 0)
}

func TestBuildKmerIndexCanonicalFormMergesStrand(t *testing.T) {
	// A sequence and its reverse complement must hash to the same canonical
	// entry and therefore the same occurrence count.
	g, edges := buildLinearGraph(t, "ACGTTGCA")
	idx := BuildKmerIndex(g, edges, 4)
	fwd := asciiToKmer("CGTT").canonicalize(4)
	rc := asciiToKmer("CGTT").reverseComplementOf(4).canonicalize(4)
	expect.EQ(t, fwd, rc)
	expect.EQ(t, len(idx.Lookup(fwd)), len(idx.Lookup(rc)))
	expect.EQ(t, len(idx.Lookup(fwd)), 1)
}
