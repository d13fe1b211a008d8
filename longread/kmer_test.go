package longread

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func listKmers(seq string, k int) []kmerAtPos {
	kz := newKmerizer(k)
	kz.Reset(seq)
	var out []kmerAtPos
	for kz.Scan() {
		out = append(out, kz.Get())
	}
	return out
}

func TestKmerizerForwardMatchesNaiveEncoding(t *testing.T) {
	seq := "AAAGTTCAGGT"
	k := 5
	got := listKmers(seq, k)
	expect.EQ(t, len(got), len(seq)-k+1)
	for _, km := range got {
		want := asciiToKmer(seq[km.pos : km.pos+k])
		expect.EQ(t, km.forward, want)
	}
}

func TestKmerizerReverseComplementIsInvolution(t *testing.T) {
	seq := "ACGTACGTTGCA"
	k := 6
	for _, km := range listKmers(seq, k) {
		rc := km.reverseComplement
		// Re-deriving the forward encoding of the reverse-complement string
		// and re-complementing it must return to the forward encoding.
		expect.EQ(t, rc.reverseComplementOf(k), km.forward)
	}
}

func TestKmerizerSkipsAmbiguousBases(t *testing.T) {
	seq := "ACGTNACGTAC"
	k := 4
	got := listKmers(seq, k)
	for _, km := range got {
		for i := km.pos; i < km.pos+k; i++ {
			expect.True(t, seq[i] != 'N')
		}
	}
}

func TestMinKmerPicksSmaller(t *testing.T) {
	km := kmerAtPos{forward: 5, reverseComplement: 3}
	expect.EQ(t, km.minKmer(), Kmer(3))
	km2 := kmerAtPos{forward: 2, reverseComplement: 9}
	expect.EQ(t, km2.minKmer(), Kmer(2))
}
