package longread

import (
	"testing"

	"github.com/grailbio/testutil/expect"
)

func TestReverseComplementOfIsInvolution(t *testing.T) {
	k := 8
	km := asciiToKmer("ACGTACGT")
	expect.EQ(t, km.reverseComplementOf(k).reverseComplementOf(k), km)
}

func TestReverseComplementOfKnownValue(t *testing.T) {
	// revcomp("AAAAT") == "ATTTT"
	fwd := asciiToKmer("AAAAT")
	want := asciiToKmer("ATTTT")
	expect.EQ(t, fwd.reverseComplementOf(5), want)
}

func TestBannedKmersCollapsesIdentityReplacement(t *testing.T) {
	k := 5
	banned := BannedKmers(k)
	// Homopolymer runs of every base must be present.
	for _, b := range bannedBases {
		buf := make([]byte, k)
		for i := range buf {
			buf[i] = b
		}
		km := asciiToKmer(string(buf)).canonicalize(k)
		expect.True(t, banned[km])
	}
	// The identity-replacement collapse means the set is strictly smaller
	// than the naive 4*4*k upper bound.
	expect.True(t, len(banned) < 4*4*k)
}

func TestCanonicalizePicksMinimum(t *testing.T) {
	k := 4
	km := asciiToKmer("AAAC")
	canon := km.canonicalize(k)
	rc := km.reverseComplementOf(k)
	if km < rc {
		expect.EQ(t, canon, km)
	} else {
		expect.EQ(t, canon, rc)
	}
}
