package longread

// bannedBases enumerates the four canonical bases in the same order as
// asciiToKmerMap's 2-bit encoding.
var bannedBases = [4]byte{'A', 'C', 'G', 'T'}

// BannedKmers precomputes every k-mer that is a single-base substitution
// away from a homopolymer run of length k: for every base and every
// (possibly identical) replacement base, substitute the replacement at
// every position of a run of the base. These dominate chance matches in
// long, error-prone reads and are excluded from anchor generation.
//
// When base == replacement the substitution is a no-op, so all k
// positions collapse onto the same homopolymer string; the returned set
// is therefore smaller than the naive 4*4*k the two free loops suggest.
func BannedKmers(k int) map[Kmer]bool {
	banned := map[Kmer]bool{}
	buf := make([]byte, k)
	for _, base := range bannedBases {
		for _, repl := range bannedBases {
			for pos := 0; pos < k; pos++ {
				for i := range buf {
					buf[i] = base
				}
				buf[pos] = repl
				km := asciiToKmer(string(buf))
				if km == invalidKmer {
					panic("banned k-mer generation produced an invalid k-mer")
				}
				banned[km.canonicalize(k)] = true
			}
		}
	}
	return banned
}

// canonicalize returns the minimum of km and its reverse complement,
// matching the canonical form stored in KmerIndex.
func (km Kmer) canonicalize(k int) Kmer {
	rc := km.reverseComplementOf(k)
	if rc < km {
		return rc
	}
	return km
}

// reverseComplementOf computes the reverse complement of a k-length Kmer
// directly from its 2-bit encoding, without re-scanning ASCII.
func (km Kmer) reverseComplementOf(k int) Kmer {
	var rc Kmer
	for i := 0; i < k; i++ {
		base := (km >> uint(2*i)) & 3
		rc = (rc << 2) | (3 - base)
	}
	return rc
}
