package longread

import (
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/bio/biosimd"
)

const invalidKmerBits = uint8(255)

var (
	asciiToKmerMap                  [256]uint8
	asciiToReverseComplementKmerMap [256]uint8
)

func init() {
	for i := range asciiToKmerMap {
		asciiToKmerMap[i] = invalidKmerBits
		asciiToReverseComplementKmerMap[i] = invalidKmerBits
	}
	asciiToKmerMap['A'] = 0
	asciiToKmerMap['a'] = 0
	asciiToKmerMap['C'] = 1
	asciiToKmerMap['c'] = 1
	asciiToKmerMap['G'] = 2
	asciiToKmerMap['g'] = 2
	asciiToKmerMap['T'] = 3
	asciiToKmerMap['t'] = 3

	asciiToReverseComplementKmerMap['A'] = 3
	asciiToReverseComplementKmerMap['a'] = 3
	asciiToReverseComplementKmerMap['C'] = 2
	asciiToReverseComplementKmerMap['c'] = 2
	asciiToReverseComplementKmerMap['G'] = 1
	asciiToReverseComplementKmerMap['g'] = 1
	asciiToReverseComplementKmerMap['T'] = 0
	asciiToReverseComplementKmerMap['t'] = 0
}

// Kmer is a compact 2-bit-per-base encoding of a sequence of ACGT, up to 32
// bases.
type Kmer uint64

// invalidKmer is a sentinel kmer returned when an input contains a
// non-ACGT base.
const invalidKmer = Kmer(0xffffffffffffffff)

// kmerAtPos is one k-mer occurrence during a scan: its position plus both
// strand encodings, so the canonical (minimum) form can be picked without
// rescanning.
type kmerAtPos struct {
	pos                       int
	forward, reverseComplement Kmer
}

func (km kmerAtPos) minKmer() Kmer {
	if km.forward < km.reverseComplement {
		return km.forward
	}
	return km.reverseComplement
}

// kmerizer slides a k-mer window across a sequence, maintaining the forward
// and reverse-complement encodings incrementally (two bits shifted in/out
// per base) rather than re-encoding the whole window every step.
type kmerizer struct {
	kmerLength int
	tmpSeq     []byte
	mask       Kmer

	seq string
	si  int
	cur kmerAtPos
}

func newKmerizer(kmerLength int) *kmerizer {
	return &kmerizer{
		kmerLength: kmerLength,
		mask:       ^(Kmer(0xffffffffffffffff) << Kmer(kmerLength*2)),
	}
}

func asciiToKmer(seq string) Kmer {
	var k Kmer
	for _, ch := range []byte(seq) {
		b := asciiToKmerMap[ch]
		if b == invalidKmerBits {
			return invalidKmer
		}
		k = (k << 2) | Kmer(b)
	}
	return k
}

func nextAmbiguousPosition(seq string, si int) int {
	for i := si; i < len(seq); i++ {
		if asciiToKmerMap[seq[i]] == invalidKmerBits {
			return i
		}
	}
	return len(seq)
}

func (k *kmerizer) Reset(seq string) {
	k.seq = seq
	k.si = 0
}

// Scan advances to the next valid k-mer position, skipping over runs
// containing ambiguous bases. Returns false once the sequence is
// exhausted.
func (k *kmerizer) Scan() bool {
	if k.si > 0 && k.si+k.kmerLength <= len(k.seq) {
		nextCh := k.seq[k.si+k.kmerLength-1]
		if bits := asciiToKmerMap[nextCh]; bits != invalidKmerBits {
			k.cur.pos = k.si
			k.cur.forward = ((k.cur.forward << 2) | Kmer(bits)) & k.mask
			shift := (Kmer(k.kmerLength) - 1) * 2
			k.cur.reverseComplement = (k.cur.reverseComplement >> 2) | (Kmer(asciiToReverseComplementKmerMap[nextCh]) << shift)
			k.si++
			return true
		}
	}

	for k.si+k.kmerLength <= len(k.seq) {
		forwardStr := k.seq[k.si : k.si+k.kmerLength]
		forwardKmer := asciiToKmer(forwardStr)
		if forwardKmer == invalidKmer {
			k.si = nextAmbiguousPosition(k.seq, k.si) + 1
			continue
		}
		if cap(k.tmpSeq) < k.kmerLength {
			k.tmpSeq = make([]byte, k.kmerLength)
		}
		k.tmpSeq = k.tmpSeq[:k.kmerLength]
		biosimd.ReverseComp8NoValidate(k.tmpSeq, gunsafe.StringToBytes(forwardStr))
		reverseKmer := asciiToKmer(gunsafe.BytesToString(k.tmpSeq))
		if reverseKmer == invalidKmer {
			panic("reverse complement of a valid k-mer cannot be invalid")
		}
		k.cur = kmerAtPos{pos: k.si, forward: forwardKmer, reverseComplement: reverseKmer}
		k.si++
		return true
	}
	return false
}

func (k *kmerizer) Get() kmerAtPos { return k.cur }
