package longread

import (
	"sort"

	farm "github.com/dgryski/go-farm"
)

// nIndexShard is the number of shards the k-mer index is split into. The
// low bits of farmhash(kmer) (the hash modulo nIndexShard) pick the shard,
// mirroring the sharding
// technique in fusion/kmer_index.go, at far smaller scale: a de Bruijn
// graph's k-mer universe is orders of magnitude smaller than a
// transcriptome's, so a plain per-shard Go map suffices in place of the
// mmap'd linear-probing table fusion uses for its genome-scale index.
const nIndexShard = 256

// Occurrence is one (edge, offset) pair where a k-mer was found in the
// graph.
type Occurrence struct {
	Edge   EdgeID
	Offset int
}

// hashKmer is the hash that picks a k-mer's shard; within a shard, k-mers
// are found through the shard's Go map.
func hashKmer(k Kmer) uint64 {
	return farm.Hash64WithSeed(nil, uint64(k))
}

// KmerIndex maps each k-mer's canonical (min of forward/rev-comp) form to
// every (edge, offset) occurrence in the graph. It is built once and is
// read-only and safe for concurrent use by any number of workers
// thereafter (§5).
type KmerIndex struct {
	k      int
	shards [nIndexShard]map[Kmer][]Occurrence
}

// BuildKmerIndex scans every edge's sequence for k-mer starting offsets and
// records each occurrence under its canonical form.
func BuildKmerIndex(g Graph, edges []EdgeID, k int) *KmerIndex {
	idx := &KmerIndex{k: k}
	for i := range idx.shards {
		idx.shards[i] = map[Kmer][]Occurrence{}
	}
	kz := newKmerizer(k)
	for _, e := range edges {
		kz.Reset(g.EdgeSeq(e))
		for kz.Scan() {
			km := kz.Get()
			canon := km.minKmer()
			shard := hashKmer(canon) % nIndexShard
			idx.shards[shard][canon] = append(idx.shards[shard][canon], Occurrence{Edge: e, Offset: km.pos})
		}
	}
	for _, shard := range idx.shards {
		for km, occs := range shard {
			sort.Slice(occs, func(i, j int) bool {
				if occs[i].Edge != occs[j].Edge {
					return occs[i].Edge < occs[j].Edge
				}
				return occs[i].Offset < occs[j].Offset
			})
			shard[km] = occs
		}
	}
	return idx
}

// K returns the k-mer length the index was built with.
func (idx *KmerIndex) K() int { return idx.k }

// Contains reports whether any occurrence exists for km. km is looked up as
// given, so callers pass the canonical form (see Kmer.canonicalize).
func (idx *KmerIndex) Contains(km Kmer) bool {
	shard := idx.shards[hashKmer(km)%nIndexShard]
	_, ok := shard[km]
	return ok
}

// Lookup returns every (edge, offset) occurrence of km, or nil if there are
// none. As with Contains, km must already be in canonical form.
func (idx *KmerIndex) Lookup(km Kmer) []Occurrence {
	shard := idx.shards[hashKmer(km)%nIndexShard]
	return shard[km]
}
