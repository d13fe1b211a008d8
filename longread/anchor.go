package longread

import "sort"

// MappingInstance is one k-mer shared between a read position and a
// graph-edge position. Multiplicity == 1 denotes a unique anchor.
type MappingInstance struct {
	EdgeOffset   uint32
	ReadOffset   uint32
	Multiplicity uint32
}

// IsUnique reports whether this anchor's k-mer occurs exactly once in the
// graph.
func (m MappingInstance) IsUnique() bool { return m.Multiplicity == 1 }

func lessEdgeThenRead(a, b MappingInstance) bool {
	if a.EdgeOffset != b.EdgeOffset {
		return a.EdgeOffset < b.EdgeOffset
	}
	return a.ReadOffset < b.ReadOffset
}

// Cluster is a collinear group of anchors on a single edge. Anchors are
// sorted by ReadOffset.
type Cluster struct {
	Edge    EdgeID
	Anchors []MappingInstance
}

// firstReadOffset/lastReadOffset assume Anchors is sorted by ReadOffset,
// which ClusterAndFilter guarantees for every cluster it returns.
func (c Cluster) firstReadOffset() uint32 { return c.Anchors[0].ReadOffset }
func (c Cluster) lastReadOffset() uint32  { return c.Anchors[len(c.Anchors)-1].ReadOffset }

// firstUnique/lastUnique return the first/last anchor in the cluster with
// Multiplicity == 1, scanning inward from either end. Per §4.D, gap
// closure is anchored on unique anchors only, since repeated k-mers make
// poor distance landmarks.
func (c Cluster) firstUnique() (MappingInstance, bool) {
	for _, a := range c.Anchors {
		if a.IsUnique() {
			return a, true
		}
	}
	return MappingInstance{}, false
}

func (c Cluster) lastUnique() (MappingInstance, bool) {
	for i := len(c.Anchors) - 1; i >= 0; i-- {
		if c.Anchors[i].IsUnique() {
			return c.Anchors[i], true
		}
	}
	return MappingInstance{}, false
}

// similar tests whether anchors a and b (conceptually with b.ReadOffset >=
// a.ReadOffset after accounting for shift) describe a collinear
// relationship: either they share a read offset and their edge offsets
// differ by less than 2, or their edge/read offset compression ratio
// falls within [cutoff, 1/cutoff]. shift lets callers test similarity
// under a proposed gap between two different edges (§4.D).
func similar(cfg Config, a, b MappingInstance, shift int) bool {
	ao, bo := int(a.EdgeOffset), int(b.EdgeOffset)
	ar, br := int(a.ReadOffset), int(b.ReadOffset)
	if br+shift < ar {
		return similar(cfg, b, a, -shift)
	}
	if br == ar {
		d := bo + shift - ao
		if d < 0 {
			d = -d
		}
		return d < 2
	}
	num := float64(bo + shift - ao)
	den := float64(br - ar)
	return num >= den*cfg.CompressionCutoff && num <= den/cfg.CompressionCutoff
}

// locateAnchors slides a k-mer window along read, looking up each k-mer in
// idx and keeping one MappingInstance per (edge, offset) hit, after
// dropping banned k-mers and vertex-overlap offsets.
func locateAnchors(cfg Config, idx *KmerIndex, banned map[Kmer]bool, read string) map[EdgeID][]MappingInstance {
	buckets := map[EdgeID][]MappingInstance{}
	kz := newKmerizer(idx.K())
	kz.Reset(read)
	for kz.Scan() {
		km := kz.Get()
		canon := km.minKmer()
		if banned[canon] {
			continue
		}
		occs := idx.Lookup(canon)
		if len(occs) == 0 {
			continue
		}
		mult := uint32(len(occs))
		for _, occ := range occs {
			if int(occ.Offset) <= cfg.KGraph-cfg.KIndex {
				continue
			}
			// The caller's Graph.Length is the number of k-mer starting
			// offsets; offsets within KGraph-KIndex of the far end are
			// equally unreliable, but that bound needs the edge length,
			// which Locate below reads from the graph for its far-end
			// check. Here we only apply the cheap near-start check;
			// Locate applies the full two-sided filter.
			buckets[occ.Edge] = append(buckets[occ.Edge], MappingInstance{
				EdgeOffset:   uint32(occ.Offset),
				ReadOffset:   uint32(km.pos),
				Multiplicity: mult,
			})
		}
	}
	return buckets
}

// Locate performs full anchor extraction per §4.C, including the two-sided
// vertex-overlap filter, which requires the edge length from g.
func Locate(cfg Config, g Graph, idx *KmerIndex, banned map[Kmer]bool, read string) map[EdgeID][]MappingInstance {
	raw := locateAnchors(cfg, idx, banned, read)
	overlap := cfg.KGraph - cfg.KIndex
	filtered := map[EdgeID][]MappingInstance{}
	for e, anchors := range raw {
		length := g.Length(e)
		kept := anchors[:0:0]
		for _, a := range anchors {
			o := int(a.EdgeOffset)
			if o <= overlap || o >= length-overlap {
				continue
			}
			kept = append(kept, a)
		}
		if len(kept) > 0 {
			sort.Slice(kept, func(i, j int) bool { return lessEdgeThenRead(kept[i], kept[j]) })
			filtered[e] = kept
		}
	}
	return filtered
}

// clusterBucket grows collinear clusters from one edge's anchor bucket
// using an explicit work stack in place of the source's recursive
// dfs_cluster, so a pathological read with thousands of anchors on one
// edge cannot overflow the goroutine stack.
func clusterBucket(cfg Config, anchors []MappingInstance) []Cluster {
	n := len(anchors)
	used := make([]bool, n)
	var clusters []Cluster
	for seed := 0; seed < n; seed++ {
		if used[seed] {
			continue
		}
		used[seed] = true
		group := []MappingInstance{anchors[seed]}
		stack := []int{seed}
		for len(stack) > 0 {
			cur := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			for k := 0; k < n; k++ {
				if used[k] {
					continue
				}
				if similar(cfg, anchors[cur], anchors[k], 0) {
					used[k] = true
					group = append(group, anchors[k])
					stack = append(stack, k)
				}
			}
		}
		if trimmed := trimToLongestRun(cfg, group); len(trimmed) > 0 {
			clusters = append(clusters, Cluster{Anchors: trimmed})
		}
	}
	return clusters
}

// trimToLongestRun sorts the cluster by ReadOffset and, if a break in
// similarity occurs in the head (first 20%) or tail (last 20%) of the
// sequence, keeps only the longest run of mutually-similar anchors.
// Breaks in the middle are ignored: a long mostly-consistent cluster must
// not be shattered by one noisy anchor.
func trimToLongestRun(cfg Config, group []MappingInstance) []MappingInstance {
	sort.Slice(group, func(i, j int) bool { return group[i].ReadOffset < group[j].ReadOffset })
	n := len(group)
	if n <= 1 {
		return group
	}
	bestStart, bestLen := 0, 0
	curStart, curLen := 0, 1
	for j := 0; j < n-1; j++ {
		inEdgeZone := j*5 < n || (j+1)*5 > n*4
		if inEdgeZone && !similar(cfg, group[j], group[j+1], 0) {
			if curLen > bestLen {
				bestStart, bestLen = curStart, curLen
			}
			curStart, curLen = j+1, 1
		} else {
			curLen++
		}
	}
	if curLen > bestLen {
		bestStart, bestLen = curStart, curLen
	}
	return group[bestStart : bestStart+bestLen]
}

// dominates reports whether cluster a dominates b: a is at least
// DominationCutoff times larger and a's read range contains b's.
func dominates(cfg Config, a, b Cluster) bool {
	aSize, bSize := float64(len(a.Anchors)), float64(len(b.Anchors))
	if aSize < bSize*cfg.DominationCutoff {
		return false
	}
	if a.firstReadOffset() > b.firstReadOffset() {
		return false
	}
	if a.lastReadOffset() < b.lastReadOffset() {
		return false
	}
	return true
}

// ClusterAndFilter builds per-edge clusters from anchors located on the
// read and drops clusters that are too small, entirely on a vertex
// overlap, or dominated by another cluster on the same edge.
//
// When a bucket produces more than one surviving cluster on the same edge
// (the source's under-specified multi-modal case), the larger cluster is
// preferred: see DESIGN.md.
func ClusterAndFilter(cfg Config, g Graph, perEdge map[EdgeID][]MappingInstance) []Cluster {
	overlap := cfg.KGraph - cfg.KIndex
	var out []Cluster
	for e, anchors := range perEdge {
		length := g.Length(e)
		candidates := clusterBucket(cfg, anchors)
		// Same-edge domination: visiting candidates largest first, drop a
		// cluster when an already-kept one dominates it (at least
		// DominationCutoff times larger and containing its read range);
		// clusters that merely overlap are all kept. Both the original DFS and this one
		// can emit more than one cluster per edge when anchors form two
		// distinct collinear runs that never become mutually similar.
		sort.Slice(candidates, func(i, j int) bool { return len(candidates[i].Anchors) > len(candidates[j].Anchors) })
		var kept []Cluster
		for _, c := range candidates {
			c.Edge = e
			dominated := false
			for _, k := range kept {
				if dominates(cfg, k, c) {
					dominated = true
					break
				}
			}
			if !dominated {
				kept = append(kept, c)
			}
		}
		for _, c := range kept {
			nUnique := 0
			for _, a := range c.Anchors {
				if a.IsUnique() {
					nUnique++
				}
			}
			if nUnique < cfg.MinClusterSize {
				continue
			}
			first, last := c.Anchors[0], c.Anchors[len(c.Anchors)-1]
			if int(first.EdgeOffset) >= length || int(last.EdgeOffset) <= overlap {
				continue
			}
			out = append(out, c)
		}
	}
	// §5 ordering: ascending (edge_int_id, first_read_offset).
	sort.Slice(out, func(i, j int) bool {
		if out[i].Edge != out[j].Edge {
			return g.IntID(out[i].Edge) < g.IntID(out[j].Edge)
		}
		return out[i].firstReadOffset() < out[j].firstReadOffset()
	})
	return out
}
