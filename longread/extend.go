package longread

// nodeState classifies how an extension-tree branch terminated.
type nodeState int

const (
	growing nodeState = iota
	grown
	stoppedTip
	scaffolded
	cycled
)

// ExtensionNode is one node of the extension tree, addressed by its index
// in an ExtensionArena rather than by pointer. Per Design Notes ("Cyclic
// graphs"), a de Bruijn graph can contain cycles, so a parent/child
// ownership model built on raw pointers can form reference cycles the
// garbage collector cannot reason about as cleanly as a flat, append-only
// index; an arena of int32 indices also makes path reconstruction and loop
// detection simple integer-slice walks.
type ExtensionNode struct {
	Edge             EdgeID
	Parent           int32 // -1 for the root
	CumulativeLength int
	State            nodeState
}

const noParent = int32(-1)

// concatWalk returns a freshly allocated walk combining a and b, never
// aliasing either argument's backing array: both are reused across many
// branches of the extension tree and must not be mutated through a result.
func concatWalk(a, b Walk) Walk {
	w := make(Walk, 0, len(a)+len(b))
	w = append(w, a...)
	w = append(w, b...)
	return w
}

// ExtensionArena owns every node created while extending one read's chain;
// it is private, per-worker scratch state, never shared or reused across
// reads.
type ExtensionArena struct {
	nodes []ExtensionNode
}

func newExtensionArena() *ExtensionArena {
	return &ExtensionArena{}
}

func (a *ExtensionArena) addNode(parent int32, edge EdgeID, cumLen int, state nodeState) int32 {
	idx := int32(len(a.nodes))
	a.nodes = append(a.nodes, ExtensionNode{Edge: edge, Parent: parent, CumulativeLength: cumLen, State: state})
	return idx
}

// pathTo walks the parent chain from idx back to (but excluding) the root,
// returning edges in root-to-leaf order.
func (a *ExtensionArena) pathTo(idx int32) Walk {
	var rev Walk
	for idx != noParent {
		n := a.nodes[idx]
		if n.Edge != invalidEdgeID {
			rev = append(rev, n.Edge)
		}
		idx = n.Parent
	}
	w := make(Walk, len(rev))
	for i, e := range rev {
		w[len(rev)-1-i] = e
	}
	return w
}

func (a *ExtensionArena) loopCount(idx int32, e EdgeID) int {
	n := 0
	for idx != noParent {
		node := a.nodes[idx]
		if node.Edge == e {
			n++
		}
		idx = node.Parent
	}
	return n
}

// ExtendResult is one terminated branch of the extension search.
type ExtendResult struct {
	Walk  Walk
	State nodeState
}

// Extend grows initWalk outward until each branch has added at least
// searchDist bases (the last edge of a branch may overshoot), branching at
// bubbles using paired-end support and attempting tip
// scaffolding via oracle/cov when a branch runs out of graph edges before
// reaching its length budget. It mirrors NextPathSearcher's traversal, using
// an explicit work stack instead of recursion so a long, densely connected
// region cannot drive native call-stack depth.
//
// If the tree would grow past cfg.MaxPaths nodes, Extend abandons the
// search entirely and returns a PathExplosion diagnostic with no results,
// matching the source's "give up rather than return a partial, potentially
// misleading answer" behavior for an exploded search.
func Extend(cfg Config, g Graph, oracle PairedInfoOracle, cov CoverageMap, initWalk Walk, startVertex VertexID, searchDist int) ([]ExtendResult, []Diagnostic) {
	arena := newExtensionArena()
	maxLen := searchDist
	root := arena.addNode(noParent, invalidEdgeID, 0, growing)

	type frame struct {
		idx int32
		v   VertexID
	}
	stack := []frame{{root, startVertex}}
	var results []ExtendResult

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		node := arena.nodes[top.idx]

		if node.CumulativeLength >= maxLen {
			arena.nodes[top.idx].State = grown
			results = append(results, ExtendResult{Walk: concatWalk(initWalk, arena.pathTo(top.idx)), State: grown})
			continue
		}

		out := g.Outgoing(top.v)
		if len(out) == 0 {
			if jumped, ok := tryScaffold(cfg, g, oracle, cov, node.Edge); ok {
				if len(arena.nodes) >= cfg.MaxPaths {
					return nil, []Diagnostic{{Kind: PathExplosion, Detail: "extension tree exceeded MaxPaths during scaffolding"}}
				}
				child := arena.addNode(top.idx, jumped, node.CumulativeLength+g.Length(jumped), scaffolded)
				stack = append(stack, frame{child, g.End(jumped)})
				continue
			}
			arena.nodes[top.idx].State = stoppedTip
			results = append(results, ExtendResult{Walk: concatWalk(initWalk, arena.pathTo(top.idx)), State: stoppedTip})
			continue
		}

		candidates := out
		if len(out) > 1 && oracle != nil {
			candidates = resolveBubble(oracle, arena.pathTo(top.idx), out)
		}

		for _, e := range candidates {
			if len(arena.nodes) >= cfg.MaxPaths {
				return nil, []Diagnostic{{Kind: PathExplosion, Detail: "extension tree exceeded MaxPaths"}}
			}
			if arena.loopCount(top.idx, e) > cfg.MPMaxLoops {
				child := arena.addNode(top.idx, e, node.CumulativeLength+g.Length(e), cycled)
				results = append(results, ExtendResult{Walk: concatWalk(initWalk, arena.pathTo(child)), State: cycled})
				continue
			}
			child := arena.addNode(top.idx, e, node.CumulativeLength+g.Length(e), growing)
			stack = append(stack, frame{child, g.End(e)})
		}
	}
	return results, nil
}

// resolveBubble ranks the out-edges of a branch point by paired-end support
// for continuing the current path through each candidate, keeping only
// edges whose support is within a small margin of the best, matching the
// source's preference for the best-supported branch while still allowing a
// genuine bubble (near-tied support) to be explored on both sides.
func resolveBubble(oracle PairedInfoOracle, path Walk, out []EdgeID) []EdgeID {
	if len(path) == 0 {
		return out
	}
	type scored struct {
		e     EdgeID
		score float64
	}
	scores := make([]scored, len(out))
	best := 0.0
	for i, e := range out {
		s := oracle.CountPairInfo(path, 0, len(path), e, 0)
		scores[i] = scored{e, s}
		if s > best {
			best = s
		}
	}
	var kept []EdgeID
	for _, s := range scores {
		if best == 0 || s.score >= best*0.8 {
			kept = append(kept, s.e)
		}
	}
	if len(kept) == 0 {
		return out
	}
	return kept
}

// tryScaffold looks for a single best jump edge to resume extension past a
// graph tip, per §4.E's jump-scaffolding step: candidates are proposed by
// paired-end distance estimation and must be a long edge (cfg.LongEdge) to
// be trustworthy as a scaffolding anchor, then narrowed to those with actual
// jump-edge support, and finally broken by coverage depth.
func tryScaffold(cfg Config, g Graph, oracle PairedInfoOracle, cov CoverageMap, from EdgeID) (EdgeID, bool) {
	if oracle == nil || from == invalidEdgeID {
		return invalidEdgeID, false
	}
	minDist, maxDist := 0, cfg.LongEdge*4
	candidates := oracle.FindJumpCandidates(from, minDist, maxDist, cfg.LongEdge, nil)
	if len(candidates) == 0 {
		return invalidEdgeID, false
	}
	jumps := oracle.FindJumpEdges(from, candidates, minDist, maxDist, nil)
	if len(jumps) == 0 {
		return invalidEdgeID, false
	}
	best := jumps[0]
	bestCov := uint32(0)
	if cov != nil {
		bestCov = cov.Coverage(best)
	}
	for _, e := range jumps[1:] {
		if cov == nil {
			continue
		}
		if c := cov.Coverage(e); c > bestCov {
			best, bestCov = e, c
		}
	}
	return best, true
}

// JoinByGraph deduplicates extension results: it drops each result whose
// walk occurs as a contiguous run of edges inside the walk of a result it
// has already kept, and returns the rest unchanged, in input order. It does
// not concatenate walks; walks that only share a common suffix are all
// kept, as is a result whose walk is contained in a later result. This
// supplements the core search with the source's pe_resolver.hpp dedup step.
func JoinByGraph(results []ExtendResult) []ExtendResult {
	var out []ExtendResult
	for _, r := range results {
		subsumed := false
		for _, o := range out {
			if isSubWalk(r.Walk, o.Walk) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			out = append(out, r)
		}
	}
	return out
}

func isSubWalk(short, long Walk) bool {
	if len(short) > len(long) {
		return false
	}
	for i := 0; i+len(short) <= len(long); i++ {
		match := true
		for j := range short {
			if long[i+j] != short[j] {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

// JoinByPairedInfo appends b's walk to a's, as one scaffolded walk, when the
// oracle reports paired-end support between a's last edge and b's first edge
// within cfg.LongEdge*4 bases. It does not check whether the two walks are
// connected in the graph, nor whether they share edges or conjugate edges.
// This supplements the base search with long-range linking
// information the graph topology alone cannot provide.
func JoinByPairedInfo(oracle PairedInfoOracle, cfg Config, a, b ExtendResult) (ExtendResult, bool) {
	if len(a.Walk) == 0 || len(b.Walk) == 0 {
		return ExtendResult{}, false
	}
	last := a.Walk[len(a.Walk)-1]
	first := b.Walk[0]
	if !oracle.HasPairInfo(last, first, 0, cfg.LongEdge*4) {
		return ExtendResult{}, false
	}
	joined := make(Walk, 0, len(a.Walk)+len(b.Walk))
	joined = append(joined, a.Walk...)
	joined = append(joined, b.Walk...)
	return ExtendResult{Walk: joined, State: scaffolded}, true
}
