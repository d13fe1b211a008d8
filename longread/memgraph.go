package longread

import (
	gunsafe "github.com/grailbio/base/unsafe"
	"github.com/grailbio/bio/biosimd"
)

// memEdge is one edge record in MemGraph, indexed by dense EdgeID.
type memEdge struct {
	seq        string
	start, end VertexID
	conjugate  EdgeID
}

// MemGraph is a small in-memory Graph, used by tests and by the
// cmd/bio-longread demonstration mode. Edges are added in conjugate pairs:
// AddEdgePair creates edge e and its reverse-complement conjugate in one
// call, mirroring how a real de Bruijn graph never has an edge without its
// partner.
//
// Thread compatible for construction; once built, safe for concurrent
// readers like any Graph.
type MemGraph struct {
	kGraph int
	edges  []memEdge
	out    map[VertexID][]EdgeID
	in     map[VertexID][]EdgeID
	nextV  VertexID
}

// NewMemGraph creates an empty graph whose edges host k-mers of length
// kGraph (Edge.Length() == len(seq)-kGraph+1).
func NewMemGraph(kGraph int) *MemGraph {
	return &MemGraph{
		kGraph: kGraph,
		out:    map[VertexID][]EdgeID{},
		in:     map[VertexID][]EdgeID{},
	}
}

// NewVertex allocates a fresh vertex id.
func (g *MemGraph) NewVertex() VertexID {
	v := g.nextV
	g.nextV++
	return v
}

// AddEdgePair adds edge seq from start to end, plus its conjugate (reverse
// complement) running from the conjugate of end to the conjugate of start.
// If startConj or endConj is the sentinel -1, a fresh vertex is allocated
// for that endpoint of the conjugate edge.
func (g *MemGraph) AddEdgePair(start, end VertexID, seq string, startConj, endConj VertexID) (EdgeID, EdgeID) {
	if startConj == -1 {
		startConj = g.NewVertex()
	}
	if endConj == -1 {
		endConj = g.NewVertex()
	}
	fwd := EdgeID(len(g.edges))
	g.edges = append(g.edges, memEdge{seq: seq, start: start, end: end})

	rc := make([]byte, len(seq))
	biosimd.ReverseComp8NoValidate(rc, gunsafe.StringToBytes(seq))
	rev := EdgeID(len(g.edges))
	g.edges = append(g.edges, memEdge{seq: gunsafe.BytesToString(rc), start: endConj, end: startConj})

	g.edges[fwd].conjugate = rev
	g.edges[rev].conjugate = fwd

	g.out[start] = append(g.out[start], fwd)
	g.in[end] = append(g.in[end], fwd)
	g.out[endConj] = append(g.out[endConj], rev)
	g.in[startConj] = append(g.in[startConj], rev)
	return fwd, rev
}

func (g *MemGraph) Length(e EdgeID) int { return len(g.edges[e].seq) - g.kGraph + 1 }
func (g *MemGraph) EdgeSeq(e EdgeID) string     { return g.edges[e].seq }
func (g *MemGraph) Start(e EdgeID) VertexID     { return g.edges[e].start }
func (g *MemGraph) End(e EdgeID) VertexID       { return g.edges[e].end }
func (g *MemGraph) Outgoing(v VertexID) []EdgeID { return g.out[v] }
func (g *MemGraph) Incoming(v VertexID) []EdgeID { return g.in[v] }
func (g *MemGraph) Conjugate(e EdgeID) EdgeID    { return g.edges[e].conjugate }
func (g *MemGraph) IntID(e EdgeID) int64         { return int64(e) }
