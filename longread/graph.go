package longread

// EdgeID is a stable, comparable, hashable handle to a graph edge. It is
// opaque to callers of this package; only the externally owned graph gives
// IDs meaning.
type EdgeID int32

// VertexID is a stable, comparable, hashable handle to a graph vertex.
type VertexID int32

// invalidEdgeID marks "no edge", used as a sentinel parent in extension
// trees and elsewhere.
const invalidEdgeID = EdgeID(-1)

// Graph is the read-only view the core requires of the externally owned de
// Bruijn graph. All methods are pure queries and must be safe for
// concurrent use by multiple readers once the graph is built; this package
// never mutates a Graph.
type Graph interface {
	// Length returns the number of k-mer starting offsets on e, i.e. the
	// number of distinct anchor positions the edge can host.
	Length(e EdgeID) int
	// EdgeSeq returns the edge's nucleotide sequence.
	EdgeSeq(e EdgeID) string
	// Start returns the vertex the edge originates from.
	Start(e EdgeID) VertexID
	// End returns the vertex the edge terminates at.
	End(e EdgeID) VertexID
	// Outgoing lists the edges leaving v.
	Outgoing(v VertexID) []EdgeID
	// Incoming lists the edges entering v.
	Incoming(v VertexID) []EdgeID
	// Conjugate returns the reverse-complement edge of e. Conjugate is an
	// involution: Conjugate(Conjugate(e)) == e.
	Conjugate(e EdgeID) EdgeID
	// IntID returns a stable, dense, hashable id for e, used only for
	// deterministic tie-breaking in output ordering.
	IntID(e EdgeID) int64
}
