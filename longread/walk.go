package longread

// Walk is an ordered sequence of EdgeIDs forming a connected path: the End
// of each edge equals the Start of the next.
type Walk []EdgeID

// maxEnumeratedWalks bounds the number of simple walks EnumerateWalks will
// return before giving up, protecting the gap filler from exponential
// blowup on densely connected graph regions. This is an internal safety
// valve, not one of the tunables named in §6.
const maxEnumeratedWalks = 2048

// EnumerateWalks returns every simple walk (no repeated edge) from start to
// end whose total edge length falls within [minLen, maxLen], using an
// explicit work stack rather than recursion so a long read's generous
// length budget cannot exhaust the goroutine stack on a densely connected
// graph region.
func EnumerateWalks(g Graph, start, end VertexID, minLen, maxLen int) []Walk {
	if maxLen < 0 {
		return nil
	}
	type frame struct {
		v       VertexID
		path    []EdgeID
		used    map[EdgeID]bool
		length  int
		nextOut int
	}
	var results []Walk
	root := &frame{v: start, used: map[EdgeID]bool{}}
	stack := []*frame{root}

	push := func(parent *frame, e EdgeID) *frame {
		used := make(map[EdgeID]bool, len(parent.used)+1)
		for k := range parent.used {
			used[k] = true
		}
		used[e] = true
		path := make([]EdgeID, len(parent.path)+1)
		copy(path, parent.path)
		path[len(path)-1] = e
		return &frame{
			v:      g.End(e),
			path:   path,
			used:   used,
			length: parent.length + g.Length(e),
		}
	}

	for len(stack) > 0 && len(results) < maxEnumeratedWalks {
		top := stack[len(stack)-1]
		if top.v == end && top.length >= minLen && top.length <= maxLen && len(top.path) > 0 {
			w := make(Walk, len(top.path))
			copy(w, top.path)
			results = append(results, w)
		}
		out := g.Outgoing(top.v)
		if top.nextOut >= len(out) {
			stack = stack[:len(stack)-1]
			continue
		}
		e := out[top.nextOut]
		top.nextOut++
		if top.used[e] {
			continue
		}
		if top.length+g.Length(e) > maxLen {
			continue
		}
		stack = append(stack, push(top, e))
	}
	return results
}

// ConcatSeq concatenates the nucleotide sequences of each edge's
// K-mer-starting-offset region (Length(e) bases, i.e. excluding the
// (K-1)-base suffix shared with the following edge's prefix) in walk
// order. This matches how the source's PathToString builds a candidate
// string to score against a read substring.
func ConcatSeq(g Graph, w Walk) string {
	buf := make([]byte, 0, 64)
	for _, e := range w {
		seq := g.EdgeSeq(e)
		n := g.Length(e)
		if n > len(seq) {
			n = len(seq)
		}
		buf = append(buf, seq[:n]...)
	}
	return string(buf)
}
