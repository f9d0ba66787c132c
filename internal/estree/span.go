package estree

import (
	"bytes"
	"sort"
)

// Position is a 1-based line/column location in a source file. Columns
// count bytes, matching what editors and CI annotations expect.
type Position struct {
	Line   int
	Column int
}

// lineIndex maps byte offsets to line/column positions.
type lineIndex struct {
	// starts holds the byte offset of the first byte of each line.
	starts []int
	size   int
}

func newLineIndex(source []byte) *lineIndex {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{starts: starts, size: len(source)}
}

func (ix *lineIndex) position(offset int) Position {
	if offset < 0 {
		offset = 0
	}
	if offset > ix.size {
		offset = ix.size
	}

	// First line whose start is past the offset; the offset lives on the
	// line before it.
	line := sort.Search(len(ix.starts), func(i int) bool {
		return ix.starts[i] > offset
	})

	return Position{Line: line, Column: offset - ix.starts[line-1] + 1}
}

// HeadSpan returns the [start, end) byte span of a function's head: its
// introducer, name, and parameter list, but never its body. For arrow
// functions the span extends through the arrow token, which also covers
// single-parameter arrows written without parentheses.
func HeadSpan(f *File, n *Node) (start, end int) {
	start = n.Range[0]
	end = n.Range[1]

	limit := end
	if n.Body != nil {
		limit = n.Body.Range[0]
	}

	from := start
	if len(n.Params) > 0 {
		from = n.Params[len(n.Params)-1].Range[1]
	}
	if from > limit || limit > len(f.Source) {
		// Malformed ranges; fall back to the full node span.
		return start, end
	}

	region := f.Source[from:limit]

	if n.Type == TypeArrowFunctionExpression {
		if i := bytes.Index(region, []byte("=>")); i >= 0 {
			return start, from + i + 2
		}
		return start, limit
	}

	if i := bytes.IndexByte(region, ')'); i >= 0 {
		return start, from + i + 1
	}
	return start, limit
}
