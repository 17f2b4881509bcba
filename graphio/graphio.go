// Package graphio reads weighted directed graphs from the edge-list text
// format into a *dijkstra.Graph.
//
// Format (whitespace-separated integers, line breaks are not significant):
//
//	n
//	src dst weight
//	src dst weight
//	...
//
// n is the vertex count; every following triple adds the edge src→dst.
// Indices must lie in [0, n) and weights must be non-negative.
package graphio

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/wordpath/dijkstra"
)

// MaxVertices bounds the vertex count accepted by Read, since the graph
// allocates its adjacency list up front.
const MaxVertices = 1 << 24

// Sentinel errors for graph parsing.
var (
	// ErrMissingVertexCount indicates the input holds no tokens at all.
	ErrMissingVertexCount = errors.New("graphio: missing vertex count")

	// ErrMalformed indicates a non-integer token or an incomplete edge triple.
	ErrMalformed = errors.New("graphio: malformed input")
)

// Load opens path and parses it with Read.
func Load(path string) (*dijkstra.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("graphio: open %s: %w", path, err)
	}
	defer f.Close()

	return Read(f)
}

// Read parses the edge-list format from r.
//
// Errors wrap ErrMissingVertexCount, ErrMalformed, or the dijkstra
// construction errors (ErrBadVertexCount, ErrVertexOutOfRange,
// ErrNegativeWeight) annotated with the 1-based edge number.
func Read(r io.Reader) (*dijkstra.Graph, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)

	tok := &tokens{sc: sc}
	n, ok, err := tok.next()
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrMissingVertexCount
	}
	if n > MaxVertices {
		return nil, fmt.Errorf("%w: vertex count %d exceeds %d", ErrMalformed, n, MaxVertices)
	}

	g, err := dijkstra.NewGraph(int(n))
	if err != nil {
		return nil, err
	}

	for edge := 1; ; edge++ {
		var triple [3]int64
		for i := range triple {
			v, ok, err := tok.next()
			if err != nil {
				return nil, err
			}
			if !ok {
				if i == 0 {
					return g, nil
				}
				return nil, fmt.Errorf("%w: edge %d: incomplete triple", ErrMalformed, edge)
			}
			triple[i] = v
		}
		if err := g.AddEdge(int(triple[0]), int(triple[1]), triple[2]); err != nil {
			return nil, fmt.Errorf("graphio: edge %d: %w", edge, err)
		}
	}
}

// tokens yields integer tokens from a word scanner.
type tokens struct {
	sc  *bufio.Scanner
	pos int // 1-based index of the last token read
}

// next returns the next integer; ok is false at EOF.
func (t *tokens) next() (v int64, ok bool, err error) {
	if !t.sc.Scan() {
		if err := t.sc.Err(); err != nil {
			return 0, false, fmt.Errorf("graphio: read: %w", err)
		}
		return 0, false, nil
	}
	t.pos++
	v, err = strconv.ParseInt(t.sc.Text(), 10, 64)
	if err != nil {
		return 0, false, fmt.Errorf("%w: token %d %q is not an integer", ErrMalformed, t.pos, t.sc.Text())
	}

	return v, true, nil
}
