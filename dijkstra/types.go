// Package dijkstra defines the graph representation, sentinel values and
// errors used by the shortest-path engine.
//
// The graph is a plain adjacency list indexed by vertex number:
//
//	adj[u] = []Edge{{To: v1, Weight: w1}, {To: v2, Weight: w2}, ...}
//
// Edges are kept in insertion order, which fixes the relaxation order and
// therefore the tie-breaking between equal-cost paths.
package dijkstra

import (
	"errors"
	"fmt"
	"math"
)

// Inf is the distance reported for vertices that cannot be reached from the source.
const Inf int64 = math.MaxInt64

// NoPredecessor marks the source vertex and unreachable vertices in the
// predecessor slice returned by ShortestPaths.
const NoPredecessor = -1

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrNilGraph indicates that a nil *Graph was passed to ShortestPaths.
	ErrNilGraph = errors.New("dijkstra: graph is nil")

	// ErrSourceOutOfRange indicates that the source index is not a vertex of the graph.
	ErrSourceOutOfRange = errors.New("dijkstra: source vertex out of range")

	// ErrBadVertexCount indicates a negative vertex count was passed to NewGraph.
	ErrBadVertexCount = errors.New("dijkstra: vertex count must be non-negative")

	// ErrVertexOutOfRange indicates an edge endpoint outside [0, n).
	ErrVertexOutOfRange = errors.New("dijkstra: vertex index out of range")

	// ErrNegativeWeight indicates that a negative edge weight was supplied.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")
)

// Edge is one outgoing, weighted connection of a vertex.
type Edge struct {
	To     int   // destination vertex index
	Weight int64 // non-negative traversal cost
}

// Graph is a directed, weighted graph over the vertex indices 0..n-1.
//
// The vertex count is fixed at construction; edges are added with AddEdge.
// The zero value is an empty graph with no vertices.
type Graph struct {
	adj [][]Edge
	m   int
}

// NewGraph returns a graph with n isolated vertices.
// Returns ErrBadVertexCount if n < 0.
func NewGraph(n int) (*Graph, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: %d", ErrBadVertexCount, n)
	}

	return &Graph{adj: make([][]Edge, n)}, nil
}

// AddEdge appends the directed edge from→to with weight w.
//
// Parallel edges and self-loops are accepted. Returns ErrVertexOutOfRange if
// either endpoint is not a vertex and ErrNegativeWeight if w < 0; the graph is
// left unchanged on error.
func (g *Graph) AddEdge(from, to int, w int64) error {
	n := len(g.adj)
	if from < 0 || from >= n {
		return fmt.Errorf("%w: from=%d (n=%d)", ErrVertexOutOfRange, from, n)
	}
	if to < 0 || to >= n {
		return fmt.Errorf("%w: to=%d (n=%d)", ErrVertexOutOfRange, to, n)
	}
	if w < 0 {
		return fmt.Errorf("%w: edge %d→%d weight=%d", ErrNegativeWeight, from, to, w)
	}
	g.adj[from] = append(g.adj[from], Edge{To: to, Weight: w})
	g.m++

	return nil
}

// NumVertices returns n, the number of vertices.
func (g *Graph) NumVertices() int { return len(g.adj) }

// NumEdges returns the number of edges added so far.
func (g *Graph) NumEdges() int { return g.m }

// Edges returns the outgoing edges of u in insertion order, or nil if u is
// not a vertex. The returned slice must not be modified.
func (g *Graph) Edges(u int) []Edge {
	if u < 0 || u >= len(g.adj) {
		return nil
	}

	return g.adj[u]
}
