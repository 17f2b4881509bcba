// Package dijkstra provides a compact implementation of Dijkstra's
// shortest-path algorithm on directed graphs with non-negative integer weights
// and dense vertex indices 0..n-1.
//
// Overview:
//
//   - ShortestPaths computes the minimum-cost distance from a single source
//     vertex to every vertex of the graph, together with a predecessor slice
//     that encodes one shortest-path tree.
//   - ExtractPath walks the predecessor slice backwards to rebuild the path
//     from the source to any destination.
//   - It relies on a binary min-heap (container/heap) to always expand the
//     next-closest vertex.
//
// Result encoding:
//
//   - dist[v] == Inf           : v is unreachable from the source.
//   - prev[v] == NoPredecessor : v is the source, or v is unreachable.
//
// Unreachability is not an error: callers check dist[v] against Inf before
// interpreting prev[v], or simply call ExtractPath and test for an empty path.
//
// Performance and complexity:
//
//   - Time:  O((V + E) log V)
//   - Each vertex is finalized at most once (V useful extractions).
//   - Each edge relaxation may push one new entry (up to E pushes).
//   - Space: O(V + E)
//   - O(V) for the distance, predecessor and visited slices.
//   - O(E) worst-case entries in the heap under the "lazy decrease-key" strategy.
//
// Error handling (sentinel errors):
//
//   - ErrNilGraph:         ShortestPaths was given a nil *Graph.
//   - ErrSourceOutOfRange: the source index is not in [0, n).
//   - ErrBadVertexCount:   NewGraph was asked for a negative vertex count.
//   - ErrVertexOutOfRange: AddEdge referenced an index outside [0, n).
//   - ErrNegativeWeight:   AddEdge was given a negative weight.
//
// Because AddEdge refuses negative weights, any Graph built through this
// package satisfies Dijkstra's precondition and ShortestPaths does not rescan
// the edges.
//
// Thread safety:
//
//   - A Graph is not synchronized. ShortestPaths only reads it, so concurrent
//     queries are safe as long as nobody calls AddEdge at the same time.
//
// Example:
//
//	g, _ := dijkstra.NewGraph(3)
//	_ = g.AddEdge(0, 1, 1)
//	_ = g.AddEdge(1, 2, 2)
//	_ = g.AddEdge(0, 2, 5)
//
//	dist, prev, err := dijkstra.ShortestPaths(g, 0)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(dist[2], dijkstra.ExtractPath(dist, prev, 2)) // 3 [0 1 2]
package dijkstra
