// Package dijkstra implements Dijkstra's shortest-path algorithm on weighted graphs.
//
// Dijkstra computes the minimum-cost path from a single source vertex to all
// other reachable vertices in a graph with non-negative edge weights.
// It processes vertices in order of increasing distance using a min-heap priority queue,
// relaxing edges and updating distances accordingly.
//
// Notes on implementation choices:
//
//   - We use a "lazy" decrease-key strategy: pushing duplicates into the heap and ignoring stale entries.
//   - A vertex popped while unvisited has its final distance; it is never improved afterwards.
//   - Negative weights are rejected by Graph.AddEdge, so no pre-scan is performed here.
package dijkstra

import "container/heap"

// ShortestPaths computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: dist[v] is the minimum total weight of a path source→v, or Inf if unreachable.
//   - prev: prev[v] == u means the shortest path to v found by the search ends with u→v.
//     prev[source] and prev[v] for unreachable v are NoPredecessor.
//   - err:  ErrNilGraph or ErrSourceOutOfRange; nil otherwise.
//
// On success both slices have length g.NumVertices() and are owned by the caller.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V + E)
func ShortestPaths(g *Graph, source int) ([]int64, []int, error) {
	// 1) Validate inputs.
	if g == nil {
		return nil, nil, ErrNilGraph
	}
	n := g.NumVertices()
	if source < 0 || source >= n {
		return nil, nil, ErrSourceOutOfRange
	}

	// 2) Allocate fresh per-call state and run.
	r := &runner{
		g:       g,
		source:  source,
		dist:    make([]int64, n),
		prev:    make([]int, n),
		visited: make([]bool, n),
		pq:      make(nodePQ, 0, n),
	}
	r.init()
	r.process()

	return r.dist, r.prev, nil
}

// ExtractPath rebuilds the vertex sequence source→…→dest from the output of
// ShortestPaths.
//
// Returns nil when dest is unreachable (dist[dest] == Inf) or not a valid
// index. For dest == source the result is the single-element path [source].
// Runs in O(path length).
func ExtractPath(dist []int64, prev []int, dest int) []int {
	if dest < 0 || dest >= len(dist) || dest >= len(prev) {
		return nil
	}
	if dist[dest] == Inf {
		return nil
	}

	// Walk predecessors back to the source, then reverse into source → dest order.
	var path []int
	for at := dest; at != NoPredecessor; at = prev[at] {
		path = append(path, at)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}

// runner holds the mutable state for a single Dijkstra execution.
type runner struct {
	g       *Graph  // The input graph; read-only within ShortestPaths.
	source  int     // Index of the source vertex.
	dist    []int64 // dist[v] = current best distance from source.
	prev    []int   // prev[v] = predecessor on the current best path.
	visited []bool  // visited[v] = distance of v is finalized.
	pq      nodePQ  // Min-heap of nodeItem for the lazy priority queue.
}

// init sets dist to Inf and prev to NoPredecessor everywhere, then seeds the
// heap with (source, 0).
func (r *runner) init() {
	for v := range r.dist {
		r.dist[v] = Inf
		r.prev[v] = NoPredecessor
	}
	r.dist[r.source] = 0

	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{id: r.source, dist: 0})
}

// process is the core loop of Dijkstra's algorithm. It repeatedly extracts the vertex
// with the minimum distance from the source and relaxes its outgoing edges.
// The loop ends when the heap is empty, i.e. all reachable vertices are finalized.
func (r *runner) process() {
	for r.pq.Len() > 0 {
		item := heap.Pop(&r.pq).(nodeItem)

		// Skip stale heap entries for vertices already finalized.
		if r.visited[item.id] {
			continue
		}
		r.visited[item.id] = true

		r.relax(item.id)
	}
}

// relax examines each edge outgoing from u and attempts to improve distances to its neighbors.
// Assumes r.dist[u] is finalized.
func (r *runner) relax(u int) {
	du := r.dist[u]
	for _, e := range r.g.adj[u] {
		v := e.To
		if r.visited[v] {
			continue
		}

		// Sums that would reach Inf are treated as unreachable instead of wrapping.
		if e.Weight >= Inf-du {
			continue
		}

		// Strict "<" keeps the first-discovered predecessor among equal-cost paths.
		newDist := du + e.Weight
		if newDist >= r.dist[v] {
			continue
		}
		r.dist[v] = newDist
		r.prev[v] = u

		// Lazy decrease-key: the outdated entry for v stays in the heap and is
		// dropped when popped, because visited[v] will be true by then.
		heap.Push(&r.pq, nodeItem{id: v, dist: newDist})
	}
}

// nodeItem represents a vertex and its tentative distance at push time.
type nodeItem struct {
	id   int   // vertex index
	dist int64 // distance from source
}

// nodePQ is a min-heap of nodeItem ordered by dist ascending.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller dist → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].dist < pq[j].dist }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap.
// Called by heap.Push; x must be of type nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element of the backing slice.
// Called by heap.Pop after it has moved the minimum there.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}
