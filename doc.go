// Package wordpath is a small collection of two classic search algorithms,
// each in its own self-contained package.
//
// 🚀 What is wordpath?
//
//	Two independent engines plus the glue to run them from a terminal:
//		• Shortest paths: Dijkstra over dense-index weighted digraphs
//		• Word ladders: BFS over a dictionary with an edit-distance adjacency test
//
// Under the hood, everything is organized under these subpackages:
//
//	dijkstra/      Graph, ShortestPaths, ExtractPath
//	ladder/        Dictionary, EditDistanceWithin, IsAdjacent, Generate, Verify
//	graphio/       edge-list graph files → *dijkstra.Graph
//	wordlist/      whitespace-delimited word files → *ladder.Dictionary
//	cmd/wordpath/  the wordpath CLI (dijkstra, ladder, verify)
//
// Quick ASCII example:
//
//	(0) ──1──▶ (1) ──2──▶ (2)
//	 └──────────5─────────▲
//
// Dijkstra from 0 reaches 2 with cost 3 via 1, not 5 via the direct edge.
//
//	go install github.com/katalvlaran/wordpath/cmd/wordpath@latest
package wordpath
