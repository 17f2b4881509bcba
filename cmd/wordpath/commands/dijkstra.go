package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/wordpath/dijkstra"
	"github.com/katalvlaran/wordpath/graphio"
)

func newDijkstraCommand(a *app) *cobra.Command {
	var source int

	cmd := &cobra.Command{
		Use:   "dijkstra [graph-file]",
		Short: "Print the shortest path and cost from the source to every vertex",
		Long: `Load a graph in edge-list format (vertex count, then "src dst weight"
triples) and print, for every vertex, the shortest path from the source
vertex followed by its total cost, or "No path found." when the vertex is
unreachable.

The graph file is prompted for on stdin when it is not given.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var path string
			if len(args) == 1 {
				path = args[0]
			} else {
				p, err := a.prompt(cmd, "Enter graph filename: ")
				if err != nil {
					return err
				}
				path = p
			}
			src := a.cfg.sourceVertex(source, cmd.Flags().Changed("source"))

			return a.runDijkstra(cmd.OutOrStdout(), path, src)
		},
	}

	cmd.Flags().IntVarP(&source, "source", "s", 0, "source vertex index")

	return cmd
}

// runDijkstra loads the graph at path and prints every vertex's path from src.
func (a *app) runDijkstra(out io.Writer, path string, src int) error {
	g, err := graphio.Load(path)
	if err != nil {
		return err
	}
	a.log.Debug("graph loaded", "path", path, "vertices", g.NumVertices(), "edges", g.NumEdges())

	start := time.Now()
	dist, prev, err := dijkstra.ShortestPaths(g, src)
	if err != nil {
		return fmt.Errorf("source %d: %w", src, err)
	}
	a.log.Debug("shortest paths computed", "source", src, "elapsed", time.Since(start))

	for v := 0; v < g.NumVertices(); v++ {
		printPath(out, dijkstra.ExtractPath(dist, prev, v), dist[v])
	}

	return nil
}

// printPath writes a path and its total, or "No path found." for an empty path.
func printPath(out io.Writer, path []int, total int64) {
	if len(path) == 0 {
		fmt.Fprintln(out, "No path found.")
		return
	}
	parts := make([]string, len(path))
	for i, v := range path {
		parts[i] = strconv.Itoa(v)
	}
	fmt.Fprintln(out, strings.Join(parts, " "))
	fmt.Fprintf(out, "Total cost is: %d\n", total)
}
