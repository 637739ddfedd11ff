package domain

import (
	"errors"

	graphlib "github.com/dominikbraun/graph"
)

// DepGraph records directed "analysis of X touched Y" edges discovered during
// module and type-reference resolution. Edges only accumulate: once a
// dependency has been seen it is never forgotten, even if a later version of
// the file no longer imports it. Reachability therefore over-approximates,
// which is the safe direction for downstream invalidation.
//
// The per-file edge lists keep insertion order and duplicates; deduplication
// happens at query time. Absence of an entry means "no known dependencies",
// not "confirmed none".
type DepGraph struct {
	edges map[string][]string
	graph graphlib.Graph[string, string]
}

// NewDepGraph creates an empty DepGraph.
func NewDepGraph() *DepGraph {
	return &DepGraph{
		edges: make(map[string][]string),
		graph: graphlib.New(graphlib.StringHash, graphlib.Directed()),
	}
}

// Add appends dependency edges from containingFile to each of deps.
func (g *DepGraph) Add(containingFile string, deps ...string) {
	g.edges[containingFile] = append(g.edges[containingFile], deps...)

	g.addVertex(containingFile)
	for _, dep := range deps {
		g.addVertex(dep)
		if err := g.graph.AddEdge(containingFile, dep); err != nil &&
			!errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
			// The only other failure mode is a missing vertex, which the
			// addVertex calls above rule out.
			continue
		}
	}
}

func (g *DepGraph) addVertex(v string) {
	if err := g.graph.AddVertex(v); err != nil &&
		!errors.Is(err, graphlib.ErrVertexAlreadyExists) {
		return
	}
}

// Direct returns the recorded direct edge list for file, in insertion order,
// or an empty slice if none were recorded.
func (g *DepGraph) Direct(file string) []string {
	return g.edges[file]
}

// ReachableFrom returns every file transitively reachable from root via
// recorded edges, each exactly once, in traversal order. The root itself is
// excluded unless a cycle leads back to it.
func (g *DepGraph) ReachableFrom(root string) []string {
	seen := make(map[string]bool)
	var result []string

	for _, dep := range g.dedupedDirect(root) {
		// DFS explores everything reachable from dep; the shared seen set
		// keeps each file in the result exactly once across starts.
		_ = graphlib.DFS(g.graph, dep, func(node string) bool {
			if !seen[node] {
				seen[node] = true
				result = append(result, node)
			}
			return false
		})
	}
	return result
}

func (g *DepGraph) dedupedDirect(file string) []string {
	direct := g.edges[file]
	seen := make(map[string]bool, len(direct))
	deduped := make([]string, 0, len(direct))
	for _, dep := range direct {
		if !seen[dep] {
			seen[dep] = true
			deduped = append(deduped, dep)
		}
	}
	return deduped
}
