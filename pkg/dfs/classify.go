package dfs

import (
	"fmt"

	"github.com/matzehuels/dfscope/pkg/graph"
)

// Kind is the DFS classification of a directed edge.
type Kind int

const (
	// Tree marks the edge over which a vertex was first discovered.
	Tree Kind = iota
	// Back marks an edge into a proper ancestor in the DFS forest.
	Back
	// Forward marks an edge into a proper descendant that is not a
	// direct tree child.
	Forward
	// Cross marks an edge between vertices with disjoint
	// discovery/finish intervals, possibly in different forest trees.
	Cross
)

// String returns the capitalized kind name used in reports.
func (k Kind) String() string {
	switch k {
	case Tree:
		return "Tree"
	case Back:
		return "Back"
	case Forward:
		return "Forward"
	case Cross:
		return "Cross"
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Kinds lists all edge kinds in classification precedence order.
func Kinds() []Kind { return []Kind{Tree, Back, Forward, Cross} }

// Classify returns the kind of edge (u, v).
//
// The predicates are evaluated in precedence order and are mutually
// exclusive over real edges thanks to the interval-nesting property:
//
//  1. Tree:    parent[v] == u
//  2. Back:    d[v] < d[u] and f[v] > f[u]  (v's interval contains u's)
//  3. Forward: d[u] < d[v] and f[u] > f[v]  (u's interval contains v's)
//  4. Cross:   otherwise (the intervals are disjoint)
//
// The parent map alone decides Tree membership; the tree-edge list exists
// for reporting, never for classification. Classify is pure: it reads the
// forest and nothing else.
func (f *Forest) Classify(u, v int) Kind {
	switch {
	case f.Parent[v] == u:
		return Tree
	case f.Discovery[v] < f.Discovery[u] && f.Finish[v] > f.Finish[u]:
		return Back
	case f.Discovery[u] < f.Discovery[v] && f.Finish[u] > f.Finish[v]:
		return Forward
	}
	return Cross
}

// Edge is a classified directed edge.
type Edge struct {
	U    int  `json:"from"`
	V    int  `json:"to"`
	Kind Kind `json:"-"`
}

// String renders the report line "u -> v : Kind".
func (e Edge) String() string { return fmt.Sprintf("%d -> %d : %s", e.U, e.V, e.Kind) }

// ClassifyOutgoing classifies every outgoing edge of u in adjacency order.
// This backs the single-vertex query report.
func (f *Forest) ClassifyOutgoing(g *graph.Graph, u int) []Edge {
	nbs := g.Neighbors(u)
	edges := make([]Edge, 0, len(nbs))
	for _, v := range nbs {
		edges = append(edges, Edge{U: u, V: v, Kind: f.Classify(u, v)})
	}
	return edges
}

// ClassifyAll classifies every adjacency entry of g, vertices in ascending
// order and neighbors in adjacency order. This backs rendering.
func (f *Forest) ClassifyAll(g *graph.Graph) []Edge {
	edges := make([]Edge, 0, g.EdgeCount())
	for u := 1; u <= g.VertexCount(); u++ {
		for _, v := range g.Neighbors(u) {
			edges = append(edges, Edge{U: u, V: v, Kind: f.Classify(u, v)})
		}
	}
	return edges
}
