package graph

import (
	"errors"
	"slices"
)

var (
	// ErrNegativeVertexCount is returned by [New] when the vertex count is
	// negative. Zero is allowed and yields an empty graph.
	ErrNegativeVertexCount = errors.New("vertex count must not be negative")

	// ErrVertexOutOfRange is returned by [Graph.AddEdge] when an endpoint
	// lies outside [1, N]. Out-of-range ids are rejected at insertion time
	// so traversal never indexes past the adjacency bounds.
	ErrVertexOutOfRange = errors.New("vertex id out of range")
)

// Graph is a directed graph over the dense vertex set 1..N.
// Parallel edges and self-loops are kept as inserted; no deduplication
// happens anywhere. The zero value is not usable - use [New].
//
// Graph is not safe for concurrent mutation, but the whole tool runs a
// single linear flow: build, sort, then read-only traversal.
type Graph struct {
	n   int
	m   int     // edges actually inserted
	adj [][]int // 1-based; adj[0] is unused
}

// New creates a graph with vertices 1..n and no edges.
// Returns ErrNegativeVertexCount if n < 0.
func New(n int) (*Graph, error) {
	if n < 0 {
		return nil, ErrNegativeVertexCount
	}
	return &Graph{
		n:   n,
		adj: make([][]int, n+1),
	}, nil
}

// AddEdge appends v to u's neighbor list.
// Both endpoints must be in [1, N]; violations return ErrVertexOutOfRange.
// Duplicate edges and self-loops are accepted.
func (g *Graph) AddEdge(u, v int) error {
	if u < 1 || u > g.n {
		return ErrVertexOutOfRange
	}
	if v < 1 || v > g.n {
		return ErrVertexOutOfRange
	}
	g.adj[u] = append(g.adj[u], v)
	g.m++
	return nil
}

// SortAdjacency sorts every neighbor list ascending.
// Call it exactly once, after all edges are inserted and before traversal:
// neighbor order decides which edge becomes the tree edge when a vertex has
// several unvisited neighbors, so sorting is what makes runs deterministic.
func (g *Graph) SortAdjacency() {
	for v := 1; v <= g.n; v++ {
		slices.Sort(g.adj[v])
	}
}

// Neighbors returns v's neighbor list in adjacency order.
// Returns nil for out-of-range ids. The returned slice is a read-only view.
func (g *Graph) Neighbors(v int) []int {
	if v < 1 || v > g.n {
		return nil
	}
	return g.adj[v]
}

// HasVertex reports whether v is in [1, N].
func (g *Graph) HasVertex(v int) bool { return v >= 1 && v <= g.n }

// VertexCount returns N.
func (g *Graph) VertexCount() int { return g.n }

// EdgeCount returns the number of edges inserted so far.
func (g *Graph) EdgeCount() int { return g.m }

// OutDegree returns the number of outgoing edges of v,
// or 0 for out-of-range ids.
func (g *Graph) OutDegree(v int) int {
	if v < 1 || v > g.n {
		return 0
	}
	return len(g.adj[v])
}
