package dfs

import (
	"fmt"

	"github.com/matzehuels/dfscope/pkg/graph"
)

// TreeEdge is a parent→child edge of the DFS forest, in discovery order.
type TreeEdge struct {
	U int // parent (discovering vertex)
	V int // child (discovered vertex)
}

// String renders the edge as "u -> v".
func (e TreeEdge) String() string { return fmt.Sprintf("%d -> %d", e.U, e.V) }

// Forest holds the complete result of a DFS over all vertices 1..N.
// All slices are 1-based: index 0 is unused. Parent uses 0 as the
// "no parent" sentinel for forest roots. A Forest is immutable once
// returned by Compute.
type Forest struct {
	Discovery []int // tick at which each vertex was first visited
	Finish    []int // tick at which each vertex's subtree was exhausted
	Parent    []int // vertex that discovered each vertex; 0 for roots

	// TreeEdges lists the forest's tree edges in the order the child
	// vertices were discovered.
	TreeEdges []TreeEdge
}

// frame is one entry of the explicit DFS stack: the vertex being explored
// and the index of its next unexamined neighbor.
type frame struct {
	vertex int
	next   int
}

// Compute runs an iterative DFS forest over g.
//
// Roots are tried in ascending vertex order, and neighbor lists are walked
// in adjacency order, so after graph.SortAdjacency the whole timestamp
// assignment is deterministic. Every vertex gets a discovery and a finish
// tick whether or not it is reachable from vertex 1; the global counter
// ticks once per discovery and once per finish, ending at 2N.
func Compute(g *graph.Graph) *Forest {
	n := g.VertexCount()
	f := &Forest{
		Discovery: make([]int, n+1),
		Finish:    make([]int, n+1),
		Parent:    make([]int, n+1),
	}

	time := 0
	visited := make([]bool, n+1)
	var stack []frame

	for root := 1; root <= n; root++ {
		if visited[root] {
			continue
		}

		time++
		f.Discovery[root] = time
		visited[root] = true
		stack = append(stack, frame{vertex: root})

		for len(stack) > 0 {
			top := &stack[len(stack)-1]
			nbs := g.Neighbors(top.vertex)

			if top.next < len(nbs) {
				w := nbs[top.next]
				top.next++
				if visited[w] {
					continue // non-tree edge, classified later from timestamps
				}
				f.Parent[w] = top.vertex
				f.TreeEdges = append(f.TreeEdges, TreeEdge{U: top.vertex, V: w})
				time++
				f.Discovery[w] = time
				visited[w] = true
				stack = append(stack, frame{vertex: w})
				continue
			}

			// Neighbors exhausted: finish the vertex and pop its frame.
			time++
			f.Finish[top.vertex] = time
			stack = stack[:len(stack)-1]
		}
	}

	return f
}

// VertexCount returns the number of vertices the forest covers.
func (f *Forest) VertexCount() int { return len(f.Discovery) - 1 }

// IsRoot reports whether v started its own tree in the forest.
func (f *Forest) IsRoot(v int) bool { return f.Parent[v] == 0 }
