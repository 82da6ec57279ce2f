// Package graph implements the directed graph store used by dfscope.
//
// Vertices are dense integer identifiers in [1, N] with no payload. Edges
// are ordered pairs (u, v); duplicates and self-loops are permitted. The
// adjacency list keeps a deterministic neighbor order: after all edges are
// inserted, SortAdjacency sorts every neighbor list ascending, which fixes
// the traversal order and therefore the full DFS timestamp assignment.
//
// The package also provides two input layers:
//   - ParseReader / ParseFile read the plain edge-list format
//     ("<N> <M>" header followed by M "<u> <v>" lines)
//   - ReadGraph / WriteGraph serialize a graph as JSON
//
// A Graph is built once from input and never mutated after adjacency
// sorting; all downstream stages treat it as read-only.
package graph
