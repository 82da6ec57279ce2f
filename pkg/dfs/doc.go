// Package dfs computes depth-first-search forests over the dense directed
// graphs in pkg/graph and classifies edges from the resulting timestamps.
//
// # Forest
//
// Compute runs an iterative DFS (explicit frame stack, no recursion, so
// deep chains cannot blow the call stack) over every vertex 1..N in
// ascending order, restarting at each unvisited vertex. It assigns every
// vertex a discovery tick and a finish tick from one global counter: a
// vertex whose subtree contains k vertices occupies 2k consecutive ticks,
// and the maximum finish tick is always 2N. The discovery/finish intervals
// of any two vertices are either disjoint or nested, never partially
// overlapping; classification rests entirely on that property.
//
// # Classification
//
// Every directed edge (u, v) falls into exactly one of four kinds:
//
//	Tree     v was first discovered via this edge (parent[v] == u)
//	Back     v is a proper ancestor of u (v's interval contains u's)
//	Forward  v is a proper descendant of u but not a direct tree child
//	Cross    the intervals of u and v are disjoint
//
// Classify is a pure function of the forest: calling it any number of
// times, in any order, yields identical results.
package dfs
