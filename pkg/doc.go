// Package pkg provides the core libraries for dfscope edge classification.
//
// # Overview
//
// dfscope runs a deterministic depth-first search over a directed graph
// and labels every edge as Tree, Back, Forward or Cross. The pkg
// directory is organized into these areas:
//
//  1. [graph] - Graph storage, parsing and JSON serialization
//  2. [dfs] - The DFS forest and edge classification
//  3. [render] - DOT generation, Graphviz engines and the viewer
//  4. [cache] - Artifact caching (file, Redis, MongoDB, null)
//  5. [pipeline] - Orchestration (parse → classify → render)
//  6. [config] - TOML configuration
//  7. [errors] - Structured error codes shared by all packages
//  8. [observability] - Optional instrumentation hooks
//
// # Architecture
//
// The typical data flow through dfscope:
//
//	Edge-list input file
//	         ↓
//	    [graph] package (parse + sorted adjacency)
//	         ↓
//	    [dfs] package (timestamps + classification)
//	         ↓
//	    [render] package (DOT + PNG/SVG)
//	         ↓
//	    Terminal report / image / browser preview
//
// # Quick Start
//
// Classify a graph and render it:
//
//	import (
//	    "context"
//	    "github.com/matzehuels/dfscope/pkg/pipeline"
//	    "github.com/matzehuels/dfscope/pkg/render"
//	)
//
//	engine, _ := render.ByName("graphviz")
//	runner := pipeline.NewRunner(nil, engine, nil)
//	result, err := runner.Execute(context.Background(), pipeline.Options{
//	    Input:  "graph.txt",
//	    Format: render.FormatPNG,
//	})
//
// Or use the packages directly:
//
//	g, _ := graph.ParseFile("graph.txt")
//	forest := dfs.Compute(g)
//	for _, e := range forest.ClassifyAll(g) {
//	    fmt.Println(e)
//	}
package pkg
