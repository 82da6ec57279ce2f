// Package pipeline provides the core classification pipeline for dfscope.
//
// This package implements the complete parse → classify → render pipeline
// shared by the CLI and the preview server. Centralizing it keeps caching
// and error semantics consistent across entry points.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Read the edge-list input into a graph.
//  2. Classify: Run the depth-first traversal and classify every edge.
//  3. Render: Generate DOT text and, when a rendering engine is present,
//     an image artifact.
//
// The render stage is best effort. When no engine is available the
// pipeline still returns the classification and the DOT text together
// with a non-fatal error, so callers can report the degradation without
// losing the analysis.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, engine, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    Input:  "graph.txt",
//	    Format: "png",
//	})
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dfscope/pkg/cache"
	"github.com/matzehuels/dfscope/pkg/dfs"
	"github.com/matzehuels/dfscope/pkg/errors"
	"github.com/matzehuels/dfscope/pkg/graph"
	"github.com/matzehuels/dfscope/pkg/render"
)

// DefaultFormat is the default image output format.
const DefaultFormat = render.FormatPNG

// Options contains all configuration for the classification pipeline.
type Options struct {
	// Input is the path of the edge-list file to analyze.
	Input string `json:"input"`

	// Format is the image output format (png or svg).
	Format render.Format `json:"format,omitempty"`

	// Labels annotates rendered edges with their kind names.
	Labels bool `json:"labels,omitempty"`

	// Palette overrides the default edge colors. Zero fields keep the
	// defaults.
	Palette render.Palette `json:"palette,omitempty"`

	// SkipRender stops the pipeline after DOT generation.
	SkipRender bool `json:"skip_render,omitempty"`

	// Refresh bypasses the artifact cache.
	Refresh bool `json:"refresh,omitempty"`

	// Logger receives stage progress. Defaults to a discarding logger.
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// ValidateAndSetDefaults checks required fields and applies defaults.
// Idempotent.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if o.Input == "" {
		return errors.New(errors.ErrCodeInvalidInput, "input path is required")
	}
	if o.Format == "" {
		o.Format = DefaultFormat
	}
	if err := render.ValidateFormat(o.Format); err != nil {
		return err
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	o.validated = true
	return nil
}

func (o *Options) renderOptions() render.Options {
	return render.Options{Palette: o.Palette, Labels: o.Labels}
}

func (o *Options) artifactKeyOpts(engine string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format:  string(o.Format),
		Engine:  engine,
		Labels:  o.Labels,
		Palette: o.Palette,
	}
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Graph is the parsed input graph with sorted adjacency lists.
	Graph *graph.Graph

	// Forest holds the traversal timestamps and parent links.
	Forest *dfs.Forest

	// Edges is every input edge with its classification, in adjacency
	// order.
	Edges []dfs.Edge

	// InputHash is the content hash of the input file.
	InputHash string

	// DOT is the generated Graphviz document.
	DOT string

	// Artifact holds the rendered image bytes, or nil when rendering was
	// skipped or unavailable.
	Artifact []byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	VertexCount  int
	EdgeCount    int
	ParseTime    time.Duration
	ClassifyTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for the cached pipeline stages.
type CacheInfo struct {
	DOTHit    bool // Whether the DOT document came from cache
	RenderHit bool // Whether the artifact came from cache
}
