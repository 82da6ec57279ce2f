package pipeline

import (
	"context"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dfscope/pkg/cache"
	"github.com/matzehuels/dfscope/pkg/dfs"
	"github.com/matzehuels/dfscope/pkg/observability"
	"github.com/matzehuels/dfscope/pkg/render"
)

// Runner encapsulates pipeline execution with caching.
//
// The Runner is stateless except for the cache, engine and logger; it
// does not store pipeline results, so multiple goroutines can share one
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Engine render.Engine
	Logger *log.Logger
}

// NewRunner creates a runner.
// A nil cache disables caching, a nil engine disables image rendering,
// and a nil logger falls back to the default logger.
func NewRunner(c cache.Cache, engine render.Engine, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Engine: engine,
		Logger: logger,
	}
}

// Execute runs the complete parse → classify → render pipeline.
//
// Parse and classification failures return a nil result. Render stage
// failures are non-fatal: the returned result still carries the graph,
// the classification and the DOT text alongside the error, so callers
// can keep the analysis while reporting the missing image.
func (r *Runner) Execute(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	r.applyLogger(&opts)

	result := &Result{}

	// Stage 1: Parse
	parseStart := time.Now()
	observability.Pipeline().OnParseStart(ctx, opts.Input)
	g, inputHash, err := parseInput(opts.Input)
	if err != nil {
		observability.Pipeline().OnParseComplete(ctx, opts.Input, 0, 0, time.Since(parseStart), err)
		return nil, err
	}
	observability.Pipeline().OnParseComplete(ctx, opts.Input,
		g.VertexCount(), g.EdgeCount(), time.Since(parseStart), nil)
	result.Graph = g
	result.InputHash = inputHash
	result.Stats.ParseTime = time.Since(parseStart)
	result.Stats.VertexCount = g.VertexCount()
	result.Stats.EdgeCount = g.EdgeCount()

	opts.Logger.Info("parsed input",
		"vertices", g.VertexCount(),
		"edges", g.EdgeCount(),
		"duration", result.Stats.ParseTime)

	// Stage 2: Classify
	classifyStart := time.Now()
	observability.Pipeline().OnClassifyStart(ctx, g.VertexCount())
	result.Forest = dfs.Compute(g)
	result.Edges = result.Forest.ClassifyAll(g)
	result.Stats.ClassifyTime = time.Since(classifyStart)
	observability.Pipeline().OnClassifyComplete(ctx, g.VertexCount(), result.Stats.ClassifyTime)

	opts.Logger.Info("classified edges",
		"trees", countRoots(result.Forest),
		"duration", result.Stats.ClassifyTime)

	// Stage 3: Render
	renderStart := time.Now()
	dot, dotHit := r.generateDOT(ctx, result, opts)
	result.DOT = dot
	result.CacheInfo.DOTHit = dotHit

	if opts.SkipRender || r.Engine == nil {
		result.Stats.RenderTime = time.Since(renderStart)
		return result, nil
	}

	observability.Pipeline().OnRenderStart(ctx, r.Engine.Name(), string(opts.Format))
	artifact, renderHit, err := r.renderArtifact(ctx, result, opts)
	result.Stats.RenderTime = time.Since(renderStart)
	observability.Pipeline().OnRenderComplete(ctx, r.Engine.Name(), string(opts.Format),
		len(artifact), result.Stats.RenderTime, err)
	if err != nil {
		return result, err
	}
	result.Artifact = artifact
	result.CacheInfo.RenderHit = renderHit

	opts.Logger.Info("rendered artifact",
		"engine", r.Engine.Name(),
		"format", opts.Format,
		"bytes", len(artifact),
		"duration", result.Stats.RenderTime)

	return result, nil
}

// generateDOT returns the DOT document for the result, from cache when
// possible. Generation is cheap, so cache failures just regenerate.
func (r *Runner) generateDOT(ctx context.Context, result *Result, opts Options) (string, bool) {
	key := cache.DOTKey(result.InputHash, opts.artifactKeyOpts(""))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "dot")
			return string(data), true
		}
		observability.Cache().OnCacheMiss(ctx, "dot")
	}

	dot := render.ToDOT(result.Graph, result.Forest, opts.renderOptions())
	_ = r.Cache.Set(ctx, key, []byte(dot), cache.TTLArtifact)
	observability.Cache().OnCacheSet(ctx, "dot", len(dot))
	return dot, false
}

// renderArtifact produces the image bytes for the result, from cache
// when possible.
func (r *Runner) renderArtifact(ctx context.Context, result *Result, opts Options) ([]byte, bool, error) {
	if err := r.Engine.Available(ctx); err != nil {
		return nil, false, err
	}

	key := cache.ArtifactKey(result.InputHash, opts.artifactKeyOpts(r.Engine.Name()))

	if !opts.Refresh {
		if data, hit, err := r.Cache.Get(ctx, key); err == nil && hit {
			observability.Cache().OnCacheHit(ctx, "artifact")
			return data, true, nil
		}
		observability.Cache().OnCacheMiss(ctx, "artifact")
	}

	data, err := r.Engine.Render(ctx, result.DOT, opts.Format)
	if err != nil {
		return nil, false, err
	}
	_ = r.Cache.Set(ctx, key, data, cache.TTLArtifact)
	observability.Cache().OnCacheSet(ctx, "artifact", len(data))
	return data, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}

// countRoots counts traversal trees in the forest.
func countRoots(f *dfs.Forest) int {
	n := 0
	for v := 1; v <= f.VertexCount(); v++ {
		if f.IsRoot(v) {
			n++
		}
	}
	return n
}
