package observability

import (
	"context"
	"testing"
	"time"
)

// recordingPipelineHooks counts received events.
type recordingPipelineHooks struct {
	NoopPipelineHooks
	parses     int
	classifies int
	renders    int
}

func (r *recordingPipelineHooks) OnParseComplete(context.Context, string, int, int, time.Duration, error) {
	r.parses++
}

func (r *recordingPipelineHooks) OnClassifyComplete(context.Context, int, time.Duration) {
	r.classifies++
}

func (r *recordingPipelineHooks) OnRenderComplete(context.Context, string, string, int, time.Duration, error) {
	r.renders++
}

type recordingCacheHooks struct {
	NoopCacheHooks
	hits, misses int
}

func (r *recordingCacheHooks) OnCacheHit(context.Context, string)  { r.hits++ }
func (r *recordingCacheHooks) OnCacheMiss(context.Context, string) { r.misses++ }

func TestDefaultsAreNoop(t *testing.T) {
	Reset()
	ctx := context.Background()

	// Must not panic.
	Pipeline().OnParseStart(ctx, "graph.txt")
	Pipeline().OnParseComplete(ctx, "graph.txt", 3, 3, time.Millisecond, nil)
	Pipeline().OnClassifyStart(ctx, 3)
	Pipeline().OnClassifyComplete(ctx, 3, time.Millisecond)
	Pipeline().OnRenderStart(ctx, "graphviz", "png")
	Pipeline().OnRenderComplete(ctx, "graphviz", "png", 1024, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "artifact")
	Cache().OnCacheMiss(ctx, "artifact")
	Cache().OnCacheSet(ctx, "artifact", 1024)
}

func TestSetAndResetHooks(t *testing.T) {
	defer Reset()

	ph := &recordingPipelineHooks{}
	ch := &recordingCacheHooks{}
	SetPipelineHooks(ph)
	SetCacheHooks(ch)

	ctx := context.Background()
	Pipeline().OnParseComplete(ctx, "graph.txt", 3, 3, time.Millisecond, nil)
	Pipeline().OnClassifyComplete(ctx, 3, time.Millisecond)
	Pipeline().OnRenderComplete(ctx, "dot", "svg", 512, time.Millisecond, nil)
	Cache().OnCacheHit(ctx, "dot")
	Cache().OnCacheMiss(ctx, "artifact")

	if ph.parses != 1 || ph.classifies != 1 || ph.renders != 1 {
		t.Errorf("pipeline events = %d/%d/%d, want 1/1/1", ph.parses, ph.classifies, ph.renders)
	}
	if ch.hits != 1 || ch.misses != 1 {
		t.Errorf("cache events = %d hits, %d misses, want 1, 1", ch.hits, ch.misses)
	}

	Reset()
	if _, ok := Pipeline().(NoopPipelineHooks); !ok {
		t.Error("Reset did not restore noop pipeline hooks")
	}
}

func TestSetNilKeepsCurrent(t *testing.T) {
	defer Reset()

	ph := &recordingPipelineHooks{}
	SetPipelineHooks(ph)
	SetPipelineHooks(nil)

	if Pipeline() != ph {
		t.Error("SetPipelineHooks(nil) replaced the registered hooks")
	}
}
