package cli

import (
	"context"
	"io"
	"testing"

	"github.com/matzehuels/dfscope/pkg/config"
)

// An empty engine in the config must not produce a runner without an
// engine: that would report success while writing an empty image.
func TestNewRunnerDefaultEngine(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.cfg = &config.Config{
		Format: "png",
		Cache:  config.CacheConfig{Backend: config.CacheNone},
	}

	runner, err := c.newRunner(context.Background(), true, "")
	if err != nil {
		t.Fatalf("newRunner() error = %v", err)
	}
	if runner.Engine == nil {
		t.Fatal("runner has no engine")
	}
	if got := runner.Engine.Name(); got != config.Default().Engine {
		t.Errorf("engine = %q, want %q", got, config.Default().Engine)
	}
}

func TestNewRunnerEngineOverride(t *testing.T) {
	c := New(io.Discard, LogInfo)
	c.cfg = &config.Config{
		Engine: "graphviz",
		Cache:  config.CacheConfig{Backend: config.CacheNone},
	}

	runner, err := c.newRunner(context.Background(), true, "dot")
	if err != nil {
		t.Fatalf("newRunner() error = %v", err)
	}
	if got := runner.Engine.Name(); got != "dot" {
		t.Errorf("engine = %q, want %q", got, "dot")
	}
}
