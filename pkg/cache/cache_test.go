package cache

import (
	"bytes"
	"context"
	"testing"
	"time"
)

func TestFileCacheRoundTrip(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileCache: %v", err)
	}
	defer c.Close()

	if _, hit, err := c.Get(ctx, "missing"); err != nil || hit {
		t.Fatalf("Get(missing) = hit=%v err=%v, want miss", hit, err)
	}

	want := []byte("digraph dfs {}")
	if err := c.Set(ctx, "dot:abc", want, time.Hour); err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, hit, err := c.Get(ctx, "dot:abc")
	if err != nil || !hit {
		t.Fatalf("Get = hit=%v err=%v, want hit", hit, err)
	}
	if !bytes.Equal(got, want) {
		t.Errorf("Get = %q, want %q", got, want)
	}
}

func TestFileCacheExpiry(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Set(ctx, "k", []byte("v"), time.Millisecond); err != nil {
		t.Fatal(err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("expired entry should be a miss")
	}
}

func TestFileCacheDelete(t *testing.T) {
	ctx := context.Background()
	c, err := NewFileCache(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	if err := c.Delete(ctx, "never-set"); err != nil {
		t.Errorf("deleting a missing key should not error: %v", err)
	}

	_ = c.Set(ctx, "k", []byte("v"), 0)
	if err := c.Delete(ctx, "k"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, hit, _ := c.Get(ctx, "k"); hit {
		t.Error("deleted entry should be a miss")
	}
}

func TestNullCache(t *testing.T) {
	ctx := context.Background()
	c := NewNullCache()
	defer c.Close()

	if err := c.Set(ctx, "k", []byte("v"), time.Hour); err != nil {
		t.Errorf("Set: %v", err)
	}
	if _, hit, err := c.Get(ctx, "k"); hit || err != nil {
		t.Errorf("NullCache must never hit (hit=%v err=%v)", hit, err)
	}
	if err := c.Delete(ctx, "k"); err != nil {
		t.Errorf("Delete: %v", err)
	}
}

func TestHash(t *testing.T) {
	a := Hash([]byte("3 2\n1 2\n2 3\n"))
	b := Hash([]byte("3 2\n1 2\n2 3\n"))
	if a != b {
		t.Error("Hash must be deterministic")
	}
	if len(a) != 64 {
		t.Errorf("Hash length = %d, want 64", len(a))
	}
	if Hash([]byte("x")) == Hash([]byte("y")) {
		t.Error("distinct inputs should hash differently")
	}
}

func TestArtifactKey(t *testing.T) {
	h := Hash([]byte("input"))
	png := ArtifactKey(h, ArtifactKeyOpts{Format: "png", Engine: "graphviz"})
	svg := ArtifactKey(h, ArtifactKeyOpts{Format: "svg", Engine: "graphviz"})
	if png == svg {
		t.Error("different formats must key differently")
	}

	again := ArtifactKey(h, ArtifactKeyOpts{Format: "png", Engine: "graphviz"})
	if png != again {
		t.Error("identical options must key identically")
	}

	if dot := DOTKey(h, ArtifactKeyOpts{Format: "png", Engine: "graphviz"}); dot == png {
		t.Error("DOT text and artifacts must not share keys")
	}
}
