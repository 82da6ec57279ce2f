package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Engine != "graphviz" {
		t.Errorf("Engine = %q, want graphviz", cfg.Engine)
	}
	if cfg.Format != "png" {
		t.Errorf("Format = %q, want png", cfg.Format)
	}
	if cfg.Cache.Backend != CacheFile {
		t.Errorf("Cache.Backend = %q, want file", cfg.Cache.Backend)
	}
	if cfg.Palette.Back != "red" {
		t.Errorf("Palette.Back = %q, want red", cfg.Palette.Back)
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
engine = "dot"
format = "svg"
labels = true

[palette]
back = "crimson"

[cache]
backend = "redis"

[cache.redis]
addr = "localhost:6379"
db = 2
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Engine != "dot" {
		t.Errorf("Engine = %q, want dot", cfg.Engine)
	}
	if cfg.Format != "svg" {
		t.Errorf("Format = %q, want svg", cfg.Format)
	}
	if !cfg.Labels {
		t.Error("Labels = false, want true")
	}
	if cfg.Palette.Back != "crimson" {
		t.Errorf("Palette.Back = %q, want crimson", cfg.Palette.Back)
	}
	// Unset palette entries keep their defaults.
	if cfg.Palette.Tree != "black" {
		t.Errorf("Palette.Tree = %q, want black", cfg.Palette.Tree)
	}
	if cfg.Cache.Backend != CacheRedis {
		t.Errorf("Cache.Backend = %q, want redis", cfg.Cache.Backend)
	}
	if cfg.Cache.Redis.Addr != "localhost:6379" {
		t.Errorf("Cache.Redis.Addr = %q", cfg.Cache.Redis.Addr)
	}
	if cfg.Cache.Redis.DB != 2 {
		t.Errorf("Cache.Redis.DB = %d, want 2", cfg.Cache.Redis.DB)
	}
}

func TestLoadMissingExplicit(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("expected error for missing explicit config")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("engine = [not toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:    "unknown engine",
			mutate:  func(c *Config) { c.Engine = "cairo" },
			wantErr: "unknown engine",
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Format = "pdf" },
			wantErr: "invalid format",
		},
		{
			name:    "unknown cache backend",
			mutate:  func(c *Config) { c.Cache.Backend = "memcached" },
			wantErr: "unknown cache backend",
		},
		{
			name:    "redis without addr",
			mutate:  func(c *Config) { c.Cache.Backend = CacheRedis },
			wantErr: "cache.redis.addr",
		},
		{
			name:    "mongo without uri",
			mutate:  func(c *Config) { c.Cache.Backend = CacheMongo },
			wantErr: "cache.mongo.uri",
		},
		{
			name:   "none backend",
			mutate: func(c *Config) { c.Cache.Backend = CacheNone },
		},
		{
			name:   "empty fields",
			mutate: func(c *Config) { c.Engine = ""; c.Format = ""; c.Cache.Backend = "" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("Validate() error = %v, want nil", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() = nil, want error containing %q", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}
