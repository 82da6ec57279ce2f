// Package config loads dfscope settings from a TOML file.
//
// Configuration is optional. Every field has a sensible default and CLI
// flags take precedence, so a missing file is never an error unless the
// user asked for a specific path.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/dfscope/pkg/cache"
	"github.com/matzehuels/dfscope/pkg/render"
)

// Cache backend names accepted in the [cache] section.
const (
	CacheFile  = "file"
	CacheRedis = "redis"
	CacheMongo = "mongo"
	CacheNone  = "none"
)

// Config is the dfscope configuration file shape.
type Config struct {
	// Engine selects the rendering backend: "graphviz" or "dot".
	Engine string `toml:"engine"`

	// Format is the default output format for render.
	Format string `toml:"format"`

	// Labels annotates rendered edges with their kind names.
	Labels bool `toml:"labels"`

	Palette render.Palette `toml:"palette"`
	Cache   CacheConfig    `toml:"cache"`
}

// CacheConfig selects and configures the artifact cache backend.
type CacheConfig struct {
	// Backend is one of "file", "redis", "mongo" or "none".
	Backend string `toml:"backend"`

	// Dir overrides the file backend's cache directory.
	Dir string `toml:"dir"`

	Redis cache.RedisConfig `toml:"redis"`
	Mongo cache.MongoConfig `toml:"mongo"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Engine:  "graphviz",
		Format:  "png",
		Palette: render.DefaultPalette(),
		Cache: CacheConfig{
			Backend: CacheFile,
		},
	}
}

// DefaultPath returns the conventional config location under the user
// config directory, or "" when that directory cannot be determined.
func DefaultPath() string {
	base, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(base, "dfscope", "config.toml")
}

// Load reads the config at path on top of the defaults. An empty path
// falls back to DefaultPath, and a missing file at that fallback simply
// yields the defaults.
func Load(path string) (*Config, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultPath()
	}

	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks that enum-like fields hold known values.
func (c *Config) Validate() error {
	switch c.Engine {
	case "", "graphviz", "dot":
	default:
		return fmt.Errorf("unknown engine %q (want graphviz or dot)", c.Engine)
	}

	if c.Format != "" {
		if err := render.ValidateFormat(render.Format(c.Format)); err != nil {
			return err
		}
	}

	switch c.Cache.Backend {
	case "", CacheFile, CacheRedis, CacheMongo, CacheNone:
	default:
		return fmt.Errorf("unknown cache backend %q (want file, redis, mongo or none)", c.Cache.Backend)
	}

	if c.Cache.Backend == CacheRedis && c.Cache.Redis.Addr == "" {
		return fmt.Errorf("cache backend redis requires cache.redis.addr")
	}
	if c.Cache.Backend == CacheMongo && c.Cache.Mongo.URI == "" {
		return fmt.Errorf("cache backend mongo requires cache.mongo.uri")
	}
	return nil
}
