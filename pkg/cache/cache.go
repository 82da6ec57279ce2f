// Package cache stores rendered artifacts keyed by input content.
//
// Rendering the same graph with the same options always produces the same
// bytes (the whole pipeline is deterministic), so artifacts are cached
// under a key derived from the input hash plus the render options. Four
// backends implement the same interface: a file cache for normal CLI use,
// Redis and MongoDB for shared caches, and a null cache that disables
// caching entirely.
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached.
// Artifacts are pure functions of their key, so the TTL exists only to
// bound storage growth.
const TTLArtifact = 30 * 24 * time.Hour

// Cache stores binary values with per-entry TTLs.
type Cache interface {
	// Get returns the value and whether it was present.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores a value; ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes a value; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Hash computes the SHA-256 hex digest of data.
// Full 64-character digests are used everywhere to rule out collisions.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// ArtifactKeyOpts captures every render option that changes artifact bytes.
type ArtifactKeyOpts struct {
	Format  string `json:"format"`
	Engine  string `json:"engine"`
	Labels  bool   `json:"labels"`
	Palette any    `json:"palette"`
}

// ArtifactKey derives the cache key for a rendered artifact.
// inputHash is the content hash of the parsed input; two files with the
// same bytes share cache entries regardless of path.
func ArtifactKey(inputHash string, opts ArtifactKeyOpts) string {
	data, _ := json.Marshal(opts)
	return fmt.Sprintf("artifact:%s:%s", inputHash, Hash(data))
}

// DOTKey derives the cache key for generated DOT text.
func DOTKey(inputHash string, opts ArtifactKeyOpts) string {
	opts.Format = "dot"
	opts.Engine = ""
	data, _ := json.Marshal(opts)
	return fmt.Sprintf("dot:%s:%s", inputHash, Hash(data))
}
