// Package cache provides byte-level caching for rendered ring artifacts.
//
// Backends implement [Cache]: [FileCache] for the CLI, [RedisCache] for
// shared deployments of the serve command, and [NullCache] when caching is
// disabled. Keys are built by a [Keyer] so every backend agrees on them.
package cache

import (
	"context"
	"time"
)

// TTLArtifact is how long rendered artifacts stay cached.
const TTLArtifact = 7 * 24 * time.Hour

// Cache stores opaque byte values under string keys.
//
// Get reports a miss with hit=false and a nil error. A ttl of zero stores
// the value without expiry.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, hit bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Clearer is implemented by backends that can drop every entry they own.
type Clearer interface {
	Clear(ctx context.Context) (int, error)
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey keys one rendered format of a scene.
	ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts are the render inputs that change an artifact.
type ArtifactKeyOpts struct {
	Format   string  `json:"format"`
	NoGuide  bool    `json:"no_guide,omitempty"`
	Angles   bool    `json:"angles,omitempty"`
	NodeSize float64 `json:"node_size,omitempty"`
}

// DefaultKeyer produces unscoped keys of the form kind:sha256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default key builder.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey implements [Keyer].
func (DefaultKeyer) ArtifactKey(sceneHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", sceneHash, opts)
}
