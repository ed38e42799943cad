package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/ringlayout/pkg/cache"
	"github.com/matzehuels/ringlayout/pkg/config"
	"github.com/matzehuels/ringlayout/pkg/observability"
	"github.com/matzehuels/ringlayout/pkg/render"
	"github.com/matzehuels/ringlayout/pkg/render/sink"
)

// Runner encapsulates pipeline execution with caching.
// The CLI and the preview server share it.
//
// The Runner is stateless except for the cache and logger; it doesn't
// store pipeline results. Multiple goroutines can safely use the same
// Runner with different options.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Execute builds the ring described by f, applies its scripted operations
// and renders the requested formats.
func (r *Runner) Execute(ctx context.Context, f *config.File, opts Options) (*Result, error) {
	r.applyLogger(&opts)
	if err := opts.Validate(); err != nil {
		return nil, fmt.Errorf("invalid options: %w", err)
	}

	buildStart := time.Now()
	doc, l, err := Build(f, opts)
	if err != nil {
		return nil, fmt.Errorf("build: %w", err)
	}
	result := &Result{Document: doc, Layout: l}

	if !opts.SkipOps {
		applied, err := ApplyOps(doc, l, f.Ops, opts.Logger)
		if err != nil {
			return nil, fmt.Errorf("apply ops: %w", err)
		}
		result.Stats.Ops = applied
	}
	if opts.Settle {
		Settle(l)
	}
	result.Stats.BuildTime = time.Since(buildStart)
	result.Stats.Items = l.Len()

	r.Logger.Info("built ring",
		"items", l.Len(),
		"strategy", l.Strategy().Name(),
		"ops", result.Stats.Ops,
		"duration", result.Stats.BuildTime)

	renderStart := time.Now()
	result.Scene = render.Snapshot(l)
	artifacts, hash, hit, err := r.RenderWithCacheInfo(ctx, result.Scene, opts)
	if err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	result.Artifacts = artifacts
	result.SceneHash = hash
	result.CacheInfo.RenderHit = hit
	result.Stats.RenderTime = time.Since(renderStart)

	r.Logger.Info("rendered outputs",
		"formats", opts.Formats,
		"cached", hit,
		"duration", result.Stats.RenderTime)

	return result, nil
}

// RenderWithCacheInfo renders a scene with caching. It returns the
// artifacts, the scene hash and whether every artifact came from cache.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, s render.Scene, opts Options) (map[string][]byte, string, bool, error) {
	if err := opts.Validate(); err != nil {
		return nil, "", false, err
	}

	sceneData, err := sink.RenderJSON(s)
	if err != nil {
		return nil, "", false, fmt.Errorf("serialize scene for cache key: %w", err)
	}
	sceneHash := cache.Hash(sceneData)

	hooks := observability.Render()
	cacheHooks := observability.Cache()
	hooks.OnRenderStart(ctx, opts.Formats, len(s.Items))
	start := time.Now()

	if !opts.Refresh {
		artifacts := make(map[string][]byte, len(opts.Formats))
		for _, format := range opts.Formats {
			key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
			data, hit, err := r.Cache.Get(ctx, key)
			if err != nil || !hit {
				cacheHooks.OnCacheMiss(ctx, "artifact")
				break
			}
			cacheHooks.OnCacheHit(ctx, "artifact")
			artifacts[format] = data
		}
		if len(artifacts) == len(opts.Formats) {
			hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
			return artifacts, sceneHash, true, nil
		}
	}

	rendered, err := Render(ctx, s, opts)
	hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
	if err != nil {
		return nil, sceneHash, false, err
	}

	for format, data := range rendered {
		key := r.Keyer.ArtifactKey(sceneHash, opts.ArtifactKeyOpts(format))
		if err := r.Cache.Set(ctx, key, data, cache.TTLArtifact); err != nil {
			r.Logger.Warn("cache write failed", "format", format, "err", err)
			continue
		}
		cacheHooks.OnCacheSet(ctx, "artifact", len(data))
	}

	return rendered, sceneHash, false, nil
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// applyLogger sets the runner's logger on options if not already set.
func (r *Runner) applyLogger(opts *Options) {
	if opts.Logger == nil {
		opts.Logger = r.Logger
	}
}
