package cache

import (
	"context"
	"time"
)

// NullCache stores nothing; every Get misses. It backs --no-cache.
type NullCache struct{}

// NewNullCache returns a [Cache] that never hits.
func NewNullCache() Cache { return &NullCache{} }

// Get always misses.
func (*NullCache) Get(context.Context, string) ([]byte, bool, error) {
	return nil, false, nil
}

// Set discards data.
func (*NullCache) Set(context.Context, string, []byte, time.Duration) error {
	return nil
}

func (*NullCache) Delete(context.Context, string) error {
	return nil
}

func (*NullCache) Close() error {
	return nil
}

var _ Cache = (*NullCache)(nil)
