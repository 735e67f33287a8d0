package search

import (
	"context"

	"github.com/scout-plus/scout-ai/src/cache"
)

// Cached wraps a Provider with a memoization store so repeated identical
// queries skip the outbound call. Only successful lookups are cached;
// failures stay uncached so a later request can retry.
type Cached struct {
	inner Provider
	store cache.Store
}

func NewCached(inner Provider, store cache.Store) *Cached {
	return &Cached{inner: inner, store: store}
}

func (c *Cached) Lookup(ctx context.Context, query string) (string, error) {
	if v, ok := c.store.Get(ctx, query); ok {
		return v, nil
	}

	v, err := c.inner.Lookup(ctx, query)
	if err != nil {
		return "", err
	}

	c.store.Set(ctx, query, v)
	return v, nil
}
