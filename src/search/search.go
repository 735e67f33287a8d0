// Package search resolves a free-text question to a short web summary used
// to ground generated answers. Lookups are best-effort enrichment: callers
// collapse any error to an empty summary at the orchestration boundary.
package search

import "context"

// Provider performs a single web lookup for a query.
type Provider interface {
	Lookup(ctx context.Context, query string) (string, error)
}
