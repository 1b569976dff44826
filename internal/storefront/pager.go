// Package storefront implements the client-facing listing state machine:
// accumulated pages, the full-page "has more" heuristic, a single-flight
// loading guard, and discarding of fetches that resolve after the filter
// they were issued under has changed.
package storefront

import (
	"context"
	"sync"

	"github.com/floracart/floracart/internal/catalog/products"
)

// FetchFunc resolves one page of products after the given cursor. It
// returns the page, the cursor of its last row, and any fetch error.
type FetchFunc func(ctx context.Context, categorySlug, after string, limit int) ([]products.Product, string, error)

// Pager accumulates listing pages for one filter context. Switching the
// filter resets all accumulated state and bumps a generation counter;
// in-flight results from an older generation are dropped on arrival.
type Pager struct {
	mu       sync.Mutex
	fetch    FetchFunc
	pageSize int

	filter  string
	cursor  string
	gen     uint64
	items   []products.Product
	hasMore bool
	loading bool
	lastErr error
}

// New constructs a Pager. A non-positive pageSize falls back to the
// storefront default.
func New(fetch FetchFunc, pageSize int) *Pager {
	if pageSize < 1 {
		pageSize = products.DefaultPageSize
	}
	return &Pager{fetch: fetch, pageSize: pageSize, hasMore: true}
}

// SetFilter switches the category filter and clears accumulated results,
// cursor, and error state before any new page resolves.
func (p *Pager) SetFilter(categorySlug string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.filter = categorySlug
	p.cursor = ""
	p.items = nil
	p.hasMore = true
	p.loading = false
	p.lastErr = nil
	p.gen++
}

// LoadMore fetches the next page and appends it to the accumulated list.
// It reports whether a fetch was issued: calls made while another fetch
// is in flight, or after the listing is exhausted, are no-ops.
func (p *Pager) LoadMore(ctx context.Context) bool {
	p.mu.Lock()
	if p.loading || !p.hasMore {
		p.mu.Unlock()
		return false
	}
	p.loading = true
	gen := p.gen
	filter := p.filter
	cursor := p.cursor
	size := p.pageSize
	p.mu.Unlock()

	items, next, err := p.fetch(ctx, filter, cursor, size)

	p.mu.Lock()
	defer p.mu.Unlock()
	if gen != p.gen {
		// The filter changed while this fetch was in flight; the state
		// it would apply to no longer exists.
		return true
	}
	p.loading = false
	if err != nil {
		p.lastErr = err
		return true
	}
	p.lastErr = nil
	p.items = append(p.items, items...)
	if next != "" {
		p.cursor = next
	}
	p.hasMore = len(items) == size
	return true
}

// Items returns a copy of the accumulated products.
func (p *Pager) Items() []products.Product {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]products.Product, len(p.items))
	copy(out, p.items)
	return out
}

// HasMore reports whether another page may exist. It is a heuristic based
// on the last page being full, not an authoritative count.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Loading reports whether a fetch is currently in flight.
func (p *Pager) Loading() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.loading
}

// Err returns the error from the most recent fetch, if any. Accumulated
// results survive a failed fetch untouched.
func (p *Pager) Err() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.lastErr
}
