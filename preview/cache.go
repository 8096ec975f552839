// Package preview acquires and caches link metadata. Previews are
// decorative: every failure resolves to nil metadata and is never surfaced
// to the user.
package preview

import (
	"context"
	"net/url"
	"sync"
	"time"

	"github.com/familykitchen/recipeshelf/internal/fetchq"
	"github.com/familykitchen/recipeshelf/internal/types"
)

// Source produces metadata for a URL. Implemented by the recipeshelf
// Client (remote preview endpoint) and by Scraper (local og-tag
// extraction).
type Source interface {
	FetchPreview(ctx context.Context, url string) (*types.PreviewMetadata, error)
}

// Lookup is the promise-shaped cache slot. It is stored in the cache
// before its fetch settles, so every concurrent request for one URL shares
// a single network call.
type Lookup struct {
	done chan struct{}
	meta *types.PreviewMetadata
}

// Done is closed once the lookup has settled.
func (l *Lookup) Done() <-chan struct{} { return l.done }

// Wait blocks until the lookup settles or ctx expires. It returns nil
// metadata in both the failure and the timeout case.
func (l *Lookup) Wait(ctx context.Context) *types.PreviewMetadata {
	select {
	case <-l.done:
		return l.meta
	case <-ctx.Done():
		return nil
	}
}

// Meta returns the resolved metadata without blocking; nil until the
// lookup settles and nil forever if it failed.
func (l *Lookup) Meta() *types.PreviewMetadata {
	select {
	case <-l.done:
		return l.meta
	default:
		return nil
	}
}

// Cache memoizes lookups per URL for the lifetime of the session. It never
// evicts and never retries: a URL's slot is created once and fetched once,
// even if the fetch fails.
type Cache struct {
	src          Source
	queue        *fetchq.Queue
	fetchTimeout time.Duration

	mu      sync.Mutex
	lookups map[string]*Lookup
}

// CacheOption configures a Cache during construction.
type CacheOption func(*Cache)

// WithQueueConfig tunes the fetch worker pool.
func WithQueueConfig(cfg fetchq.Config) CacheOption {
	return func(c *Cache) { c.queue = fetchq.New(cfg) }
}

// WithFetchTimeout bounds a single metadata fetch. Default 8s.
func WithFetchTimeout(d time.Duration) CacheOption {
	return func(c *Cache) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// NewCache builds a cache over src and starts its fetch workers.
func NewCache(src Source, opts ...CacheOption) *Cache {
	c := &Cache{
		src:          src,
		fetchTimeout: 8 * time.Second,
		lookups:      make(map[string]*Lookup),
	}
	for _, opt := range opts {
		opt(c)
	}
	if c.queue == nil {
		c.queue = fetchq.New(fetchq.Config{})
	}
	return c
}

// Get returns the lookup for rawURL, starting a fetch on first request.
// The pending slot is registered before the fetch is issued; a second
// caller arriving while the first fetch is in flight receives the same
// Lookup rather than triggering a second request.
func (c *Cache) Get(rawURL string) *Lookup {
	c.mu.Lock()
	if l, ok := c.lookups[rawURL]; ok {
		c.mu.Unlock()
		cacheHitsTotal.Inc()
		return l
	}
	l := &Lookup{done: make(chan struct{})}
	c.lookups[rawURL] = l
	c.mu.Unlock()
	cacheMissesTotal.Inc()

	job := fetchq.JobFunc(func(context.Context) error {
		ctx, cancel := context.WithTimeout(context.Background(), c.fetchTimeout)
		defer cancel()
		meta, err := c.src.FetchPreview(ctx, rawURL)
		if err == nil {
			l.meta = meta
		}
		close(l.done)
		return err
	})
	if err := c.queue.Submit(context.Background(), hostOf(rawURL), job); err != nil {
		// Could not even enqueue; resolve the slot empty. The URL stays
		// memoized so it is not re-requested this session.
		close(l.done)
	}
	return l
}

// Close stops the fetch workers after draining queued lookups.
func (c *Cache) Close() {
	c.queue.Stop()
}

// hostOf keys the fetch queue so lookups against one site stay ordered.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
