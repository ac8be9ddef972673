// Package memo provides a read-through, least-recently-used result cache
// keyed by exact argument value.
package memo

import (
	"context"
	"errors"
	"fmt"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"
)

// DefaultCapacity is the number of distinct keys kept per cache.
const DefaultCapacity = 128

// Observer receives cache events. Implementations must be safe for
// concurrent use.
type Observer interface {
	Hit(cache string)
	Miss(cache string)
	Evict(cache string)
}

// FetchFunc computes the value for a key on a cache miss. On failure it
// returns the fallback value to hand to callers along with the error.
type FetchFunc[V any] func(ctx context.Context) (V, error)

// Cache memoizes one operation. Entries never expire; the least recently
// used entry is evicted once more than Capacity distinct keys are stored.
// Concurrent misses on the same key share a single fetch.
type Cache[K comparable, V any] struct {
	name          string
	capacity      int
	entries       *lru.Cache[K, V]
	group         singleflight.Group
	cacheFailures bool
	observer      Observer
}

// Option configures a Cache.
type Option func(*options)

type options struct {
	capacity      int
	cacheFailures bool
	observer      Observer
}

// WithCapacity sets the maximum number of distinct keys.
// Non-positive values fall back to DefaultCapacity.
func WithCapacity(n int) Option {
	return func(o *options) {
		o.capacity = n
	}
}

// WithCacheFailures stores the fallback value of a failed fetch like a
// successful one, so the key is not retried until it is evicted.
func WithCacheFailures(enabled bool) Option {
	return func(o *options) {
		o.cacheFailures = enabled
	}
}

// WithObserver reports hits, misses and evictions.
func WithObserver(obs Observer) Option {
	return func(o *options) {
		o.observer = obs
	}
}

// New creates a cache. The name labels observer events.
func New[K comparable, V any](name string, opts ...Option) *Cache[K, V] {
	o := options{capacity: DefaultCapacity}
	for _, opt := range opts {
		opt(&o)
	}
	if o.capacity <= 0 {
		o.capacity = DefaultCapacity
	}

	c := &Cache[K, V]{
		name:          name,
		capacity:      o.capacity,
		cacheFailures: o.cacheFailures,
		observer:      o.observer,
	}

	// NewWithEvict only fails for a non-positive size.
	entries, err := lru.NewWithEvict[K, V](o.capacity, func(K, V) {
		if c.observer != nil {
			c.observer.Evict(c.name)
		}
	})
	if err != nil {
		panic(fmt.Sprintf("memo: %v", err))
	}
	c.entries = entries
	return c
}

type flightResult[V any] struct {
	value V
}

// Get returns the cached value for key, calling fetch on a miss.
// The error of a failed fetch is returned only to the callers that shared
// that fetch; later hits on a cached failure return a nil error.
//
// The shared fetch ignores ctx cancellation and keeps running for the other
// callers on the same key. A caller whose ctx ends first returns the zero
// value and ctx.Err(). Results of a canceled or timed out fetch are never
// stored.
//
// Values are shared between all callers and must be treated as read-only.
func (c *Cache[K, V]) Get(ctx context.Context, key K, fetch FetchFunc[V]) (V, error) {
	if v, ok := c.entries.Get(key); ok {
		c.hit()
		return v, nil
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := c.group.DoChan(fmt.Sprint(key), func() (any, error) {
		// Another flight may have stored the key since the first lookup.
		if v, ok := c.entries.Get(key); ok {
			c.hit()
			return flightResult[V]{value: v}, nil
		}
		c.miss()

		v, err := fetch(flightCtx)
		if err == nil || (c.cacheFailures && !interrupted(err)) {
			c.entries.Add(key, v)
		}
		return flightResult[V]{value: v}, err
	})

	select {
	case res := <-ch:
		return res.Val.(flightResult[V]).value, res.Err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}

func interrupted(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Contains reports whether key is cached without touching its recency.
func (c *Cache[K, V]) Contains(key K) bool {
	return c.entries.Contains(key)
}

// Keys returns the cached keys from least to most recently used.
func (c *Cache[K, V]) Keys() []K {
	return c.entries.Keys()
}

// Len returns the number of cached keys.
func (c *Cache[K, V]) Len() int {
	return c.entries.Len()
}

// Capacity returns the maximum number of distinct keys.
func (c *Cache[K, V]) Capacity() int {
	return c.capacity
}

// Name returns the label given at construction.
func (c *Cache[K, V]) Name() string {
	return c.name
}

func (c *Cache[K, V]) hit() {
	if c.observer != nil {
		c.observer.Hit(c.name)
	}
}

func (c *Cache[K, V]) miss() {
	if c.observer != nil {
		c.observer.Miss(c.name)
	}
}
