package memo

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type countingObserver struct {
	hits, misses, evictions atomic.Int32
}

func (o *countingObserver) Hit(string)   { o.hits.Add(1) }
func (o *countingObserver) Miss(string)  { o.misses.Add(1) }
func (o *countingObserver) Evict(string) { o.evictions.Add(1) }

func fetchValue(calls *atomic.Int32, v string) FetchFunc[string] {
	return func(context.Context) (string, error) {
		calls.Add(1)
		return v, nil
	}
}

func TestCache_HitAfterMiss(t *testing.T) {
	obs := &countingObserver{}
	c := New[string, string]("category", WithObserver(obs))
	ctx := context.Background()
	var calls atomic.Int32

	got, err := c.Get(ctx, "Popular", fetchValue(&calls, "first"))
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	// Same key must not fetch again, even with a different fetch func.
	got, err = c.Get(ctx, "Popular", fetchValue(&calls, "second"))
	require.NoError(t, err)
	assert.Equal(t, "first", got)

	assert.Equal(t, int32(1), calls.Load())
	assert.Equal(t, int32(1), obs.misses.Load())
	assert.Equal(t, int32(1), obs.hits.Load())
	assert.Equal(t, "category", c.Name())
}

func TestCache_DistinctKeys(t *testing.T) {
	c := New[int, string]("genre")
	ctx := context.Background()
	var calls atomic.Int32

	_, _ = c.Get(ctx, 28, fetchValue(&calls, "action"))
	_, _ = c.Get(ctx, 18, fetchValue(&calls, "drama"))

	assert.Equal(t, int32(2), calls.Load())
	assert.Equal(t, 2, c.Len())
	assert.True(t, c.Contains(28))
	assert.True(t, c.Contains(18))
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	const capacity = 3
	obs := &countingObserver{}
	c := New[int, int]("detail", WithCapacity(capacity), WithObserver(obs))
	ctx := context.Background()
	var calls atomic.Int32

	fetch := func(v int) FetchFunc[int] {
		return func(context.Context) (int, error) {
			calls.Add(1)
			return v, nil
		}
	}

	for k := 1; k <= capacity; k++ {
		_, err := c.Get(ctx, k, fetch(k))
		require.NoError(t, err)
	}
	assert.Equal(t, []int{1, 2, 3}, c.Keys())

	// Touch 1 so 2 becomes least recently used.
	_, _ = c.Get(ctx, 1, fetch(1))
	assert.Equal(t, []int{2, 3, 1}, c.Keys())

	// N+1th distinct key evicts 2.
	_, _ = c.Get(ctx, 4, fetch(4))
	assert.Equal(t, capacity, c.Len())
	assert.False(t, c.Contains(2))
	assert.Equal(t, []int{3, 1, 4}, c.Keys())
	assert.Equal(t, int32(1), obs.evictions.Load())

	// The evicted key is fetched again.
	before := calls.Load()
	_, _ = c.Get(ctx, 2, fetch(2))
	assert.Equal(t, before+1, calls.Load())
	assert.False(t, c.Contains(3), "3 was least recently used after refetching 2")
}

func TestCache_DefaultCapacity(t *testing.T) {
	c := New[int, int]("cast", WithCapacity(0))
	ctx := context.Background()

	for k := 0; k <= DefaultCapacity; k++ {
		_, _ = c.Get(ctx, k, func(context.Context) (int, error) { return k, nil })
	}
	assert.Equal(t, DefaultCapacity, c.Len())
	assert.False(t, c.Contains(0))
	assert.True(t, c.Contains(DefaultCapacity))
}

func TestCache_FailuresNotCachedByDefault(t *testing.T) {
	c := New[int, []string]("similar")
	ctx := context.Background()
	boom := errors.New("boom")
	var calls atomic.Int32

	failing := func(context.Context) ([]string, error) {
		calls.Add(1)
		return []string{}, boom
	}

	got, err := c.Get(ctx, 550, failing)
	assert.ErrorIs(t, err, boom)
	assert.Empty(t, got)
	assert.False(t, c.Contains(550))

	got, err = c.Get(ctx, 550, func(context.Context) ([]string, error) {
		calls.Add(1)
		return []string{"Se7en"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"Se7en"}, got)
	assert.Equal(t, int32(2), calls.Load(), "failure should be retried")
}

func TestCache_CacheFailures(t *testing.T) {
	c := New[int, []string]("similar", WithCacheFailures(true))
	ctx := context.Background()
	boom := errors.New("boom")
	var calls atomic.Int32

	_, err := c.Get(ctx, 550, func(context.Context) ([]string, error) {
		calls.Add(1)
		return []string{}, boom
	})
	assert.ErrorIs(t, err, boom)
	assert.True(t, c.Contains(550))

	got, err := c.Get(ctx, 550, func(context.Context) ([]string, error) {
		calls.Add(1)
		return []string{"Se7en"}, nil
	})
	require.NoError(t, err)
	assert.Empty(t, got, "cached fallback is returned")
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_ConcurrentFirstAccessFetchesOnce(t *testing.T) {
	c := New[string, string]("genres")
	ctx := context.Background()
	var calls atomic.Int32
	release := make(chan struct{})

	fetch := func(context.Context) (string, error) {
		calls.Add(1)
		<-release
		return "value", nil
	}

	const workers = 16
	var wg sync.WaitGroup
	results := make([]string, workers)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			v, err := c.Get(ctx, "all", fetch)
			assert.NoError(t, err)
			results[i] = v
		}(i)
	}

	// Give the goroutines time to pile up on the in-flight fetch.
	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), calls.Load())
	for _, r := range results {
		assert.Equal(t, "value", r)
	}
}

func TestCache_CanceledCallerDoesNotFailSharedFetch(t *testing.T) {
	c := New[string, string]("category", WithCacheFailures(true))
	var calls atomic.Int32
	started := make(chan struct{})
	release := make(chan struct{})

	fetch := func(ctx context.Context) (string, error) {
		calls.Add(1)
		close(started)
		select {
		case <-release:
			return "listing", nil
		case <-ctx.Done():
			return "", ctx.Err()
		}
	}

	first, cancel := context.WithCancel(context.Background())
	firstErr := make(chan error, 1)
	go func() {
		_, err := c.Get(first, "Popular", fetch)
		firstErr <- err
	}()
	<-started

	type result struct {
		v   string
		err error
	}
	second := make(chan result, 1)
	go func() {
		v, err := c.Get(context.Background(), "Popular", fetch)
		second <- result{v, err}
	}()

	cancel()
	assert.ErrorIs(t, <-firstErr, context.Canceled)

	close(release)
	r := <-second
	require.NoError(t, r.err)
	assert.Equal(t, "listing", r.v)

	got, err := c.Get(context.Background(), "Popular", fetch)
	require.NoError(t, err)
	assert.Equal(t, "listing", got)
	assert.Equal(t, int32(1), calls.Load())
}

func TestCache_InterruptedFetchNotCached(t *testing.T) {
	c := New[int, []string]("similar", WithCacheFailures(true))
	ctx := context.Background()

	for _, cause := range []error{context.Canceled, context.DeadlineExceeded} {
		_, err := c.Get(ctx, 550, func(context.Context) ([]string, error) {
			return []string{}, fmt.Errorf("fetch similar 550: %w", cause)
		})
		assert.ErrorIs(t, err, cause)
		assert.False(t, c.Contains(550), "%v must not be memoized", cause)
	}
}
