package cache

import (
	"context"
	"fmt"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/Ciztek/pwe/metrics"
	"github.com/Ciztek/pwe/schema"
)

const (
	// globalPlace keys the worldwide aggregate so it never collides with
	// a real place name.
	globalPlace = "_all"
)

// FetchFunc resolves one place on one day against the backend. A nil
// point without an error means the backend has no report for that day.
type FetchFunc func(ctx context.Context, date, place string) (*schema.DataPoint, error)

type entry struct {
	point *schema.DataPoint
	err   error
}

// PointCache memoizes point queries and coalesces concurrent fetches of
// the same key into a single backend call. Failed fetches are memoized
// too, so a flaky day does not get hammered; Clear is the only way to
// retry.
type PointCache struct {
	fetch FetchFunc

	mu         sync.RWMutex
	entries    map[string]entry
	group      *singleflight.Group
	generation uint64
}

// NewPointCache - point cache over the given fetcher
func NewPointCache(fetch FetchFunc) *PointCache {
	return &PointCache{
		fetch:   fetch,
		entries: make(map[string]entry),
		group:   new(singleflight.Group),
	}
}

// Key - canonical cache key of a point query
func Key(date, place string) string {
	if place == "" {
		place = globalPlace
	}
	return fmt.Sprintf("%s|%s", date, place)
}

// Get returns the memoized outcome for the key, fetching it once if
// absent. Waiters abandoned by ctx leave the fetch running; its outcome
// still lands in the cache for the next caller.
func (c *PointCache) Get(ctx context.Context, date, place string) (*schema.DataPoint, error) {
	k := Key(date, place)

	c.mu.RLock()
	e, ok := c.entries[k]
	group := c.group
	gen := c.generation
	c.mu.RUnlock()

	if ok {
		metrics.CacheHitsTotal.Inc()
		return e.point, e.err
	}
	metrics.CacheMissesTotal.Inc()

	ch := group.DoChan(k, func() (interface{}, error) {
		point, err := c.fetch(context.Background(), date, place)
		c.store(gen, k, point, err)
		return point, err
	})

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case res := <-ch:
		if res.Shared {
			metrics.CacheCoalescedTotal.Inc()
		}
		if nil != res.Err {
			return nil, res.Err
		}
		point, _ := res.Val.(*schema.DataPoint)
		return point, nil
	}
}

// Put - seed the cache with an already-known outcome
func (c *PointCache) Put(date, place string, point *schema.DataPoint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[Key(date, place)] = entry{point: point}
}

// Clear drops every memoized outcome, successes and failures alike.
// Fetches still in flight finish against the old generation and are
// discarded instead of repopulating the fresh cache.
func (c *PointCache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
	c.group = new(singleflight.Group)
	c.generation++
	metrics.CacheClearsTotal.Inc()
}

// Len - number of memoized keys
func (c *PointCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

func (c *PointCache) store(gen uint64, k string, point *schema.DataPoint, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.generation {
		return
	}
	c.entries[k] = entry{point: point, err: err}
}
