package cache_test

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ciztek/pwe/cache"
	"github.com/Ciztek/pwe/schema"
)

func TestKey(t *testing.T) {
	assert.Equal(t, "2021-03-01|Italy", cache.Key("2021-03-01", "Italy"), "wrong place key")
	assert.Equal(t, "2021-03-01|_all", cache.Key("2021-03-01", ""), "wrong global key")
	assert.NotEqual(t, cache.Key("2021-03-01", ""), cache.Key("2021-03-01", "Italy"), "global key collides with place key")
}

func TestGetMemoizes(t *testing.T) {
	var calls int32
	c := cache.NewPointCache(func(_ context.Context, date, place string) (*schema.DataPoint, error) {
		atomic.AddInt32(&calls, 1)
		return &schema.DataPoint{Confirmed: 42}, nil
	})

	for i := 0; i < 3; i++ {
		point, err := c.Get(context.Background(), "2021-03-01", "Italy")
		assert.Nil(t, err, "wrong Get")
		assert.Equal(t, int64(42), point.Confirmed, "wrong confirmed")
	}
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "backend fetched more than once")
	assert.Equal(t, 1, c.Len(), "wrong cache size")
}

func TestGetCoalesces(t *testing.T) {
	var calls int32
	block := make(chan struct{})
	c := cache.NewPointCache(func(_ context.Context, _, _ string) (*schema.DataPoint, error) {
		atomic.AddInt32(&calls, 1)
		<-block
		return &schema.DataPoint{Confirmed: 7}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			point, err := c.Get(context.Background(), "2021-03-01", "")
			assert.Nil(t, err, "wrong Get")
			assert.Equal(t, int64(7), point.Confirmed, "wrong confirmed")
		}()
	}

	time.Sleep(100 * time.Millisecond)
	close(block)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "concurrent lookups were not coalesced")
}

func TestGetMemoizesMissingDay(t *testing.T) {
	var calls int32
	c := cache.NewPointCache(func(_ context.Context, _, _ string) (*schema.DataPoint, error) {
		atomic.AddInt32(&calls, 1)
		return nil, nil
	})

	point, err := c.Get(context.Background(), "2031-01-01", "Italy")
	assert.Nil(t, err, "missing day must not be an error")
	assert.Nil(t, point, "missing day must yield no point")

	_, _ = c.Get(context.Background(), "2031-01-01", "Italy")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "missing day was refetched")
}

func TestGetMemoizesFailure(t *testing.T) {
	var calls int32
	boom := fmt.Errorf("backend down")
	c := cache.NewPointCache(func(_ context.Context, _, _ string) (*schema.DataPoint, error) {
		atomic.AddInt32(&calls, 1)
		return nil, boom
	})

	_, err := c.Get(context.Background(), "2021-03-01", "Italy")
	assert.Equal(t, boom, err, "wrong error")

	_, err = c.Get(context.Background(), "2021-03-01", "Italy")
	assert.Equal(t, boom, err, "wrong memoized error")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "failure was retried without a clear")
}

func TestClearRefetches(t *testing.T) {
	var calls int32
	c := cache.NewPointCache(func(_ context.Context, _, _ string) (*schema.DataPoint, error) {
		atomic.AddInt32(&calls, 1)
		return &schema.DataPoint{Confirmed: 1}, nil
	})

	_, _ = c.Get(context.Background(), "2021-03-01", "Italy")
	c.Clear()
	assert.Equal(t, 0, c.Len(), "cache not emptied")

	_, _ = c.Get(context.Background(), "2021-03-01", "Italy")
	assert.Equal(t, int32(2), atomic.LoadInt32(&calls), "clear did not force a refetch")
}

func TestClearDiscardsInflightStore(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	c := cache.NewPointCache(func(_ context.Context, _, _ string) (*schema.DataPoint, error) {
		close(started)
		<-release
		return &schema.DataPoint{Confirmed: 9}, nil
	})

	done := make(chan struct{})
	var point *schema.DataPoint
	go func() {
		point, _ = c.Get(context.Background(), "2021-03-01", "Italy")
		close(done)
	}()

	<-started
	c.Clear()
	close(release)
	<-done

	assert.Equal(t, int64(9), point.Confirmed, "waiter lost the in-flight value")
	assert.Equal(t, 0, c.Len(), "stale fetch repopulated a cleared cache")
}

func TestGetAbandonedWaiter(t *testing.T) {
	var calls int32
	started := make(chan struct{})
	release := make(chan struct{})
	c := cache.NewPointCache(func(_ context.Context, _, _ string) (*schema.DataPoint, error) {
		atomic.AddInt32(&calls, 1)
		close(started)
		<-release
		return &schema.DataPoint{Confirmed: 3}, nil
	})

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		_, err := c.Get(ctx, "2021-03-01", "Italy")
		errCh <- err
	}()

	<-started
	cancel()
	assert.Equal(t, context.Canceled, <-errCh, "wrong abandon error")

	// the fetch keeps running and its outcome still lands in the cache
	close(release)
	for i := 0; i < 100 && c.Len() == 0; i++ {
		time.Sleep(10 * time.Millisecond)
	}
	assert.Equal(t, 1, c.Len(), "abandoned fetch never stored")

	point, err := c.Get(context.Background(), "2021-03-01", "Italy")
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, int64(3), point.Confirmed, "wrong confirmed")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "abandoned fetch was redone")
}

func TestPut(t *testing.T) {
	c := cache.NewPointCache(func(_ context.Context, _, _ string) (*schema.DataPoint, error) {
		return nil, fmt.Errorf("must not fetch")
	})

	c.Put("2021-03-01", "Italy", &schema.DataPoint{Confirmed: 5})
	point, err := c.Get(context.Background(), "2021-03-01", "Italy")
	assert.Nil(t, err, "wrong Get")
	assert.Equal(t, int64(5), point.Confirmed, "wrong seeded confirmed")
}
