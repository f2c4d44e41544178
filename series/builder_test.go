package series_test

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Ciztek/pwe/cache"
	"github.com/Ciztek/pwe/schema"
	"github.com/Ciztek/pwe/series"
	"github.com/Ciztek/pwe/utils"
)

type fakeClient struct {
	mu         sync.Mutex
	dayCalls   int
	rangeCalls int
	ranges     [][2]string
	missing    map[string]bool
	failing    map[string]bool
	slow       map[string]time.Duration
}

func (f *fakeClient) Day(_ context.Context, date, place string) (*schema.DataPoint, error) {
	f.mu.Lock()
	f.dayCalls++
	delay := f.slow[date]
	missing := f.missing[date]
	failing := f.failing[date]
	f.mu.Unlock()

	if delay > 0 {
		time.Sleep(delay)
	}
	if failing {
		return nil, fmt.Errorf("backend down")
	}
	if missing {
		return nil, nil
	}

	d, err := utils.ParseDate(date)
	if nil != err {
		return nil, err
	}
	return &schema.DataPoint{Date: &date, Confirmed: int64(d.Day()), Deaths: 1, Recovered: 2}, nil
}

func (f *fakeClient) Range(_ context.Context, startDate, endDate, place string) (*schema.DataPoint, error) {
	f.mu.Lock()
	f.rangeCalls++
	f.ranges = append(f.ranges, [2]string{startDate, endDate})
	missing := f.missing[startDate]
	f.mu.Unlock()

	if missing {
		return nil, nil
	}

	start, err := utils.ParseDate(startDate)
	if nil != err {
		return nil, err
	}
	end, err := utils.ParseDate(endDate)
	if nil != err {
		return nil, err
	}

	// one confirmed case per covered day, so totals are checkable
	days := int64(utils.DaysBetween(start, end) + 1)
	dateRange := startDate + schema.DateRangeSeparator + endDate
	return &schema.DataPoint{DateRange: &dateRange, Confirmed: days}, nil
}

func (f *fakeClient) Places(_ context.Context) (*schema.PlaceTree, error) {
	return &schema.PlaceTree{}, nil
}

func newBuilder(f *fakeClient) *series.Builder {
	return series.NewBuilder(f, cache.NewPointCache(f.Day))
}

func mustDate(t *testing.T, s string) time.Time {
	d, err := utils.ParseDate(s)
	assert.Nil(t, err, "wrong test date")
	return d
}

func TestBuildDaily(t *testing.T) {
	f := &fakeClient{slow: map[string]time.Duration{"2021-01-01": 30 * time.Millisecond}}
	b := newBuilder(f)

	points, err := b.Build(context.Background(), mustDate(t, "2021-01-01"), mustDate(t, "2021-01-05"), "World")
	assert.Nil(t, err, "wrong Build")
	assert.Equal(t, 5, len(points), "wrong point count")
	for i, p := range points {
		assert.Equal(t, fmt.Sprintf("2021-01-0%d", i+1), p.Date, "wrong date at %d", i)
		assert.Equal(t, int64(i+1), p.Confirmed, "wrong confirmed at %d", i)
	}
	assert.Equal(t, 5, f.dayCalls, "wrong day query count")
	assert.Equal(t, 0, f.rangeCalls, "short range must not issue range queries")
}

func TestBuildDailyDropsMissing(t *testing.T) {
	f := &fakeClient{missing: map[string]bool{"2021-01-03": true}}
	b := newBuilder(f)

	points, err := b.Build(context.Background(), mustDate(t, "2021-01-01"), mustDate(t, "2021-01-05"), "")
	assert.Nil(t, err, "wrong Build")
	assert.Equal(t, 4, len(points), "missing day must be dropped")

	dates := make([]string, 0, len(points))
	for _, p := range points {
		dates = append(dates, p.Date)
	}
	assert.Equal(t, []string{"2021-01-01", "2021-01-02", "2021-01-04", "2021-01-05"}, dates, "wrong dates")
}

func TestBuildDailyFailure(t *testing.T) {
	f := &fakeClient{failing: map[string]bool{"2021-01-02": true}}
	b := newBuilder(f)

	_, err := b.Build(context.Background(), mustDate(t, "2021-01-01"), mustDate(t, "2021-01-05"), "")
	assert.Error(t, err, "a failed day must fail the build")
}

func TestBuildEmptyRange(t *testing.T) {
	f := &fakeClient{}
	b := newBuilder(f)

	points, err := b.Build(context.Background(), mustDate(t, "2021-01-05"), mustDate(t, "2021-01-01"), "")
	assert.Nil(t, err, "wrong Build")
	assert.Equal(t, 0, len(points), "inverted range must be empty")
	assert.Equal(t, 0, f.dayCalls, "inverted range must not query")
}

func TestBuildSingleDay(t *testing.T) {
	f := &fakeClient{}
	b := newBuilder(f)

	day := mustDate(t, "2021-01-05")
	points, err := b.Build(context.Background(), day, day, "Italy")
	assert.Nil(t, err, "wrong Build")
	assert.Equal(t, 1, len(points), "wrong point count")
	assert.Equal(t, "2021-01-05", points[0].Date, "wrong date")
}

func TestBuildDailyReusesCache(t *testing.T) {
	f := &fakeClient{}
	b := newBuilder(f)

	start, end := mustDate(t, "2021-01-01"), mustDate(t, "2021-01-05")
	_, err := b.Build(context.Background(), start, end, "")
	assert.Nil(t, err, "wrong Build")
	_, err = b.Build(context.Background(), start, end, "")
	assert.Nil(t, err, "wrong Build")

	assert.Equal(t, 5, f.dayCalls, "second build must be served from the cache")
}

func TestBuildBucketed(t *testing.T) {
	f := &fakeClient{}
	b := newBuilder(f)

	points, err := b.Build(context.Background(), mustDate(t, "2020-01-01"), mustDate(t, "2021-01-01"), "World")
	assert.Nil(t, err, "wrong Build")
	assert.Equal(t, 52, len(points), "wrong point count")
	assert.Equal(t, 0, f.dayCalls, "long range must not fetch day by day")
	assert.Equal(t, 52, f.rangeCalls, "wrong range query count")

	dates := make([]string, 0, len(points))
	var confirmed int64
	for _, p := range points {
		dates = append(dates, p.Date)
		confirmed += p.Confirmed
	}
	assert.True(t, sort.StringsAreSorted(dates), "points out of order")
	assert.Equal(t, "2021-01-01", dates[len(dates)-1], "last point must close the range")
	assert.Equal(t, int64(367), confirmed, "buckets must cover every day exactly once")
}

func TestBuildBucketedDropsEmptyBucket(t *testing.T) {
	// the first bucket of the year span starts at the range start
	f := &fakeClient{missing: map[string]bool{"2020-01-01": true}}
	b := newBuilder(f)

	points, err := b.Build(context.Background(), mustDate(t, "2020-01-01"), mustDate(t, "2021-01-01"), "")
	assert.Nil(t, err, "wrong Build")
	assert.Equal(t, 51, len(points), "empty bucket must be dropped")
}
