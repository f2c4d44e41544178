package series

import (
	"context"
	"time"

	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/semaphore"

	"github.com/Ciztek/pwe/cache"
	"github.com/Ciztek/pwe/external/filterapi"
	"github.com/Ciztek/pwe/metrics"
	"github.com/Ciztek/pwe/schema"
	"github.com/Ciztek/pwe/utils"
)

const (
	logPrefix = "series"

	// spans longer than this stop fetching day by day and switch to
	// bucketed range queries
	maxDailySpan = 31

	fetchWorkers = 8

	modeDaily    = "daily"
	modeBucketed = "bucketed"
)

// Builder - turns a date range and place into a chronological series
type Builder struct {
	client     filterapi.Client
	pointCache *cache.PointCache
}

func NewBuilder(client filterapi.Client, pointCache *cache.PointCache) *Builder {
	return &Builder{
		client:     client,
		pointCache: pointCache,
	}
}

// Build returns one point per day for short spans and one point per
// bucket for long ones. Output order always follows date order, not
// fetch completion order; days the backend has no data for are left
// out.
func (b *Builder) Build(ctx context.Context, start, end time.Time, place string) ([]schema.SeriesPoint, error) {
	if start.After(end) {
		return []schema.SeriesPoint{}, nil
	}

	totalDays := utils.DaysBetween(start, end) + 1
	if totalDays <= maxDailySpan {
		metrics.SeriesBuildsTotal.WithLabelValues(modeDaily).Inc()
		log.WithFields(log.Fields{"prefix": logPrefix, "days": totalDays, "place": place}).Debug("build daily series")
		return b.buildDaily(ctx, start, end, place)
	}

	metrics.SeriesBuildsTotal.WithLabelValues(modeBucketed).Inc()
	log.WithFields(log.Fields{"prefix": logPrefix, "days": totalDays, "place": place}).Debug("build bucketed series")
	return b.buildBucketed(ctx, start, totalDays, place)
}

// RangeTotals - one aggregate query over an inclusive date range. A nil
// point means the backend has no data for the range.
func (b *Builder) RangeTotals(ctx context.Context, start, end time.Time, place string) (*schema.DataPoint, error) {
	return b.client.Range(ctx, schema.FormatDate(start), schema.FormatDate(end), place)
}

func (b *Builder) buildDaily(ctx context.Context, start, end time.Time, place string) ([]schema.SeriesPoint, error) {
	dates := utils.DatesBetween(start, end)
	results := make([]*schema.SeriesPoint, len(dates))

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(fetchWorkers)
	for i, date := range dates {
		if err := sem.Acquire(gctx, 1); nil != err {
			break
		}

		i, date := i, date
		g.Go(func() error {
			defer sem.Release(1)

			day := schema.FormatDate(date)
			point, err := b.pointCache.Get(gctx, day, place)
			if nil != err {
				return err
			}
			if point == nil {
				return nil
			}

			results[i] = &schema.SeriesPoint{
				Date:      day,
				Confirmed: point.Confirmed,
				Deaths:    point.Deaths,
				Recovered: point.Recovered,
			}
			return nil
		})
	}
	if err := g.Wait(); nil != err {
		return nil, err
	}

	return compact(results), nil
}

func (b *Builder) buildBucketed(ctx context.Context, start time.Time, totalDays int, place string) ([]schema.SeriesPoint, error) {
	buckets := Partition(start, totalDays, TargetPoints(totalDays))
	results := make([]*schema.SeriesPoint, len(buckets))

	g, gctx := errgroup.WithContext(ctx)
	sem := semaphore.NewWeighted(fetchWorkers)
	for i, bucket := range buckets {
		if err := sem.Acquire(gctx, 1); nil != err {
			break
		}

		i, bucket := i, bucket
		g.Go(func() error {
			defer sem.Release(1)

			point, err := b.RangeTotals(gctx, bucket.Start, bucket.End, place)
			if nil != err {
				return err
			}
			if point == nil {
				return nil
			}

			results[i] = &schema.SeriesPoint{
				Date:      schema.FormatDate(bucket.End),
				Confirmed: point.Confirmed,
				Deaths:    point.Deaths,
				Recovered: point.Recovered,
			}
			return nil
		})
	}
	if err := g.Wait(); nil != err {
		return nil, err
	}

	return compact(results), nil
}

func compact(results []*schema.SeriesPoint) []schema.SeriesPoint {
	points := make([]schema.SeriesPoint, 0, len(results))
	for _, r := range results {
		if r != nil {
			points = append(points, *r)
		}
	}
	return points
}
