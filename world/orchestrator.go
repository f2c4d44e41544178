package world

import (
	"context"
	"math"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/Ciztek/pwe/consts"
	"github.com/Ciztek/pwe/geo"
	"github.com/Ciztek/pwe/metrics"
	"github.com/Ciztek/pwe/schema"
	"github.com/Ciztek/pwe/series"
)

const (
	logPrefix = "world"

	maxWorkers    = 8
	snapshotEvery = 20

	defaultItemTimeout = 30 * time.Second
)

// PublishFunc receives dataset snapshots while a build runs. It is
// called from the collector goroutine, so it must return quickly.
type PublishFunc func(schema.WorldSnapshot)

// Builder runs a bounded worker pool over every known place to produce
// a ranked leaderboard and, for the world scope, a map-point set.
type Builder struct {
	totals      *series.Builder
	resolver    geo.Resolver
	itemTimeout time.Duration
}

// NewBuilder - world dataset builder; itemTimeout bounds each per-place
// fetch, zero picks the default
func NewBuilder(totals *series.Builder, resolver geo.Resolver, itemTimeout time.Duration) *Builder {
	if itemTimeout <= 0 {
		itemTimeout = defaultItemTimeout
	}

	return &Builder{
		totals:      totals,
		resolver:    resolver,
		itemTimeout: itemTimeout,
	}
}

type accumEntry struct {
	place      string
	confirmed  int64
	deaths     int64
	coordinate *schema.Coordinate
}

type itemResult struct {
	idx   int
	entry *accumEntry
}

// Build fetches the range totals of every place with at most eight
// workers and collects them on a single goroutine that owns all shared
// state. A failed or empty place is skipped, never fatal. Progress goes
// out after every success, a sorted snapshot after every twentieth, and
// the final snapshot carries Done with progress exactly 100.
func (b *Builder) Build(ctx context.Context, start, end time.Time, places []string, scope string, publish PublishFunc) (*schema.WorldDataset, error) {
	metrics.WorldBuildsTotal.Inc()

	total := len(places)
	log.WithFields(log.Fields{"prefix": logPrefix, "places": total, "scope": scope}).Info("build world dataset")

	workers := maxWorkers
	if total < workers {
		workers = total
	}

	jobs := make(chan int)
	results := make(chan itemResult)

	go func() {
		defer close(jobs)
		for i := range places {
			select {
			case jobs <- i:
			case <-ctx.Done():
				return
			}
		}
	}()

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for idx := range jobs {
				res := itemResult{idx: idx, entry: b.fetchItem(ctx, start, end, places[idx])}
				select {
				case results <- res:
				case <-ctx.Done():
					return
				}
			}
		}()
	}
	go func() {
		wg.Wait()
		close(results)
	}()

	// collector: the only goroutine touching the accumulator. Entries
	// land at their input index so leaderboard ties break by
	// enumeration order no matter which worker finished first.
	entries := make([]*accumEntry, total)
	successes, skipped, unsnapshotted := 0, 0, 0
	for res := range results {
		if res.entry == nil {
			skipped++
			continue
		}

		entries[res.idx] = res.entry
		successes++
		unsnapshotted++

		if publish != nil {
			snapshot := schema.WorldSnapshot{Progress: progressOf(successes, total)}
			if unsnapshotted >= snapshotEvery {
				unsnapshotted = 0
				snapshot.Leaderboard, snapshot.MapPoints = assemble(entries, scope)
				metrics.WorldSnapshotsTotal.Inc()
			}
			publish(snapshot)
		}
	}

	if err := ctx.Err(); nil != err {
		log.WithFields(log.Fields{"prefix": logPrefix, "error": err}).Warn("world dataset build cancelled")
		return nil, err
	}

	leaderboard, mapPoints := assemble(entries, scope)
	if publish != nil {
		publish(schema.WorldSnapshot{
			Leaderboard: leaderboard,
			MapPoints:   mapPoints,
			Progress:    100,
			Done:        true,
		})
		metrics.WorldSnapshotsTotal.Inc()
	}

	log.WithFields(log.Fields{
		"prefix":    logPrefix,
		"successes": successes,
		"skipped":   skipped,
	}).Info("world dataset ready")

	return &schema.WorldDataset{
		ID:          uuid.New().String(),
		Scope:       scope,
		StartDate:   schema.FormatDate(start),
		EndDate:     schema.FormatDate(end),
		Leaderboard: leaderboard,
		MapPoints:   mapPoints,
		Successes:   successes,
		Skipped:     skipped,
		CreatedAt:   time.Now().UTC().Unix(),
	}, nil
}

// fetchItem returns nil when the place has to be skipped. A place whose
// name cannot be resolved to a coordinate still counts, it just never
// shows up on the map.
func (b *Builder) fetchItem(ctx context.Context, start, end time.Time, place string) *accumEntry {
	itemCtx, cancel := context.WithTimeout(ctx, b.itemTimeout)
	defer cancel()

	point, err := b.totals.RangeTotals(itemCtx, start, end, place)
	if nil != err {
		metrics.WorldPlacesSkippedTotal.Inc()
		log.WithFields(log.Fields{"prefix": logPrefix, "place": place, "error": err}).Warn("skip place")
		return nil
	}
	if point == nil {
		metrics.WorldPlacesSkippedTotal.Inc()
		return nil
	}

	entry := &accumEntry{
		place:     place,
		confirmed: point.Confirmed,
		deaths:    point.Deaths,
	}
	if coordinate, err := b.resolver.Resolve(place); err == nil {
		entry.coordinate = &coordinate
	}

	metrics.WorldPlacesProcessedTotal.Inc()
	return entry
}

func assemble(entries []*accumEntry, scope string) ([]schema.LeaderboardEntry, []schema.MapPoint) {
	collected := make([]*accumEntry, 0, len(entries))
	for _, e := range entries {
		if e != nil {
			collected = append(collected, e)
		}
	}
	sort.SliceStable(collected, func(i, j int) bool {
		return collected[i].confirmed > collected[j].confirmed
	})

	leaderboard := make([]schema.LeaderboardEntry, 0, len(collected))
	var mapPoints []schema.MapPoint
	if scope == consts.ScopeWorld {
		mapPoints = make([]schema.MapPoint, 0, len(collected))
	}

	for _, e := range collected {
		leaderboard = append(leaderboard, schema.LeaderboardEntry{
			Place:     e.place,
			Confirmed: e.confirmed,
			Deaths:    e.deaths,
		})
		if scope == consts.ScopeWorld && e.coordinate != nil {
			mapPoints = append(mapPoints, schema.MapPoint{
				Lat:    e.coordinate.Lat,
				Lon:    e.coordinate.Lon,
				Value:  e.confirmed,
				Deaths: e.deaths,
				Place:  e.place,
			})
		}
	}

	return leaderboard, mapPoints
}

// progressOf rounds to whole percent but never reports 100 before the
// batch actually finishes.
func progressOf(successes, total int) int {
	if total == 0 {
		return 100
	}

	p := int(math.Round(100 * float64(successes) / float64(total)))
	if p >= 100 && successes < total {
		p = 99
	}
	return p
}
