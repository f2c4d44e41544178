package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	FilterRequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pwe_filter_requests_total",
		Help: "Total upstream filter API requests by kind",
	}, []string{"kind"})
	FilterFailuresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pwe_filter_failures_total",
		Help: "Total upstream filter API failures by kind",
	}, []string{"kind"})
	FilterDurationMs = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "pwe_filter_duration_ms",
		Help:    "Upstream filter API call duration in milliseconds",
		Buckets: []float64{5, 10, 20, 50, 100, 200, 500, 1000, 2000, 5000},
	}, []string{"kind"})
	CacheHitsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pwe_cache_hits_total",
		Help: "Total point cache hits",
	})
	CacheMissesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pwe_cache_misses_total",
		Help: "Total point cache misses",
	})
	CacheCoalescedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pwe_cache_coalesced_total",
		Help: "Total point cache lookups coalesced onto an in-flight fetch",
	})
	CacheClearsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pwe_cache_clears_total",
		Help: "Total point cache clears",
	})
	SeriesBuildsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pwe_series_builds_total",
		Help: "Total series builds by mode",
	}, []string{"mode"})
	WorldBuildsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pwe_world_builds_total",
		Help: "Total world dataset builds started",
	})
	WorldPlacesProcessedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pwe_world_places_processed_total",
		Help: "Total places fetched successfully during world builds",
	})
	WorldPlacesSkippedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pwe_world_places_skipped_total",
		Help: "Total places skipped during world builds",
	})
	WorldSnapshotsTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pwe_world_snapshots_total",
		Help: "Total partial snapshots emitted during world builds",
	})
	TileEventsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "pwe_tile_events_total",
		Help: "Total tile provider events by kind",
	}, []string{"kind"})
	TileAdvancesTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pwe_tile_advances_total",
		Help: "Total tile candidate advances",
	})
	TileFallbacksTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "pwe_tile_fallbacks_total",
		Help: "Total entries into the terminal filtered fallback",
	})
)

func init() {
	prometheus.MustRegister(FilterRequestsTotal)
	prometheus.MustRegister(FilterFailuresTotal)
	prometheus.MustRegister(FilterDurationMs)
	prometheus.MustRegister(CacheHitsTotal)
	prometheus.MustRegister(CacheMissesTotal)
	prometheus.MustRegister(CacheCoalescedTotal)
	prometheus.MustRegister(CacheClearsTotal)
	prometheus.MustRegister(SeriesBuildsTotal)
	prometheus.MustRegister(WorldBuildsTotal)
	prometheus.MustRegister(WorldPlacesProcessedTotal)
	prometheus.MustRegister(WorldPlacesSkippedTotal)
	prometheus.MustRegister(WorldSnapshotsTotal)
	prometheus.MustRegister(TileEventsTotal)
	prometheus.MustRegister(TileAdvancesTotal)
	prometheus.MustRegister(TileFallbacksTotal)
}

// Handler - exposes registered collectors for scraping
func Handler() http.Handler { return promhttp.Handler() }
