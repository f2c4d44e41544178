package series

import (
	"time"

	"github.com/Ciztek/pwe/utils"
)

// Bucket - one contiguous slice of a date range, both ends inclusive
type Bucket struct {
	Start time.Time
	End   time.Time
}

// TargetPoints - how many buckets a span of totalDays collapses into
func TargetPoints(totalDays int) int {
	return utils.ClampInt(totalDays/7, 20, 60)
}

// Partition splits the totalDays days starting at start into at most
// targetPoints contiguous buckets. Bucket i runs from day index
// i*totalDays/targetPoints through (i+1)*totalDays/targetPoints - 1;
// buckets that come out inverted are dropped, so the survivors cover
// the whole range without gaps or overlaps.
func Partition(start time.Time, totalDays, targetPoints int) []Bucket {
	if totalDays < 1 || targetPoints < 1 {
		return nil
	}

	buckets := make([]Bucket, 0, targetPoints)
	for i := 0; i < targetPoints; i++ {
		startIdx := i * totalDays / targetPoints
		endIdx := (i+1)*totalDays/targetPoints - 1
		if endIdx > totalDays-1 {
			endIdx = totalDays - 1
		}
		if endIdx < startIdx {
			continue
		}

		buckets = append(buckets, Bucket{
			Start: start.AddDate(0, 0, startIdx),
			End:   start.AddDate(0, 0, endIdx),
		})
	}

	return buckets
}
