package schema

import "time"

const (
	// DateLayout is the ISO date form used by the filter API and by
	// every route of this service.
	DateLayout = "2006-01-02"

	// DateRangeSeparator joins the two dates of a DataPoint date range,
	// e.g. "2021-01-01 to 2021-01-31".
	DateRangeSeparator = " to "
)

// DataPoint mirrors one DataOutput document of the filter API. A point
// carries either a date or a date range, never both, and the place is
// absent for the global scope.
type DataPoint struct {
	Place     *string `json:"place,omitempty" bson:"place,omitempty"`
	Date      *string `json:"date,omitempty" bson:"date,omitempty"`
	DateRange *string `json:"date_range,omitempty" bson:"date_range,omitempty"`
	Confirmed int64   `json:"confirmed" bson:"confirmed"`
	Deaths    int64   `json:"deaths" bson:"deaths"`
	Recovered int64   `json:"recovered" bson:"recovered"`
}

// Totals - aggregate counts over a date range and an optional place scope
type Totals struct {
	Confirmed int64 `json:"confirmed" bson:"confirmed"`
	Deaths    int64 `json:"deaths" bson:"deaths"`
	Recovered int64 `json:"recovered" bson:"recovered"`
}

// Totals collapses a data point into its aggregate counts.
func (p DataPoint) Totals() Totals {
	return Totals{
		Confirmed: p.Confirmed,
		Deaths:    p.Deaths,
		Recovered: p.Recovered,
	}
}

// SeriesPoint is one chronological sample of a built series. For a
// bucketed series the date is the closing date of the bucket.
type SeriesPoint struct {
	Date      string `json:"date" bson:"date"`
	Confirmed int64  `json:"confirmed" bson:"confirmed"`
	Deaths    int64  `json:"deaths" bson:"deaths"`
	Recovered int64  `json:"recovered" bson:"recovered"`
}

// FormatDate renders a time in the wire date form, dropping the clock.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}
