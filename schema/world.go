package schema

const (
	WorldDatasetCollection = "worldDataset"
)

// LeaderboardEntry - one ranked place of the world dataset, ordered by
// confirmed count descending; ties keep the enumeration order of the
// place list.
type LeaderboardEntry struct {
	Place     string `json:"place" bson:"place"`
	Confirmed int64  `json:"confirmed" bson:"confirmed"`
	Deaths    int64  `json:"deaths" bson:"deaths"`
}

// MapPoint - a leaderboard entry projected onto the map. Entries
// without a resolvable coordinate are dropped, never pinned to (0,0).
type MapPoint struct {
	Lat    float64 `json:"lat" bson:"lat"`
	Lon    float64 `json:"lon" bson:"lon"`
	Value  int64   `json:"value" bson:"value"`
	Deaths int64   `json:"deaths" bson:"deaths"`
	Place  string  `json:"place" bson:"place"`
}

// WorldSnapshot is one partial-result message published while a world
// dataset build is running. Leaderboard and map points are only
// attached on publish ticks; progress is attached on every message and
// reaches 100 exactly once, together with Done.
type WorldSnapshot struct {
	Leaderboard []LeaderboardEntry `json:"leaderboard,omitempty"`
	MapPoints   []MapPoint         `json:"map_points,omitempty"`
	Progress    int                `json:"progress"`
	Done        bool               `json:"done"`
}

// WorldDataset is a finished build, as served to clients and archived
// by the crawler.
type WorldDataset struct {
	ID          string             `json:"id" bson:"id"`
	Scope       string             `json:"scope" bson:"scope"`
	StartDate   string             `json:"start_date" bson:"start_date"`
	EndDate     string             `json:"end_date" bson:"end_date"`
	Leaderboard []LeaderboardEntry `json:"leaderboard" bson:"leaderboard"`
	MapPoints   []MapPoint         `json:"map_points" bson:"map_points"`
	Successes   int                `json:"successes" bson:"successes"`
	Skipped     int                `json:"skipped" bson:"skipped"`
	CreatedAt   int64              `json:"created_ts" bson:"created_ts"`
}
