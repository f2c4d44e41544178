package schema

const (
	PreferenceCollection = "preference"
)

// Preference - one persisted client preference, a plain key/value pair
// with no schema versioning
type Preference struct {
	Key       string `json:"key" bson:"key"`
	Value     string `json:"value" bson:"value"`
	UpdatedAt int64  `json:"updated_ts" bson:"updated_ts"`
}
