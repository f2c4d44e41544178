package consts

// ScopeWorld is the synthetic aggregate place covering every country.
// The filter API treats a missing country parameter as this scope.
const ScopeWorld = "World"

// Persisted client preference keys. Values are plain strings with no
// schema versioning.
const (
	PrefMobileLayout   = "mobile_layout"
	PrefMobileViewMode = "mobile_view_mode"
	PrefAPIEndpoint    = "api_endpoint"
)

var preferenceKeys = map[string]struct{}{
	PrefMobileLayout:   {},
	PrefMobileViewMode: {},
	PrefAPIEndpoint:    {},
}

// IsPreferenceKey reports whether a key belongs to the preference
// whitelist.
func IsPreferenceKey(key string) bool {
	_, ok := preferenceKeys[key]
	return ok
}
