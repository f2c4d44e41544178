package api

import "github.com/Ciztek/pwe/store"

var (
	errorMessageMap = map[int64]string{
		999: "internal server error",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "filter backend query failed",
		1101: "place listing unavailable",

		1200: "store not configured",
		1201: store.ErrPreferenceNotFound.Error(),
		1202: store.ErrUnknownPreference.Error(),
		1203: store.ErrDatasetNotFound.Error(),
	}

	errorInternalServer = errorJSON(999)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorFilterBackend     = errorJSON(1100)
	errorPlacesUnavailable = errorJSON(1101)

	errorStoreNotConfigured = errorJSON(1200)
	errorPreferenceNotFound = errorJSON(1201)
	errorUnknownPreference  = errorJSON(1202)
	errorDatasetNotFound    = errorJSON(1203)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}
