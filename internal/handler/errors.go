package handler

// Error messages for client responses. Store and decode failures never expose
// internal details; the client only learns which collection failed.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	ErrMsgNPCNotFound  = "NPC not found"
	ErrMsgCropNotFound = "Crop not found"

	// ErrMsgFetchFailedFmt takes the entity name, e.g. "Failed to fetch mining locations"
	ErrMsgFetchFailedFmt = "Failed to fetch %s"
	ErrMsgSearchFailed   = "Failed to perform search"

	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
)

// Health check status values
const (
	StatusOK          = "ok"
	StatusUnavailable = "unavailable"
	MsgStoreDown      = "catalog store unavailable"
)

// Query parameter names
const (
	ParamSeason   = "season"
	ParamWeather  = "weather"
	ParamLocation = "location"
	ParamName     = "name"
	ParamCategory = "category"
	ParamRoom     = "room"
	ParamQuery    = "q"
	ParamID       = "id"
)

// Log messages
const (
	LogMsgRequestFailed = "Catalog request failed"
	LogMsgReadyzFailed  = "Readiness check failed"
	LogMsgEncodeFailed  = "Failed to encode JSON response"
	LogMsgWriteFailed   = "Failed to write response buffer"
)
