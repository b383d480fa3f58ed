package client

import "time"

// Retry configuration
const (
	DefaultTimeout    = 10 * time.Second
	DefaultMaxRetries = 3
	DefaultRetryDelay = 500 * time.Millisecond
	maxJitter         = 100 * time.Millisecond
)

// API paths
const (
	PathHealthz        = "/healthz"
	PathVersion        = "/version"
	PathCrops          = "/api/v1/crops"
	PathFish           = "/api/v1/fish"
	PathNPCs           = "/api/v1/npcs"
	PathRecipes        = "/api/v1/recipes"
	PathMining         = "/api/v1/mining"
	PathBundles        = "/api/v1/bundles"
	PathSearch         = "/api/v1/search"
	PathPlannerSummary = "/api/v1/planner/summary"
)

const (
	headerContentType = "Content-Type"
	headerAccept      = "Accept"
	headerUserAgent   = "User-Agent"
	contentTypeJSON   = "application/json"
	userAgent         = "valley-companion-client"
)

// Log messages
const (
	LogMsgRetrying      = "Retrying API request"
	LogMsgRequestFailed = "API request failed"
	LogMsgServerError   = "Server error, will retry"
)
