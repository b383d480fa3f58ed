package catalog

// Search limits
const (
	// MinSearchLength is the shortest query that produces results
	MinSearchLength = 2
	// MaxResultsPerType caps each entity group in a search
	MaxResultsPerType = 5
)

// Search result types
const (
	ResultTypeRecipe = "recipe"
	ResultTypeFish   = "fish"
	ResultTypeCrop   = "crop"
)

// CacheSchemaVersion is the current version of the cache entry layout.
// Increment it when cached values change shape to invalidate old entries.
const CacheSchemaVersion = "1.0"

// Log messages
const (
	LogMsgQueryFailed   = "Catalog query failed"
	LogMsgDecodeFailed  = "Stored catalog data could not be decoded"
	LogMsgCacheEnabled  = "Catalog cache enabled"
	LogMsgCacheDisabled = "Catalog cache disabled"
)
