package dataset

// Log messages
const (
	LogMsgDroppedRecord  = "Dropping record missing a name or description"
	LogMsgDatasetLoaded  = "Catalog dataset loaded"
	LogMsgStoreReplaced  = "In-memory catalog replaced"
)

// Error formats
const (
	ErrFmtReadFile     = "failed to read %s: %w"
	ErrFmtValidateFile = "schema validation failed for %s: %w"
	ErrFmtParseFile    = "failed to parse %s: %w"
	ErrFmtDuplicateID  = "%w: %s id %q"
)

// DefaultFishDifficulty is applied to fish records without a difficulty
const DefaultFishDifficulty = 50
