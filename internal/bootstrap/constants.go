package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for session log files
	LogFilePermission = 0644
)

// =============================================================================
// Logger Configuration
// =============================================================================

const (
	// LogFileTimestampFormat is the timestamp format for log filenames (YYYY-MM-DD_HH-MM-SS)
	LogFileTimestampFormat = "2006-01-02_15-04-05"

	// LogFileNamePattern is the format string for log filenames
	LogFileNamePattern = "session_%s.log"

	// LogFileExtension is the file extension for log files
	LogFileExtension = ".log"

	// LogFileRetentionCount is the number of log files kept, including the new session
	LogFileRetentionCount = 10
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingService     = "Starting Valley Companion"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file"
	ErrMsgFailedCreateLogsDir = "failed to create logs directory"
	ErrMsgFailedOpenLogFile   = "failed to open log file"
)

// =============================================================================
// Catalog Store
// =============================================================================

const (
	LogMsgCatalogOpened    = "Catalog store opened"
	LogMsgSyncingCatalog   = "Syncing catalog from data files..."
	LogMsgCatalogSynced    = "Catalog synced successfully"
	LogMsgCatalogClosed    = "Catalog store closed"
	ErrMsgUnknownBackend   = "unknown catalog backend"
	ErrMsgFailedLoadData   = "failed to load catalog data"
	ErrMsgFailedOpenStore  = "failed to open catalog store"
	ErrMsgFailedMigrate    = "failed to migrate catalog schema"
	ErrMsgFailedSyncStore  = "failed to sync catalog to store"
	ErrMsgStoreNotWritable = "catalog store does not accept writes"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDownServer   = "Shutting down server..."
	LogMsgClosingResources     = "Closing resources..."
	LogMsgServerStopped        = "Server stopped"
	LogMsgServerForcedShutdown = "Server forced to shutdown"

	// LogMsgCloseFailed is prefixed with the resource name
	LogMsgCloseFailed = " close failed"
)
