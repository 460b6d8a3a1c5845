package bootstrap

// =============================================================================
// File System Permissions
// =============================================================================

const (
	// DirPermission is the standard permission for creating directories
	DirPermission = 0755

	// LogFilePermission is the permission for log files (read/write for owner, read for group/others)
	LogFilePermission = 0666
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

	// LogFileRetentionCount is the number of older log files kept when a new
	// session starts
	LogFileRetentionCount = 9
)

// Log messages for logger initialization
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingCaseBox     = "Starting CaseBox"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// =============================================================================
// Application Wiring
// =============================================================================

const (
	LogMsgStateLoaded        = "State loaded"
	LogMsgCatalogEntryFailed = "Catalog entry rejected"
	LogMsgCatalogEmpty       = "No cases found, add case folders to the cases directory"

	ErrMsgFailedCreateDataDir = "failed to create data directory"
	ErrMsgFailedCompileSchema = "failed to compile inventory record schema"
)

// =============================================================================
// Shutdown Messages
// =============================================================================

const (
	LogMsgShuttingDown       = "Shutting down..."
	LogMsgMetricsWritten     = "Metrics written"
	LogMsgMetricsWriteFailed = "Failed to write metrics textfile"
	LogMsgStopped            = "Stopped"
)

// Log field keys
const (
	LogFieldLevel       = "level"
	LogFieldEnvironment = "environment"
	LogFieldLogLevel    = "log_level"
	LogFieldLogFormat   = "log_format"
	LogFieldVersion     = "version"
	LogFieldDataDir     = "data_dir"
	LogFieldCasesDir    = "cases_dir"
	LogFieldCases       = "cases"
	LogFieldBalance     = "balance"
	LogFieldItems       = "items"
	LogFieldValue       = "value"
	LogFieldPath        = "path"
	LogFieldError       = "error"
)
