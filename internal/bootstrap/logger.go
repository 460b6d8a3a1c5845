package bootstrap

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/osse101/CaseBox_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// It creates the log directory, cleans up old logs, sets up a MultiWriter for
// stdout and file output, and installs the slog default through the logger
// package. Returns the log file handle (caller must close) and any error
// encountered.
func SetupLogger(logDir string, cfg logger.Config) (*os.File, error) {
	return setupLogger(logDir, cfg, os.Stdout, time.Now())
}

func setupLogger(logDir string, cfg logger.Config, stdout io.Writer, now time.Time) (*os.File, error) {
	// Create logs directory
	if err := os.MkdirAll(logDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	// Keep the 9 most recent logs so this session makes ten
	cleanupLogs(logDir)

	// Create timestamped log file
	timestamp := now.Format(LogFileTimestampFormat)
	logFileName := filepath.Join(logDir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	// Initialize logger with MultiWriter (stdout + file)
	logger.InitLoggerWithWriter(cfg, io.MultiWriter(stdout, logFile))

	logger.Info(LogMsgLoggingInitialized, LogFieldLevel, cfg.LogLevel())
	logger.Info(LogMsgStartingCaseBox,
		LogFieldEnvironment, cfg.Environment,
		LogFieldLogLevel, cfg.Level,
		LogFieldLogFormat, cfg.Format,
		LogFieldVersion, cfg.Version)

	return logFile, nil
}

// cleanupLogs removes old log files, keeping only the most recent
// LogFileRetentionCount. Session names sort chronologically.
func cleanupLogs(logDir string) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}
	if len(logFiles) <= LogFileRetentionCount {
		return
	}
	sort.Strings(logFiles)

	// Delete oldest files until we have 9 left
	toDelete := len(logFiles) - LogFileRetentionCount
	for _, name := range logFiles[:toDelete] {
		if err := os.Remove(filepath.Join(logDir, name)); err != nil {
			fmt.Printf(LogMsgFailedDeleteOldLog, name, err)
		}
	}
}
