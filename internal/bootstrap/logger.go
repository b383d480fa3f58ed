package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/ValleyCompanion_Go/internal/config"
	"github.com/osse101/ValleyCompanion_Go/internal/logger"
)

// SetupLogger installs the process logger from the app configuration.
// Records always go to stdout. When cfg.LogDir is set a timestamped session
// file receives a copy, old session files are pruned, and the returned close
// function must be called on exit.
func SetupLogger(cfg *config.Config) (func() error, error) {
	return setupLogger(cfg, os.Stdout, time.Now())
}

func setupLogger(cfg *config.Config, stdout io.Writer, now time.Time) (func() error, error) {
	lc := logger.NewConfig(
		cfg.LogLevel,
		cfg.LogFormat,
		cfg.ServiceName,
		cfg.Version,
		cfg.Environment,
		cfg.IsDevelopment(),
	)

	if cfg.LogDir == "" {
		logger.InitLoggerWithWriter(lc, stdout)
		logStartup(cfg, lc)
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(cfg.LogDir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedCreateLogsDir, err)
	}

	// Leave room for the file about to be created
	cleanupLogs(cfg.LogDir, LogFileRetentionCount-1)

	name := filepath.Join(cfg.LogDir, fmt.Sprintf(LogFileNamePattern, now.Format(LogFileTimestampFormat)))
	logFile, err := os.OpenFile(name, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(lc, io.MultiWriter(stdout, logFile))
	logStartup(cfg, lc)
	slog.Info(LogMsgLoggingInitialized, "file", name)

	return logFile.Close, nil
}

func logStartup(cfg *config.Config, lc logger.Config) {
	slog.Info(LogMsgStartingService,
		"environment", cfg.Environment,
		"log_level", lc.LogLevel().String(),
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"catalog_backend", cfg.CatalogBackend,
		"cache_size", cfg.CacheSize,
		"cache_ttl", cfg.CacheTTL,
		"port", cfg.Port)
}

// cleanupLogs deletes the oldest session logs so that at most keep remain.
// Session file names sort chronologically.
func cleanupLogs(logDir string, keep int) int {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return 0
	}

	var logFiles []string
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry.Name())
		}
	}

	removed := 0
	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i])); err != nil {
			slog.Warn(LogMsgFailedDeleteOldLog, "file", logFiles[i], "error", err)
			continue
		}
		removed++
	}
	return removed
}
