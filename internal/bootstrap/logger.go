package bootstrap

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/osse101/GudGuns_Go/internal/config"
	"github.com/osse101/GudGuns_Go/internal/logger"
)

// SetupLogger initializes the application logger with file and stdout output.
// Returns the log file handle (caller must close), nil when LOG_DIR is empty.
func SetupLogger(cfg *config.Config) (*os.File, error) {
	return setupLogger(cfg, os.Stdout)
}

// LoggerConfig maps the application settings onto the logger's
func LoggerConfig(cfg *config.Config) logger.Config {
	return logger.Config{
		Level:       cfg.LogLevel,
		Format:      cfg.LogFormat,
		ServiceName: cfg.ServiceName,
		Version:     cfg.Version,
		Environment: cfg.Environment,
		Dir:         cfg.LogDir,
		Development: cfg.IsDevelopment(),
	}
}

func setupLogger(cfg *config.Config, stdout io.Writer) (*os.File, error) {
	logCfg := LoggerConfig(cfg)
	if logCfg.Dir == "" {
		logger.InitLoggerWithWriter(logCfg, stdout)
		logStartup(cfg, logCfg, "")
		return nil, nil
	}

	if err := os.MkdirAll(logCfg.Dir, DirPermission); err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedCreateLogsDir, err)
	}

	cleanupLogs(logCfg.Dir, LogFileRetentionCount)

	timestamp := time.Now().Format(LogFileTimestampFormat)
	logFileName := filepath.Join(logCfg.Dir, fmt.Sprintf(LogFileNamePattern, timestamp))

	logFile, err := os.OpenFile(logFileName, os.O_CREATE|os.O_WRONLY|os.O_APPEND, LogFilePermission)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", LogMsgFailedOpenLogFile, err)
	}

	logger.InitLoggerWithWriter(logCfg, io.MultiWriter(stdout, logFile))
	logStartup(cfg, logCfg, logFileName)
	return logFile, nil
}

func logStartup(cfg *config.Config, logCfg logger.Config, logFileName string) {
	slog.Info(LogMsgLoggingInitialized, "level", logCfg.LogLevel(), "file", logFileName)
	slog.Info(LogMsgStartingApp,
		"environment", cfg.Environment,
		"log_level", cfg.LogLevel,
		"log_format", cfg.LogFormat,
		"version", cfg.Version)

	slog.Debug(LogMsgConfigurationLoaded,
		"port", cfg.Port,
		"bungie_base_url", cfg.BungieBaseURL,
		"manifest_path", cfg.ManifestPath,
		"session_store", cfg.SessionStore,
		"session_ttl", cfg.SessionTTL,
		"debug_routes", cfg.DebugRoutes)

	for _, w := range config.Warnings(cfg) {
		slog.Warn(LogMsgConfigWarning, "detail", w)
	}
}

// cleanupLogs removes old log files so that at most keep remain.
// ReadDir sorts by name and names embed the timestamp, so the oldest come first.
func cleanupLogs(logDir string, keep int) {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return
	}

	var logFiles []os.DirEntry
	for _, entry := range entries {
		if !entry.IsDir() && strings.HasSuffix(entry.Name(), LogFileExtension) {
			logFiles = append(logFiles, entry)
		}
	}

	for i := 0; i < len(logFiles)-keep; i++ {
		if err := os.Remove(filepath.Join(logDir, logFiles[i].Name())); err != nil {
			fmt.Printf(LogMsgFailedDeleteOldLog, logFiles[i].Name(), err)
		}
	}
}
