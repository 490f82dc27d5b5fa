package main

import (
	"log/slog"
	"os"

	"github.com/osse101/GudGuns_Go/internal/bootstrap"
	"github.com/osse101/GudGuns_Go/internal/config"
	"github.com/osse101/GudGuns_Go/internal/logger"
)

// initLogger sets up stdout and file logging. When the log directory is not
// writable it falls back to stdout only. The returned file is nil without
// file logging.
func initLogger(cfg *config.Config) *os.File {
	logFile, err := bootstrap.SetupLogger(cfg)
	if err == nil {
		return logFile
	}

	logger.InitLogger(bootstrap.LoggerConfig(cfg))
	slog.Warn("File logging disabled", "log_dir", cfg.LogDir, "error", err)
	return nil
}
