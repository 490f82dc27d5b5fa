package logger

import (
	"log/slog"
	"strings"
)

// Config is the logging slice of the application settings
type Config struct {
	Level       string
	Format      string
	ServiceName string
	Version     string
	Environment string
	// Dir receives per-run log files; empty logs to stdout only
	Dir string
	// Development records call sites and logs at debug when Level is unset
	Development bool
}

// LogLevel converts the configured level to a slog.Level
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelInfo:
		return slog.LevelInfo
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	case "":
		if c.Development {
			return slog.LevelDebug
		}
		return slog.LevelInfo
	default:
		return slog.LevelInfo
	}
}

// IsJSON reports whether records are written as JSON
func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every record. Empty values fall back to
// the package defaults so records stay filterable.
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, orDefault(c.ServiceName, DefaultServiceName)),
		slog.String(AttrKeyVersion, orDefault(c.Version, DefaultVersion)),
		slog.String(AttrKeyEnvironment, orDefault(c.Environment, DefaultEnvironment)),
	}
}

func orDefault(v, def string) string {
	if v == "" {
		return def
	}
	return v
}
