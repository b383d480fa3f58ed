package logger

import (
	"log/slog"
	"os"
	"strings"
)

// Config represents logger configuration
type Config struct {
	Level       string // "debug", "info", "warn", "error"
	Format      string // "json", "text"
	ServiceName string
	Version     string
	Environment string
	AddSource   bool
}

// NewConfig creates a config from explicit values. Development environments
// get source locations.
func NewConfig(level, format, serviceName, version, environment string, development bool) Config {
	return Config{
		Level:       level,
		Format:      format,
		ServiceName: serviceName,
		Version:     version,
		Environment: environment,
		AddSource:   development,
	}
}

// DefaultConfig is text at info level for the main service
func DefaultConfig() Config {
	return Config{
		Level:       LogLevelInfo,
		Format:      LogFormatText,
		ServiceName: DefaultServiceName,
		Version:     DefaultVersion,
		Environment: DefaultEnvironment,
	}
}

// FromEnv starts from DefaultConfig for serviceName and applies LOG_LEVEL,
// LOG_FORMAT, VERSION and ENVIRONMENT when set. Binaries without a full
// config.Config (the bot, devtool) use it.
func FromEnv(serviceName string) Config {
	cfg := DefaultConfig()
	cfg.ServiceName = serviceName
	for env, field := range map[string]*string{
		EnvLogLevel:    &cfg.Level,
		EnvLogFormat:   &cfg.Format,
		EnvVersion:     &cfg.Version,
		EnvEnvironment: &cfg.Environment,
	} {
		if v := os.Getenv(env); v != "" {
			*field = v
		}
	}
	return cfg
}

// LogLevel converts the level string; unknown values fall back to info
func (c Config) LogLevel() slog.Level {
	switch strings.ToLower(c.Level) {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn, LogLevelWarning:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func (c Config) IsJSON() bool {
	return strings.EqualFold(c.Format, LogFormatJSON)
}

// BaseAttributes are attached to every record
func (c Config) BaseAttributes() []slog.Attr {
	return []slog.Attr{
		slog.String(AttrKeyService, c.ServiceName),
		slog.String(AttrKeyVersion, c.Version),
		slog.String(AttrKeyEnvironment, c.Environment),
	}
}
