package config

import (
	"log/slog"
	"os"

	"github.com/joho/godotenv"
)

// Environment variables that override the logging section.
const (
	EnvLogLevel  = "REFDOC_LOG_LEVEL"
	EnvLogFormat = "REFDOC_LOG_FORMAT"
)

// envFiles are tried in order; the first one present is loaded.
var envFiles = []string{".env", ".env.local"}

// loadEnvFile loads variables from the first .env file found in the working
// directory. Existing process variables are not overwritten.
func loadEnvFile() {
	for _, name := range envFiles {
		if _, err := os.Stat(name); err != nil {
			continue
		}
		if err := godotenv.Load(name); err != nil {
			slog.Warn("Failed to load environment file", slog.String("file", name), slog.String("error", err.Error()))
			continue
		}
		slog.Debug("Loaded environment file", slog.String("file", name))
		return
	}
}

func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = LogLevel(v)
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		cfg.Logging.Format = LogFormat(v)
	}
}
