package config

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	// ExportDir is where exports are saved; empty means ~/Downloads.
	ExportDir string `env:"EXPORT_DIR"`
	// LibraryFile seeds the library from a JSON export instead of the built-in list.
	LibraryFile string `env:"LIBRARY_FILE"`
	LogLevel    string `env:"LOG_LEVEL" envDefault:"info"`
	// LogFile receives TUI logs; without it the TUI logs nothing.
	LogFile string `env:"LOG_FILE"`
	RawCSV  bool   `env:"CSV_RAW" envDefault:"false"`
}

const envPrefix = "MANGATRACKER_"

// Load reads .env (when present) and MANGATRACKER_* variables.
func Load() (*Config, error) {
	_ = godotenv.Load(".env")

	cfg := &Config{}
	if err := env.ParseWithOptions(cfg, env.Options{Prefix: envPrefix}); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	if _, err := ParseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}

	return cfg, nil
}

func ParseLevel(level string) (slog.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug, nil
	case "info", "":
		return slog.LevelInfo, nil
	case "warn", "warning":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}
	return slog.LevelInfo, fmt.Errorf("unknown log level %q", level)
}
