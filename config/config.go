package config

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"github.com/ftl/eew-fastcast/codes"
	"github.com/ftl/eew-fastcast/eew"
)

// Config holds the settings of the command line tools, populated from environment variables.
type Config struct {
	// EpicenterCodes is the path of a CSV file with epicenter codes. Empty means the built-in table.
	EpicenterCodes string
	// AreaCodes is the path of a CSV file with area codes. Empty means the built-in table.
	AreaCodes string
	LogLevel  string
	LogFormat string
}

// Load reads configuration from environment variables, optionally from the given .env files, applying defaults where unset.
// Missing .env files are ignored.
func Load(envFiles ...string) (*Config, error) {
	for _, filename := range envFiles {
		err := godotenv.Load(filename)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("cannot read %s: %w", filename, err)
		}
	}

	cfg := &Config{
		EpicenterCodes: os.Getenv("EEW_EPICENTER_CODES"),
		AreaCodes:      os.Getenv("EEW_AREA_CODES"),
		LogLevel:       envOrDefault("LOG_LEVEL", "info"),
		LogFormat:      envOrDefault("LOG_FORMAT", "text"),
	}

	if _, err := parseLevel(cfg.LogLevel); err != nil {
		return nil, err
	}
	switch cfg.LogFormat {
	case "text", "json":
	default:
		return nil, fmt.Errorf("invalid LOG_FORMAT: %s", cfg.LogFormat)
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func parseLevel(s string) (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(s))); err != nil {
		return 0, fmt.Errorf("invalid LOG_LEVEL: %s", s)
	}
	return level, nil
}

// NewLogger creates a structured logger that writes to w with the configured level and format.
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	level, err := parseLevel(c.LogLevel)
	if err != nil {
		level = slog.LevelInfo
	}
	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if c.LogFormat == "json" {
		handler = slog.NewJSONHandler(w, opts)
	} else {
		handler = slog.NewTextHandler(w, opts)
	}
	return slog.New(handler)
}

// NewDecoder creates a decoder with the configured code tables.
func (c *Config) NewDecoder() (*eew.Decoder, error) {
	epicenters, err := loadTable(c.EpicenterCodes, codes.Epicenters)
	if err != nil {
		return nil, fmt.Errorf("cannot load epicenter codes: %w", err)
	}
	areas, err := loadTable(c.AreaCodes, codes.Areas)
	if err != nil {
		return nil, fmt.Errorf("cannot load area codes: %w", err)
	}
	return eew.NewDecoderWithTables(epicenters, areas), nil
}

// BuiltinTables returns the names of the code tables that fall back to the built-in subset.
func (c *Config) BuiltinTables() []string {
	var result []string
	if c.EpicenterCodes == "" {
		result = append(result, "epicenter")
	}
	if c.AreaCodes == "" {
		result = append(result, "area")
	}
	return result
}

func loadTable(filename string, builtin func() *codes.Table) (*codes.Table, error) {
	if filename == "" {
		return builtin(), nil
	}
	return codes.LoadFile(filename)
}
