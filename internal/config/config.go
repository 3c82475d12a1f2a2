package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	// Source wiki
	BaseURL           string
	UserAgent         string
	FetchTimeout      time.Duration
	RequestsPerSecond float64

	// Engine
	Section string
	Keyword string

	// Date override, mainly for testing; empty/zero means today.
	MonthOverride string
	DayOverride   int

	// Output
	OutputDir string
	Format    string

	// Backfill worker pool
	WorkerCount int
}

func Load() Config {
	cfg := Config{
		Port: envOr("PORT", "8091"),

		BaseURL:           envOr("WIKIPEDIA_BASE_URL", "https://en.wikipedia.org"),
		UserAgent:         envOr("USER_AGENT", "daily-birthdays/1.0 (+https://github.com/srw3804/daily-birthdays)"),
		FetchTimeout:      envDuration("FETCH_TIMEOUT", 30*time.Second),
		RequestsPerSecond: envFloat("REQUESTS_PER_SECOND", 1),

		Section: envOr("BIRTHDAY_SECTION", "Births"),
		Keyword: envOr("BIRTHDAY_KEYWORD", "American"),

		MonthOverride: os.Getenv("BIRTHDAY_MONTH"),
		DayOverride:   envInt("BIRTHDAY_DAY", 0),

		OutputDir: envOr("OUTPUT_DIR", "docs/birthdays"),
		Format:    envOr("OUTPUT_FORMAT", "html"),

		WorkerCount: envInt("WORKER_COUNT", 2),
	}

	if cfg.FetchTimeout <= 0 {
		cfg.FetchTimeout = 30 * time.Second
	}
	if cfg.RequestsPerSecond <= 0 {
		cfg.RequestsPerSecond = 1
	}
	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 2
	}

	return cfg
}

func (c Config) Validate() error {
	if c.BaseURL == "" {
		return fmt.Errorf("WIKIPEDIA_BASE_URL is required")
	}
	if c.OutputDir == "" {
		return fmt.Errorf("OUTPUT_DIR is required")
	}
	switch c.Format {
	case "html", "markdown", "md":
	default:
		return fmt.Errorf("OUTPUT_FORMAT must be html or markdown, got %q", c.Format)
	}
	if c.DayOverride < 0 || c.DayOverride > 31 {
		return fmt.Errorf("BIRTHDAY_DAY must be in [1, 31] or unset (0 means today), got %d", c.DayOverride)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
