// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Environment variables read by ApplyEnv.
const (
	EnvConfig   = "TRADEPATH_CONFIG"
	EnvSeed     = "TRADEPATH_SEED"
	EnvLogLevel = "LOG_LEVEL"
)

// Config represents the CLI configuration that can be loaded from a JSON file.
// All fields are optional; missing values use defaults or must be provided via CLI flags.
type Config struct {
	// Paths
	Catalog    string `json:"catalog,omitempty"`    // Path to a skills catalog JSON file
	Transcript string `json:"transcript,omitempty"` // Path to a transcript JSON file

	// Analysis
	Trade string `json:"trade,omitempty"` // Default trade for score/gaps/journey
	Seed  uint64 `json:"seed,omitempty"`  // Seed for skill levels and suggestions; 0 means wall clock

	// Demo timings in milliseconds
	TypingSpeedMs   int `json:"typing_speed_ms,omitempty" validate:"gte=0"`
	ThinkingDelayMs int `json:"thinking_delay_ms,omitempty" validate:"gte=0"`
	QuestionPauseMs int `json:"question_pause_ms,omitempty" validate:"gte=0"`

	// Resume extraction delay bounds in milliseconds
	ExtractMinDelayMs int `json:"extract_min_delay_ms,omitempty" validate:"gte=0"`
	ExtractMaxDelayMs int `json:"extract_max_delay_ms,omitempty" validate:"gte=0"`

	// Behavior
	LogLevel string `json:"log_level,omitempty" validate:"omitempty,oneof=debug info warn error"`
	Verbose  bool   `json:"verbose,omitempty"` // Print detailed debug information
}

// Defaults returns the built-in configuration.
func Defaults() Config {
	return Config{
		TypingSpeedMs:     50,
		ThinkingDelayMs:   1000,
		QuestionPauseMs:   3000,
		ExtractMinDelayMs: 2000,
		ExtractMaxDelayMs: 3000,
		LogLevel:          "info",
	}
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

	// Resolve path relative to current directory if not absolute
	if !filepath.IsAbs(path) {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to get current directory: %w", err)
		}
		path = filepath.Join(cwd, path)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config JSON: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the configuration has valid values.
// Note: This doesn't check for required fields since those are handled
// by CLI flag validation after merging.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}

	if c.ExtractMaxDelayMs > 0 && c.ExtractMinDelayMs > c.ExtractMaxDelayMs {
		return fmt.Errorf("config error: 'extract_min_delay_ms' must not exceed 'extract_max_delay_ms'")
	}

	// Validate file paths exist (if specified)
	if c.Catalog != "" {
		if _, err := os.Stat(c.Catalog); os.IsNotExist(err) {
			return fmt.Errorf("config error: catalog file not found: %s", c.Catalog)
		}
	}

	if c.Transcript != "" {
		if _, err := os.Stat(c.Transcript); os.IsNotExist(err) {
			return fmt.Errorf("config error: transcript file not found: %s", c.Transcript)
		}
	}

	return nil
}

// MergeWithDefaults returns a new Config with empty fields filled from defaults.
// This is used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	// String fields: use default if empty
	if result.Catalog == "" {
		result.Catalog = defaults.Catalog
	}
	if result.Transcript == "" {
		result.Transcript = defaults.Transcript
	}
	if result.Trade == "" {
		result.Trade = defaults.Trade
	}
	if result.LogLevel == "" {
		result.LogLevel = defaults.LogLevel
	}

	// Numeric fields: use default if zero
	if result.Seed == 0 {
		result.Seed = defaults.Seed
	}
	if result.TypingSpeedMs == 0 {
		result.TypingSpeedMs = defaults.TypingSpeedMs
	}
	if result.ThinkingDelayMs == 0 {
		result.ThinkingDelayMs = defaults.ThinkingDelayMs
	}
	if result.QuestionPauseMs == 0 {
		result.QuestionPauseMs = defaults.QuestionPauseMs
	}
	if result.ExtractMinDelayMs == 0 {
		result.ExtractMinDelayMs = defaults.ExtractMinDelayMs
	}
	if result.ExtractMaxDelayMs == 0 {
		result.ExtractMaxDelayMs = defaults.ExtractMaxDelayMs
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}

// ApplyEnv overrides fields from environment variables. getenv is usually os.Getenv.
func (c *Config) ApplyEnv(getenv func(string) string) error {
	if v := strings.TrimSpace(getenv(EnvSeed)); v != "" {
		seed, err := strconv.ParseUint(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config error: invalid %s %q: %w", EnvSeed, v, err)
		}
		c.Seed = seed
	}
	if v := strings.TrimSpace(getenv(EnvLogLevel)); v != "" {
		c.LogLevel = strings.ToLower(v)
	}
	return nil
}

// SlogLevel maps LogLevel to a slog level. Verbose forces debug.
func (c *Config) SlogLevel() slog.Level {
	if c.Verbose {
		return slog.LevelDebug
	}
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// TypingSpeed returns the per-character typing delay.
func (c *Config) TypingSpeed() time.Duration {
	return time.Duration(c.TypingSpeedMs) * time.Millisecond
}

// ThinkingDelay returns the delay before a demo response is shown.
func (c *Config) ThinkingDelay() time.Duration {
	return time.Duration(c.ThinkingDelayMs) * time.Millisecond
}

// QuestionPause returns the pause between demo questions.
func (c *Config) QuestionPause() time.Duration {
	return time.Duration(c.QuestionPauseMs) * time.Millisecond
}

// ExtractDelays returns the resume extraction delay bounds.
func (c *Config) ExtractDelays() (time.Duration, time.Duration) {
	return time.Duration(c.ExtractMinDelayMs) * time.Millisecond,
		time.Duration(c.ExtractMaxDelayMs) * time.Millisecond
}
