// Package config provides configuration loading and validation for the CLI.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/go-playground/validator/v10"
)

// Config represents the CLI configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or must be
// provided via CLI flags.
type Config struct {
	// Generator
	Model  string `json:"model,omitempty"`   // Gemini model name
	APIKey string `json:"api_key,omitempty"` // Gemini API key

	// Sampling
	BaseTemperature float64 `json:"base_temperature,omitempty" validate:"omitempty,gt=0,lte=1.2"`

	// Retry bounds
	PoemAttempts int `json:"poem_attempts,omitempty" validate:"gte=0"`
	LineAttempts int `json:"line_attempts,omitempty" validate:"gte=0"`

	// Line structure
	MinWords int `json:"min_words,omitempty" validate:"gte=0"`
	MaxWords int `json:"max_words,omitempty" validate:"gte=0"`

	// Behavior
	TimeoutSeconds int  `json:"timeout_seconds,omitempty" validate:"gte=0"` // per-call generator timeout, 0 = none
	Verbose        bool `json:"verbose,omitempty"`
}

// LoadConfig loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		return nil, fmt.Errorf("config path is empty")
	}

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

// Validate checks that the configuration has valid values using the
// struct tags, plus the cross-field word-bound relation.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if c.MinWords > 0 && c.MaxWords > 0 && c.MinWords > c.MaxWords {
		return fmt.Errorf("config error: 'min_words' must not exceed 'max_words'")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero fields filled from
// defaults. Used to apply config file values as defaults for CLI flags.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c

	if result.Model == "" {
		result.Model = defaults.Model
	}
	if result.APIKey == "" {
		result.APIKey = defaults.APIKey
	}
	if result.BaseTemperature == 0 {
		result.BaseTemperature = defaults.BaseTemperature
	}
	if result.PoemAttempts == 0 {
		result.PoemAttempts = defaults.PoemAttempts
	}
	if result.LineAttempts == 0 {
		result.LineAttempts = defaults.LineAttempts
	}
	if result.MinWords == 0 {
		result.MinWords = defaults.MinWords
	}
	if result.MaxWords == 0 {
		result.MaxWords = defaults.MaxWords
	}
	if result.TimeoutSeconds == 0 {
		result.TimeoutSeconds = defaults.TimeoutSeconds
	}

	// Bool fields: cannot distinguish unset from false, so we don't merge
	// (CLI flags should always win for bools)

	return result
}
