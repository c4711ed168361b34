package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfig_Success(t *testing.T) {
	path := writeConfigFile(t, `{
		"model": "gemini-2.5-flash",
		"base_temperature": 0.9,
		"poem_attempts": 5,
		"min_words": 3,
		"max_words": 8,
		"verbose": true
	}`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "gemini-2.5-flash", cfg.Model)
	assert.Equal(t, 0.9, cfg.BaseTemperature)
	assert.Equal(t, 5, cfg.PoemAttempts)
	assert.Equal(t, 3, cfg.MinWords)
	assert.Equal(t, 8, cfg.MaxWords)
	assert.True(t, cfg.Verbose)
}

func TestLoadConfig_EmptyPath(t *testing.T) {
	_, err := LoadConfig("")
	assert.Error(t, err)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read config file")
}

func TestLoadConfig_InvalidJSON(t *testing.T) {
	path := writeConfigFile(t, `{"model": `)
	_, err := LoadConfig(path)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse config JSON")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{
			name: "valid config",
			cfg: Config{
				Model:           "gemini-2.5-flash",
				BaseTemperature: 0.85,
				PoemAttempts:    8,
				LineAttempts:    25,
				MinWords:        3,
				MaxWords:        8,
			},
		},
		{
			name: "zero config is valid",
			cfg:  Config{},
		},
		{
			name:    "temperature above limit",
			cfg:     Config{BaseTemperature: 1.5},
			wantErr: true,
		},
		{
			name:    "negative temperature",
			cfg:     Config{BaseTemperature: -0.1},
			wantErr: true,
		},
		{
			name:    "negative attempts",
			cfg:     Config{PoemAttempts: -1},
			wantErr: true,
		},
		{
			name:    "min words above max words",
			cfg:     Config{MinWords: 9, MaxWords: 4},
			wantErr: true,
		},
		{
			name:    "negative timeout",
			cfg:     Config{TimeoutSeconds: -5},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestMergeWithDefaults(t *testing.T) {
	defaults := Config{
		Model:           "gemini-2.5-flash",
		BaseTemperature: 0.85,
		PoemAttempts:    8,
		LineAttempts:    25,
		MinWords:        3,
		MaxWords:        8,
		TimeoutSeconds:  60,
	}

	t.Run("zero fields take defaults", func(t *testing.T) {
		cfg := Config{}
		merged := cfg.MergeWithDefaults(defaults)
		assert.Equal(t, defaults, merged)
	})

	t.Run("set fields win", func(t *testing.T) {
		cfg := Config{Model: "gemini-1.5-pro", PoemAttempts: 3}
		merged := cfg.MergeWithDefaults(defaults)
		assert.Equal(t, "gemini-1.5-pro", merged.Model)
		assert.Equal(t, 3, merged.PoemAttempts)
		assert.Equal(t, 25, merged.LineAttempts)
		assert.Equal(t, 0.85, merged.BaseTemperature)
	})
}
