// Package config provides configuration loading and validation for the server
// and CLI commands.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// Config represents the runtime configuration that can be loaded from a JSON
// file. All fields are optional; missing values use defaults or environment
// overrides.
type Config struct {
	Port           int    `json:"port,omitempty"`             // HTTP port
	MaxUploadBytes int64  `json:"max_upload_bytes,omitempty"` // Upload size cap for /resume/parse
	SchemaPath     string `json:"schema_path,omitempty"`      // Path to the resume JSON Schema
	Verbose        bool   `json:"verbose,omitempty"`          // Print detailed request information
}

// Default returns the built-in configuration values.
func Default() Config {
	return Config{
		Port:           8080,
		MaxUploadBytes: 10 << 20,
		SchemaPath:     "schemas/resume.schema.json",
	}
}

// Load loads configuration from a JSON file.
// Returns an error if the file cannot be read or parsed.
func Load(path string) (*Config, error) {
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

// FromEnv returns the defaults overlaid with environment variables.
func FromEnv() Config {
	cfg := Default()
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		}
	}
	if v := os.Getenv("MAX_UPLOAD_BYTES"); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.MaxUploadBytes = n
		}
	}
	if v := os.Getenv("RESUME_SCHEMA_PATH"); v != "" {
		cfg.SchemaPath = v
	}
	return cfg
}

// Validate checks that the configuration has valid values.
func (c *Config) Validate() error {
	if c.Port < 0 || c.Port > 65535 {
		return fmt.Errorf("config error: 'port' must be between 0 and 65535")
	}
	if c.MaxUploadBytes < 0 {
		return fmt.Errorf("config error: 'max_upload_bytes' must be non-negative")
	}
	return nil
}

// MergeWithDefaults returns a new Config with zero-valued fields filled from
// defaults.
func (c *Config) MergeWithDefaults(defaults Config) Config {
	result := *c
	if result.Port == 0 {
		result.Port = defaults.Port
	}
	if result.MaxUploadBytes == 0 {
		result.MaxUploadBytes = defaults.MaxUploadBytes
	}
	if result.SchemaPath == "" {
		result.SchemaPath = defaults.SchemaPath
	}
	return result
}
