// Copyright 2026 The avanza-mcp Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config loads the server configuration from an optional YAML
// file with environment variable overrides.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is returned when configuration validation fails.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config represents the complete avanza-mcp configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Upstream UpstreamConfig `yaml:"upstream"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig configures the MCP server surface.
type ServerConfig struct {
	// Name is the server name reported during the MCP handshake.
	// Default: avanza-mcp
	Name string `yaml:"name,omitempty"`

	// CallsPerMinute caps tool calls per minute.
	// Environment: AVANZA_MCP_CALLS_PER_MINUTE
	// Default: 120
	CallsPerMinute int `yaml:"calls_per_minute,omitempty"`
}

// UpstreamConfig configures the HTTP client talking to Avanza.
type UpstreamConfig struct {
	// BaseURL is the upstream base address.
	// Environment: AVANZA_MCP_BASE_URL
	// Default: https://www.avanza.se
	BaseURL string `yaml:"base_url,omitempty"`

	// ReadTimeout bounds one request including body read.
	// Default: 30s
	ReadTimeout time.Duration `yaml:"read_timeout,omitempty"`

	// ConnectTimeout bounds connection establishment.
	// Default: 5s
	ConnectTimeout time.Duration `yaml:"connect_timeout,omitempty"`

	// MaxConnections caps total connections to the host.
	// Default: 10
	MaxConnections int `yaml:"max_connections,omitempty"`

	// MaxIdleConnections caps pooled keepalive connections.
	// Default: 5
	MaxIdleConnections int `yaml:"max_idle_connections,omitempty"`

	// MaxAttempts is the per-call retry budget.
	// Environment: AVANZA_MCP_MAX_ATTEMPTS
	// Default: 3
	MaxAttempts int `yaml:"max_attempts,omitempty"`

	// UserAgent overrides the default request identifier.
	UserAgent string `yaml:"user_agent,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is the log level (debug, info, warn, error).
	// Environment: AVANZA_MCP_LOG_LEVEL, LOG_LEVEL
	Level string `yaml:"level,omitempty"`

	// Format is the log format (text, json).
	// Environment: LOG_FORMAT
	Format string `yaml:"format,omitempty"`
}

// Default returns the configuration defaults.
func Default() *Config {
	return &Config{
		Server: ServerConfig{
			Name:           "avanza-mcp",
			CallsPerMinute: 120,
		},
		Upstream: UpstreamConfig{
			BaseURL:            "https://www.avanza.se",
			ReadTimeout:        30 * time.Second,
			ConnectTimeout:     5 * time.Second,
			MaxConnections:     10,
			MaxIdleConnections: 5,
			MaxAttempts:        3,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load reads the configuration from the given path, applies defaults for
// missing values, overrides from the environment, and validates. An empty
// path skips the file and uses defaults plus environment.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	if configPath != "" {
		if err := cfg.loadFromFile(configPath); err != nil {
			return nil, fmt.Errorf("config: failed to load from %s: %w", configPath, err)
		}
	}

	cfg.applyDefaults()
	cfg.loadFromEnv()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ConfigPath returns the default config file path under the XDG config
// directory. Respects XDG_CONFIG_HOME.
func ConfigPath() (string, error) {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		base = filepath.Join(home, ".config")
	}
	return filepath.Join(base, "avanza-mcp", "config.yaml"), nil
}

func (c *Config) loadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, c)
}

// applyDefaults fills zero values left after file loading so minimal
// configs work.
func (c *Config) applyDefaults() {
	def := Default()

	if c.Server.Name == "" {
		c.Server.Name = def.Server.Name
	}
	if c.Server.CallsPerMinute == 0 {
		c.Server.CallsPerMinute = def.Server.CallsPerMinute
	}
	if c.Upstream.BaseURL == "" {
		c.Upstream.BaseURL = def.Upstream.BaseURL
	}
	if c.Upstream.ReadTimeout == 0 {
		c.Upstream.ReadTimeout = def.Upstream.ReadTimeout
	}
	if c.Upstream.ConnectTimeout == 0 {
		c.Upstream.ConnectTimeout = def.Upstream.ConnectTimeout
	}
	if c.Upstream.MaxConnections == 0 {
		c.Upstream.MaxConnections = def.Upstream.MaxConnections
	}
	if c.Upstream.MaxIdleConnections == 0 {
		c.Upstream.MaxIdleConnections = def.Upstream.MaxIdleConnections
	}
	if c.Upstream.MaxAttempts == 0 {
		c.Upstream.MaxAttempts = def.Upstream.MaxAttempts
	}
	if c.Log.Level == "" {
		c.Log.Level = def.Log.Level
	}
	if c.Log.Format == "" {
		c.Log.Format = def.Log.Format
	}
}

// loadFromEnv overrides configuration values from environment variables.
func (c *Config) loadFromEnv() {
	if val := os.Getenv("AVANZA_MCP_BASE_URL"); val != "" {
		c.Upstream.BaseURL = val
	}
	if val := os.Getenv("AVANZA_MCP_MAX_ATTEMPTS"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			c.Upstream.MaxAttempts = parsed
		}
	}
	if val := os.Getenv("AVANZA_MCP_CALLS_PER_MINUTE"); val != "" {
		if parsed, err := strconv.Atoi(val); err == nil {
			c.Server.CallsPerMinute = parsed
		}
	}
	if val := os.Getenv("AVANZA_MCP_LOG_LEVEL"); val != "" {
		c.Log.Level = strings.ToLower(val)
	} else if val := os.Getenv("LOG_LEVEL"); val != "" {
		c.Log.Level = strings.ToLower(val)
	}
	if val := os.Getenv("LOG_FORMAT"); val != "" {
		c.Log.Format = strings.ToLower(val)
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Server.CallsPerMinute < 1 {
		return fmt.Errorf("%w: server.calls_per_minute must be at least 1, got %d",
			ErrInvalidConfig, c.Server.CallsPerMinute)
	}
	if !strings.HasPrefix(c.Upstream.BaseURL, "http://") && !strings.HasPrefix(c.Upstream.BaseURL, "https://") {
		return fmt.Errorf("%w: upstream.base_url must use http or https, got %q",
			ErrInvalidConfig, c.Upstream.BaseURL)
	}
	if c.Upstream.ReadTimeout <= 0 {
		return fmt.Errorf("%w: upstream.read_timeout must be positive", ErrInvalidConfig)
	}
	if c.Upstream.ConnectTimeout <= 0 {
		return fmt.Errorf("%w: upstream.connect_timeout must be positive", ErrInvalidConfig)
	}
	if c.Upstream.MaxAttempts < 1 {
		return fmt.Errorf("%w: upstream.max_attempts must be at least 1, got %d",
			ErrInvalidConfig, c.Upstream.MaxAttempts)
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: log.level must be debug, info, warn, or error, got %q",
			ErrInvalidConfig, c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format must be text or json, got %q",
			ErrInvalidConfig, c.Log.Format)
	}
	return nil
}
