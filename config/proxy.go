package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// APIKeyEnv is the environment variable carrying the upstream credential.
// It is never read from the config file.
const APIKeyEnv = "GEMINI_API_KEY"

// ProxyConfig configures the analysis proxy service.
//
// File location is passed with `proxy serve --config`; any field left out keeps
// its default from DefaultProxyConfig.
type ProxyConfig struct {
	// Addr is the listen address, e.g. ":8787".
	Addr string `yaml:"addr"`

	// Model is the upstream model name used by both endpoints.
	Model string `yaml:"model"`

	// BaseURL overrides the upstream endpoint. Empty means the SDK default.
	BaseURL string `yaml:"baseURL"`

	// UpstreamTimeout bounds a single upstream call.
	UpstreamTimeout time.Duration `yaml:"upstreamTimeout"`

	// ShutdownTimeout bounds graceful shutdown.
	ShutdownTimeout time.Duration `yaml:"shutdownTimeout"`

	// MaxBodyBytes caps inbound request bodies.
	MaxBodyBytes int64 `yaml:"maxBodyBytes"`

	// LogLevel is a zap level name: debug, info, warn, error.
	LogLevel string `yaml:"logLevel"`

	// Development switches zap to console output.
	Development bool `yaml:"development"`

	// APIKey is filled from GEMINI_API_KEY by LoadProxyConfig.
	APIKey string `yaml:"-"`
}

// DefaultProxyConfig returns the configuration used when no file is given.
func DefaultProxyConfig() ProxyConfig {
	return ProxyConfig{
		Addr:            ":8787",
		Model:           "gemini-2.0-flash-exp",
		UpstreamTimeout: 30 * time.Second,
		ShutdownTimeout: 5 * time.Second,
		MaxBodyBytes:    10 << 20,
		LogLevel:        "info",
	}
}

// LoadProxyConfig reads the YAML file at path over the defaults and pulls the
// API key from the environment. An empty path skips the file.
func LoadProxyConfig(path string) (*ProxyConfig, error) {
	cfg := DefaultProxyConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read proxy config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse proxy config: %w", err)
		}
	}

	cfg.APIKey = os.Getenv(APIKeyEnv)

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid proxy config: %w", err)
	}
	return &cfg, nil
}

// Validate checks structural settings. A missing API key is not an error here:
// the handlers report it per request as a configuration error.
func (c *ProxyConfig) Validate() error {
	if c.Addr == "" {
		return errors.New("addr must not be empty")
	}
	if c.Model == "" {
		return errors.New("model must not be empty")
	}
	if c.UpstreamTimeout <= 0 {
		return fmt.Errorf("upstreamTimeout must be positive, got %s", c.UpstreamTimeout)
	}
	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdownTimeout must be positive, got %s", c.ShutdownTimeout)
	}
	if c.MaxBodyBytes <= 0 {
		return fmt.Errorf("maxBodyBytes must be positive, got %d", c.MaxBodyBytes)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("unknown logLevel %q", c.LogLevel)
	}
	return nil
}
