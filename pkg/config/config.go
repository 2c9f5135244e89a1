/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/ssargent/usnjournal/pkg/usn"
	"gopkg.in/yaml.v3"
)

// MinBufferSize is the smallest read buffer that can hold a batch cursor.
const MinBufferSize = 8

// Config represents the usnjournal configuration
type Config struct {
	Volume     string  `yaml:"volume"`
	BufferSize int     `yaml:"buffer_size"`
	Read       Read    `yaml:"read"`
	Logging    Logging `yaml:"logging"`
}

// Read contains the defaults applied to read requests
type Read struct {
	Reasons           []string      `yaml:"reasons"`
	ReturnOnlyOnClose bool          `yaml:"return_only_on_close"`
	Timeout           time.Duration `yaml:"timeout"`
	BytesToWaitFor    uint64        `yaml:"bytes_to_wait_for"`
}

// Logging contains logging configuration
type Logging struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Volume:     "C:",
		BufferSize: 64 * 1024,
		Read: Read{
			Reasons: []string{"all"},
		},
		Logging: Logging{
			Level:  "info",
			Format: "text",
		},
	}
}

// Validate checks the configuration for values the tool cannot use
func (c *Config) Validate() error {
	if c.Volume == "" {
		return fmt.Errorf("volume is required")
	}
	if c.BufferSize < MinBufferSize {
		return fmt.Errorf("buffer_size must be at least %d bytes, got %d", MinBufferSize, c.BufferSize)
	}
	if c.Read.Timeout < 0 {
		return fmt.Errorf("read.timeout must not be negative")
	}
	if _, err := c.ReasonMask(); err != nil {
		return fmt.Errorf("read.reasons: %w", err)
	}
	switch c.Logging.Format {
	case "", "text", "json":
	default:
		return fmt.Errorf("logging.format must be text or json, got %q", c.Logging.Format)
	}
	return nil
}

// ReasonMask returns the reason filter configured for reads
func (c *Config) ReasonMask() (usn.Reason, error) {
	return usn.ParseReasons(c.Read.Reasons)
}

// ApplyTo returns req with the configured read options applied. The device
// timeout is expressed in 100-nanosecond units.
func (r Read) ApplyTo(req usn.ReadRequest, mask usn.Reason) usn.ReadRequest {
	return req.
		WithReasonMask(mask).
		WithReturnOnlyOnClose(r.ReturnOnlyOnClose).
		WithWait(uint64(r.Timeout/100), r.BytesToWaitFor)
}

// LoadConfig loads configuration from the specified path
func LoadConfig(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file does not exist: %s", configPath)
	}

	if !filepath.IsAbs(configPath) {
		absPath, err := filepath.Abs(configPath)
		if err != nil {
			return nil, fmt.Errorf("invalid config path: %w", err)
		}
		configPath = absPath
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	config := DefaultConfig()
	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return config, nil
}

// SaveConfig saves the configuration to the specified path
func SaveConfig(config *Config, configPath string) error {
	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// GetDefaultConfigPath returns the default configuration path for the current platform
func GetDefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return "./usnjournal.yaml"
	}

	// %AppData%\usnjournal\config.yaml on Windows, ~/.config/usnjournal/config.yaml elsewhere
	return filepath.Join(configDir, "usnjournal", "config.yaml")
}

// ConfigExists checks if a configuration file exists
func ConfigExists(configPath string) bool {
	_, err := os.Stat(configPath)
	return !os.IsNotExist(err)
}
