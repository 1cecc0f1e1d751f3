package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// DefaultLogCount is the number of commits shown by log when no count is given.
const DefaultLogCount = 10

// Config represents the user configuration
type Config struct {
	LogFile         string   `yaml:"logFile,omitempty"`
	DefaultLogCount int      `yaml:"defaultLogCount,omitempty"`
	CommandTimeout  Duration `yaml:"commandTimeout,omitempty"`
	PushReminder    *bool    `yaml:"pushReminder,omitempty"`
}

// Duration is a time.Duration that reads from strings like "30s".
type Duration time.Duration

// UnmarshalYAML implements yaml.Unmarshaler.
func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	parsed, err := time.ParseDuration(s)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", s, err)
	}
	*d = Duration(parsed)
	return nil
}

// MarshalYAML implements yaml.Marshaler.
func (d Duration) MarshalYAML() (interface{}, error) {
	return time.Duration(d).String(), nil
}

// Default returns the configuration used when no file exists.
func Default() *Config {
	return &Config{DefaultLogCount: DefaultLogCount}
}

// GetConfigPath returns the path to the config file.
// If COMMITKIT_CONFIG is set, uses that path.
// Otherwise, uses ~/.commitkit/config.yaml
func GetConfigPath() string {
	if customPath := os.Getenv("COMMITKIT_CONFIG"); customPath != "" {
		return customPath
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "commitkit.yaml"
	}
	return filepath.Join(homeDir, ".commitkit", "config.yaml")
}

// Load reads the config file at path and applies environment overrides.
// A missing file yields the defaults.
func Load(path string) (*Config, error) {
	cfg, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if cfg.DefaultLogCount <= 0 {
		cfg.DefaultLogCount = DefaultLogCount
	}
	return cfg, nil
}

// ReadFile reads the config file at path without environment overrides.
// A missing file yields the defaults.
func ReadFile(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path) //nolint:gosec // config path chosen by the user
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("failed to read config: %w", err)
	default:
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
		}
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if logFile := os.Getenv("COMMITKIT_LOG_FILE"); logFile != "" {
		c.LogFile = logFile
	}

	if countStr := os.Getenv("COMMITKIT_DEFAULT_LOG_COUNT"); countStr != "" {
		count, err := strconv.Atoi(countStr)
		if err != nil {
			return fmt.Errorf("invalid COMMITKIT_DEFAULT_LOG_COUNT %q: %w", countStr, err)
		}
		c.DefaultLogCount = count
	}

	if timeoutStr := os.Getenv("COMMITKIT_COMMAND_TIMEOUT"); timeoutStr != "" {
		timeout, err := time.ParseDuration(timeoutStr)
		if err != nil {
			return fmt.Errorf("invalid COMMITKIT_COMMAND_TIMEOUT %q: %w", timeoutStr, err)
		}
		c.CommandTimeout = Duration(timeout)
	}
	return nil
}

// Timeout returns the per-command git timeout; zero means none.
func (c *Config) Timeout() time.Duration {
	return time.Duration(c.CommandTimeout)
}

// ShowPushReminder reports whether reports end with a push reminder.
func (c *Config) ShowPushReminder() bool {
	return c.PushReminder == nil || *c.PushReminder
}

// Keys lists the settings accepted by Get and Set.
func Keys() []string {
	return []string{"log-file", "default-log-count", "command-timeout", "push-reminder"}
}

// Get returns the value of a setting as text.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case "log-file":
		return c.LogFile, nil
	case "default-log-count":
		return strconv.Itoa(c.DefaultLogCount), nil
	case "command-timeout":
		return c.Timeout().String(), nil
	case "push-reminder":
		return strconv.FormatBool(c.ShowPushReminder()), nil
	default:
		return "", fmt.Errorf("unknown configuration key: %s", key)
	}
}

// Set parses value and stores it under key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "log-file":
		c.LogFile = value
	case "default-log-count":
		count, err := strconv.Atoi(value)
		if err != nil || count <= 0 {
			return fmt.Errorf("invalid default-log-count %q: must be a positive integer", value)
		}
		c.DefaultLogCount = count
	case "command-timeout":
		timeout, err := time.ParseDuration(value)
		if err != nil || timeout < 0 {
			return fmt.Errorf("invalid command-timeout %q: must be a duration like 30s", value)
		}
		c.CommandTimeout = Duration(timeout)
	case "push-reminder":
		enabled, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid push-reminder %q: must be true or false", value)
		}
		c.PushReminder = &enabled
	default:
		return fmt.Errorf("unknown configuration key: %s", key)
	}
	return nil
}

// Save writes the config to path as YAML, creating the directory if needed.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	return os.WriteFile(path, data, 0600)
}
