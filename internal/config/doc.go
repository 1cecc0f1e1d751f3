// Package config manages commitkit user configuration.
//
// It handles:
//   - Locating and reading the YAML config file
//   - Environment variable overrides
//   - Defaults for log location, log count and git command timeout
package config
