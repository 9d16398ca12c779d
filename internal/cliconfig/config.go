package cliconfig

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Config holds CLI configuration for uframe.
type Config struct {
	// DefsPath is an optional TOML file with extra unit definitions,
	// loaded on top of the embedded defaults.
	DefsPath string

	// LogLevel is one of debug, info, warn, error.
	LogLevel string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		LogLevel: "info",
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log-level must be one of debug, info, warn, error (got %q)", c.LogLevel)
	}
	if c.DefsPath != "" && !FileExists(c.DefsPath) {
		return fmt.Errorf("definitions file %s does not exist", c.DefsPath)
	}
	return nil
}

// Logger builds the CLI's console logger at the configured level.
func (c *Config) Logger() zerolog.Logger {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	output := zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}
	return zerolog.New(output).Level(level).With().Timestamp().Logger()
}

// configSetter helps apply configuration values while respecting flag
// precedence. It only applies values if the corresponding flag hasn't been
// explicitly set.
type configSetter struct {
	changed map[string]bool
}

// newConfigSetter creates a new setter with the given changed flags map.
func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}
