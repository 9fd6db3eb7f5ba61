// Package config provides centralized configuration management for the CLI.
// It loads configuration from environment variables with sensible defaults and
// validates all settings on startup to fail fast on misconfiguration.
package config

import (
	"fmt"
	"strings"

	"github.com/JonMunkholm/idataframe/internal/core"
)

// Config holds all application configuration.
// All settings can be configured via environment variables; command line
// flags override them.
type Config struct {
	Parse   ParseConfig
	Catalog CatalogConfig
	Output  OutputConfig
	Logging LoggingConfig
}

// ParseConfig holds the limits applied to every column parse.
type ParseConfig struct {
	// MaxValues stops a column after this row index; -1 disables (default: -1)
	MaxValues int `env:"IDF_MAX_VALUES" default:"-1"`

	// MaxMessages stops a column after this many diagnostics; -1 disables (default: 20)
	MaxMessages int `env:"IDF_MAX_MESSAGES" default:"20"`

	// Verbose logs the diagnostics of every column (default: true)
	Verbose bool `env:"IDF_VERBOSE" default:"true"`

	// DedupeMessages reports each distinct diagnostic once (default: false)
	DedupeMessages bool `env:"IDF_DEDUPE_MESSAGES" default:"false"`
}

// CatalogConfig holds the user-defined type catalog location.
type CatalogConfig struct {
	// Path is a YAML or TOML catalog loaded at startup (default: none)
	Path string `env:"IDF_CATALOG"`
}

// OutputConfig holds result rendering settings.
type OutputConfig struct {
	// Format is the table format: ascii, markdown or csv (default: ascii)
	Format string `env:"IDF_OUTPUT" default:"ascii"`

	// MaxRows limits the rendered rows; -1 renders all (default: 50)
	MaxRows int `env:"IDF_OUTPUT_MAX_ROWS" default:"50"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" default:"text"`
}

// ParseOptions converts the parse settings to engine options.
func (c ParseConfig) ParseOptions() core.ParseOptions {
	opts := core.ParseOptions{
		MaxValues:   c.MaxValues,
		MaxMessages: c.MaxMessages,
		Verbose:     c.Verbose,
		Policy:      core.KeepDuplicates,
	}
	if c.DedupeMessages {
		opts.Policy = core.Deduplicate
	}
	return opts
}

// Validate checks that the configuration is valid.
// Returns an error describing all validation failures.
func (c *Config) Validate() error {
	var errs []string

	if c.Parse.MaxValues < core.NoLimit {
		errs = append(errs, fmt.Sprintf("IDF_MAX_VALUES (%d) must be >= 0, or -1 for no limit", c.Parse.MaxValues))
	}
	if c.Parse.MaxMessages == 0 || c.Parse.MaxMessages < core.NoLimit {
		errs = append(errs, fmt.Sprintf("IDF_MAX_MESSAGES (%d) must be positive, or -1 for no limit", c.Parse.MaxMessages))
	}

	validOutputs := map[string]bool{"ascii": true, "markdown": true, "csv": true}
	if !validOutputs[strings.ToLower(c.Output.Format)] {
		errs = append(errs, fmt.Sprintf("IDF_OUTPUT (%q) must be one of: ascii, markdown, csv", c.Output.Format))
	}
	if c.Output.MaxRows < -1 {
		errs = append(errs, fmt.Sprintf("IDF_OUTPUT_MAX_ROWS (%d) must be >= 0, or -1 for all rows", c.Output.MaxRows))
	}

	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(c.Logging.Level)] {
		errs = append(errs, fmt.Sprintf("LOG_LEVEL (%q) must be one of: debug, info, warn, error", c.Logging.Level))
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(c.Logging.Format)] {
		errs = append(errs, fmt.Sprintf("LOG_FORMAT (%q) must be one of: text, json", c.Logging.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}

	return nil
}

// String returns a compact representation of the config for logging.
func (c *Config) String() string {
	var b strings.Builder
	b.WriteString("Config{")
	fmt.Fprintf(&b, "Parse: {MaxValues: %d, MaxMessages: %d, Verbose: %v, Dedupe: %v}, ",
		c.Parse.MaxValues, c.Parse.MaxMessages, c.Parse.Verbose, c.Parse.DedupeMessages)
	fmt.Fprintf(&b, "Catalog: {Path: %q}, ", c.Catalog.Path)
	fmt.Fprintf(&b, "Output: {Format: %q, MaxRows: %d}, ", c.Output.Format, c.Output.MaxRows)
	fmt.Fprintf(&b, "Logging: {Level: %q, Format: %q}", c.Logging.Level, c.Logging.Format)
	b.WriteString("}")
	return b.String()
}
