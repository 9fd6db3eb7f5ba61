package config

import (
	"strings"
	"testing"

	"github.com/JonMunkholm/idataframe/internal/core"
)

// lookupMap returns a LookupFunc backed by a fixed map.
func lookupMap(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func validConfig() *Config {
	return &Config{
		Parse:   ParseConfig{MaxValues: -1, MaxMessages: 20, Verbose: true},
		Output:  OutputConfig{Format: "ascii", MaxRows: 50},
		Logging: LoggingConfig{Level: "info", Format: "text"},
	}
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := LoadFrom(lookupMap(nil))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Parse.MaxValues != -1 {
		t.Errorf("Parse.MaxValues = %d, want -1", cfg.Parse.MaxValues)
	}
	if cfg.Parse.MaxMessages != 20 {
		t.Errorf("Parse.MaxMessages = %d, want 20", cfg.Parse.MaxMessages)
	}
	if !cfg.Parse.Verbose {
		t.Error("Parse.Verbose = false, want true")
	}
	if cfg.Parse.DedupeMessages {
		t.Error("Parse.DedupeMessages = true, want false")
	}
	if cfg.Catalog.Path != "" {
		t.Errorf("Catalog.Path = %q, want empty", cfg.Catalog.Path)
	}
	if cfg.Output.Format != "ascii" {
		t.Errorf("Output.Format = %q, want ascii", cfg.Output.Format)
	}
	if cfg.Logging.Level != "info" {
		t.Errorf("Logging.Level = %q, want info", cfg.Logging.Level)
	}
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("IDF_MAX_VALUES", "100")
	t.Setenv("IDF_MAX_MESSAGES", "-1")
	t.Setenv("IDF_VERBOSE", "false")
	t.Setenv("IDF_DEDUPE_MESSAGES", "true")
	t.Setenv("IDF_CATALOG", "types.yaml")
	t.Setenv("IDF_OUTPUT", "markdown")
	t.Setenv("LOG_LEVEL", "debug")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.Parse.MaxValues != 100 {
		t.Errorf("Parse.MaxValues = %d, want 100", cfg.Parse.MaxValues)
	}
	if cfg.Parse.MaxMessages != -1 {
		t.Errorf("Parse.MaxMessages = %d, want -1", cfg.Parse.MaxMessages)
	}
	if cfg.Parse.Verbose {
		t.Error("Parse.Verbose = true, want false")
	}
	if !cfg.Parse.DedupeMessages {
		t.Error("Parse.DedupeMessages = false, want true")
	}
	if cfg.Catalog.Path != "types.yaml" {
		t.Errorf("Catalog.Path = %q, want types.yaml", cfg.Catalog.Path)
	}
	if cfg.Output.Format != "markdown" {
		t.Errorf("Output.Format = %q, want markdown", cfg.Output.Format)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
}

func TestLoad_InvalidInteger(t *testing.T) {
	_, err := LoadFrom(lookupMap(map[string]string{"IDF_MAX_VALUES": "many"}))
	if err == nil {
		t.Fatal("LoadFrom() expected error for non-numeric IDF_MAX_VALUES")
	}
	if !strings.Contains(err.Error(), "invalid value for IDF_MAX_VALUES") {
		t.Errorf("error = %v", err)
	}
	if got := core.MapError(err).Code; got != "CFG002" {
		t.Errorf("MapError code = %s, want CFG002", got)
	}
}

func TestLoad_InvalidBoolean(t *testing.T) {
	_, err := LoadFrom(lookupMap(map[string]string{"IDF_VERBOSE": "sometimes"}))
	if err == nil {
		t.Fatal("LoadFrom() expected error for IDF_VERBOSE")
	}
	if !strings.Contains(err.Error(), "invalid boolean") {
		t.Errorf("error = %v", err)
	}
}

func TestLoad_ValidationFailure(t *testing.T) {
	_, err := LoadFrom(lookupMap(map[string]string{"IDF_OUTPUT": "html"}))
	if err == nil {
		t.Fatal("LoadFrom() expected validation error")
	}
	if got := core.MapError(err).Code; got != "CFG001" {
		t.Errorf("MapError code = %s, want CFG001 (err: %v)", got, err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"valid", func(*Config) {}, ""},
		{"max values zero", func(c *Config) { c.Parse.MaxValues = 0 }, ""},
		{"max values below -1", func(c *Config) { c.Parse.MaxValues = -2 }, "IDF_MAX_VALUES"},
		{"max messages zero", func(c *Config) { c.Parse.MaxMessages = 0 }, "IDF_MAX_MESSAGES"},
		{"max messages below -1", func(c *Config) { c.Parse.MaxMessages = -5 }, "IDF_MAX_MESSAGES"},
		{"output csv", func(c *Config) { c.Output.Format = "CSV" }, ""},
		{"output unknown", func(c *Config) { c.Output.Format = "xml" }, "IDF_OUTPUT"},
		{"output rows", func(c *Config) { c.Output.MaxRows = -3 }, "IDF_OUTPUT_MAX_ROWS"},
		{"log level", func(c *Config) { c.Logging.Level = "verbose" }, "LOG_LEVEL"},
		{"log format", func(c *Config) { c.Logging.Format = "xml" }, "LOG_FORMAT"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() error = %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("Validate() expected error mentioning %s", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error should mention %s: %v", tt.wantErr, err)
			}
		})
	}
}

func TestValidate_CollectsAllFailures(t *testing.T) {
	cfg := validConfig()
	cfg.Logging.Level = "loud"
	cfg.Logging.Format = "yaml"

	err := cfg.Validate()
	if err == nil {
		t.Fatal("Validate() expected error")
	}
	for _, want := range []string{"LOG_LEVEL", "LOG_FORMAT"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error should mention %s: %v", want, err)
		}
	}
}

func TestParseOptions(t *testing.T) {
	cfg := ParseConfig{MaxValues: 10, MaxMessages: 5, Verbose: true}
	opts := cfg.ParseOptions()
	if opts.MaxValues != 10 || opts.MaxMessages != 5 || !opts.Verbose {
		t.Errorf("ParseOptions() = %+v", opts)
	}
	if opts.Policy != core.KeepDuplicates {
		t.Errorf("Policy = %v, want KeepDuplicates", opts.Policy)
	}

	cfg.DedupeMessages = true
	if got := cfg.ParseOptions().Policy; got != core.Deduplicate {
		t.Errorf("Policy = %v, want Deduplicate", got)
	}
}

func TestConfigString(t *testing.T) {
	cfg := validConfig()
	cfg.Catalog.Path = "catalog.toml"
	str := cfg.String()
	for _, want := range []string{"MaxMessages: 20", `Path: "catalog.toml"`, `Format: "ascii"`} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %s, missing %s", str, want)
		}
	}
}
