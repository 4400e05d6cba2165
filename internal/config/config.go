package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"fortio.org/log"
	"gopkg.in/yaml.v3"
)

// Config holds interpreter settings read from rinha.yaml.
type Config struct {
	// Memoize enables the call cache. Output is identical either way.
	Memoize bool `yaml:"memoize"`

	// MaxDepth bounds nested non-tail calls. 0 disables the check.
	MaxDepth int `yaml:"max_depth"`

	// TailCalls evaluates calls in tail position without growing the stack.
	TailCalls bool `yaml:"tail_calls"`

	// Color controls diagnostic coloring: auto, always or never.
	Color string `yaml:"color"`

	// LogLevel is one of debug, verbose, info, warning, error, critical.
	// Empty keeps the level chosen on the command line.
	LogLevel string `yaml:"log_level,omitempty"`
}

// Default returns the settings used when no config file is found.
func Default() *Config {
	return &Config{
		Memoize:   true,
		MaxDepth:  DefaultMaxDepth,
		TailCalls: true,
		Color:     ColorAuto,
	}
}

// LoadConfig reads and parses a rinha.yaml file.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}
	return ParseConfig(data, path)
}

// ParseConfig parses rinha.yaml content from bytes. Keys missing from the
// document keep their default values.
// The path argument is used only for error messages.
func ParseConfig(data []byte, path string) (*Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	if err := cfg.validate(path); err != nil {
		return nil, err
	}
	return cfg, nil
}

// FindConfig searches for rinha.yaml starting from dir and walking up
// to parent directories.
// Returns the path to the config file and nil error if found,
// or empty string and nil error if not found.
func FindConfig(dir string) (string, error) {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return "", fmt.Errorf("resolving directory: %w", err)
	}

	for {
		for _, name := range ConfigFileNames {
			candidate := filepath.Join(dir, name)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root
			return "", nil
		}
		dir = parent
	}
}

// Resolve loads the explicit config path if given, otherwise the nearest
// rinha.yaml above inputPath, otherwise the defaults.
func Resolve(explicit, inputPath string) (*Config, error) {
	path := explicit
	if path == "" {
		found, err := FindConfig(filepath.Dir(inputPath))
		if err != nil {
			return nil, err
		}
		path = found
	}
	if path == "" {
		return Default(), nil
	}
	log.LogVf("loading config from %s", path)
	return LoadConfig(path)
}

// validate checks the configuration for semantic errors.
func (c *Config) validate(path string) error {
	if c.MaxDepth < 0 {
		return fmt.Errorf("%s: max_depth must be >= 0, got %d", path, c.MaxDepth)
	}
	switch c.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("%s: color must be one of %s, %s, %s; got %q",
			path, ColorAuto, ColorAlways, ColorNever, c.Color)
	}
	if c.LogLevel != "" {
		if _, ok := ParseLogLevel(c.LogLevel); !ok {
			return fmt.Errorf("%s: unknown log_level %q", path, c.LogLevel)
		}
	}
	return nil
}

// ParseLogLevel maps a level name to the logger's level.
func ParseLogLevel(name string) (log.Level, bool) {
	switch strings.ToLower(name) {
	case LogLevelDebug:
		return log.Debug, true
	case LogLevelVerbose:
		return log.Verbose, true
	case LogLevelInfo:
		return log.Info, true
	case LogLevelWarning:
		return log.Warning, true
	case LogLevelError:
		return log.Error, true
	case LogLevelCritical:
		return log.Critical, true
	}
	return log.Info, false
}
