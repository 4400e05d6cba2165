package config

import (
	"path/filepath"
	"strings"
)

// SourceFileExtensions are the recognized AST interchange file extensions.
var SourceFileExtensions = []string{".json", ".yaml", ".yml"}

// HasSourceExt checks if a path ends with a recognized source extension.
func HasSourceExt(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	for _, e := range SourceFileExtensions {
		if ext == e {
			return true
		}
	}
	return false
}

// ConfigFileNames are searched, in order, in each directory walked by FindConfig.
var ConfigFileNames = []string{"rinha.yaml", "rinha.yml"}

// Runtime limits
const (
	// DefaultMaxDepth bounds nested non-tail calls. 0 disables the check.
	DefaultMaxDepth = 100000
)

// Display tokens
const (
	ClosurePlaceholder = "<#closure>"
)

// Color modes for diagnostics
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Log level names accepted in rinha.yaml
const (
	LogLevelDebug    = "debug"
	LogLevelVerbose  = "verbose"
	LogLevelInfo     = "info"
	LogLevelWarning  = "warning"
	LogLevelError    = "error"
	LogLevelCritical = "critical"
)
