package main

import (
	"errors"
	"os"

	standalone "github.com/alnah/go-standalone"
	"github.com/alnah/go-standalone/internal/config"
)

// Exit codes for the standalone CLI.
// Follows Unix conventions: 0=success, 1=general, 2=usage, and custom codes < 126.
const (
	ExitSuccess  = 0 // Artifact written
	ExitGeneral  = 1 // General/unexpected error
	ExitUsage    = 2 // Invalid flags, config, or validation
	ExitIO       = 3 // File not found, permission denied, write failure
	ExitNoScript = 4 // No embeddable script in the entry point
)

// exitCodeFor returns the appropriate exit code for an error.
// It uses errors.Is to check wrapped errors, so callers must use fmt.Errorf("%w", err).
func exitCodeFor(err error) int {
	if err == nil {
		return ExitSuccess
	}

	// Script search failure (exit 4)
	if errors.Is(err, standalone.ErrNoScriptAsset) {
		return ExitNoScript
	}

	// I/O errors (exit 3)
	if errors.Is(err, os.ErrNotExist) ||
		errors.Is(err, os.ErrPermission) ||
		errors.Is(err, standalone.ErrMissingSource) ||
		errors.Is(err, standalone.ErrSourceNotUTF8) ||
		errors.Is(err, standalone.ErrReadAsset) ||
		errors.Is(err, standalone.ErrWriteArtifact) ||
		errors.Is(err, ErrDistNotFound) {
		return ExitIO
	}

	// Usage/config/validation errors (exit 2)
	if errors.Is(err, ErrBadFlags) ||
		errors.Is(err, config.ErrConfigNotFound) ||
		errors.Is(err, config.ErrEmptyConfigName) ||
		errors.Is(err, config.ErrConfigParse) ||
		errors.Is(err, config.ErrFieldTooLong) ||
		errors.Is(err, standalone.ErrEmptyDist) ||
		errors.Is(err, standalone.ErrEmptyEntryFile) ||
		errors.Is(err, standalone.ErrNoDestinations) {
		return ExitUsage
	}

	return ExitGeneral
}
