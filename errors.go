package standalone

import "errors"

// Sentinel errors for library operations.
var (
	ErrMissingSource = errors.New("entry HTML file missing or unreadable")
	ErrSourceNotUTF8 = errors.New("entry HTML file is not valid UTF-8")
	ErrNoScriptAsset = errors.New("no embeddable script found")
	ErrReadAsset     = errors.New("failed to read referenced asset")
	ErrWriteArtifact = errors.New("failed to write artifact")

	// Input validation errors.
	ErrEmptyDist      = errors.New("dist directory cannot be empty")
	ErrEmptyEntryFile = errors.New("entry file name cannot be empty")
	ErrNoDestinations = errors.New("at least one destination is required")
)
