package standalone

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"
)

// Service orchestrates the HTML bundling pipeline.
type Service struct {
	cfg serviceConfig
}

// serviceConfig holds Service-level settings.
type serviceConfig struct {
	entryFile string
}

// Option configures a Service.
type Option func(*Service)

// WithEntryFile overrides the conventional entry point name for all
// bundles produced by the service. Input.EntryFile takes precedence
// per bundle.
func WithEntryFile(name string) Option {
	return func(s *Service) {
		s.cfg.entryFile = name
	}
}

// New creates a Service with default configuration.
func New(opts ...Option) *Service {
	s := &Service{
		cfg: serviceConfig{entryFile: DefaultEntryFile},
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// Bundle runs the full pipeline and returns the artifact.
// The context is checked between stages for cancellation.
func (s *Service) Bundle(ctx context.Context, input Input) (*Result, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	entry := input.EntryFile
	if entry == "" {
		entry = s.cfg.entryFile
	}
	if entry == "" {
		return nil, ErrEmptyEntryFile
	}

	entryPath := filepath.Join(input.Dist, entry)
	raw, err := os.ReadFile(entryPath) // #nosec G304 -- entry path is caller-provided
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrMissingSource, entryPath, err)
	}
	if !utf8.Valid(raw) {
		return nil, fmt.Errorf("%w: %s", ErrSourceNotUTF8, entryPath)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	// Styles first: script inlining re-serializes the document into a
	// byte buffer and ends the transform.
	doc, inlined, skipped, err := inlineStylesheets(string(raw), input.Dist)
	if err != nil {
		return nil, fmt.Errorf("inlining stylesheets: %w", err)
	}

	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	html, src, left, err := inlineScript([]byte(doc), input.Dist)
	if err != nil {
		return nil, fmt.Errorf("inlining script: %w", err)
	}

	return &Result{
		HTML:           html,
		StylesInlined:  inlined,
		StylesSkipped:  skipped,
		ScriptInlined:  src,
		ScriptsSkipped: left,
	}, nil
}
