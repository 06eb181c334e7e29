package main

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"

	standalone "github.com/alnah/go-standalone"
	"github.com/alnah/go-standalone/internal/config"
	"github.com/alnah/go-standalone/internal/fileutil"
)

// Sentinel errors for CLI operations.
var (
	ErrBadFlags     = errors.New("invalid flags")
	ErrDistNotFound = errors.New("dist directory not found")
)

// run executes the bundler with the given args and environment.
func run(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	if flags.version {
		fmt.Fprintf(env.Stdout, "standalone %s\n", Version)
		return nil
	}

	cfg := config.DefaultConfig()
	if flags.config != "" {
		cfg, err = config.LoadConfig(flags.config)
		if err != nil {
			return fmt.Errorf("loading config: %w", err)
		}
	}

	// CLI wins over config; config wins over convention.
	mergeFlags(flags, cfg)

	if !fileutil.DirExists(cfg.Dist) {
		return fmt.Errorf("%w: %s", ErrDistNotFound, cfg.Dist)
	}

	dests, err := resolveDestinations(cfg)
	if err != nil {
		return err
	}

	if cfg.Watch.Enabled {
		return runWatch(ctx, cfg, dests, env)
	}
	return bundleOnce(ctx, cfg, dests, env)
}

// bundleOnce runs the pipeline a single time and reports the artifact.
func bundleOnce(ctx context.Context, cfg *config.Config, dests []string, env *Environment) error {
	svc := standalone.New(standalone.WithEntryFile(cfg.Artifact.EntryFile))

	result, err := svc.Bundle(ctx, standalone.Input{Dist: cfg.Dist})
	if err != nil {
		return err
	}

	if err := standalone.WriteArtifact(result.HTML, dests); err != nil {
		return err
	}

	if cfg.Console.Verbose {
		fmt.Fprintf(env.Stderr, "styles inlined: %d, skipped: %d\n", result.StylesInlined, len(result.StylesSkipped))
		for _, href := range result.StylesSkipped {
			fmt.Fprintf(env.Stderr, "  missing stylesheet target: %s\n", href)
		}
		fmt.Fprintf(env.Stderr, "script embedded: %s (%d left external)\n", result.ScriptInlined, result.ScriptsSkipped)
	}

	if !cfg.Console.Quiet {
		fmt.Fprintf(env.Stdout, "Standalone HTML: %s bytes → %s\n", groupDigits(result.Size()), dests[len(dests)-1])
	}

	return nil
}

// resolveDestinations computes the artifact paths. Explicit destinations
// replace the convention entirely; otherwise the artifact lands next to
// the project (sibling of the dist directory's parent) and, when a
// shared directory is configured, in that directory too.
func resolveDestinations(cfg *config.Config) ([]string, error) {
	if len(cfg.Output.Destinations) > 0 {
		return cfg.Output.Destinations, nil
	}

	absDist, err := filepath.Abs(cfg.Dist)
	if err != nil {
		return nil, fmt.Errorf("resolving dist path: %w", err)
	}

	artifact := cfg.Artifact.Name + ".html"
	dests := []string{
		filepath.Join(filepath.Dir(filepath.Dir(absDist)), artifact),
	}
	if cfg.Output.SharedDir != "" {
		dests = append(dests, filepath.Join(cfg.Output.SharedDir, artifact))
	}
	return dests, nil
}

// groupDigits formats n with comma as thousands separator.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if n < 0 || len(s) <= 3 {
		return s
	}
	var out []byte
	for i, c := range []byte(s) {
		if i > 0 && (len(s)-i)%3 == 0 {
			out = append(out, ',')
		}
		out = append(out, c)
	}
	return string(out)
}
