package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alnah/go-standalone/internal/fileutil"
	"github.com/alnah/go-standalone/internal/yamlutil"
)

// Sentinel errors for config operations.
var (
	ErrConfigNotFound  = errors.New("config file not found")
	ErrEmptyConfigName = errors.New("config name cannot be empty")
	ErrConfigParse     = errors.New("failed to parse config")
	ErrFieldTooLong    = errors.New("field exceeds maximum length")
)

// Field limits to catch pasted garbage and runaway values early.
const (
	MaxNameLength = 100  // Artifact base name
	MaxPathLength = 4096 // Directory and destination paths
	MaxDebounceMs = 10_000
)

// Conventional defaults. A bare run with no config and no flags bundles
// ./dist into <dist parent's parent>/app.html plus the shared drop
// directory.
const (
	DefaultDist       = "dist"
	DefaultArtifact   = "app"
	DefaultEntryFile  = "index.html"
	DefaultSharedDir  = "/mnt/user-data/outputs"
	DefaultDebounceMs = 500
)

// Config holds all configuration for the bundler CLI.
type Config struct {
	Dist     string         `yaml:"dist"`
	Artifact ArtifactConfig `yaml:"artifact"`
	Output   OutputConfig   `yaml:"output"`
	Watch    WatchConfig    `yaml:"watch"`
	Console  ConsoleConfig  `yaml:"console"`
}

// ArtifactConfig defines the produced artifact.
type ArtifactConfig struct {
	Name      string `yaml:"name"`      // Base name; artifact is <name>.html
	EntryFile string `yaml:"entryFile"` // Entry point inside dist (default "index.html")
}

// OutputConfig defines where the artifact is written.
type OutputConfig struct {
	Destinations []string `yaml:"destinations"` // Explicit paths; empty = convention
	SharedDir    string   `yaml:"sharedDir"`    // Well-known shared drop directory
}

// WatchConfig defines watch mode behavior.
type WatchConfig struct {
	Enabled    bool `yaml:"enabled"`
	DebounceMs int  `yaml:"debounceMs"` // Settle window for rapid rebuilds
}

// ConsoleConfig defines console verbosity defaults.
type ConsoleConfig struct {
	Quiet   bool `yaml:"quiet"`
	Verbose bool `yaml:"verbose"`
}

// Validate checks field lengths and value ranges.
// Called automatically by LoadConfig, but available for consumers who
// construct Config manually.
func (c *Config) Validate() error {
	if err := validateFieldLength("dist", c.Dist, MaxPathLength); err != nil {
		return err
	}
	if err := validateFieldLength("artifact.name", c.Artifact.Name, MaxNameLength); err != nil {
		return err
	}
	if strings.ContainsAny(c.Artifact.Name, "/\\") {
		return fmt.Errorf("artifact.name: must not contain path separators, got %q", c.Artifact.Name)
	}
	if err := validateFieldLength("artifact.entryFile", c.Artifact.EntryFile, MaxNameLength); err != nil {
		return err
	}
	if err := validateFieldLength("output.sharedDir", c.Output.SharedDir, MaxPathLength); err != nil {
		return err
	}
	for i, dest := range c.Output.Destinations {
		if err := validateFieldLength(fmt.Sprintf("output.destinations[%d]", i), dest, MaxPathLength); err != nil {
			return err
		}
	}
	if c.Watch.DebounceMs < 0 || c.Watch.DebounceMs > MaxDebounceMs {
		return fmt.Errorf("watch.debounceMs: must be between 0 and %d, got %d", MaxDebounceMs, c.Watch.DebounceMs)
	}
	return nil
}

// validateFieldLength checks if a field exceeds its maximum allowed length.
func validateFieldLength(fieldName, value string, maxLength int) error {
	if len(value) > maxLength {
		return fmt.Errorf("%w: %s (%d chars, max %d)", ErrFieldTooLong, fieldName, len(value), maxLength)
	}
	return nil
}

// DefaultConfig returns the fixed-path convention configuration.
func DefaultConfig() *Config {
	return &Config{
		Dist: DefaultDist,
		Artifact: ArtifactConfig{
			Name:      DefaultArtifact,
			EntryFile: DefaultEntryFile,
		},
		Output: OutputConfig{
			SharedDir: DefaultSharedDir,
		},
		Watch: WatchConfig{
			Enabled:    false,
			DebounceMs: DefaultDebounceMs,
		},
	}
}

// LoadConfig loads configuration from a file path or config name.
// If nameOrPath contains a path separator, it's treated as a file path.
// Otherwise, it's treated as a config name and searched in standard
// locations. Returns error if the file is not found (no silent fallback).
func LoadConfig(nameOrPath string) (*Config, error) {
	if nameOrPath == "" {
		return nil, ErrEmptyConfigName
	}

	var configPath string
	var err error

	if fileutil.IsFilePath(nameOrPath) {
		configPath = nameOrPath
	} else {
		configPath, err = resolveConfigPath(nameOrPath)
		if err != nil {
			return nil, err
		}
	}

	data, err := os.ReadFile(configPath) // #nosec G304 -- config path is user-provided
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrConfigNotFound, configPath)
		}
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yamlutil.UnmarshalStrict(data, cfg); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrConfigParse, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// resolveConfigPath searches for a config file by name in standard locations.
// Tries extensions in order: .yaml, .yml
// Tries locations in order: current directory, <user config dir>/go-standalone/
func resolveConfigPath(name string) (string, error) {
	extensions := []string{".yaml", ".yml"}
	triedPaths := make([]string, 0, len(extensions)*2) // 2 locations

	// Try current directory first (both extensions)
	for _, ext := range extensions {
		localPath := name + ext
		if fileutil.FileExists(localPath) {
			return localPath, nil
		}
		triedPaths = append(triedPaths, localPath)
	}

	// Try user config directory (both extensions)
	userConfigDir, err := os.UserConfigDir()
	if err == nil {
		for _, ext := range extensions {
			userPath := filepath.Join(userConfigDir, "go-standalone", name+ext)
			if fileutil.FileExists(userPath) {
				return userPath, nil
			}
			triedPaths = append(triedPaths, userPath)
		}
	}

	return "", fmt.Errorf("%w: tried %s", ErrConfigNotFound, strings.Join(triedPaths, ", "))
}
