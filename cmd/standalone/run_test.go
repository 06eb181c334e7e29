package main

import (
	"bytes"
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	standalone "github.com/alnah/go-standalone"
	"github.com/alnah/go-standalone/internal/config"
)

// testEnv returns an Environment capturing stdout and stderr.
func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

// writeDist builds a bundleable dist directory and returns its path.
func writeDist(t *testing.T) string {
	t.Helper()
	dist := filepath.Join(t.TempDir(), "dist")
	assets := filepath.Join(dist, "assets")
	if err := os.MkdirAll(assets, 0o750); err != nil {
		t.Fatal(err)
	}
	index := `<html><head><link rel="stylesheet" href="/assets/app.css"></head>` +
		`<body><script type="module" src="/assets/app.js"></script></body></html>`
	if err := os.WriteFile(filepath.Join(dist, "index.html"), []byte(index), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(assets, "app.css"), []byte("body{color:red}"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(assets, "app.js"), []byte("console.log(1)"), 0o644); err != nil {
		t.Fatal(err)
	}
	return dist
}

// ---------------------------------------------------------------------------
// TestRun - End-to-end CLI runs
// ---------------------------------------------------------------------------

func TestRun_BundlesToExplicitDestinations(t *testing.T) {
	t.Parallel()

	dist := writeDist(t)
	outDir := t.TempDir()
	primary := filepath.Join(outDir, "app.html")
	secondary := filepath.Join(outDir, "copy.html")

	env, stdout, _ := testEnv()
	err := run(context.Background(), []string{"--dist", dist, "--out", primary, "--out", secondary}, env)
	if err != nil {
		t.Fatalf("run() error = %v", err)
	}

	first, err := os.ReadFile(primary)
	if err != nil {
		t.Fatalf("primary artifact missing: %v", err)
	}
	second, err := os.ReadFile(secondary)
	if err != nil {
		t.Fatalf("secondary artifact missing: %v", err)
	}
	if !bytes.Equal(first, second) {
		t.Error("destinations received different content")
	}
	if bytes.Contains(first, []byte("/assets/")) {
		t.Error("artifact still references external assets")
	}

	report := stdout.String()
	if !strings.Contains(report, "Standalone HTML:") || !strings.Contains(report, secondary) {
		t.Errorf("report = %q, want size line naming %s", report, secondary)
	}
}

func TestRun_NoScript_WritesNothing(t *testing.T) {
	t.Parallel()

	dist := filepath.Join(t.TempDir(), "dist")
	if err := os.MkdirAll(dist, 0o750); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dist, "index.html"), []byte("<html></html>"), 0o644); err != nil {
		t.Fatal(err)
	}
	dest := filepath.Join(t.TempDir(), "app.html")

	env, _, _ := testEnv()
	err := run(context.Background(), []string{"--dist", dist, "--out", dest}, env)
	if !errors.Is(err, standalone.ErrNoScriptAsset) {
		t.Fatalf("run() error = %v, want ErrNoScriptAsset", err)
	}
	if exitCodeFor(err) != ExitNoScript {
		t.Errorf("exit code = %d, want %d", exitCodeFor(err), ExitNoScript)
	}
	if _, statErr := os.Stat(dest); !os.IsNotExist(statErr) {
		t.Error("artifact written despite script-search failure")
	}
}

func TestRun_DistNotFound(t *testing.T) {
	t.Parallel()

	env, _, _ := testEnv()
	err := run(context.Background(), []string{"--dist", filepath.Join(t.TempDir(), "nope")}, env)
	if !errors.Is(err, ErrDistNotFound) {
		t.Errorf("run() error = %v, want ErrDistNotFound", err)
	}
}

func TestRun_QuietSuppressesReport(t *testing.T) {
	t.Parallel()

	dist := writeDist(t)
	dest := filepath.Join(t.TempDir(), "app.html")

	env, stdout, _ := testEnv()
	if err := run(context.Background(), []string{"--dist", dist, "--out", dest, "--quiet"}, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if stdout.Len() != 0 {
		t.Errorf("stdout = %q, want empty in quiet mode", stdout.String())
	}
}

func TestRun_VerboseReportsInlining(t *testing.T) {
	t.Parallel()

	dist := writeDist(t)
	dest := filepath.Join(t.TempDir(), "app.html")

	env, _, stderr := testEnv()
	if err := run(context.Background(), []string{"--dist", dist, "--out", dest, "--verbose"}, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stderr.String(), "styles inlined: 1") {
		t.Errorf("stderr = %q, want inlining details", stderr.String())
	}
}

func TestRun_Version(t *testing.T) {
	t.Parallel()

	env, stdout, _ := testEnv()
	if err := run(context.Background(), []string{"--version"}, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if !strings.Contains(stdout.String(), Version) {
		t.Errorf("stdout = %q, want version string", stdout.String())
	}
}

func TestRun_ConfigFile(t *testing.T) {
	t.Parallel()

	dist := writeDist(t)
	dest := filepath.Join(t.TempDir(), "from-config.html")
	cfgPath := filepath.Join(t.TempDir(), "bundler.yaml")
	cfgContent := "dist: " + dist + "\noutput:\n  destinations:\n    - " + dest + "\n"
	if err := os.WriteFile(cfgPath, []byte(cfgContent), 0o644); err != nil {
		t.Fatal(err)
	}

	env, _, _ := testEnv()
	if err := run(context.Background(), []string{"--config", cfgPath}, env); err != nil {
		t.Fatalf("run() error = %v", err)
	}
	if _, err := os.Stat(dest); err != nil {
		t.Errorf("config-driven destination missing: %v", err)
	}
}

// ---------------------------------------------------------------------------
// TestResolveDestinations - Convention paths
// ---------------------------------------------------------------------------

func TestResolveDestinations(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Dist = filepath.Join("project", "dist")
	cfg.Artifact.Name = "bundle"
	cfg.Output.SharedDir = filepath.Join("srv", "drop")

	dests, err := resolveDestinations(cfg)
	if err != nil {
		t.Fatalf("resolveDestinations() error = %v", err)
	}
	if len(dests) != 2 {
		t.Fatalf("got %d destinations, want 2", len(dests))
	}

	// Primary lands as a sibling of the dist directory's parent.
	absDist, _ := filepath.Abs(cfg.Dist)
	wantPrimary := filepath.Join(filepath.Dir(filepath.Dir(absDist)), "bundle.html")
	if dests[0] != wantPrimary {
		t.Errorf("primary = %q, want %q", dests[0], wantPrimary)
	}
	if dests[1] != filepath.Join("srv", "drop", "bundle.html") {
		t.Errorf("secondary = %q", dests[1])
	}
}

func TestResolveDestinations_ExplicitWins(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.Destinations = []string{"/tmp/only.html"}

	dests, err := resolveDestinations(cfg)
	if err != nil {
		t.Fatalf("resolveDestinations() error = %v", err)
	}
	if len(dests) != 1 || dests[0] != "/tmp/only.html" {
		t.Errorf("dests = %v, want explicit destination only", dests)
	}
}

func TestResolveDestinations_NoSharedDir(t *testing.T) {
	t.Parallel()

	cfg := config.DefaultConfig()
	cfg.Output.SharedDir = ""

	dests, err := resolveDestinations(cfg)
	if err != nil {
		t.Fatalf("resolveDestinations() error = %v", err)
	}
	if len(dests) != 1 {
		t.Errorf("got %d destinations, want 1 without shared dir", len(dests))
	}
}

// ---------------------------------------------------------------------------
// TestGroupDigits - Size formatting
// ---------------------------------------------------------------------------

func TestGroupDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		n    int
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{123456, "123,456"},
		{1234567, "1,234,567"},
	}

	for _, tt := range tests {
		if got := groupDigits(tt.n); got != tt.want {
			t.Errorf("groupDigits(%d) = %q, want %q", tt.n, got, tt.want)
		}
	}
}
