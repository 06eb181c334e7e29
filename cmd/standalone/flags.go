package main

import (
	"fmt"
	"io"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-standalone/internal/config"
)

// bundleFlags holds all CLI flags. Zero values mean "not set"; the
// effective value comes from the config merge in mergeFlags.
type bundleFlags struct {
	config    string
	dist      string
	name      string
	entry     string
	out       []string
	sharedDir string
	watch     bool
	quiet     bool
	verbose   bool
	version   bool
}

// newFlagSet builds the flag set for the single bundle command.
func newFlagSet(f *bundleFlags, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("standalone", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() {
		fmt.Fprintln(output, "usage: standalone [flags]")
		fmt.Fprintln(output, "")
		fmt.Fprintln(output, "Bundle a compiled web app directory into one self-contained HTML file.")
		fmt.Fprintln(output, "")
		fmt.Fprintln(output, "Flags:")
		fs.PrintDefaults()
	}

	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVarP(&f.dist, "dist", "d", "", `build output directory (default "dist")`)
	fs.StringVarP(&f.name, "name", "n", "", `artifact base name (default "app")`)
	fs.StringVar(&f.entry, "entry", "", `entry point file inside dist (default "index.html")`)
	fs.StringArrayVarP(&f.out, "out", "o", nil, "destination path (repeatable; replaces the convention)")
	fs.StringVar(&f.sharedDir, "shared-dir", "", "shared drop directory for the secondary copy")
	fs.BoolVarP(&f.watch, "watch", "w", false, "rebuild whenever dist contents change")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show inlining details")
	fs.BoolVar(&f.version, "version", false, "print version and exit")

	return fs
}

// parseFlags parses args (without the program name).
func parseFlags(args []string, output io.Writer) (*bundleFlags, error) {
	var f bundleFlags
	fs := newFlagSet(&f, output)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadFlags, err)
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: unexpected argument %q", ErrBadFlags, fs.Arg(0))
	}
	return &f, nil
}

// mergeFlags applies explicitly set flags over the config (CLI wins).
func mergeFlags(f *bundleFlags, cfg *config.Config) {
	if f.dist != "" {
		cfg.Dist = f.dist
	}
	if f.name != "" {
		cfg.Artifact.Name = f.name
	}
	if f.entry != "" {
		cfg.Artifact.EntryFile = f.entry
	}
	if len(f.out) > 0 {
		cfg.Output.Destinations = f.out
	}
	if f.sharedDir != "" {
		cfg.Output.SharedDir = f.sharedDir
	}
	if f.watch {
		cfg.Watch.Enabled = true
	}
	if f.quiet {
		cfg.Console.Quiet = true
	}
	if f.verbose {
		cfg.Console.Verbose = true
	}
}
