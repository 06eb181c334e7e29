package standalone

// DefaultEntryFile is the conventional name of the HTML entry point
// inside a build output directory.
const DefaultEntryFile = "index.html"

// Input contains bundling parameters.
type Input struct {
	Dist      string // Build output directory containing the entry point (required)
	EntryFile string // Entry point file name (optional, default "index.html")
}

// Validate checks that required fields are present.
func (in Input) Validate() error {
	if in.Dist == "" {
		return ErrEmptyDist
	}
	return nil
}

// Result holds the outcome of a bundling run.
type Result struct {
	// HTML is the final self-contained artifact.
	HTML []byte

	// StylesInlined counts link tags replaced by inline <style> blocks.
	StylesInlined int

	// StylesSkipped lists stylesheet hrefs whose target file was missing.
	// The corresponding link tags are preserved unchanged in HTML.
	StylesSkipped []string

	// ScriptInlined is the src of the script that was embedded.
	ScriptInlined string

	// ScriptsSkipped counts script tags left as external references
	// after the first embeddable one.
	ScriptsSkipped int
}

// Size returns the artifact size in bytes.
func (r *Result) Size() int {
	return len(r.HTML)
}
