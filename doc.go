// Package standalone bundles a compiled web application into a single
// self-contained HTML file.
//
// # Quick Start
//
// Create a service and bundle a build output directory:
//
//	svc := standalone.New()
//	result, err := svc.Bundle(ctx, standalone.Input{Dist: "dist"})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = standalone.WriteArtifact(result.HTML, []string{"app.html"})
//
// The result contains the final artifact bytes (result.HTML) plus counters
// describing what was inlined, for operator-facing reporting.
//
// # Bundling Pipeline
//
// The transform follows three stages:
//
//  1. Load the entry point (index.html) as UTF-8 text.
//  2. Inline every stylesheet link whose /assets/*.css target exists,
//     replacing each <link> tag with an inline <style> block.
//  3. Inline the first module script whose /assets/*.js target exists,
//     splicing the raw script bytes into a <script type="module"> block.
//
// Stage 3 operates on raw bytes, never decoded text: script bundles may
// contain byte sequences that are not valid UTF-8, and they must pass
// through unmodified. Scripts after the first are left as external
// references; a build that emits a single bundle never hits that case.
//
// If no script reference with an existing target is found, Bundle fails
// with ErrNoScriptAsset and nothing is written. A stylesheet reference
// whose target is missing is skipped silently and the tag preserved.
//
// # Configuration
//
// Use functional options to customize the service:
//
//	svc := standalone.New(
//	    standalone.WithEntryFile("main.html"),
//	)
//
// The standalone CLI (cmd/standalone) wraps this package with fixed-path
// conventions, a YAML config layer, and an optional watch mode.
package standalone
