package standalone

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/alnah/go-standalone/internal/fileutil"
)

// Asset reference patterns. Build outputs reference assets by
// absolute-rooted relative paths like /assets/index-C3kZ1q.css.
var (
	stylesheetPattern = regexp.MustCompile(`<link[^>]+href="(/assets/[^"]+\.css)"[^>]*>`)
	scriptPattern     = regexp.MustCompile(`<script[^>]+src="(/assets/[^"]+\.js)"[^>]*></script>`)
)

// Wrapper tags for embedded assets.
const (
	styleOpen   = "<style>"
	styleClose  = "</style>"
	scriptOpen  = `<script type="module">`
	scriptClose = "</script>"
)

// resolveAssetPath maps an absolute-rooted href to a file under dist
// by stripping the leading separator.
func resolveAssetPath(dist, href string) string {
	return filepath.Join(dist, filepath.FromSlash(strings.TrimPrefix(href, "/")))
}

// inlineStylesheets replaces every stylesheet link whose target exists
// under dist with an inline <style> block holding the file content
// verbatim. Links with missing targets are preserved unchanged and
// reported in skipped.
func inlineStylesheets(doc, dist string) (out string, inlined int, skipped []string, err error) {
	for _, m := range stylesheetPattern.FindAllStringSubmatch(doc, -1) {
		tag, href := m[0], m[1]

		path := resolveAssetPath(dist, href)
		if !fileutil.FileExists(path) {
			skipped = append(skipped, href)
			continue
		}

		css, err := os.ReadFile(path) // #nosec G304 -- path derives from the document under transform
		if err != nil {
			return "", 0, nil, fmt.Errorf("%w: %s: %v", ErrReadAsset, path, err)
		}
		if !utf8.Valid(css) {
			return "", 0, nil, fmt.Errorf("%w: %s: not valid UTF-8", ErrReadAsset, path)
		}

		// Replace by content against the current document state. Earlier
		// replacements shift offsets, so a cached match position from the
		// original scan cannot be trusted.
		doc = strings.Replace(doc, tag, styleOpen+string(css)+styleClose, 1)
		inlined++
	}
	return doc, inlined, skipped, nil
}

// inlineScript embeds the first script reference whose target exists
// under dist, splicing the raw file bytes into the document. References
// with missing targets are passed over; references after the embedded
// one are left external. Returns ErrNoScriptAsset when no reference has
// an existing target.
func inlineScript(doc []byte, dist string) (out []byte, src string, left int, err error) {
	matches := scriptPattern.FindAllSubmatch(doc, -1)

	for _, m := range matches {
		tag, href := m[0], string(m[1])

		path := resolveAssetPath(dist, href)
		if !fileutil.FileExists(path) {
			continue
		}

		js, err := os.ReadFile(path) // #nosec G304 -- path derives from the document under transform
		if err != nil {
			return nil, "", 0, fmt.Errorf("%w: %s: %v", ErrReadAsset, path, err)
		}

		// Splice on raw bytes. A text substitution here could corrupt
		// script content that is not valid UTF-8.
		at := bytes.Index(doc, tag)
		spliced := make([]byte, 0, len(doc)-len(tag)+len(scriptOpen)+len(js)+len(scriptClose))
		spliced = append(spliced, doc[:at]...)
		spliced = append(spliced, scriptOpen...)
		spliced = append(spliced, js...)
		spliced = append(spliced, scriptClose...)
		spliced = append(spliced, doc[at+len(tag):]...)

		return spliced, href, len(matches) - 1, nil
	}

	return nil, "", 0, ErrNoScriptAsset
}
