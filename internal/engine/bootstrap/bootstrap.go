// Package bootstrap rewrites HTML documents so they load the renderer setup script first.
package bootstrap

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"go.trai.ch/sourcehook/internal/core/domain"
)

var (
	// headTag matches an opening head tag with optional attributes, but not <header>.
	headTag = regexp.MustCompile(`(?i)<head(?:\s[^>]*)?>`)
	// htmlTag matches an opening html tag with optional attributes.
	htmlTag = regexp.MustCompile(`(?i)<html(?:\s[^>]*)?>`)
)

// ScriptTag returns the script element that loads markerURL.
func ScriptTag(markerURL string) string {
	return `<script src="` + markerURL + `"></script>`
}

// Inject inserts a script reference to markerURL ahead of any other content in document.
//
// The first line holding an opening head tag gets the script right after the tag.
// Failing that, the first line holding an opening html tag gets a synthetic head
// element after the tag, with the tag's attributes kept verbatim. A document with
// neither tag is returned unchanged. Only one line is ever rewritten.
//
// Inject is not idempotent: applying it twice inserts the script twice.
func Inject(document, markerURL string) string {
	script := ScriptTag(markerURL)
	lines := strings.Split(document, "\n")

	for i, line := range lines {
		if loc := headTag.FindStringIndex(line); loc != nil {
			lines[i] = line[:loc[1]] + script + line[loc[1]:]
			return strings.Join(lines, "\n")
		}
	}

	for i, line := range lines {
		if !strings.Contains(strings.ToLower(line), "<html") {
			continue
		}
		// A tag whose closing bracket sits on a later line is left alone.
		if loc := htmlTag.FindStringIndex(line); loc != nil {
			lines[i] = line[:loc[1]] + "<head>" + script + "</head>" + line[loc[1]:]
			return strings.Join(lines, "\n")
		}
		break
	}

	return document
}

// SetupScript returns the body served for the bootstrap marker URL.
// When evaluated in the renderer it runs the initialization entry point in the given mode.
func SetupScript(readOnly bool) []byte {
	return fmt.Appendf(nil, "if (window.sourcehook) %s(%s);\n",
		domain.RendererEntryPoint, strconv.FormatBool(readOnly))
}
