package domain

import (
	"mime"
	"path/filepath"
	"strings"
)

// Media types the compilers key on. Source languages have no registered IANA type,
// so these follow the names the compilers advertise.
const (
	MimeJavaScript = "text/javascript"
	MimeTypeScript = "text/typescript"
	MimeTSX        = "text/tsx"
	MimeJSX        = "text/jsx"
	MimeHTML       = "text/html"
	MimeCSS        = "text/css"
	MimeMarkdown   = "text/markdown"
	MimeJSON       = "application/json"
	MimeJSONC      = "application/jsonc"
	MimeYAML       = "application/yaml"
	MimeTOML       = "application/toml"
)

var knownMimeTypes = map[string]string{
	".js":       MimeJavaScript,
	".mjs":      MimeJavaScript,
	".cjs":      MimeJavaScript,
	".ts":       MimeTypeScript,
	".mts":      MimeTypeScript,
	".cts":      MimeTypeScript,
	".tsx":      MimeTSX,
	".jsx":      MimeJSX,
	".html":     MimeHTML,
	".htm":      MimeHTML,
	".css":      MimeCSS,
	".less":     "text/less",
	".scss":     "text/x-scss",
	".sass":     "text/x-sass",
	".md":       MimeMarkdown,
	".markdown": MimeMarkdown,
	".json":     MimeJSON,
	".map":      MimeJSON,
	".jsonc":    MimeJSONC,
	".yaml":     MimeYAML,
	".yml":      MimeYAML,
	".toml":     MimeTOML,
	".txt":      DefaultMimeType,
	".svg":      "image/svg+xml",
	".png":      "image/png",
	".jpg":      "image/jpeg",
	".jpeg":     "image/jpeg",
	".gif":      "image/gif",
	".webp":     "image/webp",
	".ico":      "image/x-icon",
	".woff":     "font/woff",
	".woff2":    "font/woff2",
	".wasm":     "application/wasm",
}

// MimeTypeFor returns the media type for a path based on its extension.
// Known source extensions resolve from a fixed table so results do not depend on the
// host's mime database; anything else falls back to the standard library and then to
// DefaultMimeType. Parameters such as charset are stripped.
func MimeTypeFor(path string) string {
	ext := strings.ToLower(filepath.Ext(path))
	if ext == "" {
		return DefaultMimeType
	}
	if t, ok := knownMimeTypes[ext]; ok {
		return t
	}
	if t := mime.TypeByExtension(ext); t != "" {
		if mediaType, _, err := mime.ParseMediaType(t); err == nil {
			return mediaType
		}
	}
	return DefaultMimeType
}

// sourceMimeTypes are the media types a renderer cannot load without compilation.
var sourceMimeTypes = map[string]struct{}{
	MimeTypeScript: {},
	MimeTSX:        {},
	MimeJSX:        {},
	MimeMarkdown:   {},
	MimeJSONC:      {},
	MimeYAML:       {},
	MimeTOML:       {},
}

// IsSourceMimeType reports whether mimeType names a source language that must be compiled
// before a renderer can load it.
func IsSourceMimeType(mimeType string) bool {
	_, ok := sourceMimeTypes[mimeType]
	return ok
}

// IsHTMLPath reports whether path names an HTML document (.htm or .html, any case).
func IsHTMLPath(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".html" || ext == ".htm"
}
