// Package domain contains the core types shared by the interception layer and its adapters.
package domain

// DefaultMimeType is used whenever a media type cannot be determined.
const DefaultMimeType = "text/plain"

// ScriptMimeType is the media type of the synthesized bootstrap script.
const ScriptMimeType = "text/javascript"

// ResourceRequest is an inbound request for a file-like resource.
// Only the URL is consulted; query and fragment are ignored by resolution.
type ResourceRequest struct {
	URL string
}

// ResolvedPath is the canonical filesystem path of a request and its classification.
type ResolvedPath struct {
	// Path is the absolute, platform-correct filesystem path.
	Path string
	// Bypass is set when the path lies in a vendored tree and must be served verbatim.
	Bypass bool
}

// Artifact is the result of compiling (or reading) a resource.
type Artifact struct {
	Code     []byte
	MimeType string
}

// NewArtifact builds an Artifact, falling back to DefaultMimeType when mimeType is empty.
func NewArtifact(code []byte, mimeType string) *Artifact {
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	return &Artifact{Code: code, MimeType: mimeType}
}
