package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sourcehook/internal/core/domain"
)

func TestMimeTypeFor(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/app/node_modules/lib.js", want: "text/javascript"},
		{path: "/app/src/main.ts", want: "text/typescript"},
		{path: "/app/src/View.TSX", want: "text/tsx"},
		{path: "/app/index.html", want: "text/html"},
		{path: "/app/index.HTM", want: "text/html"},
		{path: "/app/README.md", want: "text/markdown"},
		{path: "/app/settings.jsonc", want: "application/jsonc"},
		{path: "/app/config.yml", want: "application/yaml"},
		{path: "/app/Cargo.toml", want: "application/toml"},
		{path: "/app/logo.png", want: "image/png"},
		{path: "/app/LICENSE", want: "text/plain"},
		{path: "/app/blob.zzunknownext", want: "text/plain"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.MimeTypeFor(tt.path))
		})
	}
}

func TestIsHTMLPath(t *testing.T) {
	assert.True(t, domain.IsHTMLPath("/app/index.html"))
	assert.True(t, domain.IsHTMLPath("/app/index.HTML"))
	assert.True(t, domain.IsHTMLPath("/app/page.htm"))
	assert.True(t, domain.IsHTMLPath("/app/page.Htm"))
	assert.False(t, domain.IsHTMLPath("/app/page.xhtml"))
	assert.False(t, domain.IsHTMLPath("/app/page.html.map"))
	assert.False(t, domain.IsHTMLPath("/app/html"))
}

func TestIsSourceMimeType(t *testing.T) {
	assert.True(t, domain.IsSourceMimeType(domain.MimeTypeScript))
	assert.True(t, domain.IsSourceMimeType(domain.MimeMarkdown))
	assert.True(t, domain.IsSourceMimeType(domain.MimeTOML))
	assert.False(t, domain.IsSourceMimeType(domain.MimeJavaScript))
	assert.False(t, domain.IsSourceMimeType(domain.MimeHTML))
	assert.False(t, domain.IsSourceMimeType("image/png"))
}

func TestResponses(t *testing.T) {
	t.Run("content defaults mime type", func(t *testing.T) {
		r := domain.ContentResponse(domain.OutcomeContent, []byte("x"), "")
		assert.False(t, r.IsFailure())
		assert.Equal(t, "text/plain", r.MimeType)
	})

	t.Run("not found", func(t *testing.T) {
		r := domain.NotFoundResponse()
		assert.True(t, r.IsFailure())
		assert.Equal(t, domain.NetFileNotFound, r.Failure)
		assert.Equal(t, domain.FailureCode(-6), r.Failure)
		assert.Nil(t, r.Data)
	})

	t.Run("transport failure", func(t *testing.T) {
		r := domain.TransportFailureResponse()
		assert.Equal(t, domain.FailureCode(-2), r.Failure)
		assert.Equal(t, "transport-failure", r.Outcome.String())
	})
}

func TestFailureCode_String(t *testing.T) {
	assert.Equal(t, "OK", domain.NetOK.String())
	assert.Equal(t, "FAILED", domain.NetFailed.String())
	assert.Equal(t, "FILE_NOT_FOUND", domain.NetFileNotFound.String())
	assert.Equal(t, "UNKNOWN", domain.FailureCode(-100).String())
}

func TestNewArtifact(t *testing.T) {
	a := domain.NewArtifact([]byte("body"), "")
	assert.Equal(t, "text/plain", a.MimeType)

	a = domain.NewArtifact([]byte("body"), "text/css")
	assert.Equal(t, "text/css", a.MimeType)
}

func TestConfig_Paths(t *testing.T) {
	cfg := &domain.Config{Root: "/srv/app"}
	assert.Equal(t, "/srv/app/.sourcehook/handshake.sock", cfg.SocketPath())
	assert.Equal(t, "/srv/app/.sourcehook/renderer.log", cfg.RendererLogPath())
}
