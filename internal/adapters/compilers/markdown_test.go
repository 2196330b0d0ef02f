package compilers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcehook/internal/adapters/compilers"
	"go.trai.ch/sourcehook/internal/core/domain"
)

func TestMarkdown_Compile(t *testing.T) {
	c := compilers.NewMarkdown()
	assert.Equal(t, compilers.MarkdownName, c.Name())

	src := "# Release Notes\n\n| a | b |\n|---|---|\n| 1 | 2 |\n\n~~gone~~\n"
	artifact, err := c.Compile(context.Background(), []byte(src), "/app/docs/<notes>.md")
	require.NoError(t, err)

	out := string(artifact.Code)
	assert.Equal(t, domain.MimeHTML, artifact.MimeType)
	assert.Contains(t, out, "<head>")
	assert.Contains(t, out, "<title>&lt;notes&gt;</title>")
	assert.Contains(t, out, `<h1 id="release-notes">Release Notes</h1>`)
	assert.Contains(t, out, "<table>")
	assert.Contains(t, out, "<del>gone</del>")
}
