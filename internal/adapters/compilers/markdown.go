package compilers

import (
	"bytes"
	"context"
	"html"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/zerr"
)

// MarkdownName is the configuration name of the Markdown compiler.
const MarkdownName = "markdown"

// Markdown renders GitHub-flavored Markdown into a standalone HTML document.
type Markdown struct {
	md goldmark.Markdown
}

// NewMarkdown creates a Markdown compiler.
func NewMarkdown() *Markdown {
	return &Markdown{
		md: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithParserOptions(parser.WithAutoHeadingID()),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

// Name returns the compiler name.
func (m *Markdown) Name() string {
	return MarkdownName
}

// Fingerprint is empty: the renderer always runs with the same extensions.
func (m *Markdown) Fingerprint() string {
	return ""
}

// Compile renders source. The document carries a head element so the bootstrap script can be injected.
func (m *Markdown) Compile(_ context.Context, source []byte, path string) (*domain.Artifact, error) {
	var body bytes.Buffer
	if err := m.md.Convert(source, &body); err != nil {
		err = zerr.With(zerr.Wrap(err, domain.ErrCompileFailed.Error()), "compiler", MarkdownName)
		return nil, zerr.With(err, "path", path)
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))

	var doc bytes.Buffer
	doc.WriteString("<!DOCTYPE html>\n<html>\n<head>\n<meta charset=\"utf-8\">\n<title>")
	doc.WriteString(html.EscapeString(title))
	doc.WriteString("</title>\n</head>\n<body>\n")
	doc.Write(body.Bytes())
	doc.WriteString("</body>\n</html>\n")

	return domain.NewArtifact(doc.Bytes(), domain.MimeHTML), nil
}
