package compilers

import (
	"context"
	"fmt"
	"strings"

	"github.com/evanw/esbuild/pkg/api"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/zerr"
)

// EsbuildName is the configuration name of the esbuild compiler.
const EsbuildName = "esbuild"

var esbuildTargets = map[string]api.Target{
	"":       api.ES2020,
	"esnext": api.ESNext,
	"es5":    api.ES5,
	"es2015": api.ES2015,
	"es2016": api.ES2016,
	"es2017": api.ES2017,
	"es2018": api.ES2018,
	"es2019": api.ES2019,
	"es2020": api.ES2020,
	"es2021": api.ES2021,
	"es2022": api.ES2022,
	"es2023": api.ES2023,
	"es2024": api.ES2024,
}

var esbuildLoaders = map[string]api.Loader{
	domain.MimeTypeScript: api.LoaderTS,
	domain.MimeTSX:        api.LoaderTSX,
	domain.MimeJSX:        api.LoaderJSX,
	domain.MimeJavaScript: api.LoaderJS,
	domain.MimeCSS:        api.LoaderCSS,
}

// Esbuild transpiles TypeScript, JSX and modern JavaScript with esbuild's transform API.
type Esbuild struct {
	loader    api.Loader
	output    string
	target    api.Target
	sourcemap api.SourceMap
}

// NewEsbuild creates an esbuild compiler for sources of the given media type.
func NewEsbuild(mimeType string, opts domain.EsbuildOptions) (*Esbuild, error) {
	loader, ok := esbuildLoaders[mimeType]
	if !ok {
		err := zerr.With(domain.ErrInvalidCompilerSpec, "compiler", EsbuildName)
		return nil, zerr.With(err, "mime_type", mimeType)
	}

	target, ok := esbuildTargets[strings.ToLower(opts.Target)]
	if !ok {
		return nil, zerr.With(domain.ErrInvalidCompilerSpec, "esbuild_target", opts.Target)
	}

	var sourcemap api.SourceMap
	switch opts.Sourcemap {
	case "", "none":
		sourcemap = api.SourceMapNone
	case "inline":
		sourcemap = api.SourceMapInline
	default:
		return nil, zerr.With(domain.ErrInvalidCompilerSpec, "esbuild_sourcemap", opts.Sourcemap)
	}

	output := domain.MimeJavaScript
	if loader == api.LoaderCSS {
		output = domain.MimeCSS
	}

	return &Esbuild{loader: loader, output: output, target: target, sourcemap: sourcemap}, nil
}

// Name returns the compiler name.
func (e *Esbuild) Name() string {
	return EsbuildName
}

// Fingerprint covers the loader, language target and sourcemap mode.
func (e *Esbuild) Fingerprint() string {
	return fmt.Sprintf("loader=%d target=%d sourcemap=%d", e.loader, e.target, e.sourcemap)
}

// Compile transforms source into JavaScript (or CSS for stylesheets).
func (e *Esbuild) Compile(_ context.Context, source []byte, path string) (*domain.Artifact, error) {
	result := api.Transform(string(source), api.TransformOptions{
		Loader:     e.loader,
		Target:     e.target,
		Sourcemap:  e.sourcemap,
		Sourcefile: path,
		Charset:    api.CharsetUTF8,
	})

	if len(result.Errors) > 0 {
		msgs := api.FormatMessages(result.Errors, api.FormatMessagesOptions{
			Kind: api.ErrorMessage,
		})
		err := zerr.With(zerr.Wrap(compileError(strings.Join(msgs, "")), domain.ErrCompileFailed.Error()), "compiler", EsbuildName)
		return nil, zerr.With(err, "path", path)
	}

	return domain.NewArtifact(result.Code, e.output), nil
}
