package compilers_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcehook/internal/adapters/compilers"
	"go.trai.ch/sourcehook/internal/core/domain"
)

func TestEsbuild_Compile(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		source   string
		contains []string
		absent   []string
		output   string
	}{
		{
			name:     "typescript strips types",
			mimeType: domain.MimeTypeScript,
			source:   "const answer: number = 42;\nexport default answer;\n",
			contains: []string{"const answer = 42;"},
			absent:   []string{": number"},
			output:   domain.MimeJavaScript,
		},
		{
			name:     "tsx lowers jsx",
			mimeType: domain.MimeTSX,
			source:   "export const View = (p: {n: string}) => <div>{p.n}</div>;\n",
			contains: []string{"React.createElement"},
			absent:   []string{"<div>"},
			output:   domain.MimeJavaScript,
		},
		{
			name:     "jsx lowers jsx",
			mimeType: domain.MimeJSX,
			source:   "export const View = () => <span/>;\n",
			contains: []string{"React.createElement(\"span\""},
			output:   domain.MimeJavaScript,
		},
		{
			name:     "css keeps stylesheet media type",
			mimeType: domain.MimeCSS,
			source:   "a { color: red; }\n",
			contains: []string{"color: red"},
			output:   domain.MimeCSS,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := compilers.NewEsbuild(tt.mimeType, domain.EsbuildOptions{})
			require.NoError(t, err)
			assert.Equal(t, compilers.EsbuildName, c.Name())

			artifact, err := c.Compile(context.Background(), []byte(tt.source), "/app/src/file")
			require.NoError(t, err)
			assert.Equal(t, tt.output, artifact.MimeType)
			for _, s := range tt.contains {
				assert.Contains(t, string(artifact.Code), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, string(artifact.Code), s)
			}
		})
	}
}

func TestEsbuild_InlineSourcemap(t *testing.T) {
	c, err := compilers.NewEsbuild(domain.MimeTypeScript, domain.EsbuildOptions{Target: "ES2022", Sourcemap: "inline"})
	require.NoError(t, err)

	artifact, err := c.Compile(context.Background(), []byte("let a: string = 'x';\n"), "/app/a.ts")
	require.NoError(t, err)
	assert.Contains(t, string(artifact.Code), "//# sourceMappingURL=data:application/json;base64,")
}

func TestEsbuild_SyntaxError(t *testing.T) {
	c, err := compilers.NewEsbuild(domain.MimeTypeScript, domain.EsbuildOptions{})
	require.NoError(t, err)

	_, err = c.Compile(context.Background(), []byte("const = ;\n"), "/app/broken.ts")
	require.Error(t, err)
	require.ErrorContains(t, err, domain.ErrCompileFailed.Error())
	assert.ErrorContains(t, err, "/app/broken.ts")
}

func TestNewEsbuild_InvalidOptions(t *testing.T) {
	tests := []struct {
		name     string
		mimeType string
		opts     domain.EsbuildOptions
	}{
		{name: "unsupported media type", mimeType: domain.MimeMarkdown},
		{name: "unknown target", mimeType: domain.MimeTypeScript, opts: domain.EsbuildOptions{Target: "es1999"}},
		{name: "unknown sourcemap", mimeType: domain.MimeTypeScript, opts: domain.EsbuildOptions{Sourcemap: "external"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := compilers.NewEsbuild(tt.mimeType, tt.opts)
			require.Error(t, err)
			assert.ErrorContains(t, err, domain.ErrInvalidCompilerSpec.Error())
		})
	}
}
