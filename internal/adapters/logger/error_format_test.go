package logger_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.trai.ch/sourcehook/internal/adapters/logger"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/zerr"
)

func TestCollectErrorEntries(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want []logger.ErrorEntry
	}{
		{
			name: "nil",
			err:  nil,
			want: nil,
		},
		{
			name: "foreign error",
			err:  fs.ErrNotExist,
			want: []logger.ErrorEntry{{Message: "file does not exist"}},
		},
		{
			name: "sentinel",
			err:  domain.ErrLoaderNotInstalled,
			want: []logger.ErrorEntry{{Message: "loader hook has no compilation context installed", Metadata: map[string]any{}}},
		},
		{
			name: "sentinel with metadata",
			err:  zerr.With(zerr.With(domain.ErrUnknownCompiler, "compiler", "swc"), "mime_type", "text/typescript"),
			want: []logger.ErrorEntry{{
				Message:  "unknown compiler",
				Metadata: map[string]any{"compiler": "swc", "mime_type": "text/typescript"},
			}},
		},
		{
			name: "wrapped foreign cause",
			err:  zerr.Wrap(zerr.Wrap(errors.New("permission denied"), domain.ErrSourceReadFailed.Error()), "failed to load configuration"),
			want: []logger.ErrorEntry{
				{Message: "failed to load configuration", Metadata: map[string]any{}},
				{Message: "failed to read source file", Metadata: map[string]any{}},
				{Message: "permission denied"},
			},
		},
		{
			name: "metadata on a foreign cause moves to that cause",
			err:  zerr.Wrap(zerr.With(errors.New("no such file or directory"), "path", "/app/main.ts"), "failed to read source file"),
			want: []logger.ErrorEntry{
				{Message: "failed to read source file", Metadata: map[string]any{}},
				{Message: "no such file or directory", Metadata: map[string]any{"path": "/app/main.ts"}},
			},
		},
		{
			name: "metadata at each level",
			err: func() error {
				inner := zerr.With(domain.ErrCacheStale, "path", "/app/main.ts")
				return zerr.With(zerr.Wrap(inner, "check failed"), "cache_dir", "/app/.sourcehook/cache")
			}(),
			want: []logger.ErrorEntry{
				{Message: "check failed", Metadata: map[string]any{"cache_dir": "/app/.sourcehook/cache"}},
				{Message: "precompiled artifact is missing or stale", Metadata: map[string]any{"path": "/app/main.ts"}},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.CollectErrorEntriesExported(tt.err))
		})
	}
}

func TestFormatErrorEntries(t *testing.T) {
	tests := []struct {
		name    string
		entries []logger.ErrorEntry
		want    string
	}{
		{
			name:    "empty",
			entries: nil,
			want:    "",
		},
		{
			name:    "single",
			entries: []logger.ErrorEntry{{Message: "handshake with host process failed"}},
			want:    "Error: handshake with host process failed",
		},
		{
			name: "causes",
			entries: []logger.ErrorEntry{
				{Message: "failed to spawn renderer process"},
				{Message: "fork/exec /bin/sourcehook"},
				{Message: "permission denied"},
			},
			want: "Error: failed to spawn renderer process\n\n  Caused by:\n" +
				"    → fork/exec /bin/sourcehook\n" +
				"    → permission denied",
		},
		{
			name: "metadata is sorted and indented under its line",
			entries: []logger.ErrorEntry{
				{Message: "invalid compiler specification", Metadata: map[string]any{"reason": "missing compiler name", "mime_type": "text/x-scss"}},
				{Message: "bad input", Metadata: map[string]any{"line": 3}},
			},
			want: "Error: invalid compiler specification\n" +
				"       mime_type: text/x-scss\n" +
				"       reason: missing compiler name\n\n" +
				"  Caused by:\n" +
				"    → bad input\n" +
				"      line: 3",
		},
		{
			name: "multiline messages keep their indentation",
			entries: []logger.ErrorEntry{
				{Message: "precompilation failed\nbroken.ts"},
				{Message: "Expected \";\"\nbut found \"}\""},
			},
			want: "Error: precompilation failed\n" +
				"       broken.ts\n\n" +
				"  Caused by:\n" +
				"    → Expected \";\"\n" +
				"      but found \"}\"",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.FormatErrorEntriesExported(tt.entries))
		})
	}
}

func TestFormatJoinedErrors(t *testing.T) {
	err := errors.Join(domain.ErrPrecompileFailed, zerr.With(domain.ErrCacheStale, "path", "/app/a.ts"))

	got := logger.FormatErrorEntriesExported(logger.CollectErrorEntriesExported(err))

	assert.Equal(t, "Error: precompilation failed\n       precompiled artifact is missing or stale", got)
}
