// Package loader routes source loads through an installed compilation context.
package loader

import (
	"bytes"
	"context"
	"io/fs"
	"path"
	"path/filepath"
	"sync/atomic"
	"time"

	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/zerr"
)

type hostRef struct {
	host ports.CompilerHost
}

// Hook implements ports.LoaderHook. Once a context is installed it is also an fs.FS
// rooted at the application root whose files are the compiled artifacts.
type Hook struct {
	root string
	ref  atomic.Pointer[hostRef]
}

// NewHook creates a Hook for the application rooted at root.
func NewHook(root string) *Hook {
	return &Hook{root: root}
}

// Install makes host the context for every subsequent load.
func (h *Hook) Install(host ports.CompilerHost) error {
	if host == nil {
		return zerr.Wrap(domain.ErrLoaderNotInstalled, "nil compilation context")
	}
	h.ref.Store(&hostRef{host: host})
	return nil
}

// Installed reports whether a context has been installed.
func (h *Hook) Installed() bool {
	return h.ref.Load() != nil
}

// Load compiles the file at the absolute path p through the installed context.
func (h *Hook) Load(ctx context.Context, p string) (*domain.Artifact, error) {
	ref := h.ref.Load()
	if ref == nil {
		return nil, zerr.With(domain.ErrLoaderNotInstalled, "path", p)
	}
	return ref.host.Compile(ctx, p)
}

// Open implements fs.FS. name is slash-separated and relative to the application root.
func (h *Hook) Open(name string) (fs.File, error) {
	artifact, err := h.load(name)
	if err != nil {
		return nil, err
	}
	return &file{
		Reader: bytes.NewReader(artifact.Code),
		info: fileInfo{
			name:    path.Base(name),
			size:    int64(len(artifact.Code)),
			modTime: time.Now(),
		},
	}, nil
}

// ReadFile implements fs.ReadFileFS.
func (h *Hook) ReadFile(name string) ([]byte, error) {
	artifact, err := h.load(name)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(artifact.Code), nil
}

func (h *Hook) load(name string) (*domain.Artifact, error) {
	if !fs.ValidPath(name) {
		return nil, &fs.PathError{Op: "open", Path: name, Err: fs.ErrInvalid}
	}
	artifact, err := h.Load(context.Background(), filepath.Join(h.root, filepath.FromSlash(name)))
	if err != nil {
		return nil, &fs.PathError{Op: "open", Path: name, Err: err}
	}
	return artifact, nil
}

type file struct {
	*bytes.Reader
	info fileInfo
}

func (f *file) Stat() (fs.FileInfo, error) {
	return f.info, nil
}

func (f *file) Close() error {
	return nil
}

type fileInfo struct {
	name    string
	size    int64
	modTime time.Time
}

func (fi fileInfo) Name() string       { return fi.name }
func (fi fileInfo) Size() int64        { return fi.size }
func (fi fileInfo) Mode() fs.FileMode  { return 0o444 }
func (fi fileInfo) ModTime() time.Time { return fi.modTime }
func (fi fileInfo) IsDir() bool        { return false }
func (fi fileInfo) Sys() any           { return nil }
