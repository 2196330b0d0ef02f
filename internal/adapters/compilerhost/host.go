// Package compilerhost implements the compilation context: it compiles sources on demand
// and keeps their artifacts in memory and in the on-disk cache.
package compilerhost

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/singleflight"
)

// Host implements ports.CompilerHost.
type Host struct {
	cacheDir  string
	readOnly  bool
	compilers map[string]ports.Compiler
	store     ports.ArtifactStore
	memory    *MemoryCache
	logger    ports.Logger
	hash      func([]byte) uint64
	now       func() time.Time
	group     singleflight.Group
}

// RootCacheDir returns the directory holding the context's compiled artifacts.
func (h *Host) RootCacheDir() string {
	return h.cacheDir
}

// ReadOnlyMode reports whether the context trusts precompiled artifacts only.
func (h *Host) ReadOnlyMode() bool {
	return h.readOnly
}

// Invalidate drops the in-memory artifacts for paths. The on-disk cache is revalidated
// by content hash on the next compile, so it is left untouched.
func (h *Host) Invalidate(paths ...string) {
	h.memory.Invalidate(paths...)
}

// Compile returns the compiled artifact for the file at path.
func (h *Host) Compile(ctx context.Context, path string) (*domain.Artifact, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, sourceError(path, err)
	}
	mtime, size := info.ModTime().UnixNano(), info.Size()

	if artifact, ok := h.memory.Get(path, mtime, size); ok {
		return artifact, nil
	}

	// The shared compile outlives any single caller; each caller stops waiting
	// when its own context ends.
	shared := context.WithoutCancel(ctx)
	ch := h.group.DoChan(path, func() (any, error) {
		if artifact, ok := h.memory.Get(path, mtime, size); ok {
			return artifact, nil
		}

		var artifact *domain.Artifact
		var err error
		if h.readOnly {
			artifact, err = h.loadPrecompiled(path)
		} else {
			artifact, err = h.compile(shared, path)
		}
		if err != nil {
			return nil, err
		}
		h.memory.Set(path, mtime, size, artifact)
		return artifact, nil
	})

	select {
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*domain.Artifact), nil
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

func (h *Host) compile(ctx context.Context, path string) (*domain.Artifact, error) {
	//nolint:gosec // Path is a source file requested by the application
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, sourceError(path, err)
	}

	mimeType := domain.MimeTypeFor(path)
	compiler, ok := h.compilers[mimeType]
	if !ok {
		return domain.NewArtifact(source, mimeType), nil
	}

	hash := h.hash(source)
	fingerprint := Fingerprint(compiler)
	entry, err := h.store.Get(path)
	if err != nil {
		h.logger.Warn("ignoring unreadable cache entry for " + path + ": " + err.Error())
	}
	if Fresh(entry, hash, compiler) {
		return entry.Artifact(), nil
	}

	h.logger.Debug("compiling " + path + " with " + compiler.Name())
	artifact, err := compiler.Compile(ctx, source, path)
	if err != nil {
		return nil, err
	}

	err = h.store.Put(&domain.CacheEntry{
		SourcePath: path,
		SourceHash: hash,
		Compiler:   compiler.Name(),
		Options:    fingerprint,
		MimeType:   artifact.MimeType,
		Code:       artifact.Code,
		CompiledAt: h.now(),
	})
	if err != nil {
		h.logger.Warn("failed to persist artifact for " + path + ": " + err.Error())
	}
	return artifact, nil
}

func (h *Host) loadPrecompiled(path string) (*domain.Artifact, error) {
	entry, err := h.store.Get(path)
	if err != nil {
		return nil, err
	}
	if entry != nil {
		return entry.Artifact(), nil
	}

	mimeType := domain.MimeTypeFor(path)
	if domain.IsSourceMimeType(mimeType) {
		return nil, zerr.Wrap(domain.ErrReadOnlyCacheMiss, path)
	}

	//nolint:gosec // Path is a source file requested by the application
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, sourceError(path, err)
	}
	return domain.NewArtifact(source, mimeType), nil
}

// Fingerprint identifies a compiler together with the options that shape its output.
func Fingerprint(c ports.Compiler) uint64 {
	return xxhash.Sum64String(c.Name() + "\x00" + c.Fingerprint())
}

// Fresh reports whether entry was produced from source with the given hash by a
// compiler configured like c.
func Fresh(entry *domain.CacheEntry, sourceHash uint64, c ports.Compiler) bool {
	return entry != nil &&
		entry.SourceHash == sourceHash &&
		entry.Compiler == c.Name() &&
		entry.Options == Fingerprint(c)
}

func sourceError(path string, err error) error {
	if errors.Is(err, fs.ErrNotExist) {
		return errors.Join(domain.ErrSourceNotFound, zerr.With(err, "path", path))
	}
	return zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path)
}
