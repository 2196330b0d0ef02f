// Package fs provides filesystem adapters: source hashing, tree walking and input resolution.
package fs

import (
	"io"
	"os"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/zerr"
)

// Hasher computes content hashes of source files.
// Only content is hashed; metadata such as mtime and mode is ignored.
type Hasher struct{}

// NewHasher creates a new Hasher.
func NewHasher() *Hasher {
	return &Hasher{}
}

// HashFile returns the xxhash64 of the file's content.
func (h *Hasher) HashFile(path string) (uint64, error) {
	//nolint:gosec // Path is a source file requested by the application
	f, err := os.Open(path)
	if err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	defer func() {
		_ = f.Close()
	}()

	d := xxhash.New()
	if _, err := io.Copy(d, f); err != nil {
		return 0, zerr.With(zerr.Wrap(err, domain.ErrFileHashFailed.Error()), "path", path)
	}
	return d.Sum64(), nil
}

// HashBytes returns the xxhash64 of data.
func (h *Hasher) HashBytes(data []byte) uint64 {
	return xxhash.Sum64(data)
}
