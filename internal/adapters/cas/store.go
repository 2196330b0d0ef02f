// Package cas implements the on-disk artifact cache.
package cas

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/cespare/xxhash/v2"
	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/zerr"
)

const entryExt = ".cbor"

// Store implements ports.ArtifactStore using a file-per-source strategy.
// Entries are CBOR encoded and their code is zstd compressed.
type Store struct {
	root string
	em   cbor.EncMode
	enc  *zstd.Encoder
	dec  *zstd.Decoder
}

// NewStore creates a Store backed by the directory at root, creating it if needed.
func NewStore(root string) (*Store, error) {
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreCreateFailed.Error()), "path", root)
	}

	opts := cbor.CoreDetEncOptions()
	opts.Time = cbor.TimeRFC3339Nano
	em, err := opts.EncMode()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	return &Store{root: root, em: em, enc: enc, dec: dec}, nil
}

// Root returns the directory holding the entries.
func (s *Store) Root() string {
	return s.root
}

// Get retrieves the cache entry for a source path.
func (s *Store) Get(sourcePath string) (*domain.CacheEntry, error) {
	filename := s.filename(sourcePath)
	//nolint:gosec // Path is constructed from trusted directory and hashed filename
	data, err := os.ReadFile(filename)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreReadFailed.Error()), "path", filename)
	}

	var entry domain.CacheEntry
	if err := cbor.Unmarshal(data, &entry); err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}

	code, err := s.dec.DecodeAll(entry.Code, nil)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrStoreUnmarshalFailed.Error()), "path", filename)
	}
	entry.Code = code

	// A colliding hash must not serve another file's artifact.
	if entry.SourcePath != sourcePath {
		return nil, nil
	}
	return &entry, nil
}

// Put stores the cache entry, replacing any previous one for the same source.
func (s *Store) Put(entry *domain.CacheEntry) error {
	stored := *entry
	stored.Code = s.enc.EncodeAll(entry.Code, nil)

	data, err := s.em.Marshal(&stored)
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreMarshalFailed.Error())
	}

	if err := os.MkdirAll(s.root, domain.DirPerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreCreateFailed.Error())
	}

	// Write then rename so a concurrent reader never sees a partial entry.
	filename := s.filename(entry.SourcePath)
	tmp, err := os.CreateTemp(s.root, ".entry-*")
	if err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	defer func() {
		_ = os.Remove(tmp.Name())
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := tmp.Close(); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Chmod(tmp.Name(), domain.FilePerm); err != nil {
		return zerr.Wrap(err, domain.ErrStoreWriteFailed.Error())
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrStoreWriteFailed.Error()), "path", filename)
	}
	return nil
}

// Clear removes every stored entry. The directory itself is kept.
func (s *Store) Clear() error {
	entries, err := os.ReadDir(s.root)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrStoreReadFailed.Error())
	}

	var errs error
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != entryExt {
			continue
		}
		if err := os.Remove(filepath.Join(s.root, e.Name())); err != nil && !errors.Is(err, fs.ErrNotExist) {
			errs = errors.Join(errs, zerr.With(err, "entry", e.Name()))
		}
	}
	return errs
}

func (s *Store) filename(sourcePath string) string {
	key := strconv.FormatUint(xxhash.Sum64String(sourcePath), 16)
	return filepath.Join(s.root, key+entryExt)
}
