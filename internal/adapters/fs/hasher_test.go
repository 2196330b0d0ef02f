package fs_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcehook/internal/adapters/fs"
	"go.trai.ch/sourcehook/internal/core/domain"
)

// expectedHash is the golden xxhash64 of "start-content".
// Cache entries record it, so a change invalidates every existing cache.
const expectedHash uint64 = 0x92ee87ac4e0a0b35

func TestHasher_HashFile_Golden(t *testing.T) {
	file := filepath.Join(t.TempDir(), "dummy.ts")
	require.NoError(t, os.WriteFile(file, []byte("start-content"), domain.PrivateFilePerm))

	hasher := fs.NewHasher()
	hash, err := hasher.HashFile(file)
	require.NoError(t, err)

	require.Equal(t, expectedHash, hash, "Hasher algorithm changed! Verify if this is intentional.")
	assert.Equal(t, hash, hasher.HashBytes([]byte("start-content")))
}

func TestHasher_HashFile(t *testing.T) {
	hasher := fs.NewHasher()

	t.Run("Content Change", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "main.ts")
		require.NoError(t, os.WriteFile(file, []byte("let a = 1"), domain.PrivateFilePerm))

		hash1, err := hasher.HashFile(file)
		require.NoError(t, err)

		require.NoError(t, os.WriteFile(file, []byte("let a = 2"), domain.PrivateFilePerm))

		hash2, err := hasher.HashFile(file)
		require.NoError(t, err)

		assert.NotEqual(t, hash1, hash2, "Hash should change when content changes")
	})

	t.Run("Metadata Change", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "main.ts")
		require.NoError(t, os.WriteFile(file, []byte("let a = 1"), domain.PrivateFilePerm))

		hash1, err := hasher.HashFile(file)
		require.NoError(t, err)

		futureTime := time.Now().Add(1 * time.Hour)
		require.NoError(t, os.Chtimes(file, futureTime, futureTime))

		hash2, err := hasher.HashFile(file)
		require.NoError(t, err)

		assert.Equal(t, hash1, hash2, "Hash should NOT change when only metadata (mtime) changes")
	})

	t.Run("Missing File", func(t *testing.T) {
		_, err := hasher.HashFile(filepath.Join(t.TempDir(), "missing.ts"))
		require.Error(t, err)
		assert.ErrorContains(t, err, domain.ErrFileHashFailed.Error())
	})
}
