package ports

import "go.trai.ch/sourcehook/internal/core/domain"

// ArtifactStore persists compiled artifacts.
//
//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=mocks/mock_store.go -package=mocks
type ArtifactStore interface {
	// Get retrieves the cache entry for a source path.
	// Returns nil, nil if not found.
	Get(sourcePath string) (*domain.CacheEntry, error)

	// Put stores a cache entry, replacing any previous entry for the same source path.
	Put(entry *domain.CacheEntry) error

	// Clear removes every stored entry.
	Clear() error
}
