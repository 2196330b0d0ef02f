package compilerhost

import (
	"sync"

	"go.trai.ch/sourcehook/internal/core/domain"
)

type memoryEntry struct {
	artifact *domain.Artifact
	mtime    int64
	size     int64
}

// MemoryCache holds compiled artifacts in memory, keyed by source path.
//
// Entries are validated against the mtime and size the caller observed on the source.
// Sub-resolution mtime changes that keep the size are caught by the on-disk cache's
// content hash only after Invalidate drops the entry.
type MemoryCache struct {
	mu      sync.RWMutex
	entries map[string]memoryEntry
}

// NewMemoryCache creates an empty MemoryCache.
func NewMemoryCache() *MemoryCache {
	return &MemoryCache{
		entries: make(map[string]memoryEntry),
	}
}

// Get returns the artifact for path if one was stored for the same mtime and size.
func (c *MemoryCache) Get(path string, mtime, size int64) (*domain.Artifact, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[path]
	if !exists {
		return nil, false
	}
	if entry.mtime != mtime || entry.size != size {
		return nil, false
	}
	return entry.artifact, true
}

// Set stores the artifact for path along with the source's mtime and size.
func (c *MemoryCache) Set(path string, mtime, size int64, artifact *domain.Artifact) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[path] = memoryEntry{artifact: artifact, mtime: mtime, size: size}
}

// Invalidate drops the entries for paths.
func (c *MemoryCache) Invalidate(paths ...string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, p := range paths {
		delete(c.entries, p)
	}
}

// Len returns the number of cached artifacts.
func (c *MemoryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return len(c.entries)
}
