package domain

import "time"

// CacheEntry is a compiled artifact persisted in the artifact cache.
type CacheEntry struct {
	// SourcePath is the absolute path of the compiled source.
	SourcePath string `cbor:"1,keyasint"`
	// SourceHash is the xxhash64 of the source content the entry was compiled from.
	SourceHash uint64 `cbor:"2,keyasint"`
	// Compiler is the name of the compiler that produced the entry.
	Compiler string `cbor:"3,keyasint"`
	// MimeType is the media type of Code.
	MimeType string `cbor:"4,keyasint"`
	// Code is the compiled output. Stores may compress it at rest.
	Code []byte `cbor:"5,keyasint"`
	// CompiledAt is when the entry was produced.
	CompiledAt time.Time `cbor:"6,keyasint"`
	// Options fingerprints the compiler's configuration. Entries written under other
	// options are stale.
	Options uint64 `cbor:"7,keyasint"`
}

// Artifact returns the entry as an Artifact.
func (e *CacheEntry) Artifact() *Artifact {
	return NewArtifact(e.Code, e.MimeType)
}
