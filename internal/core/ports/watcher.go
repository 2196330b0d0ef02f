package ports

import (
	"context"
	"iter"
)

// ChangeKind is what happened to a watched path.
type ChangeKind uint8

const (
	// ChangeCreated means a file or directory appeared. New directories are watched too.
	ChangeCreated ChangeKind = iota
	// ChangeModified means a file's content was written.
	ChangeModified
	// ChangeRemoved means a file or directory is gone.
	ChangeRemoved
	// ChangeRenamed means a file or directory moved away from Path.
	ChangeRenamed
)

// SourceChange is one change under the application root.
type SourceChange struct {
	// Path is absolute.
	Path string
	Kind ChangeKind
}

// Watcher reports changes under the application root so compiled artifacts can be
// invalidated while the host process runs.
//
//go:generate go run go.uber.org/mock/mockgen -source=watcher.go -destination=mocks/mock_watcher.go -package=mocks
type Watcher interface {
	// Start watches root and every directory below it, except the skipped ones.
	Start(ctx context.Context, root string) error
	// Stop releases the watches and ends the Changes sequence.
	Stop() error
	// Changes yields changes until Stop.
	Changes() iter.Seq[SourceChange]
}
