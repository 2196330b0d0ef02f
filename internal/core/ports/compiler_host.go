// Package ports defines the core interfaces for the application.
package ports

import (
	"context"

	"go.trai.ch/sourcehook/internal/core/domain"
)

// CompilerHost is a compilation context: it turns a source path into a loadable artifact
// and owns the on-disk cache of results.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler_host.go -destination=mocks/mock_compiler_host.go -package=mocks
type CompilerHost interface {
	// Compile returns the compiled artifact for the file at path.
	//
	// A missing source must be reported with an error that matches domain.ErrSourceNotFound
	// or fs.ErrNotExist under errors.Is; every other error is treated as a compile failure.
	// Implementations must be safe for concurrent calls, including for the same path.
	Compile(ctx context.Context, path string) (*domain.Artifact, error)

	// RootCacheDir returns the directory holding the context's compiled artifacts.
	RootCacheDir() string

	// ReadOnlyMode reports whether the context trusts precompiled artifacts only.
	ReadOnlyMode() bool
}

// HostFactory constructs compilation contexts.
type HostFactory interface {
	// CreateFromConfiguration builds a development-mode context that may compile on demand
	// using compilers, keyed by source media type.
	CreateFromConfiguration(cacheDir string, compilers map[string]Compiler) (CompilerHost, error)

	// CreateReadonlyFromConfiguration builds a read-only context that never compiles.
	CreateReadonlyFromConfiguration(cacheDir string) (CompilerHost, error)
}
