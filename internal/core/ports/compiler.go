package ports

import (
	"context"

	"go.trai.ch/sourcehook/internal/core/domain"
)

// Compiler transforms one kind of source into a loadable artifact.
//
//go:generate go run go.uber.org/mock/mockgen -source=compiler.go -destination=mocks/mock_compiler.go -package=mocks
type Compiler interface {
	// Name identifies the compiler in configuration and cache entries.
	Name() string

	// Fingerprint describes the options that shape the compiler's output. Two compilers
	// with the same name and fingerprint produce the same artifact from the same source.
	Fingerprint() string

	// Compile transforms source, read from path, into an artifact.
	// Failures should wrap domain.ErrCompileFailed.
	Compile(ctx context.Context, source []byte, path string) (*domain.Artifact, error)
}

// CompilerConfig provides the compiler registry used by development-mode contexts.
type CompilerConfig interface {
	// CreateCompilers returns the configured compilers keyed by source media type.
	CreateCompilers() (map[string]Compiler, error)
}
