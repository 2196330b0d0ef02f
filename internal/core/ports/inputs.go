package ports

import "iter"

// InputResolver expands path patterns into concrete paths.
//
//go:generate go run go.uber.org/mock/mockgen -source=inputs.go -destination=mocks/mock_inputs.go -package=mocks
type InputResolver interface {
	// ResolveInputs expands patterns relative to root into sorted absolute paths.
	ResolveInputs(patterns []string, root string) ([]string, error)
}

// FileWalker iterates over the files of a directory tree.
type FileWalker interface {
	// WalkFiles yields every regular file under root, skipping directories matching ignores.
	WalkFiles(root string, ignores []string) iter.Seq[string]
}
