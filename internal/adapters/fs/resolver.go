package fs

import (
	"path/filepath"
	"slices"

	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/zerr"
)

// Resolver expands glob patterns into absolute paths.
type Resolver struct{}

// NewResolver creates a new Resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveInputs expands patterns relative to root into a sorted, deduplicated list
// of absolute paths. Matches may be files or directories. A pattern that matches
// nothing fails with domain.ErrInputNotFound.
func (r *Resolver) ResolveInputs(patterns []string, root string) ([]string, error) {
	seen := make(map[string]struct{})
	resolved := make([]string, 0, len(patterns))

	for _, pattern := range patterns {
		if !filepath.IsAbs(pattern) {
			pattern = filepath.Join(root, pattern)
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInputNotFound.Error()), "pattern", pattern)
		}
		if len(matches) == 0 {
			return nil, zerr.With(domain.ErrInputNotFound, "pattern", pattern)
		}

		for _, m := range matches {
			if _, ok := seen[m]; ok {
				continue
			}
			seen[m] = struct{}{}
			resolved = append(resolved, m)
		}
	}

	slices.Sort(resolved)
	return resolved, nil
}
