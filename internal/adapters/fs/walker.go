package fs

import (
	"io/fs"
	"iter"
	"path/filepath"
)

// Walker iterates over the files of a directory tree.
type Walker struct{}

// NewWalker creates a new Walker.
func NewWalker() *Walker {
	return &Walker{}
}

// WalkFiles yields the path of every regular file under root.
// Directories named .git or .jj, and directories whose name matches one of the
// ignore globs, are skipped together with their contents. Unreadable entries are skipped.
func (w *Walker) WalkFiles(root string, ignores []string) iter.Seq[string] {
	return func(yield func(string) bool) {
		_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				if d != nil && d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}

			if d.IsDir() {
				if path != root && shouldSkipDir(d.Name(), ignores) {
					return fs.SkipDir
				}
				return nil
			}

			if !d.Type().IsRegular() {
				return nil
			}
			if !yield(path) {
				return fs.SkipAll
			}
			return nil
		})
	}
}

func shouldSkipDir(name string, ignores []string) bool {
	if name == ".git" || name == ".jj" {
		return true
	}
	for _, pattern := range ignores {
		if ok, _ := filepath.Match(pattern, name); ok {
			return true
		}
	}
	return false
}
