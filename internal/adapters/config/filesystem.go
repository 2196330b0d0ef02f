package config

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// hostFS exposes the host filesystem rooted at "/" so the loader can walk any
// absolute path through fs.FS.
func hostFS() fs.FS {
	return os.DirFS("/")
}

// fsPath converts a cleaned absolute path into a name valid for an fs.FS rooted at "/".
func fsPath(abs string) string {
	name := strings.TrimPrefix(filepath.ToSlash(abs), "/")
	if name == "" {
		return "."
	}
	return name
}
