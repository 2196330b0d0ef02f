package fs_test

import (
	"os"
	"path/filepath"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcehook/internal/adapters/fs"
	"go.trai.ch/sourcehook/internal/core/domain"
)

// layTree writes each slash-separated file below root.
func layTree(t *testing.T, root string, files ...string) {
	t.Helper()
	for _, name := range files {
		p := filepath.Join(root, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(p), domain.DirPerm))
		require.NoError(t, os.WriteFile(p, []byte(name), domain.PrivateFilePerm))
	}
}

func TestWalker_WalkFiles(t *testing.T) {
	tests := []struct {
		name    string
		files   []string
		ignores []string
		want    []string
	}{
		{
			name:  "empty tree",
			files: nil,
			want:  nil,
		},
		{
			name:  "nested sources",
			files: []string{"main.ts", "src/view.tsx", "docs/README.md"},
			want:  []string{"docs/README.md", "main.ts", "src/view.tsx"},
		},
		{
			name:  "version control metadata",
			files: []string{".git/config", ".git/objects/ab", ".jj/store", "src/main.ts"},
			want:  []string{"src/main.ts"},
		},
		{
			name:    "ignored directories",
			files:   []string{"main.ts", "node_modules/lib/index.js", ".sourcehook/cache/a.cbor", "node_modules.ts"},
			ignores: []string{"node_modules", domain.HookDirName},
			want:    []string{"main.ts", "node_modules.ts"},
		},
		{
			name:    "glob ignores",
			files:   []string{"app/main.ts", "build-1/out.js", "build-2/out.js"},
			ignores: []string{"build-*"},
			want:    []string{"app/main.ts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := t.TempDir()
			layTree(t, root, tt.files...)

			var got []string
			for p := range fs.NewWalker().WalkFiles(root, tt.ignores) {
				rel, err := filepath.Rel(root, p)
				require.NoError(t, err)
				got = append(got, filepath.ToSlash(rel))
			}
			slices.Sort(got)

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWalker_WalkFiles_SkipsSymlinks(t *testing.T) {
	root := t.TempDir()
	layTree(t, root, "main.ts")
	require.NoError(t, os.Symlink(filepath.Join(root, "main.ts"), filepath.Join(root, "alias.ts")))

	var got []string
	for p := range fs.NewWalker().WalkFiles(root, nil) {
		got = append(got, filepath.Base(p))
	}

	assert.Equal(t, []string{"main.ts"}, got)
}

func TestWalker_WalkFiles_StopsEarly(t *testing.T) {
	root := t.TempDir()
	layTree(t, root, "a.ts", "b.ts", "c.ts")

	count := 0
	for range fs.NewWalker().WalkFiles(root, nil) {
		count++
		break
	}
	assert.Equal(t, 1, count)
}
