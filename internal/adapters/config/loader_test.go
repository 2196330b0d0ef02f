package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcehook/internal/adapters/config"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func createFile(t *testing.T, dir, name, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, domain.DirPerm))
	require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), domain.PrivateFilePerm))
}

func newTestLoader(t *testing.T) *config.Loader {
	t.Helper()
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	return config.NewLoader(mockLogger)
}

func TestLoader_Load_Full(t *testing.T) {
	loader := newTestLoader(t)
	rootDir := t.TempDir()

	createFile(t, rootDir, domain.ConfigFileName, `
version: "1"
root: app
cacheDir: build/cache
readOnly: true
listen: 127.0.0.1:9000
bypass: [vendor, node_modules]
compilers:
  text/typescript: esbuild
  text/x-scss:
    command: ["sass", "--stdin"]
    output: text/css
esbuild:
  target: es2022
  sourcemap: inline
`)

	cfg, err := loader.Load(rootDir)
	require.NoError(t, err)

	appRoot := filepath.Join(rootDir, "app")
	assert.Equal(t, appRoot, cfg.Root)
	assert.Equal(t, filepath.Join(appRoot, "build", "cache"), cfg.CacheDir)
	assert.True(t, cfg.ReadOnly)
	assert.Equal(t, "127.0.0.1:9000", cfg.Listen)
	assert.Equal(t, []string{"vendor", "node_modules"}, cfg.Bypass)
	assert.Equal(t, domain.EsbuildOptions{Target: "es2022", Sourcemap: "inline"}, cfg.Esbuild)
	assert.Equal(t, map[string]domain.CompilerSpec{
		"text/typescript": {Name: "esbuild"},
		"text/x-scss":     {Name: "command", Command: []string{"sass", "--stdin"}, Output: "text/css"},
	}, cfg.Compilers)
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := newTestLoader(t)
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "version: \"1\"\n")

	cfg, err := loader.Load(rootDir)
	require.NoError(t, err)

	assert.Equal(t, rootDir, cfg.Root)
	assert.Equal(t, filepath.Join(rootDir, ".sourcehook", "cache"), cfg.CacheDir)
	assert.False(t, cfg.ReadOnly)
	assert.Equal(t, domain.DefaultListenAddr, cfg.Listen)
	assert.Equal(t, []string{"atom.asar", "node_modules"}, cfg.Bypass)
	assert.Nil(t, cfg.Compilers)
}

func TestLoader_Load_EmptyBypass(t *testing.T) {
	loader := newTestLoader(t)
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "bypass: []\n")

	cfg, err := loader.Load(rootDir)
	require.NoError(t, err)

	assert.NotNil(t, cfg.Bypass)
	assert.Empty(t, cfg.Bypass)
}

func TestLoader_Load_WalksUp(t *testing.T) {
	loader := newTestLoader(t)
	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "readOnly: true\n")

	nested := filepath.Join(rootDir, "src", "views")
	require.NoError(t, os.MkdirAll(nested, domain.DirPerm))

	cfg, err := loader.Load(nested)
	require.NoError(t, err)
	assert.Equal(t, rootDir, cfg.Root)
	assert.True(t, cfg.ReadOnly)
}

func TestLoader_Load_NoConfigFile(t *testing.T) {
	loader := config.NewLoaderWithFS(newTestLoader(t).Logger, fstest.MapFS{
		"srv/app/index.html": {Data: []byte("<html>")},
	})

	cfg, err := loader.Load("/srv/app")
	require.NoError(t, err)
	assert.Equal(t, "/srv/app", cfg.Root)
	assert.Equal(t, "/srv/app/.sourcehook/cache", cfg.CacheDir)
}

func TestLoader_Load_MapFS(t *testing.T) {
	loader := config.NewLoaderWithFS(newTestLoader(t).Logger, fstest.MapFS{
		"srv/sourcehook.yaml": {Data: []byte("cacheDir: /var/cache/sourcehook\n")},
		"srv/app/main.ts":     {Data: []byte("export {}")},
	})

	cfg, err := loader.Load("/srv/app")
	require.NoError(t, err)
	assert.Equal(t, "/srv", cfg.Root)
	assert.Equal(t, "/var/cache/sourcehook", cfg.CacheDir)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name        string
		content     string
		expectedErr error
	}{
		{
			name:        "invalid yaml",
			content:     "compilers: [unclosed",
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name:        "wrong type",
			content:     "readOnly: maybe\n",
			expectedErr: domain.ErrConfigParseFailed,
		},
		{
			name:        "command without output",
			content:     "compilers:\n  text/x-scss:\n    command: [sass]\n",
			expectedErr: domain.ErrInvalidCompilerSpec,
		},
		{
			name:        "empty mapping",
			content:     "compilers:\n  text/x-scss: {}\n",
			expectedErr: domain.ErrInvalidCompilerSpec,
		},
		{
			name:        "null binding",
			content:     "compilers:\n  text/x-scss:\n",
			expectedErr: domain.ErrInvalidCompilerSpec,
		},
		{
			name:        "named command without argv",
			content:     "compilers:\n  text/x-scss: command\n",
			expectedErr: domain.ErrInvalidCompilerSpec,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := newTestLoader(t)
			rootDir := t.TempDir()
			createFile(t, rootDir, domain.ConfigFileName, tt.content)

			_, err := loader.Load(rootDir)
			require.Error(t, err)
			require.ErrorContains(t, err, tt.expectedErr.Error())
		})
	}
}

func TestLoader_Load_UnsupportedVersionWarns(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Warn(gomock.Any()).Times(1)

	rootDir := t.TempDir()
	createFile(t, rootDir, domain.ConfigFileName, "version: \"2\"\n")

	_, err := config.NewLoader(mockLogger).Load(rootDir)
	require.NoError(t, err)
}
