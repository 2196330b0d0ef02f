package watcher_test

import (
	"context"
	"os"
	"path/filepath"
	"slices"
	"sync"
	"testing"
	"testing/synctest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcehook/internal/adapters/watcher"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/sourcehook/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestRelay(t *testing.T) {
	synctest.Test(t, func(t *testing.T) {
		var mu sync.Mutex
		var batches [][]string

		d := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
			mu.Lock()
			batches = append(batches, paths)
			mu.Unlock()
		})

		events := slices.Values([]ports.SourceChange{
			{Path: "/app/src/b.ts", Kind: ports.ChangeModified},
			{Path: "/app/src/a.ts", Kind: ports.ChangeCreated},
			{Path: "/app/src/b.ts", Kind: ports.ChangeModified},
		})

		watcher.Relay(events, d)

		mu.Lock()
		defer mu.Unlock()
		require.Len(t, batches, 1)
		assert.Equal(t, []string{"/app/src/a.ts", "/app/src/b.ts"}, batches[0])
	})
}

func TestWatcher_ReportsWritesAndSkipsExcludedTrees(t *testing.T) {
	ctrl := gomock.NewController(t)
	logger := mocks.NewMockLogger(ctrl)
	logger.EXPECT().Warn(gomock.Any()).AnyTimes()

	root := t.TempDir()
	cacheDir := filepath.Join(root, "build-cache")
	for _, dir := range []string{"src", "node_modules/lib", cacheDir, filepath.Join(domain.HookDirName, "cache")} {
		p := dir
		if !filepath.IsAbs(p) {
			p = filepath.Join(root, dir)
		}
		require.NoError(t, os.MkdirAll(p, domain.DirPerm))
	}

	w, err := watcher.NewWatcher(logger,
		watcher.WithSkipNames("node_modules"),
		watcher.WithSkipPaths(cacheDir),
	)
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, w.Start(ctx, root))
	defer func() {
		_ = w.Stop()
	}()

	require.NoError(t, os.WriteFile(filepath.Join(root, "node_modules", "lib", "index.js"), []byte("x"), domain.FilePerm))
	require.NoError(t, os.WriteFile(filepath.Join(cacheDir, "entry.cbor"), []byte("x"), domain.FilePerm))
	target := filepath.Join(root, "src", "main.ts")
	require.NoError(t, os.WriteFile(target, []byte("let a = 1;"), domain.FilePerm))

	seen := make(chan string, 16)
	go func() {
		for event := range w.Changes() {
			seen <- event.Path
		}
		close(seen)
	}()

	deadline := time.After(5 * time.Second)
	for {
		select {
		case p, ok := <-seen:
			require.True(t, ok, "event stream ended early")
			assert.NotContains(t, p, "node_modules")
			assert.NotContains(t, p, "build-cache")
			if p == target {
				return
			}
		case <-deadline:
			t.Fatal("no event for " + target)
		}
	}
}

func TestWatcher_StopEndsEvents(t *testing.T) {
	ctrl := gomock.NewController(t)
	w, err := watcher.NewWatcher(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)

	require.NoError(t, w.Start(context.Background(), t.TempDir()))
	require.NoError(t, w.Stop())

	done := make(chan struct{})
	go func() {
		for range w.Changes() {
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("events did not end after Stop")
	}
}
