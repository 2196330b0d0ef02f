package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcehook/internal/adapters/compilerhost"
	"go.trai.ch/sourcehook/internal/adapters/fs"
	"go.trai.ch/sourcehook/internal/adapters/logger"
	"go.trai.ch/sourcehook/internal/app"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/sourcehook/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func newApplication(loader ports.ConfigLoader, log ports.Logger) *app.App {
	return app.New(
		loader,
		compilerhost.NewFactory(log),
		nil,
		fs.NewResolver(),
		fs.NewWalker(),
		fs.NewHasher(),
		log,
	)
}

func provide(a *app.App, log ports.Logger) ComponentProvider {
	return func(context.Context) (*app.Components, func(), error) {
		return &app.Components{App: a, Logger: log}, func() {}, nil
	}
}

type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

// TestRun_Success verifies that the run function returns 0 when the command succeeds.
func TestRun_Success(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	application := newApplication(mockLoader, mockLogger)

	stdout := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, stdout, io.Discard, provide(application, mockLogger))
	assert.Equal(t, 0, exitCode)
	assert.True(t, strings.HasPrefix(stdout.String(), "sourcehook version "))
}

// TestRun_InitializationError verifies that run returns 1 when component initialization fails.
func TestRun_InitializationError(t *testing.T) {
	provider := func(_ context.Context) (*app.Components, func(), error) {
		return nil, nil, errors.New("init failed")
	}

	stderr := new(bytes.Buffer)
	exitCode := run(context.Background(), []string{"version"}, io.Discard, stderr, provider)

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), "Error: init failed")
}

// TestRun_ExecutionError verifies that run returns 1 and logs when the command fails.
func TestRun_ExecutionError(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLogger := mocks.NewMockLogger(ctrl)
	mockLoader.EXPECT().Load(".").Return(nil, errors.New("load failed"))
	mockLogger.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.ErrorContains(t, err, "load failed")
	})

	application := newApplication(mockLoader, mockLogger)

	exitCode := run(context.Background(), []string{"clean"}, io.Discard, io.Discard, provide(application, mockLogger))
	assert.Equal(t, 1, exitCode)
}

// TestRun_LogFlags verifies that the logging flags reconfigure the real logger.
func TestRun_LogFlags(t *testing.T) {
	ctrl := gomock.NewController(t)

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(".").Return(nil, errors.New("load failed"))

	log := logger.New()
	stderr := new(bytes.Buffer)
	log.(*logger.Logger).SetOutput(stderr)

	application := newApplication(mockLoader, log)
	exitCode := run(context.Background(), []string{"clean", "--log-format", "json"}, io.Discard, io.Discard, provide(application, log))

	assert.Equal(t, 1, exitCode)
	assert.Contains(t, stderr.String(), `"level":"ERROR"`)
	assert.Contains(t, stderr.String(), "load failed")
}

// TestRun_Signal verifies that canceling the context stops a running server.
func TestRun_Signal(t *testing.T) {
	ctrl := gomock.NewController(t)

	root, err := os.MkdirTemp("", "shk")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.RemoveAll(root) })

	mockLoader := mocks.NewMockConfigLoader(ctrl)
	mockLoader.EXPECT().Load(gomock.Any()).Return(&domain.Config{
		Root:     root,
		CacheDir: filepath.Join(root, "cache"),
		Listen:   "127.0.0.1:0",
		ReadOnly: true,
	}, nil)

	mockLogger := mocks.NewMockLogger(ctrl)
	mockLogger.EXPECT().Debug(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Info(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Warn(gomock.Any()).AnyTimes()
	mockLogger.EXPECT().Error(gomock.Any()).AnyTimes()

	application := newApplication(mockLoader, mockLogger)

	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan int)
	stdout := &syncBuffer{}

	go func() {
		errCh <- run(ctx, []string{"serve"}, stdout, io.Discard, provide(application, mockLogger))
	}()

	require.Eventually(t, func() bool {
		return strings.Contains(stdout.String(), "listening on")
	}, 5*time.Second, 10*time.Millisecond)

	cancel()

	select {
	case ret := <-errCh:
		assert.Equal(t, 0, ret)
	case <-time.After(5 * time.Second):
		t.Fatal("TestRun_Signal timed out waiting for run() to return")
	}
}
