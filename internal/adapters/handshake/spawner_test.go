package handshake_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcehook/internal/adapters/handshake"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

func TestSpawner_Spawn(t *testing.T) {
	root := t.TempDir()
	script := filepath.Join(t.TempDir(), "fake-sourcehook")
	require.NoError(t, os.WriteFile(script, []byte(
		"#!/bin/sh\necho \"args=$*\"\necho \"socket=$"+domain.HandshakeSocketEnv+"\"\necho \"pwd=$(pwd)\"\n",
	), 0o700))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Times(1)

	cfg := &domain.Config{Root: root}
	proc, err := handshake.NewSpawnerFor(script, log).Spawn(cfg, "--load", "/app/a.ts")
	require.NoError(t, err)
	assert.Positive(t, proc.Pid())
	require.NoError(t, proc.Wait())

	out, err := os.ReadFile(cfg.RendererLogPath())
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(out)), "\n")

	resolvedRoot, err := filepath.EvalSymlinks(root)
	require.NoError(t, err)
	assert.Equal(t, []string{
		"args=renderer --load /app/a.ts",
		"socket=" + cfg.SocketPath(),
		"pwd=" + resolvedRoot,
	}, lines)
}

func TestSpawner_SpawnFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)

	cfg := &domain.Config{Root: t.TempDir()}
	_, err := handshake.NewSpawnerFor(filepath.Join(cfg.Root, "missing-binary"), log).Spawn(cfg)

	require.Error(t, err)
	assert.ErrorContains(t, err, domain.ErrRendererSpawnFailed.Error())
}

func TestNewSpawner(t *testing.T) {
	ctrl := gomock.NewController(t)

	s, err := handshake.NewSpawner(mocks.NewMockLogger(ctrl))
	require.NoError(t, err)
	assert.NotNil(t, s)
}

func TestProcess_Terminate(t *testing.T) {
	script := filepath.Join(t.TempDir(), "fake-sourcehook")
	require.NoError(t, os.WriteFile(script, []byte("#!/bin/sh\nexec sleep 60\n"), 0o700))

	ctrl := gomock.NewController(t)
	log := mocks.NewMockLogger(ctrl)
	log.EXPECT().Info(gomock.Any()).Times(1)

	proc, err := handshake.NewSpawnerFor(script, log).Spawn(&domain.Config{Root: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, proc.Terminate())
	require.Error(t, proc.Wait(), "terminated process reports its signal")
}
