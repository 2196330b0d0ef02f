package handshake_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/sourcehook/internal/adapters/handshake"
	"go.trai.ch/sourcehook/internal/core/domain"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestHostConfigEncoding(t *testing.T) {
	tests := []domain.HostConfig{
		{RootCacheDir: "/srv/app/.sourcehook/cache", ReadOnly: true},
		{RootCacheDir: "/srv/app/.sourcehook/cache", ReadOnly: false},
		{},
	}

	for _, cfg := range tests {
		msg, err := handshake.EncodeHostConfigExported(cfg)
		require.NoError(t, err)
		assert.Equal(t, cfg, *handshake.DecodeHostConfigExported(msg))
	}
}

func TestDecodeHostConfig_MissingFields(t *testing.T) {
	msg, err := structpb.NewStruct(map[string]any{"unrelated": 1})
	require.NoError(t, err)

	cfg := handshake.DecodeHostConfigExported(msg)
	assert.Empty(t, cfg.RootCacheDir)
	assert.False(t, cfg.ReadOnly)

	assert.Equal(t, &domain.HostConfig{}, handshake.DecodeHostConfigExported(nil))
}
