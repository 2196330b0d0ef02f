package handshake

import (
	"time"

	"go.trai.ch/sourcehook/internal/core/domain"
	"google.golang.org/protobuf/types/known/structpb"
)

// SetTimeout replaces the client request timeout for testing.
func (c *Client) SetTimeout(d time.Duration) {
	c.timeout = d
}

// EncodeHostConfigExported exposes encodeHostConfig for testing.
func EncodeHostConfigExported(cfg domain.HostConfig) (*structpb.Struct, error) {
	return encodeHostConfig(cfg)
}

// DecodeHostConfigExported exposes decodeHostConfig for testing.
func DecodeHostConfigExported(msg *structpb.Struct) *domain.HostConfig {
	return decodeHostConfig(msg)
}
