package ports

import (
	"context"

	"go.trai.ch/sourcehook/internal/core/domain"
)

// HostConfigSource yields the configuration the host process published for this process.
//
//go:generate go run go.uber.org/mock/mockgen -source=handshake.go -destination=mocks/mock_handshake.go -package=mocks
type HostConfigSource interface {
	// HostConfig fetches the published configuration.
	HostConfig(ctx context.Context) (*domain.HostConfig, error)
}

// Interceptor answers resource requests arriving on the intercepted scheme.
type Interceptor interface {
	// Intercept handles req and calls finish exactly once.
	Intercept(ctx context.Context, req domain.ResourceRequest, finish func(domain.Response))
}
