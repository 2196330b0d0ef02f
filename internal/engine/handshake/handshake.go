// Package handshake builds the second process's compilation context from the
// configuration the host process published.
package handshake

import (
	"context"
	"sync"
	"sync/atomic"

	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/zerr"
)

// Initializer performs the renderer-side initialization at most once per process.
type Initializer struct {
	source    ports.HostConfigSource
	factory   ports.HostFactory
	compilers ports.CompilerConfig
	loader    ports.LoaderHook
	logger    ports.Logger

	mu   sync.Mutex
	host atomic.Pointer[hostRef]
}

type hostRef struct {
	host ports.CompilerHost
}

// NewInitializer creates an Initializer.
func NewInitializer(
	source ports.HostConfigSource,
	factory ports.HostFactory,
	compilers ports.CompilerConfig,
	loader ports.LoaderHook,
	log ports.Logger,
) *Initializer {
	return &Initializer{
		source:    source,
		factory:   factory,
		compilers: compilers,
		loader:    loader,
		logger:    log,
	}
}

// Initialize builds the compilation context and installs the loader hook.
//
// The first successful call does the work; later calls return the same context.
// A failed call leaves the Initializer uninitialized so it may be retried.
// A missing root cache directory fails with domain.ErrRootCacheDirUnpublished.
// The mode is read-only when the host published read-only; readOnly can only
// tighten it.
func (i *Initializer) Initialize(ctx context.Context, readOnly bool) (ports.CompilerHost, error) {
	if ref := i.host.Load(); ref != nil {
		return ref.host, nil
	}

	i.mu.Lock()
	defer i.mu.Unlock()

	if ref := i.host.Load(); ref != nil {
		return ref.host, nil
	}

	cfg, err := i.source.HostConfig(ctx)
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrHandshakeFailed.Error())
	}
	if cfg == nil || cfg.RootCacheDir == "" {
		return nil, domain.ErrRootCacheDirUnpublished
	}
	readOnly = readOnly || cfg.ReadOnly

	host, err := i.createHost(cfg.RootCacheDir, readOnly)
	if err != nil {
		return nil, err
	}

	if err := i.loader.Install(host); err != nil {
		return nil, err
	}

	i.host.Store(&hostRef{host: host})
	if readOnly {
		i.logger.Debug("renderer initialized in read-only mode from " + cfg.RootCacheDir)
	} else {
		i.logger.Debug("renderer initialized in development mode from " + cfg.RootCacheDir)
	}
	return host, nil
}

func (i *Initializer) createHost(cacheDir string, readOnly bool) (ports.CompilerHost, error) {
	if readOnly {
		return i.factory.CreateReadonlyFromConfiguration(cacheDir)
	}

	compilers, err := i.compilers.CreateCompilers()
	if err != nil {
		return nil, err
	}
	return i.factory.CreateFromConfiguration(cacheDir, compilers)
}

// Initialized reports whether a context has been installed.
func (i *Initializer) Initialized() bool {
	return i.host.Load() != nil
}
