// Package app implements the application layer for sourcehook.
package app

import (
	"path/filepath"

	"go.trai.ch/sourcehook/internal/adapters/compilerhost"
	"go.trai.ch/sourcehook/internal/adapters/compilers"
	hsrpc "go.trai.ch/sourcehook/internal/adapters/handshake"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/zerr"
)

// HandshakeClient fetches the host configuration and owns its connection.
type HandshakeClient interface {
	ports.HostConfigSource
	Close() error
}

// Dialer connects the second process to the host process.
type Dialer func() (HandshakeClient, error)

// App represents the main application logic.
type App struct {
	configLoader ports.ConfigLoader
	hostFactory  *compilerhost.Factory
	spawner      *hsrpc.Spawner
	resolver     ports.InputResolver
	walker       ports.FileWalker
	hasher       ports.Hasher
	logger       ports.Logger
	dial         Dialer
	workDir      string
}

// New creates a new App instance.
func New(
	loader ports.ConfigLoader,
	factory *compilerhost.Factory,
	spawner *hsrpc.Spawner,
	resolver ports.InputResolver,
	walker ports.FileWalker,
	hasher ports.Hasher,
	log ports.Logger,
) *App {
	return &App{
		configLoader: loader,
		hostFactory:  factory,
		spawner:      spawner,
		resolver:     resolver,
		walker:       walker,
		hasher:       hasher,
		logger:       log,
		dial: func() (HandshakeClient, error) {
			return hsrpc.DialFromEnv()
		},
		workDir: ".",
	}
}

// WithDialer replaces how the renderer reaches the host process.
func (a *App) WithDialer(dial Dialer) *App {
	a.dial = dial
	return a
}

// WithWorkDir sets the directory configuration lookup and relative paths start from.
func (a *App) WithWorkDir(dir string) *App {
	a.workDir = dir
	return a
}

// Overrides are command-line values that take precedence over the configuration file.
type Overrides struct {
	ReadOnly bool
	Listen   string
}

func (a *App) loadConfig(o Overrides) (*domain.Config, error) {
	cfg, err := a.configLoader.Load(a.workDir)
	if err != nil {
		return nil, zerr.Wrap(err, "failed to load configuration")
	}
	if o.ReadOnly {
		cfg.ReadOnly = true
	}
	if o.Listen != "" {
		cfg.Listen = o.Listen
	}
	return cfg, nil
}

// createHost builds the host process's compilation context in the configured mode.
// The development host is also returned concretely so changed sources can be invalidated.
func (a *App) createHost(cfg *domain.Config) (ports.CompilerHost, *compilerhost.Host, error) {
	if cfg.ReadOnly {
		host, err := a.hostFactory.CreateReadonlyFromConfiguration(cfg.CacheDir)
		if err != nil {
			return nil, nil, err
		}
		return host, nil, nil
	}

	host, _, err := a.developmentHost(cfg)
	if err != nil {
		return nil, nil, err
	}
	return host, host, nil
}

func (a *App) developmentHost(cfg *domain.Config) (*compilerhost.Host, map[string]ports.Compiler, error) {
	registered, err := compilers.NewRegistry(cfg, a.logger).CreateCompilers()
	if err != nil {
		return nil, nil, err
	}
	host, err := a.hostFactory.NewHost(cfg.CacheDir, registered)
	if err != nil {
		return nil, nil, err
	}
	return host, registered, nil
}

// absPath resolves p against the working directory.
func (a *App) absPath(p string) (string, error) {
	if !filepath.IsAbs(p) {
		p = filepath.Join(a.workDir, p)
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, "failed to resolve path"), "path", p)
	}
	return abs, nil
}
