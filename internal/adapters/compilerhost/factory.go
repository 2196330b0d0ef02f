package compilerhost

import (
	"maps"
	"time"

	"github.com/cespare/xxhash/v2"
	"go.trai.ch/sourcehook/internal/adapters/cas"
	"go.trai.ch/sourcehook/internal/core/ports"
)

// StoreOpener opens the artifact store rooted at a cache directory.
type StoreOpener func(cacheDir string) (ports.ArtifactStore, error)

// Factory implements ports.HostFactory.
type Factory struct {
	logger    ports.Logger
	openStore StoreOpener
	hash      func([]byte) uint64
	now       func() time.Time
}

// FactoryOption configures a Factory.
type FactoryOption func(*Factory)

// WithStoreOpener replaces the on-disk artifact store.
func WithStoreOpener(open StoreOpener) FactoryOption {
	return func(f *Factory) {
		f.openStore = open
	}
}

// WithHasher sets the hasher that keys on-disk entries to source content.
func WithHasher(h ports.Hasher) FactoryOption {
	return func(f *Factory) {
		f.hash = h.HashBytes
	}
}

// WithClock sets the clock used to stamp cache entries.
func WithClock(now func() time.Time) FactoryOption {
	return func(f *Factory) {
		f.now = now
	}
}

// NewFactory creates a Factory whose hosts persist artifacts in a cas.Store.
func NewFactory(logger ports.Logger, opts ...FactoryOption) *Factory {
	f := &Factory{
		logger: logger,
		openStore: func(cacheDir string) (ports.ArtifactStore, error) {
			return cas.NewStore(cacheDir)
		},
		hash: xxhash.Sum64,
		now:  time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateFromConfiguration builds a development-mode Host that compiles on demand.
func (f *Factory) CreateFromConfiguration(cacheDir string, compilers map[string]ports.Compiler) (ports.CompilerHost, error) {
	host, err := f.NewHost(cacheDir, compilers)
	if err != nil {
		return nil, err
	}
	return host, nil
}

// CreateReadonlyFromConfiguration builds a read-only Host that serves precompiled artifacts.
func (f *Factory) CreateReadonlyFromConfiguration(cacheDir string) (ports.CompilerHost, error) {
	host, err := f.newHost(cacheDir, nil, true)
	if err != nil {
		return nil, err
	}
	return host, nil
}

// NewHost builds a development-mode Host with its concrete type, for callers that invalidate entries.
func (f *Factory) NewHost(cacheDir string, compilers map[string]ports.Compiler) (*Host, error) {
	return f.newHost(cacheDir, compilers, false)
}

func (f *Factory) newHost(cacheDir string, compilers map[string]ports.Compiler, readOnly bool) (*Host, error) {
	store, err := f.openStore(cacheDir)
	if err != nil {
		return nil, err
	}
	return &Host{
		cacheDir:  cacheDir,
		readOnly:  readOnly,
		compilers: maps.Clone(compilers),
		store:     store,
		memory:    NewMemoryCache(),
		logger:    f.logger,
		hash:      f.hash,
		now:       f.now,
	}, nil
}
