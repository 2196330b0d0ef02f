package app

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"path/filepath"
	"strings"

	"go.trai.ch/sourcehook/internal/adapters/compilers"
	"go.trai.ch/sourcehook/internal/adapters/loader"
	"go.trai.ch/sourcehook/internal/engine/handshake"
	"go.trai.ch/zerr"
)

// RendererOptions configuration for the Renderer method.
type RendererOptions struct {
	// ReadOnly selects the read-only compilation context.
	ReadOnly bool
	// Load lists files to load through the installed loader hook.
	Load []string
	// Out receives the loaded artifacts, in order.
	Out io.Writer
}

// Renderer runs the second process: it performs the initialization handshake with the
// host process, installs the loader hook and loads the requested files through it.
func (a *App) Renderer(ctx context.Context, opts RendererOptions) error {
	cfg, err := a.loadConfig(Overrides{})
	if err != nil {
		return err
	}

	client, err := a.dial()
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	hook := loader.NewHook(cfg.Root)
	initializer := handshake.NewInitializer(client, a.hostFactory, compilers.NewRegistry(cfg, a.logger), hook, a.logger)

	host, err := initializer.Initialize(ctx, opts.ReadOnly)
	if err != nil {
		return err
	}
	a.logger.Info("renderer ready, artifacts from " + host.RootCacheDir())

	var errs error
	for _, p := range opts.Load {
		code, err := a.loadThrough(ctx, hook, cfg.Root, p)
		if err != nil {
			errs = errors.Join(errs, err)
			continue
		}
		if opts.Out != nil {
			if _, err := opts.Out.Write(code); err != nil {
				return zerr.Wrap(err, "failed to write loaded artifact")
			}
		}
	}
	return errs
}

// loadThrough reads p through the hook: as an fs.FS path when p is under root,
// otherwise by absolute path.
func (a *App) loadThrough(ctx context.Context, hook *loader.Hook, root, p string) ([]byte, error) {
	abs, err := a.absPath(p)
	if err != nil {
		return nil, err
	}

	rel, err := filepath.Rel(root, abs)
	if err == nil && rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return fs.ReadFile(hook, filepath.ToSlash(rel))
	}

	artifact, err := hook.Load(ctx, abs)
	if err != nil {
		return nil, err
	}
	return artifact.Code, nil
}
