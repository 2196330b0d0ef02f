package app

import (
	"context"
	"errors"
	"os"

	"go.trai.ch/sourcehook/internal/adapters/cas"
	"go.trai.ch/sourcehook/internal/adapters/compilerhost"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/sourcehook/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// CompileOptions configuration for the Compile method.
type CompileOptions struct {
	// Paths are files, directories or globs. Empty means the application root.
	Paths []string
	// Check verifies the cache against the sources instead of compiling.
	Check bool
}

// CompileSummary counts what Compile did.
type CompileSummary struct {
	// Compiled is the number of sources compiled or verified.
	Compiled int
	// Skipped is the number of files served verbatim, which need no cache entry.
	Skipped int
	// Failed is the number of sources that failed.
	Failed int
}

// Compile precompiles every non-bypass source under the given paths into the artifact
// cache, which is what a read-only context serves from. Failures are joined and
// reported after every file was tried.
func (a *App) Compile(ctx context.Context, opts CompileOptions) (CompileSummary, error) {
	var summary CompileSummary

	cfg, err := a.loadConfig(Overrides{})
	if err != nil {
		return summary, err
	}

	host, registered, err := a.developmentHost(cfg)
	if err != nil {
		return summary, err
	}

	files, err := a.collectSources(cfg, opts.Paths)
	if err != nil {
		return summary, err
	}

	var store ports.ArtifactStore
	if opts.Check {
		if store, err = cas.NewStore(cfg.CacheDir); err != nil {
			return summary, err
		}
	}

	var errs error
	for _, file := range files {
		if err := ctx.Err(); err != nil {
			return summary, err
		}

		compiler, ok := registered[domain.MimeTypeFor(file)]
		if !ok {
			summary.Skipped++
			continue
		}

		if opts.Check {
			err = a.checkEntry(store, file, compiler)
		} else {
			_, err = host.Compile(ctx, file)
		}
		if err != nil {
			summary.Failed++
			errs = errors.Join(errs, err)
			continue
		}
		summary.Compiled++
		a.logger.Debug("ok " + file)
	}

	if errs != nil {
		return summary, errors.Join(domain.ErrPrecompileFailed, errs)
	}
	return summary, nil
}

// collectSources expands paths into the sorted files beneath them, leaving out
// bypass trees and the workspace directory.
func (a *App) collectSources(cfg *domain.Config, paths []string) ([]string, error) {
	if len(paths) == 0 {
		paths = []string{cfg.Root}
	}

	base, err := a.absPath(".")
	if err != nil {
		return nil, err
	}
	inputs, err := a.resolver.ResolveInputs(paths, base)
	if err != nil {
		return nil, err
	}

	bypass := resolver.New(cfg.Bypass)
	ignores := append([]string{domain.HookDirName}, cfg.Bypass...)

	var files []string
	seen := make(map[string]struct{})
	add := func(p string) {
		if _, ok := seen[p]; ok || bypass.IsBypass(p) {
			return
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}

	for _, input := range inputs {
		info, err := os.Stat(input)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, domain.ErrInputNotFound.Error()), "path", input)
		}
		if !info.IsDir() {
			add(input)
			continue
		}
		for file := range a.walker.WalkFiles(input, ignores) {
			add(file)
		}
	}
	return files, nil
}

func (a *App) checkEntry(store ports.ArtifactStore, file string, compiler ports.Compiler) error {
	hash, err := a.hasher.HashFile(file)
	if err != nil {
		return err
	}
	entry, err := store.Get(file)
	if err != nil {
		return err
	}
	if !compilerhost.Fresh(entry, hash, compiler) {
		return zerr.With(domain.ErrCacheStale, "path", file)
	}
	return nil
}

// Clean removes every compiled artifact from the cache.
func (a *App) Clean(_ context.Context) error {
	cfg, err := a.loadConfig(Overrides{})
	if err != nil {
		return err
	}

	store, err := cas.NewStore(cfg.CacheDir)
	if err != nil {
		return err
	}
	a.logger.Info("removing artifact cache " + store.Root() + "...")
	if err := store.Clear(); err != nil {
		return zerr.Wrap(err, "failed to remove artifact cache")
	}
	a.logger.Info("removed artifact cache")
	return nil
}
