package app

import (
	"context"
	"fmt"

	"go.trai.ch/sourcehook/internal/adapters/compilerhost"
	hsrpc "go.trai.ch/sourcehook/internal/adapters/handshake"
	"go.trai.ch/sourcehook/internal/adapters/telemetry"
	"go.trai.ch/sourcehook/internal/adapters/transport"
	"go.trai.ch/sourcehook/internal/adapters/watcher"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/sourcehook/internal/engine/dispatcher"
	"go.trai.ch/sourcehook/internal/engine/resolver"
	"golang.org/x/sync/errgroup"
)

// TracerName is the instrumentation name of the host process's spans.
const TracerName = "sourcehook"

// ServeOptions configuration for the Serve method.
type ServeOptions struct {
	Overrides
	// SpawnRenderer starts the second process once the handshake is being served.
	SpawnRenderer bool
	// RendererArgs are passed to the spawned renderer after its own mode flag.
	RendererArgs []string
	// Trace records a span per dispatched request; finished spans are logged at debug level.
	Trace bool
	// Ready, if set, is called with the bound transport address once both listeners are up.
	Ready func(addr string)
}

// Serve runs the host process: it answers intercepted requests, publishes the handshake
// and, in development mode, invalidates compiled artifacts as sources change.
// It returns when ctx is canceled or a component fails.
func (a *App) Serve(ctx context.Context, opts ServeOptions) error {
	cfg, err := a.loadConfig(opts.Overrides)
	if err != nil {
		return err
	}

	host, devHost, err := a.createHost(cfg)
	if err != nil {
		return err
	}

	var tracer ports.Tracer = telemetry.NewNoOpTracer()
	if opts.Trace {
		tracer = telemetry.NewOTelTracer(TracerName, telemetry.NewLogBridge(a.logger))
	}
	defer func() {
		_ = tracer.Shutdown(context.WithoutCancel(ctx))
	}()

	disp := dispatcher.New(resolver.New(cfg.Bypass), host, a.logger, tracer)
	srv := transport.NewServer(disp, a.logger, transport.WithRoots(cfg.Root))

	lis, err := transport.Listen(ctx, cfg.Listen)
	if err != nil {
		return err
	}

	hs := hsrpc.NewServer(cfg.SocketPath(), domain.HostConfig{
		RootCacheDir: host.RootCacheDir(),
		ReadOnly:     host.ReadOnlyMode(),
	}, a.logger)
	sock, err := hs.Listen()
	if err != nil {
		_ = lis.Close()
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error { return srv.Serve(ctx, lis) })
	g.Go(func() error { return hs.Serve(ctx, sock) })

	if devHost != nil {
		if err := a.watch(ctx, g, cfg, devHost); err != nil {
			a.logger.Warn("source watching disabled: " + err.Error())
		}
	}

	if opts.Ready != nil {
		opts.Ready(lis.Addr().String())
	}

	if opts.SpawnRenderer {
		g.Go(func() error { return a.superviseRenderer(ctx, cfg, opts.RendererArgs) })
	}

	return g.Wait()
}

func (a *App) watch(ctx context.Context, g *errgroup.Group, cfg *domain.Config, host *compilerhost.Host) error {
	w, err := watcher.NewWatcher(a.logger,
		watcher.WithSkipNames(cfg.Bypass...),
		watcher.WithSkipPaths(cfg.CacheDir),
	)
	if err != nil {
		return err
	}
	if err := w.Start(ctx, cfg.Root); err != nil {
		_ = w.Stop()
		return err
	}

	d := watcher.NewDebouncer(watcher.DefaultDebounceWindow, func(paths []string) {
		host.Invalidate(paths...)
		a.logger.Debug(fmt.Sprintf("invalidated %d changed source(s)", len(paths)))
	})

	g.Go(func() error {
		watcher.Relay(w.Changes(), d)
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		return w.Stop()
	})
	return nil
}

// superviseRenderer starts the second process and stops it with the host.
// A renderer that exits on its own does not stop the host.
func (a *App) superviseRenderer(ctx context.Context, cfg *domain.Config, args []string) error {
	if cfg.ReadOnly {
		args = append([]string{"--read-only"}, args...)
	}

	proc, err := a.spawner.Spawn(cfg, args...)
	if err != nil {
		return err
	}
	a.logger.Debug(fmt.Sprintf("renderer started (pid %d), logging to %s", proc.Pid(), cfg.RendererLogPath()))

	done := make(chan error, 1)
	go func() {
		done <- proc.Wait()
	}()

	select {
	case err := <-done:
		if err != nil {
			a.logger.Warn("renderer exited: " + err.Error() + ", see " + cfg.RendererLogPath())
			return nil
		}
		a.logger.Info("renderer exited")
		return nil
	case <-ctx.Done():
		_ = proc.Terminate()
		<-done
		return nil
	}
}
