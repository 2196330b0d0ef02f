// Package dispatcher answers intercepted resource requests from the compilation context.
package dispatcher

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"sync"

	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/sourcehook/internal/engine/bootstrap"
	"go.trai.ch/sourcehook/internal/engine/resolver"
	"go.trai.ch/zerr"
)

// FinishFunc delivers the response for one request.
type FinishFunc = func(domain.Response)

// ReadFileFunc reads the raw bytes of a bypassed file.
type ReadFileFunc func(path string) ([]byte, error)

// Dispatcher maps resource requests onto a CompilerHost.
// It holds no per-request state and is safe for concurrent use.
type Dispatcher struct {
	resolver *resolver.Resolver
	host     ports.CompilerHost
	logger   ports.Logger
	tracer   ports.Tracer
	readFile ReadFileFunc

	marker      string
	setupScript []byte
}

// Option configures a Dispatcher.
type Option func(*Dispatcher)

// WithReadFile replaces the reader used for bypassed files.
func WithReadFile(fn ReadFileFunc) Option {
	return func(d *Dispatcher) {
		d.readFile = fn
	}
}

// WithMarker replaces the bootstrap marker.
func WithMarker(marker string) Option {
	return func(d *Dispatcher) {
		d.marker = marker
	}
}

// New creates a Dispatcher serving from host.
// The setup script is rendered once here, in the host's current mode.
func New(
	res *resolver.Resolver,
	host ports.CompilerHost,
	log ports.Logger,
	tracer ports.Tracer,
	opts ...Option,
) *Dispatcher {
	d := &Dispatcher{
		resolver: res,
		host:     host,
		logger:   log,
		tracer:   tracer,
		readFile: os.ReadFile,
		marker:   domain.BootstrapMarker,
	}
	for _, opt := range opts {
		opt(d)
	}
	d.setupScript = bootstrap.SetupScript(host.ReadOnlyMode())
	return d
}

// Intercept handles one request and calls finish exactly once.
func (d *Dispatcher) Intercept(ctx context.Context, req domain.ResourceRequest, finish FinishFunc) {
	var once sync.Once
	reply := func(resp domain.Response) {
		once.Do(func() { finish(resp) })
	}

	defer func() {
		if r := recover(); r != nil {
			d.logger.Error(zerr.With(zerr.With(domain.ErrDispatchPanicked, "url", req.URL), "panic", fmt.Sprint(r)))
			reply(domain.TransportFailureResponse())
		}
	}()

	d.logger.Debug("intercepting url " + req.URL)

	if strings.Contains(req.URL, d.marker) {
		reply(domain.ContentResponse(domain.OutcomeBootstrapScript, d.setupScript, domain.ScriptMimeType))
		return
	}

	path, err := d.resolver.Resolve(req.URL)
	if err != nil {
		d.logger.Error(err)
		reply(domain.TransportFailureResponse())
		return
	}

	reply(d.Dispatch(ctx, path))
}

// Dispatch produces the response for a resolved path.
// It makes a single attempt and never returns an error: every failure is mapped to a response.
func (d *Dispatcher) Dispatch(ctx context.Context, path domain.ResolvedPath) domain.Response {
	ctx, span := d.tracer.Start(ctx, "dispatch",
		ports.WithAttribute("path", path.Path),
		ports.WithAttribute("bypass", path.Bypass),
	)
	defer span.End()

	var resp domain.Response
	if path.Bypass {
		resp = d.readBypass(path.Path)
	} else {
		resp = d.compile(ctx, span, path.Path)
	}

	span.SetAttribute("outcome", resp.Outcome.String())
	if resp.IsFailure() {
		span.SetAttribute("failure", resp.Failure.String())
	} else {
		span.SetAttribute("mime_type", resp.MimeType)
	}
	return resp
}

func (d *Dispatcher) readBypass(path string) domain.Response {
	data, err := d.readFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NotFoundResponse()
		}
		d.logger.Error(zerr.With(zerr.Wrap(err, domain.ErrSourceReadFailed.Error()), "path", path))
		return domain.TransportFailureResponse()
	}
	return domain.ContentResponse(domain.OutcomeBypassContent, data, domain.MimeTypeFor(path))
}

func (d *Dispatcher) compile(ctx context.Context, span ports.Span, path string) domain.Response {
	artifact, err := d.host.Compile(ctx, path)
	if err != nil {
		if IsNotExist(err) {
			return domain.NotFoundResponse()
		}
		span.RecordError(err)
		content := CompileErrorContent(path, err)
		_, _ = span.Write(content)
		return domain.ContentResponse(domain.OutcomeCompileErrorContent, content, domain.DefaultMimeType)
	}

	code := artifact.Code
	if domain.IsHTMLPath(path) {
		code = []byte(bootstrap.Inject(string(code), d.marker))
	}
	return domain.ContentResponse(domain.OutcomeContent, code, artifact.MimeType)
}

// IsNotExist reports whether err means the source is absent rather than broken.
func IsNotExist(err error) bool {
	return errors.Is(err, fs.ErrNotExist) || errors.Is(err, domain.ErrSourceNotFound)
}

// CompileErrorContent renders a compile failure as the plain-text body shown in place of the resource.
func CompileErrorContent(path string, err error) []byte {
	return fmt.Appendf(nil, "Failed to compile %s: %s\n%+v\n", path, err.Error(), err)
}
