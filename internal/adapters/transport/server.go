// Package transport exposes the interceptor over HTTP on a loopback address.
package transport

import (
	"context"
	"errors"
	"net"
	"net/http"
	"net/url"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/zerr"
)

const shutdownTimeout = 5 * time.Second

// Server answers resource requests by rebuilding each request path as a file:// URL
// and handing it to the interceptor.
type Server struct {
	interceptor ports.Interceptor
	logger      ports.Logger
	router      chi.Router
	roots       []string
	goos        string
}

// Option configures a Server.
type Option func(*Server)

// WithRoots confines served resources to the trees rooted at the given absolute paths.
// Requests for anything else answer as not found.
func WithRoots(roots ...string) Option {
	return func(s *Server) {
		for _, r := range roots {
			s.roots = append(s.roots, filepath.Clean(r))
		}
	}
}

// NewServer creates a Server backed by interceptor.
func NewServer(interceptor ports.Interceptor, logger ports.Logger, opts ...Option) *Server {
	s := &Server{
		interceptor: interceptor,
		logger:      logger,
		goos:        runtime.GOOS,
	}
	for _, opt := range opts {
		opt(s)
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(loopbackOnly)
	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("ok"))
	})
	r.Get("/*", s.serveResource)
	r.Head("/*", s.serveResource)
	s.router = r

	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Listen binds the TCP address addr for Serve.
func Listen(ctx context.Context, addr string) (net.Listener, error) {
	var lc net.ListenConfig
	lis, err := lc.Listen(ctx, "tcp", addr)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrTransportServeFailed.Error()), "listen", addr)
	}
	return lis, nil
}

// Serve serves on lis until ctx is canceled. The listener is closed on return.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return ctx
		},
	}

	s.logger.Info("serving resources on http://" + lis.Addr().String())

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return zerr.Wrap(err, domain.ErrTransportServeFailed.Error())
		}
		return nil
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return zerr.Wrap(err, domain.ErrTransportServeFailed.Error())
	}
}

// loopbackOnly rejects requests whose Host header does not name a loopback address.
func loopbackOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !IsLoopbackHost(r.Host) {
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// IsLoopbackHost reports whether hostport names localhost or a loopback IP.
func IsLoopbackHost(hostport string) bool {
	host := hostport
	if h, _, err := net.SplitHostPort(hostport); err == nil {
		host = h
	}
	host = strings.Trim(host, "[]")
	if strings.EqualFold(host, "localhost") {
		return true
	}
	ip := net.ParseIP(host)
	return ip != nil && ip.IsLoopback()
}

// confined reports whether escapedPath lies under one of the configured roots.
func (s *Server) confined(escapedPath string) bool {
	if len(s.roots) == 0 {
		return true
	}
	p, err := url.PathUnescape(escapedPath)
	if err != nil {
		return false
	}
	if s.goos == "windows" {
		p = strings.TrimPrefix(p, "/")
	}
	p = filepath.Clean(filepath.FromSlash(p))
	for _, root := range s.roots {
		if p == root || strings.HasPrefix(p, strings.TrimSuffix(root, string(filepath.Separator))+string(filepath.Separator)) {
			return true
		}
	}
	return false
}

func (s *Server) serveResource(w http.ResponseWriter, r *http.Request) {
	if !s.confined(r.URL.EscapedPath()) {
		writeResponse(w, domain.NotFoundResponse())
		return
	}

	req := domain.ResourceRequest{URL: "file://" + r.URL.EscapedPath()}

	responses := make(chan domain.Response, 1)
	s.interceptor.Intercept(r.Context(), req, func(resp domain.Response) {
		responses <- resp
	})

	select {
	case resp := <-responses:
		writeResponse(w, resp)
	case <-r.Context().Done():
	}
}

// OutcomeHeader names the response header carrying the dispatch outcome.
const OutcomeHeader = "X-Sourcehook-Outcome"

func writeResponse(w http.ResponseWriter, resp domain.Response) {
	w.Header().Set(OutcomeHeader, resp.Outcome.String())
	if resp.IsFailure() {
		w.Header().Set("X-Net-Error", strconv.Itoa(int(resp.Failure)))
		w.WriteHeader(StatusFor(resp))
		return
	}

	w.Header().Set("Content-Type", resp.MimeType)
	w.Header().Set("Content-Length", strconv.Itoa(len(resp.Data)))
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(resp.Data)
}

// StatusFor maps a response onto an HTTP status code.
func StatusFor(resp domain.Response) int {
	switch {
	case !resp.IsFailure():
		return http.StatusOK
	case resp.Failure == domain.NetFileNotFound:
		return http.StatusNotFound
	default:
		return http.StatusBadGateway
	}
}
