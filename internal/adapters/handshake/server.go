package handshake

import (
	"context"
	"errors"
	"net"
	"os"
	"path/filepath"
	"time"

	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/sourcehook/internal/core/ports"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// livenessTimeout bounds the ping of an existing socket before it is replaced.
const livenessTimeout = 500 * time.Millisecond

// Server publishes one HostConfig over the handshake service.
type Server struct {
	config     domain.HostConfig
	socketPath string
	logger     ports.Logger
	grpcServer *grpc.Server
}

// NewServer creates a server that publishes cfg on the Unix socket at socketPath.
func NewServer(socketPath string, cfg domain.HostConfig, logger ports.Logger) *Server {
	s := &Server{
		config:     cfg,
		socketPath: socketPath,
		logger:     logger,
		grpcServer: grpc.NewServer(),
	}
	s.grpcServer.RegisterService(&serviceDesc, s)
	return s
}

// SocketPath returns the path of the socket the server listens on.
func (s *Server) SocketPath() string {
	return s.socketPath
}

// Listen creates the socket, replacing a stale one, and restricts it to the owner.
// A socket that still answers belongs to a running host and is left alone.
func (s *Server) Listen() (net.Listener, error) {
	dir := filepath.Dir(s.socketPath)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, s.serveError(err, "failed to create socket directory")
	}

	if s.hostAlive() {
		return nil, zerr.With(domain.ErrHostAlreadyRunning, "socket", s.socketPath)
	}

	if err := os.Remove(s.socketPath); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, s.serveError(err, "failed to remove stale socket")
	}

	lis, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return nil, s.serveError(err, "failed to listen on socket")
	}

	if err := os.Chmod(s.socketPath, domain.SocketPerm); err != nil {
		_ = lis.Close()
		return nil, s.serveError(err, "failed to set socket permissions")
	}
	return lis, nil
}

func (s *Server) hostAlive() bool {
	if _, err := os.Stat(s.socketPath); err != nil {
		return false
	}
	client, err := Dial(s.socketPath)
	if err != nil {
		return false
	}
	defer func() { _ = client.Close() }()

	ctx, cancel := context.WithTimeout(context.Background(), livenessTimeout)
	defer cancel()
	return client.Ping(ctx) == nil
}

// Serve answers handshake requests on lis until ctx is canceled.
// The socket file is removed on return.
func (s *Server) Serve(ctx context.Context, lis net.Listener) error {
	defer func() { _ = os.Remove(s.socketPath) }()

	s.logger.Debug("publishing host configuration on " + s.socketPath)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.grpcServer.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		s.grpcServer.GracefulStop()
		return nil
	case err := <-errCh:
		if err == nil || errors.Is(err, grpc.ErrServerStopped) {
			return nil
		}
		return s.serveError(err, "handshake server stopped")
	}
}

// GetHostConfig implements the GetHostConfig method of the handshake service.
func (s *Server) GetHostConfig(_ context.Context, _ *emptypb.Empty) (*structpb.Struct, error) {
	s.logger.Debug("handing host configuration to renderer")
	return encodeHostConfig(s.config)
}

// Ping implements the Ping method of the handshake service.
func (s *Server) Ping(_ context.Context, _ *emptypb.Empty) (*emptypb.Empty, error) {
	return &emptypb.Empty{}, nil
}

func (s *Server) serveError(err error, msg string) error {
	return zerr.With(zerr.Wrap(zerr.Wrap(err, msg), domain.ErrHandshakeServeFailed.Error()), "socket", s.socketPath)
}
