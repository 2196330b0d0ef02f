package handshake

import (
	"context"
	"os"
	"time"

	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// DefaultTimeout bounds how long a request waits for the host process to come up.
const DefaultTimeout = 5 * time.Second

// Client implements ports.HostConfigSource over the handshake service.
type Client struct {
	conn    *grpc.ClientConn
	timeout time.Duration
}

// Dial connects to the handshake service on the Unix socket at socketPath.
// Note: grpc.NewClient returns immediately; actual connection happens lazily on first RPC.
func Dial(socketPath string) (*Client, error) {
	conn, err := grpc.NewClient("unix://"+socketPath,
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, "handshake client creation failed"), "socket", socketPath)
	}
	return &Client{conn: conn, timeout: DefaultTimeout}, nil
}

// DialFromEnv connects to the socket named by the handshake environment variable.
func DialFromEnv() (*Client, error) {
	socketPath := os.Getenv(domain.HandshakeSocketEnv)
	if socketPath == "" {
		return nil, zerr.With(domain.ErrHandshakeSocketUnset, "env", domain.HandshakeSocketEnv)
	}
	return Dial(socketPath)
}

// HostConfig implements ports.HostConfigSource.
// The request waits for the host to start listening, up to the client timeout.
func (c *Client) HostConfig(ctx context.Context) (*domain.HostConfig, error) {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	out := new(structpb.Struct)
	if err := c.conn.Invoke(ctx, getHostConfigMethod, &emptypb.Empty{}, out, grpc.WaitForReady(true)); err != nil {
		return nil, err
	}
	return decodeHostConfig(out), nil
}

// Ping checks that the host process answers.
func (c *Client) Ping(ctx context.Context) error {
	return c.conn.Invoke(ctx, pingMethod, &emptypb.Empty{}, new(emptypb.Empty))
}

// Close releases the connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
