// Package handshake publishes the host process's configuration to a second process
// over a gRPC service on a Unix domain socket, and starts that second process.
package handshake

import (
	"context"

	"go.trai.ch/sourcehook/internal/core/domain"
	"go.trai.ch/zerr"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully-qualified name of the handshake service.
const ServiceName = "sourcehook.handshake.v1.HandshakeService"

const (
	getHostConfigMethod = "/" + ServiceName + "/GetHostConfig"
	pingMethod          = "/" + ServiceName + "/Ping"
)

// Field names of the host configuration message.
const (
	fieldRootCacheDir = "root_cache_dir"
	fieldReadOnly     = "read_only"
)

// service is the server API of the handshake service.
type service interface {
	GetHostConfig(ctx context.Context, in *emptypb.Empty) (*structpb.Struct, error)
	Ping(ctx context.Context, in *emptypb.Empty) (*emptypb.Empty, error)
}

// serviceDesc describes the handshake service. Its messages are protobuf well-known
// types, so the descriptor needs no generated code.
var serviceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*service)(nil),
	Methods: []grpc.MethodDesc{
		{MethodName: "GetHostConfig", Handler: getHostConfigHandler},
		{MethodName: "Ping", Handler: pingHandler},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "sourcehook/handshake/v1/handshake.proto",
}

//nolint:revive // Signature is fixed by grpc.MethodHandler.
func getHostConfigHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(service).GetHostConfig(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: getHostConfigMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(service).GetHostConfig(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

//nolint:revive // Signature is fixed by grpc.MethodHandler.
func pingHandler(
	srv any,
	ctx context.Context,
	dec func(any) error,
	interceptor grpc.UnaryServerInterceptor,
) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(service).Ping(ctx, in)
	}
	info := &grpc.UnaryServerInfo{Server: srv, FullMethod: pingMethod}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(service).Ping(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

// encodeHostConfig converts the handshake message to its wire form.
func encodeHostConfig(cfg domain.HostConfig) (*structpb.Struct, error) {
	msg, err := structpb.NewStruct(map[string]any{
		fieldRootCacheDir: cfg.RootCacheDir,
		fieldReadOnly:     cfg.ReadOnly,
	})
	if err != nil {
		return nil, zerr.Wrap(err, "failed to encode host configuration")
	}
	return msg, nil
}

// decodeHostConfig reads the handshake message from its wire form.
// Absent fields decode to their zero values.
func decodeHostConfig(msg *structpb.Struct) *domain.HostConfig {
	fields := msg.GetFields()
	return &domain.HostConfig{
		RootCacheDir: fields[fieldRootCacheDir].GetStringValue(),
		ReadOnly:     fields[fieldReadOnly].GetBoolValue(),
	}
}
