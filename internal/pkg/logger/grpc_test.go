package logger

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

type mockServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (m *mockServerStream) Context() context.Context {
	return m.ctx
}

func TestUnaryServerInterceptor(t *testing.T) {
	tests := []struct {
		name      string
		ctx       context.Context
		handler   grpc.UnaryHandler
		wantCode  codes.Code
		wantLevel zapcore.Level
		wantID    string
	}{
		{
			name: "success",
			ctx:  context.Background(),
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				return "ok", nil
			},
			wantCode:  codes.OK,
			wantLevel: zapcore.InfoLevel,
		},
		{
			name: "request id from metadata",
			ctx: metadata.NewIncomingContext(context.Background(), metadata.MD{
				"x-request-id": []string{"test-request-id"},
			}),
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				return GetRequestID(ctx), nil
			},
			wantCode:  codes.OK,
			wantLevel: zapcore.InfoLevel,
			wantID:    "test-request-id",
		},
		{
			name: "not found",
			ctx:  context.Background(),
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				return nil, status.Error(codes.NotFound, "unknown service")
			},
			wantCode:  codes.NotFound,
			wantLevel: zapcore.WarnLevel,
		},
		{
			name: "internal error",
			ctx:  context.Background(),
			handler: func(ctx context.Context, req interface{}) (interface{}, error) {
				return nil, status.Error(codes.Internal, "boom")
			},
			wantCode:  codes.Internal,
			wantLevel: zapcore.ErrorLevel,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, logs := newObserved(zapcore.DebugLevel)
			interceptor := UnaryServerInterceptor(logger)
			info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

			resp, err := interceptor(tt.ctx, nil, info, tt.handler)
			assert.Equal(t, tt.wantCode, status.Code(err))

			require.Equal(t, 1, logs.Len())
			entry := logs.All()[0]
			assert.Equal(t, tt.wantLevel, entry.Level)
			assert.Equal(t, "grpc.health.v1.Health", entry.ContextMap()["service"])
			assert.Equal(t, "Check", entry.ContextMap()["rpc"])
			assert.NotEmpty(t, entry.ContextMap()["request_id"])
			if tt.wantID != "" {
				assert.Equal(t, tt.wantID, resp)
				assert.Equal(t, tt.wantID, entry.ContextMap()["request_id"])
			}
		})
	}
}

func TestUnaryServerInterceptor_SkipMethods(t *testing.T) {
	logger, logs := newObserved(zapcore.DebugLevel)
	interceptor := UnaryServerInterceptorWithConfig(logger, GRPCInterceptorOptions{
		SkipMethods: []string{"/grpc.health.v1.Health/Check"},
	})

	called := false
	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			called = true
			return nil, nil
		})
	require.NoError(t, err)
	assert.True(t, called)
	assert.Zero(t, logs.Len())
}

func TestUnaryServerInterceptor_QuietMethods(t *testing.T) {
	logger, logs := newObserved(zapcore.DebugLevel)
	interceptor := UnaryServerInterceptorWithConfig(logger, GRPCInterceptorOptions{
		QuietMethods: []string{"/grpc.health.v1.Health/Check"},
	})
	info := &grpc.UnaryServerInfo{FullMethod: "/grpc.health.v1.Health/Check"}

	_, err := interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, nil
	})
	require.NoError(t, err)

	_, err = interceptor(context.Background(), nil, info, func(ctx context.Context, req interface{}) (interface{}, error) {
		return nil, status.Error(codes.Unavailable, "draining")
	})
	require.Error(t, err)

	entries := logs.All()
	require.Len(t, entries, 2)
	assert.Equal(t, zapcore.DebugLevel, entries[0].Level)
	assert.Equal(t, zapcore.ErrorLevel, entries[1].Level)
	assert.Equal(t, "draining", entries[1].ContextMap()["message"])
}

func TestStreamServerInterceptor_ClientCancel(t *testing.T) {
	logger, logs := newObserved(zapcore.DebugLevel)
	interceptor := StreamServerInterceptor(logger)

	err := interceptor(nil, &mockServerStream{ctx: context.Background()},
		&grpc.StreamServerInfo{FullMethod: "/grpc.health.v1.Health/Watch", IsServerStream: true},
		func(srv interface{}, stream grpc.ServerStream) error {
			return status.Error(codes.Canceled, "context canceled")
		})

	assert.Equal(t, codes.Canceled, status.Code(err))
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, zapcore.InfoLevel, logs.All()[0].Level)
	assert.Equal(t, "OK", logs.All()[0].ContextMap()["code"])
}

func TestStreamServerInterceptor(t *testing.T) {
	logger, logs := newObserved(zapcore.DebugLevel)
	interceptor := StreamServerInterceptor(logger)

	ss := &mockServerStream{ctx: context.Background()}
	var seen string
	err := interceptor(nil, ss, &grpc.StreamServerInfo{FullMethod: "/grpc.health.v1.Health/Watch", IsServerStream: true},
		func(srv interface{}, stream grpc.ServerStream) error {
			seen = GetRequestID(stream.Context())
			return nil
		})

	require.NoError(t, err)
	assert.NotEmpty(t, seen)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, seen, logs.All()[0].ContextMap()["request_id"])
}

func TestRecoveryInterceptor(t *testing.T) {
	logger, logs := newObserved(zapcore.DebugLevel)
	interceptor := RecoveryInterceptor(logger)

	_, err := interceptor(context.Background(), nil, &grpc.UnaryServerInfo{FullMethod: "/test.Service/Panic"},
		func(ctx context.Context, req interface{}) (interface{}, error) {
			panic("test panic")
		})

	assert.Equal(t, codes.Internal, status.Code(err))
	assert.Equal(t, 1, logs.FilterMessage("gRPC panic recovered").Len())
}
