package logger

import (
	"context"
	"path"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// requestIDMetadataKey is the incoming metadata key carrying a caller-supplied request id
const requestIDMetadataKey = "x-request-id"

// GRPCInterceptorOptions configures the gRPC interceptors
type GRPCInterceptorOptions struct {
	// SkipMethods are not logged at all
	SkipMethods []string
	// QuietMethods log successful calls at debug level, e.g. health probes
	QuietMethods []string
}

type methodFilter struct {
	skip  map[string]bool
	quiet map[string]bool
}

func newMethodFilter(opts GRPCInterceptorOptions) methodFilter {
	f := methodFilter{skip: map[string]bool{}, quiet: map[string]bool{}}
	for _, m := range opts.SkipMethods {
		f.skip[m] = true
	}
	for _, m := range opts.QuietMethods {
		f.quiet[m] = true
	}
	return f
}

// level picks the log level for a finished call
func (f methodFilter) level(method string, code codes.Code) zapcore.Level {
	switch code {
	case codes.OK:
		if f.quiet[method] {
			return zapcore.DebugLevel
		}
		return zapcore.InfoLevel
	case codes.Canceled, codes.DeadlineExceeded, codes.NotFound:
		return zapcore.WarnLevel
	default:
		return zapcore.ErrorLevel
	}
}

func UnaryServerInterceptor(logger *Logger) grpc.UnaryServerInterceptor {
	return UnaryServerInterceptorWithConfig(logger, GRPCInterceptorOptions{})
}

// UnaryServerInterceptorWithConfig tags each unary call with a request id and logs its outcome
func UnaryServerInterceptorWithConfig(logger *Logger, opts GRPCInterceptorOptions) grpc.UnaryServerInterceptor {
	filter := newMethodFilter(opts)

	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		if filter.skip[info.FullMethod] {
			return handler(ctx, req)
		}

		requestID := requestIDFrom(ctx)
		start := time.Now()
		resp, err := handler(WithRequestID(ctx, requestID), req)

		logCall(logger, filter, "gRPC call", info.FullMethod, requestID, start, err)
		return resp, err
	}
}

func StreamServerInterceptor(logger *Logger) grpc.StreamServerInterceptor {
	return StreamServerInterceptorWithConfig(logger, GRPCInterceptorOptions{})
}

// StreamServerInterceptorWithConfig logs stream lifetimes. Cancellation by the
// client is the normal end of a watch stream and is not treated as a failure.
func StreamServerInterceptorWithConfig(logger *Logger, opts GRPCInterceptorOptions) grpc.StreamServerInterceptor {
	filter := newMethodFilter(opts)

	return func(srv interface{}, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
		if filter.skip[info.FullMethod] {
			return handler(srv, ss)
		}

		ctx := ss.Context()
		requestID := requestIDFrom(ctx)
		start := time.Now()
		err := handler(srv, &wrappedServerStream{ServerStream: ss, ctx: WithRequestID(ctx, requestID)})

		logged := err
		if status.Code(err) == codes.Canceled {
			logged = nil
		}
		logCall(logger, filter, "gRPC stream", info.FullMethod, requestID, start, logged)
		return err
	}
}

func logCall(logger *Logger, filter methodFilter, msg, method, requestID string, start time.Time, err error) {
	st, _ := status.FromError(err)
	fields := []zap.Field{
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("service", path.Dir(method)[1:]),
		zap.String("rpc", path.Base(method)),
		zap.Duration("latency", time.Since(start)),
		zap.String("code", st.Code().String()),
	}
	if err != nil {
		fields = append(fields, zap.String("message", st.Message()))
	}

	if ce := logger.Check(filter.level(method, st.Code()), msg); ce != nil {
		ce.Write(fields...)
	}
}

// requestIDFrom returns the request id already on the context, one supplied in
// incoming metadata, or a fresh one.
func requestIDFrom(ctx context.Context) string {
	if requestID := GetRequestID(ctx); requestID != "" {
		return requestID
	}
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		if values := md.Get(requestIDMetadataKey); len(values) > 0 && values[0] != "" {
			return values[0]
		}
	}
	return uuid.New().String()
}

type wrappedServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (w *wrappedServerStream) Context() context.Context {
	return w.ctx
}

// RecoveryInterceptor turns handler panics into codes.Internal
func RecoveryInterceptor(logger *Logger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (resp interface{}, err error) {
		defer func() {
			if r := recover(); r != nil {
				logger.WithContext(ctx).Error("gRPC panic recovered",
					zap.String("method", info.FullMethod),
					zap.Any("panic", r),
					zap.Stack("stacktrace"),
				)
				err = status.Errorf(codes.Internal, "internal server error: %v", r)
			}
		}()

		return handler(ctx, req)
	}
}
