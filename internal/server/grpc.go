package server

import (
	"fmt"
	"net"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"github.com/lk2023060901/websearch-mcp/internal/conf"
	"github.com/lk2023060901/websearch-mcp/internal/pkg/logger"
)

// HealthService is the service name reported by the gRPC health server
const HealthService = "websearch.v1.Search"

// GRPCServer gRPC 健康检查服务器
type GRPCServer struct {
	config     *conf.Config
	logger     *logger.Logger
	grpcServer *grpc.Server
	health     *health.Server
}

// NewGRPCServer 创建 gRPC 服务器
func NewGRPCServer(config *conf.Config, log *logger.Logger) *GRPCServer {
	// 健康探针只在 debug 级别记录成功调用
	logOpts := logger.GRPCInterceptorOptions{
		QuietMethods: []string{
			healthpb.Health_Check_FullMethodName,
			healthpb.Health_Watch_FullMethodName,
		},
	}
	grpcServer := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			logger.RecoveryInterceptor(log),
			logger.UnaryServerInterceptorWithConfig(log, logOpts),
		),
		grpc.ChainStreamInterceptor(
			logger.StreamServerInterceptorWithConfig(log, logOpts),
		),
	)

	healthServer := health.NewServer()
	healthServer.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	healthServer.SetServingStatus(HealthService, healthpb.HealthCheckResponse_SERVING)
	healthpb.RegisterHealthServer(grpcServer, healthServer)

	// 启用反射（用于 grpcurl 等工具）
	reflection.Register(grpcServer)

	return &GRPCServer{
		config:     config,
		logger:     log,
		grpcServer: grpcServer,
		health:     healthServer,
	}
}

// Start 启动 gRPC 服务器
func (s *GRPCServer) Start() error {
	addr := s.config.Server.GRPCAddress()

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen: %w", err)
	}

	return s.Serve(lis)
}

// Serve 在给定的 listener 上提供服务
func (s *GRPCServer) Serve(lis net.Listener) error {
	s.logger.Info("starting gRPC server", zap.String("addr", lis.Addr().String()))

	if err := s.grpcServer.Serve(lis); err != nil {
		return fmt.Errorf("failed to serve: %w", err)
	}

	return nil
}

// Stop 停止 gRPC 服务器
func (s *GRPCServer) Stop() {
	s.logger.Info("stopping gRPC server")
	s.health.Shutdown()
	s.grpcServer.GracefulStop()
}
