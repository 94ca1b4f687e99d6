package server

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"go.uber.org/zap"

	"github.com/lk2023060901/websearch-mcp/internal/pkg/logger"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/service"
)

// ServerName is the implementation name reported to MCP clients
const ServerName = "websearch"

// Version is reported to MCP clients and by --version
var Version = "1.0.0"

const instructions = "Web search tools backed by Bing, Google, Baidu and NewsAPI. " +
	"web_search falls back to Baidu when the requested engine has no API key or fails."

// MCPServer serves the search tools over stdin/stdout
type MCPServer struct {
	server *mcp.Server
	logger *logger.Logger
}

func NewMCPServer(searchService *service.SearchService, log *logger.Logger) *MCPServer {
	server := mcp.NewServer(&mcp.Implementation{
		Name:    ServerName,
		Version: Version,
	}, &mcp.ServerOptions{
		Instructions: instructions,
	})
	server.AddReceivingMiddleware(loggingMiddleware(log))
	searchService.RegisterTools(server)

	return &MCPServer{
		server: server,
		logger: log,
	}
}

// Server returns the underlying MCP server
func (s *MCPServer) Server() *mcp.Server {
	return s.server
}

// Run serves until ctx is cancelled or the client closes stdin
func (s *MCPServer) Run(ctx context.Context) error {
	s.logger.Info("starting MCP stdio server", zap.String("name", ServerName), zap.String("version", Version))
	err := s.server.Run(ctx, &mcp.StdioTransport{})
	s.logger.Info("MCP stdio server stopped")
	return err
}

// loggingMiddleware tags every incoming request with a request id and logs its outcome
func loggingMiddleware(log *logger.Logger) mcp.Middleware {
	return func(next mcp.MethodHandler) mcp.MethodHandler {
		return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
			requestID := uuid.New().String()
			ctx = logger.WithRequestID(ctx, requestID)

			fields := []zap.Field{
				zap.String("request_id", requestID),
				zap.String("method", method),
			}
			if call, ok := req.(*mcp.CallToolRequest); ok && call.Params != nil {
				fields = append(fields, zap.String("tool", call.Params.Name))
			}

			start := time.Now()
			result, err := next(ctx, method, req)
			fields = append(fields, zap.Duration("latency", time.Since(start)))

			if err != nil {
				log.Warn("MCP request failed", append(fields, zap.Error(err))...)
			} else {
				log.Debug("MCP request", fields...)
			}
			return result, err
		}
	}
}
