package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/lk2023060901/websearch-mcp/internal/conf"
	"github.com/lk2023060901/websearch-mcp/internal/pkg/logger"
	"github.com/lk2023060901/websearch-mcp/internal/pkg/response"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/service"
)

// HTTPServer exposes the search operations as a JSON gateway
type HTTPServer struct {
	server *http.Server
	logger *logger.Logger
}

func NewHTTPServer(
	config *conf.Config,
	log *logger.Logger,
	searchService *service.SearchService,
) *HTTPServer {
	gin.SetMode(gin.ReleaseMode)

	router := gin.New()
	router.Use(logger.GinRecovery(log))
	router.Use(logger.GinLoggerWithConfig(log, logger.MiddlewareOptions{
		SkipPaths: []string{"/health"},
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"time":   time.Now().Format(time.RFC3339),
		})
	})

	api := router.Group("/api/v1")
	searchService.RegisterRoutes(api)

	router.NoRoute(func(c *gin.Context) {
		response.NotFound(c, "route not found: "+c.Request.URL.Path)
	})

	return &HTTPServer{
		server: &http.Server{
			Addr:              config.Server.Address(),
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: log,
	}
}

// Handler returns the router
func (s *HTTPServer) Handler() http.Handler {
	return s.server.Handler
}

func (s *HTTPServer) Start() error {
	s.logger.Info("starting HTTP server", zap.String("addr", s.server.Addr))

	if err := s.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}

	return nil
}

func (s *HTTPServer) Stop(ctx context.Context) error {
	s.logger.Info("stopping HTTP server")
	return s.server.Shutdown(ctx)
}
