package injector

import (
	"go.uber.org/zap"

	"github.com/lk2023060901/websearch-mcp/internal/conf"
	"github.com/lk2023060901/websearch-mcp/internal/pkg/logger"
	"github.com/lk2023060901/websearch-mcp/internal/server"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/biz"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/provider"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// App encapsulates all application dependencies
type App struct {
	Config     *conf.Config
	Logger     *logger.Logger
	Settings   biz.Settings
	MCPServer  *server.MCPServer
	HTTPServer *server.HTTPServer
	GRPCServer *server.GRPCServer
}

func newApp(
	config *conf.Config,
	log *logger.Logger,
	settings biz.Settings,
	mcpServer *server.MCPServer,
	httpServer *server.HTTPServer,
	grpcServer *server.GRPCServer,
) *App {
	return &App{
		Config:     config,
		Logger:     log,
		Settings:   settings,
		MCPServer:  mcpServer,
		HTTPServer: httpServer,
		GRPCServer: grpcServer,
	}
}

func provideZapLogger(log *logger.Logger) *zap.Logger {
	return log.Logger
}

// provideSettings resolves the default engine once the logger exists so an
// invalid value can be reported.
func provideSettings(config *conf.Config, log *zap.Logger) biz.Settings {
	engine := conf.ResolveDefaultEngine(config.Search.DefaultEngine, log)
	return biz.NewSettings(engine, config.Search.ProviderConfigs())
}

func provideProviders(config *conf.Config, log *zap.Logger) (map[types.EngineID]provider.Provider, error) {
	providers, err := provider.NewFactory().CreateAll(config.Search.ProviderConfigs())
	if err != nil {
		return nil, err
	}

	for _, p := range providers {
		if !p.HasCredentials() {
			log.Info("provider has no API key configured", zap.String("provider", p.GetName()))
		}
	}
	return providers, nil
}
