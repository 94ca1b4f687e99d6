//go:build wireinject
// +build wireinject

package injector

import (
	"github.com/google/wire"

	"github.com/lk2023060901/websearch-mcp/internal/conf"
	"github.com/lk2023060901/websearch-mcp/internal/pkg/logger"
	"github.com/lk2023060901/websearch-mcp/internal/server"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/biz"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/service"
)

// ProviderSet is the Wire provider set for all dependencies
var ProviderSet = wire.NewSet(
	// Providers
	providerProviderSet,

	// Use cases
	useCaseProviderSet,

	// Services
	serviceProviderSet,

	// Servers
	serverProviderSet,
)

var providerProviderSet = wire.NewSet(
	provideZapLogger,
	provideSettings,
	provideProviders,
)

var useCaseProviderSet = wire.NewSet(
	biz.NewSearchUseCase,
	biz.NewPageUseCase,
)

var serviceProviderSet = wire.NewSet(
	service.NewSearchService,
)

var serverProviderSet = wire.NewSet(
	server.NewMCPServer,
	server.NewHTTPServer,
	server.NewGRPCServer,
)

// InitializeApp initializes the application with Wire
func InitializeApp(config *conf.Config, log *logger.Logger) (*App, error) {
	wire.Build(ProviderSet, newApp)
	return nil, nil
}
