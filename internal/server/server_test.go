package server

import (
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"github.com/lk2023060901/websearch-mcp/internal/conf"
	"github.com/lk2023060901/websearch-mcp/internal/pkg/logger"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/biz"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/provider"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/service"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

func newObserved() (*logger.Logger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return &logger.Logger{Logger: zap.New(core)}, logs
}

// newSearchService wires a service with no providers: searches fail over to an
// absent Baidu and report that failure in the envelope.
func newSearchService(t *testing.T) *service.SearchService {
	t.Helper()
	settings := biz.Settings{
		DefaultEngine: types.EngineGoogle,
		Keys:          types.APIKeysView{Bing: true},
	}
	return service.NewSearchService(
		biz.NewSearchUseCase(settings, map[types.EngineID]provider.Provider{}, nil),
		biz.NewPageUseCase(nil),
		nil,
	)
}

func testConfig() *conf.Config {
	return &conf.Config{
		Server: conf.ServerConfig{Host: "127.0.0.1", Port: 0, GRPCPort: 0},
	}
}
