package injector

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/websearch-mcp/internal/conf"
	"github.com/lk2023060901/websearch-mcp/internal/pkg/logger"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/provider"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

func testConfig() *conf.Config {
	return &conf.Config{
		Server: conf.ServerConfig{Host: "127.0.0.1", Port: 8080, GRPCPort: 9090},
		Search: conf.SearchConfig{
			DefaultEngine: "Bing",
			Bing:          conf.ProviderConfig{Endpoint: provider.BingAPIHost, APIKey: "bing-key"},
			Google:        conf.ProviderConfig{Endpoint: provider.GoogleAPIHost, APIKey: "google-key"},
			Baidu:         conf.ProviderConfig{Endpoint: provider.BaiduAPIHost},
			News:          conf.ProviderConfig{Endpoint: provider.NewsAPIHost},
		},
	}
}

func TestInitializeApp(t *testing.T) {
	app, err := InitializeApp(testConfig(), logger.Nop())
	require.NoError(t, err)

	assert.NotNil(t, app.MCPServer)
	assert.NotNil(t, app.HTTPServer)
	assert.NotNil(t, app.GRPCServer)

	assert.Equal(t, types.EngineBing, app.Settings.DefaultEngine)
	// google needs both a key and an engine id
	assert.Equal(t, types.APIKeysView{Bing: true, Google: false, News: false}, app.Settings.Keys)
}

func TestInitializeApp_InvalidDefaultEngine(t *testing.T) {
	cfg := testConfig()
	cfg.Search.DefaultEngine = "yahoo"

	app, err := InitializeApp(cfg, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, types.EngineGoogle, app.Settings.DefaultEngine)
}

func TestInitializeApp_MissingEndpoint(t *testing.T) {
	cfg := testConfig()
	cfg.Search.News.Endpoint = ""

	_, err := InitializeApp(cfg, logger.Nop())
	assert.ErrorIs(t, err, types.ErrInvalidAPIHost)
}
