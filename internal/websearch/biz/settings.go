package biz

import (
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// Settings is the resolved search configuration. It is built once at startup and
// only read afterwards.
type Settings struct {
	DefaultEngine types.EngineID
	Keys          types.APIKeysView
}

// NewSettings derives the credential view from the provider configurations.
// defaultEngine must already be resolved to a web engine.
func NewSettings(defaultEngine types.EngineID, configs []*types.ProviderConfig) Settings {
	s := Settings{DefaultEngine: defaultEngine}
	if !defaultEngine.IsWebEngine() {
		s.DefaultEngine = types.DefaultEngine
	}

	for _, c := range configs {
		switch c.ID {
		case types.EngineBing:
			s.Keys.Bing = c.HasCredentials()
		case types.EngineGoogle:
			s.Keys.Google = c.HasCredentials()
		case types.EngineNewsAPI:
			s.Keys.News = c.HasCredentials()
		}
	}
	return s
}

// View renders the settings for get_search_config
func (s Settings) View() *types.SearchConfigView {
	return &types.SearchConfigView{
		DefaultSearchEngine: string(s.DefaultEngine),
		SupportedEngines:    types.WebEngineNames(),
		APIKeysConfigured:   s.Keys,
		FallbackEngine:      string(types.FallbackEngine),
	}
}
