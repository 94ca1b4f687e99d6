package types

import "strings"

// EngineID identifies a search provider
type EngineID string

const (
	EngineBing    EngineID = "bing"
	EngineGoogle  EngineID = "google"
	EngineBaidu   EngineID = "baidu"
	EngineNewsAPI EngineID = "newsapi"
)

// DefaultEngine is used when no valid default engine is configured
const DefaultEngine = EngineGoogle

// FallbackEngine is the terminal fallback for the web engines
const FallbackEngine = EngineBaidu

// WebEngines lists the engines accepted by web_search, in display order
var WebEngines = []EngineID{EngineBing, EngineGoogle, EngineBaidu}

// Label returns the display name reported in the response envelope
func (e EngineID) Label() string {
	switch e {
	case EngineBing:
		return "Bing"
	case EngineGoogle:
		return "Google"
	case EngineBaidu:
		return "Baidu"
	case EngineNewsAPI:
		return "NewsAPI"
	default:
		return string(e)
	}
}

// IsWebEngine reports whether e can be requested through web_search
func (e EngineID) IsWebEngine() bool {
	for _, id := range WebEngines {
		if id == e {
			return true
		}
	}
	return false
}

// ParseEngine matches a web engine name case-insensitively
func ParseEngine(name string) (EngineID, bool) {
	id := EngineID(strings.ToLower(strings.TrimSpace(name)))
	if !id.IsWebEngine() {
		return "", false
	}
	return id, true
}

// WebEngineNames returns the supported web engine names
func WebEngineNames() []string {
	names := make([]string, len(WebEngines))
	for i, id := range WebEngines {
		names[i] = string(id)
	}
	return names
}
