package provider

import (
	"fmt"
	"sync"

	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// Constructor builds a provider from its configuration
type Constructor func(*types.ProviderConfig) (Provider, error)

// Factory creates provider instances
type Factory struct {
	mu           sync.RWMutex
	constructors map[types.EngineID]Constructor
}

// NewFactory creates a new provider factory
func NewFactory() *Factory {
	f := &Factory{
		constructors: make(map[types.EngineID]Constructor),
	}

	// Register built-in providers
	f.Register(types.EngineBing, NewBingProvider)
	f.Register(types.EngineGoogle, NewGoogleProvider)
	f.Register(types.EngineBaidu, NewBaiduProvider)
	f.Register(types.EngineNewsAPI, NewNewsAPIProvider)

	return f
}

// Register registers a provider constructor
func (f *Factory) Register(id types.EngineID, constructor Constructor) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.constructors[id] = constructor
}

// Create creates a provider instance from configuration
func (f *Factory) Create(config *types.ProviderConfig) (Provider, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	f.mu.RLock()
	constructor, exists := f.constructors[config.ID]
	f.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("%w: %s", types.ErrProviderNotFound, config.ID)
	}

	return constructor(config)
}

// CreateAll builds the provider registry for every configuration
func (f *Factory) CreateAll(configs []*types.ProviderConfig) (map[types.EngineID]Provider, error) {
	providers := make(map[types.EngineID]Provider, len(configs))
	for _, cfg := range configs {
		p, err := f.Create(cfg)
		if err != nil {
			return nil, fmt.Errorf("create %s provider: %w", cfg.ID, err)
		}
		providers[cfg.ID] = p
	}
	return providers, nil
}

// ListProviders returns a list of all registered provider IDs
func (f *Factory) ListProviders() []types.EngineID {
	f.mu.RLock()
	defer f.mu.RUnlock()

	ids := make([]types.EngineID, 0, len(f.constructors))
	for id := range f.constructors {
		ids = append(ids, id)
	}
	return ids
}
