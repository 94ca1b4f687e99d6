package biz

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lk2023060901/websearch-mcp/internal/pkg/logger"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/provider"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// NewsQuerySuffix biases a general web search towards news
const NewsQuerySuffix = " news 新闻"

// fallbacks is the static cascade applied when a provider fails
var fallbacks = map[types.EngineID]types.EngineID{
	types.EngineBing:   types.EngineBaidu,
	types.EngineGoogle: types.EngineBaidu,
}

// SearchParams is a web_search request as received from a caller
type SearchParams struct {
	Query      string
	Engine     string // empty selects the default engine
	MaxResults int
	Language   string
}

// NewsParams is a search_news request as received from a caller
type NewsParams struct {
	Query      string
	MaxResults int
	Language   string
}

// SearchUseCase selects providers and applies the fallback cascade.
// Every method returns an envelope; provider errors never escape.
type SearchUseCase struct {
	settings  Settings
	providers map[types.EngineID]provider.Provider
	logger    *zap.Logger
}

// NewSearchUseCase creates a new SearchUseCase
func NewSearchUseCase(settings Settings, providers map[types.EngineID]provider.Provider, logger *zap.Logger) *SearchUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchUseCase{
		settings:  settings,
		providers: providers,
		logger:    logger,
	}
}

// ClampMaxResults clips n into [MinResults, MaxResults]
func ClampMaxResults(n int) int {
	return min(max(n, types.MinResults), types.MaxResults)
}

func normalizeLanguage(lang string) string {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return types.DefaultLanguage
	}
	return lang
}

// Settings returns the immutable settings the use case was built with
func (uc *SearchUseCase) Settings() Settings {
	return uc.settings
}

// Search runs a web search on the requested engine, falling back per the static
// cascade when that engine is unusable.
func (uc *SearchUseCase) Search(ctx context.Context, params SearchParams) *types.SearchResponse {
	log := uc.log(ctx)

	if strings.TrimSpace(params.Query) == "" {
		return types.NewFailureResponse(types.NewEmptyQueryError())
	}

	engine := uc.settings.DefaultEngine
	if strings.TrimSpace(params.Engine) != "" {
		id, ok := types.ParseEngine(params.Engine)
		if !ok {
			log.Warn("unsupported search engine requested", zap.String("engine", params.Engine))
			return types.NewFailureResponse(types.NewUnsupportedEngineError(params.Engine))
		}
		engine = id
	}

	req := &types.SearchRequest{
		Query:      params.Query,
		MaxResults: ClampMaxResults(params.MaxResults),
		Language:   normalizeLanguage(params.Language),
	}

	log.Info("web search",
		zap.String("engine", string(engine)),
		zap.String("query", req.Query),
		zap.Int("max_results", req.MaxResults),
	)
	return uc.cascade(ctx, engine, req)
}

// cascade calls engine and walks the fallback table until a provider answers or
// one without a fallback fails.
func (uc *SearchUseCase) cascade(ctx context.Context, engine types.EngineID, req *types.SearchRequest) *types.SearchResponse {
	log := uc.log(ctx)

	for {
		resp, err := uc.call(ctx, engine, req)
		if err == nil {
			log.Info("search completed",
				zap.String("engine", resp.Engine),
				zap.Int("results", len(resp.Results)),
			)
			return resp
		}

		next, ok := fallbacks[engine]
		if !ok {
			log.Error("search failed", zap.String("engine", string(engine)), zap.Error(err))
			return types.NewFailureResponse(fmt.Errorf("%s search failed: %w", engine.Label(), err))
		}

		if types.KindOf(err) == types.FailureMissingCredential {
			log.Warn("search credentials not configured, falling back",
				zap.String("engine", string(engine)),
				zap.String("fallback", string(next)),
			)
		} else {
			log.Error("search failed, falling back",
				zap.String("engine", string(engine)),
				zap.String("fallback", string(next)),
				zap.String("kind", string(types.KindOf(err))),
				zap.Error(err),
			)
		}
		engine = next
	}
}

func (uc *SearchUseCase) call(ctx context.Context, engine types.EngineID, req *types.SearchRequest) (*types.SearchResponse, error) {
	p, ok := uc.providers[engine]
	if !ok {
		return nil, types.NewProviderError(engine, types.FailureMissingCredential, "provider not configured", types.ErrProviderNotFound)
	}
	return p.Search(ctx, req)
}

// SearchNews queries the news API when it is configured and otherwise degrades to
// a news-biased web search on the default engine.
func (uc *SearchUseCase) SearchNews(ctx context.Context, params NewsParams) *types.SearchResponse {
	log := uc.log(ctx)

	if strings.TrimSpace(params.Query) == "" {
		return types.NewFailureResponse(types.NewEmptyQueryError())
	}

	news, ok := uc.providers[types.EngineNewsAPI]
	if !ok || !news.HasCredentials() {
		log.Warn("news API key not configured, using web search",
			zap.String("engine", string(uc.settings.DefaultEngine)),
		)
		return uc.Search(ctx, SearchParams{
			Query:      params.Query + NewsQuerySuffix,
			MaxResults: params.MaxResults,
			Language:   params.Language,
		})
	}

	req := &types.SearchRequest{
		Query:      params.Query,
		MaxResults: ClampMaxResults(params.MaxResults),
		Language:   normalizeLanguage(params.Language),
	}

	log.Info("news search", zap.String("query", req.Query), zap.Int("max_results", req.MaxResults))
	return uc.cascade(ctx, types.EngineNewsAPI, req)
}

// GetSearchConfig reports the active configuration without exposing credentials
func (uc *SearchUseCase) GetSearchConfig(ctx context.Context) *types.SearchConfigResponse {
	uc.log(ctx).Debug("search config requested")
	return &types.SearchConfigResponse{
		Success: true,
		Config:  uc.settings.View(),
	}
}

func (uc *SearchUseCase) log(ctx context.Context) *zap.Logger {
	if id := requestID(ctx); id != "" {
		return uc.logger.With(zap.String("request_id", id))
	}
	return uc.logger
}

func requestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	return logger.GetRequestID(ctx)
}
