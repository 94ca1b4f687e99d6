package service

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/lk2023060901/websearch-mcp/internal/pkg/logger"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/biz"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// SearchService exposes the search and page use cases as MCP tools and HTTP routes
type SearchService struct {
	search *biz.SearchUseCase
	page   *biz.PageUseCase
	logger *zap.Logger
}

func NewSearchService(search *biz.SearchUseCase, page *biz.PageUseCase, logger *zap.Logger) *SearchService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &SearchService{
		search: search,
		page:   page,
		logger: logger,
	}
}

// WebSearchRequest carries web_search arguments
type WebSearchRequest struct {
	Query      string  `json:"query" form:"query" binding:"required" jsonschema:"search keywords"`
	Engine     *string `json:"engine,omitempty" form:"engine" jsonschema:"search engine: bing, google or baidu; the configured default when omitted"`
	MaxResults *int    `json:"max_results,omitempty" form:"max_results" jsonschema:"number of results, clipped to 1..20, default 10"`
	Language   *string `json:"language,omitempty" form:"language" jsonschema:"language tag such as zh-cn or en-us, default zh-cn"`
}

// NewsSearchRequest carries search_news arguments
type NewsSearchRequest struct {
	Query      string  `json:"query" form:"query" binding:"required" jsonschema:"news keywords"`
	MaxResults *int    `json:"max_results,omitempty" form:"max_results" jsonschema:"number of articles, clipped to 1..20, default 10"`
	Language   *string `json:"language,omitempty" form:"language" jsonschema:"language tag such as zh-cn or en-us, default zh-cn"`
}

// PageContentRequest carries get_page_content arguments
type PageContentRequest struct {
	URL       string  `json:"url" form:"url" binding:"required" jsonschema:"http or https address of the page"`
	MaxLength *int    `json:"max_length,omitempty" form:"max_length" jsonschema:"maximum characters of returned content, default 2000"`
	Format    *string `json:"format,omitempty" form:"format" jsonschema:"text (default) or markdown"`
}

// SearchConfigRequest carries no arguments
type SearchConfigRequest struct{}

func (r *WebSearchRequest) params() biz.SearchParams {
	return biz.SearchParams{
		Query:      r.Query,
		Engine:     stringOr(r.Engine),
		MaxResults: intOr(r.MaxResults, types.DefaultResults),
		Language:   stringOr(r.Language),
	}
}

func (r *NewsSearchRequest) params() biz.NewsParams {
	return biz.NewsParams{
		Query:      r.Query,
		MaxResults: intOr(r.MaxResults, types.DefaultResults),
		Language:   stringOr(r.Language),
	}
}

// Optional tool arguments are pointers so an explicit null is accepted and
// treated like an omitted argument.
func stringOr(v *string) string {
	if v == nil {
		return ""
	}
	return *v
}

func intOr(v *int, def int) int {
	if v == nil {
		return def
	}
	return *v
}

func (s *SearchService) WebSearch(ctx context.Context, req *WebSearchRequest) *types.SearchResponse {
	return s.search.Search(s.withRequestID(ctx, "web_search"), req.params())
}

func (s *SearchService) SearchNews(ctx context.Context, req *NewsSearchRequest) *types.SearchResponse {
	return s.search.SearchNews(s.withRequestID(ctx, "search_news"), req.params())
}

func (s *SearchService) GetSearchConfig(ctx context.Context) *types.SearchConfigResponse {
	return s.search.GetSearchConfig(s.withRequestID(ctx, "get_search_config"))
}

func (s *SearchService) GetPageContent(ctx context.Context, req *PageContentRequest) *types.PageContent {
	return s.page.GetPageContent(s.withRequestID(ctx, "get_page_content"), req.URL, intOr(req.MaxLength, biz.DefaultPageLength), stringOr(req.Format))
}

// withRequestID tags ctx with a fresh request id unless the caller already set one
func (s *SearchService) withRequestID(ctx context.Context, op string) context.Context {
	id := logger.GetRequestID(ctx)
	if id == "" {
		id = uuid.NewString()
		ctx = logger.WithRequestID(ctx, id)
	}
	s.logger.Debug("operation started", zap.String("op", op), zap.String("request_id", id))
	return ctx
}
