package provider

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/tidwall/gjson"

	"github.com/lk2023060901/websearch-mcp/internal/websearch/httpclient"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// NewsAPIHost is NewsAPI's everything endpoint
const NewsAPIHost = "https://newsapi.org/v2/everything"

// NewsAPIMaxPageSize is the largest page NewsAPI serves
const NewsAPIMaxPageSize = 100

// NewsAPIProvider implements the NewsAPI article search
type NewsAPIProvider struct {
	*BaseProvider
}

// NewNewsAPIProvider creates a new NewsAPI provider
func NewNewsAPIProvider(config *types.ProviderConfig) (Provider, error) {
	base := NewBaseProvider(config, httpclient.APITimeout)
	return &NewsAPIProvider{BaseProvider: base}, nil
}

// newsAPIResponse represents a NewsAPI response
type newsAPIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	TotalResults *int   `json:"totalResults,omitempty"`
	Articles     []struct {
		Source struct {
			Name string `json:"name"`
		} `json:"source"`
		Author      string `json:"author"`
		Title       string `json:"title"`
		Description string `json:"description"`
		URL         string `json:"url"`
		PublishedAt string `json:"publishedAt"`
	} `json:"articles"`
}

// Search executes a news search sorted by publication date
func (p *NewsAPIProvider) Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error) {
	if err := p.checkCredentials("NEWS_API_KEY not set"); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", req.Query)
	params.Set("apiKey", p.config.APIKey)
	params.Set("pageSize", strconv.Itoa(min(req.MaxResults, NewsAPIMaxPageSize)))
	params.Set("sortBy", "publishedAt")
	params.Set("language", req.PrimaryLanguage("zh"))

	body, err := p.DoGet(ctx, params, nil)
	if err != nil {
		var pe *types.ProviderError
		if errors.As(err, &pe) && pe.Kind == types.FailureHTTPStatus {
			if msg := gjson.GetBytes(body, "message").String(); msg != "" {
				pe.Message = fmt.Sprintf("HTTP %d: %s", pe.StatusCode, msg)
			}
		}
		return nil, err
	}

	var newsResp newsAPIResponse
	if err := json.Unmarshal(body, &newsResp); err != nil {
		return nil, decodeError(p.GetID(), err)
	}

	if newsResp.Status != "ok" {
		msg := newsResp.Message
		if msg == "" {
			msg = "Unknown error"
		}
		return nil, types.NewProviderError(p.GetID(), types.FailureUpstream, "NewsAPI error: "+msg, types.ErrUpstreamStatus)
	}

	results := make([]*types.SearchResult, 0, len(newsResp.Articles))
	for _, article := range newsResp.Articles {
		source := article.Source.Name
		if source == "" {
			source = p.GetName()
		}
		results = append(results, &types.SearchResult{
			Title:       article.Title,
			Snippet:     article.Description,
			URL:         article.URL,
			Source:      source,
			PublishedAt: article.PublishedAt,
			Author:      article.Author,
		})
	}

	total := len(results)
	if newsResp.TotalResults != nil {
		total = *newsResp.TotalResults
	}

	return types.NewSuccessResponse(p.GetID(), req.Query, results, total), nil
}
