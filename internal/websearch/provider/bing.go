package provider

import (
	"context"
	"encoding/json"
	"net/url"
	"strconv"

	"github.com/lk2023060901/websearch-mcp/internal/websearch/httpclient"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// BingAPIHost is the Bing Web Search v7 endpoint
const BingAPIHost = "https://api.bing.microsoft.com/v7.0/search"

// BingProvider implements the Bing Web Search API
type BingProvider struct {
	*BaseProvider
}

// NewBingProvider creates a new Bing provider
func NewBingProvider(config *types.ProviderConfig) (Provider, error) {
	base := NewBaseProvider(config, httpclient.APITimeout)
	return &BingProvider{BaseProvider: base}, nil
}

// bingResponse represents a Bing API response
type bingResponse struct {
	WebPages struct {
		TotalEstimatedMatches int `json:"totalEstimatedMatches"`
		Value                 []struct {
			Name    string `json:"name"`
			URL     string `json:"url"`
			Snippet string `json:"snippet"`
		} `json:"value"`
	} `json:"webPages"`
}

// Search executes a search query using the Bing API
func (p *BingProvider) Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error) {
	if err := p.checkCredentials("BING_SEARCH_API_KEY not set"); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("q", req.Query)
	params.Set("count", strconv.Itoa(req.MaxResults))
	if req.Language != "" {
		params.Set("mkt", req.Language)
	}
	params.Set("textDecorations", "false")
	params.Set("textFormat", "Raw")

	body, err := p.DoGet(ctx, params, map[string]string{
		"Ocp-Apim-Subscription-Key": p.config.APIKey,
	})
	if err != nil {
		return nil, err
	}

	var bingResp bingResponse
	if err := json.Unmarshal(body, &bingResp); err != nil {
		return nil, decodeError(p.GetID(), err)
	}

	results := make([]*types.SearchResult, 0, len(bingResp.WebPages.Value))
	for _, item := range bingResp.WebPages.Value {
		results = append(results, &types.SearchResult{
			Title:   item.Name,
			Snippet: item.Snippet,
			URL:     item.URL,
			Source:  p.GetName(),
		})
	}

	return types.NewSuccessResponse(p.GetID(), req.Query, results, len(results)), nil
}
