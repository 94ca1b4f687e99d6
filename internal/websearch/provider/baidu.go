package provider

import (
	"context"
	"net/url"
	"strconv"

	"github.com/lk2023060901/websearch-mcp/internal/websearch/extract"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/httpclient"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// BaiduAPIHost is Baidu's web search page
const BaiduAPIHost = "https://www.baidu.com/s"

// BaiduProvider scrapes Baidu's result page. It needs no credential.
type BaiduProvider struct {
	*BaseProvider
	extractor extract.FragmentExtractor
}

// NewBaiduProvider creates a new Baidu provider
func NewBaiduProvider(config *types.ProviderConfig) (Provider, error) {
	return NewBaiduProviderWithExtractor(config, extract.NewBaiduExtractor()), nil
}

// NewBaiduProviderWithExtractor creates a Baidu provider using a custom markup extractor
func NewBaiduProviderWithExtractor(config *types.ProviderConfig, extractor extract.FragmentExtractor) *BaiduProvider {
	if config.UserAgent == "" {
		config.UserAgent = httpclient.BrowserUserAgent
	}
	base := NewBaseProvider(config, httpclient.ScrapeTimeout)
	return &BaiduProvider{BaseProvider: base, extractor: extractor}
}

// Search fetches one result page and scrapes it. A page whose markup no longer
// matches yields an empty result list, not an error.
func (p *BaiduProvider) Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error) {
	params := url.Values{}
	params.Set("wd", req.Query)
	params.Set("rn", strconv.Itoa(req.MaxResults))
	params.Set("ie", "utf-8")

	body, err := p.DoGet(ctx, params, map[string]string{
		"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
		"Accept-Language": "zh-CN,zh;q=0.9,en;q=0.8",
	})
	if err != nil {
		return nil, err
	}

	fragments, err := p.extractor.Extract(string(body), req.MaxResults)
	if err != nil {
		return nil, decodeError(p.GetID(), err)
	}

	results := make([]*types.SearchResult, 0, len(fragments))
	for _, f := range fragments {
		results = append(results, &types.SearchResult{
			Title:   f.Title,
			Snippet: f.Snippet,
			URL:     f.URL,
			Source:  p.GetName(),
		})
	}

	return types.NewSuccessResponse(p.GetID(), req.Query, results, len(results)), nil
}
