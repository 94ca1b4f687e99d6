package provider

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/lk2023060901/websearch-mcp/internal/websearch/httpclient"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// GoogleAPIHost is the Google Custom Search JSON API endpoint
const GoogleAPIHost = "https://www.googleapis.com/customsearch/v1"

// GoogleMaxResults is the largest page the Custom Search API serves
const GoogleMaxResults = 10

const invalidKeyMarker = "API key not valid"

// GoogleProvider implements the Google Custom Search API
type GoogleProvider struct {
	*BaseProvider
}

// NewGoogleProvider creates a new Google provider
func NewGoogleProvider(config *types.ProviderConfig) (Provider, error) {
	base := NewBaseProvider(config, httpclient.APITimeout)
	return &GoogleProvider{BaseProvider: base}, nil
}

// googleResponse represents a Google Custom Search API response
type googleResponse struct {
	Items []struct {
		Title   string `json:"title"`
		Link    string `json:"link"`
		Snippet string `json:"snippet"`
	} `json:"items"`
}

// Search executes a search query using the Google Custom Search API
func (p *GoogleProvider) Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error) {
	if err := p.checkCredentials("Google API credentials not set"); err != nil {
		return nil, err
	}

	params := url.Values{}
	params.Set("key", p.config.APIKey)
	params.Set("cx", p.config.EngineID)
	params.Set("q", req.Query)
	params.Set("num", strconv.Itoa(min(req.MaxResults, GoogleMaxResults)))
	params.Set("lr", "lang_"+req.PrimaryLanguage("zh"))

	body, err := p.DoGet(ctx, params, nil)
	if err != nil {
		return nil, p.classify(body, err)
	}

	var googleResp googleResponse
	if err := json.Unmarshal(body, &googleResp); err != nil {
		return nil, decodeError(p.GetID(), err)
	}

	results := make([]*types.SearchResult, 0, len(googleResp.Items))
	for _, item := range googleResp.Items {
		results = append(results, &types.SearchResult{
			Title:   item.Title,
			Snippet: item.Snippet,
			URL:     item.Link,
			Source:  p.GetName(),
		})
	}

	return types.NewSuccessResponse(p.GetID(), req.Query, results, len(results)), nil
}

// classify turns a 400 carrying "API key not valid" into an invalid_credential
// failure and surfaces error.message for every other status failure.
func (p *GoogleProvider) classify(body []byte, err error) error {
	var pe *types.ProviderError
	if !errors.As(err, &pe) || pe.Kind != types.FailureHTTPStatus {
		return err
	}

	msg := gjson.GetBytes(body, "error.message").String()
	if pe.StatusCode == http.StatusBadRequest && strings.Contains(msg, invalidKeyMarker) {
		return &types.ProviderError{
			Provider:   p.GetID(),
			Kind:       types.FailureInvalidCredential,
			StatusCode: pe.StatusCode,
			Message:    msg,
			Err:        types.ErrInvalidAPIKey,
		}
	}
	if msg != "" {
		pe.Message = "HTTP " + strconv.Itoa(pe.StatusCode) + ": " + msg
	}
	return pe
}
