package types

import "encoding/json"

// SearchResponse is the envelope returned to tool callers
type SearchResponse struct {
	Success      bool            `json:"success"`
	Engine       string          `json:"engine,omitempty"` // provider that actually answered
	Query        string          `json:"query,omitempty"`
	TotalResults int             `json:"total_results,omitempty"`
	Results      []*SearchResult `json:"results,omitempty"`
	Error        string          `json:"error,omitempty"`

	// Err is the cause of a failure, kept for callers that classify it
	Err error `json:"-"`
}

// MarshalJSON always emits results and total_results on success, even when empty,
// and omits them on failure.
func (r SearchResponse) MarshalJSON() ([]byte, error) {
	type envelope SearchResponse
	if !r.Success {
		return json.Marshal(envelope(r))
	}
	results := r.Results
	if results == nil {
		results = []*SearchResult{}
	}
	return json.Marshal(struct {
		envelope
		TotalResults int             `json:"total_results"`
		Results      []*SearchResult `json:"results"`
	}{envelope(r), r.TotalResults, results})
}

// SearchResult represents a single search result
type SearchResult struct {
	Title       string `json:"title"`
	Snippet     string `json:"snippet"`
	URL         string `json:"url"`
	Source      string `json:"source"`
	PublishedAt string `json:"published_at,omitempty"`
	Author      string `json:"author,omitempty"`
}

// NewSuccessResponse builds a successful envelope answered by engine
func NewSuccessResponse(engine EngineID, query string, results []*SearchResult, total int) *SearchResponse {
	if results == nil {
		results = []*SearchResult{}
	}
	return &SearchResponse{
		Success:      true,
		Engine:       engine.Label(),
		Query:        query,
		TotalResults: total,
		Results:      results,
	}
}

// NewFailureResponse builds a failed envelope whose message is err's text
func NewFailureResponse(err error) *SearchResponse {
	return &SearchResponse{
		Success: false,
		Error:   err.Error(),
		Err:     err,
	}
}

// PageContent is the envelope returned by get_page_content
type PageContent struct {
	Success bool   `json:"success"`
	URL     string `json:"url,omitempty"`
	Content string `json:"content"`
	Length  int    `json:"length"`
	Format  string `json:"format,omitempty"`
	Error   string `json:"error,omitempty"`
}

// MarshalJSON drops content and length from failed fetches.
func (p PageContent) MarshalJSON() ([]byte, error) {
	if p.Success {
		type page PageContent
		return json.Marshal(page(p))
	}
	return json.Marshal(struct {
		Success bool   `json:"success"`
		Error   string `json:"error"`
	}{p.Success, p.Error})
}

// SearchConfigView describes the active search configuration
type SearchConfigView struct {
	DefaultSearchEngine string      `json:"default_search_engine"`
	SupportedEngines    []string    `json:"supported_engines"`
	APIKeysConfigured   APIKeysView `json:"api_keys_configured"`
	FallbackEngine      string      `json:"fallback_engine"`
}

// APIKeysView reports which credentials are present, never their values
type APIKeysView struct {
	Bing   bool `json:"bing"`
	Google bool `json:"google"`
	News   bool `json:"news"`
}

// SearchConfigResponse is the envelope returned by get_search_config
type SearchConfigResponse struct {
	Success bool              `json:"success"`
	Config  *SearchConfigView `json:"config,omitempty"`
	Error   string            `json:"error,omitempty"`
}
