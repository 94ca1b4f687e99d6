package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lk2023060901/websearch-mcp/internal/websearch/biz"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/provider"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

type stubProvider struct {
	id      types.EngineID
	noCreds bool
	queries []string
}

func (p *stubProvider) Search(_ context.Context, req *types.SearchRequest) (*types.SearchResponse, error) {
	p.queries = append(p.queries, req.Query)
	if p.noCreds {
		return nil, types.NewProviderError(p.id, types.FailureMissingCredential, "no key", types.ErrMissingAPIKey)
	}
	results := make([]*types.SearchResult, 0, req.MaxResults)
	for i := 0; i < req.MaxResults; i++ {
		results = append(results, &types.SearchResult{Title: "t", URL: "https://example.com", Source: p.id.Label()})
	}
	return types.NewSuccessResponse(p.id, req.Query, results, len(results)), nil
}

func (p *stubProvider) GetID() types.EngineID { return p.id }
func (p *stubProvider) GetName() string       { return p.id.Label() }
func (p *stubProvider) Validate() error       { return nil }
func (p *stubProvider) HasCredentials() bool  { return !p.noCreds }

type fixture struct {
	svc   *SearchService
	bing  *stubProvider
	baidu *stubProvider
	news  *stubProvider
	page  *httptest.Server
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	f := &fixture{
		bing:  &stubProvider{id: types.EngineBing, noCreds: true},
		baidu: &stubProvider{id: types.EngineBaidu},
		news:  &stubProvider{id: types.EngineNewsAPI, noCreds: true},
	}
	providers := map[types.EngineID]provider.Provider{
		types.EngineBing:    f.bing,
		types.EngineGoogle:  &stubProvider{id: types.EngineGoogle},
		types.EngineBaidu:   f.baidu,
		types.EngineNewsAPI: f.news,
	}
	settings := biz.Settings{
		DefaultEngine: types.EngineGoogle,
		Keys:          types.APIKeysView{Google: true},
	}

	f.page = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(`<script>alert(1)</script>Hello<style>.c{}</style> World`))
	}))
	t.Cleanup(f.page.Close)

	f.svc = NewSearchService(
		biz.NewSearchUseCase(settings, providers, nil),
		biz.NewPageUseCase(nil),
		nil,
	)
	require.NotNil(t, f.svc)
	return f
}
