package biz

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"unicode/utf8"

	"go.uber.org/zap"
	"golang.org/x/net/html/charset"

	"github.com/lk2023060901/websearch-mcp/internal/websearch/extract"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/httpclient"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// DefaultPageLength is the content length used when the caller gives none
const DefaultPageLength = 2000

// maxPageBytes caps how much of a page is read
const maxPageBytes = 10 << 20

// PageUseCase fetches a page and reduces it to readable text
type PageUseCase struct {
	client *http.Client
	logger *zap.Logger
}

// NewPageUseCase creates a new PageUseCase
func NewPageUseCase(logger *zap.Logger) *PageUseCase {
	return NewPageUseCaseWithClient(httpclient.NewHTTPClient(httpclient.ScrapeTimeout), logger)
}

// NewPageUseCaseWithClient creates a PageUseCase using the given HTTP client
func NewPageUseCaseWithClient(client *http.Client, logger *zap.Logger) *PageUseCase {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PageUseCase{client: client, logger: logger}
}

// GetPageContent fetches rawURL once and returns its text, truncated to maxLength
// characters. maxLength <= 0 selects DefaultPageLength.
func (uc *PageUseCase) GetPageContent(ctx context.Context, rawURL string, maxLength int, format string) *types.PageContent {
	log := uc.logger
	if id := requestID(ctx); id != "" {
		log = log.With(zap.String("request_id", id))
	}

	if maxLength <= 0 {
		maxLength = DefaultPageLength
	}

	f, err := extract.NormalizeFormat(format)
	if err != nil {
		return pageFailure(err)
	}

	log.Info("fetching page", zap.String("url", rawURL), zap.Int("max_length", maxLength), zap.String("format", f))

	body, err := uc.fetch(ctx, rawURL)
	if err != nil {
		log.Error("page fetch failed", zap.String("url", rawURL), zap.Error(err))
		return pageFailure(err)
	}

	text, err := extract.Render(body, f)
	if err != nil {
		log.Error("page extraction failed", zap.String("url", rawURL), zap.Error(err))
		return pageFailure(err)
	}

	content := extract.Truncate(text, maxLength)
	return &types.PageContent{
		Success: true,
		URL:     rawURL,
		Content: content,
		Length:  utf8.RuneCountInString(content),
		Format:  f,
	}
}

func (uc *PageUseCase) fetch(ctx context.Context, rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("invalid URL: %w", err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid URL %q: scheme must be http or https", rawURL)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", httpclient.BrowserUserAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := uc.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	reader, err := charset.NewReader(io.LimitReader(resp.Body, maxPageBytes), resp.Header.Get("Content-Type"))
	if err != nil {
		return "", fmt.Errorf("failed to decode page: %w", err)
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return "", fmt.Errorf("failed to read page: %w", err)
	}
	return string(data), nil
}

func pageFailure(err error) *types.PageContent {
	return &types.PageContent{
		Success: false,
		Error:   "Error fetching page content: " + err.Error(),
	}
}
