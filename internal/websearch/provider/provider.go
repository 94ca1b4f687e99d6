package provider

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/lk2023060901/websearch-mcp/internal/websearch/httpclient"
	"github.com/lk2023060901/websearch-mcp/internal/websearch/types"
)

// Provider defines the interface for search providers.
//
// Search never falls back to another provider on its own; failures are returned
// as *types.ProviderError so the caller can decide what to do next.
type Provider interface {
	// Search executes a search query
	Search(ctx context.Context, req *types.SearchRequest) (*types.SearchResponse, error)

	// GetID returns the provider ID
	GetID() types.EngineID

	// GetName returns the provider display name
	GetName() string

	// Validate validates the provider configuration
	Validate() error

	// HasCredentials reports whether the provider can be called at all
	HasCredentials() bool
}

// maxErrorBody bounds how much of an error response ends up in messages
const maxErrorBody = 200

// BaseProvider provides common functionality for all providers
type BaseProvider struct {
	config     *types.ProviderConfig
	httpClient *http.Client
}

// NewBaseProvider creates a new base provider. defaultTimeout applies when the
// configuration does not set one.
func NewBaseProvider(config *types.ProviderConfig, defaultTimeout time.Duration) *BaseProvider {
	timeout := config.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}

	return &BaseProvider{
		config:     config,
		httpClient: httpclient.NewHTTPClient(timeout),
	}
}

// GetID returns the provider ID
func (b *BaseProvider) GetID() types.EngineID {
	return b.config.ID
}

// GetName returns the provider name
func (b *BaseProvider) GetName() string {
	return b.config.ID.Label()
}

// HasCredentials reports whether every credential the provider needs is configured
func (b *BaseProvider) HasCredentials() bool {
	return b.config.HasCredentials()
}

// Validate validates the provider configuration
func (b *BaseProvider) Validate() error {
	return b.config.Validate()
}

// BuildDefaultHeaders builds default HTTP headers
func (b *BaseProvider) BuildDefaultHeaders() map[string]string {
	ua := b.config.UserAgent
	if ua == "" {
		ua = "websearch-mcp/1.0"
	}
	return map[string]string{
		"Accept":     "application/json",
		"User-Agent": ua,
	}
}

// checkCredentials returns a missing_credential failure before any network call is made
func (b *BaseProvider) checkCredentials(hint string) error {
	if err := b.config.CredentialError(); err != nil {
		return types.NewProviderError(b.GetID(), types.FailureMissingCredential, hint, err)
	}
	return nil
}

// DoGet sends a single GET to the configured API host. No retry is attempted.
// On a non-2xx status the body is returned together with an http_status failure
// so callers can inspect provider-specific error payloads.
func (b *BaseProvider) DoGet(ctx context.Context, params url.Values, headers map[string]string) ([]byte, error) {
	apiURL := b.config.APIHost
	if len(params) > 0 {
		sep := "?"
		if strings.Contains(apiURL, "?") {
			sep = "&"
		}
		apiURL += sep + params.Encode()
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, apiURL, nil)
	if err != nil {
		return nil, types.NewProviderError(b.GetID(), types.FailureTransport, "failed to create request", err)
	}

	for k, v := range b.BuildDefaultHeaders() {
		httpReq.Header.Set(k, v)
	}
	for k, v := range headers {
		httpReq.Header.Set(k, v)
	}

	resp, err := b.httpClient.Do(httpReq)
	if err != nil {
		return nil, types.NewProviderError(b.GetID(), types.FailureTransport, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, types.NewProviderError(b.GetID(), types.FailureTransport, "failed to read response", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return body, &types.ProviderError{
			Provider:   b.GetID(),
			Kind:       types.FailureHTTPStatus,
			StatusCode: resp.StatusCode,
			Message:    statusMessage(resp.StatusCode, body),
		}
	}

	return body, nil
}

func statusMessage(code int, body []byte) string {
	detail := strings.TrimSpace(string(body))
	if r := []rune(detail); len(r) > maxErrorBody {
		detail = string(r[:maxErrorBody]) + "..."
	}
	if detail == "" {
		return fmt.Sprintf("HTTP %d %s", code, http.StatusText(code))
	}
	return fmt.Sprintf("HTTP %d %s: %s", code, http.StatusText(code), detail)
}

func decodeError(id types.EngineID, err error) error {
	return types.NewProviderError(id, types.FailureDecode, "failed to decode response", err)
}
