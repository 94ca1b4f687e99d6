package types

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// Configuration errors
	ErrInvalidProviderID = errors.New("invalid provider ID")
	ErrInvalidAPIHost    = errors.New("invalid API host")
	ErrMissingAPIKey     = errors.New("missing API key")
	ErrMissingEngineID   = errors.New("missing search engine ID")

	// Request errors
	ErrEmptyQuery        = errors.New("empty search query")
	ErrUnsupportedEngine = errors.New("unsupported search engine")

	// Provider errors
	ErrProviderNotFound = errors.New("provider not found")
	ErrInvalidAPIKey    = errors.New("API key not valid")
	ErrUpstreamStatus   = errors.New("upstream reported an error")
)

// FailureKind classifies why a provider call failed
type FailureKind string

const (
	FailureMissingCredential FailureKind = "missing_credential"
	FailureInvalidCredential FailureKind = "invalid_credential"
	FailureTransport         FailureKind = "transport"
	FailureHTTPStatus        FailureKind = "http_status"
	FailureDecode            FailureKind = "decode"
	FailureUpstream          FailureKind = "upstream"
)

// ProviderError wraps provider-specific errors
type ProviderError struct {
	Provider   EngineID
	Kind       FailureKind
	StatusCode int
	Message    string
	Err        error
}

func (e *ProviderError) Error() string {
	if e.Err != nil {
		if e.Message == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a ProviderError for the given provider and kind
func NewProviderError(provider EngineID, kind FailureKind, msg string, err error) *ProviderError {
	return &ProviderError{
		Provider: provider,
		Kind:     kind,
		Message:  msg,
		Err:      err,
	}
}

// RequestError rejects a search before any provider is called. Its message is
// shown to the caller as is.
type RequestError struct {
	Message string
	Err     error
}

func (e *RequestError) Error() string { return e.Message }

func (e *RequestError) Unwrap() error { return e.Err }

func NewEmptyQueryError() *RequestError {
	return &RequestError{Message: "Query must not be empty", Err: ErrEmptyQuery}
}

func NewUnsupportedEngineError(name string) *RequestError {
	return &RequestError{
		Message: fmt.Sprintf("Unsupported search engine: %s. Supported engines: %s", name, strings.Join(WebEngineNames(), ", ")),
		Err:     ErrUnsupportedEngine,
	}
}

// KindOf extracts the failure kind of err; errors not raised by a provider count as transport failures
func KindOf(err error) FailureKind {
	var pe *ProviderError
	if errors.As(err, &pe) {
		return pe.Kind
	}
	return FailureTransport
}
