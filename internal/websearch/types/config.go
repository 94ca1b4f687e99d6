package types

import "time"

// ProviderConfig represents search provider configuration
type ProviderConfig struct {
	ID EngineID `json:"id" yaml:"id"`

	// API settings
	APIHost  string `json:"api_host" yaml:"api_host"`
	APIKey   string `json:"api_key,omitempty" yaml:"api_key,omitempty"`
	EngineID string `json:"engine_id,omitempty" yaml:"engine_id,omitempty"` // Google custom search engine (cx)

	Timeout   time.Duration `json:"timeout,omitempty" yaml:"timeout,omitempty"`
	UserAgent string        `json:"user_agent,omitempty" yaml:"user_agent,omitempty"`
}

// Validate validates the static part of the provider configuration.
// Missing credentials are not a configuration error: they are reported at
// search time so the caller can fall back to another provider.
func (c *ProviderConfig) Validate() error {
	if c.ID == "" {
		return ErrInvalidProviderID
	}
	if c.APIHost == "" {
		return ErrInvalidAPIHost
	}
	return nil
}

// HasCredentials reports whether every credential the provider needs is present
func (c *ProviderConfig) HasCredentials() bool {
	switch c.ID {
	case EngineBaidu:
		return true
	case EngineGoogle:
		return c.APIKey != "" && c.EngineID != ""
	default:
		return c.APIKey != ""
	}
}

// CredentialError returns the sentinel describing the missing credential, or nil
func (c *ProviderConfig) CredentialError() error {
	switch {
	case c.ID == EngineBaidu:
		return nil
	case c.APIKey == "":
		return ErrMissingAPIKey
	case c.ID == EngineGoogle && c.EngineID == "":
		return ErrMissingEngineID
	}
	return nil
}
