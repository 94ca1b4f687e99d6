package types

// Result count bounds accepted by the tool surface
const (
	MinResults     = 1
	MaxResults     = 20
	DefaultResults = 10

	DefaultLanguage = "zh-cn"
)

// SearchRequest represents a normalized search request handed to a provider
type SearchRequest struct {
	Query      string `json:"query"`
	MaxResults int    `json:"max_results"`
	Language   string `json:"language,omitempty"` // zh-cn, en-us, ...
}

// PrimaryLanguage returns the first segment of the language tag (zh-cn -> zh)
func (r *SearchRequest) PrimaryLanguage(fallback string) string {
	if r.Language == "" {
		return fallback
	}
	for i := 0; i < len(r.Language); i++ {
		if r.Language[i] == '-' || r.Language[i] == '_' {
			return r.Language[:i]
		}
	}
	return r.Language
}
