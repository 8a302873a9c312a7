package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "insight-engine/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// FetchConfig holds settings for the corpus fetch stage.
type FetchConfig struct {
	HTTPConfig `yaml:",inline"`

	// MaxResults is the maximum number of works to fetch (default 100).
	MaxResults int `json:"max_results" yaml:"max_results"`

	// Email is sent as the mailto parameter for polite pool access.
	Email string `json:"email,omitempty" yaml:"email,omitempty"`

	// APIKey is an optional OpenAlex premium API key.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts on rate limiting (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// CorpusConfig holds settings for corpus storage.
type CorpusConfig struct {
	// DBPath is the SQLite corpus database path (e.g. "data/corpus.db").
	DBPath string `json:"db_path" yaml:"db_path"`
}
