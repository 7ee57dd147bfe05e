package types

import "time"

// HTTPConfig holds shared HTTP settings for the single outbound request.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "gamedex/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// RunConfig is the immutable per-invocation configuration, built once in the
// command layer from environment and flags and passed explicitly to every
// pipeline stage. The API key is excluded from all serialized forms.
type RunConfig struct {
	HTTPConfig `yaml:",inline"`

	// APIKey is the provider credential. Never serialized, never logged.
	APIKey string `json:"-" yaml:"-"`

	// Debug enables verbose diagnostics on stderr for this run only.
	Debug bool `json:"debug" yaml:"debug"`
}
