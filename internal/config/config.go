// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package config builds and validates the per-invocation RunConfig from
// environment values and flags, before any network call is attempted.
package config

import (
	"strconv"
	"strings"
	"time"

	"github.com/pdiddy/gamedex/pkg/types"
)

const (
	// DefaultTimeout applies when REQUEST_TIMEOUT is unset.
	DefaultTimeout = 10 * time.Second

	// MinTimeout and MaxTimeout bound the request timeout. Numeric values
	// outside the range are clamped, not rejected.
	MinTimeout = 1 * time.Second
	MaxTimeout = 300 * time.Second

	minKeyLen = 10
	maxKeyLen = 100

	defaultUserAgent = "gamedex/0.1"
)

// Build assembles the immutable RunConfig. apiKey is the resolved credential
// (env or secrets fallback), timeoutRaw the unparsed REQUEST_TIMEOUT value
// ("" when unset), debugToken the raw DEVELOPER_MODE value. debugFlag comes
// from --debug and enables diagnostics for this run only.
func Build(apiKey, timeoutRaw, debugToken string, debugFlag bool) (types.RunConfig, error) {
	if err := ValidateAPIKey(apiKey); err != nil {
		return types.RunConfig{}, err
	}

	timeout, err := ParseTimeout(timeoutRaw)
	if err != nil {
		return types.RunConfig{}, err
	}

	return types.RunConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   timeout,
			UserAgent: defaultUserAgent,
		},
		APIKey: apiKey,
		Debug:  debugFlag || IsTruthy(debugToken),
	}, nil
}

// ValidateAPIKey checks presence, length bounds (inclusive) and charset.
// Error messages never include the key value.
func ValidateAPIKey(key string) error {
	if strings.TrimSpace(key) == "" {
		return types.NewError(types.FailMissingCredential,
			"API key not found: set the RAWG_API_KEY environment variable or create .secrets/rawg-api-key")
	}
	if len(key) < minKeyLen || len(key) > maxKeyLen {
		return types.NewError(types.FailInvalidCredential,
			"API key has invalid length %d (expected %d-%d characters)", len(key), minKeyLen, maxKeyLen)
	}
	for _, r := range key {
		if !isKeyRune(r) {
			return types.NewError(types.FailInvalidCredential,
				"API key contains characters outside [A-Za-z0-9_-]")
		}
	}
	return nil
}

func isKeyRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	case r == '-' || r == '_':
		return true
	}
	return false
}

// ParseTimeout interprets a REQUEST_TIMEOUT value in seconds. An empty value
// yields the default. Non-numeric values are rejected rather than silently
// defaulted; numeric values are clamped into [MinTimeout, MaxTimeout].
func ParseTimeout(raw string) (time.Duration, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return DefaultTimeout, nil
	}
	secs, err := strconv.Atoi(raw)
	if err != nil {
		return 0, types.WrapError(types.FailInvalidConfig, err,
			"REQUEST_TIMEOUT must be an integer number of seconds, got %q", raw)
	}
	d := time.Duration(secs) * time.Second
	if d < MinTimeout {
		return MinTimeout, nil
	}
	if d > MaxTimeout {
		return MaxTimeout, nil
	}
	return d, nil
}

// IsTruthy reports whether a DEVELOPER_MODE-style token enables the flag.
func IsTruthy(token string) bool {
	switch strings.ToLower(strings.TrimSpace(token)) {
	case "true", "1", "t", "yes", "y", "on", "enable", "enabled":
		return true
	}
	return false
}
