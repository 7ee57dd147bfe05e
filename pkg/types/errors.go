// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import (
	"errors"
	"fmt"
	"time"
)

// FailureKind classifies a lookup failure. Every failure path surfaces
// exactly one kind so the category is diagnosable without debug mode.
type FailureKind string

const (
	FailMissingCredential FailureKind = "missing_credential"
	FailInvalidCredential FailureKind = "invalid_credential"
	FailInvalidConfig     FailureKind = "invalid_config"
	FailEmptyQuery        FailureKind = "empty_query"
	FailInvalidQuery      FailureKind = "invalid_query"
	FailNetwork           FailureKind = "network_error"
	FailTimeout           FailureKind = "timeout"
	FailTLS               FailureKind = "tls_error"
	FailRateLimited       FailureKind = "rate_limited"
	FailAuth              FailureKind = "auth_error"
	FailProvider          FailureKind = "provider_error"
	FailResponseTooLarge  FailureKind = "response_too_large"
)

// Error is a classified lookup failure. Messages must never contain the
// credential value.
type Error struct {
	Kind FailureKind

	// RetryAfter carries the provider's throttling hint, when one was given.
	// Only meaningful for FailRateLimited.
	RetryAfter time.Duration

	msg   string
	cause error
}

// NewError builds a classified error with a formatted message.
func NewError(kind FailureKind, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...)}
}

// WrapError builds a classified error around an underlying cause.
func WrapError(kind FailureKind, cause error, format string, args ...any) *Error {
	return &Error{Kind: kind, msg: fmt.Sprintf(format, args...), cause: cause}
}

func (e *Error) Error() string {
	if e.cause != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.cause)
	}
	return e.msg
}

func (e *Error) Unwrap() error { return e.cause }

// KindOf returns the failure kind of err, or "" when err carries no
// classification.
func KindOf(err error) FailureKind {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.Kind
	}
	return ""
}

// ExitCode maps a failure to the process exit code: configuration and input
// problems exit 1, transport and provider problems exit 2. Unclassified
// errors exit 1.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	switch KindOf(err) {
	case FailNetwork, FailTimeout, FailTLS, FailRateLimited, FailAuth, FailProvider, FailResponseTooLarge:
		return 2
	default:
		return 1
	}
}
