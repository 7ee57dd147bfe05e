// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package httputil executes the single outbound provider request and
// classifies its failures.
package httputil

import (
	"crypto/tls"
	"crypto/x509"
	"errors"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/pdiddy/gamedex/pkg/types"
)

// MaxResponseBytes caps the accepted response body size. Declared as a var
// so tests can shrink it instead of serving 10 MiB bodies.
var MaxResponseBytes int64 = 10 << 20

// NewClient returns an HTTP client with the configured timeout. Certificate
// verification stays enabled in every mode; the transport only raises the
// TLS floor.
func NewClient(timeout time.Duration) *http.Client {
	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: &tls.Config{MinVersion: tls.VersionTLS12},
		},
	}
}

// Fetch performs the request once and returns the body, bounded by
// MaxResponseBytes. There are no retries; every failure comes back as a
// classified *types.Error for the caller to surface.
func Fetch(client *http.Client, req *http.Request) ([]byte, error) {
	resp, err := client.Do(req)
	if err != nil {
		return nil, classifyTransport(err)
	}
	defer resp.Body.Close()

	if resp.ContentLength > MaxResponseBytes {
		return nil, types.NewError(types.FailResponseTooLarge,
			"provider response of %d bytes exceeds the %d byte limit", resp.ContentLength, MaxResponseBytes)
	}

	if err := classifyStatus(resp); err != nil {
		return nil, err
	}

	// Read one byte past the cap to distinguish "at the limit" from "over it".
	body, err := io.ReadAll(io.LimitReader(resp.Body, MaxResponseBytes+1))
	if err != nil {
		return nil, types.WrapError(types.FailNetwork, err, "reading provider response")
	}
	if int64(len(body)) > MaxResponseBytes {
		return nil, types.NewError(types.FailResponseTooLarge,
			"provider response exceeds the %d byte limit", MaxResponseBytes)
	}
	return body, nil
}

// classifyStatus maps non-2xx statuses to failure kinds. The response body
// is not consumed here.
func classifyStatus(resp *http.Response) error {
	switch {
	case resp.StatusCode == http.StatusTooManyRequests:
		hint := RetryAfter(resp.Header)
		if hint > 0 {
			e := types.NewError(types.FailRateLimited,
				"provider is throttling requests (HTTP 429), retry after %s", hint)
			e.RetryAfter = hint
			return e
		}
		return types.NewError(types.FailRateLimited, "provider is throttling requests (HTTP 429)")
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return types.NewError(types.FailAuth, "provider rejected the credential (HTTP %d)", resp.StatusCode)
	case resp.StatusCode < 200 || resp.StatusCode > 299:
		return types.NewError(types.FailProvider, "provider returned HTTP %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}
	return nil
}

// RetryAfter parses a Retry-After header as delay seconds or an HTTP date.
// Returns 0 when the header is absent or unparseable.
func RetryAfter(h http.Header) time.Duration {
	raw := h.Get("Retry-After")
	if raw == "" {
		return 0
	}
	if secs, err := strconv.Atoi(raw); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(raw); err == nil {
		if d := time.Until(at); d > 0 {
			return d
		}
	}
	return 0
}

// classifyTransport maps a client.Do error to timeout, TLS, or network.
// The *url.Error wrapper is peeled off before wrapping: its message embeds
// the full request URL, credential query parameter included.
func classifyTransport(err error) error {
	cause := err
	var ue *url.Error
	if errors.As(err, &ue) {
		cause = ue.Err
	}

	if ue != nil && ue.Timeout() {
		return types.WrapError(types.FailTimeout, cause, "request timed out")
	}

	var certErr *tls.CertificateVerificationError
	var recErr tls.RecordHeaderError
	var authErr x509.UnknownAuthorityError
	var hostErr x509.HostnameError
	var invErr x509.CertificateInvalidError
	if errors.As(cause, &certErr) || errors.As(cause, &recErr) ||
		errors.As(cause, &authErr) || errors.As(cause, &hostErr) || errors.As(cause, &invErr) {
		return types.WrapError(types.FailTLS, cause, "TLS verification failed")
	}

	return types.WrapError(types.FailNetwork, cause, "network error contacting provider")
}
