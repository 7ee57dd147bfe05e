// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package httputil

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/gamedex/pkg/types"
)

func get(t *testing.T, url string) *http.Request {
	t.Helper()
	req, err := http.NewRequest(http.MethodGet, url, nil)
	require.NoError(t, err)
	return req
}

func TestFetchSuccess(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer ts.Close()

	body, err := Fetch(ts.Client(), get(t, ts.URL))
	require.NoError(t, err)
	assert.Equal(t, `{"ok":true}`, string(body))
}

func TestFetchRateLimited(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Retry-After", "60")
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := Fetch(ts.Client(), get(t, ts.URL))
	require.Error(t, err)
	assert.Equal(t, types.FailRateLimited, types.KindOf(err))

	var ce *types.Error
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, 60*time.Second, ce.RetryAfter)
	assert.Contains(t, err.Error(), "retry after")
}

func TestFetchDoesNotRetry(t *testing.T) {
	calls := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls++
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer ts.Close()

	_, err := Fetch(ts.Client(), get(t, ts.URL))
	require.Error(t, err)
	assert.Equal(t, 1, calls)
}

func TestFetchAuthRejected(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))
		_, err := Fetch(ts.Client(), get(t, ts.URL))
		ts.Close()
		assert.Equal(t, types.FailAuth, types.KindOf(err), "status %d", status)
	}
}

func TestFetchProviderError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer ts.Close()

	_, err := Fetch(ts.Client(), get(t, ts.URL))
	assert.Equal(t, types.FailProvider, types.KindOf(err))
	assert.Contains(t, err.Error(), "500")
}

func TestFetchResponseTooLarge(t *testing.T) {
	old := MaxResponseBytes
	MaxResponseBytes = 64
	defer func() { MaxResponseBytes = old }()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(strings.Repeat("x", 65)))
	}))
	defer ts.Close()

	_, err := Fetch(ts.Client(), get(t, ts.URL))
	assert.Equal(t, types.FailResponseTooLarge, types.KindOf(err))
}

func TestFetchBodyAtLimitAccepted(t *testing.T) {
	old := MaxResponseBytes
	MaxResponseBytes = 64
	defer func() { MaxResponseBytes = old }()

	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Write([]byte(strings.Repeat("x", 64)))
	}))
	defer ts.Close()

	body, err := Fetch(ts.Client(), get(t, ts.URL))
	require.NoError(t, err)
	assert.Len(t, body, 64)
}

func TestFetchTimeout(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer ts.Close()

	client := ts.Client()
	client.Timeout = 50 * time.Millisecond

	_, err := Fetch(client, get(t, ts.URL))
	assert.Equal(t, types.FailTimeout, types.KindOf(err))
}

func TestFetchTLSVerificationFailure(t *testing.T) {
	ts := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	// A fresh client does not trust the httptest certificate.
	_, err := Fetch(NewClient(time.Second), get(t, ts.URL))
	assert.Equal(t, types.FailTLS, types.KindOf(err))
}

func TestFetchNetworkError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL
	ts.Close() // nothing is listening anymore

	_, err := Fetch(NewClient(time.Second), get(t, url))
	assert.Equal(t, types.FailNetwork, types.KindOf(err))
}

func TestFetchTransportErrorOmitsRequestURL(t *testing.T) {
	const key = "hunter2-hunter2-hunter2"

	// Network path: nothing listening.
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := ts.URL + "?key=" + key + "&search=Doom"
	ts.Close()

	_, err := Fetch(NewClient(time.Second), get(t, url))
	require.Error(t, err)
	assert.Equal(t, types.FailNetwork, types.KindOf(err))
	assert.NotContains(t, err.Error(), key)
	assert.NotContains(t, err.Error(), "key=")

	// Timeout path: server never answers in time.
	slow := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(500 * time.Millisecond)
	}))
	defer slow.Close()

	client := slow.Client()
	client.Timeout = 50 * time.Millisecond
	_, err = Fetch(client, get(t, slow.URL+"?key="+key))
	require.Error(t, err)
	assert.Equal(t, types.FailTimeout, types.KindOf(err))
	assert.NotContains(t, err.Error(), key)
}

func TestRetryAfter(t *testing.T) {
	h := http.Header{}
	assert.Equal(t, time.Duration(0), RetryAfter(h))

	h.Set("Retry-After", "3")
	assert.Equal(t, 3*time.Second, RetryAfter(h))

	h.Set("Retry-After", "garbage")
	assert.Equal(t, time.Duration(0), RetryAfter(h))

	h.Set("Retry-After", time.Now().Add(10*time.Second).UTC().Format(http.TimeFormat))
	got := RetryAfter(h)
	assert.Greater(t, got, 5*time.Second)
	assert.LessOrEqual(t, got, 10*time.Second)
}
