package hubic

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewClient(t *testing.T) {
	t.Parallel()

	client, err := NewClient(newTestConfig("https://api.hubic.com"))
	require.NoError(t, err)

	assert.Equal(t, "https://api.hubic.com", client.GetBaseURL())

	impl, ok := client.(*ClientImpl)
	require.True(t, ok)
	assert.NotNil(t, impl.flowClient.CheckRedirect)
	assert.NotNil(t, impl.credentialsCache)
}

func TestNewClient_DefaultTimeouts(t *testing.T) {
	t.Parallel()

	cfg := newTestConfig("https://api.hubic.com")
	cfg.ParsedFlowTimeout = 0
	cfg.ParsedCredentialsTimeout = 0

	client, err := NewClient(cfg)
	require.NoError(t, err)

	impl, ok := client.(*ClientImpl)
	require.True(t, ok)
	assert.Equal(t, 30*time.Second, impl.flowClient.Timeout)
	assert.Equal(t, 5*time.Second, impl.credentialsClient.Timeout)
}

func TestGetCredentials(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64

	expires := time.Now().Add(time.Hour).Format(time.RFC3339)

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)

		assert.Equal(t, "/1.0/account/credentials", r.URL.Path)
		assert.Equal(t, "Bearer A", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"token":"T","endpoint":"https://swift.example.com/v1/AUTH_x","expires":%q}`, expires)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	credentials, err := client.GetCredentials(context.Background(), "A")
	require.NoError(t, err)

	assert.Equal(t, "T", credentials.Token)
	assert.Equal(t, "https://swift.example.com/v1/AUTH_x", credentials.Endpoint)
	assert.Equal(t, expires, credentials.Expires)

	// A repeat call with the same access token is served from the cache.
	cached, err := client.GetCredentials(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, credentials, cached)
	assert.Equal(t, int64(1), calls.Load())
}

func TestGetCredentials_ExpiredCacheEntryRefetched(t *testing.T) {
	t.Parallel()

	var calls atomic.Int64

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		n := calls.Add(1)

		// The first response is already expired, the second is fresh.
		expires := time.Now().Add(-time.Minute)
		if n > 1 {
			expires = time.Now().Add(time.Hour)
		}

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"token":"T%d","endpoint":"https://swift.example.com","expires":%q}`,
			n, expires.Format(time.RFC3339))
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	first, err := client.GetCredentials(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "T1", first.Token)

	second, err := client.GetCredentials(context.Background(), "A")
	require.NoError(t, err)
	assert.Equal(t, "T2", second.Token)
	assert.Equal(t, int64(2), calls.Load())
}

func TestGetCredentials_Unauthorized(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	client := newTestClient(t, server.URL)

	_, err := client.GetCredentials(context.Background(), "stale")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedHTTPStatus)
}

func TestStorageCredentialsExpired(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		expires  string
		expected bool
	}{
		{
			name:     "future timestamp",
			expires:  "2026-01-15T13:00:00Z",
			expected: false,
		},
		{
			name:     "past timestamp",
			expires:  "2026-01-15T11:00:00Z",
			expected: true,
		},
		{
			name:     "exact boundary",
			expires:  "2026-01-15T12:00:00Z",
			expected: true,
		},
		{
			name:     "unparsable timestamp",
			expires:  "soon",
			expected: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			expired := storageCredentialsExpired(&StorageCredentials{Expires: tt.expires}, now)
			assert.Equal(t, tt.expected, expired)
		})
	}
}
