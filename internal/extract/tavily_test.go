package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func extractServer(t *testing.T, results []map[string]any) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/extract", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.NotEmpty(t, req["urls"])

		_ = json.NewEncoder(w).Encode(map[string]any{"results": results})
	}))
}

func TestTavilyClient_Extract_RawContentWins(t *testing.T) {
	srv := extractServer(t, []map[string]any{
		{"raw_content": "full raw body", "text": "plain text body"},
	})
	defer srv.Close()

	client, err := NewTavilyClient("key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	got, err := client.Extract(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "full raw body", got)
}

func TestTavilyClient_Extract_TextFallback(t *testing.T) {
	srv := extractServer(t, []map[string]any{
		{"text": "plain text body"},
	})
	defer srv.Close()

	client, err := NewTavilyClient("key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	got, err := client.Extract(context.Background(), "https://example.com/a")
	require.NoError(t, err)
	assert.Equal(t, "plain text body", got)
}

func TestTavilyClient_Extract_EmptyResults(t *testing.T) {
	srv := extractServer(t, []map[string]any{})
	defer srv.Close()

	client, err := NewTavilyClient("key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.Extract(context.Background(), "https://example.com/a")
	assert.Error(t, err)
}

func TestTavilyClient_Extract_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusForbidden)
	}))
	defer srv.Close()

	client, err := NewTavilyClient("key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.Extract(context.Background(), "https://example.com/a")
	assert.Error(t, err)
}
