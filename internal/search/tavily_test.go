package search

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTavilyClient_Search(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/search", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"results": []map[string]any{
				{
					"title":          "EU AI Act Enforcement Begins",
					"url":            "https://www.reuters.com/technology/eu-ai-act",
					"content":        "snippet",
					"score":          0.91,
					"published_date": "2026-08-28T10:00:00Z",
				},
				{
					"title":   "No date, odd url",
					"url":     "::not a url::",
					"content": "snippet",
					"score":   0.5,
				},
			},
		})
	}))
	defer srv.Close()

	client, err := NewTavilyClient("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	items, err := client.Search(context.Background(), "EU AI Act", []string{"reuters.com"})
	require.NoError(t, err)
	require.Len(t, items, 2)

	// Request carries the fixed search contract.
	assert.Equal(t, "test-key", captured["api_key"])
	assert.Equal(t, "EU AI Act", captured["query"])
	assert.Equal(t, "advanced", captured["search_depth"])
	assert.Equal(t, []any{"reuters.com"}, captured["include_domains"])
	assert.Equal(t, float64(10), captured["max_results"])
	assert.Equal(t, "news", captured["topic"])

	// Hostname derived from the url, www stripped.
	assert.Equal(t, "reuters.com", items[0].Source)
	assert.Equal(t, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), items[0].PublishedAt)

	// Missing optional fields get defaults.
	assert.Equal(t, "Unknown", items[1].Source)
	assert.WithinDuration(t, time.Now().UTC(), items[1].PublishedAt, time.Minute)
}

func TestTavilyClient_NonSuccessStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	client, err := NewTavilyClient("test-key", WithBaseURL(srv.URL))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "anything", nil)
	assert.Error(t, err)
}
