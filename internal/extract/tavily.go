// Package extract fetches full article text for a URL. The primary path is
// the Tavily extract API; a goquery-based scraper serves as the local path
// when no credential is configured. Both report "no content" as an empty
// string with an error, which callers map to the snippet fallback.
package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// Extractor fetches the raw text behind a URL.
type Extractor interface {
	Extract(ctx context.Context, articleURL string) (string, error)
}

const (
	tavilyBaseURL  = "https://api.tavily.com"
	defaultTimeout = 30 * time.Second
)

type TavilyOption func(*TavilyClient)

// TavilyClient talks to the Tavily extract API.
type TavilyClient struct {
	base   url.URL
	apiKey string
	http   *http.Client
}

func NewTavilyClient(apiKey string, opts ...TavilyOption) (*TavilyClient, error) {
	base, err := url.Parse(tavilyBaseURL)
	if err != nil {
		return nil, err
	}

	client := &TavilyClient{
		base:   *base,
		apiKey: apiKey,
		http: &http.Client{
			Timeout: defaultTimeout,
		},
	}

	for _, opt := range opts {
		opt(client)
	}

	return client, nil
}

func WithHttpClient(httpClient *http.Client) TavilyOption {
	return func(client *TavilyClient) {
		client.http = httpClient
	}
}

func WithBaseURL(raw string) TavilyOption {
	return func(client *TavilyClient) {
		if base, err := url.Parse(raw); err == nil {
			client.base = *base
		}
	}
}

type extractRequest struct {
	APIKey string   `json:"api_key"`
	URLs   []string `json:"urls"`
}

type extractResult struct {
	RawContent string `json:"raw_content"`
	Text       string `json:"text"`
}

type extractResponse struct {
	Results []extractResult `json:"results"`
}

// Extract fetches raw page text for one URL. Providers answer with either
// raw_content or text; whichever is present wins.
func (c *TavilyClient) Extract(ctx context.Context, articleURL string) (string, error) {
	reqBytes, err := json.Marshal(extractRequest{APIKey: c.apiKey, URLs: []string{articleURL}})
	if err != nil {
		return "", err
	}

	reqURL := c.base.JoinPath("/extract")
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(reqBytes))
	if err != nil {
		return "", err
	}
	request.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(request)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	var parsed extractResponse
	if err := json.Unmarshal(respBody, &parsed); err != nil {
		return "", fmt.Errorf("unmarshal response: %w", err)
	}

	if len(parsed.Results) == 0 {
		return "", fmt.Errorf("no extraction result for %s", articleURL)
	}

	result := parsed.Results[0]
	if result.RawContent != "" {
		return result.RawContent, nil
	}
	if result.Text != "" {
		return result.Text, nil
	}

	return "", fmt.Errorf("empty extraction result for %s", articleURL)
}
