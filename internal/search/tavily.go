package search

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/daye-lim/news-intel/internal/domain"
)

const (
	tavilyBaseURL  = "https://api.tavily.com"
	defaultTimeout = 30 * time.Second
	maxResults     = 10
)

type TavilyOption func(*TavilyClient)

// TavilyClient talks to the Tavily search API.
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

type searchRequest struct {
	APIKey            string   `json:"api_key"`
	Query             string   `json:"query"`
	SearchDepth       string   `json:"search_depth"`
	IncludeDomains    []string `json:"include_domains"`
	ExcludeDomains    []string `json:"exclude_domains"`
	MaxResults        int      `json:"max_results"`
	IncludeAnswer     bool     `json:"include_answer"`
	IncludeRawContent bool     `json:"include_raw_content"`
	Topic             string   `json:"topic"`
}

type searchResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Score         float64 `json:"score"`
	PublishedDate string  `json:"published_date"`
}

type searchResponse struct {
	Results []searchResult `json:"results"`
}

// Search runs one query against the provider and maps the hits into domain
// items. Optional fields from the provider get defaults here: a missing
// published date becomes the current time, an unparsable URL yields source
// "Unknown".
func (c *TavilyClient) Search(ctx context.Context, query string, includeDomains []string) ([]domain.NewsItem, error) {
	if includeDomains == nil {
		includeDomains = []string{}
	}

	req := searchRequest{
		APIKey:         c.apiKey,
		Query:          query,
		SearchDepth:    "advanced",
		IncludeDomains: includeDomains,
		ExcludeDomains: []string{},
		MaxResults:     maxResults,
		Topic:          "news",
	}

	var resp searchResponse
	if err := c.do(ctx, "/search", req, &resp); err != nil {
		return nil, err
	}

	items := make([]domain.NewsItem, 0, len(resp.Results))
	for _, r := range resp.Results {
		items = append(items, domain.NewsItem{
			Title:       r.Title,
			URL:         r.URL,
			Content:     r.Content,
			Score:       r.Score,
			PublishedAt: parsePublished(r.PublishedDate),
			Source:      hostOf(r.URL),
		})
	}

	return items, nil
}

func (c *TavilyClient) do(ctx context.Context, path string, reqData, respData any) error {
	reqBytes, err := json.Marshal(reqData)
	if err != nil {
		return err
	}

	reqURL := c.base.JoinPath(path)
	request, err := http.NewRequestWithContext(ctx, http.MethodPost, reqURL.String(), bytes.NewReader(reqBytes))
	if err != nil {
		return err
	}

	request.Header.Set("Content-Type", "application/json")
	request.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(request)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d, body: %s", resp.StatusCode, string(respBody))
	}

	if err := json.Unmarshal(respBody, respData); err != nil {
		return fmt.Errorf("unmarshal response: %w", err)
	}

	return nil
}

func parsePublished(raw string) time.Time {
	if raw == "" {
		return time.Now().UTC()
	}
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts
	}
	if ts, err := time.Parse("2006-01-02", raw); err == nil {
		return ts
	}
	return time.Now().UTC()
}

func hostOf(raw string) string {
	u, err := url.Parse(raw)
	if err != nil || u.Hostname() == "" {
		return "Unknown"
	}
	return strings.TrimPrefix(u.Hostname(), "www.")
}
