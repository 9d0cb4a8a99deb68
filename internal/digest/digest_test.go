package digest

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/daye-lim/news-intel/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	content map[string]string
}

func (f *fakeExtractor) Extract(ctx context.Context, articleURL string) (string, error) {
	if c, ok := f.content[articleURL]; ok {
		return c, nil
	}
	return "", errors.New("extraction failed")
}

type fakeGenerator struct {
	out string
	err error
}

func (f *fakeGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	return f.out, f.err
}

func sampleArticles() []domain.Article {
	return []domain.Article{
		{Title: "First", Content: "snippet one", Source: "reuters.com", Category: "AI Law", URL: "https://reuters.com/1"},
		{Title: "Second", Content: "snippet two", Source: "wsj.com", Category: "Tech Regulation", URL: "https://wsj.com/2"},
	}
}

func TestEnrich_ExtractionSuccessReplacesContent(t *testing.T) {
	extractor := &fakeExtractor{content: map[string]string{
		"https://reuters.com/1": "Full body of the first article.\nAdvertisement\nSecond paragraph.",
	}}

	enriched := Enrich(context.Background(), extractor, sampleArticles())
	require.Len(t, enriched, 2)

	assert.Contains(t, enriched[0].Content, "Full body of the first article.")
	assert.NotContains(t, enriched[0].Content, "Advertisement")
}

func TestEnrich_ExtractionFailureFallsBackToSnippet(t *testing.T) {
	extractor := &fakeExtractor{}

	enriched := Enrich(context.Background(), extractor, sampleArticles())
	require.Len(t, enriched, 2)

	assert.Equal(t, "snippet one", enriched[0].Content)
	assert.Equal(t, "snippet two", enriched[1].Content)
	assert.NotEmpty(t, enriched[0].Content)
}

func TestEnrich_NilExtractorCleansSnippets(t *testing.T) {
	articles := sampleArticles()
	articles[0].Content = "snippet body\n\n\n\nwith gaps"

	enriched := Enrich(context.Background(), nil, articles)
	assert.Equal(t, "snippet body\n\nwith gaps", enriched[0].Content)
}

func TestEnrich_PreservesOrder(t *testing.T) {
	extractor := &fakeExtractor{content: map[string]string{
		"https://wsj.com/2": "Second article full text only.",
	}}

	enriched := Enrich(context.Background(), extractor, sampleArticles())
	assert.Equal(t, "First", enriched[0].Title)
	assert.Equal(t, "Second", enriched[1].Title)
}

func TestGenerate_UsesProviderOutput(t *testing.T) {
	svc := NewService(nil, &fakeGenerator{out: "# 뉴스레터\n본문"})

	res := svc.Generate(context.Background(), sampleArticles())
	assert.True(t, res.IsAI)
	assert.Equal(t, "# 뉴스레터\n본문", res.Newsletter)
}

func TestGenerate_ProviderFailureFallsBack(t *testing.T) {
	svc := NewService(nil, &fakeGenerator{err: errors.New("quota exceeded")})

	res := svc.Generate(context.Background(), sampleArticles())
	assert.False(t, res.IsAI)
	assert.Contains(t, res.Newsletter, "News Intelligence Weekly")
	assert.Contains(t, res.Newsletter, "First")
	assert.Contains(t, res.Newsletter, "https://reuters.com/1")
}

func TestGenerate_NoGeneratorFallsBack(t *testing.T) {
	svc := NewService(nil, nil)

	res := svc.Generate(context.Background(), sampleArticles())
	assert.False(t, res.IsAI)
	assert.Contains(t, res.Newsletter, "뉴스 2건")
}

func TestFallbackNewsletter_Deterministic(t *testing.T) {
	now := time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC)
	articles := sampleArticles()

	first := fallbackNewsletter(articles, now)
	second := fallbackNewsletter(articles, now)
	assert.Equal(t, first, second)

	assert.Contains(t, first, "2026년 8월 30일")
	assert.Contains(t, first, "## 1. First")
	assert.Contains(t, first, "## 2. Second")
	assert.Contains(t, first, "**카테고리:** AI Law | **출처:** reuters.com")
}

func TestFallbackNewsletter_TruncatesContent(t *testing.T) {
	long := strings.Repeat("가", 1000)
	articles := []domain.Article{{Title: "Long", Content: long, URL: "https://x.com/1"}}

	out := fallbackNewsletter(articles, time.Now())
	assert.NotContains(t, out, long)
	assert.Contains(t, out, strings.Repeat("가", previewLength)+"...")
}

func TestNewsletterPrompt_ContainsArticles(t *testing.T) {
	now := time.Date(2026, 8, 30, 0, 0, 0, 0, time.UTC)
	prompt := newsletterPrompt(sampleArticles(), now)

	for i, a := range sampleArticles() {
		assert.Contains(t, prompt, fmt.Sprintf("[Article %d]", i+1))
		assert.Contains(t, prompt, "Title: "+a.Title)
		assert.Contains(t, prompt, "URL: "+a.URL)
	}
	assert.Contains(t, prompt, "2026년 8월 30일")
}
