package digest

import (
	"context"
	"log/slog"
	"sync"

	"github.com/daye-lim/news-intel/internal/clean"
	"github.com/daye-lim/news-intel/internal/domain"
	"github.com/daye-lim/news-intel/internal/extract"
)

// Enrich replaces each article's snippet with cleaned full text where
// extraction succeeds and with the cleaned snippet where it does not. Every
// article keeps a content string; order is preserved. Extractions run
// concurrently, one per article, and failures are absorbed per article.
func Enrich(ctx context.Context, extractor extract.Extractor, articles []domain.Article) []domain.Article {
	enriched := make([]domain.Article, len(articles))
	copy(enriched, articles)

	if extractor == nil {
		for i := range enriched {
			enriched[i].Content = clean.Content(enriched[i].Content)
		}
		return enriched
	}

	var wg sync.WaitGroup
	for i := range enriched {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			raw, err := extractor.Extract(ctx, enriched[i].URL)
			if err != nil {
				slog.Debug("extraction failed, using snippet", "url", enriched[i].URL, "error", err)
				enriched[i].Content = clean.Content(enriched[i].Content)
				return
			}
			enriched[i].Content = clean.Content(raw)
		}(i)
	}
	wg.Wait()

	return enriched
}
