package search

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/daye-lim/news-intel/internal/domain"
)

// Searcher runs a single provider query.
type Searcher interface {
	Search(ctx context.Context, query string, includeDomains []string) ([]domain.NewsItem, error)
}

// BatchResult is one aggregation cycle: per-keyword result lists plus how and
// when they were produced. Keywords preserves submission order, which fixes
// the flattening order downstream.
type BatchResult struct {
	Keywords   []string
	Results    map[string][]domain.NewsItem
	SearchedAt time.Time
	IsDemo     bool
}

// Aggregator fans one query per keyword out to the search provider. A nil
// searcher means no credential is configured and the demo catalog is served
// instead.
type Aggregator struct {
	searcher Searcher
}

func NewAggregator(searcher Searcher) *Aggregator {
	return &Aggregator{searcher: searcher}
}

// Search queries every keyword concurrently and joins all of them. A keyword
// whose query fails gets an empty list; partial failure never aborts the
// batch.
func (a *Aggregator) Search(ctx context.Context, keywords []string, includeDomains []string) BatchResult {
	batch := BatchResult{
		Keywords:   keywords,
		Results:    make(map[string][]domain.NewsItem, len(keywords)),
		SearchedAt: time.Now().UTC(),
	}

	if a.searcher == nil {
		batch.IsDemo = true
		for _, kw := range keywords {
			batch.Results[kw] = demoNews(kw, batch.SearchedAt)
		}
		return batch
	}

	lists := make([][]domain.NewsItem, len(keywords))

	var wg sync.WaitGroup
	for i, kw := range keywords {
		wg.Add(1)
		go func(i int, kw string) {
			defer wg.Done()
			items, err := a.searcher.Search(ctx, kw, includeDomains)
			if err != nil {
				slog.Warn("search query failed", "keyword", kw, "error", err)
				items = []domain.NewsItem{}
			}
			lists[i] = items
		}(i, kw)
	}
	wg.Wait()

	for i, kw := range keywords {
		batch.Results[kw] = lists[i]
	}

	return batch
}
