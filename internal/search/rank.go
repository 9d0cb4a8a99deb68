package search

import (
	"sort"

	"github.com/daye-lim/news-intel/internal/domain"
)

// Rank flattens a batch into one deduplicated, recency-ordered collection.
// Items are labeled with their originating keyword as category. When two
// keywords return the same URL the entry with the strictly higher score
// survives; on equal scores the first-seen keyword keeps the label. The final
// order is by published date descending, stable for equal dates.
func Rank(batch BatchResult) []domain.NewsItem {
	best := make(map[string]int)
	var merged []domain.NewsItem

	for _, kw := range batch.Keywords {
		for _, item := range batch.Results[kw] {
			item.Category = kw
			if idx, seen := best[item.URL]; seen {
				if item.Score > merged[idx].Score {
					merged[idx] = item
				}
				continue
			}
			best[item.URL] = len(merged)
			merged = append(merged, item)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].PublishedAt.After(merged[j].PublishedAt)
	})

	return merged
}

// TopByScore deduplicates by URL keeping the first occurrence and orders by
// relevance score descending. Used by the fixed-query headlines endpoint.
func TopByScore(items []domain.NewsItem) []domain.NewsItem {
	seen := make(map[string]bool, len(items))
	unique := make([]domain.NewsItem, 0, len(items))
	for _, item := range items {
		if seen[item.URL] {
			continue
		}
		seen[item.URL] = true
		unique = append(unique, item)
	}

	sort.SliceStable(unique, func(i, j int) bool {
		return unique[i].Score > unique[j].Score
	})

	return unique
}
