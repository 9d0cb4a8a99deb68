package curation

import (
	"sync"
	"time"

	"github.com/daye-lim/news-intel/internal/domain"
)

// InsightStore holds per-result analyst notes in process memory only. This is
// session state: a restart wipes it, and that is the intended lifecycle.
type InsightStore struct {
	mu       sync.RWMutex
	insights map[string]domain.Insight
}

func NewInsightStore() *InsightStore {
	return &InsightStore{
		insights: make(map[string]domain.Insight),
	}
}

func (s *InsightStore) Upsert(newsID, text string) domain.Insight {
	s.mu.Lock()
	defer s.mu.Unlock()

	insight := domain.Insight{
		NewsID:    newsID,
		Insight:   text,
		UpdatedAt: time.Now().UTC(),
	}
	s.insights[newsID] = insight
	return insight
}

func (s *InsightStore) Get(newsID string) (domain.Insight, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	insight, ok := s.insights[newsID]
	return insight, ok
}

func (s *InsightStore) List() []domain.Insight {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Insight, 0, len(s.insights))
	for _, insight := range s.insights {
		out = append(out, insight)
	}
	return out
}
