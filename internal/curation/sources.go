package curation

import (
	"path/filepath"
	"sync"

	"github.com/daye-lim/news-intel/internal/apperr"
	"github.com/daye-lim/news-intel/internal/domain"
	"github.com/google/uuid"
)

const sourcesFile = "sources.json"

// defaultSources is the seeded publisher catalog.
func defaultSources() []domain.NewsSource {
	return []domain.NewsSource{
		{ID: "reuters", Domain: "reuters.com", Name: "Reuters"},
		{ID: "nytimes", Domain: "nytimes.com", Name: "New York Times"},
		{ID: "ft", Domain: "ft.com", Name: "Financial Times"},
		{ID: "wsj", Domain: "wsj.com", Name: "Wall Street Journal"},
		{ID: "techcrunch", Domain: "techcrunch.com", Name: "TechCrunch"},
		{ID: "theguardian", Domain: "theguardian.com", Name: "The Guardian"},
		{ID: "politico", Domain: "politico.com", Name: "Politico"},
		{ID: "bbc", Domain: "bbc.com", Name: "BBC"},
		{ID: "bloomberg", Domain: "bloomberg.com", Name: "Bloomberg"},
		{ID: "wired", Domain: "wired.com", Name: "Wired"},
		{ID: "arstechnica", Domain: "arstechnica.com", Name: "Ars Technica"},
		{ID: "theverge", Domain: "theverge.com", Name: "The Verge"},
	}
}

type SourceStore struct {
	mu      sync.RWMutex
	path    string
	sources []domain.NewsSource
}

func NewSourceStore(dataDir string) *SourceStore {
	path := filepath.Join(dataDir, sourcesFile)
	return &SourceStore{
		path:    path,
		sources: loadJSON(path, defaultSources()),
	}
}

func (s *SourceStore) List() []domain.NewsSource {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.NewsSource, len(s.sources))
	copy(out, s.sources)
	return out
}

// Domains returns the canonical domains in store order, ready to pass as
// search include filters.
func (s *SourceStore) Domains() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	domains := make([]string, len(s.sources))
	for i, src := range s.sources {
		domains[i] = src.Domain
	}
	return domains
}

// Add cleans the raw domain and appends a new source. Malformed input and
// existing domains degrade to a no-op: the current list comes back unchanged
// and no error is raised.
func (s *SourceStore) Add(raw string) []domain.NewsSource {
	cleaned := domain.CleanDomain(raw)
	if cleaned == "" {
		return s.List()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, src := range s.sources {
		if src.Domain == cleaned {
			return s.snapshot()
		}
	}

	s.sources = append(s.sources, domain.NewsSource{
		ID:     uuid.NewString(),
		Domain: cleaned,
		Name:   domain.DeriveSourceName(cleaned),
	})
	saveJSON(s.path, s.sources)

	return s.snapshot()
}

func (s *SourceStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, src := range s.sources {
		if src.ID == id {
			s.sources = append(s.sources[:i], s.sources[i+1:]...)
			saveJSON(s.path, s.sources)
			return nil
		}
	}
	return apperr.NewNotFound("source not found")
}

// snapshot copies the list; callers must hold at least the read lock.
func (s *SourceStore) snapshot() []domain.NewsSource {
	out := make([]domain.NewsSource, len(s.sources))
	copy(out, s.sources)
	return out
}
