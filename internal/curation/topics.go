package curation

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/daye-lim/news-intel/internal/apperr"
	"github.com/daye-lim/news-intel/internal/domain"
	"github.com/google/uuid"
)

const topicsFile = "topics.json"

// defaultTopics seed the first run, matching the dashboard defaults.
func defaultTopics() []domain.Topic {
	now := time.Now().UTC()
	return []domain.Topic{
		{ID: "ai-regulation", Name: "AI Regulation", Color: domain.ColorPresets[0], CreatedAt: now},
		{ID: "tech-policy", Name: "Tech Policy", Color: domain.ColorPresets[1], CreatedAt: now},
	}
}

type TopicStore struct {
	mu     sync.RWMutex
	path   string
	topics []domain.Topic
}

func NewTopicStore(dataDir string) *TopicStore {
	path := filepath.Join(dataDir, topicsFile)
	return &TopicStore{
		path:   path,
		topics: loadJSON(path, defaultTopics()),
	}
}

func (s *TopicStore) List() []domain.Topic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Topic, len(s.topics))
	copy(out, s.topics)
	return out
}

// Names returns topic names in store order, the default query set for the
// headlines endpoint.
func (s *TopicStore) Names() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	names := make([]string, len(s.topics))
	for i, t := range s.topics {
		names[i] = t.Name
	}
	return names
}

// Add creates a topic with the next free palette color. Blank names and
// case-insensitive duplicates are rejected.
func (s *TopicStore) Add(name string) (domain.Topic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Topic{}, apperr.NewValidation("topic name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.topics {
		if strings.EqualFold(t.Name, name) {
			return domain.Topic{}, apperr.NewValidation("topic already exists")
		}
	}

	topic := domain.Topic{
		ID:        uuid.NewString(),
		Name:      name,
		Color:     domain.NextColor(s.topics),
		CreatedAt: time.Now().UTC(),
	}
	s.topics = append(s.topics, topic)
	saveJSON(s.path, s.topics)

	return topic, nil
}

// Rename changes a topic's name, keeping id and color.
func (s *TopicStore) Rename(id, name string) (domain.Topic, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Topic{}, apperr.NewValidation("topic name is required")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for _, t := range s.topics {
		if t.ID != id && strings.EqualFold(t.Name, name) {
			return domain.Topic{}, apperr.NewValidation("topic already exists")
		}
	}

	for i, t := range s.topics {
		if t.ID == id {
			s.topics[i].Name = name
			saveJSON(s.path, s.topics)
			return s.topics[i], nil
		}
	}

	return domain.Topic{}, apperr.NewNotFound("topic not found")
}

func (s *TopicStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, t := range s.topics {
		if t.ID == id {
			s.topics = append(s.topics[:i], s.topics[i+1:]...)
			saveJSON(s.path, s.topics)
			return nil
		}
	}
	return apperr.NewNotFound("topic not found")
}
