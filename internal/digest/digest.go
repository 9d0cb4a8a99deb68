// Package digest turns a user-selected set of articles into a formatted
// newsletter: enrich content, ask the generation provider, and fall back to a
// locally rendered digest when the provider is missing or fails.
package digest

import (
	"context"
	"log/slog"
	"time"

	"github.com/daye-lim/news-intel/internal/domain"
	"github.com/daye-lim/news-intel/internal/extract"
)

type Service struct {
	extractor extract.Extractor // nil: skip extraction, clean snippets only
	generator Generator         // nil: always use the local fallback
}

func NewService(extractor extract.Extractor, generator Generator) *Service {
	return &Service{
		extractor: extractor,
		generator: generator,
	}
}

// Result is the generated newsletter plus which path produced it.
type Result struct {
	Newsletter string `json:"newsletter"`
	IsAI       bool   `json:"isAI"`
}

// Generate enriches the articles and produces the digest. Provider failure is
// absorbed: the caller always gets a usable document.
func (s *Service) Generate(ctx context.Context, articles []domain.Article) Result {
	enriched := Enrich(ctx, s.extractor, articles)
	now := time.Now()

	if s.generator == nil {
		return Result{Newsletter: fallbackNewsletter(enriched, now)}
	}

	newsletter, err := s.generator.Generate(ctx, newsletterPrompt(enriched, now))
	if err != nil || newsletter == "" {
		slog.Warn("newsletter generation failed, using local fallback", "error", err)
		return Result{Newsletter: fallbackNewsletter(enriched, now)}
	}

	return Result{Newsletter: newsletter, IsAI: true}
}
