package router

import (
	"net/http"
	"time"

	"github.com/daye-lim/news-intel/internal/apperr"
	"github.com/daye-lim/news-intel/internal/curation"
	"github.com/daye-lim/news-intel/internal/domain"
	"github.com/daye-lim/news-intel/internal/search"
	"github.com/daye-lim/news-intel/pkg/utils"
	"github.com/labstack/echo/v4"
)

// NewsRouter serves the search surface: keyword fan-out plus the fixed-query
// headlines feed.
type NewsRouter struct {
	e          *echo.Echo
	aggregator *search.Aggregator
	topics     *curation.TopicStore
	sources    *curation.SourceStore
}

func NewNewsRouter(e *echo.Echo, aggregator *search.Aggregator, topics *curation.TopicStore, sources *curation.SourceStore) *NewsRouter {
	return &NewsRouter{
		e:          e,
		aggregator: aggregator,
		topics:     topics,
		sources:    sources,
	}
}

func (r *NewsRouter) Bind() {
	r.e.POST("/api/news", r.newsHandler)
	r.e.GET("/api/search", r.headlinesHandler)
}

type newsRequest struct {
	Keywords []string `json:"keywords"`
	Domains  []string `json:"domains"`
}

type newsResponse struct {
	Results    map[string][]domain.NewsItem `json:"results"`
	Ranked     []domain.NewsItem            `json:"ranked"`
	SearchedAt time.Time                    `json:"searchedAt"`
	IsDemo     bool                         `json:"isDemo"`
}

func (r *NewsRouter) newsHandler(c echo.Context) error {
	var req newsRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	keywords := utils.CompactStrings(req.Keywords)
	if len(keywords) == 0 {
		return apperr.NewValidation("keywords array is required")
	}

	batch := r.aggregator.Search(c.Request().Context(), keywords, req.Domains)

	return c.JSON(http.StatusOK, newsResponse{
		Results:    batch.Results,
		Ranked:     search.Rank(batch),
		SearchedAt: batch.SearchedAt,
		IsDemo:     batch.IsDemo,
	})
}

type headlinesResponse struct {
	Results    []domain.NewsItem `json:"results"`
	Queries    []string          `json:"queries"`
	SearchedAt time.Time         `json:"searchedAt"`
	IsDemo     bool              `json:"isDemo"`
}

// headlinesHandler queries the stored topics against the stored source
// whitelist and returns one flat list ordered by relevance.
func (r *NewsRouter) headlinesHandler(c echo.Context) error {
	queries := r.topics.Names()

	batch := r.aggregator.Search(c.Request().Context(), queries, r.sources.Domains())

	var flat []domain.NewsItem
	for _, kw := range batch.Keywords {
		for _, item := range batch.Results[kw] {
			item.Category = kw
			flat = append(flat, item)
		}
	}

	return c.JSON(http.StatusOK, headlinesResponse{
		Results:    search.TopByScore(flat),
		Queries:    queries,
		SearchedAt: batch.SearchedAt,
		IsDemo:     batch.IsDemo,
	})
}
