package router

import (
	"net/http"

	"github.com/daye-lim/news-intel/internal/apperr"
	"github.com/daye-lim/news-intel/internal/curation"
	"github.com/labstack/echo/v4"
)

// CurationRouter serves the stored dashboard state: topics, sources and
// session insights.
type CurationRouter struct {
	e        *echo.Echo
	topics   *curation.TopicStore
	sources  *curation.SourceStore
	insights *curation.InsightStore
}

func NewCurationRouter(e *echo.Echo, topics *curation.TopicStore, sources *curation.SourceStore, insights *curation.InsightStore) *CurationRouter {
	return &CurationRouter{
		e:        e,
		topics:   topics,
		sources:  sources,
		insights: insights,
	}
}

func (r *CurationRouter) Bind() {
	r.e.GET("/api/topics", r.listTopics)
	r.e.POST("/api/topics", r.addTopic)
	r.e.PUT("/api/topics/:id", r.renameTopic)
	r.e.DELETE("/api/topics/:id", r.deleteTopic)

	r.e.GET("/api/sources", r.listSources)
	r.e.POST("/api/sources", r.addSource)
	r.e.DELETE("/api/sources/:id", r.deleteSource)

	r.e.GET("/api/insights", r.listInsights)
	r.e.PUT("/api/insights/:newsId", r.upsertInsight)
}

type topicRequest struct {
	Name string `json:"name"`
}

func (r *CurationRouter) listTopics(c echo.Context) error {
	return c.JSON(http.StatusOK, r.topics.List())
}

func (r *CurationRouter) addTopic(c echo.Context) error {
	var req topicRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	topic, err := r.topics.Add(req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, topic)
}

func (r *CurationRouter) renameTopic(c echo.Context) error {
	var req topicRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	topic, err := r.topics.Rename(c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, topic)
}

func (r *CurationRouter) deleteTopic(c echo.Context) error {
	if err := r.topics.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type sourceRequest struct {
	Domain string `json:"domain"`
}

func (r *CurationRouter) listSources(c echo.Context) error {
	return c.JSON(http.StatusOK, r.sources.List())
}

func (r *CurationRouter) addSource(c echo.Context) error {
	var req sourceRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	// Malformed or duplicate domains are a designed no-op, not an error.
	return c.JSON(http.StatusOK, r.sources.Add(req.Domain))
}

func (r *CurationRouter) deleteSource(c echo.Context) error {
	if err := r.sources.Delete(c.Param("id")); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

type insightRequest struct {
	Insight string `json:"insight"`
}

func (r *CurationRouter) listInsights(c echo.Context) error {
	return c.JSON(http.StatusOK, r.insights.List())
}

func (r *CurationRouter) upsertInsight(c echo.Context) error {
	var req insightRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}

	return c.JSON(http.StatusOK, r.insights.Upsert(c.Param("newsId"), req.Insight))
}
