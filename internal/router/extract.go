package router

import (
	"log/slog"
	"net/http"

	"github.com/daye-lim/news-intel/internal/apperr"
	"github.com/daye-lim/news-intel/internal/clean"
	"github.com/daye-lim/news-intel/internal/extract"
	"github.com/labstack/echo/v4"
)

// ExtractRouter serves single-URL full-text extraction. A nil extractor means
// no credential is configured; the endpoint then answers with null content
// rather than an error.
type ExtractRouter struct {
	e         *echo.Echo
	extractor extract.Extractor
}

func NewExtractRouter(e *echo.Echo, extractor extract.Extractor) *ExtractRouter {
	return &ExtractRouter{
		e:         e,
		extractor: extractor,
	}
}

func (r *ExtractRouter) Bind() {
	r.e.POST("/api/extract", r.extractHandler)
}

type extractRequest struct {
	URL string `json:"url"`
}

type extractResponse struct {
	ExtractedContent *string `json:"extractedContent"`
}

func (r *ExtractRouter) extractHandler(c echo.Context) error {
	var req extractRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if req.URL == "" {
		return apperr.NewValidation("url is required")
	}

	if r.extractor == nil {
		return c.JSON(http.StatusOK, extractResponse{})
	}

	raw, err := r.extractor.Extract(c.Request().Context(), req.URL)
	if err != nil {
		slog.Warn("extraction failed", "url", req.URL, "error", err)
		return c.JSON(http.StatusOK, extractResponse{})
	}

	cleaned := clean.Content(raw)
	return c.JSON(http.StatusOK, extractResponse{ExtractedContent: &cleaned})
}
