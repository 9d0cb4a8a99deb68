package router

import (
	"net/http"

	"github.com/daye-lim/news-intel/internal/apperr"
	"github.com/daye-lim/news-intel/internal/digest"
	"github.com/daye-lim/news-intel/internal/domain"
	"github.com/labstack/echo/v4"
)

// DigestRouter serves newsletter generation over a selected article set.
type DigestRouter struct {
	e   *echo.Echo
	svc *digest.Service
}

func NewDigestRouter(e *echo.Echo, svc *digest.Service) *DigestRouter {
	return &DigestRouter{
		e:   e,
		svc: svc,
	}
}

func (r *DigestRouter) Bind() {
	r.e.POST("/api/digest", r.digestHandler)
}

type digestRequest struct {
	Articles []domain.Article `json:"articles"`
}

func (r *DigestRouter) digestHandler(c echo.Context) error {
	var req digestRequest
	if err := c.Bind(&req); err != nil {
		return apperr.NewValidationWrap("invalid request body", err)
	}
	if len(req.Articles) == 0 {
		return apperr.NewValidation("no articles provided")
	}

	result := r.svc.Generate(c.Request().Context(), req.Articles)
	return c.JSON(http.StatusOK, result)
}
