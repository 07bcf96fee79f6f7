package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nyaya-ai/nyaya/internal/cases"
	"github.com/nyaya-ai/nyaya/internal/eligibility"
	"github.com/nyaya-ai/nyaya/internal/njdg"
	"github.com/nyaya-ai/nyaya/internal/telelaw"
	"github.com/nyaya-ai/nyaya/models"
)

// Resolver answers chat queries. Satisfied by the resolution pipeline.
type Resolver interface {
	Resolve(ctx context.Context, query string) models.ResolvedResponse
}

// Handler holds the API dependencies. Probe reports generation backend
// health; Now defaults to time.Now.
type Handler struct {
	Resolver Resolver
	Roster   *telelaw.Roster
	Probe    func(ctx context.Context) bool
	Now      func() time.Time
}

// Register mounts all routes.
func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.root)
	e.GET("/healthz", h.health)

	api := e.Group("/api")
	api.POST("/chat", h.chat)
	api.GET("/lawyers", h.lawyers)
	api.POST("/lawyers/:id/connect", h.connect)
	api.GET("/cases/:cnr", h.caseStatus)
	api.POST("/eligibility", h.eligibility)
	api.GET("/stats/njdg", h.njdgStats)
}

func (h *Handler) root(c echo.Context) error {
	status := "fallback"
	if h.Probe != nil && h.Probe(c.Request().Context()) {
		status = "enabled"
	}
	return c.JSON(http.StatusOK, map[string]string{
		"message":   "Nyaya API is running",
		"version":   version,
		"ai_status": status,
	})
}

func (h *Handler) health(c echo.Context) error {
	ollama := h.Probe != nil && h.Probe(c.Request().Context())
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status": "healthy",
		"ollama": ollama,
	})
}

func (h *Handler) chat(c echo.Context) error {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.Bind(&req); err != nil || req.Message == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "message required")
	}
	return c.JSON(http.StatusOK, h.Resolver.Resolve(c.Request().Context(), req.Message))
}

func (h *Handler) lawyers(c echo.Context) error {
	list := h.Roster.Available(c.QueryParam("specialization"))
	return c.JSON(http.StatusOK, map[string]interface{}{"lawyers": list})
}

func (h *Handler) connect(c echo.Context) error {
	return c.JSON(http.StatusOK, h.Roster.Connect(c.Param("id")))
}

func (h *Handler) caseStatus(c echo.Context) error {
	record, err := cases.Lookup(c.Param("cnr"))
	switch {
	case errors.Is(err, cases.ErrInvalidCNR):
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	case errors.Is(err, cases.ErrNotFound):
		return echo.NewHTTPError(http.StatusNotFound, err.Error())
	case err != nil:
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, record)
}

func (h *Handler) eligibility(c echo.Context) error {
	var req eligibility.Request
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, eligibility.Check(req))
}

func (h *Handler) njdgStats(c echo.Context) error {
	now := time.Now
	if h.Now != nil {
		now = h.Now
	}
	return c.JSON(http.StatusOK, njdg.Snapshot(now()))
}
