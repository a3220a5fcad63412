package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nyumba/nyumba-api/internal/repository"
)

// BrowseHandler serves the public, read-only listing endpoints.  These
// sit behind the response cache since every visitor sees the same data.
type BrowseHandler struct {
	Properties *repository.PropertyRepo
}

func NewBrowseHandler(p *repository.PropertyRepo) *BrowseHandler {
	return &BrowseHandler{Properties: p}
}

// ListProperties returns every listing, newest first.
func (h *BrowseHandler) ListProperties(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	props, err := h.Properties.ListAll(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"properties": props, "count": len(props)})
}

// GetProperty returns a single listing by id.
func (h *BrowseHandler) GetProperty(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Properties.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrPropertyNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, p)
}
