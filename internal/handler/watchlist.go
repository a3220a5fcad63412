package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nyumba/nyumba-api/internal/repository"
)

// WatchlistHandler lets authenticated users save listings for later.
type WatchlistHandler struct {
	Watchlist *repository.WatchlistRepo
}

func NewWatchlistHandler(w *repository.WatchlistRepo) *WatchlistHandler {
	return &WatchlistHandler{Watchlist: w}
}

type addWatchReq struct {
	PropertyID string `json:"property_id" validate:"required"`
}

// Add saves a property to the caller's watchlist.
func (h *WatchlistHandler) Add(c echo.Context) error {
	var req addWatchReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "property_id required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Watchlist.Add(ctx, actorID(c), req.PropertyID); err != nil {
		switch err {
		case repository.ErrPropertyNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		case repository.ErrConflict:
			return c.JSON(http.StatusConflict, echo.Map{"error": "property already saved"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "save failed"})
	}
	return c.NoContent(http.StatusCreated)
}

// Remove drops a property from the caller's watchlist.
func (h *WatchlistHandler) Remove(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Watchlist.Remove(ctx, actorID(c), c.Param("property_id")); err != nil {
		if err == repository.ErrPropertyNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "not in watchlist"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "remove failed"})
	}
	return c.NoContent(http.StatusNoContent)
}

// List returns the caller's saved properties, most recent first.
func (h *WatchlistHandler) List(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	entries, err := h.Watchlist.ListByUser(ctx, actorID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"watchlist": entries, "count": len(entries)})
}
