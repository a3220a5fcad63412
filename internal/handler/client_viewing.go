package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nyumba/nyumba-api/internal/booking"
	"github.com/nyumba/nyumba-api/internal/model"
	"github.com/nyumba/nyumba-api/internal/repository"
)

// ClientViewingHandler covers the viewing flow from the requesting
// side: booking a visit, listing own bookings and cancelling a pending
// one.  Any authenticated user can request a viewing.
type ClientViewingHandler struct {
	Viewings   *repository.ViewingRepo
	Properties *repository.PropertyRepo
}

func NewClientViewingHandler(v *repository.ViewingRepo, p *repository.PropertyRepo) *ClientViewingHandler {
	return &ClientViewingHandler{Viewings: v, Properties: p}
}

type createViewingReq struct {
	PropertyID  string `json:"property_id" validate:"required"`
	ScheduledAt string `json:"scheduled_at" validate:"required"` // RFC 3339
	Message     string `json:"message"`
}

// Create books a pending viewing for the caller.  The requested date
// must not lie in the past and the caller may hold at most one pending
// request per property.
func (h *ClientViewingHandler) Create(c echo.Context) error {
	var req createViewingReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "property_id and scheduled_at required"})
	}
	scheduledAt, err := time.Parse(time.RFC3339, req.ScheduledAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "scheduled_at must be RFC 3339"})
	}
	if err := booking.ValidateScheduledAt(scheduledAt, time.Now()); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "scheduled date is in the past"})
	}

	v := &model.ViewingBooking{
		PropertyID:    req.PropertyID,
		ClientID:      actorID(c),
		ScheduledAt:   scheduledAt,
		ClientMessage: strings.TrimSpace(req.Message),
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	if err := h.Viewings.Create(ctx, v); err != nil {
		switch err {
		case repository.ErrPropertyNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		case booking.ErrDuplicatePending:
			return c.JSON(http.StatusConflict, echo.Map{"error": "a pending viewing for this property already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create viewing failed"})
	}
	return c.JSON(http.StatusCreated, v)
}

// ListMine returns the caller's viewings, soonest visit first.
func (h *ClientViewingHandler) ListMine(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	views, err := h.Viewings.ListByClient(ctx, actorID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"viewings": views, "count": len(views)})
}

// Get returns one viewing.  Only the requesting client and the
// property owner may see it.
func (h *ClientViewingHandler) Get(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.Viewings.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrViewingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "viewing not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	uid := actorID(c)
	if d.ClientID != uid && d.OwnerID != uid {
		return c.JSON(http.StatusForbidden, echo.Map{"error": "forbidden"})
	}
	return c.JSON(http.StatusOK, d)
}

// Cancel withdraws the caller's own pending viewing.
func (h *ClientViewingHandler) Cancel(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.Viewings.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrViewingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "viewing not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	actor := booking.Actor{ID: actorID(c)}
	next, err := booking.ApplyEvent(d.Status, booking.EventCancel, actor, d.ClientID, d.OwnerID)
	if err != nil {
		switch err {
		case booking.ErrNotAuthorized:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "only the requesting client may cancel"})
		case booking.ErrInvalidTransition:
			return c.JSON(http.StatusConflict, echo.Map{"error": "viewing can no longer be cancelled"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}

	if _, err := h.Viewings.UpdateStatus(ctx, d.ID, d.Status, next); err != nil {
		switch err {
		case repository.ErrViewingNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "viewing not found"})
		case booking.ErrInvalidTransition:
			return c.JSON(http.StatusConflict, echo.Map{"error": "viewing was resolved concurrently"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "cancel failed"})
	}
	return c.NoContent(http.StatusNoContent)
}
