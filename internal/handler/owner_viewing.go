package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/nyumba/nyumba-api/internal/booking"
	"github.com/nyumba/nyumba-api/internal/queue"
	"github.com/nyumba/nyumba-api/internal/repository"
	queue_publisher "github.com/nyumba/nyumba-api/internal/service"
)

// OwnerViewingHandler covers the resolving side of the viewing flow:
// confirming, declining and completing requests on the caller's own
// properties.  Authorization is ownership based, so the handler works
// for landlords and agents alike.
type OwnerViewingHandler struct {
	Viewings   *repository.ViewingRepo
	Properties *repository.PropertyRepo
}

func NewOwnerViewingHandler(v *repository.ViewingRepo, p *repository.PropertyRepo) *OwnerViewingHandler {
	return &OwnerViewingHandler{Viewings: v, Properties: p}
}

// ListForOwner returns all viewing requests on the caller's
// properties, soonest visit first.
func (h *OwnerViewingHandler) ListForOwner(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	views, err := h.Viewings.ListByOwner(ctx, actorID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"viewings": views, "count": len(views)})
}

// PendingCount reports how many unresolved requests the caller has
// across all properties; the app renders it as a badge.
func (h *OwnerViewingHandler) PendingCount(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	n, err := h.Viewings.PendingCountForOwner(ctx, actorID(c))
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{"pending": n})
}

// Confirm accepts a pending viewing and publishes a confirmation event.
func (h *OwnerViewingHandler) Confirm(c echo.Context) error {
	return h.resolve(c, booking.EventConfirm)
}

// Decline rejects a pending viewing.
func (h *OwnerViewingHandler) Decline(c echo.Context) error {
	return h.resolve(c, booking.EventDecline)
}

// Complete marks a confirmed viewing as having taken place.
func (h *OwnerViewingHandler) Complete(c echo.Context) error {
	return h.resolve(c, booking.EventComplete)
}

// resolve applies one owner-side transition.  Ownership is re-read
// from the properties table right before the write so a transferred or
// deleted listing cannot authorize against stale data, and the status
// update is conditional on the status the decision was made against.
func (h *OwnerViewingHandler) resolve(c echo.Context, ev booking.Event) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	d, err := h.Viewings.GetByID(ctx, c.Param("id"))
	if err != nil {
		if err == repository.ErrViewingNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "viewing not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	ownerID, err := h.Properties.OwnerID(ctx, d.PropertyID)
	if err != nil {
		if err == repository.ErrPropertyNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "property not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}

	actor := booking.Actor{ID: actorID(c)}
	next, err := booking.ApplyEvent(d.Status, ev, actor, d.ClientID, ownerID)
	if err != nil {
		switch err {
		case booking.ErrNotAuthorized:
			return c.JSON(http.StatusForbidden, echo.Map{"error": "only the property owner may do this"})
		case booking.ErrInvalidTransition:
			return c.JSON(http.StatusConflict, echo.Map{"error": "transition not allowed from current status"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "transition failed"})
	}

	updatedAt, err := h.Viewings.UpdateStatus(ctx, d.ID, d.Status, next)
	if err != nil {
		switch err {
		case repository.ErrViewingNotFound:
			return c.JSON(http.StatusNotFound, echo.Map{"error": "viewing not found"})
		case booking.ErrInvalidTransition:
			return c.JSON(http.StatusConflict, echo.Map{"error": "viewing was resolved concurrently"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "transition failed"})
	}

	if ev == booking.EventConfirm {
		// Broker failures are logged by the publisher; the viewing is
		// confirmed either way.
		_ = queue_publisher.PublishViewingConfirmed(ctx, queue.ViewingConfirmedEvent{
			ViewingID:     d.ID,
			PropertyID:    d.PropertyID,
			PropertyTitle: d.PropertyTitle,
			Area:          d.PropertyArea,
			Town:          d.PropertyTown,
			OwnerID:       ownerID,
			ClientID:      d.ClientID,
			ClientName:    d.ClientName,
			ScheduledAt:   d.ScheduledAt.UTC().Format(time.RFC3339),
			ConfirmedAt:   updatedAt.UTC().Format(time.RFC3339),
		})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"id":          d.ID,
		"status":      next,
		"status_meta": booking.MetaFor(next),
		"updated_at":  updatedAt,
	})
}
