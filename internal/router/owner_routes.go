package router // router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/nyumba/nyumba-api/internal/handler"
	"github.com/nyumba/nyumba-api/internal/middleware"
)

// RegisterOwner registers the listing-management endpoints.  All
// routes require a valid JWT and the landlord or agent role; viewing
// resolution is additionally guarded by ownership checks inside the
// handlers.
func RegisterOwner(e *echo.Echo, p *handler.PropertyHandler, v *handler.OwnerViewingHandler, jwtSecret string) {
	g := e.Group(
		"/v1",
		middleware.JWTAuth(jwtSecret),
		middleware.RequireRole("landlord", "agent"),
	)

	// ---- Properties ----
	g.POST("/properties", p.Create)
	g.GET("/my-properties", p.ListMine)
	g.PUT("/properties/:id", p.Update)
	g.PATCH("/properties/:id", p.Update) // alias for clients that use PATCH
	g.DELETE("/properties/:id", p.Delete)

	// ---- Viewings (resolving side) ----
	g.GET("/owner/viewings", v.ListForOwner)
	g.GET("/owner/viewings/pending-count", v.PendingCount)
	g.POST("/viewings/:id/confirm", v.Confirm)
	g.POST("/viewings/:id/decline", v.Decline)
	g.POST("/viewings/:id/complete", v.Complete)
}
