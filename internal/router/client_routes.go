package router

import (
	"github.com/labstack/echo/v4"

	"github.com/nyumba/nyumba-api/internal/handler"
	"github.com/nyumba/nyumba-api/internal/middleware"
)

// RegisterClient registers the endpoints available to every
// authenticated user regardless of role: profile, viewing requests and
// the watchlist.  Viewing a booking detail is shared with the owner
// side; the handler enforces client-or-owner visibility.
func RegisterClient(e *echo.Echo, p *handler.ProfileHandler, v *handler.ClientViewingHandler, w *handler.WatchlistHandler, jwtSecret string) {
	g := e.Group("/v1", middleware.JWTAuth(jwtSecret))

	// ---- Profile ----
	g.GET("/profile", p.Get)
	g.PUT("/profile", p.Update)

	// ---- Viewings (requesting side) ----
	g.POST("/viewings", v.Create)
	g.GET("/my-viewings", v.ListMine)
	g.GET("/viewings/:id", v.Get)
	g.DELETE("/viewings/:id", v.Cancel)

	// ---- Watchlist ----
	g.POST("/watchlist", w.Add)
	g.GET("/watchlist", w.List)
	g.DELETE("/watchlist/:property_id", w.Remove)
}
