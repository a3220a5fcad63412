package router // package router defines how HTTP routes are registered for the API

import (
	"github.com/labstack/echo/v4"

	"github.com/nyumba/nyumba-api/internal/handler"
	"github.com/nyumba/nyumba-api/internal/middleware"
)

// RegisterRoutes registers routes that do not require authentication.
// Currently it exposes only a health check used by load balancers.
func RegisterRoutes(e *echo.Echo) {
	e.GET("/healthz", handler.Health)
}

// RegisterAuth registers the authentication routes.  Unauthenticated
// operations live under /v1/auth; /v1/me requires a valid token.
func RegisterAuth(e *echo.Echo, a *handler.AuthHandler, jwtSecret string) {
	g := e.Group("/v1/auth")
	g.POST("/register", a.Register)
	g.POST("/login", a.Login)
	g.POST("/refresh", a.Refresh)
	// Logout accepts either a refresh_token in the body or, when called
	// through the protected alias below, revokes all sessions.
	g.POST("/logout", a.Logout)

	auth := e.Group("/v1", middleware.JWTAuth(jwtSecret))
	auth.GET("/me", a.Me)
	auth.POST("/logout", a.Logout)
}

// RegisterPublic registers the unauthenticated browse and search
// endpoints.  cache may be a no-op middleware when Redis is absent.
func RegisterPublic(e *echo.Echo, b *handler.BrowseHandler, s *handler.SearchHandler, cache echo.MiddlewareFunc) {
	e.GET("/v1/properties", b.ListProperties, cache)
	e.GET("/v1/properties/:id", b.GetProperty, cache)
	e.GET("/v1/search/properties", s.SearchProperties, cache)
}
