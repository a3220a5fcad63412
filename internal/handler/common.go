package handler

import (
	"github.com/labstack/echo/v4"
)

// actorID returns the authenticated user's uuid from the request
// context, or "" when the JWT middleware did not run or the claim is
// missing.
func actorID(c echo.Context) string {
	if v := c.Get("user_id"); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// actorRole returns the authenticated user's role claim, or "".
func actorRole(c echo.Context) string {
	if v := c.Get("role"); v != nil {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}
