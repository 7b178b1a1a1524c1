package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// AdminOnly restricts a route to callers authenticated with the static admin
// token. JWT sessions, even valid ones, are rejected.
func AdminOnly() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			admin, _ := c.Get("admin").(bool)
			if !admin {
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}
