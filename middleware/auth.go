package middleware

import (
	"net/http"

	"github.com/Crish19/airbnb-clone-backend/utils"

	"github.com/labstack/echo/v4"
)

// Auth requires a valid session cookie and stores the caller identity in the
// echo context. A missing or unverifiable cookie ends the request with 401;
// verification failures never propagate past the middleware.
func Auth(sessions *utils.SessionManager) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			cookie, err := c.Cookie(sessions.CookieName())
			if err != nil || cookie.Value == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Unauthorized",
				})
			}

			claims, err := sessions.Verify(cookie.Value)
			if err != nil {
				return c.JSON(http.StatusUnauthorized, map[string]string{
					"error": "Unauthorized",
				})
			}

			c.Set("user_id", claims.UserID)
			c.Set("user_email", claims.Email)

			return next(c)
		}
	}
}
