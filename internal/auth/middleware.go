package auth

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// subjectKey is where the middleware stores the verified token subject.
const subjectKey = "auth.subject"

// Middleware returns an echo middleware that requires a valid bearer token.
func (s *Service) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			credential, ok := strings.CutPrefix(header, "Bearer ")
			if !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "missing bearer token")
			}

			subject, err := s.Verify(strings.TrimSpace(credential))
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authentication token")
			}

			c.Set(subjectKey, subject)
			return next(c)
		}
	}
}

// Subject returns the authenticated subject set by Middleware, if any.
func Subject(c echo.Context) string {
	if s, ok := c.Get(subjectKey).(string); ok {
		return s
	}
	return ""
}
