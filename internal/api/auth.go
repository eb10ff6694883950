package api

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cpucatalog/internal/auth"
)

type loginRequest struct {
	Password string `json:"password"`
}

func (s *Server) login(c echo.Context) error {
	if s.adminPassword == "" {
		return echo.NewHTTPError(http.StatusInternalServerError,
			"admin password not configured")
	}

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.Password != s.adminPassword {
		return echo.NewHTTPError(http.StatusUnauthorized, "invalid password")
	}

	token, err := s.auth.IssueToken("admin")
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	return c.JSON(http.StatusOK, map[string]string{
		"access_token": token,
		"token_type":   "bearer",
	})
}

func (s *Server) me(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"authenticated": true,
		"subject":       auth.Subject(c),
	})
}
