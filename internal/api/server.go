package api

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"cpucatalog/internal/auth"
	"cpucatalog/internal/cache"
	"cpucatalog/internal/storage"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

type Server struct {
	echo          *echo.Echo
	repo          storage.CPURepository
	cache         *cache.Client
	auth          *auth.Service
	adminPassword string
}

// NewServer wires the HTTP surface. cache may be nil; stats are then
// computed on every request and the announcements endpoint serves an empty
// list.
func NewServer(repo storage.CPURepository, c *cache.Client, authSvc *auth.Service, adminPassword string) *Server {
	e := echo.New()
	e.HideBanner = true

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	s := &Server{
		echo:          e,
		repo:          repo,
		cache:         c,
		auth:          authSvc,
		adminPassword: adminPassword,
	}

	s.routes()

	return s
}

func (s *Server) routes() {
	s.echo.GET("/", s.apiInfo)
	s.echo.GET("/health", s.health)

	s.echo.GET("/api/cpus", s.listCPUs)
	s.echo.GET("/api/cpus/search", s.searchCPUs)
	s.echo.GET("/api/cpus/:id", s.getCPU)
	s.echo.GET("/api/stats", s.stats)
	s.echo.GET("/api/announcements", s.announcements)

	s.echo.POST("/api/auth/login", s.login)

	protected := s.echo.Group("/api", s.auth.Middleware())
	protected.GET("/auth/me", s.me)
	protected.POST("/cpus", s.createCPU)
	protected.PUT("/cpus/:id", s.updateCPU)
	protected.DELETE("/cpus/:id", s.deleteCPU)
	protected.POST("/import/csv", s.importCSV)

	s.echo.GET("/api/export/csv", s.exportCSV)
	s.echo.GET("/api/export/xlsx", s.exportExcel)
}

func (s *Server) Start(addr string) error {
	return s.echo.Start(addr)
}

func (s *Server) Shutdown() error {
	return s.echo.Close()
}

// Handler exposes the routing tree for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) apiInfo(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"message": "CPU Specifications API",
		"endpoints": map[string]string{
			"all_cpus":      "/api/cpus",
			"search":        "/api/cpus/search?q=EPYC",
			"by_id":         "/api/cpus/{id}",
			"stats":         "/api/stats",
			"announcements": "/api/announcements",
			"export_csv":    "/api/export/csv",
			"export_xlsx":   "/api/export/xlsx",
		},
	})
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) announcements(c echo.Context) error {
	if s.cache == nil {
		return c.JSON(http.StatusOK, []any{})
	}

	candidates, err := s.cache.RecentCandidates(c.Request().Context())
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	return c.JSON(http.StatusOK, candidates)
}

func parseID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid id")
	}
	return id, nil
}

// invalidateStats drops the cached stats after a catalog write.
func (s *Server) invalidateStats(c echo.Context) {
	if s.cache != nil {
		_ = s.cache.InvalidateStats(c.Request().Context())
	}
}
