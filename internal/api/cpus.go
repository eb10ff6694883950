package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"cpucatalog/internal/domain"
	"cpucatalog/internal/generation"
)

func (s *Server) listCPUs(c echo.Context) error {
	limit := defaultPageSize
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit")
		}
		limit = min(n, maxPageSize)
	}

	offset := 0
	if v := c.QueryParam("offset"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid offset")
		}
		offset = n
	}

	cpus, err := s.repo.FindAll(c.Request().Context(), limit, offset)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if cpus == nil {
		cpus = []domain.CPU{}
	}
	return c.JSON(http.StatusOK, cpus)
}

func (s *Server) searchCPUs(c echo.Context) error {
	q := c.QueryParam("q")
	if q == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "query parameter q is required")
	}

	cpus, err := s.repo.Search(c.Request().Context(), q)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if cpus == nil {
		cpus = []domain.CPU{}
	}
	return c.JSON(http.StatusOK, cpus)
}

func (s *Server) getCPU(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	cpu, err := s.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if cpu == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("CPU with ID %d not found", id))
	}
	return c.JSON(http.StatusOK, cpu)
}

func (s *Server) stats(c echo.Context) error {
	ctx := c.Request().Context()

	if s.cache != nil {
		if cached, err := s.cache.GetStats(ctx); err == nil && cached != nil {
			return c.JSON(http.StatusOK, cached)
		}
	}

	stats, err := s.repo.Stats(ctx)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	if s.cache != nil {
		_ = s.cache.SetStats(ctx, stats)
	}

	return c.JSON(http.StatusOK, stats)
}

type createRequest struct {
	ModelName   string   `json:"cpu_model_name"`
	Family      string   `json:"family"`
	Model       string   `json:"cpu_model"`
	Codename    string   `json:"codename"`
	Cores       *int     `json:"cores"`
	Threads     *int     `json:"threads"`
	MaxTurboGHz *float64 `json:"max_turbo_frequency_ghz"`
	L3CacheMB   *float64 `json:"l3_cache_mb"`
	TDPWatts    *int     `json:"tdp_watts"`
	LaunchYear  *int     `json:"launch_year"`
	MaxMemoryTB *float64 `json:"max_memory_tb"`
}

func (s *Server) createCPU(c echo.Context) error {
	var req createRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ModelName == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "cpu_model_name is required")
	}

	cpu := domain.CPU{
		ModelName:   req.ModelName,
		Family:      req.Family,
		Model:       req.Model,
		Codename:    req.Codename,
		Cores:       req.Cores,
		Threads:     req.Threads,
		MaxTurboGHz: req.MaxTurboGHz,
		L3CacheMB:   req.L3CacheMB,
		TDPWatts:    req.TDPWatts,
		LaunchYear:  req.LaunchYear,
		MaxMemoryTB: req.MaxMemoryTB,
	}

	// An explicit codename always wins; the classifier only fills gaps.
	if cpu.Codename == "" && cpu.Model != "" && cpu.LaunchYear != nil {
		cpu.Codename = generation.Classify(cpu.Model, *cpu.LaunchYear, cpu.Family)
	}

	id, err := s.repo.Save(c.Request().Context(), cpu)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	cpu.ID = id

	s.invalidateStats(c)

	return c.JSON(http.StatusCreated, cpu)
}

type updateRequest struct {
	ModelName   *string  `json:"cpu_model_name"`
	Family      *string  `json:"family"`
	Model       *string  `json:"cpu_model"`
	Codename    *string  `json:"codename"`
	Cores       *int     `json:"cores"`
	Threads     *int     `json:"threads"`
	MaxTurboGHz *float64 `json:"max_turbo_frequency_ghz"`
	L3CacheMB   *float64 `json:"l3_cache_mb"`
	TDPWatts    *int     `json:"tdp_watts"`
	LaunchYear  *int     `json:"launch_year"`
	MaxMemoryTB *float64 `json:"max_memory_tb"`
}

func (s *Server) updateCPU(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	cpu, err := s.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if cpu == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("CPU with ID %d not found", id))
	}

	var req updateRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	if req.ModelName != nil {
		cpu.ModelName = *req.ModelName
	}
	if req.Family != nil {
		cpu.Family = *req.Family
	}
	if req.Model != nil {
		cpu.Model = *req.Model
	}
	if req.Codename != nil {
		cpu.Codename = *req.Codename
	}
	if req.Cores != nil {
		cpu.Cores = req.Cores
	}
	if req.Threads != nil {
		cpu.Threads = req.Threads
	}
	if req.MaxTurboGHz != nil {
		cpu.MaxTurboGHz = req.MaxTurboGHz
	}
	if req.L3CacheMB != nil {
		cpu.L3CacheMB = req.L3CacheMB
	}
	if req.TDPWatts != nil {
		cpu.TDPWatts = req.TDPWatts
	}
	if req.LaunchYear != nil {
		cpu.LaunchYear = req.LaunchYear
	}
	if req.MaxMemoryTB != nil {
		cpu.MaxMemoryTB = req.MaxMemoryTB
	}

	if err := s.repo.Update(c.Request().Context(), *cpu); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	s.invalidateStats(c)

	return c.JSON(http.StatusOK, cpu)
}

func (s *Server) deleteCPU(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return err
	}

	cpu, err := s.repo.FindByID(c.Request().Context(), id)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}
	if cpu == nil {
		return echo.NewHTTPError(http.StatusNotFound, fmt.Sprintf("CPU with ID %d not found", id))
	}

	if err := s.repo.Delete(c.Request().Context(), id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	s.invalidateStats(c)

	return c.NoContent(http.StatusNoContent)
}
