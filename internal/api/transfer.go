package api

import (
	"bytes"
	"fmt"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"cpucatalog/internal/dataset"
	"cpucatalog/internal/domain"
	"cpucatalog/internal/generation"
)

// maxReportedErrors caps the per-row error list in the import response.
const maxReportedErrors = 10

func (s *Server) allCPUs(c echo.Context) ([]domain.CPU, error) {
	ctx := c.Request().Context()

	count, err := s.repo.Count(ctx)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}
	return s.repo.FindAll(ctx, count, 0)
}

func (s *Server) exportCSV(c echo.Context) error {
	cpus, err := s.allCPUs(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := dataset.WriteCSV(&buf, cpus); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", exportFilename("csv")))
	return c.Blob(http.StatusOK, "text/csv", buf.Bytes())
}

func (s *Server) exportExcel(c echo.Context) error {
	cpus, err := s.allCPUs(c)
	if err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	var buf bytes.Buffer
	if err := dataset.WriteExcel(&buf, cpus); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf("attachment; filename=%s", exportFilename("xlsx")))
	return c.Blob(http.StatusOK,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}

func exportFilename(ext string) string {
	return fmt.Sprintf("cpu_export_%s.%s", time.Now().Format("20060102_150405"), ext)
}

func (s *Server) importCSV(c echo.Context) error {
	ctx := c.Request().Context()

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file is required")
	}
	if !strings.EqualFold(filepath.Ext(fileHeader.Filename), ".csv") {
		return echo.NewHTTPError(http.StatusBadRequest, "file must be a CSV file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	defer file.Close()

	cpus, rowErrs, err := dataset.ParseCSV(file)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("error reading CSV: %v", err))
	}

	if c.QueryParam("clear") == "true" {
		if err := s.repo.DeleteAll(ctx); err != nil {
			return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
		}
	}

	imported := 0
	errs := make([]string, 0, len(rowErrs))
	for _, rowErr := range rowErrs {
		errs = append(errs, rowErr.Error())
	}

	for _, cpu := range cpus {
		if cpu.Codename == "" && cpu.Model != "" && cpu.LaunchYear != nil {
			cpu.Codename = generation.Classify(cpu.Model, *cpu.LaunchYear, cpu.Family)
		}

		if _, err := s.repo.Save(ctx, cpu); err != nil {
			errs = append(errs, err.Error())
			continue
		}
		imported++
	}

	s.invalidateStats(c)

	reported := errs
	if len(reported) > maxReportedErrors {
		reported = reported[:maxReportedErrors]
	}

	return c.JSON(http.StatusOK, map[string]any{
		"message":      fmt.Sprintf("Imported %d CPUs successfully", imported),
		"imported":     imported,
		"errors":       reported,
		"total_errors": len(errs),
	})
}
