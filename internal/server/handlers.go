package server

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/credlens/credlens/internal/model"
)

type analyzeRequest struct {
	URL string `json:"url"`
}

type batchRequest struct {
	URLs *[]string `json:"urls"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

type batchResponse struct {
	Success bool            `json:"success"`
	Results []model.Outcome `json:"results"`
}

func (s *Server) health(c echo.Context) error {
	return c.JSON(http.StatusOK, healthResponse{
		Status:  "healthy",
		Message: "credlens API is running",
	})
}

func (s *Server) analyze(c echo.Context) error {
	var req analyzeRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.Failure("URL is required"))
	}

	url := strings.TrimSpace(req.URL)
	if url == "" {
		return c.JSON(http.StatusBadRequest, model.Failure("URL is required"))
	}
	if !strings.HasPrefix(url, "http://") && !strings.HasPrefix(url, "https://") {
		return c.JSON(http.StatusBadRequest, model.Failure("Invalid URL format. URL must start with http:// or https://"))
	}

	outcome := s.analyzer.Analyze(c.Request().Context(), url)
	if !outcome.Success {
		return c.JSON(http.StatusBadRequest, outcome)
	}
	return c.JSON(http.StatusOK, outcome)
}

// batchAnalyze validates the whole batch before any fetch occurs, then
// processes the URLs strictly sequentially. A failed URL yields a
// failed entry in the results; it never aborts the rest of the batch.
func (s *Server) batchAnalyze(c echo.Context) error {
	var req batchRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, model.Failure("URLs must be a non-empty array"))
	}

	if req.URLs == nil {
		return c.JSON(http.StatusBadRequest, model.Failure("URLs array is required"))
	}

	urls := *req.URLs
	if len(urls) == 0 {
		return c.JSON(http.StatusBadRequest, model.Failure("URLs must be a non-empty array"))
	}
	if len(urls) > s.cfg.Server.MaxBatchSize {
		return c.JSON(http.StatusBadRequest, model.Failure("Maximum 10 URLs allowed per batch"))
	}

	results := make([]model.Outcome, 0, len(urls))
	for _, url := range urls {
		results = append(results, s.analyzer.Analyze(c.Request().Context(), strings.TrimSpace(url)))
	}

	return c.JSON(http.StatusOK, batchResponse{Success: true, Results: results})
}
