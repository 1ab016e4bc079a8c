package server

import (
	"fmt"
	"net/http"
	"os"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/sirupsen/logrus"

	"github.com/credlens/credlens/internal/model"
	"github.com/credlens/credlens/internal/pipeline"
)

// Server exposes the analysis pipeline over JSON/HTTP
type Server struct {
	cfg      *model.Config
	analyzer *pipeline.Analyzer
	log      *logrus.Logger
}

// New creates a server around an analyzer
func New(cfg *model.Config, analyzer *pipeline.Analyzer, log *logrus.Logger) *Server {
	if log == nil {
		log = logrus.New()
	}
	return &Server{cfg: cfg, analyzer: analyzer, log: log}
}

// Echo builds the configured echo instance with routes and middleware
func (s *Server) Echo() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())

	// Unified error shape: every failure is {success:false, error}
	e.HTTPErrorHandler = func(err error, c echo.Context) {
		code := http.StatusInternalServerError
		msg := "Internal server error"
		if he, ok := err.(*echo.HTTPError); ok {
			code = he.Code
			if he.Message != nil {
				msg = fmt.Sprint(he.Message)
			}
		}
		s.log.WithFields(logrus.Fields{
			"status": code,
			"method": c.Request().Method,
			"path":   c.Request().URL.Path,
		}).Error(err)
		if !c.Response().Committed {
			_ = c.JSON(code, model.Failure(msg))
		}
	}

	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: s.allowedOrigins(),
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{echo.HeaderContentType},
	}))

	api := e.Group("/api")
	api.GET("/health", s.health)
	api.POST("/analyze", s.analyze)
	api.POST("/batch-analyze", s.batchAnalyze)

	return e
}

// Run starts the server on the configured address
func (s *Server) Run() error {
	e := s.Echo()
	s.log.WithField("addr", s.cfg.Server.Addr).Info("starting server")
	return e.Start(s.cfg.Server.Addr)
}

// allowedOrigins merges the configured CORS allow-list with the
// ALLOWED_ORIGINS environment variable (comma-separated).
func (s *Server) allowedOrigins() []string {
	origins := append([]string{}, s.cfg.Server.AllowedOrigins...)
	if env := os.Getenv("ALLOWED_ORIGINS"); env != "" {
		for _, origin := range strings.Split(env, ",") {
			if origin = strings.TrimSpace(origin); origin != "" {
				origins = append(origins, origin)
			}
		}
	}
	return origins
}
