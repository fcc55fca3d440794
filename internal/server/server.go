// Package server exposes the catalog over HTTP: read endpoints for the
// location list and the cat records, session-gated mutation endpoints, a
// media streaming endpoint backed by the blob store, and Prometheus
// metrics.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/shelterpaws/cattery/internal/auth"
	"github.com/shelterpaws/cattery/internal/catalog"
	"github.com/shelterpaws/cattery/internal/genai"
)

// Server serves the catalog API.
type Server struct {
	echo      *echo.Echo
	catalog   *catalog.Service
	sessions  *auth.Sessions
	describer *genai.Describer
	log       *slog.Logger
}

// New builds a server with all routes registered. A nil logger falls back
// to the process default.
func New(svc *catalog.Service, sessions *auth.Sessions, describer *genai.Describer, log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	s := &Server{
		echo:      e,
		catalog:   svc,
		sessions:  sessions,
		describer: describer,
		log:       log,
	}

	e.Use(s.requestLogger)

	api := e.Group("/api")
	api.GET("/locations", s.listLocations)
	api.GET("/cats", s.listCats)
	api.GET("/cats/:id", s.getCat)
	api.POST("/login", s.login)
	api.POST("/logout", s.logout)
	api.POST("/describe", s.describe)

	gated := api.Group("", s.requireSession)
	gated.POST("/cats", s.createCat)
	gated.PUT("/cats/:id", s.updateCat)
	gated.DELETE("/cats/:id", s.deleteCat)

	e.GET("/media/:key", s.getMedia)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	return s
}

// Start blocks serving on addr until Shutdown or a listener error.
func (s *Server) Start(addr string) error {
	s.log.Info("http server listening", "addr", addr)
	if err := s.echo.Start(addr); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.echo.Shutdown(ctx)
}

// requestLogger logs one line per request.
func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		if err != nil {
			c.Error(err)
		}
		s.log.Info("request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"duration", time.Since(start),
		)
		return nil
	}
}

// requireSession guards mutation endpoints behind a live bearer session.
func (s *Server) requireSession(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !s.sessions.Authenticated(bearerToken(c)) {
			return c.JSON(http.StatusUnauthorized, errorResponse{Message: "authentication required"})
		}
		return next(c)
	}
}

func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok {
		return ""
	}
	return token
}
