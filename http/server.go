// Package http serves the blogsmith JSON API, document downloads and a small
// form page over HTTP.
package http

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/fwojciec/blogsmith"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// ShutdownTimeout bounds how long Close waits for in-flight requests.
const ShutdownTimeout = 10 * time.Second

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 4 << 20

// Instrumenter wraps a route handler with request metrics.
type Instrumenter interface {
	InstrumentHandler(route string, h http.Handler) http.Handler
}

// Server is the blogsmith HTTP server. Set the service fields before
// calling Handler or Open.
type Server struct {
	ln     net.Listener
	server *http.Server

	// Bind address, e.g. ":8080".
	Addr string

	Titles   blogsmith.TitleGenerator
	Articles blogsmith.ArticleGenerator
	Metadata blogsmith.MetadataGenerator
	Exporter blogsmith.Exporter
	Logger   *slog.Logger

	// Optional. Metrics instruments API routes; MetricsHandler is mounted
	// at /metrics.
	Metrics        Instrumenter
	MetricsHandler http.Handler
}

// Handler builds the router for the configured services.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger(s.logger()))
	r.Use(middleware.Recoverer)

	r.Get("/", s.handleIndex)
	r.Get("/healthz", s.handleHealth)
	if s.MetricsHandler != nil {
		r.Method(http.MethodGet, "/metrics", s.MetricsHandler)
	}

	r.Route("/api", func(r chi.Router) {
		r.Method(http.MethodPost, "/generate-titles", s.instrument("/api/generate-titles", s.handleGenerateTitles))
		r.Method(http.MethodPost, "/generate-article", s.instrument("/api/generate-article", s.handleGenerateArticle))
		r.Method(http.MethodPost, "/generate-seo", s.instrument("/api/generate-seo", s.handleGenerateSEO))
		r.Method(http.MethodPost, "/export", s.instrument("/api/export", s.handleExport))
	})

	return r
}

// Open binds Addr and serves in the background.
func (s *Server) Open() (err error) {
	if s.ln, err = net.Listen("tcp", s.Addr); err != nil {
		return err
	}
	s.server = &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		if err := s.server.Serve(s.ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.logger().Error("http server stopped", "err", err)
		}
	}()
	s.logger().Info("http server listening", "addr", s.ln.Addr().String())
	return nil
}

// Close gracefully shuts down the server.
func (s *Server) Close() error {
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// URL returns the base URL of the running server.
func (s *Server) URL() string {
	if s.ln == nil {
		return ""
	}
	addr := s.ln.Addr().(*net.TCPAddr)
	host := "localhost"
	if ip := addr.IP; ip != nil && !ip.IsUnspecified() {
		host = ip.String()
	}
	return "http://" + net.JoinHostPort(host, strconv.Itoa(addr.Port))
}

func (s *Server) instrument(route string, fn http.HandlerFunc) http.Handler {
	if s.Metrics == nil {
		return fn
	}
	return s.Metrics.InstrumentHandler(route, fn)
}

func (s *Server) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.Default()
	}
	return s.Logger
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
