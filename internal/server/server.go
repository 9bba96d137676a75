// Package server exposes host metrics over HTTP.
//
// Two listeners are provided. Server answers GET /metrics with a fresh
// snapshot and allows cross-origin reads. Gateway serves the poller page and
// forwards /api/metrics to the Server, mirroring a reverse proxy placed in
// front of the metrics backend.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/vitalis-app/hostmetrics/internal/config"
	"github.com/vitalis-app/hostmetrics/internal/models"
)

const (
	// MetricsPath is the route of the metrics endpoint on the backend listener.
	MetricsPath = "/metrics"

	// shutdownTimeout bounds graceful shutdown of a listener.
	shutdownTimeout = 5 * time.Second
)

// SnapshotSource produces a fresh snapshot per call.
type SnapshotSource interface {
	Sample(ctx context.Context) (models.MetricsSnapshot, error)
}

// Server is the metrics endpoint.
type Server struct {
	cfg    *config.Config
	source SnapshotSource
	logger *zap.Logger
}

// New creates a metrics endpoint backed by source.
func New(cfg *config.Config, source SnapshotSource, logger *zap.Logger) *Server {
	return &Server{
		cfg:    cfg,
		source: source,
		logger: logger,
	}
}

// Handler returns the routed handler of the metrics endpoint.
func (s *Server) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(s.logger))
	r.Use(withCORS(s.cfg.CORS.AllowedOrigins))

	r.Get(MetricsPath, s.handleMetrics)
	r.Get("/healthz", s.handleHealth)
	return r
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	snapshot, err := s.source.Sample(r.Context())
	if err != nil {
		s.logger.Error("Failed to sample metrics", zap.Error(err))
		writeJSON(w, nil, err)
		return
	}
	writeJSON(w, snapshot, nil)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, map[string]string{"status": "ok"}, nil)
}

// ListenAndServe binds the configured address and serves until ctx is
// cancelled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.cfg.Server.Addr(),
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.Server.ReadTimeout.Duration,
		WriteTimeout: s.cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  60 * time.Second,
	}
	s.logger.Info("Metrics API listening",
		zap.String("url", fmt.Sprintf("http://%s%s", srv.Addr, MetricsPath)))
	return serve(ctx, srv)
}

// serve runs srv until it fails or ctx is cancelled.
func serve(ctx context.Context, srv *http.Server) error {
	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serving %s: %w", srv.Addr, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutting down %s: %w", srv.Addr, err)
		}
		return nil
	}
}
