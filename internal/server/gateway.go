package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httputil"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/vitalis-app/hostmetrics/internal/config"
	"github.com/vitalis-app/hostmetrics/internal/web"
)

// APIPrefix is stripped by the gateway before forwarding to the backend.
const APIPrefix = "/api"

var errUpstreamUnavailable = errors.New("metrics upstream unavailable")

// Gateway serves the poller page and forwards /api/metrics to the metrics
// endpoint's /metrics route.
type Gateway struct {
	cfg      *config.Config
	upstream *url.URL
	proxy    *httputil.ReverseProxy
	logger   *zap.Logger
}

// NewGateway creates a gateway forwarding to cfg.UpstreamURL().
func NewGateway(cfg *config.Config, logger *zap.Logger) (*Gateway, error) {
	target, err := url.Parse(cfg.UpstreamURL())
	if err != nil {
		return nil, fmt.Errorf("parsing upstream URL: %w", err)
	}
	if target.Scheme == "" || target.Host == "" {
		return nil, fmt.Errorf("upstream URL must be absolute: %q", cfg.UpstreamURL())
	}

	g := &Gateway{
		cfg:      cfg,
		upstream: target,
		logger:   logger,
	}

	proxy := httputil.NewSingleHostReverseProxy(target)
	director := proxy.Director
	proxy.Director = func(req *http.Request) {
		director(req)
		req.Host = target.Host
	}
	proxy.ErrorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
		g.logger.Warn("Upstream request failed",
			zap.String("upstream", target.String()),
			zap.String("path", r.URL.Path),
			zap.Error(err))
		writeError(w, http.StatusBadGateway, errUpstreamUnavailable)
	}
	g.proxy = proxy

	return g, nil
}

// Handler returns the routed handler of the gateway.
func (g *Gateway) Handler() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(requestLogger(g.logger))

	r.Method(http.MethodGet, APIPrefix+MetricsPath, http.StripPrefix(APIPrefix, g.proxy))
	r.Handle("/*", web.Handler())
	return r
}

// ListenAndServe binds the configured gateway address and serves until ctx is
// cancelled.
func (g *Gateway) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:         g.cfg.Gateway.Addr(),
		Handler:      g.Handler(),
		ReadTimeout:  g.cfg.Server.ReadTimeout.Duration,
		WriteTimeout: g.cfg.Server.WriteTimeout.Duration,
		IdleTimeout:  60 * time.Second,
	}
	g.logger.Info("Dashboard listening",
		zap.String("url", fmt.Sprintf("http://%s/", srv.Addr)),
		zap.String("upstream", g.upstream.String()))
	return serve(ctx, srv)
}
