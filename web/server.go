// Package web serves projections over HTTP.
package web

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

const shutdownTimeout = 10 * time.Second

// Server is the projection HTTP server.
type Server struct {
	cfg     Config
	log     zerolog.Logger
	router  *mux.Router
	server  *http.Server
	limiter *RateLimiter
	metrics *Metrics
}

// NewServer creates a server for cfg, logging to logger.
func NewServer(cfg Config, logger zerolog.Logger) *Server {
	s := &Server{
		cfg:     cfg,
		log:     logger,
		router:  mux.NewRouter(),
		limiter: NewRateLimiter(cfg.RateLimit, cfg.RateBurst),
		metrics: NewMetrics(),
	}
	s.setupRoutes()

	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      s.router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
	return s
}

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() {
	s.router.Use(s.requestIDMiddleware)
	s.router.Use(s.accessLogMiddleware)

	s.router.Handle("/projection", s.rateLimitMiddleware(http.HandlerFunc(s.handleProjection))).Methods(http.MethodPost)
	s.router.Handle("/series", s.rateLimitMiddleware(http.HandlerFunc(s.handleSeries))).Methods(http.MethodPost)

	s.router.HandleFunc("/health", s.handleHealth).Methods(http.MethodGet)
	s.router.Handle("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
}

// Handler returns the root handler of the server.
func (s *Server) Handler() http.Handler { return s.router }

// Run serves until ctx is done, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	defer s.limiter.Stop()

	errc := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr).Str("currency", s.cfg.Currency).Msg("listening")
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- err
		}
		close(errc)
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
	}

	s.log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return s.server.Shutdown(shutdownCtx)
}

// Close releases the server resources without serving.
func (s *Server) Close() error {
	s.limiter.Stop()
	return s.server.Close()
}
