// Package server exposes the footprint calculator over a JSON HTTP API.
// It is a stateless presentation wrapper: every request builds a fresh
// UsageInput, calls the calculation core, and serializes the result.
package server

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rshade/digital-footprint/internal/config"
)

// requestIDHeader carries the correlation id on responses.
const requestIDHeader = "X-Request-Id"

// Server serves the calculator's HTTP API.
type Server struct {
	cfg     config.ServerConfig
	logger  zerolog.Logger
	metrics *metrics
	mux     *http.ServeMux
}

// New builds a Server with all routes registered. Prometheus instruments
// are registered on their own registry so tests can construct multiple
// servers without collisions.
func New(cfg config.ServerConfig, defaultLocation string, logger zerolog.Logger) *Server {
	registry := prometheus.NewRegistry()

	s := &Server{
		cfg:     cfg,
		logger:  logger,
		metrics: newMetrics(registry),
		mux:     http.NewServeMux(),
	}

	s.mux.HandleFunc("POST /v1/calculate", s.instrument("/v1/calculate", s.handleCalculate(defaultLocation)))
	s.mux.HandleFunc("POST /v1/compare", s.instrument("/v1/compare", s.handleCompare))
	s.mux.HandleFunc("GET /v1/tasks", s.instrument("/v1/tasks", s.handleTasks))
	s.mux.HandleFunc("GET /v1/grids", s.instrument("/v1/grids", s.handleGrids))
	s.mux.HandleFunc("GET /healthz", s.handleHealth)
	s.mux.Handle("GET /metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	return s
}

// Handler returns the server's HTTP handler, exposed for httptest use.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// Run serves until ctx is canceled, then shuts down gracefully within the
// configured timeout.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		s.logger.Info().Str("addr", s.cfg.ListenAddr).Msg("starting footprint server")
		serveErr <- httpServer.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		// The listener failed before any shutdown was requested.
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("shutdown failed")
	}

	if err := <-serveErr; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// instrument wraps a handler with request-id assignment, structured request
// logging, and Prometheus accounting.
func (s *Server) instrument(path string, next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}
		w.Header().Set(requestIDHeader, requestID)

		recorder := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next(recorder, r)

		elapsed := time.Since(start)
		s.metrics.requests.WithLabelValues(path, strconv.Itoa(recorder.status)).Inc()
		s.metrics.duration.WithLabelValues(path).Observe(elapsed.Seconds())

		s.logger.Info().
			Str("request_id", requestID).
			Str("method", r.Method).
			Str("path", path).
			Int("status", recorder.status).
			Dur("duration", elapsed).
			Msg("request handled")
	}
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}
