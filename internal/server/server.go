// Package server exposes Prometheus metrics and a health probe over HTTP
// while a search runs.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/agbru/primecalc/internal/logging"
	"github.com/prometheus/client_golang/prometheus"
)

// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
const ShutdownTimeout = 5 * time.Second

// Server serves /metrics and /healthz.
type Server struct {
	addr     string
	metrics  *Metrics
	logger   logging.Logger
	security SecurityConfig
}

// New creates a server listening on addr. The collectors are served on
// /metrics next to the runtime and request metrics.
func New(addr string, logger logging.Logger, collectors ...prometheus.Collector) *Server {
	return &Server{
		addr:     addr,
		metrics:  NewMetrics(collectors...),
		logger:   logger,
		security: DefaultSecurityConfig(),
	}
}

// Handler returns the routed handler of the server.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/metrics", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleMetrics)))
	mux.HandleFunc("/healthz", SecurityMiddleware(s.security, s.metricsMiddleware(s.handleHealth)))
	return mux
}

// Start listens on the configured address and serves until ctx is done,
// then shuts down gracefully. It returns once the listener is closed.
func (s *Server) Start(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("metrics server: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Start on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	s.logger.Info("metrics server listening", logging.String("addr", ln.Addr().String()))

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Serve(ln)
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("metrics server: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error("metrics server shutdown", err)
		return fmt.Errorf("metrics server shutdown: %w", err)
	}
	s.logger.Debug("metrics server stopped")
	return nil
}

func (s *Server) metricsMiddleware(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		s.metrics.IncrementActiveRequests()
		defer s.metrics.DecrementActiveRequests()
		next(w, r)
	}
}

func (s *Server) handleMetrics(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		s.logger.Debug("metrics: method not allowed", logging.String("method", r.Method))
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	s.metrics.WritePrometheus(w, r)
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte("ok\n"))
}
