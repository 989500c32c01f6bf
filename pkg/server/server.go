// Package server provides the HTTP server hosting the Callisto proxy.
package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"mercator-hq/callisto/pkg/config"
	"mercator-hq/callisto/pkg/proxy"
	"mercator-hq/callisto/pkg/telemetry/health"
	"mercator-hq/callisto/pkg/telemetry/metrics"
)

// Server is the HTTP server for proxied traffic and the admin endpoints
// (metrics, probes, version).
type Server struct {
	store        *config.Store
	handler      *proxy.Handler
	collector    *metrics.Collector
	checker      *health.Checker
	version      VersionInfo
	logger       *slog.Logger
	httpServer   *http.Server
	shutdownOnce sync.Once
	mu           sync.Mutex
	isRunning    bool
}

// VersionInfo identifies the running build for the /version endpoint.
type VersionInfo struct {
	Version   string
	Commit    string
	BuildTime string
}

// NewServer creates a server around the proxy handler. The metrics
// collector may be nil when metrics are disabled; the checker may be nil
// to disable the readiness and liveness probes.
func NewServer(store *config.Store, handler *proxy.Handler, collector *metrics.Collector, checker *health.Checker, version VersionInfo, logger *slog.Logger) *Server {
	return &Server{
		store:     store,
		handler:   handler,
		collector: collector,
		checker:   checker,
		version:   version,
		logger:    logger,
	}
}

// Start starts the HTTP server and blocks until shutdown. Shutdown is
// triggered by context cancellation, SIGINT, or SIGTERM.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	if s.isRunning {
		s.mu.Unlock()
		return fmt.Errorf("server is already running")
	}
	s.isRunning = true
	s.mu.Unlock()

	cfg := s.store.Load()
	s.httpServer = &http.Server{
		Addr:         cfg.Proxy.ListenAddress,
		Handler:      s.routes(),
		ReadTimeout:  cfg.Proxy.ReadTimeout,
		WriteTimeout: cfg.Proxy.WriteTimeout,
		IdleTimeout:  cfg.Proxy.IdleTimeout,
	}

	errChan := make(chan error, 1)
	go func() {
		s.logger.Info("starting proxy server",
			"address", cfg.Proxy.ListenAddress,
			"upstream", cfg.Proxy.UpstreamURL,
			"tracing_enabled", cfg.Telemetry.Tracing.Enabled,
		)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("server error: %w", err)
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(sigChan)

	select {
	case <-ctx.Done():
		s.logger.Info("context cancelled, initiating shutdown")
		return s.Shutdown(context.Background())
	case sig := <-sigChan:
		s.logger.Info("received shutdown signal", "signal", sig.String())
		return s.Shutdown(context.Background())
	case err := <-errChan:
		return err
	}
}

// Shutdown gracefully shuts down the server, waiting up to the configured
// timeout for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	var shutdownErr error

	s.shutdownOnce.Do(func() {
		timeout := s.store.Load().Proxy.ShutdownTimeout
		s.logger.Info("initiating graceful shutdown", "timeout", timeout.String())

		shutdownCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		if s.httpServer != nil {
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				s.logger.Error("error during server shutdown", "error", err)
				shutdownErr = fmt.Errorf("server shutdown error: %w", err)
			}
		}

		s.mu.Lock()
		s.isRunning = false
		s.mu.Unlock()

		s.logger.Info("proxy server stopped")
	})

	return shutdownErr
}

// Handler returns the server's root handler. It is used by tests to drive
// the full routing stack without binding a listener.
func (s *Server) Handler() http.Handler {
	return s.routes()
}

// routes mounts the admin endpoints beside the catch-all proxy handler.
// Admin paths are served locally and never forwarded upstream.
func (s *Server) routes() http.Handler {
	mux := http.NewServeMux()

	if s.collector != nil {
		mux.Handle("/metrics", s.collector.Handler())
	}
	if s.checker != nil {
		mux.HandleFunc("/health", s.checker.LivenessHandler())
		mux.HandleFunc("/ready", s.checker.ReadinessHandler())
		mux.HandleFunc("/version", health.VersionHandler(s.version.Version, s.version.Commit, s.version.BuildTime))
	}
	mux.Handle("/", s.handler)

	return mux
}
