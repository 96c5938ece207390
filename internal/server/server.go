package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/prodinfra/infrademo/internal/version"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	config    *Config
	server    *http.Server
	appLogger *slog.Logger
}

func New(config *Config, appLogger *slog.Logger) (*Server, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if appLogger == nil {
		appLogger = slog.Default()
	}

	handler, err := SetupRoutes(config, appLogger)
	if err != nil {
		return nil, fmt.Errorf("routes: %w", err)
	}

	return &Server{
		config:    config,
		appLogger: appLogger,
		server: &http.Server{
			Addr:              config.HTTP.Addr,
			Handler:           handler,
			ReadHeaderTimeout: 10 * time.Second,
		},
	}, nil
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.server.Handler
}

// Start binds the listener and serves until ctx is cancelled.
func (s *Server) Start(ctx context.Context) error {
	s.appLogger.Info("Application starting...")
	slog.Info("server start", append([]any{"addr", s.config.HTTP.Addr}, version.LogAttrs()...)...)
	defer slog.Info("server stop")

	ln, err := net.Listen("tcp", s.config.HTTP.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.config.HTTP.Addr, err)
	}

	eg, egCtx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		if err := s.serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http server error", "error", err)
			return err
		}
		return nil
	})

	eg.Go(func() error {
		<-egCtx.Done()
		slog.Info("server shutdown signal")
		return s.Stop(context.Background())
	})

	return eg.Wait()
}

func (s *Server) Stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	if err := s.server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func (s *Server) serve(ln net.Listener) error {
	if s.config.HTTP.TLSEnabled() {
		slog.Info("server start tls", "addr", ln.Addr().String(), "cert", s.config.HTTP.CertFile, "key", s.config.HTTP.KeyFile)
		return s.server.ServeTLS(ln, s.config.HTTP.CertFile, s.config.HTTP.KeyFile)
	}
	slog.Info("server start http", "addr", ln.Addr().String())
	return s.server.Serve(ln)
}
