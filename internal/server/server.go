package server

import (
	"context"
	"fmt"
	"net"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/handler"
	"github.com/MKhiriev/go-class-reports/internal/logger"
)

type server struct {
	httpServer *httpServer
	address    string
	logger     *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")

	if handlers == nil || handlers.HTTP == nil || cfg.HTTPAddress == "" {
		return nil, errNoServersAreCreated
	}

	return &server{
		httpServer: newHTTPServer(handlers.HTTP.Init(), cfg, logger),
		address:    cfg.HTTPAddress,
		logger:     logger,
	}, nil
}

func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(
		context.Background(),
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGQUIT,
	)
	defer stop()

	if err := s.Run(ctx); err != nil {
		s.logger.Err(err).Msg("error running server")
	}
}

func (s *server) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.address)
	if err != nil {
		return fmt.Errorf("error listening on %s: %w", s.address, err)
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.httpServer.Serve(listener)
	}()

	select {
	case <-ctx.Done():
		s.Shutdown()
		<-errCh
		s.logger.Info().Msg("server Shutdown gracefully")
		return nil
	case err = <-errCh:
		return err
	}
}

func (s *server) Shutdown() {
	s.httpServer.Shutdown()
}
