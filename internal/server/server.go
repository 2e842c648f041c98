package server

import (
	"context"
	"errors"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/handler"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

const shutdownTimeout = 10 * time.Second

type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer

	shutdownTimeout time.Duration
	logger          *logger.Logger
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	logger.Info().Msg("creating new server...")
	servers := &server{
		shutdownTimeout: shutdownTimeout,
		logger:          logger,
	}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		servers.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		servers.gRPCServer = newGRPCServer(handlers.GRPC, cfg, logger)
	}

	if servers.httpServer == nil && servers.gRPCServer == nil {
		return nil, errNoServersAreCreated
	}

	return servers, nil
}

func (s *server) transports() []transport {
	var transports []transport
	if s.httpServer != nil {
		transports = append(transports, s.httpServer)
	}
	if s.gRPCServer != nil {
		transports = append(transports, s.gRPCServer)
	}

	return transports
}

func (s *server) RunServer(ctx context.Context) error {
	transports := s.transports()
	if len(transports) == 0 {
		return errNoServersAreCreated
	}

	g, gctx := errgroup.WithContext(ctx)

	for _, t := range transports {
		g.Go(func() error {
			s.logger.Info().Str("transport", t.name()).Msg("launching server")
			return t.RunServer()
		})
	}

	// a failing transport cancels gctx as well, so the others are stopped
	g.Go(func() error {
		<-gctx.Done()
		return s.shutdown(transports)
	})

	if err := g.Wait(); err != nil {
		return err
	}

	s.logger.Info().Msg("server Shutdown gracefully")
	return nil
}

func (s *server) shutdown(transports []transport) error {
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	var errs []error
	for _, t := range transports {
		if err := t.Shutdown(ctx); err != nil {
			s.logger.Error().Err(err).Str("transport", t.name()).Msg("shutdown failed")
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
