package server

import (
	"context"
	"errors"
	"fmt"
	"net"

	"google.golang.org/grpc"

	"github.com/MKhiriev/go-users-api/internal/config"
	myGRPC "github.com/MKhiriev/go-users-api/internal/handler/grpc"
	"github.com/MKhiriev/go-users-api/internal/logger"
)

type grpcServer struct {
	handler *myGRPC.Handler

	server  *grpc.Server
	address string

	logger *logger.Logger
}

func newGRPCServer(handler *myGRPC.Handler, cfg config.Server, logger *logger.Logger) *grpcServer {
	server := grpc.NewServer()
	handler.Register(server)

	return &grpcServer{
		handler: handler,
		server:  server,
		address: cfg.GRPCAddress,
		logger:  logger,
	}
}

func (g *grpcServer) RunServer() error {
	listener, err := net.Listen("tcp", g.address)
	if err != nil {
		return fmt.Errorf("%w: listen %s: %w", ErrGRPCServe, g.address, err)
	}

	return g.serve(listener)
}

func (g *grpcServer) serve(listener net.Listener) error {
	g.logger.Info().Str("address", listener.Addr().String()).Msg("gRPC server listening")
	if err := g.server.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return fmt.Errorf("%w: %w", ErrGRPCServe, err)
	}

	return nil
}

// Shutdown reports NOT_SERVING first so health checkers drain before the
// listener closes. GracefulStop is abandoned in favour of Stop when ctx
// expires.
func (g *grpcServer) Shutdown(ctx context.Context) error {
	g.logger.Info().Msg("gRPC server Shutdown")
	g.handler.Shutdown()

	stopped := make(chan struct{})
	go func() {
		g.server.GracefulStop()
		close(stopped)
	}()

	select {
	case <-stopped:
		return nil
	case <-ctx.Done():
		g.server.Stop()
		return ctx.Err()
	}
}

func (g *grpcServer) name() string {
	return "grpc"
}
