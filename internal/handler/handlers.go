package handler

import (
	"github.com/MKhiriev/go-users-api/internal/config"
	"github.com/MKhiriev/go-users-api/internal/handler/grpc"
	"github.com/MKhiriev/go-users-api/internal/handler/http"
	"github.com/MKhiriev/go-users-api/internal/logger"
	"github.com/MKhiriev/go-users-api/internal/metrics"
	"github.com/MKhiriev/go-users-api/internal/service"
)

// Handlers groups the transport handlers enabled by configuration.
// A nil field means the transport is disabled.
type Handlers struct {
	HTTP *http.Handler
	GRPC *grpc.Handler
}

func NewHandlers(services *service.Services, metrics *metrics.Metrics, cfg config.Server, logger *logger.Logger) (*Handlers, error) {
	if cfg.HTTPAddress == "" && cfg.GRPCAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	handlers := &Handlers{}
	if cfg.HTTPAddress != "" {
		handlers.HTTP = http.NewHandler(services, metrics, cfg, logger)
	}
	if cfg.GRPCAddress != "" {
		handlers.GRPC = grpc.NewHandler(logger)
	}

	logger.Info().
		Bool("http", handlers.HTTP != nil).
		Bool("grpc", handlers.GRPC != nil).
		Msg("transport handlers created")

	return handlers, nil
}
