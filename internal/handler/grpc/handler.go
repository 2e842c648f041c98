package grpc

import (
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-users-api/internal/logger"
)

// UsersServiceName is the service name reported through grpc.health.v1.
const UsersServiceName = "users"

// Handler is the root gRPC transport handler.
//
// It exposes the standard grpc.health.v1.Health service. The status of
// [UsersServiceName] starts as NOT_SERVING and is switched by
// [Handler.SetServing] from the repository health probe.
type Handler struct {
	health *health.Server

	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose users service is not yet serving.
func NewHandler(logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	healthServer := health.NewServer()
	healthServer.SetServingStatus(UsersServiceName, healthpb.HealthCheckResponse_NOT_SERVING)

	return &Handler{
		health: healthServer,
		logger: logger,
	}
}

// Register attaches every service of the handler to server.
func (h *Handler) Register(server *grpc.Server) {
	healthpb.RegisterHealthServer(server, h.health)
}

// SetServing switches the reported status of the users service.
// It is a no-op on a nil handler so the probe can run without gRPC.
func (h *Handler) SetServing(serving bool) {
	if h == nil {
		return
	}

	status := healthpb.HealthCheckResponse_NOT_SERVING
	if serving {
		status = healthpb.HealthCheckResponse_SERVING
	}

	h.health.SetServingStatus(UsersServiceName, status)
	h.logger.Debug().Str("service", UsersServiceName).Str("status", status.String()).Msg("gRPC health status updated")
}

// Shutdown marks every service as NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	if h == nil {
		return
	}
	h.health.Shutdown()
}
