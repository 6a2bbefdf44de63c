// Package grpc exposes the standard gRPC health service of the server.
package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"

	"github.com/MKhiriev/go-contact-keeper/internal/logger"
)

// ServiceName is the health service name reported next to the overall ("")
// status.
const ServiceName = "contactkeeper.ContactDirectory"

// Pinger reports whether the backing database is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Handler is the root gRPC transport handler.
//
// It serves grpc.health.v1.Health. The reported status follows the result
// of the last database ping and turns NOT_SERVING for good on Shutdown.
type Handler struct {
	health *health.Server
	pinger Pinger

	logger *logger.Logger
}

func NewHandler(pinger Pinger, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		health: health.NewServer(),
		pinger: pinger,
		logger: logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_SERVING)

	return h
}

// Register attaches the health service to srv.
func (h *Handler) Register(srv *grpc.Server) {
	healthpb.RegisterHealthServer(srv, h.health)
}

// CheckDatabase pings the database once and publishes the outcome.
func (h *Handler) CheckDatabase(ctx context.Context) healthpb.HealthCheckResponse_ServingStatus {
	status := healthpb.HealthCheckResponse_SERVING
	if err := h.pinger.Ping(ctx); err != nil {
		h.logger.Warn().Err(err).Msg("database ping failed")
		status = healthpb.HealthCheckResponse_NOT_SERVING
	}

	h.setStatus(status)
	return status
}

// WatchDatabase calls CheckDatabase every interval until ctx is done.
func (h *Handler) WatchDatabase(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			pingCtx, cancel := context.WithTimeout(ctx, interval)
			h.CheckDatabase(pingCtx)
			cancel()
		}
	}
}

// Shutdown reports NOT_SERVING for every service; later updates are ignored.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(ServiceName, status)
}
