// Package health answers grpc.health.v1 checks from the state of the store.
package health

import (
	"context"

	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"go.uber.org/zap"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

type Pinger interface {
	PingContext(ctx context.Context) error
}

type Server struct {
	healthpb.UnimplementedHealthServer

	db     Pinger
	logger logger.ZapLogger
}

func NewServer(db Pinger, log logger.ZapLogger) *Server {
	return &Server{
		db:     db,
		logger: log,
	}
}

// Check reports SERVING while the store answers pings. The service name is ignored;
// every service here depends on the same store.
func (s *Server) Check(ctx context.Context, req *healthpb.HealthCheckRequest) (*healthpb.HealthCheckResponse, error) {
	if err := s.db.PingContext(ctx); err != nil {
		s.logger.Warn("health check failed", zap.String("service", req.GetService()), zap.Error(err))
		return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_NOT_SERVING}, nil
	}
	return &healthpb.HealthCheckResponse{Status: healthpb.HealthCheckResponse_SERVING}, nil
}
