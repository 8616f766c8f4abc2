package server

import (
	"context"
	"time"

	"github.com/fekuna/omnipos-invoice-service/internal/health"
	"github.com/fekuna/omnipos-invoice-service/internal/logger"
	"github.com/fekuna/omnipos-invoice-service/internal/requestid"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"
	"google.golang.org/grpc/status"
)

// NewGRPCServer serves grpc.health.v1 backed by a store ping, with reflection.
func NewGRPCServer(db health.Pinger, log logger.ZapLogger) *grpc.Server {
	grpcServer := grpc.NewServer(
		grpc.UnaryInterceptor(UnaryLoggingInterceptor(log)),
	)

	healthpb.RegisterHealthServer(grpcServer, health.NewServer(db, log))
	reflection.Register(grpcServer)
	return grpcServer
}

func UnaryLoggingInterceptor(log logger.ZapLogger) grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
		ctx, id := requestid.Ensure(ctx, "")
		start := time.Now()

		resp, err := handler(ctx, req)

		log.Debug("grpc call",
			zap.String("request_id", id),
			zap.String("method", info.FullMethod),
			zap.String("code", status.Code(err).String()),
			zap.Duration("latency", time.Since(start)),
		)
		return resp, err
	}
}
