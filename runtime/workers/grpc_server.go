package workers

import (
	"chat-broker/contract"
	"context"
	"errors"
	"log/slog"
	"net"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

var _ contract.Worker = (*GrpcServerWorker)(nil)

// GrpcServerWorker exposes the standard gRPC health service for the broker.
type GrpcServerWorker struct {
	log     *slog.Logger
	address string
	health  *health.Server
	service string
}

func NewGrpcServerWorker(log *slog.Logger, address, service string) *GrpcServerWorker {
	return &GrpcServerWorker{
		log:     log.With("server", "grpc"),
		address: address,
		health:  health.NewServer(),
		service: service,
	}
}

func (w *GrpcServerWorker) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", w.address)
	if err != nil {
		return err
	}
	return w.Serve(ctx, listener)
}

// Serve reports SERVING until ctx is done, then NOT_SERVING, then stops.
func (w *GrpcServerWorker) Serve(ctx context.Context, listener net.Listener) error {
	s := grpc.NewServer()
	healthpb.RegisterHealthServer(s, w.health)
	w.health.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	w.health.SetServingStatus(w.service, healthpb.HealthCheckResponse_SERVING)

	errChan := make(chan error, 1)
	go func() {
		w.log.Info("Starting gRPC server", "address", listener.Addr().String())
		if err := s.Serve(listener); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			errChan <- err
		}
		close(errChan)
	}()

	select {
	case err := <-errChan:
		return err
	case <-ctx.Done():
	}

	w.log.Info("Shutting down gRPC server")
	w.health.Shutdown()
	s.GracefulStop()
	return nil
}
