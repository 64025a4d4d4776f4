package common

import (
	"context"
	"errors"
	"fmt"
	"net"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
)

// RegisterFunc registers gRPC services on a server.
type RegisterFunc func(*grpc.Server)

// ServerConfig configures a gRPC server.
type ServerConfig struct {
	Domain      string
	DefaultPort string
}

// RunServer starts a gRPC server with health checks.
//
// Reads PORT from the environment, falling back to cfg.DefaultPort.
// Blocks until the server exits or the process receives SIGINT/SIGTERM.
func RunServer(cfg ServerConfig, register RegisterFunc) error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer logger.Sync()

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.DefaultPort
	}

	lis, err := net.Listen("tcp", fmt.Sprintf(":%s", port))
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", port, err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return Serve(ctx, lis, logger, cfg.Domain, register)
}

// Serve runs a gRPC server with health checks on lis until ctx is cancelled,
// then stops it gracefully.
func Serve(ctx context.Context, lis net.Listener, logger *zap.Logger, domain string, register RegisterFunc) error {
	s := grpc.NewServer()
	register(s)

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(s, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)

	logger.Info("grpc server started",
		zap.String("domain", domain),
		zap.String("addr", lis.Addr().String()),
	)

	errCh := make(chan error, 1)
	go func() {
		errCh <- s.Serve(lis)
	}()

	select {
	case <-ctx.Done():
		logger.Info("grpc server stopping", zap.String("domain", domain))
		healthServer.Shutdown()
		s.GracefulStop()
		<-errCh
		return nil
	case err := <-errCh:
		if err != nil && !errors.Is(err, grpc.ErrServerStopped) {
			return fmt.Errorf("failed to serve: %w", err)
		}
		return nil
	}
}
