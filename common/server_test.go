package common

import (
	"context"
	"net"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/health/grpc_health_v1"
)

func TestServe_registersServicesAndHealthCheck(t *testing.T) {
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("failed to listen: %v", err)
	}
	addr := lis.Addr().String()

	var registered atomic.Bool
	ctx, cancel := context.WithCancel(context.Background())
	errCh := make(chan error, 1)
	go func() {
		errCh <- Serve(ctx, lis, zap.NewNop(), "test", func(s *grpc.Server) {
			registered.Store(true)
		})
	}()

	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		t.Fatalf("failed to dial: %v", err)
	}
	defer conn.Close()

	var resp *grpc_health_v1.HealthCheckResponse
	for i := 0; i < 20; i++ {
		hctx, hcancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
		resp, err = grpc_health_v1.NewHealthClient(conn).Check(hctx, &grpc_health_v1.HealthCheckRequest{})
		hcancel()
		if err == nil {
			break
		}
		time.Sleep(50 * time.Millisecond)
	}
	if err != nil {
		t.Fatalf("health check failed: %v", err)
	}
	if resp.Status != grpc_health_v1.HealthCheckResponse_SERVING {
		t.Errorf("expected SERVING, got %v", resp.Status)
	}
	if !registered.Load() {
		t.Error("register function was not called")
	}

	cancel()
	select {
	case err := <-errCh:
		if err != nil {
			t.Errorf("expected clean shutdown, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after context cancellation")
	}
}

func TestRunServer_failsOnBadPort(t *testing.T) {
	t.Setenv("PORT", "not-a-port")
	err := RunServer(ServerConfig{Domain: "test", DefaultPort: "0"}, func(*grpc.Server) {})
	if err == nil {
		t.Fatal("expected listen error")
	}
}
