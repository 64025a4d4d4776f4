package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	cart "github.com/Ramakant55/Trendora-Boutique/cart/logic"
	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
	"github.com/Ramakant55/Trendora-Boutique/common"
	projector "github.com/Ramakant55/Trendora-Boutique/projector-log-cart/logic"
	"github.com/Ramakant55/Trendora-Boutique/relay"
	"github.com/Ramakant55/Trendora-Boutique/rpc"
	"github.com/Ramakant55/Trendora-Boutique/storefront/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP storefront and the gRPC services",
	RunE:  runServe,
}

func loadCatalog() (*catalog.Store, error) {
	if cfg.Catalog.DataDir != "" {
		return catalog.LoadDir(cfg.Catalog.DataDir)
	}
	return catalog.LoadDefault()
}

func runServe(cmd *cobra.Command, _ []string) error {
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	store, err := loadCatalog()
	if err != nil {
		return fmt.Errorf("failed to load catalog: %w", err)
	}
	logger.Info("catalog loaded",
		zap.Int("products", len(store.ListProducts())),
		zap.Int("collections", len(store.ListCollections())))

	sessions := cart.NewSessions(
		cart.WithTTL(cfg.GetSessionTTL()),
		cart.WithLogger(logger),
	)
	sessions.Subscribe(projector.Subscriber(logger))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	g, ctx := errgroup.WithContext(ctx)

	if cfg.RelayEnabled() {
		pub, err := relay.Dial(cfg.Relay.AMQPURL, cfg.Relay.Queue, logger, relay.WithBuffer(cfg.Relay.Buffer))
		if err != nil {
			return err
		}
		defer pub.Close()
		sessions.Subscribe(pub.Handle)
		logger.Info("relaying cart events", zap.String("queue", pub.Queue()))
		g.Go(func() error { return pub.Run(ctx) })
	}

	lis, err := net.Listen("tcp", ":"+cfg.Server.GRPCPort)
	if err != nil {
		return fmt.Errorf("failed to listen on port %s: %w", cfg.Server.GRPCPort, err)
	}
	g.Go(func() error {
		return common.Serve(ctx, lis, logger, "storefront", rpc.Register(store, sessions, logger))
	})

	if !verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	router := web.NewRouter(web.NewHandler(store, sessions, web.OptionsFromConfig(cfg), logger))
	g.Go(func() error {
		return serveHTTP(ctx, &http.Server{Addr: cfg.Server.HTTPAddr, Handler: router}, cfg.GetShutdownTimeout())
	})

	g.Go(func() error {
		sweepSessions(ctx, sessions, cfg.GetSweepInterval())
		return nil
	})

	return g.Wait()
}

func serveHTTP(ctx context.Context, srv *http.Server, shutdownTimeout time.Duration) error {
	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server started", zap.String("addr", srv.Addr))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	logger.Info("http server stopping")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// sweepSessions ends idle sessions every interval until ctx is done.
func sweepSessions(ctx context.Context, sessions *cart.Sessions, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			sessions.Sweep(now)
		}
	}
}
