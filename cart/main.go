// Command cart serves session carts over gRPC.
package main

import (
	"os"
	"time"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/Ramakant55/Trendora-Boutique/cart/logic"
	catalog "github.com/Ramakant55/Trendora-Boutique/catalog/logic"
	"github.com/Ramakant55/Trendora-Boutique/common"
	projector "github.com/Ramakant55/Trendora-Boutique/projector-log-cart/logic"
	"github.com/Ramakant55/Trendora-Boutique/rpc"
)

var logger *zap.Logger

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var store *catalog.Store
	if dir := os.Getenv("BOUTIQUE_DATA_DIR"); dir != "" {
		store, err = catalog.LoadDir(dir)
	} else {
		store, err = catalog.LoadDefault()
	}
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}

	sessions := logic.NewSessions(logic.WithLogger(logger))
	sessions.Subscribe(projector.Subscriber(logger))

	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for now := range ticker.C {
			sessions.Sweep(now)
		}
	}()

	err = common.RunServer(common.ServerConfig{Domain: logic.Domain, DefaultPort: "50202"}, func(s *grpc.Server) {
		rpc.RegisterCartServer(s, rpc.NewCartServer(store, sessions, logger))
	})
	if err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
