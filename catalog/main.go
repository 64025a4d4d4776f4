// Command catalog serves the boutique catalog over gRPC.
package main

import (
	"os"

	"go.uber.org/zap"
	"google.golang.org/grpc"

	"github.com/Ramakant55/Trendora-Boutique/catalog/logic"
	"github.com/Ramakant55/Trendora-Boutique/common"
	"github.com/Ramakant55/Trendora-Boutique/rpc"
)

const Domain = "catalog"

var logger *zap.Logger

func main() {
	var err error
	logger, err = zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	var store *logic.Store
	if dir := os.Getenv("BOUTIQUE_DATA_DIR"); dir != "" {
		store, err = logic.LoadDir(dir)
	} else {
		store, err = logic.LoadDefault()
	}
	if err != nil {
		logger.Fatal("failed to load catalog", zap.Error(err))
	}

	err = common.RunServer(common.ServerConfig{Domain: Domain, DefaultPort: "50201"}, func(s *grpc.Server) {
		rpc.RegisterCatalogServer(s, rpc.NewCatalogServer(store, logger))
	})
	if err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
