package main

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-keeplog/internal/adapter"
	"github.com/MKhiriev/go-keeplog/internal/client"
	"github.com/MKhiriev/go-keeplog/internal/config"
	"github.com/MKhiriev/go-keeplog/internal/logger"
	"github.com/MKhiriev/go-keeplog/internal/service"
	"github.com/MKhiriev/go-keeplog/internal/store"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	log := logger.NewLogger("keeplog")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	remoteAdapter, err := adapter.NewHTTPRemoteAdapter(cfg.Remote, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote adapter")
	}
	stateStore := store.NewStateStore(cfg.Storage, log)

	var history store.HistoryRepository
	if cfg.Storage.HistoryDSN != "" {
		history, err = store.NewHistoryRepository(cfg.Storage, log)
		if err != nil {
			log.Fatal().Err(err).Msg("open pass history database")
		}
		defer history.Close()
	}

	authService := service.NewAuthService(remoteAdapter, cfg, log)
	syncService := service.NewSyncService(remoteAdapter, service.NewSyncPlanner(), cfg, log)

	app := client.NewApp(authService, syncService, stateStore, history, cfg, log)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Fatal().Err(err).Msg("sync run error")
	}
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}
	if buildDate == "" {
		buildDate = "N/A"
	}
	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
