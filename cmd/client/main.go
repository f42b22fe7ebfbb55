package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/shiosayi/internal/adapter"
	"github.com/MKhiriev/shiosayi/internal/client"
	"github.com/MKhiriev/shiosayi/internal/config"
	"github.com/MKhiriev/shiosayi/internal/logger"
	"github.com/MKhiriev/shiosayi/internal/service"
	"github.com/MKhiriev/shiosayi/internal/store"
	"github.com/MKhiriev/shiosayi/internal/tui"
	"github.com/MKhiriev/shiosayi/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	cfg, err := config.GetClientConfig(os.Args[1:])
	if err != nil {
		logger.NewLogger("shiosayi-client").Fatal().Err(err).Msg("error getting configs")
	}
	if cfg.App.Version == "" && buildVersion != "" {
		cfg.App.Version = buildVersion
	}

	log := logger.NewClientLogger("shiosayi-client", cfg.Storage.DataDir)
	log.Debug().Any("config", cfg).Msg("received configs")

	storages, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	remote, err := adapter.NewHTTPRemoteAdapter(cfg.Remote, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create remote adapter")
	}

	services, err := service.NewClientServices(storages, remote, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create client services")
	}

	ui, err := tui.New(services, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, storages.Connections, ui, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	if err = app.Run(ctx); err != nil {
		log.Err(err).Msg("client run error")
		stop()
		os.Exit(1)
	}
}
