package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/MKhiriev/fit-sync/internal/config"
	"github.com/MKhiriev/fit-sync/internal/handler"
	"github.com/MKhiriev/fit-sync/internal/logger"
	"github.com/MKhiriev/fit-sync/internal/server"
	"github.com/MKhiriev/fit-sync/internal/service"
	"github.com/MKhiriev/fit-sync/internal/store"
	"github.com/MKhiriev/fit-sync/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	fmt.Print(build.String())

	log := logger.NewLogger("fitsync-binserver")
	cfg, err := config.GetServerConfig(afero.NewOsFs(), os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	log = log.WithLevel(cfg.App.LogLevel)

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Int64("max_bin_size", cfg.App.MaxBinSize).
		Bool("cache", cfg.Storage.Cache.RedisAddress != "").
		Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if err := storages.Close(); err != nil {
			log.Err(err).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, *cfg, build, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, *cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
