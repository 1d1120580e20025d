package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-class-reports/internal/config"
	"github.com/MKhiriev/go-class-reports/internal/handler"
	"github.com/MKhiriev/go-class-reports/internal/logger"
	"github.com/MKhiriev/go-class-reports/internal/server"
	"github.com/MKhiriev/go-class-reports/internal/service"
	"github.com/MKhiriev/go-class-reports/internal/store"
	"github.com/MKhiriev/go-class-reports/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	log := logger.NewLogger("class-reports-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Str("driver", cfg.Storage.DB.Driver).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}
	defer func() {
		if closeErr := storages.Close(); closeErr != nil {
			log.Err(closeErr).Msg("error closing storages")
		}
	}()

	services, err := service.NewServices(storages, cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
