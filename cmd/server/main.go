package main

import (
	"context"
	"fmt"

	"github.com/quicknotes/quicknotes/internal/config"
	"github.com/quicknotes/quicknotes/internal/handler"
	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/server"
	"github.com/quicknotes/quicknotes/internal/service"
	"github.com/quicknotes/quicknotes/internal/store"
	"github.com/quicknotes/quicknotes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewLogger("quicknotes-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Str("address", cfg.Server.HTTPAddress).Msg("received configs")

	storages, err := store.NewStorages(context.Background(), cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	services := service.NewServices(*storages, *cfg, log)

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
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
	fmt.Printf("Build version: %s\n", valueOrNA(info.BuildVersion()))
	fmt.Printf("Build date: %s\n", valueOrNA(info.BuildDate()))
	fmt.Printf("Build commit: %s\n", valueOrNA(info.BuildCommit()))
}

func valueOrNA(v string) string {
	if v == "" {
		return "N/A"
	}
	return v
}
