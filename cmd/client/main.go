package main

import (
	"fmt"

	"github.com/quicknotes/quicknotes/internal/adapter"
	"github.com/quicknotes/quicknotes/internal/client"
	"github.com/quicknotes/quicknotes/internal/config"
	"github.com/quicknotes/quicknotes/internal/logger"
	"github.com/quicknotes/quicknotes/internal/service"
	"github.com/quicknotes/quicknotes/internal/store"
	"github.com/quicknotes/quicknotes/internal/tui"
	"github.com/quicknotes/quicknotes/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo(models.NewAppBuildInfo(buildVersion, buildDate, buildCommit))

	log := logger.NewClientLogger("quicknotes-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	serverAdapter := adapter.NewHTTPServerAdapter(cfg.Adapter, log)

	localStorage, err := store.NewClientStorages(cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	services := service.NewClientServices(localStorage, serverAdapter, log)

	ui, err := tui.New(services, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating ui")
	}

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	if err = app.Run(); err != nil {
		log.Fatal().Err(err).Msg("client run error")
	}
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
