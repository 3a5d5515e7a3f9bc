package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-polip/internal/client"
	"github.com/MKhiriev/go-polip/internal/config"
	"github.com/MKhiriev/go-polip/internal/crypto"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/store"
	"github.com/MKhiriev/go-polip/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo("polip-device", buildVersion, buildDate, buildCommit)
	fmt.Print(buildInfo.String())

	log := logger.NewClientLogger("polip-device")
	cfg, err := config.GetDeviceConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}
	defer storages.Close()

	app, err := client.NewApp(cfg, storages, crypto.NewKeyChain(), buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init device app error")
	}

	if err = app.Run(ctx); err != nil {
		log.Error().Err(err).Msg("device run error")
	}
}
