package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-polip/internal/config"
	"github.com/MKhiriev/go-polip/internal/crypto"
	"github.com/MKhiriev/go-polip/internal/handler"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/server"
	"github.com/MKhiriev/go-polip/internal/service"
	"github.com/MKhiriev/go-polip/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	fmt.Print(models.NewAppBuildInfo("polip-ingestsim", buildVersion, buildDate, buildCommit).String())

	log := logger.NewLogger("polip-ingestsim")
	cfg, err := config.GetIngestConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().
		Str("address", cfg.Server.HTTPAddress).
		Str("serial", cfg.Device.Serial).
		Msg("received configs")

	services, err := service.NewIngestServices(context.Background(), cfg, crypto.NewKeyChain(), log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handlers, err := handler.NewHandlers(services, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating handlers")
	}

	srv, err := server.NewServer(handlers.HTTP.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}
