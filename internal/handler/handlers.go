package handler

import (
	"github.com/MKhiriev/go-polip/internal/config"
	"github.com/MKhiriev/go-polip/internal/handler/http"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/service"
)

type Handlers struct {
	HTTP    *http.Handler
	Metrics *http.Metrics
}

func NewHandlers(services *service.IngestServices, cfg config.IngestServer, logger *logger.Logger) (*Handlers, error) {
	logger.Info().Msg("creating new handlers...")

	if cfg.HTTPAddress == "" {
		return nil, errNoHandlersAreCreated
	}

	metrics := http.NewMetrics()
	return &Handlers{
		HTTP:    http.NewHandler(services, metrics, logger),
		Metrics: metrics,
	}, nil
}
