package http

import (
	"time"

	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/service"
	"github.com/MKhiriev/go-polip/internal/validators"
)

// maxBodyBytes bounds a device request body.
const maxBodyBytes = 64 << 10

type Handler struct {
	services  *service.IngestServices
	validator validators.Validator
	metrics   *Metrics
	clock     func() time.Time

	logger *logger.Logger
}

func NewHandler(services *service.IngestServices, metrics *Metrics, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:  services,
		validator: validators.NewDocumentValidator(),
		metrics:   metrics,
		clock:     time.Now,
		logger:    logger,
	}
}
