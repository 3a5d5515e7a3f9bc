package http

import (
	"fmt"
	"io"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/validators"
)

// withDevice decodes the body and resolves the device key of its serial.
func (h *Handler) withDevice(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
			return
		}

		doc, err := document.Parse(body)
		if err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
			return
		}
		if err = h.validator.Validate(ctx, doc, validators.HeaderFields...); err != nil {
			writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidBody, err))
			return
		}

		serial, _ := doc.GetString(validators.FieldSerial)
		key, err := h.services.Ingest.DeviceKey(ctx, serial)
		if err != nil {
			writeError(w, r, err)
			return
		}

		log := logger.FromRequest(r)
		log.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("serial", serial)
		})
		ctx = log.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(withDeviceRequest(ctx, &deviceRequest{
			serial: serial,
			key:    key,
			doc:    doc,
		})))
	})
}
