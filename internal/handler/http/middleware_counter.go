package http

import (
	"net/http"

	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/validators"
)

// withCounter rejects requests whose value differs from the stored counter
// with 409 "value invalid". respond repeats the comparison atomically when it
// advances the counter.
func (h *Handler) withCounter(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		req, ok := deviceRequestFrom(ctx)
		if !ok {
			writeError(w, r, ErrInvalidBody)
			return
		}

		expected, err := h.services.Ingest.Value(ctx, req.serial)
		if err != nil {
			writeError(w, r, err)
			return
		}

		got, ok := req.doc.GetUint32(validators.FieldValue)
		if !ok || got != expected {
			h.metrics.valueMismatches.Inc()
			logger.FromRequest(r).Info().
				Str("func", "*Handler.withCounter").
				Uint32("expected", expected).
				Uint32("got", got).
				Msg("counter mismatch")
			writeError(w, r, ErrValueInvalid)
			return
		}

		req.valueBearing = true
		req.value = got
		next.ServeHTTP(w, r)
	})
}
