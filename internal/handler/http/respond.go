package http

import (
	"errors"
	"net/http"
	"time"

	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/service"
	"github.com/MKhiriev/go-polip/internal/utils"
	"github.com/MKhiriev/go-polip/internal/validators"
)

// respond signs doc and writes it with status 200. A value-bearing request
// advances the stored counter first, so the response carries the value the
// device holds after its own increment.
func (h *Handler) respond(w http.ResponseWriter, r *http.Request, doc *document.Document) {
	ctx := r.Context()
	req, ok := deviceRequestFrom(ctx)
	if !ok {
		writeError(w, r, ErrInvalidBody)
		return
	}

	var (
		value uint32
		err   error
	)
	if req.valueBearing {
		value, err = h.services.Ingest.Advance(ctx, req.serial, req.value)
	} else {
		value, err = h.services.Ingest.Value(ctx, req.serial)
	}
	if errors.Is(err, service.ErrValueConflict) {
		h.metrics.valueMismatches.Inc()
	}
	if err != nil {
		writeError(w, r, err)
		return
	}

	doc.Set(validators.FieldSerial, req.serial)
	doc.Set(validators.FieldTimestamp, h.clock().UTC().Format(time.RFC3339))
	doc.Set(validators.FieldValue, value)

	if _, err = signTag(utils.NewHasher(req.key), doc); err != nil {
		writeError(w, r, err)
		return
	}

	if _, err = utils.WriteDocument(w, doc, http.StatusOK); err != nil {
		logger.FromRequest(r).Err(err).Str("func", "respond").Msg("failed to write response")
	}
}

// signTag sets the tag of doc and returns the encoded document.
func signTag(hasher *utils.Hasher, doc *document.Document) ([]byte, error) {
	doc.Set(validators.FieldTag, tagPlaceholder)
	body, err := doc.Encode()
	if err != nil {
		return nil, err
	}
	doc.Set(validators.FieldTag, hasher.SumHex(body))
	return doc.Encode()
}

// verifyTag checks received against the HMAC of doc with the placeholder in
// place of the tag. doc is modified.
func verifyTag(hasher *utils.Hasher, doc *document.Document, received string) (bool, error) {
	doc.Set(validators.FieldTag, tagPlaceholder)
	body, err := doc.Encode()
	if err != nil {
		return false, err
	}
	return hasher.Verify(body, received), nil
}
