// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/utils"
	"github.com/MKhiriev/go-polip/internal/validators"
)

// tagPlaceholder replaces the tag while the HMAC is computed.
const tagPlaceholder = "0"

// withTag recomputes the HMAC of the request body with the tag replaced by
// the placeholder and compares it with the received tag.
func (h *Handler) withTag(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, ok := deviceRequestFrom(r.Context())
		if !ok {
			writeError(w, r, ErrInvalidBody)
			return
		}

		log := logger.FromRequest(r)
		received, ok := req.doc.GetString(validators.FieldTag)
		if !ok {
			h.metrics.tagFailures.Inc()
			log.Warn().Str("func", "*Handler.withTag").Msg("request carries no tag")
			writeError(w, r, ErrTagInvalid)
			return
		}

		verified, err := verifyTag(utils.NewHasher(req.key), req.doc.Clone(), received)
		if err != nil || !verified {
			h.metrics.tagFailures.Inc()
			log.Warn().Str("func", "*Handler.withTag").Msg("tags are not equal")
			writeError(w, r, ErrTagInvalid)
			return
		}

		log.Debug().Str("func", "*Handler.withTag").Msg("tags are equal")
		next.ServeHTTP(w, r)
	})
}
