package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-polip/internal/app"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/service"
	"github.com/MKhiriev/go-polip/internal/utils"
	"github.com/MKhiriev/go-polip/internal/validators"
)

// errorResponses is checked in order; the first match wins.
var errorResponses = []struct {
	err     error
	status  int
	message string
}{
	{ErrValueInvalid, http.StatusConflict, app.MsgValueInvalid},
	{service.ErrValueConflict, http.StatusConflict, app.MsgValueInvalid},
	{ErrTagInvalid, http.StatusUnauthorized, app.MsgTagInvalid},
	{service.ErrUnknownDevice, http.StatusNotFound, app.MsgUnknownDevice},
	{service.ErrRPCNotFound, http.StatusNotFound, app.MsgRPCNotFound},
	{ErrUnknownErrorCode, http.StatusNotFound, app.MsgUnknownErrorCode},
	{ErrInvalidBody, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrMissingField, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{validators.ErrNotAnObject, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrRPCSettings, http.StatusBadRequest, app.MsgInvalidDataProvided},
	{service.ErrMalformedRPC, http.StatusBadRequest, app.MsgInvalidDataProvided},
}

func responseFromError(err error) (int, string) {
	for _, e := range errorResponses {
		if errors.Is(err, e.err) {
			return e.status, e.message
		}
	}
	return http.StatusInternalServerError, app.MsgInternalServerError
}

// writeError replies with the status mapped from err and a JSON string body,
// the form devices recognize for "value invalid".
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	status, message := responseFromError(err)

	log := logger.FromRequest(r)
	if status >= http.StatusInternalServerError {
		log.Err(err).Str("func", "writeError").Msg("request failed")
	} else {
		log.Debug().Str("func", "writeError").Err(err).Int("status", status).Msg("request rejected")
	}

	if _, err = utils.WriteJSON(w, message, status); err != nil {
		log.Err(err).Str("func", "writeError").Msg("failed to write error response")
	}
}
