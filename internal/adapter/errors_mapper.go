package adapter

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/MKhiriev/go-polip/internal/app"
	"github.com/MKhiriev/go-polip/internal/document"
)

const maxErrorExcerpt = 128

// mapResponseError classifies a non-200 response. The ingest service signals
// a counter conflict only through the body, which may arrive as a JSON
// string, as plain text or as an object carrying a message field.
func mapResponseError(status int, body []byte, decoded *document.Document) error {
	if isValueInvalid(body, decoded) {
		return fmt.Errorf("%w: http %d", ErrValueMismatch, status)
	}

	excerpt := strings.TrimSpace(string(body))
	if excerpt == "" {
		excerpt = http.StatusText(status)
	}
	if len(excerpt) > maxErrorExcerpt {
		excerpt = excerpt[:maxErrorExcerpt] + "..."
	}

	return fmt.Errorf("%w: http %d: %s", ErrServerError, status, excerpt)
}

func isValueInvalid(body []byte, decoded *document.Document) bool {
	var s string
	if err := json.Unmarshal(body, &s); err == nil && s == app.MsgValueInvalid {
		return true
	}
	if strings.TrimSpace(string(body)) == app.MsgValueInvalid {
		return true
	}
	if decoded != nil {
		if msg, ok := decoded.GetString("message"); ok && msg == app.MsgValueInvalid {
			return true
		}
	}
	return false
}
