package http

import (
	"context"

	"github.com/MKhiriev/go-polip/internal/document"
)

type ctxKey struct{}

// deviceRequest is the decoded body of a device request and what the
// pipeline learned about it.
type deviceRequest struct {
	serial string
	key    []byte
	doc    *document.Document

	// valueBearing is set once the counter check passed; the response then
	// advances the stored counter from value.
	valueBearing bool
	value        uint32
}

func withDeviceRequest(ctx context.Context, req *deviceRequest) context.Context {
	return context.WithValue(ctx, ctxKey{}, req)
}

func deviceRequestFrom(ctx context.Context) (*deviceRequest, bool) {
	req, ok := ctx.Value(ctxKey{}).(*deviceRequest)
	return req, ok
}
