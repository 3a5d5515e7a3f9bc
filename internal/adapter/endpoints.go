package adapter

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/internal/validators"
	"github.com/MKhiriev/go-polip/models"
)

// Endpoint paths, relative to the transport base URL.
const (
	apiPrefix = "/api/device/v1"

	PathHealthCheck   = apiPrefix + "/health/check"
	PathPoll          = apiPrefix + "/poll"
	PathMeta          = apiPrefix + "/meta"
	PathState         = apiPrefix + "/state"
	PathError         = apiPrefix + "/error"
	PathSense         = apiPrefix + "/sense"
	PathValue         = apiPrefix + "/value"
	PathRPC           = apiPrefix + "/rpc"
	PathSchema        = apiPrefix + "/schema"
	PathErrorSemantic = apiPrefix + "/error/semantic"
)

func (a *deviceAdapter) CheckServerStatus(ctx context.Context) error {
	status, err := a.transport.Get(ctx, PathHealthCheck)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrServerError, err)
	}
	if status != http.StatusOK {
		return fmt.Errorf("%w: http %d", ErrServerError, status)
	}
	return nil
}

func (a *deviceAdapter) GetState(ctx context.Context, doc *document.Document, ts time.Time, opts models.PollOptions) error {
	uri := fmt.Sprintf("%s?state=%t&manufacturer=%t&rpc=%t",
		PathPoll, opts.State, opts.Manufacturer, opts.RPC)

	return a.SendTagged(ctx, doc, uri, true, true, ts)
}

func (a *deviceAdapter) GetMeta(ctx context.Context, doc *document.Document, ts time.Time, opts models.MetaOptions) error {
	uri := fmt.Sprintf("%s?state=%t&manufacturer=%t&sensors=%t&general=%t",
		PathMeta, opts.State, opts.Manufacturer, opts.Sensors, opts.General)

	return a.SendTagged(ctx, doc, uri, true, true, ts)
}

func (a *deviceAdapter) PushState(ctx context.Context, doc *document.Document, ts time.Time) error {
	if err := a.require(ctx, doc, validators.StateFields...); err != nil {
		return err
	}
	return a.SendTagged(ctx, doc, PathState, true, true, ts)
}

func (a *deviceAdapter) PushError(ctx context.Context, doc *document.Document, ts time.Time) error {
	if err := a.require(ctx, doc, validators.ErrorFields...); err != nil {
		return err
	}
	return a.SendTagged(ctx, doc, PathError, true, true, ts)
}

// PushNotification shares the error channel; the server tells the two apart
// by code.
func (a *deviceAdapter) PushNotification(ctx context.Context, doc *document.Document, ts time.Time) error {
	return a.PushError(ctx, doc, ts)
}

func (a *deviceAdapter) PushSensors(ctx context.Context, doc *document.Document, ts time.Time) error {
	if err := a.require(ctx, doc, validators.SenseFields...); err != nil {
		return err
	}
	return a.SendTagged(ctx, doc, PathSense, true, true, ts)
}

// GetValue overwrites the device counter with the server's. Neither the
// local counter nor a tag is sent, so it works while the two disagree.
func (a *deviceAdapter) GetValue(ctx context.Context, doc *document.Document, ts time.Time) error {
	if err := a.SendTagged(ctx, doc, PathValue, false, false, ts); err != nil {
		return err
	}

	value, ok := doc.GetUint32(validators.FieldValue)
	if !ok {
		return fmt.Errorf("%w: value missing or out of range", ErrResponseDeserialization)
	}
	a.device.Value = value

	return nil
}

func (a *deviceAdapter) PushRPC(ctx context.Context, doc *document.Document, ts time.Time) error {
	if err := a.require(ctx, doc, validators.RPCFields...); err != nil {
		return err
	}

	rpc, _ := doc.GetObject(validators.FieldRPC)
	if !rpc.Has(validators.FieldTimestamp) {
		rpc.Set(validators.FieldTimestamp, formatTimestamp(ts))
	}

	return a.SendTagged(ctx, doc, PathRPC, true, true, ts)
}

func (a *deviceAdapter) GetSchema(ctx context.Context, doc *document.Document, ts time.Time) error {
	return a.SendTagged(ctx, doc, PathSchema, true, true, ts)
}

func (a *deviceAdapter) GetAllErrorSemantics(ctx context.Context, doc *document.Document, ts time.Time) error {
	return a.SendTagged(ctx, doc, PathErrorSemantic, true, true, ts)
}

func (a *deviceAdapter) GetErrorSemanticFromCode(ctx context.Context, code int32, doc *document.Document, ts time.Time) error {
	uri := PathErrorSemantic + "?code=" + strconv.FormatInt(int64(code), 10)
	return a.SendTagged(ctx, doc, uri, true, true, ts)
}

func (a *deviceAdapter) require(ctx context.Context, doc *document.Document, fields ...string) error {
	if err := a.validator.Validate(ctx, doc, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrLibRequest, err)
	}
	return nil
}
