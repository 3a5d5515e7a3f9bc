// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter implements the tagged request protocol between a device
// and the ingest service.
//
// Every exchange packs the device identity into an ordered document, adds
// the anti-replay counter when the call is value-bearing, signs the
// document with an HMAC-SHA256 tag, and verifies the tag of the response
// with the same procedure. Failures map to a closed set of sentinel errors
// (see errors.go) so the scheduler can tell a counter drift
// ([ErrValueMismatch]) from a generic failure.
//
// [Transport] is the only I/O boundary; [NewHTTPTransport] provides the
// resty-backed implementation.
package adapter

import (
	"context"
	"time"

	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// Transport issues raw requests against the ingest service. Calls are
// synchronous; timeout policy belongs to the implementation.
type Transport interface {
	// Post sends body to endpoint and returns the status code and the raw
	// response body. A non-nil error means no response was received.
	Post(ctx context.Context, endpoint string, body []byte) (int, []byte, error)

	// Get issues a body-less request and returns the status code.
	Get(ctx context.Context, endpoint string) (int, error)
}

// DeviceAdapter is the device side of the protocol. It is bound to a single
// [models.Device]; successful value-bearing calls increment its counter.
//
// Every call clears doc and leaves the decoded response in it. A call that
// fails validation leaves doc untouched and performs no I/O.
type DeviceAdapter interface {
	// Device returns the device the adapter signs for.
	Device() *models.Device

	// SendTagged is the request template every endpoint is built on.
	SendTagged(ctx context.Context, doc *document.Document, endpoint string, includeValue, includeTag bool, ts time.Time) error

	// CheckServerStatus calls the health endpoint.
	CheckServerStatus(ctx context.Context) error

	// GetState polls the server for state, manufacturer data and RPCs.
	GetState(ctx context.Context, doc *document.Document, ts time.Time, opts models.PollOptions) error

	// GetMeta fetches device metadata sections.
	GetMeta(ctx context.Context, doc *document.Document, ts time.Time, opts models.MetaOptions) error

	// PushState pushes doc["state"]. Requires the "state" field.
	PushState(ctx context.Context, doc *document.Document, ts time.Time) error

	// PushError reports an error. Requires "message" and "code".
	PushError(ctx context.Context, doc *document.Document, ts time.Time) error

	// PushNotification sends a notification over the error channel.
	// Requires "message" and "code".
	PushNotification(ctx context.Context, doc *document.Document, ts time.Time) error

	// PushSensors pushes doc["sense"]. Requires the "sense" field.
	PushSensors(ctx context.Context, doc *document.Document, ts time.Time) error

	// GetValue fetches the server counter without sending the local one and
	// stores it as the device counter.
	GetValue(ctx context.Context, doc *document.Document, ts time.Time) error

	// PushRPC pushes an RPC status. Requires rpc.uuid, rpc.result and
	// rpc.status; rpc.timestamp is added when absent.
	PushRPC(ctx context.Context, doc *document.Document, ts time.Time) error

	// GetSchema fetches the device schema.
	GetSchema(ctx context.Context, doc *document.Document, ts time.Time) error

	// GetAllErrorSemantics fetches every error code description.
	GetAllErrorSemantics(ctx context.Context, doc *document.Document, ts time.Time) error

	// GetErrorSemanticFromCode fetches the description of one error code.
	GetErrorSemanticFromCode(ctx context.Context, code int32, doc *document.Document, ts time.Time) error
}
