// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains wire-level message constants shared by the device
// adapter and the ingest simulator.
//
// The ingest service reports some failures only through the body of a
// non-200 response. Keeping the strings in one place keeps both ends of the
// protocol in agreement.
package app

const (
	// MsgValueInvalid is the body the ingest service returns when the
	// request counter does not match its own. Devices react with a resync.
	MsgValueInvalid = "value invalid"

	// MsgTagInvalid is returned when the request tag does not verify.
	MsgTagInvalid = "tag invalid"

	// MsgUnknownDevice is returned for a serial the service has no key for.
	MsgUnknownDevice = "unknown device"

	// MsgInvalidDataProvided is returned when the body cannot be decoded or
	// lacks a field required by the endpoint.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgRPCNotFound is returned when an RPC push references a uuid that is
	// not queued for the device.
	MsgRPCNotFound = "rpc not found"

	// MsgUnknownErrorCode is returned when an error semantic is requested
	// for a code the service does not describe.
	MsgUnknownErrorCode = "unknown error code"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs.
	MsgInternalServerError = "internal server error"
)
