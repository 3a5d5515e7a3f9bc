package service

import (
	"errors"

	"github.com/MKhiriev/go-polip/internal/adapter"
)

var (
	ErrWorkflow     = errors.New("workflow error")
	ErrMissingHook  = errors.New("missing required hook")
	ErrRPCSettings  = errors.New("invalid rpc status requested")
	ErrPoolFull     = errors.New("rpc pool is full")
	ErrMalformedRPC = errors.New("malformed rpc entry")
	ErrRPCNotFound  = errors.New("rpc not found")

	ErrUnknownDevice = errors.New("unknown device")
	ErrDeviceExists  = errors.New("device already registered")
	ErrValueConflict = errors.New("counter moved since the request was checked")

	ErrVersionIsNotSpecified = errors.New("app version is not specified")
)

// Closed set of error codes reported in logs, the journal and the dashboard.
const (
	CodeOK                      = "OK"
	CodeTagMismatch             = "TAG_MISMATCH"
	CodeValueMismatch           = "VALUE_MISMATCH"
	CodeResponseDeserialization = "RESPONSE_DESERIALIZATION"
	CodeServerError             = "SERVER_ERROR"
	CodeLibRequest              = "LIB_REQUEST"
	CodeWorkflow                = "WORKFLOW"
	CodeMissingHook             = "MISSING_HOOK"
	CodeRPCSettings             = "RPC_SETTINGS"
)

var errorCodes = []struct {
	err  error
	code string
}{
	{adapter.ErrValueMismatch, CodeValueMismatch},
	{adapter.ErrTagMismatch, CodeTagMismatch},
	{adapter.ErrResponseDeserialization, CodeResponseDeserialization},
	{adapter.ErrServerError, CodeServerError},
	{adapter.ErrLibRequest, CodeLibRequest},
	{ErrMissingHook, CodeMissingHook},
	{ErrRPCSettings, CodeRPCSettings},
	{ErrPoolFull, CodeWorkflow},
	{ErrMalformedRPC, CodeWorkflow},
	{ErrRPCNotFound, CodeWorkflow},
	{ErrWorkflow, CodeWorkflow},
}

// ErrorCode maps err to its code name. The most specific cause wins, so a
// workflow error wrapping a tag mismatch reports TAG_MISMATCH.
func ErrorCode(err error) string {
	if err == nil {
		return CodeOK
	}
	for _, c := range errorCodes {
		if errors.Is(err, c.err) {
			return c.code
		}
	}
	return CodeWorkflow
}
