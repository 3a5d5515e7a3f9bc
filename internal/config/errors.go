package config

import "errors"

// Validation errors returned by the device and ingest views when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidDeviceConfigs indicates a missing serial or missing key
	// material.
	ErrInvalidDeviceConfigs = errors.New("invalid device configuration")
	// ErrInvalidAdapterConfigs indicates invalid adapter settings (for
	// example, a negative request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidWorkflowConfigs indicates invalid scheduler parameters (for
	// example, a negative pool capacity).
	ErrInvalidWorkflowConfigs = errors.New("invalid workflow configuration")
	// ErrInvalidStorageConfigs indicates invalid storage settings (for
	// example, empty DSN or unsupported in-memory DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
	// ErrInvalidServerConfigs indicates invalid ingest simulator settings.
	ErrInvalidServerConfigs = errors.New("invalid server configuration")
)
