// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// device host and the ingest simulator. It is populated by merging values
// from environment variables, command-line flags, and an optional JSON
// file. Each binary reads its own validated view of it (see
// [GetDeviceConfig] and [GetIngestConfig]).
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// Device holds the identity and key material of the device.
	Device Device `envPrefix:"DEVICE_"`

	// Adapter holds the outbound connection settings of the device.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workflow holds scheduler parameters.
	Workflow Workflow `envPrefix:"WORKFLOW_"`

	// Storage holds the local SQLite settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen settings of the ingest simulator.
	Server Server `envPrefix:"SERVER_"`

	// App holds application-level settings.
	App App `envPrefix:"APP_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Device identifies the unit and carries its key material. Exactly one of
// Key and KeyPassphrase is normally set; Key wins when both are.
type Device struct {
	// Env: DEVICE_SERIAL
	Serial string `env:"SERIAL"`
	// Env: DEVICE_FIRMWARE
	Firmware string `env:"FIRMWARE"`
	// Env: DEVICE_HARDWARE
	Hardware string `env:"HARDWARE"`

	// Key is the shared secret, hex encoded.
	// Env: DEVICE_KEY
	Key string `env:"KEY"`

	// KeyPassphrase derives the key with Argon2id, salted with the serial.
	// Env: DEVICE_KEY_PASSPHRASE
	KeyPassphrase string `env:"KEY_PASSPHRASE"`

	// SkipTagCheck disables request signing and response verification.
	// Env: DEVICE_SKIP_TAG_CHECK
	SkipTagCheck bool `env:"SKIP_TAG_CHECK"`

	// InitialValue seeds the counter of the simulated device.
	// Env: DEVICE_INITIAL_VALUE
	InitialValue uint32 `env:"INITIAL_VALUE"`
}

// Adapter holds outbound settings of the device transport.
type Adapter struct {
	// HTTPAddress is the base URL of the ingest service. A bare host:port is
	// treated as http.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single request (e.g. "10s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workflow holds scheduler parameters. Zero values are replaced by defaults
// in the device view.
type Workflow struct {
	// Env: WORKFLOW_TICK_INTERVAL
	TickInterval time.Duration `env:"TICK_INTERVAL"`

	// OnlyOneEvent is a pointer so that an explicit false survives merging.
	// Env: WORKFLOW_ONLY_ONE_EVENT
	OnlyOneEvent *bool `env:"ONLY_ONE_EVENT"`

	// Env: WORKFLOW_PUSH_SENSE_PERIODIC
	PushSensePeriodic bool `env:"PUSH_SENSE_PERIODIC"`
	// Env: WORKFLOW_POLL_STATE_THRESHOLD
	PollStateThreshold time.Duration `env:"POLL_STATE_THRESHOLD"`
	// Env: WORKFLOW_PUSH_SENSE_THRESHOLD
	PushSenseThreshold time.Duration `env:"PUSH_SENSE_THRESHOLD"`

	// MaxActiveRPCs is the RPC pool capacity.
	// Env: WORKFLOW_MAX_ACTIVE_RPCS
	MaxActiveRPCs int `env:"MAX_ACTIVE_RPCS"`

	// PushNotification sends a notification after every RPC status push.
	// Env: WORKFLOW_PUSH_NOTIFICATION
	PushNotification bool `env:"PUSH_NOTIFICATION"`

	// AllowedRPCTypes limits accepted RPC types. Empty accepts all.
	// Env: WORKFLOW_ALLOWED_RPC_TYPES (comma separated)
	AllowedRPCTypes []string `env:"ALLOWED_RPC_TYPES" envSeparator:","`
}

// Storage groups the configuration of the persistence backends.
type Storage struct {
	// DB holds the database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite file path (e.g. "polip.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds listen settings of the ingest simulator.
type Server struct {
	// HTTPAddress is the TCP address the simulator listens on, in
	// "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// App holds application-level configuration values.
type App struct {
	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// Headless runs the device without the terminal dashboard.
	// Env: APP_HEADLESS
	Headless bool `env:"HEADLESS"`
}

// GetStructuredConfig loads and merges the configuration from all
// available sources. mergo only fills zero fields, so for any field the
// first source that sets it wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
