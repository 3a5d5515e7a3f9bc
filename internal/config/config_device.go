package config

import (
	"fmt"
	"time"
)

// Defaults applied by the views when a field is left zero.
const (
	DefaultAdapterAddress     = "http://api.okospolip.com:3021"
	DefaultRequestTimeout     = 10 * time.Second
	DefaultTickInterval       = 250 * time.Millisecond
	DefaultPollStateThreshold = time.Second
	DefaultPushSenseThreshold = time.Second
	DefaultMaxActiveRPCs      = 1
	DefaultVersion            = "0.0.0"
	DefaultServerAddress      = "localhost:3021"
)

// DeviceIdentity is the device section of [DeviceConfig].
type DeviceIdentity struct {
	Serial        string
	Firmware      string
	Hardware      string
	Key           string
	KeyPassphrase string
	SkipTagCheck  bool
}

// DeviceAdapter holds network settings used by the device transport.
type DeviceAdapter struct {
	// HTTPAddress is the ingest service base URL.
	HTTPAddress string
	// RequestTimeout is the timeout for one outbound request.
	RequestTimeout time.Duration
}

// DeviceWorkflow holds scheduler and RPC pool parameters.
type DeviceWorkflow struct {
	TickInterval       time.Duration
	OnlyOneEvent       bool
	PushSensePeriodic  bool
	PollStateThreshold time.Duration
	PushSenseThreshold time.Duration
	MaxActiveRPCs      int
	PushNotification   bool
	AllowedRPCTypes    []string
}

// DeviceStorage contains local database settings.
type DeviceStorage struct {
	// DSN is the SQLite file path.
	DSN string
}

// DeviceApp contains application-level device settings.
type DeviceApp struct {
	Version  string
	Headless bool
}

// DeviceConfig is the configuration view of the device host, assembled from
// [StructuredConfig].
type DeviceConfig struct {
	Device   DeviceIdentity
	Adapter  DeviceAdapter
	Workflow DeviceWorkflow
	Storage  DeviceStorage
	App      DeviceApp
}

// GetDeviceConfig builds and validates the device view of the merged
// structured configuration.
func GetDeviceConfig() (*DeviceConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewDeviceConfig(cfg)
}

// NewDeviceConfig maps cfg to a [DeviceConfig], fills defaults and
// validates the result.
func NewDeviceConfig(cfg *StructuredConfig) (*DeviceConfig, error) {
	onlyOneEvent := true
	if cfg.Workflow.OnlyOneEvent != nil {
		onlyOneEvent = *cfg.Workflow.OnlyOneEvent
	}

	deviceCfg := &DeviceConfig{
		Device: DeviceIdentity{
			Serial:        cfg.Device.Serial,
			Firmware:      orDefault(cfg.Device.Firmware, DefaultVersion),
			Hardware:      orDefault(cfg.Device.Hardware, DefaultVersion),
			Key:           cfg.Device.Key,
			KeyPassphrase: cfg.Device.KeyPassphrase,
			SkipTagCheck:  cfg.Device.SkipTagCheck,
		},
		Adapter: DeviceAdapter{
			HTTPAddress:    orDefault(cfg.Adapter.HTTPAddress, DefaultAdapterAddress),
			RequestTimeout: orDefault(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
		},
		Workflow: DeviceWorkflow{
			TickInterval:       orDefault(cfg.Workflow.TickInterval, DefaultTickInterval),
			OnlyOneEvent:       onlyOneEvent,
			PushSensePeriodic:  cfg.Workflow.PushSensePeriodic,
			PollStateThreshold: orDefault(cfg.Workflow.PollStateThreshold, DefaultPollStateThreshold),
			PushSenseThreshold: orDefault(cfg.Workflow.PushSenseThreshold, DefaultPushSenseThreshold),
			MaxActiveRPCs:      orDefault(cfg.Workflow.MaxActiveRPCs, DefaultMaxActiveRPCs),
			PushNotification:   cfg.Workflow.PushNotification,
			AllowedRPCTypes:    cfg.Workflow.AllowedRPCTypes,
		},
		Storage: DeviceStorage{
			DSN: cfg.Storage.DB.DSN,
		},
		App: DeviceApp{
			Version:  orDefault(cfg.App.Version, DefaultVersion),
			Headless: cfg.App.Headless,
		},
	}

	return deviceCfg, deviceCfg.validate()
}

func orDefault[T comparable](v, def T) T {
	var zero T
	if v == zero {
		return def
	}
	return v
}
