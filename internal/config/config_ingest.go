package config

import (
	"fmt"
	"time"
)

// IngestServer holds the listen settings of the simulator.
type IngestServer struct {
	HTTPAddress    string
	RequestTimeout time.Duration
}

// IngestDevice is the device registered with the simulator at start-up.
type IngestDevice struct {
	Serial        string
	Key           string
	KeyPassphrase string
	InitialValue  uint32
}

// IngestConfig is the configuration view of the ingest simulator.
type IngestConfig struct {
	Server IngestServer
	Device IngestDevice
	App    DeviceApp
}

// GetIngestConfig builds and validates the simulator view of the merged
// structured configuration.
func GetIngestConfig() (*IngestConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewIngestConfig(cfg)
}

// NewIngestConfig maps cfg to an [IngestConfig], fills defaults and
// validates the result.
func NewIngestConfig(cfg *StructuredConfig) (*IngestConfig, error) {
	ingestCfg := &IngestConfig{
		Server: IngestServer{
			HTTPAddress:    orDefault(cfg.Server.HTTPAddress, DefaultServerAddress),
			RequestTimeout: orDefault(cfg.Server.RequestTimeout, DefaultRequestTimeout),
		},
		Device: IngestDevice{
			Serial:        cfg.Device.Serial,
			Key:           cfg.Device.Key,
			KeyPassphrase: cfg.Device.KeyPassphrase,
			InitialValue:  cfg.Device.InitialValue,
		},
		App: DeviceApp{
			Version: orDefault(cfg.App.Version, DefaultVersion),
		},
	}

	return ingestCfg, ingestCfg.validate()
}
