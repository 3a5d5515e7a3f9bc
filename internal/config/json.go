package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// StructuredJSONConfig mirrors [StructuredConfig] in the JSON file layout.
// Durations are strings such as "250ms".
type StructuredJSONConfig struct {
	Device struct {
		Serial        string `json:"serial"`
		Firmware      string `json:"firmware"`
		Hardware      string `json:"hardware"`
		Key           string `json:"key"`
		KeyPassphrase string `json:"key_passphrase"`
		SkipTagCheck  bool   `json:"skip_tag_check"`
		InitialValue  uint32 `json:"initial_value"`
	} `json:"device,omitempty"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"adapter,omitempty"`

	Workflow struct {
		TickInterval       Duration `json:"tick_interval"`
		OnlyOneEvent       *bool    `json:"only_one_event"`
		PushSensePeriodic  bool     `json:"push_sense_periodic"`
		PollStateThreshold Duration `json:"poll_state_threshold"`
		PushSenseThreshold Duration `json:"push_sense_threshold"`
		MaxActiveRPCs      int      `json:"max_active_rpcs"`
		PushNotification   bool     `json:"push_notification"`
		AllowedRPCTypes    []string `json:"allowed_rpc_types"`
	} `json:"workflow,omitempty"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn"`
		} `json:"db,omitempty"`
	} `json:"storage,omitempty"`

	Server struct {
		HTTPAddress    string   `json:"http_address"`
		RequestTimeout Duration `json:"request_timeout"`
	} `json:"server,omitempty"`

	App struct {
		Version  string `json:"version"`
		Headless bool   `json:"headless"`
	} `json:"app,omitempty"`
}

func parseJSON(jsonFilePath string) (*StructuredConfig, error) {
	jsonFile, err := os.Open(jsonFilePath)
	if err != nil {
		return nil, fmt.Errorf("error reading a json file: %w", err)
	}
	defer jsonFile.Close()

	var jsonCfg StructuredJSONConfig
	if err := json.NewDecoder(jsonFile).Decode(&jsonCfg); err != nil {
		return nil, fmt.Errorf("error decoding json configs: %w", err)
	}

	cfg := &StructuredConfig{
		Device: Device{
			Serial:        jsonCfg.Device.Serial,
			Firmware:      jsonCfg.Device.Firmware,
			Hardware:      jsonCfg.Device.Hardware,
			Key:           jsonCfg.Device.Key,
			KeyPassphrase: jsonCfg.Device.KeyPassphrase,
			SkipTagCheck:  jsonCfg.Device.SkipTagCheck,
			InitialValue:  jsonCfg.Device.InitialValue,
		},
		Adapter: Adapter{
			HTTPAddress:    jsonCfg.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Adapter.RequestTimeout),
		},
		Workflow: Workflow{
			TickInterval:       time.Duration(jsonCfg.Workflow.TickInterval),
			OnlyOneEvent:       jsonCfg.Workflow.OnlyOneEvent,
			PushSensePeriodic:  jsonCfg.Workflow.PushSensePeriodic,
			PollStateThreshold: time.Duration(jsonCfg.Workflow.PollStateThreshold),
			PushSenseThreshold: time.Duration(jsonCfg.Workflow.PushSenseThreshold),
			MaxActiveRPCs:      jsonCfg.Workflow.MaxActiveRPCs,
			PushNotification:   jsonCfg.Workflow.PushNotification,
			AllowedRPCTypes:    jsonCfg.Workflow.AllowedRPCTypes,
		},
		Storage: Storage{
			DB: DB{
				DSN: jsonCfg.Storage.DB.DSN,
			},
		},
		Server: Server{
			HTTPAddress:    jsonCfg.Server.HTTPAddress,
			RequestTimeout: time.Duration(jsonCfg.Server.RequestTimeout),
		},
		App: App{
			Version:  jsonCfg.App.Version,
			Headless: jsonCfg.App.Headless,
		},
	}

	return cfg, nil
}

// Duration is a wrapper around time.Duration that supports JSON unmarshaling from strings like "1h", "30s"
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
