package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_Success(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	p := filepath.Join(dir, "config.json")

	jsonBody := `{
		"device": {
			"serial": "polip-01",
			"firmware": "1.0.0",
			"hardware": "rev-b",
			"key": "00ff",
			"skip_tag_check": true,
			"initial_value": 7
		},
		"adapter": {
			"http_address": "http://localhost:3021",
			"request_timeout": "5s"
		},
		"workflow": {
			"tick_interval": "100ms",
			"only_one_event": false,
			"poll_state_threshold": "2s",
			"max_active_rpcs": 4,
			"allowed_rpc_types": ["ping", "reboot"]
		},
		"storage": { "db": { "dsn": "polip.db" } },
		"server": { "http_address": "localhost:3021", "request_timeout": "30s" },
		"app": { "version": "1.2.3", "headless": true }
	}`

	require.NoError(t, os.WriteFile(p, []byte(jsonBody), 0o600))

	// Act
	cfg, err := parseJSON(p)

	// Assert
	require.NoError(t, err)
	require.NotNil(t, cfg)

	assert.Equal(t, "polip-01", cfg.Device.Serial)
	assert.Equal(t, "rev-b", cfg.Device.Hardware)
	assert.Equal(t, "00ff", cfg.Device.Key)
	assert.True(t, cfg.Device.SkipTagCheck)
	assert.Equal(t, uint32(7), cfg.Device.InitialValue)

	assert.Equal(t, "http://localhost:3021", cfg.Adapter.HTTPAddress)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)

	assert.Equal(t, 100*time.Millisecond, cfg.Workflow.TickInterval)
	require.NotNil(t, cfg.Workflow.OnlyOneEvent)
	assert.False(t, *cfg.Workflow.OnlyOneEvent)
	assert.Equal(t, 2*time.Second, cfg.Workflow.PollStateThreshold)
	assert.Equal(t, 4, cfg.Workflow.MaxActiveRPCs)
	assert.Equal(t, []string{"ping", "reboot"}, cfg.Workflow.AllowedRPCTypes)

	assert.Equal(t, "polip.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:3021", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "1.2.3", cfg.App.Version)
	assert.True(t, cfg.App.Headless)
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_FileNotFound(t *testing.T) {
	cfg, err := parseJSON("definitely-does-not-exist.json")

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error reading a json file")
}

func TestParseJSON_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(p, []byte(`{ this is not json }`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_InvalidDuration(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "bad_duration.json")
	require.NoError(t, os.WriteFile(p, []byte(`{"workflow": {"tick_interval": "not-a-duration"}}`), 0o600))

	cfg, err := parseJSON(p)

	require.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "error decoding json configs")
}

func TestParseJSON_EmptyObject(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "empty.json")
	require.NoError(t, os.WriteFile(p, []byte(`{}`), 0o600))

	cfg, err := parseJSON(p)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, StructuredConfig{}, *cfg)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    time.Duration
		wantErr bool
	}{
		{name: "string", input: `"1m30s"`, want: 90 * time.Second},
		{name: "nanoseconds", input: `1000`, want: time.Microsecond},
		{name: "garbage string", input: `"later"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.input))
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}

func TestDuration_MarshalJSON(t *testing.T) {
	b, err := Duration(250 * time.Millisecond).MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"250ms"`, string(b))
}
