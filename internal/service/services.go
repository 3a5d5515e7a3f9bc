package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-polip/internal/adapter"
	"github.com/MKhiriev/go-polip/internal/config"
	"github.com/MKhiriev/go-polip/internal/crypto"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/store"
	"github.com/MKhiriev/go-polip/models"
)

// DeviceServices is the wired device core: the default policy, the RPC
// workflow, the scheduler and the job that drives it.
type DeviceServices struct {
	Policy   *DevicePolicy
	RPC      *RPCWorkflow
	Workflow *Workflow
	Job      *WorkflowJob
}

func NewDeviceServices(deviceAdapter adapter.DeviceAdapter, storages *store.Storages, cfg config.DeviceWorkflow, logger *logger.Logger) (*DeviceServices, error) {
	dev := deviceAdapter.Device()

	policy := NewDevicePolicy(dev, storages.CounterRepository, storages.RPCJournalRepository,
		DevicePolicyParams{AllowedRPCTypes: cfg.AllowedRPCTypes}, logger)

	rpc, err := NewRPCWorkflow(deviceAdapter, policy, RPCParams{
		MaxActiveRPCs:              cfg.MaxActiveRPCs,
		PushAdditionalNotification: cfg.PushNotification,
	}, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating rpc workflow: %w", err)
	}

	params := DefaultWorkflowParams()
	params.OnlyOneEvent = cfg.OnlyOneEvent
	params.PushSensePeriodic = cfg.PushSensePeriodic
	params.PollStateThreshold = cfg.PollStateThreshold
	params.PushSenseThreshold = cfg.PushSenseThreshold

	workflow := NewWorkflow(deviceAdapter, policy, rpc, params, logger)
	policy.Attach(workflow)

	return &DeviceServices{
		Policy:   policy,
		RPC:      rpc,
		Workflow: workflow,
		Job:      NewWorkflowJob(workflow, logger, policy),
	}, nil
}

// IngestServices backs the ingest simulator.
type IngestServices struct {
	Ingest  IngestService
	AppInfo AppInfoService
}

// NewIngestServices builds the simulator registry and registers the device
// described by cfg.
func NewIngestServices(ctx context.Context, cfg *config.IngestConfig, keys crypto.KeyProvider, logger *logger.Logger) (*IngestServices, error) {
	appInfo, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	key, err := keys.DeviceKey(cfg.Device.Serial, cfg.Device.Key, cfg.Device.KeyPassphrase)
	if err != nil {
		return nil, fmt.Errorf("error resolving device key: %w", err)
	}

	ingest := NewIngestService(logger)
	err = ingest.RegisterDevice(ctx, models.Device{
		Serial: cfg.Device.Serial,
		Key:    key,
		Value:  cfg.Device.InitialValue,
	})
	if err != nil {
		return nil, fmt.Errorf("error registering device: %w", err)
	}

	return &IngestServices{
		Ingest:  ingest,
		AppInfo: appInfo,
	}, nil
}
