package client

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-polip/internal/adapter"
	"github.com/MKhiriev/go-polip/internal/config"
	"github.com/MKhiriev/go-polip/internal/crypto"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/service"
	"github.com/MKhiriev/go-polip/internal/store"
	"github.com/MKhiriev/go-polip/internal/tui"
	"github.com/MKhiriev/go-polip/internal/workers"
	"github.com/MKhiriev/go-polip/models"
)

// UI is the interactive front end. Run blocks until the user quits or ctx
// is done.
type UI interface {
	Run(ctx context.Context) error
}

type App struct {
	adapter  adapter.DeviceAdapter
	services *service.DeviceServices
	workers  *workers.Workers
	ui       UI
	clock    func() time.Time

	logger *logger.Logger
}

// NewApp wires the device core from cfg. A headless app runs without the
// dashboard.
func NewApp(cfg *config.DeviceConfig, storages *store.Storages, keys crypto.KeyProvider, buildInfo models.AppBuildInfo, logger *logger.Logger) (*App, error) {
	key, err := keys.DeviceKey(cfg.Device.Serial, cfg.Device.Key, cfg.Device.KeyPassphrase)
	if err != nil {
		return nil, fmt.Errorf("resolve device key: %w", err)
	}

	transport, err := adapter.NewHTTPTransport(cfg.Adapter, logger)
	if err != nil {
		return nil, fmt.Errorf("create transport: %w", err)
	}

	dev := &models.Device{
		Serial:       cfg.Device.Serial,
		Firmware:     cfg.Device.Firmware,
		Hardware:     cfg.Device.Hardware,
		Key:          key,
		SkipTagCheck: cfg.Device.SkipTagCheck,
	}
	deviceAdapter := adapter.NewDeviceAdapter(dev, transport, logger)

	services, err := service.NewDeviceServices(deviceAdapter, storages, cfg.Workflow, logger)
	if err != nil {
		return nil, fmt.Errorf("create device services: %w", err)
	}

	var ui UI
	if !cfg.App.Headless {
		ui, err = tui.New(services.Job, services.Policy, buildInfo, logger)
		if err != nil {
			return nil, fmt.Errorf("create ui: %w", err)
		}
	}

	return newApp(deviceAdapter, services, cfg.Workflow.TickInterval, ui, logger), nil
}

func newApp(deviceAdapter adapter.DeviceAdapter, services *service.DeviceServices, tickInterval time.Duration, ui UI, logger *logger.Logger) *App {
	job, policy := services.Job, services.Policy
	flush := func(ctx context.Context) error {
		var err error
		job.Do(func(service.WorkflowEngine) { err = policy.FlushCounter(ctx) })
		return err
	}

	return &App{
		adapter:  deviceAdapter,
		services: services,
		workers: workers.NewWorkers(
			workers.NewWorkflowWorker(job, tickInterval, logger),
			workers.NewCounterFlusher(flush, workers.DefaultFlushInterval, logger),
		),
		ui:     ui,
		clock:  time.Now,
		logger: logger,
	}
}

// Run restores the persisted counter, starts the workers and blocks in the
// dashboard, or until ctx is done when headless.
func (a *App) Run(ctx context.Context) error {
	if err := a.services.Policy.Restore(ctx); err != nil {
		return fmt.Errorf("restore counter: %w", err)
	}

	if err := a.adapter.CheckServerStatus(ctx); err != nil {
		a.logger.Warn().
			Str("func", "App.Run").
			Err(err).
			Msg("ingest service is not reachable yet")
	}

	a.services.Workflow.Initialize(a.clock())
	a.logger.Info().
		Str("func", "App.Run").
		Str("serial", a.adapter.Device().Serial).
		Uint32("value", a.adapter.Device().Value).
		Bool("headless", a.ui == nil).
		Msg("device starting")

	a.workers.Run(ctx)
	defer func() {
		a.workers.Stop()
		a.services.Workflow.Teardown()
	}()

	if a.ui == nil {
		<-ctx.Done()
		return nil
	}
	return a.ui.Run(ctx)
}
