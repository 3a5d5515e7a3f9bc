package client

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-polip/internal/config"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/mock"
	"github.com/MKhiriev/go-polip/internal/service"
	"github.com/MKhiriev/go-polip/internal/store"
	"github.com/MKhiriev/go-polip/models"
)

type fakeUI struct {
	run func(ctx context.Context) error
}

func (u fakeUI) Run(ctx context.Context) error { return u.run(ctx) }

type appFixture struct {
	dev      *models.Device
	adapter  *mock.MockDeviceAdapter
	counters *mock.MockCounterRepository
	services *service.DeviceServices
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	dev := &models.Device{Serial: "polip-01", Key: []byte("0123456789abcdef")}
	deviceAdapter := mock.NewMockDeviceAdapter(ctrl)
	deviceAdapter.EXPECT().Device().Return(dev).AnyTimes()

	counters := mock.NewMockCounterRepository(ctrl)
	storages := &store.Storages{
		CounterRepository:    counters,
		RPCJournalRepository: mock.NewMockRPCJournalRepository(ctrl),
	}

	services, err := service.NewDeviceServices(deviceAdapter, storages, config.DeviceWorkflow{
		MaxActiveRPCs: 1,
	}, logger.Nop())
	require.NoError(t, err)

	return &appFixture{dev: dev, adapter: deviceAdapter, counters: counters, services: services}
}

func TestApp_HeadlessRestoresCounterAndStopsOnCancel(t *testing.T) {
	f := newAppFixture(t)
	f.counters.EXPECT().
		LoadCounter(gomock.Any(), "polip-01").
		Return(models.DeviceCounter{Serial: "polip-01", Value: 10}, nil)
	f.adapter.EXPECT().CheckServerStatus(gomock.Any()).Return(errors.New("connection refused"))

	app := newApp(f.adapter, f.services, time.Hour, nil, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.NoError(t, app.Run(ctx))
	assert.Equal(t, uint32(10), f.dev.Value)
}

func TestApp_FlushesCounterOnExit(t *testing.T) {
	f := newAppFixture(t)
	f.counters.EXPECT().
		LoadCounter(gomock.Any(), "polip-01").
		Return(models.DeviceCounter{}, store.ErrCounterNotFound)
	f.adapter.EXPECT().CheckServerStatus(gomock.Any()).Return(nil)

	var saved models.DeviceCounter
	f.counters.EXPECT().
		SaveCounter(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, c models.DeviceCounter) error {
			saved = c
			return nil
		})

	ui := fakeUI{run: func(context.Context) error {
		f.services.Job.Do(func(service.WorkflowEngine) { f.dev.Value = 11 })
		return nil
	}}
	app := newApp(f.adapter, f.services, time.Hour, ui, logger.Nop())

	require.NoError(t, app.Run(context.Background()))
	assert.Equal(t, "polip-01", saved.Serial)
	assert.Equal(t, uint32(11), saved.Value)
}

func TestApp_RestoreFailure(t *testing.T) {
	f := newAppFixture(t)
	f.counters.EXPECT().
		LoadCounter(gomock.Any(), "polip-01").
		Return(models.DeviceCounter{}, errors.New("disk I/O error"))

	app := newApp(f.adapter, f.services, time.Hour, nil, logger.Nop())

	err := app.Run(context.Background())
	assert.ErrorContains(t, err, "restore counter")
}

func TestApp_UIErrorIsReturned(t *testing.T) {
	f := newAppFixture(t)
	f.counters.EXPECT().
		LoadCounter(gomock.Any(), "polip-01").
		Return(models.DeviceCounter{}, store.ErrCounterNotFound)
	f.adapter.EXPECT().CheckServerStatus(gomock.Any()).Return(nil)

	boom := errors.New("tty closed")
	app := newApp(f.adapter, f.services, time.Hour, fakeUI{run: func(context.Context) error { return boom }}, logger.Nop())

	assert.ErrorIs(t, app.Run(context.Background()), boom)
}
