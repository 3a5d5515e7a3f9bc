package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/utils"
	"github.com/MKhiriev/go-polip/models"
)

// maxStoredErrors bounds the error reports kept per device.
const maxStoredErrors = 100

// QueuedRPC is an RPC the ingest service holds for a device.
type QueuedRPC struct {
	UUID       string
	Type       string
	Status     models.RPCStatus
	Parameters *document.Document
	CreatedAt  time.Time
}

type ingestDevice struct {
	key    []byte
	value  uint32
	state  *document.Document
	sense  *document.Document
	errors []*document.Document
	rpcs   []*QueuedRPC
}

type ingestService struct {
	mu      sync.Mutex
	devices map[string]*ingestDevice
	ids     *utils.UUIDGenerator
	clock   func() time.Time
	logger  *logger.Logger
}

// NewIngestService returns an in-memory IngestService.
func NewIngestService(logger *logger.Logger) IngestService {
	return &ingestService{
		devices: make(map[string]*ingestDevice),
		ids:     utils.NewUUIDGenerator(),
		clock:   time.Now,
		logger:  logger,
	}
}

func (s *ingestService) RegisterDevice(_ context.Context, dev models.Device) error {
	if dev.Serial == "" {
		return fmt.Errorf("%w: empty serial", ErrUnknownDevice)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.devices[dev.Serial]; ok {
		return fmt.Errorf("%w: %s", ErrDeviceExists, dev.Serial)
	}
	s.devices[dev.Serial] = &ingestDevice{
		key:   slices.Clone(dev.Key),
		value: dev.Value,
		state: document.New(),
		sense: document.New(),
	}

	s.logger.Info().
		Str("func", "ingestService.RegisterDevice").
		Str("serial", dev.Serial).
		Uint32("value", dev.Value).
		Msg("device registered")
	return nil
}

// lookup must be called with s.mu held.
func (s *ingestService) lookup(serial string) (*ingestDevice, error) {
	d, ok := s.devices[serial]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownDevice, serial)
	}
	return d, nil
}

func (s *ingestService) DeviceKey(_ context.Context, serial string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return nil, err
	}
	return slices.Clone(d.key), nil
}

func (s *ingestService) Value(_ context.Context, serial string) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return 0, err
	}
	return d.value, nil
}

func (s *ingestService) Advance(_ context.Context, serial string, expected uint32) (uint32, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return 0, err
	}
	if d.value != expected {
		return 0, fmt.Errorf("%w: expected %d, stored %d", ErrValueConflict, expected, d.value)
	}
	d.value++
	return d.value, nil
}

func (s *ingestService) StoreState(_ context.Context, serial string, state *document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return err
	}
	d.state = state.Clone()
	return nil
}

func (s *ingestService) State(_ context.Context, serial string) (*document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return nil, err
	}
	return d.state.Clone(), nil
}

func (s *ingestService) StoreSense(_ context.Context, serial string, sense *document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return err
	}
	d.sense = sense.Clone()
	return nil
}

func (s *ingestService) Sense(_ context.Context, serial string) (*document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return nil, err
	}
	return d.sense.Clone(), nil
}

func (s *ingestService) Errors(_ context.Context, serial string) ([]*document.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return nil, err
	}
	out := make([]*document.Document, 0, len(d.errors))
	for _, e := range d.errors {
		out = append(out, e.Clone())
	}
	return out, nil
}

func (s *ingestService) StoreError(ctx context.Context, serial string, report *document.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return err
	}
	d.errors = append(d.errors, report.Clone())
	if len(d.errors) > maxStoredErrors {
		d.errors = d.errors[len(d.errors)-maxStoredErrors:]
	}

	logger.FromContext(ctx).Debug().
		Str("func", "ingestService.StoreError").
		Str("serial", serial).
		Str("report", report.String()).
		Msg("device reported error")
	return nil
}

func (s *ingestService) EnqueueRPC(_ context.Context, serial, rpcType string, params *document.Document) (string, error) {
	if rpcType == "" || len(rpcType) > maxRPCFieldLen {
		return "", fmt.Errorf("%w: type %q", ErrMalformedRPC, rpcType)
	}
	if params == nil {
		params = document.New()
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return "", err
	}

	rpc := &QueuedRPC{
		UUID:       s.ids.Generate(),
		Type:       rpcType,
		Status:     models.RPCStatusPending,
		Parameters: params.Clone(),
		CreatedAt:  s.clock().UTC(),
	}
	d.rpcs = append(d.rpcs, rpc)

	s.logger.Info().
		Str("func", "ingestService.EnqueueRPC").
		Str("serial", serial).
		Str("uuid", rpc.UUID).
		Str("type", rpcType).
		Msg("rpc queued")
	return rpc.UUID, nil
}

func (s *ingestService) CancelRPC(_ context.Context, serial, uuid string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return err
	}
	rpc, _ := d.findRPC(uuid)
	if rpc == nil {
		return fmt.Errorf("%w: %s", ErrRPCNotFound, uuid)
	}
	rpc.Status = models.RPCStatusCanceled
	return nil
}

func (s *ingestService) QueuedRPCs(_ context.Context, serial string) ([]QueuedRPC, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return nil, err
	}
	out := make([]QueuedRPC, 0, len(d.rpcs))
	for _, rpc := range d.rpcs {
		cp := *rpc
		cp.Parameters = rpc.Parameters.Clone()
		out = append(out, cp)
	}
	return out, nil
}

// UpdateRPC applies a status pushed by the device. Terminal statuses remove
// the RPC; a rejected cancellation puts it back to pending.
func (s *ingestService) UpdateRPC(ctx context.Context, serial, uuid string, status models.RPCStatus) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	d, err := s.lookup(serial)
	if err != nil {
		return err
	}
	rpc, idx := d.findRPC(uuid)
	if rpc == nil {
		return fmt.Errorf("%w: %s", ErrRPCNotFound, uuid)
	}

	previous := rpc.Status
	switch {
	case status == models.RPCStatusUnknown:
		return fmt.Errorf("%w: rpc %s", ErrRPCSettings, uuid)
	case previous == models.RPCStatusCanceled && status == models.RPCStatusRejected:
		rpc.Status = models.RPCStatusPending
	case previous == models.RPCStatusCanceled && status == models.RPCStatusAcknowledged,
		status.IsTerminal():
		d.rpcs = slices.Delete(d.rpcs, idx, idx+1)
	default:
		rpc.Status = status
	}

	logger.FromContext(ctx).Debug().
		Str("func", "ingestService.UpdateRPC").
		Str("serial", serial).
		Str("uuid", uuid).
		Str("from", previous.String()).
		Str("to", status.String()).
		Msg("rpc status updated")
	return nil
}

func (d *ingestDevice) findRPC(uuid string) (*QueuedRPC, int) {
	for i, rpc := range d.rpcs {
		if rpc.UUID == uuid {
			return rpc, i
		}
	}
	return nil, -1
}
