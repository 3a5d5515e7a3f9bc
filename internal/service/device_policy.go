// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/store"
	"github.com/MKhiriev/go-polip/internal/validators"
	"github.com/MKhiriev/go-polip/models"
)

// Built-in RPC types handled by DevicePolicy.
const (
	RPCTypePing        = "ping"
	RPCTypeSetState    = "set_state"
	RPCTypeReportSense = "report_sense"
	RPCTypeReboot      = "reboot"
)

const (
	resultFieldError = "error"

	errUnsupported    = "unsupported"
	errMissingState   = "missing parameters.state"
	storeCallTimeout  = 2 * time.Second
	journalListLength = 20
)

// SensorReader produces the "sense" object of a sensor push.
type SensorReader func(now time.Time) *document.Document

// DevicePolicyParams configures a DevicePolicy.
type DevicePolicyParams struct {
	// AllowedRPCTypes limits accepted RPCs. Empty accepts every type.
	AllowedRPCTypes []string
	// ReadSensors defaults to reporting uptime in seconds.
	ReadSensors SensorReader
	// Clock defaults to time.Now.
	Clock func() time.Time
}

// rpcTask is the user context DevicePolicy attaches to every RPC.
type rpcTask struct {
	params   *document.Document
	result   *document.Document
	canceled bool
	resolved bool
}

// DevicePolicy is the host side of a device: it decides on RPCs, executes
// the built-in ones, fills state and sensor pushes, journals RPC lifecycle
// events and persists the counter.
//
// It implements every scheduler and RPC hook. Attach must be called once
// the workflow it serves is built.
type DevicePolicy struct {
	device   *models.Device
	allowed  map[string]struct{}
	state    *document.Document
	sensors  SensorReader
	clock    func() time.Time
	started  time.Time
	counters store.CounterRepository
	journal  store.RPCJournalRepository

	workflow *Workflow

	savedValue  uint32
	errorCounts map[models.EventClass]int

	logger *logger.Logger
}

func NewDevicePolicy(dev *models.Device, counters store.CounterRepository, journal store.RPCJournalRepository, params DevicePolicyParams, logger *logger.Logger) *DevicePolicy {
	p := &DevicePolicy{
		device:      dev,
		state:       document.New(),
		sensors:     params.ReadSensors,
		clock:       params.Clock,
		counters:    counters,
		journal:     journal,
		savedValue:  dev.Value,
		errorCounts: make(map[models.EventClass]int),
		logger:      logger,
	}
	if p.clock == nil {
		p.clock = time.Now
	}
	p.started = p.clock()
	if p.sensors == nil {
		p.sensors = p.uptime
	}
	if len(params.AllowedRPCTypes) > 0 {
		p.allowed = make(map[string]struct{}, len(params.AllowedRPCTypes))
		for _, t := range params.AllowedRPCTypes {
			p.allowed[t] = struct{}{}
		}
	}
	return p
}

// Attach binds the policy to the workflow whose hooks it serves.
func (p *DevicePolicy) Attach(w *Workflow) {
	p.workflow = w
}

// Restore loads the persisted counter into the device. A device that never
// saved one keeps its configured value.
func (p *DevicePolicy) Restore(ctx context.Context) error {
	counter, err := p.counters.LoadCounter(ctx, p.device.Serial)
	if errors.Is(err, store.ErrCounterNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	p.device.Value = counter.Value
	p.savedValue = counter.Value
	p.logger.Info().
		Str("func", "DevicePolicy.Restore").
		Str("serial", p.device.Serial).
		Uint32("value", counter.Value).
		Msg("counter restored")
	return nil
}

// FlushCounter saves the counter when it moved since the last save.
func (p *DevicePolicy) FlushCounter(ctx context.Context) error {
	value := p.device.Value
	if value == p.savedValue {
		return nil
	}
	err := p.counters.SaveCounter(ctx, models.DeviceCounter{
		Serial:    p.device.Serial,
		Value:     value,
		UpdatedAt: p.clock().UTC(),
	})
	if err != nil {
		return err
	}
	p.savedValue = value
	return nil
}

// AfterTick persists the counter.
func (p *DevicePolicy) AfterTick(ctx context.Context, _ models.WorkflowSnapshot) {
	if err := p.FlushCounter(ctx); err != nil {
		p.logger.Err(err).
			Str("func", "DevicePolicy.AfterTick").
			Str("serial", p.device.Serial).
			Msg("failed to persist counter")
	}
}

// SetState stores value under key in the local state document. The caller
// marks the state changed.
func (p *DevicePolicy) SetState(key string, value any) {
	p.state.Set(key, value)
}

// State returns a copy of the local state document.
func (p *DevicePolicy) State() *document.Document {
	return p.state.Clone()
}

// ErrorCounts returns how many failures each event class reported.
func (p *DevicePolicy) ErrorCounts() map[models.EventClass]int {
	out := make(map[models.EventClass]int, len(p.errorCounts))
	for k, v := range p.errorCounts {
		out[k] = v
	}
	return out
}

// RecentJournal returns the newest journal entries of the device.
func (p *DevicePolicy) RecentJournal(ctx context.Context) ([]models.RPCJournalEntry, error) {
	return p.journal.ListRecent(ctx, p.device.Serial, journalListLength)
}

// ── RPC hooks ────────────────────────────────────────────────────────────────

func (p *DevicePolicy) AcceptRPC(rpc RPC, params *document.Document) bool {
	rpc.SetUserContext(&rpcTask{params: params.Clone()})
	if p.allowed == nil {
		return true
	}
	_, ok := p.allowed[rpc.Type()]
	return ok
}

func (p *DevicePolicy) ReacceptRPC(rpc RPC, params *document.Document) bool {
	if task, ok := rpc.UserContext().(*rpcTask); ok && task.resolved {
		return true
	}
	return p.AcceptRPC(rpc, params)
}

func (p *DevicePolicy) CancelRPC(rpc RPC) bool {
	if task, ok := rpc.UserContext().(*rpcTask); ok {
		task.canceled = true
	}
	return true
}

func (p *DevicePolicy) NewRPC(rpc RPC, _ *document.Document) {
	p.record(rpc, models.JournalEventNew)
}

func (p *DevicePolicy) FreeRPC(rpc RPC) {
	p.record(rpc, models.JournalEventFreed)
}

// ShouldDeleteExtraRPC drops RPCs the server stopped reporting.
func (p *DevicePolicy) ShouldDeleteExtraRPC(rpc RPC) bool {
	p.logger.Info().
		Str("func", "DevicePolicy.ShouldDeleteExtraRPC").
		Str("uuid", rpc.UUID()).
		Str("status", rpc.Status().String()).
		Msg("rpc withdrawn by server")
	return true
}

func (p *DevicePolicy) PushRPCSetup(rpc RPC, doc *document.Document) {
	task, ok := rpc.UserContext().(*rpcTask)
	if !ok || task.result == nil {
		return
	}
	if body, ok := doc.GetObject(validators.FieldRPC); ok {
		body.Set(rpcFieldResult, task.result)
	}
}

// PushRPCResponse runs a built-in RPC once its acknowledgment reached the
// server.
func (p *DevicePolicy) PushRPCResponse(rpc RPC, _ *document.Document) {
	p.record(rpc, models.JournalEventPushed)

	task, ok := rpc.UserContext().(*rpcTask)
	if !ok || task.canceled || task.resolved || rpc.Status() != models.RPCStatusAcknowledged {
		return
	}
	if p.workflow == nil || p.workflow.RPC() == nil {
		return
	}

	rpcs := p.workflow.RPC()
	var err error
	switch rpc.Type() {
	case RPCTypePing:
		err = rpcs.Succeed(rpc.UUID())
	case RPCTypeSetState:
		state, ok := task.params.GetObject(validators.FieldState)
		if !ok {
			task.result = failure(errMissingState)
			err = rpcs.Fail(rpc.UUID())
			break
		}
		p.state.Merge(state)
		p.workflow.MarkStateChanged()
		err = rpcs.Succeed(rpc.UUID())
	case RPCTypeReportSense:
		p.workflow.MarkSenseChanged()
		err = rpcs.Succeed(rpc.UUID())
	case RPCTypeReboot:
		task.result = failure(errUnsupported)
		err = rpcs.Fail(rpc.UUID())
	default:
		return
	}
	if err != nil {
		p.logger.Err(err).
			Str("func", "DevicePolicy.PushRPCResponse").
			Str("uuid", rpc.UUID()).
			Msg("failed to resolve rpc")
		return
	}

	task.resolved = true
	p.record(rpc, models.JournalEventResolved)
}

func failure(message string) *document.Document {
	d := document.New()
	d.Set(resultFieldError, message)
	return d
}

// ── Scheduler hooks ──────────────────────────────────────────────────────────

func (p *DevicePolicy) PushStateSetup(doc *document.Document) {
	doc.Set(validators.FieldState, p.state.Clone())
}

func (p *DevicePolicy) PushStateResponse(*document.Document) {}

// PollStateResponse adopts the state the server reports.
func (p *DevicePolicy) PollStateResponse(doc *document.Document) {
	if state, ok := doc.GetObject(validators.FieldState); ok {
		p.state.Merge(state)
	}
}

func (p *DevicePolicy) PushSenseSetup(doc *document.Document) {
	doc.Set(validators.FieldSense, p.sensors(p.clock()))
}

func (p *DevicePolicy) PushSenseResponse(*document.Document) {}

func (p *DevicePolicy) ValueResponse(*document.Document) {
	p.logger.Info().
		Str("func", "DevicePolicy.ValueResponse").
		Str("serial", p.device.Serial).
		Uint32("value", p.device.Value).
		Msg("counter adopted from server")
}

func (p *DevicePolicy) WorkflowError(_ *document.Document, class models.EventClass, err error) {
	p.errorCounts[class]++
	p.logger.Warn().
		Str("func", "DevicePolicy.WorkflowError").
		Str("serial", p.device.Serial).
		Str("event", class.String()).
		Str("code", ErrorCode(err)).
		Int("count", p.errorCounts[class]).
		Err(err).
		Msg("workflow error")
}

// ── helpers ──────────────────────────────────────────────────────────────────

func (p *DevicePolicy) uptime(now time.Time) *document.Document {
	d := document.New()
	d.Set("uptime", int64(now.Sub(p.started)/time.Second))
	return d
}

func (p *DevicePolicy) record(rpc RPC, event models.JournalEvent) {
	if p.journal == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), storeCallTimeout)
	defer cancel()

	_, err := p.journal.Append(ctx, models.RPCJournalEntry{
		Serial:     p.device.Serial,
		UUID:       rpc.UUID(),
		Type:       rpc.Type(),
		Status:     rpc.Status().String(),
		NextStatus: rpc.NextStatus().String(),
		Event:      event,
		CreatedAt:  p.clock().UTC(),
	})
	if err != nil {
		p.logger.Err(err).
			Str("func", "DevicePolicy.record").
			Str("uuid", rpc.UUID()).
			Str("event", string(event)).
			Msg("failed to journal rpc event")
	}
}
