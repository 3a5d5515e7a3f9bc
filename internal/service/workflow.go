// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-polip/internal/adapter"
	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/models"
)

// WorkflowParams tunes the scheduler.
type WorkflowParams struct {
	// OnlyOneEvent makes a pending resync preempt every other exchange. A
	// mismatch raised mid-tick stops the rest of the tick and the resync
	// runs alone on the next one.
	OnlyOneEvent bool
	// PushSensePeriodic pushes sensors every PushSenseThreshold even when
	// they were not marked changed.
	PushSensePeriodic bool

	PollState        bool
	PollManufacturer bool
	PollRPC          bool

	PollStateThreshold time.Duration
	PushSenseThreshold time.Duration
}

func DefaultWorkflowParams() WorkflowParams {
	return WorkflowParams{
		OnlyOneEvent:       true,
		PollState:          true,
		PollManufacturer:   true,
		PollRPC:            true,
		PollStateThreshold: time.Second,
		PushSenseThreshold: time.Second,
	}
}

func (p WorkflowParams) pollOptions() models.PollOptions {
	return models.PollOptions{
		State:        p.PollState,
		Manufacturer: p.PollManufacturer,
		RPC:          p.PollRPC,
	}
}

// Workflow is the cooperative scheduler of a device. Each PeriodicUpdate
// decides which protocol exchanges are due and runs them in a fixed order:
// RPC push, state push, state poll, sensor push, resync.
//
// Workflow is not safe for concurrent use; WorkflowJob serializes access.
type Workflow struct {
	adapter adapter.DeviceAdapter
	rpc     *RPCWorkflow
	params  WorkflowParams

	statePush  StatePushHooks
	statePoll  StatePollHooks
	sensePush  SensePushHooks
	value      ValueHooks
	errHandler ErrorHandler

	pollTimer  time.Time
	senseTimer time.Time

	stateChanged bool
	senseChanged bool
	getValue     bool

	lastErr error

	logger *logger.Logger
}

// NewWorkflow builds a scheduler. hooks may implement any of
// StatePushHooks, StatePollHooks, SensePushHooks, ValueHooks and
// ErrorHandler; a nil hooks value runs the bare protocol. rpcWorkflow may be
// nil for devices that take no RPCs.
//
// State and sensor pushes need their setup hook to fill the document;
// without one the push fails validation.
func NewWorkflow(deviceAdapter adapter.DeviceAdapter, hooks any, rpcWorkflow *RPCWorkflow, params WorkflowParams, logger *logger.Logger) *Workflow {
	w := &Workflow{
		adapter: deviceAdapter,
		rpc:     rpcWorkflow,
		params:  params,
		logger:  logger,
	}
	w.statePush, _ = hooks.(StatePushHooks)
	w.statePoll, _ = hooks.(StatePollHooks)
	w.sensePush, _ = hooks.(SensePushHooks)
	w.value, _ = hooks.(ValueHooks)
	w.errHandler, _ = hooks.(ErrorHandler)
	return w
}

// Initialize starts both timers at now and clears every flag.
func (w *Workflow) Initialize(now time.Time) {
	w.pollTimer = now
	w.senseTimer = now
	w.stateChanged = false
	w.senseChanged = false
	w.getValue = false
	w.lastErr = nil
}

// Teardown drops every tracked RPC.
func (w *Workflow) Teardown() {
	if w.rpc != nil {
		w.rpc.Reset()
	}
}

func (w *Workflow) MarkStateChanged() { w.stateChanged = true }
func (w *Workflow) MarkSenseChanged() { w.senseChanged = true }
func (w *Workflow) RequestResync()    { w.getValue = true }

func (w *Workflow) Flags() models.WorkflowFlags {
	return models.WorkflowFlags{
		StateChanged: w.stateChanged,
		SenseChanged: w.senseChanged,
		GetValue:     w.getValue,
	}
}

// LastError returns the most recent failure other than a counter mismatch.
func (w *Workflow) LastError() error {
	return w.lastErr
}

// RPC returns the attached RPC workflow, or nil.
func (w *Workflow) RPC() *RPCWorkflow {
	return w.rpc
}

// Snapshot copies the scheduler state for observers.
func (w *Workflow) Snapshot(now time.Time) models.WorkflowSnapshot {
	dev := w.adapter.Device()
	snap := models.WorkflowSnapshot{
		At:        now,
		Serial:    dev.Serial,
		Value:     dev.Value,
		Flags:     w.Flags(),
		ErrorCode: ErrorCode(w.lastErr),
	}
	if w.lastErr != nil {
		snap.LastError = w.lastErr.Error()
	}
	if w.rpc != nil {
		snap.RPCs = w.rpc.Active()
		snap.Capacity = w.rpc.Capacity()
	}
	return snap
}

// PeriodicUpdate runs one scheduler tick. doc is scratch space reused by
// every exchange of the tick.
//
// A counter mismatch in any exchange schedules a resync and is not
// returned. Other failures are recorded, passed to the ErrorHandler hook and
// returned wrapped in ErrWorkflow, joined when more than one class failed.
func (w *Workflow) PeriodicUpdate(ctx context.Context, doc *document.Document, now time.Time) error {
	var errs []error
	events := 0

	// throttled reports whether a push or poll must wait for the resync.
	throttled := func() bool {
		return w.params.OnlyOneEvent && w.getValue
	}

	if w.rpc != nil && w.rpc.ShouldPeriodicUpdate() && !throttled() {
		events++
		if err := w.rpc.PeriodicUpdate(ctx, doc, now, w.params.OnlyOneEvent); err != nil {
			errs = w.fail(errs, doc, models.EventPushRPC, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(append(errs, err)...)
	}

	if w.stateChanged && !throttled() {
		events++
		if err := w.pushState(ctx, doc, now); err != nil {
			errs = w.fail(errs, doc, models.EventPushState, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(append(errs, err)...)
	}

	if !w.stateChanged && now.Sub(w.pollTimer) >= w.params.PollStateThreshold && !throttled() {
		events++
		if err := w.pollState(ctx, doc, now); err != nil {
			errs = w.fail(errs, doc, models.EventPollState, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(append(errs, err)...)
	}

	senseDue := w.senseChanged ||
		(w.params.PushSensePeriodic && now.Sub(w.senseTimer) >= w.params.PushSenseThreshold)
	if senseDue && !throttled() {
		events++
		if err := w.pushSense(ctx, doc, now); err != nil {
			errs = w.fail(errs, doc, models.EventPushSense, err)
		}
	}
	if err := ctx.Err(); err != nil {
		return errors.Join(append(errs, err)...)
	}

	if w.getValue && !(w.params.OnlyOneEvent && events >= 1) {
		w.getValue = false
		if err := w.resync(ctx, doc, now); err != nil {
			errs = w.fail(errs, doc, models.EventGetValue, err)
		}
	}

	return errors.Join(errs...)
}

func (w *Workflow) pushState(ctx context.Context, doc *document.Document, now time.Time) error {
	doc.Clear()
	if w.statePush != nil {
		w.statePush.PushStateSetup(doc)
	}
	if err := w.adapter.PushState(ctx, doc, now); err != nil {
		return err
	}

	w.stateChanged = false
	w.pollTimer = now
	if w.statePush != nil {
		w.statePush.PushStateResponse(doc)
	}
	return nil
}

func (w *Workflow) pollState(ctx context.Context, doc *document.Document, now time.Time) error {
	doc.Clear()
	if err := w.adapter.GetState(ctx, doc, now, w.params.pollOptions()); err != nil {
		return err
	}

	w.pollTimer = now
	if w.statePoll != nil {
		w.statePoll.PollStateResponse(doc)
	}
	if w.rpc != nil {
		return w.rpc.PollEvent(ctx, doc)
	}
	return nil
}

func (w *Workflow) pushSense(ctx context.Context, doc *document.Document, now time.Time) error {
	doc.Clear()
	if w.sensePush != nil {
		w.sensePush.PushSenseSetup(doc)
	}
	if err := w.adapter.PushSensors(ctx, doc, now); err != nil {
		return err
	}

	w.senseTimer = now
	w.senseChanged = false
	if w.sensePush != nil {
		w.sensePush.PushSenseResponse(doc)
	}
	return nil
}

func (w *Workflow) resync(ctx context.Context, doc *document.Document, now time.Time) error {
	doc.Clear()
	if err := w.adapter.GetValue(ctx, doc, now); err != nil {
		return err
	}

	w.logger.Info().
		Str("func", "Workflow.PeriodicUpdate").
		Str("serial", w.adapter.Device().Serial).
		Uint32("value", w.adapter.Device().Value).
		Msg("counter resynchronized")

	if w.value != nil {
		w.value.ValueResponse(doc)
	}
	return nil
}

// fail records err for class. RPC push failures other than a counter
// mismatch have already been handed to the hook by the RPC workflow.
// rpcReportsErrors tells whether the RPC workflow already handed a push
// failure to its own error handler.
func (w *Workflow) rpcReportsErrors(class models.EventClass) bool {
	return class == models.EventPushRPC && w.rpc != nil && w.rpc.errHandler != nil
}

func (w *Workflow) fail(errs []error, doc *document.Document, class models.EventClass, err error) []error {
	if errors.Is(err, adapter.ErrValueMismatch) {
		w.getValue = true
		w.logger.Debug().
			Str("func", "Workflow.PeriodicUpdate").
			Str("event", class.String()).
			Msg("counter mismatch, resync scheduled")
	}

	err = withoutValueMismatch(err)
	if err == nil {
		return errs
	}

	w.lastErr = err
	if w.errHandler != nil && !w.rpcReportsErrors(class) {
		w.errHandler.WorkflowError(doc, class, err)
	}
	w.logger.Warn().
		Str("func", "Workflow.PeriodicUpdate").
		Str("event", class.String()).
		Str("code", ErrorCode(err)).
		Err(err).
		Msg("workflow event failed")

	return append(errs, fmt.Errorf("%w: %s: %w", ErrWorkflow, class, err))
}

// withoutValueMismatch drops counter mismatches from err, looking one level
// into joined errors. It returns nil when nothing else is left.
func withoutValueMismatch(err error) error {
	if !errors.Is(err, adapter.ErrValueMismatch) {
		return err
	}
	joined, ok := err.(interface{ Unwrap() []error })
	if !ok {
		return nil
	}
	var rest []error
	for _, e := range joined.Unwrap() {
		if !errors.Is(e, adapter.ErrValueMismatch) {
			rest = append(rest, e)
		}
	}
	return errors.Join(rest...)
}
