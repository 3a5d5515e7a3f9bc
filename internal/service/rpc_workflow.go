// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-polip/internal/adapter"
	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/validators"
	"github.com/MKhiriev/go-polip/models"
)

const (
	rpcFieldUUID       = "uuid"
	rpcFieldType       = "type"
	rpcFieldStatus     = "status"
	rpcFieldParameters = "parameters"
	rpcFieldResult     = "result"
)

// RPCParams tunes an RPCWorkflow.
type RPCParams struct {
	// MaxActiveRPCs is the arena capacity. Values below 1 mean 1.
	MaxActiveRPCs int
	// PushAdditionalNotification sends a notification after every
	// successful status push.
	PushAdditionalNotification bool
}

// DefaultRPCParams returns a single-slot configuration without notifications.
func DefaultRPCParams() RPCParams {
	return RPCParams{MaxActiveRPCs: 1}
}

// RPCWorkflow tracks the RPCs a device is working on and keeps their status
// in agreement with the server.
//
// Reconciliation (PollEvent) decides what to do with every RPC the server
// reports; the push pass (PeriodicUpdate) sends each decision back. The
// workflow is not safe for concurrent use.
type RPCWorkflow struct {
	adapter adapter.DeviceAdapter
	pool    *rpcPool
	params  RPCParams

	policy     RPCPolicy
	reacceptor RPCReacceptor
	lifecycle  RPCLifecycleObserver
	pusher     RPCPushObserver
	notifier   RPCNotifier
	extra      ExtraRPCPolicy
	errHandler ErrorHandler

	pendingPush bool

	logger *logger.Logger
}

// NewRPCWorkflow builds a workflow around policy. Optional hooks are picked
// up from policy by type assertion: RPCReacceptor, RPCLifecycleObserver,
// RPCPushObserver, RPCNotifier, ExtraRPCPolicy and ErrorHandler.
func NewRPCWorkflow(deviceAdapter adapter.DeviceAdapter, policy RPCPolicy, params RPCParams, logger *logger.Logger) (*RPCWorkflow, error) {
	if policy == nil {
		return nil, fmt.Errorf("%w: rpc policy", ErrMissingHook)
	}
	if params.MaxActiveRPCs < 1 {
		params.MaxActiveRPCs = 1
	}

	w := &RPCWorkflow{
		adapter: deviceAdapter,
		pool:    newRPCPool(params.MaxActiveRPCs),
		params:  params,
		policy:  policy,
		logger:  logger,
	}
	w.reacceptor, _ = policy.(RPCReacceptor)
	w.lifecycle, _ = policy.(RPCLifecycleObserver)
	w.pusher, _ = policy.(RPCPushObserver)
	w.notifier, _ = policy.(RPCNotifier)
	w.extra, _ = policy.(ExtraRPCPolicy)
	w.errHandler, _ = policy.(ErrorHandler)

	return w, nil
}

// PollEvent reconciles the local records with the "rpc" array of a poll
// response. Documents without the array are ignored.
//
// Tracked RPCs missing from the array are evicted. Without an
// ExtraRPCPolicy each eviction is reported as ErrWorkflow.
func (w *RPCWorkflow) PollEvent(ctx context.Context, doc *document.Document) error {
	entries, ok := doc.GetArray(validators.FieldRPC)
	if !ok {
		return nil
	}

	w.pool.masterChecked = !w.pool.masterChecked

	for _, raw := range entries {
		entry, ok := raw.(*document.Document)
		if !ok {
			w.logger.Warn().
				Str("func", "RPCWorkflow.PollEvent").
				Msg("skipping rpc entry that is not an object")
			continue
		}
		w.reconcile(entry)
	}

	return w.evictUnchecked()
}

func (w *RPCWorkflow) reconcile(entry *document.Document) {
	uuid, _ := entry.GetString(rpcFieldUUID)
	rpcType, _ := entry.GetString(rpcFieldType)
	statusText, _ := entry.GetString(rpcFieldStatus)
	status := models.ParseRPCStatus(statusText)
	params, ok := entry.GetObject(rpcFieldParameters)
	if !ok {
		params = document.New()
	}

	if idx, found := w.pool.findByUUID(uuid); found {
		rec := &w.pool.records[idx]
		rec.checked = w.pool.masterChecked
		rpc := RPC{rec: rec}

		switch status {
		case models.RPCStatusCanceled:
			// The answer must go out of canceled so the server can settle it.
			rec.status = models.RPCStatusCanceled
			w.decide(rec, w.policy.CancelRPC(rpc))
		case models.RPCStatusPending:
			if w.reacceptor != nil {
				w.decide(rec, w.reacceptor.ReacceptRPC(rpc, params))
			} else {
				w.decide(rec, w.policy.AcceptRPC(rpc, params))
			}
		case models.RPCStatusAcknowledged:
		default:
			w.decide(rec, false)
		}
		return
	}

	if w.pool.numActive >= w.pool.capacity() || !w.pool.acceptingNew {
		return
	}

	idx, err := w.pool.allocate(status, uuid, rpcType)
	if err != nil {
		w.logger.Warn().
			Str("func", "RPCWorkflow.PollEvent").
			Str("uuid", uuid).
			Err(err).
			Msg("skipping rpc entry")
		return
	}

	rec := &w.pool.records[idx]
	rpc := RPC{rec: rec}
	if w.lifecycle != nil {
		w.lifecycle.NewRPC(rpc, params)
	}

	switch status {
	case models.RPCStatusPending:
		w.decide(rec, w.policy.AcceptRPC(rpc, params))
	case models.RPCStatusCanceled:
		w.decide(rec, w.policy.CancelRPC(rpc))
	default:
		w.decide(rec, false)
	}

	w.logger.Debug().
		Str("func", "RPCWorkflow.PollEvent").
		Str("uuid", uuid).
		Str("type", rpcType).
		Str("status", status.String()).
		Str("next_status", rec.nextStatus.String()).
		Msg("new rpc")
}

func (w *RPCWorkflow) decide(rec *rpcRecord, accept bool) {
	if accept {
		rec.nextStatus = models.RPCStatusAcknowledged
	} else {
		rec.nextStatus = models.RPCStatusRejected
	}
	w.pendingPush = true
}

func (w *RPCWorkflow) evictUnchecked() error {
	var dropped []string
	for _, idx := range w.pool.active() {
		rec := &w.pool.records[idx]
		if rec.checked == w.pool.masterChecked {
			continue
		}

		if w.extra != nil {
			if w.extra.ShouldDeleteExtraRPC(RPC{rec: rec}) {
				w.free(idx)
			} else {
				rec.checked = w.pool.masterChecked
			}
			continue
		}

		dropped = append(dropped, rec.uuid)
		w.free(idx)
	}

	if len(dropped) == 0 {
		return nil
	}
	w.logger.Warn().
		Str("func", "RPCWorkflow.PollEvent").
		Strs("uuids", dropped).
		Msg("server no longer reports tracked rpcs")
	return fmt.Errorf("%w: rpcs dropped by server: %s", ErrWorkflow, strings.Join(dropped, ", "))
}

func (w *RPCWorkflow) free(idx int) {
	if w.lifecycle != nil {
		w.lifecycle.FreeRPC(RPC{rec: &w.pool.records[idx]})
	}
	w.pool.free(idx)
}

// PeriodicUpdate pushes every status decision that has not reached the
// server yet. With singleEvent it stops after the first network exchange.
//
// A failed push keeps the record dirty so it is retried on the next call
// and is reported to the ErrorHandler hook, if any. ErrValueMismatch ends
// the pass at once and is returned without being reported.
func (w *RPCWorkflow) PeriodicUpdate(ctx context.Context, doc *document.Document, ts time.Time, singleEvent bool) error {
	var errs []error
	events := 0

	for _, idx := range w.pool.active() {
		if singleEvent && events >= 1 {
			break
		}
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}

		rec := &w.pool.records[idx]
		if rec.status == rec.nextStatus {
			continue
		}

		if rec.nextStatus == models.RPCStatusUnknown {
			err := fmt.Errorf("%w: rpc %s", ErrRPCSettings, rec.uuid)
			w.report(doc, err)
			w.free(idx)
			errs = append(errs, err)
			continue
		}

		events++
		if err := w.pushStatus(ctx, idx, doc, ts); err != nil {
			if errors.Is(err, adapter.ErrValueMismatch) {
				errs = append(errs, err)
				break
			}
			w.report(doc, err)
			errs = append(errs, err)
		}
	}

	w.pendingPush = w.hasDirty()
	return errors.Join(errs...)
}

// report hands a push failure to the error hook. Counter drift is left to
// the caller, which answers it with a resync.
func (w *RPCWorkflow) report(doc *document.Document, err error) {
	if w.errHandler != nil {
		w.errHandler.WorkflowError(doc, models.EventPushRPC, err)
	}
}

func (w *RPCWorkflow) pushStatus(ctx context.Context, idx int, doc *document.Document, ts time.Time) error {
	rec := &w.pool.records[idx]
	rpc := RPC{rec: rec}
	previous := rec.status
	rec.status = rec.nextStatus

	doc.Clear()
	body := doc.SetObject(validators.FieldRPC)
	body.Set(rpcFieldUUID, rec.uuid)
	body.Set(rpcFieldResult, nil)
	body.Set(rpcFieldStatus, rec.status.String())

	if w.pusher != nil {
		w.pusher.PushRPCSetup(rpc, doc)
	}

	if err := w.adapter.PushRPC(ctx, doc, ts); err != nil {
		rec.status = previous
		w.logger.Debug().
			Str("func", "RPCWorkflow.PeriodicUpdate").
			Str("uuid", rec.uuid).
			Str("status", rec.nextStatus.String()).
			Err(err).
			Msg("rpc status push failed")
		return fmt.Errorf("push rpc %s: %w", rec.uuid, err)
	}

	if w.pusher != nil {
		w.pusher.PushRPCResponse(rpc, doc)
	}

	var notifyErr error
	if w.params.PushAdditionalNotification {
		notifyErr = w.pushNotification(ctx, rpc, doc, ts)
	}

	w.logger.Debug().
		Str("func", "RPCWorkflow.PeriodicUpdate").
		Str("uuid", rec.uuid).
		Str("status", rec.status.String()).
		Msg("rpc status pushed")

	w.settle(idx, previous)
	return notifyErr
}

func (w *RPCWorkflow) pushNotification(ctx context.Context, rpc RPC, doc *document.Document, ts time.Time) error {
	doc.Clear()
	if w.notifier != nil {
		w.notifier.PushNotificationSetup(rpc, doc)
	} else {
		doc.Set(validators.FieldCode, 0)
		doc.Set(validators.FieldMessage, fmt.Sprintf("rpc %s %s", rpc.UUID(), rpc.Status()))
	}

	if err := w.adapter.PushNotification(ctx, doc, ts); err != nil {
		return fmt.Errorf("push notification for rpc %s: %w", rpc.UUID(), err)
	}

	if w.notifier != nil {
		w.notifier.PushNotificationResponse(rpc, doc)
	}
	return nil
}

// settle applies the transition that follows a successful push out of
// previous.
func (w *RPCWorkflow) settle(idx int, previous models.RPCStatus) {
	rec := &w.pool.records[idx]
	switch {
	case previous == models.RPCStatusCanceled && rec.status == models.RPCStatusRejected:
		rec.status = models.RPCStatusPending
		rec.nextStatus = models.RPCStatusPending
	case previous == models.RPCStatusCanceled && rec.status == models.RPCStatusAcknowledged:
		w.free(idx)
	case rec.status.IsTerminal():
		w.free(idx)
	}
}

func (w *RPCWorkflow) hasDirty() bool {
	for cur := w.pool.activeHead; cur != noIndex; cur = w.pool.records[cur].next {
		if rec := &w.pool.records[cur]; rec.status != rec.nextStatus {
			return true
		}
	}
	return false
}

// ShouldPeriodicUpdate reports whether a status decision is waiting to be
// pushed.
func (w *RPCWorkflow) ShouldPeriodicUpdate() bool {
	return w.pendingPush
}

// UpdateStatus sets the status the next push reports for uuid.
func (w *RPCWorkflow) UpdateStatus(uuid string, status models.RPCStatus) error {
	idx, ok := w.pool.findByUUID(uuid)
	if !ok {
		return fmt.Errorf("%w: %s", ErrRPCNotFound, uuid)
	}
	w.pool.records[idx].nextStatus = status
	w.pendingPush = true
	return nil
}

func (w *RPCWorkflow) Acknowledge(uuid string) error {
	return w.UpdateStatus(uuid, models.RPCStatusAcknowledged)
}

func (w *RPCWorkflow) Reject(uuid string) error {
	return w.UpdateStatus(uuid, models.RPCStatusRejected)
}

func (w *RPCWorkflow) Succeed(uuid string) error {
	return w.UpdateStatus(uuid, models.RPCStatusSuccess)
}

func (w *RPCWorkflow) Fail(uuid string) error {
	return w.UpdateStatus(uuid, models.RPCStatusFailure)
}

// SetAcceptingNewRPCs stops or resumes allocation of records for RPCs the
// device does not track yet.
func (w *RPCWorkflow) SetAcceptingNewRPCs(accept bool) {
	w.pool.acceptingNew = accept
}

func (w *RPCWorkflow) AcceptingNewRPCs() bool {
	return w.pool.acceptingNew
}

// Active returns a copy of the tracked records, most recent first.
func (w *RPCWorkflow) Active() []models.RPCSnapshot {
	idxs := w.pool.active()
	out := make([]models.RPCSnapshot, 0, len(idxs))
	for _, idx := range idxs {
		out = append(out, w.pool.snapshot(idx))
	}
	return out
}

func (w *RPCWorkflow) NumActive() int {
	return w.pool.numActive
}

func (w *RPCWorkflow) Capacity() int {
	return w.pool.capacity()
}

// Reset drops every record without calling hooks.
func (w *RPCWorkflow) Reset() {
	w.pool.reset()
	w.pendingPush = false
}
