// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Device is the identity of one physical unit talking to the ingest service.
//
// The host application owns the value. The synchronization core borrows it
// for the duration of each call and mutates only Value: it is incremented
// after every successful value-bearing exchange and overwritten on resync.
type Device struct {
	// Serial is stable and unique per unit.
	Serial string
	// Firmware and Hardware are reported with every request, never mutated.
	Firmware string
	Hardware string
	// Key is the shared secret used for tag computation. Never transmitted.
	Key []byte
	// Value is the anti-replay counter.
	Value uint32
	// SkipTagCheck disables tag computation and verification (bootstrap mode).
	SkipTagCheck bool
}
