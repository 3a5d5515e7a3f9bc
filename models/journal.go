// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// JournalEvent names the RPC lifecycle moment a journal row records.
type JournalEvent string

const (
	JournalEventNew      JournalEvent = "new"
	JournalEventPushed   JournalEvent = "pushed"
	JournalEventFreed    JournalEvent = "freed"
	JournalEventResolved JournalEvent = "resolved"
)

// RPCJournalEntry is one persisted row of the local RPC journal.
type RPCJournalEntry struct {
	ID         int64
	Serial     string
	UUID       string
	Type       string
	Status     string
	NextStatus string
	Event      JournalEvent
	CreatedAt  time.Time
}

// DeviceCounter is the persisted anti-replay counter of a device.
type DeviceCounter struct {
	Serial    string
	Value     uint32
	UpdatedAt time.Time
}
