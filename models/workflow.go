// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EventClass identifies which scheduler event class produced a result.
type EventClass uint8

const (
	EventPushState EventClass = iota
	EventPollState
	EventGetValue
	EventPushSense
	EventPushRPC
)

func (e EventClass) String() string {
	switch e {
	case EventPushState:
		return "push_state"
	case EventPollState:
		return "poll_state"
	case EventGetValue:
		return "get_value"
	case EventPushSense:
		return "push_sense"
	case EventPushRPC:
		return "push_rpc"
	default:
		return "unknown"
	}
}

// PollOptions selects what a poll request asks the server for.
type PollOptions struct {
	State        bool
	Manufacturer bool
	RPC          bool
}

// MetaOptions selects which metadata sections a meta request returns.
type MetaOptions struct {
	State        bool
	Sensors      bool
	Manufacturer bool
	General      bool
}

// WorkflowFlags is a copy of the scheduler dirty flags.
type WorkflowFlags struct {
	StateChanged bool
	SenseChanged bool
	GetValue     bool
}

// WorkflowSnapshot is published after every scheduler tick.
type WorkflowSnapshot struct {
	At        time.Time
	Serial    string
	Value     uint32
	Flags     WorkflowFlags
	LastError string
	ErrorCode string
	RPCs      []RPCSnapshot
	Capacity  int
}
