// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// RPCStatus is the lifecycle status of a server-initiated RPC.
type RPCStatus uint8

const (
	// RPCStatusUnknown marks malformed or uninitialized records. It is never
	// a valid status to create a record with.
	RPCStatusUnknown RPCStatus = iota
	RPCStatusPending
	RPCStatusSuccess
	RPCStatusFailure
	RPCStatusRejected
	RPCStatusAcknowledged
	RPCStatusCanceled
)

var rpcStatusNames = [...]string{
	RPCStatusUnknown:      "unknown",
	RPCStatusPending:      "pending",
	RPCStatusSuccess:      "success",
	RPCStatusFailure:      "failure",
	RPCStatusRejected:     "rejected",
	RPCStatusAcknowledged: "acknowledged",
	RPCStatusCanceled:     "canceled",
}

// String returns the wire name of the status.
func (s RPCStatus) String() string {
	if int(s) < len(rpcStatusNames) {
		return rpcStatusNames[s]
	}
	return rpcStatusNames[RPCStatusUnknown]
}

// ParseRPCStatus maps a wire name to its status. Unrecognized names map to
// [RPCStatusUnknown].
func ParseRPCStatus(s string) RPCStatus {
	for i, name := range rpcStatusNames {
		if i != int(RPCStatusUnknown) && name == s {
			return RPCStatus(i)
		}
	}
	return RPCStatusUnknown
}

// IsTerminal reports whether reaching s after a successful push ends the RPC.
func (s RPCStatus) IsTerminal() bool {
	return s == RPCStatusSuccess || s == RPCStatusFailure || s == RPCStatusRejected
}

// RPCSnapshot is a read-only copy of an active RPC record.
type RPCSnapshot struct {
	UUID       string
	Type       string
	Status     RPCStatus
	NextStatus RPCStatus
}

// Dirty reports whether the record still has a status push outstanding.
func (s RPCSnapshot) Dirty() bool {
	return s.Status != s.NextStatus
}
