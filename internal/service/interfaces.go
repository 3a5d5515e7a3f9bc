package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/models"
)

// RPCPolicy decides whether the device takes on an RPC. It is the only hook
// an RPC workflow cannot run without.
type RPCPolicy interface {
	// AcceptRPC is called for a pending RPC. Returning true acknowledges it,
	// false rejects it.
	AcceptRPC(rpc RPC, params *document.Document) bool

	// CancelRPC is called when the server reports the RPC as canceled.
	// Returning true acknowledges the cancellation.
	CancelRPC(rpc RPC) bool
}

// RPCReacceptor replaces AcceptRPC for RPCs the device already tracks.
type RPCReacceptor interface {
	ReacceptRPC(rpc RPC, params *document.Document) bool
}

// RPCLifecycleObserver is told when a record is allocated and right before
// it is released.
type RPCLifecycleObserver interface {
	NewRPC(rpc RPC, params *document.Document)
	FreeRPC(rpc RPC)
}

// RPCPushObserver customizes the status push of a single RPC.
type RPCPushObserver interface {
	// PushRPCSetup may add a result to doc before it is sent.
	PushRPCSetup(rpc RPC, doc *document.Document)
	// PushRPCResponse receives the server reply.
	PushRPCResponse(rpc RPC, doc *document.Document)
}

// RPCNotifier builds the optional notification sent after a status push.
type RPCNotifier interface {
	PushNotificationSetup(rpc RPC, doc *document.Document)
	PushNotificationResponse(rpc RPC, doc *document.Document)
}

// ExtraRPCPolicy decides the fate of tracked RPCs the server no longer
// reports. Returning false keeps the record.
type ExtraRPCPolicy interface {
	ShouldDeleteExtraRPC(rpc RPC) bool
}

// ErrorHandler receives every failure the scheduler does not handle itself.
type ErrorHandler interface {
	WorkflowError(doc *document.Document, class models.EventClass, err error)
}

// StatePushHooks fills and observes state pushes.
type StatePushHooks interface {
	PushStateSetup(doc *document.Document)
	PushStateResponse(doc *document.Document)
}

// StatePollHooks observes state polls.
type StatePollHooks interface {
	PollStateResponse(doc *document.Document)
}

// SensePushHooks fills and observes sensor pushes.
type SensePushHooks interface {
	PushSenseSetup(doc *document.Document)
	PushSenseResponse(doc *document.Document)
}

// ValueHooks observes counter resyncs.
type ValueHooks interface {
	ValueResponse(doc *document.Document)
}

// TickObserver runs after every scheduler tick, still under the job lock.
type TickObserver interface {
	AfterTick(ctx context.Context, snapshot models.WorkflowSnapshot)
}

// WorkflowEngine is what a WorkflowJob drives.
type WorkflowEngine interface {
	PeriodicUpdate(ctx context.Context, doc *document.Document, now time.Time) error
	Snapshot(now time.Time) models.WorkflowSnapshot

	MarkStateChanged()
	MarkSenseChanged()
	RequestResync()
}

// IngestService is the server side of the device protocol, used by the
// ingest simulator.
type IngestService interface {
	RegisterDevice(ctx context.Context, dev models.Device) error
	// DeviceKey returns the shared secret of a registered device.
	DeviceKey(ctx context.Context, serial string) ([]byte, error)
	// Value returns the counter the service expects next from serial.
	Value(ctx context.Context, serial string) (uint32, error)
	// Advance moves the expected counter forward by one if it still equals
	// expected, and fails with ErrValueConflict otherwise.
	Advance(ctx context.Context, serial string, expected uint32) (uint32, error)

	StoreState(ctx context.Context, serial string, state *document.Document) error
	State(ctx context.Context, serial string) (*document.Document, error)
	StoreSense(ctx context.Context, serial string, sense *document.Document) error
	Sense(ctx context.Context, serial string) (*document.Document, error)
	StoreError(ctx context.Context, serial string, report *document.Document) error
	// Errors returns the most recent error reports, oldest first.
	Errors(ctx context.Context, serial string) ([]*document.Document, error)

	EnqueueRPC(ctx context.Context, serial, rpcType string, params *document.Document) (string, error)
	CancelRPC(ctx context.Context, serial, uuid string) error
	QueuedRPCs(ctx context.Context, serial string) ([]QueuedRPC, error)
	UpdateRPC(ctx context.Context, serial, uuid string, status models.RPCStatus) error
}

// AppInfoService reports build information of the running binary.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}
