package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/internal/mock"
	"github.com/MKhiriev/go-polip/models"
)

var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestDevice() *models.Device {
	return &models.Device{
		Serial:   "polip-01",
		Firmware: "1.0.0",
		Hardware: "rev-b",
		Key:      []byte("0123456789abcdef"),
		Value:    10,
	}
}

func newMockAdapter(t *testing.T) *mock.MockDeviceAdapter {
	t.Helper()
	ctrl := gomock.NewController(t)
	m := mock.NewMockDeviceAdapter(ctrl)
	m.EXPECT().Device().Return(newTestDevice()).AnyTimes()
	return m
}

// ── policies ─────────────────────────────────────────────────────────────────

// stubPolicy answers every decision with a fixed value and records calls.
type stubPolicy struct {
	accept bool
	cancel bool

	accepted []string
	canceled []string
}

func (p *stubPolicy) AcceptRPC(rpc RPC, _ *document.Document) bool {
	p.accepted = append(p.accepted, rpc.UUID())
	return p.accept
}

func (p *stubPolicy) CancelRPC(rpc RPC) bool {
	p.canceled = append(p.canceled, rpc.UUID())
	return p.cancel
}

// observingPolicy also records lifecycle and error hook calls.
type observingPolicy struct {
	stubPolicy

	created []string
	freed   []string
	errs    []error
}

func (p *observingPolicy) NewRPC(rpc RPC, _ *document.Document) {
	p.created = append(p.created, rpc.UUID())
}

func (p *observingPolicy) FreeRPC(rpc RPC) {
	p.freed = append(p.freed, rpc.UUID())
}

func (p *observingPolicy) WorkflowError(_ *document.Document, _ models.EventClass, err error) {
	p.errs = append(p.errs, err)
}

// keepingPolicy keeps or drops RPCs the server stopped reporting.
type keepingPolicy struct {
	stubPolicy
	deleteExtra bool
	asked       []string
}

func (p *keepingPolicy) ShouldDeleteExtraRPC(rpc RPC) bool {
	p.asked = append(p.asked, rpc.UUID())
	return p.deleteExtra
}

// ── documents ────────────────────────────────────────────────────────────────

type rpcEntry struct {
	uuid, rpcType, status string
}

func pollDoc(entries ...rpcEntry) *document.Document {
	doc := document.New()
	list := make([]any, 0, len(entries))
	for _, e := range entries {
		d := document.New()
		d.Set("uuid", e.uuid)
		d.Set("type", e.rpcType)
		d.Set("status", e.status)
		list = append(list, d)
	}
	doc.Set("rpc", list)
	return doc
}

func pushedStatus(t *testing.T, doc *document.Document) string {
	t.Helper()
	body, ok := doc.GetObject("rpc")
	require.True(t, ok, "push document has no rpc object")
	status, ok := body.GetString("status")
	require.True(t, ok)
	return status
}

// recordPushes makes every PushRPC succeed and collects "uuid:status" pairs.
func recordPushes(t *testing.T, m *mock.MockDeviceAdapter) *[]string {
	t.Helper()
	var pushed []string
	m.EXPECT().PushRPC(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc *document.Document, _ time.Time) error {
			body, _ := doc.GetObject("rpc")
			uuid, _ := body.GetString("uuid")
			pushed = append(pushed, uuid+":"+pushedStatus(t, doc))
			return nil
		}).AnyTimes()
	return &pushed
}

func newTestRPCWorkflow(t *testing.T, m *mock.MockDeviceAdapter, policy RPCPolicy, capacity int) *RPCWorkflow {
	t.Helper()
	w, err := NewRPCWorkflow(m, policy, RPCParams{MaxActiveRPCs: capacity}, logger.Nop())
	require.NoError(t, err)
	return w
}
