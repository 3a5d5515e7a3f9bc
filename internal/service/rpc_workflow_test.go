package service

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-polip/internal/adapter"
	"github.com/MKhiriev/go-polip/internal/document"
	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/models"
)

func activeUUIDs(w *RPCWorkflow) []string {
	var out []string
	for _, s := range w.Active() {
		out = append(out, s.UUID)
	}
	return out
}

// ── construction ─────────────────────────────────────────────────────────────

func TestNewRPCWorkflow_RequiresPolicy(t *testing.T) {
	w, err := NewRPCWorkflow(newMockAdapter(t), nil, DefaultRPCParams(), logger.Nop())
	assert.Nil(t, w)
	assert.ErrorIs(t, err, ErrMissingHook)
}

func TestNewRPCWorkflow_ClampsCapacity(t *testing.T) {
	w := newTestRPCWorkflow(t, newMockAdapter(t), &stubPolicy{}, 0)
	assert.Equal(t, 1, w.Capacity())
	assert.True(t, w.AcceptingNewRPCs())
	assert.False(t, w.ShouldPeriodicUpdate())
}

// ── reconciliation ───────────────────────────────────────────────────────────

func TestRPCWorkflow_CapacityOneScenario(t *testing.T) {
	m := newMockAdapter(t)
	pushed := recordPushes(t, m)
	w := newTestRPCWorkflow(t, m, &stubPolicy{accept: true}, 1)
	ctx := context.Background()

	require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"})))
	require.Equal(t, []models.RPCSnapshot{{
		UUID: "A", Type: "ping", Status: models.RPCStatusPending, NextStatus: models.RPCStatusAcknowledged,
	}}, w.Active())
	assert.True(t, w.ShouldPeriodicUpdate())

	require.NoError(t, w.PeriodicUpdate(ctx, document.New(), testNow, false))
	assert.Equal(t, []string{"A:acknowledged"}, *pushed)
	require.Len(t, w.Active(), 1)
	assert.Equal(t, models.RPCStatusAcknowledged, w.Active()[0].Status)
	assert.False(t, w.ShouldPeriodicUpdate())

	err := w.PollEvent(ctx, pollDoc())
	assert.ErrorIs(t, err, ErrWorkflow)
	assert.Contains(t, err.Error(), "A")
	assert.Zero(t, w.NumActive())
}

func TestRPCWorkflow_ReconciliationIsIdempotent(t *testing.T) {
	policy := &observingPolicy{stubPolicy: stubPolicy{accept: true}}
	w := newTestRPCWorkflow(t, newMockAdapter(t), policy, 3)
	ctx := context.Background()
	list := []rpcEntry{{"A", "ping", "pending"}, {"B", "reboot", "pending"}}

	require.NoError(t, w.PollEvent(ctx, pollDoc(list...)))
	first := w.Active()

	require.NoError(t, w.PollEvent(ctx, pollDoc(list...)))

	assert.Equal(t, first, w.Active())
	assert.Equal(t, []string{"A", "B"}, policy.created)
	assert.Empty(t, policy.freed)
	assert.Equal(t, 2, w.NumActive())
}

func TestRPCWorkflow_PollEventIgnoresDocumentWithoutList(t *testing.T) {
	w := newTestRPCWorkflow(t, newMockAdapter(t), &stubPolicy{accept: true}, 1)
	require.NoError(t, w.PollEvent(context.Background(), pollDoc(rpcEntry{"A", "ping", "pending"})))

	doc := document.New()
	doc.Set("state", "on")

	assert.NoError(t, w.PollEvent(context.Background(), doc))
	assert.Equal(t, []string{"A"}, activeUUIDs(w))
}

func TestRPCWorkflow_SkipsEntriesBeyondCapacity(t *testing.T) {
	policy := &stubPolicy{accept: true}
	w := newTestRPCWorkflow(t, newMockAdapter(t), policy, 1)
	list := pollDoc(rpcEntry{"A", "ping", "pending"}, rpcEntry{"B", "ping", "pending"})

	require.NoError(t, w.PollEvent(context.Background(), list))
	require.NoError(t, w.PollEvent(context.Background(), list))

	assert.Equal(t, []string{"A"}, activeUUIDs(w))
	assert.Equal(t, []string{"A", "A"}, policy.accepted)
}

func TestRPCWorkflow_NotAcceptingNew(t *testing.T) {
	w := newTestRPCWorkflow(t, newMockAdapter(t), &stubPolicy{accept: true}, 2)
	w.SetAcceptingNewRPCs(false)

	require.NoError(t, w.PollEvent(context.Background(), pollDoc(rpcEntry{"A", "ping", "pending"})))

	assert.Zero(t, w.NumActive())
	assert.False(t, w.AcceptingNewRPCs())
}

func TestRPCWorkflow_SkipsMalformedEntries(t *testing.T) {
	w := newTestRPCWorkflow(t, newMockAdapter(t), &stubPolicy{accept: true}, 4)
	doc := pollDoc(
		rpcEntry{strings.Repeat("x", 50), "ping", "pending"},
		rpcEntry{"", "ping", "pending"},
		rpcEntry{"B", strings.Repeat("t", 50), "pending"},
		rpcEntry{"C", "ping", "pending"},
	)
	list, _ := doc.GetArray("rpc")
	doc.Set("rpc", append(list, "not an object"))

	require.NoError(t, w.PollEvent(context.Background(), doc))

	assert.Equal(t, []string{"C"}, activeUUIDs(w))
}

func TestRPCWorkflow_NewEntryDecisions(t *testing.T) {
	tests := []struct {
		name   string
		status string
		accept bool
		cancel bool
		want   models.RPCStatus
	}{
		{name: "pending accepted", status: "pending", accept: true, want: models.RPCStatusAcknowledged},
		{name: "pending refused", status: "pending", want: models.RPCStatusRejected},
		{name: "canceled honored", status: "canceled", cancel: true, want: models.RPCStatusAcknowledged},
		{name: "canceled refused", status: "canceled", want: models.RPCStatusRejected},
		{name: "unexpected status", status: "success", accept: true, cancel: true, want: models.RPCStatusRejected},
		{name: "garbage status", status: "exploded", accept: true, cancel: true, want: models.RPCStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := newTestRPCWorkflow(t, newMockAdapter(t), &stubPolicy{accept: tt.accept, cancel: tt.cancel}, 1)

			require.NoError(t, w.PollEvent(context.Background(), pollDoc(rpcEntry{"A", "ping", tt.status})))

			require.Len(t, w.Active(), 1)
			assert.Equal(t, tt.want, w.Active()[0].NextStatus)
			assert.True(t, w.ShouldPeriodicUpdate())
		})
	}
}

func TestRPCWorkflow_ExistingEntryDecisions(t *testing.T) {
	tests := []struct {
		name   string
		status string
		want   models.RPCStatus
	}{
		{name: "acknowledged is left alone", status: "acknowledged", want: models.RPCStatusAcknowledged},
		{name: "canceled asks cancel hook", status: "canceled", want: models.RPCStatusRejected},
		{name: "unexpected status is rejected", status: "failure", want: models.RPCStatusRejected},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := newMockAdapter(t)
			recordPushes(t, m)
			policy := &stubPolicy{accept: true}
			w := newTestRPCWorkflow(t, m, policy, 1)
			ctx := context.Background()

			require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"})))
			require.NoError(t, w.PeriodicUpdate(ctx, document.New(), testNow, false))

			require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", tt.status})))

			require.Len(t, w.Active(), 1)
			assert.Equal(t, tt.want, w.Active()[0].NextStatus)
		})
	}
}

type reacceptingPolicy struct {
	stubPolicy
	reaccepted []string
}

func (p *reacceptingPolicy) ReacceptRPC(rpc RPC, _ *document.Document) bool {
	p.reaccepted = append(p.reaccepted, rpc.UUID())
	return false
}

func TestRPCWorkflow_ReacceptHookReplacesAccept(t *testing.T) {
	policy := &reacceptingPolicy{stubPolicy: stubPolicy{accept: true}}
	w := newTestRPCWorkflow(t, newMockAdapter(t), policy, 1)
	list := pollDoc(rpcEntry{"A", "ping", "pending"})

	require.NoError(t, w.PollEvent(context.Background(), list))
	require.NoError(t, w.PollEvent(context.Background(), list))

	assert.Equal(t, []string{"A"}, policy.accepted)
	assert.Equal(t, []string{"A"}, policy.reaccepted)
	assert.Equal(t, models.RPCStatusRejected, w.Active()[0].NextStatus)
}

func TestRPCWorkflow_PassesParameters(t *testing.T) {
	var got *document.Document
	policy := &paramsPolicy{seen: &got}
	w := newTestRPCWorkflow(t, newMockAdapter(t), policy, 1)

	doc := pollDoc(rpcEntry{"A", "set_state", "pending"})
	list, _ := doc.GetArray("rpc")
	entry := list[0].(*document.Document)
	entry.SetObject("parameters").Set("state", "on")

	require.NoError(t, w.PollEvent(context.Background(), doc))

	require.NotNil(t, got)
	state, ok := got.GetString("state")
	assert.True(t, ok)
	assert.Equal(t, "on", state)
}

type paramsPolicy struct {
	stubPolicy
	seen **document.Document
}

func (p *paramsPolicy) AcceptRPC(_ RPC, params *document.Document) bool {
	*p.seen = params
	return true
}

// ── eviction ─────────────────────────────────────────────────────────────────

func TestRPCWorkflow_EvictionCallsFreeHook(t *testing.T) {
	policy := &observingPolicy{stubPolicy: stubPolicy{accept: true}}
	w := newTestRPCWorkflow(t, newMockAdapter(t), policy, 2)
	ctx := context.Background()

	require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"}, rpcEntry{"B", "ping", "pending"})))

	err := w.PollEvent(ctx, pollDoc(rpcEntry{"B", "ping", "pending"}))

	assert.ErrorIs(t, err, ErrWorkflow)
	assert.Equal(t, []string{"B"}, activeUUIDs(w))
	assert.Equal(t, []string{"A"}, policy.freed)
}

func TestRPCWorkflow_ExtraPolicyKeeps(t *testing.T) {
	policy := &keepingPolicy{stubPolicy: stubPolicy{accept: true}}
	w := newTestRPCWorkflow(t, newMockAdapter(t), policy, 1)
	ctx := context.Background()

	require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"})))
	require.NoError(t, w.PollEvent(ctx, pollDoc()))
	require.NoError(t, w.PollEvent(ctx, pollDoc()))

	assert.Equal(t, []string{"A"}, activeUUIDs(w))
	assert.Equal(t, []string{"A", "A"}, policy.asked)
}

func TestRPCWorkflow_ExtraPolicyDeletesSilently(t *testing.T) {
	policy := &keepingPolicy{stubPolicy: stubPolicy{accept: true}, deleteExtra: true}
	w := newTestRPCWorkflow(t, newMockAdapter(t), policy, 1)
	ctx := context.Background()

	require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"})))

	assert.NoError(t, w.PollEvent(ctx, pollDoc()))
	assert.Zero(t, w.NumActive())
}

// ── push pass ────────────────────────────────────────────────────────────────

func TestRPCWorkflow_TerminalStatusesAreFreedInSameCall(t *testing.T) {
	for _, terminal := range []models.RPCStatus{models.RPCStatusSuccess, models.RPCStatusFailure, models.RPCStatusRejected} {
		t.Run(terminal.String(), func(t *testing.T) {
			m := newMockAdapter(t)
			pushed := recordPushes(t, m)
			policy := &observingPolicy{stubPolicy: stubPolicy{accept: true}}
			w := newTestRPCWorkflow(t, m, policy, 1)
			ctx := context.Background()

			require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"})))
			require.NoError(t, w.UpdateStatus("A", terminal))

			require.NoError(t, w.PeriodicUpdate(ctx, document.New(), testNow, false))

			assert.Equal(t, []string{"A:" + terminal.String()}, *pushed)
			assert.Zero(t, w.NumActive())
			assert.Equal(t, []string{"A"}, policy.freed)
			assert.False(t, w.ShouldPeriodicUpdate())
		})
	}
}

func TestRPCWorkflow_CanceledTransitions(t *testing.T) {
	t.Run("acknowledged cancel frees", func(t *testing.T) {
		m := newMockAdapter(t)
		pushed := recordPushes(t, m)
		w := newTestRPCWorkflow(t, m, &stubPolicy{cancel: true}, 1)

		require.NoError(t, w.PollEvent(context.Background(), pollDoc(rpcEntry{"A", "ping", "canceled"})))
		require.NoError(t, w.PeriodicUpdate(context.Background(), document.New(), testNow, false))

		assert.Equal(t, []string{"A:acknowledged"}, *pushed)
		assert.Zero(t, w.NumActive())
	})

	t.Run("rejected cancel returns to pending", func(t *testing.T) {
		m := newMockAdapter(t)
		pushed := recordPushes(t, m)
		w := newTestRPCWorkflow(t, m, &stubPolicy{cancel: false}, 1)

		require.NoError(t, w.PollEvent(context.Background(), pollDoc(rpcEntry{"A", "ping", "canceled"})))
		require.NoError(t, w.PeriodicUpdate(context.Background(), document.New(), testNow, false))

		assert.Equal(t, []string{"A:rejected"}, *pushed)
		require.Len(t, w.Active(), 1)
		assert.Equal(t, models.RPCStatusPending, w.Active()[0].Status)
		assert.Equal(t, models.RPCStatusPending, w.Active()[0].NextStatus)
		assert.False(t, w.ShouldPeriodicUpdate())
	})
}

func TestRPCWorkflow_CancelAfterAcknowledge(t *testing.T) {
	t.Run("honored cancel frees the slot", func(t *testing.T) {
		m := newMockAdapter(t)
		pushed := recordPushes(t, m)
		w := newTestRPCWorkflow(t, m, &stubPolicy{accept: true, cancel: true}, 1)
		ctx := context.Background()

		require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"})))
		require.NoError(t, w.PeriodicUpdate(ctx, document.New(), testNow, false))
		require.Equal(t, models.RPCStatusAcknowledged, w.Active()[0].Status)

		require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "canceled"})))
		require.Equal(t, []models.RPCSnapshot{{
			UUID: "A", Type: "ping", Status: models.RPCStatusCanceled, NextStatus: models.RPCStatusAcknowledged,
		}}, w.Active())
		assert.True(t, w.ShouldPeriodicUpdate())

		require.NoError(t, w.PeriodicUpdate(ctx, document.New(), testNow, false))

		assert.Equal(t, []string{"A:acknowledged", "A:acknowledged"}, *pushed)
		assert.Zero(t, w.NumActive())
		assert.False(t, w.ShouldPeriodicUpdate())

		require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"B", "ping", "pending"})))
		assert.Equal(t, []string{"B"}, activeUUIDs(w))
	})

	t.Run("refused cancel returns to pending", func(t *testing.T) {
		m := newMockAdapter(t)
		pushed := recordPushes(t, m)
		w := newTestRPCWorkflow(t, m, &stubPolicy{accept: true, cancel: false}, 1)
		ctx := context.Background()

		require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"})))
		require.NoError(t, w.PeriodicUpdate(ctx, document.New(), testNow, false))
		require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "canceled"})))
		require.NoError(t, w.PeriodicUpdate(ctx, document.New(), testNow, false))

		assert.Equal(t, []string{"A:acknowledged", "A:rejected"}, *pushed)
		require.Len(t, w.Active(), 1)
		assert.Equal(t, models.RPCStatusPending, w.Active()[0].Status)
		assert.Equal(t, models.RPCStatusPending, w.Active()[0].NextStatus)
	})
}

func TestRPCWorkflow_EveryRecordTerminates(t *testing.T) {
	m := newMockAdapter(t)
	recordPushes(t, m)
	w := newTestRPCWorkflow(t, m, &stubPolicy{accept: true}, 3)
	ctx := context.Background()

	require.NoError(t, w.PollEvent(ctx, pollDoc(
		rpcEntry{"A", "ping", "pending"},
		rpcEntry{"B", "ping", "pending"},
		rpcEntry{"C", "ping", "pending"},
	)))
	require.NoError(t, w.PeriodicUpdate(ctx, document.New(), testNow, false))
	require.NoError(t, w.Succeed("A"))
	require.NoError(t, w.Fail("B"))
	require.NoError(t, w.Reject("C"))

	for i := 0; i < 3 && w.ShouldPeriodicUpdate(); i++ {
		require.NoError(t, w.PeriodicUpdate(ctx, document.New(), testNow, true))
	}

	assert.Zero(t, w.NumActive())
}

func TestRPCWorkflow_PushFailureRestoresStatus(t *testing.T) {
	m := newMockAdapter(t)
	m.EXPECT().PushRPC(gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.ErrServerError)
	policy := &observingPolicy{stubPolicy: stubPolicy{accept: true}}
	w := newTestRPCWorkflow(t, m, policy, 1)
	ctx := context.Background()

	require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"})))

	err := w.PeriodicUpdate(ctx, document.New(), testNow, false)

	assert.ErrorIs(t, err, adapter.ErrServerError)
	require.Len(t, w.Active(), 1)
	assert.Equal(t, models.RPCStatusPending, w.Active()[0].Status)
	assert.Equal(t, models.RPCStatusAcknowledged, w.Active()[0].NextStatus)
	assert.True(t, w.ShouldPeriodicUpdate())
	require.Len(t, policy.errs, 1)
	assert.ErrorIs(t, policy.errs[0], adapter.ErrServerError)
}

func TestRPCWorkflow_ValueMismatchEndsPass(t *testing.T) {
	m := newMockAdapter(t)
	m.EXPECT().PushRPC(gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.ErrValueMismatch).Times(1)
	policy := &observingPolicy{stubPolicy: stubPolicy{accept: true}}
	w := newTestRPCWorkflow(t, m, policy, 2)
	ctx := context.Background()

	require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"}, rpcEntry{"B", "ping", "pending"})))

	err := w.PeriodicUpdate(ctx, document.New(), testNow, false)

	assert.ErrorIs(t, err, adapter.ErrValueMismatch)
	assert.Empty(t, policy.errs)
	assert.True(t, w.ShouldPeriodicUpdate())
}

func TestRPCWorkflow_SingleEventPushesOneRecord(t *testing.T) {
	m := newMockAdapter(t)
	pushed := recordPushes(t, m)
	w := newTestRPCWorkflow(t, m, &stubPolicy{accept: true}, 2)
	ctx := context.Background()

	require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"}, rpcEntry{"B", "ping", "pending"})))

	require.NoError(t, w.PeriodicUpdate(ctx, document.New(), testNow, true))
	assert.Equal(t, []string{"B:acknowledged"}, *pushed)
	assert.True(t, w.ShouldPeriodicUpdate())

	require.NoError(t, w.PeriodicUpdate(ctx, document.New(), testNow, true))
	assert.Equal(t, []string{"B:acknowledged", "A:acknowledged"}, *pushed)
	assert.False(t, w.ShouldPeriodicUpdate())
}

func TestRPCWorkflow_UnknownNextStatus(t *testing.T) {
	m := newMockAdapter(t)
	m.EXPECT().PushRPC(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	policy := &observingPolicy{stubPolicy: stubPolicy{accept: true}}
	w := newTestRPCWorkflow(t, m, policy, 1)
	ctx := context.Background()

	require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"})))
	require.NoError(t, w.UpdateStatus("A", models.RPCStatusUnknown))

	err := w.PeriodicUpdate(ctx, document.New(), testNow, false)

	assert.ErrorIs(t, err, ErrRPCSettings)
	assert.Equal(t, CodeRPCSettings, ErrorCode(err))
	assert.Zero(t, w.NumActive())
	assert.Equal(t, []string{"A"}, policy.freed)
	require.Len(t, policy.errs, 1)
	assert.ErrorIs(t, policy.errs[0], ErrRPCSettings)
}

func TestRPCWorkflow_StopsOnCanceledContext(t *testing.T) {
	m := newMockAdapter(t)
	m.EXPECT().PushRPC(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)
	w := newTestRPCWorkflow(t, m, &stubPolicy{accept: true}, 1)

	require.NoError(t, w.PollEvent(context.Background(), pollDoc(rpcEntry{"A", "ping", "pending"})))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := w.PeriodicUpdate(ctx, document.New(), testNow, false)
	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, w.ShouldPeriodicUpdate())
}

// ── notifications ────────────────────────────────────────────────────────────

func TestRPCWorkflow_DefaultNotification(t *testing.T) {
	m := newMockAdapter(t)
	recordPushes(t, m)
	var message string
	var code int64
	m.EXPECT().PushNotification(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, doc *document.Document, _ time.Time) error {
			message, _ = doc.GetString("message")
			code, _ = doc.GetInt64("code")
			return nil
		})

	w, err := NewRPCWorkflow(m, &stubPolicy{accept: true}, RPCParams{MaxActiveRPCs: 1, PushAdditionalNotification: true}, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"})))
	require.NoError(t, w.PeriodicUpdate(ctx, document.New(), testNow, false))

	assert.Equal(t, "rpc A acknowledged", message)
	assert.Zero(t, code)
}

func TestRPCWorkflow_NotificationFailureStillSettles(t *testing.T) {
	m := newMockAdapter(t)
	recordPushes(t, m)
	m.EXPECT().PushNotification(gomock.Any(), gomock.Any(), gomock.Any()).Return(adapter.ErrServerError)

	w, err := NewRPCWorkflow(m, &stubPolicy{accept: true}, RPCParams{MaxActiveRPCs: 1, PushAdditionalNotification: true}, logger.Nop())
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, w.PollEvent(ctx, pollDoc(rpcEntry{"A", "ping", "pending"})))
	require.NoError(t, w.Succeed("A"))

	err = w.PeriodicUpdate(ctx, document.New(), testNow, false)

	assert.ErrorIs(t, err, adapter.ErrServerError)
	assert.Zero(t, w.NumActive())
}

// ── host operations ──────────────────────────────────────────────────────────

func TestRPCWorkflow_HostOperationsUnknownUUID(t *testing.T) {
	w := newTestRPCWorkflow(t, newMockAdapter(t), &stubPolicy{}, 1)

	for _, op := range []func(string) error{w.Acknowledge, w.Reject, w.Succeed, w.Fail} {
		assert.ErrorIs(t, op("missing"), ErrRPCNotFound)
	}
	assert.False(t, w.ShouldPeriodicUpdate())
}

func TestRPCWorkflow_Reset(t *testing.T) {
	w := newTestRPCWorkflow(t, newMockAdapter(t), &stubPolicy{accept: true}, 1)
	require.NoError(t, w.PollEvent(context.Background(), pollDoc(rpcEntry{"A", "ping", "pending"})))

	w.Reset()

	assert.Zero(t, w.NumActive())
	assert.False(t, w.ShouldPeriodicUpdate())
}
