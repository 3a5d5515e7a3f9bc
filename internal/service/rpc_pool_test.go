package service

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-polip/models"
)

// chainMembership walks both chains and reports how many times each record
// was reached.
func chainMembership(p *rpcPool) (seen []int, active int) {
	seen = make([]int, p.capacity())
	for cur := p.freeHead; cur != noIndex; cur = p.records[cur].next {
		seen[cur]++
	}
	for cur := p.activeHead; cur != noIndex; cur = p.records[cur].next {
		seen[cur]++
		active++
	}
	return seen, active
}

func assertPoolInvariants(t *testing.T, p *rpcPool) {
	t.Helper()
	seen, active := chainMembership(p)
	for idx, n := range seen {
		assert.Equal(t, 1, n, "record %d reached %d times", idx, n)
	}
	assert.Equal(t, active, p.numActive)
	assert.LessOrEqual(t, p.numActive, p.capacity())
}

func TestRPCPool_NewIsAllFree(t *testing.T) {
	p := newRPCPool(4)

	assert.Equal(t, 4, p.capacity())
	assert.Equal(t, noIndex, p.activeHead)
	assert.Zero(t, p.numActive)
	assert.True(t, p.acceptingNew)
	assertPoolInvariants(t, p)
}

func TestRPCPool_AllocatePushesToActiveHead(t *testing.T) {
	p := newRPCPool(3)

	first, err := p.allocate(models.RPCStatusPending, "a", "ping")
	require.NoError(t, err)
	second, err := p.allocate(models.RPCStatusCanceled, "b", "reboot")
	require.NoError(t, err)

	assert.Equal(t, []int{second, first}, p.active())
	rec := p.records[second]
	assert.Equal(t, models.RPCStatusCanceled, rec.status)
	assert.Equal(t, models.RPCStatusCanceled, rec.nextStatus)
	assert.Equal(t, "reboot", rec.rpcType)
	assert.Equal(t, p.masterChecked, rec.checked)
	assertPoolInvariants(t, p)
}

func TestRPCPool_AllocateOnFullPoolLeavesStateUntouched(t *testing.T) {
	p := newRPCPool(2)
	_, err := p.allocate(models.RPCStatusPending, "a", "ping")
	require.NoError(t, err)
	_, err = p.allocate(models.RPCStatusPending, "b", "ping")
	require.NoError(t, err)

	before := append([]rpcRecord(nil), p.records...)
	freeHead, activeHead := p.freeHead, p.activeHead

	_, err = p.allocate(models.RPCStatusPending, "c", "ping")

	assert.ErrorIs(t, err, ErrPoolFull)
	assert.Equal(t, before, p.records)
	assert.Equal(t, freeHead, p.freeHead)
	assert.Equal(t, activeHead, p.activeHead)
	assert.Equal(t, 2, p.numActive)
}

func TestRPCPool_AllocateRejectsMalformed(t *testing.T) {
	tests := []struct {
		name    string
		uuid    string
		rpcType string
	}{
		{name: "empty uuid", uuid: "", rpcType: "ping"},
		{name: "uuid too long", uuid: strings.Repeat("u", maxRPCFieldLen+1), rpcType: "ping"},
		{name: "type too long", uuid: "a", rpcType: strings.Repeat("t", maxRPCFieldLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := newRPCPool(1)
			_, err := p.allocate(models.RPCStatusPending, tt.uuid, tt.rpcType)
			assert.ErrorIs(t, err, ErrMalformedRPC)
			assert.Zero(t, p.numActive)
			assertPoolInvariants(t, p)
		})
	}
}

func TestRPCPool_AllocateAcceptsMaxLength(t *testing.T) {
	p := newRPCPool(1)
	_, err := p.allocate(models.RPCStatusPending, strings.Repeat("u", maxRPCFieldLen), strings.Repeat("t", maxRPCFieldLen))
	assert.NoError(t, err)
}

func TestRPCPool_FreeHeadAndInterior(t *testing.T) {
	p := newRPCPool(3)
	a, _ := p.allocate(models.RPCStatusPending, "a", "ping")
	b, _ := p.allocate(models.RPCStatusPending, "b", "ping")
	c, _ := p.allocate(models.RPCStatusPending, "c", "ping")
	require.Equal(t, []int{c, b, a}, p.active())

	assert.True(t, p.free(b))
	assert.Equal(t, []int{c, a}, p.active())
	assertPoolInvariants(t, p)

	assert.True(t, p.free(c))
	assert.Equal(t, []int{a}, p.active())
	assertPoolInvariants(t, p)

	_, found := p.findByUUID("b")
	assert.False(t, found)
	idx, found := p.findByUUID("a")
	assert.True(t, found)
	assert.Equal(t, a, idx)
}

func TestRPCPool_FreeInactiveIsRejected(t *testing.T) {
	p := newRPCPool(2)
	a, _ := p.allocate(models.RPCStatusPending, "a", "ping")
	require.True(t, p.free(a))

	assert.False(t, p.free(a))
	assert.False(t, p.free(1))
	assertPoolInvariants(t, p)
}

func TestRPCPool_Reset(t *testing.T) {
	p := newRPCPool(2)
	_, _ = p.allocate(models.RPCStatusPending, "a", "ping")
	p.acceptingNew = false
	p.masterChecked = true

	p.reset()

	assert.Zero(t, p.numActive)
	assert.True(t, p.acceptingNew)
	assert.False(t, p.masterChecked)
	assertPoolInvariants(t, p)
}

func TestRPCPool_RandomOperationsKeepInvariants(t *testing.T) {
	for _, capacity := range []int{1, 2, 5, 16} {
		t.Run(fmt.Sprintf("capacity_%d", capacity), func(t *testing.T) {
			rng := rand.New(rand.NewPCG(uint64(capacity), 42))
			p := newRPCPool(capacity)
			next := 0

			for step := 0; step < 500; step++ {
				if rng.IntN(2) == 0 {
					wasFull := p.numActive == capacity
					_, err := p.allocate(models.RPCStatusPending, fmt.Sprintf("rpc-%d", next), "ping")
					next++
					if wasFull {
						assert.ErrorIs(t, err, ErrPoolFull)
					} else {
						assert.NoError(t, err)
					}
				} else if active := p.active(); len(active) > 0 {
					assert.True(t, p.free(active[rng.IntN(len(active))]))
				}
				assertPoolInvariants(t, p)
			}
		})
	}
}

func TestRPC_HandleReadsAndSetsUserContext(t *testing.T) {
	p := newRPCPool(1)
	idx, err := p.allocate(models.RPCStatusPending, "a", "ping")
	require.NoError(t, err)

	rpc := RPC{rec: &p.records[idx]}
	rpc.SetUserContext(42)

	assert.Equal(t, "a", rpc.UUID())
	assert.Equal(t, "ping", rpc.Type())
	assert.Equal(t, models.RPCStatusPending, rpc.Status())
	assert.Equal(t, models.RPCStatusPending, rpc.NextStatus())
	assert.Equal(t, 42, p.records[idx].userContext)

	p.free(idx)
	assert.Nil(t, rpc.UserContext())
}
