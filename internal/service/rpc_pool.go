// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-polip/models"
)

const (
	// noIndex terminates both arena chains.
	noIndex = -1

	// maxRPCFieldLen bounds uuid and type; the protocol reserves 50 bytes
	// including a terminator.
	maxRPCFieldLen = 49
)

type rpcRecord struct {
	status      models.RPCStatus
	nextStatus  models.RPCStatus
	uuid        string
	rpcType     string
	userContext any
	checked     bool
	next        int
}

// rpcPool is a fixed arena of RPC records threaded onto a free chain and an
// active chain. Every record sits on exactly one of them.
type rpcPool struct {
	records    []rpcRecord
	freeHead   int
	activeHead int
	numActive  int

	acceptingNew  bool
	masterChecked bool
}

func newRPCPool(capacity int) *rpcPool {
	p := &rpcPool{records: make([]rpcRecord, capacity)}
	p.reset()
	return p
}

// reset puts every record back on the free chain.
func (p *rpcPool) reset() {
	for i := range p.records {
		p.records[i] = rpcRecord{next: i + 1}
	}
	if n := len(p.records); n > 0 {
		p.records[n-1].next = noIndex
		p.freeHead = 0
	} else {
		p.freeHead = noIndex
	}
	p.activeHead = noIndex
	p.numActive = 0
	p.acceptingNew = true
	p.masterChecked = false
}

func (p *rpcPool) capacity() int {
	return len(p.records)
}

// allocate moves a free record to the head of the active chain. The pool is
// left untouched on error.
func (p *rpcPool) allocate(status models.RPCStatus, uuid, rpcType string) (int, error) {
	if uuid == "" || len(uuid) > maxRPCFieldLen || len(rpcType) > maxRPCFieldLen {
		return noIndex, fmt.Errorf("%w: uuid %q type %q", ErrMalformedRPC, uuid, rpcType)
	}
	if p.freeHead == noIndex {
		return noIndex, ErrPoolFull
	}

	idx := p.freeHead
	rec := &p.records[idx]
	p.freeHead = rec.next

	*rec = rpcRecord{
		status:     status,
		nextStatus: status,
		uuid:       uuid,
		rpcType:    rpcType,
		checked:    p.masterChecked,
		next:       p.activeHead,
	}
	p.activeHead = idx
	p.numActive++
	return idx, nil
}

// free unlinks idx from the active chain and returns it to the free chain.
// It reports false when idx is not active.
func (p *rpcPool) free(idx int) bool {
	prev := noIndex
	for cur := p.activeHead; cur != noIndex; cur = p.records[cur].next {
		if cur != idx {
			prev = cur
			continue
		}
		next := p.records[cur].next
		if prev == noIndex {
			p.activeHead = next
		} else {
			p.records[prev].next = next
		}
		p.records[cur] = rpcRecord{next: p.freeHead}
		p.freeHead = cur
		p.numActive--
		return true
	}
	return false
}

func (p *rpcPool) findByUUID(uuid string) (int, bool) {
	for cur := p.activeHead; cur != noIndex; cur = p.records[cur].next {
		if p.records[cur].uuid == uuid {
			return cur, true
		}
	}
	return noIndex, false
}

// active returns the active chain in order. Callers may free records while
// ranging over the result.
func (p *rpcPool) active() []int {
	out := make([]int, 0, p.numActive)
	for cur := p.activeHead; cur != noIndex; cur = p.records[cur].next {
		out = append(out, cur)
	}
	return out
}

func (p *rpcPool) snapshot(idx int) models.RPCSnapshot {
	rec := &p.records[idx]
	return models.RPCSnapshot{
		UUID:       rec.uuid,
		Type:       rec.rpcType,
		Status:     rec.status,
		NextStatus: rec.nextStatus,
	}
}

// RPC is a read-only view of a tracked record handed to hooks. It stays
// valid until the record is freed.
type RPC struct {
	rec *rpcRecord
}

func (r RPC) UUID() string                 { return r.rec.uuid }
func (r RPC) Type() string                 { return r.rec.rpcType }
func (r RPC) Status() models.RPCStatus     { return r.rec.status }
func (r RPC) NextStatus() models.RPCStatus { return r.rec.nextStatus }
func (r RPC) UserContext() any             { return r.rec.userContext }

// SetUserContext attaches an opaque host value to the record.
func (r RPC) SetUserContext(v any) {
	r.rec.userContext = v
}
