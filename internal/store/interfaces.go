package store

import (
	"context"

	"github.com/MKhiriev/go-polip/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// CounterRepository persists the anti-replay counter of each device so a
// restart resumes from the last value the server accepted.
type CounterRepository interface {
	// LoadCounter returns ErrCounterNotFound for an unknown serial.
	LoadCounter(ctx context.Context, serial string) (models.DeviceCounter, error)
	// SaveCounter inserts or replaces the counter of counter.Serial.
	SaveCounter(ctx context.Context, counter models.DeviceCounter) error
}

// RPCJournalRepository is an append-only log of RPC lifecycle events.
type RPCJournalRepository interface {
	Append(ctx context.Context, entry models.RPCJournalEntry) (int64, error)
	ListByUUID(ctx context.Context, uuid string) ([]models.RPCJournalEntry, error)
	// ListRecent returns the newest entries of serial first.
	ListRecent(ctx context.Context, serial string, limit uint64) ([]models.RPCJournalEntry, error)
}
