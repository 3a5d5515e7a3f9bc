package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-polip/internal/config"
	"github.com/MKhiriev/go-polip/internal/logger"
)

// Storages groups the device-side repositories.
type Storages struct {
	CounterRepository    CounterRepository
	RPCJournalRepository RPCJournalRepository

	db *DB
}

// NewStorages opens the SQLite file at cfg.DSN, creating it when missing,
// and applies pending migrations.
func NewStorages(ctx context.Context, cfg config.DeviceStorage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Str("func", "NewStorages").Msg("creating new storages...")

	db, err := NewConnectSQLite(ctx, cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, logger), nil
}

func newStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		CounterRepository:    NewCounterRepository(db, logger),
		RPCJournalRepository: NewRPCJournalRepository(db, logger),
		db:                   db,
	}
}

// Close releases the database handle.
func (s *Storages) Close() error {
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}
