package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/models"
)

type rpcJournalRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewRPCJournalRepository(db *DB, logger *logger.Logger) RPCJournalRepository {
	return &rpcJournalRepository{db: db, logger: logger}
}

func (r *rpcJournalRepository) Append(ctx context.Context, entry models.RPCJournalEntry) (int64, error) {
	query, args, err := buildAppendJournalQuery(entry)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).
			Str("func", "rpcJournalRepository.Append").
			Str("uuid", entry.UUID).
			Str("event", string(entry.Event)).
			Msg("failed to append journal entry")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return id, nil
}

func (r *rpcJournalRepository) ListByUUID(ctx context.Context, uuid string) ([]models.RPCJournalEntry, error) {
	query, args, err := buildListJournalByUUIDQuery(uuid)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "rpcJournalRepository.ListByUUID", query, args)
}

func (r *rpcJournalRepository) ListRecent(ctx context.Context, serial string, limit uint64) ([]models.RPCJournalEntry, error) {
	query, args, err := buildListRecentJournalQuery(serial, limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}
	return r.list(ctx, "rpcJournalRepository.ListRecent", query, args)
}

func (r *rpcJournalRepository) list(ctx context.Context, fn, query string, args []any) ([]models.RPCJournalEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		r.logger.Err(err).Str("func", fn).Msg("failed to query journal")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.RPCJournalEntry
	for rows.Next() {
		entry, err := scanJournalEntry(rows)
		if err != nil {
			r.logger.Err(err).Str("func", fn).Msg("failed to scan journal row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func scanJournalEntry(rows *sql.Rows) (models.RPCJournalEntry, error) {
	var (
		entry models.RPCJournalEntry
		event string
	)
	err := rows.Scan(
		&entry.ID,
		&entry.Serial,
		&entry.UUID,
		&entry.Type,
		&entry.Status,
		&entry.NextStatus,
		&event,
		&entry.CreatedAt,
	)
	entry.Event = models.JournalEvent(event)
	return entry, err
}
