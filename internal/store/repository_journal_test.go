package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/models"
)

func TestRPCJournalRepository_Append(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRPCJournalRepository(db, logger.Nop())
	entry := models.RPCJournalEntry{
		Serial:     "polip-01",
		UUID:       "u-1",
		Type:       "ping",
		Status:     "pending",
		NextStatus: "acknowledged",
		Event:      models.JournalEventNew,
		CreatedAt:  time.Now(),
	}

	mock.ExpectExec("INSERT INTO rpc_journal").
		WithArgs("polip-01", "u-1", "ping", "pending", "acknowledged", "new", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(7, 1))

	id, err := repo.Append(context.Background(), entry)
	require.NoError(t, err)
	assert.Equal(t, int64(7), id)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRPCJournalRepository_Append_Error(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRPCJournalRepository(db, logger.Nop())

	mock.ExpectExec("INSERT INTO rpc_journal").WillReturnError(errors.New("disk full"))

	_, err := repo.Append(context.Background(), models.RPCJournalEntry{UUID: "u-1"})
	assert.ErrorIs(t, err, ErrExecutingStatement)
}

func TestRPCJournalRepository_ListByUUID(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRPCJournalRepository(db, logger.Nop())
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	rows := sqlmock.NewRows(journalColumns).
		AddRow(int64(1), "polip-01", "u-1", "ping", "pending", "acknowledged", "new", at).
		AddRow(int64(2), "polip-01", "u-1", "ping", "success", "success", "freed", at.Add(time.Second))

	mock.ExpectQuery("SELECT (.+) FROM rpc_journal WHERE uuid = \\? ORDER BY id ASC").
		WithArgs("u-1").
		WillReturnRows(rows)

	got, err := repo.ListByUUID(context.Background(), "u-1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.JournalEventNew, got[0].Event)
	assert.Equal(t, "acknowledged", got[0].NextStatus)
	assert.Equal(t, models.JournalEventFreed, got[1].Event)
	assert.Equal(t, int64(2), got[1].ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRPCJournalRepository_ListRecent(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRPCJournalRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM rpc_journal WHERE serial = \\? ORDER BY id DESC LIMIT 5").
		WithArgs("polip-01").
		WillReturnRows(sqlmock.NewRows(journalColumns))

	got, err := repo.ListRecent(context.Background(), "polip-01", 5)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRPCJournalRepository_List_ScanError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRPCJournalRepository(db, logger.Nop())

	rows := sqlmock.NewRows([]string{"id"}).AddRow(int64(1))
	mock.ExpectQuery("SELECT (.+) FROM rpc_journal").WillReturnRows(rows)

	_, err := repo.ListByUUID(context.Background(), "u-1")
	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestRPCJournalRepository_List_QueryError(t *testing.T) {
	db, mock := newTestDB(t)
	repo := NewRPCJournalRepository(db, logger.Nop())

	mock.ExpectQuery("SELECT (.+) FROM rpc_journal").WillReturnError(errors.New("locked"))

	_, err := repo.ListRecent(context.Background(), "polip-01", 5)
	assert.ErrorIs(t, err, ErrExecutingQuery)
}
