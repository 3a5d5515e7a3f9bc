// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-polip/models"
)

const (
	tableDeviceCounters = "device_counters"
	tableRPCJournal     = "rpc_journal"
)

var (
	psql = sq.StatementBuilder.PlaceholderFormat(sq.Question)

	counterColumns = []string{"serial", "value", "updated_at"}
	journalColumns = []string{"id", "serial", "uuid", "rpc_type", "status", "next_status", "event", "created_at"}
)

func buildLoadCounterQuery(serial string) (string, []any, error) {
	return psql.
		Select(counterColumns...).
		From(tableDeviceCounters).
		Where(sq.Eq{"serial": serial}).
		ToSql()
}

// buildSaveCounterQuery is an upsert keyed by serial.
func buildSaveCounterQuery(counter models.DeviceCounter) (string, []any, error) {
	return psql.
		Insert(tableDeviceCounters).
		Columns(counterColumns...).
		Values(counter.Serial, counter.Value, counter.UpdatedAt).
		Suffix("ON CONFLICT(serial) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at").
		ToSql()
}

func buildAppendJournalQuery(entry models.RPCJournalEntry) (string, []any, error) {
	return psql.
		Insert(tableRPCJournal).
		Columns(journalColumns[1:]...).
		Values(
			entry.Serial,
			entry.UUID,
			entry.Type,
			entry.Status,
			entry.NextStatus,
			string(entry.Event),
			entry.CreatedAt,
		).
		ToSql()
}

func buildListJournalByUUIDQuery(uuid string) (string, []any, error) {
	return psql.
		Select(journalColumns...).
		From(tableRPCJournal).
		Where(sq.Eq{"uuid": uuid}).
		OrderBy("id ASC").
		ToSql()
}

func buildListRecentJournalQuery(serial string, limit uint64) (string, []any, error) {
	return psql.
		Select(journalColumns...).
		From(tableRPCJournal).
		Where(sq.Eq{"serial": serial}).
		OrderBy("id DESC").
		Limit(limit).
		ToSql()
}
