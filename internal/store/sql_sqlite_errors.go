package store

import (
	"errors"

	"github.com/mattn/go-sqlite3"
)

// ErrorClassification tells whether a failed statement may succeed on
// another attempt.
type ErrorClassification int

const (
	// NonRetryable is the default for unrecognised errors and constraint
	// violations.
	NonRetryable ErrorClassification = iota

	// Retryable marks lock contention that clears once the other writer
	// commits.
	Retryable
)

// SQLiteErrorClassifier maps go-sqlite3 result codes to an
// [ErrorClassification].
type SQLiteErrorClassifier struct{}

func NewSQLiteErrorClassifier() *SQLiteErrorClassifier {
	return &SQLiteErrorClassifier{}
}

// Classify returns [NonRetryable] for nil and for errors that are not
// sqlite3 driver errors.
func (c *SQLiteErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return ClassifySQLiteError(sqliteErr)
	}

	return NonRetryable
}

// ClassifySQLiteError maps a driver error by its primary result code.
//
// SQLITE_BUSY and SQLITE_LOCKED are retryable. Constraint, corruption,
// read-only and full-disk errors are not.
func ClassifySQLiteError(err sqlite3.Error) ErrorClassification {
	switch err.Code {
	case sqlite3.ErrBusy, sqlite3.ErrLocked:
		return Retryable

	case sqlite3.ErrConstraint,
		sqlite3.ErrCorrupt,
		sqlite3.ErrReadonly,
		sqlite3.ErrFull,
		sqlite3.ErrCantOpen:
		return NonRetryable
	}

	return NonRetryable
}
