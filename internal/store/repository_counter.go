package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"

	"github.com/MKhiriev/go-polip/internal/logger"
	"github.com/MKhiriev/go-polip/models"
)

const (
	maxSaveAttempts = 3
	saveRetryDelay  = 20 * time.Millisecond
)

type counterRepository struct {
	db         *DB
	classifier *SQLiteErrorClassifier
	logger     *logger.Logger
}

func NewCounterRepository(db *DB, logger *logger.Logger) CounterRepository {
	return &counterRepository{db: db, classifier: NewSQLiteErrorClassifier(), logger: logger}
}

func (r *counterRepository) LoadCounter(ctx context.Context, serial string) (models.DeviceCounter, error) {
	query, args, err := buildLoadCounterQuery(serial)
	if err != nil {
		return models.DeviceCounter{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var counter models.DeviceCounter
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&counter.Serial, &counter.Value, &counter.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.DeviceCounter{}, fmt.Errorf("%w: %s", ErrCounterNotFound, serial)
	}
	if err != nil {
		r.logger.Err(err).
			Str("func", "counterRepository.LoadCounter").
			Str("serial", serial).
			Msg("failed to load device counter")
		return models.DeviceCounter{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return counter, nil
}

func (r *counterRepository) SaveCounter(ctx context.Context, counter models.DeviceCounter) error {
	query, args, err := buildSaveCounterQuery(counter)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	attempt := 0
	backoff := retry.WithMaxRetries(maxSaveAttempts-1, retry.NewExponential(saveRetryDelay))
	err = retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempt++
		_, err := r.db.ExecContext(ctx, query, args...)
		if err != nil && r.classifier.Classify(err) == Retryable {
			r.logger.Debug().
				Str("func", "counterRepository.SaveCounter").
				Int("attempt", attempt).
				Err(err).
				Msg("database is busy, retrying")
			return retry.RetryableError(err)
		}
		return err
	})

	if err != nil {
		r.logger.Err(err).
			Str("func", "counterRepository.SaveCounter").
			Str("serial", counter.Serial).
			Uint32("value", counter.Value).
			Msg("failed to save device counter")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
