package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/domain"
	"github.com/joltlabs/jolt-api/internal/platform/logger"
	"github.com/joltlabs/jolt-api/internal/store"
)

// PostgresIntakeStore implements the store.IntakeStore interface
// using a PostgreSQL database as the storage backend.
type PostgresIntakeStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresIntakeStore creates a new PostgreSQL implementation of the
// IntakeStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresIntakeStore(db store.DBTX, logger *slog.Logger) *PostgresIntakeStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresIntakeStore{
		db:     db,
		logger: logger.With(slog.String("component", "intake_store")),
	}
}

// Ensure PostgresIntakeStore implements store.IntakeStore interface
var _ store.IntakeStore = (*PostgresIntakeStore)(nil)

// Create implements store.IntakeStore.Create
// It saves a new intake record, handling domain validation.
// Returns store.ErrInvalidEntity if the user ID doesn't exist (foreign key violation).
func (s *PostgresIntakeStore) Create(ctx context.Context, record *domain.IntakeRecord) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := record.Validate(); err != nil {
		log.Warn("intake record validation failed during create",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()))
		return err
	}

	query := `
		INSERT INTO intake_records (id, user_id, drink_name, amount_mg, consumed_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		record.ID,
		record.UserID,
		record.DrinkName,
		record.AmountMg,
		record.ConsumedAt,
		record.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during intake creation",
				slog.String("record_id", record.ID.String()),
				slog.String("user_id", record.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, record.UserID)
		}

		log.Error("failed to create intake record",
			slog.String("error", err.Error()),
			slog.String("record_id", record.ID.String()),
			slog.String("user_id", record.UserID.String()))
		return err
	}

	log.Info("intake record created successfully",
		slog.String("record_id", record.ID.String()),
		slog.String("user_id", record.UserID.String()),
		slog.Float64("amount_mg", record.AmountMg))
	return nil
}

// GetByID implements store.IntakeStore.GetByID
// Returns store.ErrIntakeNotFound if the record does not exist.
func (s *PostgresIntakeStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.IntakeRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, drink_name, amount_mg, consumed_at, created_at
		FROM intake_records
		WHERE id = $1
	`

	var record domain.IntakeRecord
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&record.ID,
		&record.UserID,
		&record.DrinkName,
		&record.AmountMg,
		&record.ConsumedAt,
		&record.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			log.Debug("intake record not found", slog.String("record_id", id.String()))
			return nil, store.ErrIntakeNotFound
		}
		log.Error("failed to get intake record by ID",
			slog.String("error", err.Error()),
			slog.String("record_id", id.String()))
		return nil, err
	}

	return &record, nil
}

// ListByUserSince implements store.IntakeStore.ListByUserSince
// Returns an empty slice if no records match the criteria.
func (s *PostgresIntakeStore) ListByUserSince(
	ctx context.Context,
	userID uuid.UUID,
	since time.Time,
) ([]*domain.IntakeRecord, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	log.Debug("listing intake records",
		slog.String("user_id", userID.String()),
		slog.Time("since", since))

	query := `
		SELECT id, user_id, drink_name, amount_mg, consumed_at, created_at
		FROM intake_records
		WHERE user_id = $1 AND consumed_at >= $2
		ORDER BY consumed_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID, since)
	if err != nil {
		log.Error("failed to query intake records",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var records []*domain.IntakeRecord
	for rows.Next() {
		var record domain.IntakeRecord

		err := rows.Scan(
			&record.ID,
			&record.UserID,
			&record.DrinkName,
			&record.AmountMg,
			&record.ConsumedAt,
			&record.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan intake row",
				slog.String("error", err.Error()))
			return nil, err
		}

		records = append(records, &record)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no records found
	if records == nil {
		records = []*domain.IntakeRecord{}
	}

	log.Debug("listed intake records",
		slog.String("user_id", userID.String()),
		slog.Int("count", len(records)))
	return records, nil
}

// Delete implements store.IntakeStore.Delete
// Returns store.ErrIntakeNotFound if the record does not exist.
func (s *PostgresIntakeStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM intake_records
		WHERE id = $1
	`

	result, err := s.db.ExecContext(ctx, query, id)
	if err != nil {
		log.Error("failed to delete intake record",
			slog.String("error", err.Error()),
			slog.String("record_id", id.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("record_id", id.String()))
		return err
	}

	if rowsAffected == 0 {
		log.Debug("intake record not found for delete",
			slog.String("record_id", id.String()))
		return store.ErrIntakeNotFound
	}

	log.Info("intake record deleted successfully",
		slog.String("record_id", id.String()))
	return nil
}
