package postgres

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/joltlabs/jolt-api/internal/platform/logger"
	"github.com/joltlabs/jolt-api/internal/store"
)

// PostgresAlertStore implements the store.AlertStore interface
// using a PostgreSQL database as the storage backend.
type PostgresAlertStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewPostgresAlertStore creates a new PostgreSQL implementation of the
// AlertStore interface. It accepts a database connection or transaction that
// should be initialized and managed by the caller.
// If logger is nil, a default logger will be used.
func NewPostgresAlertStore(db store.DBTX, logger *slog.Logger) *PostgresAlertStore {
	if db == nil {
		panic("db cannot be nil")
	}

	if logger == nil {
		logger = slog.Default()
	}

	return &PostgresAlertStore{
		db:     db,
		logger: logger.With(slog.String("component", "alert_store")),
	}
}

// Ensure PostgresAlertStore implements store.AlertStore interface
var _ store.AlertStore = (*PostgresAlertStore)(nil)

// Create implements store.AlertStore.Create
// Returns store.ErrInvalidEntity if the user ID doesn't exist (foreign key violation).
func (s *PostgresAlertStore) Create(ctx context.Context, alert *store.CrashAlert) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		INSERT INTO crash_alerts (id, user_id, fire_at, created_at)
		VALUES ($1, $2, $3, $4)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		alert.ID,
		alert.UserID,
		alert.FireAt,
		alert.CreatedAt,
	)

	if err != nil {
		if isForeignKeyViolation(err) {
			log.Warn("foreign key violation during alert creation",
				slog.String("alert_id", alert.ID.String()),
				slog.String("user_id", alert.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, alert.UserID)
		}

		log.Error("failed to create crash alert",
			slog.String("error", err.Error()),
			slog.String("alert_id", alert.ID.String()),
			slog.String("user_id", alert.UserID.String()))
		return err
	}

	log.Info("crash alert scheduled",
		slog.String("alert_id", alert.ID.String()),
		slog.String("user_id", alert.UserID.String()),
		slog.Time("fire_at", alert.FireAt))
	return nil
}

// ListPendingByUser implements store.AlertStore.ListPendingByUser
// Returns an empty slice if the user has no pending alerts.
func (s *PostgresAlertStore) ListPendingByUser(ctx context.Context, userID uuid.UUID) ([]*store.CrashAlert, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT id, user_id, fire_at, created_at
		FROM crash_alerts
		WHERE user_id = $1
		ORDER BY fire_at ASC
	`

	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to query crash alerts",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Error("failed to close rows", slog.String("error", err.Error()))
		}
	}()

	var alerts []*store.CrashAlert
	for rows.Next() {
		var alert store.CrashAlert

		err := rows.Scan(
			&alert.ID,
			&alert.UserID,
			&alert.FireAt,
			&alert.CreatedAt,
		)
		if err != nil {
			log.Error("failed to scan alert row",
				slog.String("error", err.Error()))
			return nil, err
		}

		alerts = append(alerts, &alert)
	}

	if err := rows.Err(); err != nil {
		log.Error("error after scanning rows",
			slog.String("error", err.Error()))
		return nil, err
	}

	// Return empty slice instead of nil if no alerts found
	if alerts == nil {
		alerts = []*store.CrashAlert{}
	}

	return alerts, nil
}

// DeleteByUser implements store.AlertStore.DeleteByUser
// Deleting zero rows is not an error: cancel-all is a full-replace operation.
func (s *PostgresAlertStore) DeleteByUser(ctx context.Context, userID uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		DELETE FROM crash_alerts
		WHERE user_id = $1
	`

	result, err := s.db.ExecContext(ctx, query, userID)
	if err != nil {
		log.Error("failed to delete crash alerts",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		log.Error("failed to get rows affected",
			slog.String("error", err.Error()),
			slog.String("user_id", userID.String()))
		return err
	}

	log.Debug("cancelled pending crash alerts",
		slog.String("user_id", userID.String()),
		slog.Int64("count", rowsAffected))
	return nil
}
