package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
)

// NotificationReadRepository handles notification read operations
type NotificationReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNotificationReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NotificationReadRepository {
	return &NotificationReadRepository{db: db, txGetter: txGetter}
}

func (r *NotificationReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

const notificationColumns = `id, user_id, type, title, message, object_id, COALESCE(is_read, FALSE) AS is_read, created_at`

// ListByUser returns up to 50 most recent notifications for the recipient.
func (r *NotificationReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.NotificationDB, error) {
	query := `
		SELECT ` + notificationColumns + `
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT 50
	`

	notifications := make([]models.NotificationDB, 0)
	err := sqlx.SelectContext(ctx, r.executor(ctx), &notifications, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(notifications),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return notifications, nil
}

// NotificationWriteRepository handles notification write operations
type NotificationWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewNotificationWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *NotificationWriteRepository {
	return &NotificationWriteRepository{db: db, txGetter: txGetter}
}

func (r *NotificationWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert creates a notification row. Notifications are only ever created as
// side effects of other operations, so no created row is returned.
func (r *NotificationWriteRepository) Insert(ctx context.Context, userID int64, notifType, title, message string, objectID *int64) error {
	query := `
		INSERT INTO notifications (user_id, type, title, message, object_id)
		VALUES ($1, $2, $3, $4, $5)
	`
	args := []any{userID, notifType, title, message, objectID}

	_, err := r.executor(ctx).ExecContext(ctx, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	return err
}

// MarkRead sets is_read unconditionally and returns the updated row, or nil
// when no row matched. Marking an already-read notification is a no-op.
func (r *NotificationWriteRepository) MarkRead(ctx context.Context, id int64) (*models.NotificationDB, error) {
	query := `
		UPDATE notifications SET is_read = TRUE
		WHERE id = $1
		RETURNING ` + notificationColumns

	var notification models.NotificationDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &notification, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &notification, nil
}
