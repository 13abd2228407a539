package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
)

// FavoriteReadRepository handles favorite read operations
type FavoriteReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFavoriteReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FavoriteReadRepository {
	return &FavoriteReadRepository{db: db, txGetter: txGetter}
}

func (r *FavoriteReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByPair returns the favorite for a (user, object) pair, or nil when absent.
// Uniqueness of the pair is best-effort only; no constraint is assumed.
func (r *FavoriteReadRepository) GetByPair(ctx context.Context, userID, objectID int64) (*models.FavoriteDB, error) {
	query := `SELECT id, user_id, object_id, created_at FROM favorites WHERE user_id = $1 AND object_id = $2`
	args := []any{userID, objectID}

	var fav models.FavoriteDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &fav, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &fav, nil
}

type favoriteJoinedRow struct {
	ID                 int64          `db:"id"`
	UserID             int64          `db:"user_id"`
	ObjectID           int64          `db:"object_id"`
	CreatedAt          sql.NullTime   `db:"created_at"`
	ObjectTitle        string         `db:"object_title"`
	ObjectCity         string         `db:"object_city"`
	ObjectPrice        float64        `db:"object_price"`
	ObjectYieldPercent float64        `db:"object_yield_percent"`
	ObjectImages       pq.StringArray `db:"object_images"`
}

// ListByUser returns the user's favorites newest-first, each joined with a
// per-request snapshot of the target object.
func (r *FavoriteReadRepository) ListByUser(ctx context.Context, userID int64) ([]models.FavoriteWithObject, error) {
	query := `
		SELECT f.id, f.user_id, f.object_id, f.created_at,
		       o.title AS object_title,
		       o.city AS object_city,
		       COALESCE(o.price, 0) AS object_price,
		       COALESCE(o.yield_percent, 0) AS object_yield_percent,
		       COALESCE(o.images, '{}') AS object_images
		FROM favorites f
		JOIN investment_objects o ON f.object_id = o.id
		WHERE f.user_id = $1
		ORDER BY f.created_at DESC
	`

	rows := make([]favoriteJoinedRow, 0)
	err := sqlx.SelectContext(ctx, r.executor(ctx), &rows, query, userID)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result_count", len(rows),
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	favorites := make([]models.FavoriteWithObject, 0, len(rows))
	for _, row := range rows {
		fav := models.FavoriteWithObject{
			ID:       row.ID,
			UserID:   row.UserID,
			ObjectID: row.ObjectID,
			Object: models.FavoriteObjectSnapshot{
				Title:        row.ObjectTitle,
				City:         row.ObjectCity,
				Price:        row.ObjectPrice,
				YieldPercent: row.ObjectYieldPercent,
				Images:       row.ObjectImages,
			},
		}
		if row.CreatedAt.Valid {
			t := row.CreatedAt.Time
			fav.CreatedAt = &t
		}
		favorites = append(favorites, fav)
	}
	return favorites, nil
}

// NotifyTarget carries the data needed to notify an object's broker about a
// new favorite.
type NotifyTarget struct {
	BrokerID     int64  `db:"broker_id"`
	ObjectTitle  string `db:"title"`
	InvestorName string `db:"investor_name"`
}

// GetNotifyTarget resolves the broker to notify when the given investor
// favorites the given object. Returns nil for ownerless objects.
func (r *FavoriteReadRepository) GetNotifyTarget(ctx context.Context, userID, objectID int64) (*NotifyTarget, error) {
	query := `
		SELECT o.broker_id, o.title, u.name AS investor_name
		FROM investment_objects o
		JOIN users u ON u.id = $1
		WHERE o.id = $2 AND o.broker_id IS NOT NULL
	`
	args := []any{userID, objectID}

	var target NotifyTarget
	err := sqlx.GetContext(ctx, r.executor(ctx), &target, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &target, nil
}

// FavoriteWriteRepository handles favorite write operations
type FavoriteWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFavoriteWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FavoriteWriteRepository {
	return &FavoriteWriteRepository{db: db, txGetter: txGetter}
}

func (r *FavoriteWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert creates a favorite and returns the created row.
func (r *FavoriteWriteRepository) Insert(ctx context.Context, userID, objectID int64) (*models.FavoriteDB, error) {
	query := `
		INSERT INTO favorites (user_id, object_id)
		VALUES ($1, $2)
		RETURNING id, user_id, object_id, created_at
	`
	args := []any{userID, objectID}

	var fav models.FavoriteDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &fav, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &fav, nil
}

// Delete removes the favorite for a (user, object) pair. Returns false when
// no row matched.
func (r *FavoriteWriteRepository) Delete(ctx context.Context, userID, objectID int64) (bool, error) {
	query := `DELETE FROM favorites WHERE user_id = $1 AND object_id = $2`
	args := []any{userID, objectID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
