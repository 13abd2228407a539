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

// UserReadRepository handles user read operations
type UserReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserReadRepository {
	return &UserReadRepository{db: db, txGetter: txGetter}
}

func (r *UserReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

const userColumns = `id, email, name, role, COALESCE(is_admin, FALSE) AS is_admin, created_at`

// GetByID returns the user with the given id, or nil when no row matches.
func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, id)

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
	return &user, nil
}

// GetByEmail returns the user with the given email, or nil when no row matches.
func (r *UserReadRepository) GetByEmail(ctx context.Context, email string) (*models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, email)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{email},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// List returns up to 100 most recently created users.
func (r *UserReadRepository) List(ctx context.Context) ([]models.UserDB, error) {
	query := `SELECT ` + userColumns + ` FROM users ORDER BY created_at DESC LIMIT 100`

	users := make([]models.UserDB, 0)
	err := sqlx.SelectContext(ctx, r.executor(ctx), &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListAll returns all users in id order, in the compact admin projection.
func (r *UserReadRepository) ListAll(ctx context.Context) ([]models.UserShort, error) {
	query := `SELECT id, email, name, role FROM users ORDER BY id`

	users := make([]models.UserShort, 0)
	err := sqlx.SelectContext(ctx, r.executor(ctx), &users, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(users),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return users, nil
}

// ListBrokers returns all users with the broker role in id order.
func (r *UserReadRepository) ListBrokers(ctx context.Context) ([]models.UserShort, error) {
	query := `SELECT id, email, name, role FROM users WHERE role = 'broker' ORDER BY id`

	brokers := make([]models.UserShort, 0)
	err := sqlx.SelectContext(ctx, r.executor(ctx), &brokers, query)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"result_count", len(brokers),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return brokers, nil
}

// UserWriteRepository handles user write operations
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert creates a new user and returns the created row.
func (r *UserWriteRepository) Insert(ctx context.Context, email, name, role string) (*models.UserDB, error) {
	query := `
		INSERT INTO users (email, name, role)
		VALUES ($1, $2, $3)
		RETURNING ` + userColumns
	args := []any{email, name, role}

	var user models.UserDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Upsert creates a user or, on an email conflict, updates name and role in place.
func (r *UserWriteRepository) Upsert(ctx context.Context, email, name, role string) (*models.UserShort, error) {
	query := `
		INSERT INTO users (email, name, role)
		VALUES ($1, $2, $3)
		ON CONFLICT (email) DO UPDATE
		SET name = EXCLUDED.name, role = EXCLUDED.role
		RETURNING id, email, name, role
	`
	args := []any{email, name, role}

	var user models.UserShort
	err := sqlx.GetContext(ctx, r.executor(ctx), &user, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Delete removes the user with the given id. Returns false when no row matched.
func (r *UserWriteRepository) Delete(ctx context.Context, id int64) (bool, error) {
	query := `DELETE FROM users WHERE id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return false, err
	}
	return rowsAffected > 0, nil
}
