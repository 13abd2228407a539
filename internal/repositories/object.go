package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/Masterminds/squirrel"
	"github.com/jmoiron/sqlx"
	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
)

// Stored numerics and arrays are nullable; the projection coalesces them so
// responses never carry nulls for those fields.
var objectColumns = []string{
	"id",
	"broker_id",
	"title",
	"city",
	"address",
	"property_type",
	"COALESCE(area, 0) AS area",
	"COALESCE(price, 0) AS price",
	"COALESCE(yield_percent, 0) AS yield_percent",
	"COALESCE(payback_years, 0) AS payback_years",
	"COALESCE(description, '') AS description",
	"COALESCE(images, '{}') AS images",
	"COALESCE(videos, '{}') AS videos",
	"COALESCE(documents, '{}') AS documents",
	"status",
	"created_at",
}

func selectObjectsBuilder() squirrel.SelectBuilder {
	return squirrel.
		Select(objectColumns...).
		From("investment_objects").
		PlaceholderFormat(squirrel.Dollar)
}

// ObjectReadRepository handles investment object read operations
type ObjectReadRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewObjectReadRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ObjectReadRepository {
	return &ObjectReadRepository{db: db, txGetter: txGetter}
}

func (r *ObjectReadRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// GetByID returns the object with the given id, or nil when no row matches.
func (r *ObjectReadRepository) GetByID(ctx context.Context, id int64) (*models.ObjectDB, error) {
	query, args, err := selectObjectsBuilder().
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	var obj models.ObjectDB
	err = sqlx.GetContext(ctx, r.executor(ctx), &obj, query, args...)

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
	return &obj, nil
}

// Find returns up to 100 newest objects matching the conjunctive filter set.
func (r *ObjectReadRepository) Find(ctx context.Context, filter models.ObjectFilter) ([]models.ObjectDB, error) {
	builder := selectObjectsBuilder()

	if filter.City != nil {
		builder = builder.Where(squirrel.Eq{"city": *filter.City})
	}
	if filter.PropertyType != nil {
		builder = builder.Where(squirrel.Eq{"property_type": *filter.PropertyType})
	}
	if filter.Status != nil {
		builder = builder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.MinPrice != nil {
		builder = builder.Where(squirrel.GtOrEq{"price": *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		builder = builder.Where(squirrel.LtOrEq{"price": *filter.MaxPrice})
	}
	if filter.MinYield != nil {
		builder = builder.Where(squirrel.GtOrEq{"yield_percent": *filter.MinYield})
	}
	if filter.MaxYield != nil {
		builder = builder.Where(squirrel.LtOrEq{"yield_percent": *filter.MaxYield})
	}

	query, args, err := builder.
		OrderBy("created_at DESC").
		Limit(100).
		ToSql()
	if err != nil {
		return nil, err
	}

	objects := make([]models.ObjectDB, 0)
	err = sqlx.SelectContext(ctx, r.executor(ctx), &objects, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result_count", len(objects),
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return objects, nil
}

// GetBrokerID returns the owning broker of an object. The second result is
// false when the object does not exist.
func (r *ObjectReadRepository) GetBrokerID(ctx context.Context, id int64) (*int64, bool, error) {
	query := `SELECT broker_id FROM investment_objects WHERE id = $1`

	var brokerID *int64
	err := sqlx.GetContext(ctx, r.executor(ctx), &brokerID, query, id)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return brokerID, true, nil
}

// ObjectWriteRepository handles investment object write operations
type ObjectWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewObjectWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *ObjectWriteRepository {
	return &ObjectWriteRepository{db: db, txGetter: txGetter}
}

func (r *ObjectWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Insert creates a new object and returns the created row.
func (r *ObjectWriteRepository) Insert(ctx context.Context, obj models.ObjectDB) (*models.ObjectDB, error) {
	query := `
		INSERT INTO investment_objects
			(broker_id, title, city, address, property_type, area, price, yield_percent,
			 payback_years, description, images, videos, documents, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
		RETURNING ` + strings.Join(objectColumns, ", ")
	args := []any{
		obj.BrokerID, obj.Title, obj.City, obj.Address, obj.PropertyType,
		obj.Area, obj.Price, obj.YieldPercent, obj.PaybackYears,
		obj.Description, obj.Images, obj.Videos, obj.Documents, obj.Status,
	}

	var created models.ObjectDB
	err := sqlx.GetContext(ctx, r.executor(ctx), &created, query, args...)

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"error", err,
	)

	if err != nil {
		return nil, err
	}
	return &created, nil
}

// Update applies the whitelisted partial update, always bumping updated_at.
// Returns nil when no row matched.
func (r *ObjectWriteRepository) Update(ctx context.Context, id int64, upd models.ObjectUpdate) (*models.ObjectDB, error) {
	builder := squirrel.
		Update("investment_objects").
		PlaceholderFormat(squirrel.Dollar)

	if upd.Status != nil {
		builder = builder.Set("status", *upd.Status)
	}
	if upd.Price != nil {
		builder = builder.Set("price", *upd.Price)
	}
	if upd.YieldPercent != nil {
		builder = builder.Set("yield_percent", *upd.YieldPercent)
	}
	if upd.Description != nil {
		builder = builder.Set("description", *upd.Description)
	}
	if upd.Images != nil {
		builder = builder.Set("images", *upd.Images)
	}
	if upd.Videos != nil {
		builder = builder.Set("videos", *upd.Videos)
	}
	if upd.Documents != nil {
		builder = builder.Set("documents", *upd.Documents)
	}

	query, args, err := builder.
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": id}).
		Suffix("RETURNING " + strings.Join(objectColumns, ", ")).
		ToSql()
	if err != nil {
		return nil, err
	}

	var updated models.ObjectDB
	err = sqlx.GetContext(ctx, r.executor(ctx), &updated, query, args...)

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
	return &updated, nil
}

// DeleteByBroker removes all objects owned by the given broker and returns
// the number of deleted rows. Used by the spreadsheet full-replace sync.
func (r *ObjectWriteRepository) DeleteByBroker(ctx context.Context, brokerID int64) (int64, error) {
	query := `DELETE FROM investment_objects WHERE broker_id = $1`

	res, err := r.executor(ctx).ExecContext(ctx, query, brokerID)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{brokerID},
		"result", rowsAffected,
		"error", err,
	)

	if err != nil {
		return 0, err
	}
	return rowsAffected, nil
}
