package repositories

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
)

// ObjectCacheRepository provides cached single-object projections using Redis
type ObjectCacheRepository struct {
	client *redis.Client
	exp    time.Duration // expiration duration for cached objects
}

// NewObjectCacheRepository creates a new repository instance with the given TTL
func NewObjectCacheRepository(client *redis.Client, expiration time.Duration) *ObjectCacheRepository {
	return &ObjectCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// GetObject fetches a cached object projection by id
func (r *ObjectCacheRepository) GetObject(ctx context.Context, id int64) (*models.ObjectDB, error) {
	key := fmt.Sprintf("object:%d", id)

	val, err := r.client.Get(ctx, key).Result()
	if err != nil {
		logger.Log.Infow(
			"key", key,
			"error", err,
		)
		if err == redis.Nil {
			return nil, fmt.Errorf("object %d not found in cache", id)
		}
		return nil, err
	}

	var obj models.ObjectDB
	if err := json.Unmarshal([]byte(val), &obj); err != nil {
		logger.Log.Infow(
			"key", key,
			"value", val,
			"error", err,
		)
		return nil, err
	}

	logger.Log.Infow(
		"key", key,
		"result", obj.ID,
		"error", nil,
	)

	return &obj, nil
}

// SetObject caches an object projection with expiration
func (r *ObjectCacheRepository) SetObject(ctx context.Context, obj *models.ObjectDB) error {
	key := fmt.Sprintf("object:%d", obj.ID)

	data, err := json.Marshal(obj)
	if err != nil {
		return err
	}

	err = r.client.Set(ctx, key, data, r.exp).Err()

	logger.Log.Infow(
		"key", key,
		"result", "ok",
		"error", err,
	)

	return err
}

// InvalidateObject drops a cached object projection after an update
func (r *ObjectCacheRepository) InvalidateObject(ctx context.Context, id int64) error {
	key := fmt.Sprintf("object:%d", id)

	err := r.client.Del(ctx, key).Err()

	logger.Log.Infow(
		"key", key,
		"result", "deleted",
		"error", err,
	)

	return err
}
