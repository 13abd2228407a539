package services

import (
	"context"
	"errors"

	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
)

// Error variables
var (
	ErrObjectNotFound = errors.New("object not found")
	ErrAccessDenied   = errors.New("access denied: only object owner or admin can edit")
)

// ObjectReader defines read-only operations for investment objects.
type ObjectReader interface {
	GetByID(ctx context.Context, id int64) (*models.ObjectDB, error)
	Find(ctx context.Context, filter models.ObjectFilter) ([]models.ObjectDB, error)
	GetBrokerID(ctx context.Context, id int64) (brokerID *int64, found bool, err error)
}

// ObjectWriter defines write operations for investment objects.
type ObjectWriter interface {
	Insert(ctx context.Context, obj models.ObjectDB) (*models.ObjectDB, error)
	Update(ctx context.Context, id int64, upd models.ObjectUpdate) (*models.ObjectDB, error)
}

// ObjectCache caches single-object projections.
type ObjectCache interface {
	GetObject(ctx context.Context, id int64) (*models.ObjectDB, error)
	SetObject(ctx context.Context, obj *models.ObjectDB) error
	InvalidateObject(ctx context.Context, id int64) error
}

// ActorReader resolves the caller-asserted identity for the edit check.
type ActorReader interface {
	GetByID(ctx context.Context, id int64) (*models.UserDB, error)
}

// ObjectsService handles investment object reads and writes.
type ObjectsService struct {
	reader ObjectReader
	writer ObjectWriter
	actors ActorReader
	cache  ObjectCache
}

// NewObjectsService creates a new ObjectsService. The cache is optional.
func NewObjectsService(reader ObjectReader, writer ObjectWriter, actors ActorReader, cache ObjectCache) *ObjectsService {
	return &ObjectsService{
		reader: reader,
		writer: writer,
		actors: actors,
		cache:  cache,
	}
}

// Get returns the full projection of a single object, read through the cache
// when one is configured. Cache failures never fail the request.
func (svc *ObjectsService) Get(ctx context.Context, id int64) (*models.ObjectDB, error) {
	if svc.cache != nil {
		if obj, err := svc.cache.GetObject(ctx, id); err == nil {
			return obj, nil
		}
	}

	obj, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		logger.Log.Errorw("failed to get object", "id", id, "err", err)
		return nil, err
	}
	if obj == nil {
		return nil, ErrObjectNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.SetObject(ctx, obj); err != nil {
			logger.Log.Errorw("failed to cache object", "id", id, "err", err)
		}
	}

	return obj, nil
}

// List returns up to 100 newest objects matching the filter.
func (svc *ObjectsService) List(ctx context.Context, filter models.ObjectFilter) ([]models.ObjectDB, error) {
	objects, err := svc.reader.Find(ctx, filter)
	if err != nil {
		logger.Log.Errorw("failed to find objects", "err", err)
		return nil, err
	}
	return objects, nil
}

// Create inserts a new object. Field validation happens at the HTTP layer.
func (svc *ObjectsService) Create(ctx context.Context, obj models.ObjectDB) (*models.ObjectDB, error) {
	if obj.Status == "" {
		obj.Status = models.ObjectStatusAvailable
	}

	created, err := svc.writer.Insert(ctx, obj)
	if err != nil {
		logger.Log.Errorw("failed to insert object", "title", obj.Title, "err", err)
		return nil, err
	}
	return created, nil
}

// Update applies a whitelisted partial update to an object.
//
// When actorID resolves to a known user, that user must be the object's
// broker or an admin. When actorID is nil or resolves to no user row the
// update proceeds with no ownership check; the identity header is
// caller-asserted and is a courtesy check, not a security boundary.
func (svc *ObjectsService) Update(ctx context.Context, id int64, actorID *int64, upd models.ObjectUpdate) (*models.ObjectDB, error) {
	if actorID != nil {
		actor, err := svc.actors.GetByID(ctx, *actorID)
		if err != nil {
			logger.Log.Errorw("failed to resolve actor", "actor_id", *actorID, "err", err)
			return nil, err
		}
		if actor != nil {
			brokerID, found, err := svc.reader.GetBrokerID(ctx, id)
			if err != nil {
				logger.Log.Errorw("failed to resolve object owner", "id", id, "err", err)
				return nil, err
			}
			if found && !actor.IsAdmin && (brokerID == nil || *brokerID != actor.ID) {
				return nil, ErrAccessDenied
			}
		}
	}

	updated, err := svc.writer.Update(ctx, id, upd)
	if err != nil {
		logger.Log.Errorw("failed to update object", "id", id, "err", err)
		return nil, err
	}
	if updated == nil {
		return nil, ErrObjectNotFound
	}

	if svc.cache != nil {
		if err := svc.cache.InvalidateObject(ctx, id); err != nil {
			logger.Log.Errorw("failed to invalidate object cache", "id", id, "err", err)
		}
	}

	return updated, nil
}
