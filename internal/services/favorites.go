package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"github.com/vozduh-dev/invest-api/internal/logger"
	"github.com/vozduh-dev/invest-api/internal/models"
	"github.com/vozduh-dev/invest-api/internal/repositories"
)

// Error variables
var (
	ErrFavoriteNotFound = errors.New("favorite not found")
)

// FavoriteReader defines read-only operations for favorites.
type FavoriteReader interface {
	GetByPair(ctx context.Context, userID, objectID int64) (*models.FavoriteDB, error)
	ListByUser(ctx context.Context, userID int64) ([]models.FavoriteWithObject, error)
	GetNotifyTarget(ctx context.Context, userID, objectID int64) (*repositories.NotifyTarget, error)
}

// FavoriteWriter defines write operations for favorites.
type FavoriteWriter interface {
	Insert(ctx context.Context, userID, objectID int64) (*models.FavoriteDB, error)
	Delete(ctx context.Context, userID, objectID int64) (bool, error)
}

// NotificationCreator creates notification rows as side effects.
type NotificationCreator interface {
	Insert(ctx context.Context, userID int64, notifType, title, message string, objectID *int64) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// FavoritesService handles favorite listings, idempotent creation with the
// broker notification side effect, and removal.
type FavoritesService struct {
	reader      FavoriteReader
	writer      FavoriteWriter
	notifier    NotificationCreator
	kafkaWriter KafkaWriter
}

// NewFavoritesService creates a new FavoritesService. The Kafka writer is
// optional.
func NewFavoritesService(reader FavoriteReader, writer FavoriteWriter, notifier NotificationCreator, kafkaWriter KafkaWriter) *FavoritesService {
	return &FavoritesService{
		reader:      reader,
		writer:      writer,
		notifier:    notifier,
		kafkaWriter: kafkaWriter,
	}
}

// publishEvent publishes a favorite event to Kafka. Failures are logged and
// never affect the request outcome.
func (svc *FavoritesService) publishEvent(ctx context.Context, event models.FavoriteEvent) {
	if svc.kafkaWriter == nil {
		logger.Log.Warnw("Kafka writer not configured, skipping publishing", "event_id", event.EventID)
		return
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal favorite event", "event_id", event.EventID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.EventID),
		Value: data,
	}

	if err := svc.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish favorite event", "event_id", event.EventID, "error", err)
	} else {
		logger.Log.Infow("favorite event published", "event_id", event.EventID, "object_id", event.ObjectID)
	}
}

// ListByUser returns the user's favorites newest-first with object snapshots.
func (svc *FavoritesService) ListByUser(ctx context.Context, userID int64) ([]models.FavoriteWithObject, error) {
	favorites, err := svc.reader.ListByUser(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to list favorites", "user_id", userID, "err", err)
		return nil, err
	}
	return favorites, nil
}

// Add creates a favorite for the (user, object) pair. The operation is
// idempotent: an existing pair is returned as-is with created false. On a
// fresh insert a notification addressed to the object's broker is written in
// the same request transaction, but only when the object has an owner.
func (svc *FavoritesService) Add(ctx context.Context, userID, objectID int64) (fav *models.FavoriteDB, created bool, err error) {
	existing, err := svc.reader.GetByPair(ctx, userID, objectID)
	if err != nil {
		logger.Log.Errorw("failed to check favorite exists", "user_id", userID, "object_id", objectID, "err", err)
		return nil, false, err
	}
	if existing != nil {
		return existing, false, nil
	}

	fav, err = svc.writer.Insert(ctx, userID, objectID)
	if err != nil {
		logger.Log.Errorw("failed to insert favorite", "user_id", userID, "object_id", objectID, "err", err)
		return nil, false, err
	}

	target, err := svc.reader.GetNotifyTarget(ctx, userID, objectID)
	if err != nil {
		logger.Log.Errorw("failed to resolve notify target", "user_id", userID, "object_id", objectID, "err", err)
		return nil, false, err
	}

	event := models.FavoriteEvent{
		EventID:   uuid.NewString(),
		UserID:    userID,
		ObjectID:  objectID,
		Timestamp: time.Now().Unix(),
	}

	if target != nil {
		message := fmt.Sprintf("%s добавил объект \"%s\" в избранное", target.InvestorName, target.ObjectTitle)
		oid := objectID
		if err := svc.notifier.Insert(ctx, target.BrokerID, models.NotificationTypeFavoriteAdded, "Новое избранное", message, &oid); err != nil {
			logger.Log.Errorw("failed to insert notification", "broker_id", target.BrokerID, "object_id", objectID, "err", err)
			return nil, false, err
		}
		event.BrokerID = &target.BrokerID
	}

	svc.publishEvent(ctx, event)

	return fav, true, nil
}

// Remove deletes the favorite for the (user, object) pair and returns the
// removed row.
func (svc *FavoritesService) Remove(ctx context.Context, userID, objectID int64) (*models.FavoriteDB, error) {
	existing, err := svc.reader.GetByPair(ctx, userID, objectID)
	if err != nil {
		logger.Log.Errorw("failed to look up favorite", "user_id", userID, "object_id", objectID, "err", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrFavoriteNotFound
	}

	if _, err := svc.writer.Delete(ctx, userID, objectID); err != nil {
		logger.Log.Errorw("failed to delete favorite", "user_id", userID, "object_id", objectID, "err", err)
		return nil, err
	}

	return existing, nil
}
