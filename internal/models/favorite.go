package models

import (
	"time"

	"github.com/lib/pq"
)

// FavoriteDB represents a favorite row in the database
type FavoriteDB struct {
	ID        int64      `json:"id" db:"id"`                 // Primary key
	UserID    int64      `json:"user_id" db:"user_id"`       // Owning investor
	ObjectID  int64      `json:"object_id" db:"object_id"`   // Target object
	CreatedAt *time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// FavoriteObjectSnapshot is the object projection joined into favorite listings.
// It is computed per request, not stored.
type FavoriteObjectSnapshot struct {
	Title        string         `json:"title" db:"title"`
	City         string         `json:"city" db:"city"`
	Price        float64        `json:"price" db:"price"`
	YieldPercent float64        `json:"yield_percent" db:"yield_percent"`
	Images       pq.StringArray `json:"images" db:"images"`
}

// FavoriteWithObject is a favorite joined with its object snapshot
type FavoriteWithObject struct {
	ID        int64                  `json:"id" db:"id"`
	UserID    int64                  `json:"user_id" db:"user_id"`
	ObjectID  int64                  `json:"object_id" db:"object_id"`
	CreatedAt *time.Time             `json:"created_at" db:"created_at"`
	Object    FavoriteObjectSnapshot `json:"object"`
}

// FavoriteEvent is published to Kafka when a favorite is created
type FavoriteEvent struct {
	EventID   string `json:"event_id"`
	UserID    int64  `json:"user_id"`
	ObjectID  int64  `json:"object_id"`
	BrokerID  *int64 `json:"broker_id,omitempty"`
	Timestamp int64  `json:"timestamp"`
}
