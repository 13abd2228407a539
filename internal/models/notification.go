package models

import "time"

// Notification types
const (
	NotificationTypeFavoriteAdded = "favorite_added"
)

// NotificationDB represents a notification row in the database
type NotificationDB struct {
	ID        int64      `json:"id" db:"id"`                 // Primary key
	UserID    int64      `json:"user_id" db:"user_id"`       // Recipient
	Type      string     `json:"type" db:"type"`             // Free string tag, e.g. "favorite_added"
	Title     string     `json:"title" db:"title"`           // Short title
	Message   string     `json:"message" db:"message"`       // Human-readable message
	ObjectID  *int64     `json:"object_id" db:"object_id"`   // Related object, optional
	IsRead    bool       `json:"is_read" db:"is_read"`       // Read flag, defaults to false
	CreatedAt *time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}
