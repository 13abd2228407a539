package models

import "time"

// User roles
const (
	RoleInvestor = "investor"
	RoleBroker   = "broker"
	RoleAdmin    = "admin"
)

// UserDB represents a user record in the database
type UserDB struct {
	ID        int64      `json:"id" db:"id"`                 // Primary key
	Email     string     `json:"email" db:"email"`           // Unique email
	Name      string     `json:"name" db:"name"`             // Display name
	Role      string     `json:"role" db:"role"`             // investor, broker or admin
	IsAdmin   bool       `json:"is_admin" db:"is_admin"`     // Admin flag, independent of role
	CreatedAt *time.Time `json:"created_at" db:"created_at"` // Creation timestamp
}

// UserShort is the compact projection used by the admin user management endpoint
type UserShort struct {
	ID    int64  `json:"id" db:"id"`
	Email string `json:"email" db:"email"`
	Name  string `json:"name" db:"name"`
	Role  string `json:"role" db:"role"`
}
