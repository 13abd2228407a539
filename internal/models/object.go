package models

import (
	"time"

	"github.com/lib/pq"
)

// Object statuses
const (
	ObjectStatusAvailable = "available"
)

// ObjectDB represents an investment object row in the database.
// Numeric columns are nullable in storage; queries coalesce them to zero
// so the JSON projection never carries nulls for them.
type ObjectDB struct {
	ID           int64          `json:"id" db:"id"`                       // Primary key
	BrokerID     *int64         `json:"broker_id" db:"broker_id"`         // Owning broker, nullable
	Title        string         `json:"title" db:"title"`                 // Listing title
	City         string         `json:"city" db:"city"`                   // City
	Address      string         `json:"address" db:"address"`             // Street address
	PropertyType string         `json:"property_type" db:"property_type"` // flats, apartments, commercial, country, ...
	Area         float64        `json:"area" db:"area"`                   // Area in square meters
	Price        float64        `json:"price" db:"price"`                 // Price
	YieldPercent float64        `json:"yield_percent" db:"yield_percent"` // Expected yield, percent
	PaybackYears float64        `json:"payback_years" db:"payback_years"` // Payback period, years
	Description  string         `json:"description" db:"description"`     // Free-form description
	Images       pq.StringArray `json:"images" db:"images"`               // Image URLs
	Videos       pq.StringArray `json:"videos" db:"videos"`               // Video URLs
	Documents    pq.StringArray `json:"documents" db:"documents"`         // Document URLs
	Status       string         `json:"status" db:"status"`               // Free string, defaults to "available"
	CreatedAt    *time.Time     `json:"created_at" db:"created_at"`       // Creation timestamp
}

// ObjectFilter holds the conjunctive list-query filters. Nil fields are no-ops.
type ObjectFilter struct {
	City         *string  // Exact match
	PropertyType *string  // Exact match
	Status       *string  // Exact match
	MinPrice     *float64 // Inclusive lower bound
	MaxPrice     *float64 // Inclusive upper bound
	MinYield     *float64 // Inclusive lower bound
	MaxYield     *float64 // Inclusive upper bound
}

// ObjectUpdate carries the whitelisted partial-update fields. Nil fields are untouched.
type ObjectUpdate struct {
	Status       *string
	Price        *float64
	YieldPercent *float64
	Description  *string
	Images       *pq.StringArray
	Videos       *pq.StringArray
	Documents    *pq.StringArray
}

// IsEmpty reports whether the update carries no fields.
func (u ObjectUpdate) IsEmpty() bool {
	return u.Status == nil && u.Price == nil && u.YieldPercent == nil &&
		u.Description == nil && u.Images == nil && u.Videos == nil && u.Documents == nil
}
