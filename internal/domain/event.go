package domain

import "time"

// Event is a nursery-owned calendar entry shown on the public site once
// published.
type Event struct {
	ID          int        `json:"id" db:"id"`
	NurseryID   int        `json:"nursery_id" db:"nursery_id"`
	Title       string     `json:"title" db:"title" validate:"required,min=2,max=255"`
	Description string     `json:"description" db:"description"`
	Location    string     `json:"location" db:"location" validate:"max=255"`
	StartsAt    time.Time  `json:"starts_at" db:"starts_at" validate:"required"`
	EndsAt      *time.Time `json:"ends_at" db:"ends_at"`
	Published   bool       `json:"published" db:"published"`
	CreatedBy   int        `json:"created_by" db:"created_by"`
	UpdatedBy   int        `json:"updated_by" db:"updated_by"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
