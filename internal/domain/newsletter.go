package domain

import "time"

// Newsletter is a nursery-owned publication, typically a hosted PDF.
type Newsletter struct {
	ID          int        `json:"id" db:"id"`
	NurseryID   int        `json:"nursery_id" db:"nursery_id"`
	Title       string     `json:"title" db:"title" validate:"required,min=2,max=255"`
	Summary     string     `json:"summary" db:"summary" validate:"max=1000"`
	FileURL     string     `json:"file_url" db:"file_url" validate:"required,max=1000"`
	Published   bool       `json:"published" db:"published"`
	PublishedAt *time.Time `json:"published_at" db:"published_at"`
	CreatedBy   int        `json:"created_by" db:"created_by"`
	UpdatedBy   int        `json:"updated_by" db:"updated_by"`
	CreatedAt   time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at" db:"updated_at"`
}
