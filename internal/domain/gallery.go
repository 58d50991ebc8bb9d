package domain

import "time"

// GalleryImage is one image in a nursery's public gallery.
type GalleryImage struct {
	ID        int       `json:"id" db:"id"`
	NurseryID int       `json:"nursery_id" db:"nursery_id"`
	Title     string    `json:"title" db:"title" validate:"required,min=1,max=255"`
	Caption   string    `json:"caption" db:"caption" validate:"max=500"`
	ImageURL  string    `json:"image_url" db:"image_url" validate:"required,max=1000"`
	SortOrder int       `json:"sort_order" db:"sort_order"`
	CreatedBy int       `json:"created_by" db:"created_by"`
	UpdatedBy int       `json:"updated_by" db:"updated_by"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}
