package domain

import "time"

// StaffMember is a public-facing team profile for a nursery. It is a
// content record, not a login account.
type StaffMember struct {
	ID           int       `json:"id" db:"id"`
	NurseryID    int       `json:"nursery_id" db:"nursery_id"`
	FirstName    string    `json:"first_name" db:"first_name" validate:"required,min=1,max=100"`
	LastName     string    `json:"last_name" db:"last_name" validate:"required,min=1,max=100"`
	Position     string    `json:"position" db:"position" validate:"required,max=150"`
	Bio          string    `json:"bio" db:"bio"`
	PhotoURL     string    `json:"photo_url" db:"photo_url" validate:"max=1000"`
	DisplayOrder int       `json:"display_order" db:"display_order"`
	CreatedBy    int       `json:"created_by" db:"created_by"`
	UpdatedBy    int       `json:"updated_by" db:"updated_by"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
