package domain

import "time"

// Nursery is one physical location of the operator.
type Nursery struct {
	ID           int       `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" validate:"required,min=2,max=255"`
	Slug         string    `json:"slug" db:"slug" validate:"required,min=2,max=100"`
	Address      string    `json:"address" db:"address" validate:"max=500"`
	Phone        string    `json:"phone" db:"phone" validate:"max=50"`
	Email        string    `json:"email" db:"email" validate:"omitempty,email"`
	Description  string    `json:"description" db:"description"`
	HeroImageURL string    `json:"hero_image_url" db:"hero_image_url"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// NurserySettings is the per-location settings document. Writes are
// restricted to super admins.
type NurserySettings struct {
	NurseryID    int       `json:"nursery_id" db:"nursery_id"`
	OpeningHours string    `json:"opening_hours" db:"opening_hours"`
	ContactPhone string    `json:"contact_phone" db:"contact_phone"`
	ContactEmail string    `json:"contact_email" db:"contact_email" validate:"omitempty,email"`
	IntroText    string    `json:"intro_text" db:"intro_text"`
	UpdatedBy    int       `json:"updated_by" db:"updated_by"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
