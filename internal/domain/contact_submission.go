package domain

import "time"

// ContactSubmission is a message sent through the public contact form.
// NurseryID is optional: general enquiries carry no location.
type ContactSubmission struct {
	ID        int       `json:"id" db:"id"`
	NurseryID *int      `json:"nursery_id" db:"nursery_id"`
	Name      string    `json:"name" db:"name" validate:"required,min=2,max=150"`
	Email     string    `json:"email" db:"email" validate:"required,email"`
	Phone     string    `json:"phone" db:"phone" validate:"max=50"`
	Message   string    `json:"message" db:"message" validate:"required,min=5,max=5000"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
