package domain

import "time"

// Activity log actions recorded by the admin layer.
const (
	ActivityLogin        = "login"
	ActivityLogout       = "logout"
	ActivityCreate       = "create"
	ActivityUpdate       = "update"
	ActivityDelete       = "delete"
	ActivityAccessDenied = "access_denied"
)

// ActivityLog is an append-only audit record. Route-guard denials land here
// with the precise internal reason, which is never surfaced to clients.
type ActivityLog struct {
	ID        int       `json:"id" db:"id"`
	UserID    *int      `json:"user_id" db:"user_id"`
	NurseryID *int      `json:"nursery_id" db:"nursery_id"`
	Action    string    `json:"action" db:"action"`
	Resource  string    `json:"resource" db:"resource"`
	Detail    string    `json:"detail" db:"detail"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}
