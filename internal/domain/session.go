package domain

import "time"

// Session is the server-side record behind the session cookie. The browser
// only ever holds the opaque ID; a cookie with no matching record is
// treated as unauthenticated.
type Session struct {
	ID        string       `json:"id"`
	Principal Principal    `json:"principal"`
	Scope     NurseryScope `json:"scope"`
	CreatedAt time.Time    `json:"created_at"`
	ExpiresAt time.Time    `json:"expires_at"`
}

// Expired reports whether the session has passed its expiry at now.
func (s *Session) Expired(now time.Time) bool {
	return !now.Before(s.ExpiresAt)
}
