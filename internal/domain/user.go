package domain

import "time"

// User is an admin-provisioned account. PasswordHash is an argon2id
// encoded string and never leaves the server.
type User struct {
	ID           int        `json:"id" db:"id"`
	Username     string     `json:"username" db:"username"`
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    string     `json:"first_name" db:"first_name"`
	LastName     string     `json:"last_name" db:"last_name"`
	Role         Role       `json:"role" db:"role"`
	NurseryID    *int       `json:"nursery_id" db:"nursery_id"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at" db:"updated_at"`
	LastLoginAt  *time.Time `json:"last_login_at" db:"last_login_at"`
}

// Principal is the snapshot of a user captured into the session at login.
// It is the only identity shape the authorization layer ever sees.
type Principal struct {
	UserID    int    `json:"id"`
	Username  string `json:"username"`
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      Role   `json:"role"`
	NurseryID *int   `json:"nursery_id"`
}

// Principal builds the session snapshot for u.
func (u *User) Principal() Principal {
	return Principal{
		UserID:    u.ID,
		Username:  u.Username,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		NurseryID: u.NurseryID,
	}
}
