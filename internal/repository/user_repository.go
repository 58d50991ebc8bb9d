package repository

import (
	"context"

	"github.com/JVDTS/NurseryWebsite-sub001/internal/domain"
)

// UserRepository is the data-access contract for admin accounts. Lookups
// return (nil, nil) when no row matches so callers can distinguish
// "unknown user" from an infrastructure failure.
type UserRepository interface {
	GetByID(ctx context.Context, id int) (*domain.User, error)
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	UpdatePassword(ctx context.Context, id int, passwordHash string) error
	TouchLastLogin(ctx context.Context, id int) error
}
