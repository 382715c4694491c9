package domain

//go:generate mockgen -destination=../../mocks/mock_user_repository.go -package=mocks github.com/patrykJ113/edicom-api/internal/auth/domain UserRepository

import "context"

// UserRepository is the user store consumed by the auth flows. Lookups return
// (nil, nil) when no row matches.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByIDAndRefreshToken(ctx context.Context, id, refreshToken string) (*User, error)
	Create(ctx context.Context, user *User) error
	UpdateRefreshToken(ctx context.Context, userID, refreshToken string) error
}
