package domain

import "time"

// User is the identity record. RefreshToken holds the single refresh token
// currently accepted for the user; writing a new one revokes the previous.
type User struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
	RefreshToken string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
