package domain

import "time"

type User struct {
	ID           string
	Email        string // unique, stored lower-cased
	Name         string
	PasswordHash string // argon2 encoded
	AvatarURL    string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// PasswordReset is a single-use reset grant. Only the fingerprint of the
// token handed to the user is stored.
type PasswordReset struct {
	TokenHash string
	UserID    string
	ExpiresAt time.Time
	CreatedAt time.Time
}

// Caller is the authenticated identity a request acts as. Every service
// operation that touches workspace data receives one explicitly.
type Caller struct {
	UserID string
}

func (c Caller) IsZero() bool { return c.UserID == "" }
