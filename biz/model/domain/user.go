package domain

import "time"

type User struct {
	UserID         string
	Name           string
	Email          string
	PasswordDigest string
	Image          string
	PlaceIDs       []string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// AuthResult is what both register and login hand back to the boundary.
type AuthResult struct {
	UserID    string
	Email     string
	Token     string
	ExpiresAt int64
}
