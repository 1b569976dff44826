package auth

import (
	"errors"
	"time"
)

// User represents an admin account able to manage the catalog.
type User struct {
	ID           int64
	Email        string
	PasswordHash string
	IsActive     bool
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ErrInvalidCredentials is returned for any login failure; the cause is
// never disclosed to the caller.
var ErrInvalidCredentials = errors.New("invalid credentials")
