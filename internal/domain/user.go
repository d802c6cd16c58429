package domain

import (
	"context"
	"time"
)

// User represents a registered account
type User struct {
	ID           string    `json:"id" db:"id"`
	Name         string    `json:"name" db:"name"`
	Email        string    `json:"email" db:"email"`
	PasswordHash string    `json:"-" db:"password_hash"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
}

// UserRepository is the credential store.
type UserRepository interface {
	// FindByEmail returns ErrUserNotFound when no user has the address.
	FindByEmail(ctx context.Context, email string) (*User, error)
	// Create returns ErrUserAlreadyExists when the email is taken.
	Create(ctx context.Context, user *User) error
}
