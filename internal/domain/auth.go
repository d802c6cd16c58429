package domain

import (
	"context"
	"time"
)

// Session is the authenticated identity attached to a request.
type Session struct {
	UserID    string    `json:"user_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	TokenID   string    `json:"-"`
	ExpiresAt time.Time `json:"expires_at"`
}

// SessionManager issues and validates session tokens.
type SessionManager interface {
	Issue(user *User) (string, *Session, error)
	Validate(token string) (*Session, error)
	Revoke(token string) error
	Close()
}

type AuthService interface {
	Register(ctx context.Context, name, email, password string) (*User, error)
	Authenticate(ctx context.Context, email, password string) (*User, string, error)
	ValidateToken(token string) (*Session, error)
	Logout(token string) error
}
