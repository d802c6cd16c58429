package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"pdf-translator/internal/domain"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type authService struct {
	users    domain.UserRepository
	sessions domain.SessionManager
	logger   domain.Logger

	hashCost int
}

func NewAuthService(
	users domain.UserRepository,
	sessions domain.SessionManager,
	logger domain.Logger,
) *authService {
	return &authService{
		users:    users,
		sessions: sessions,
		logger:   logger,
		hashCost: bcrypt.DefaultCost,
	}
}

// Register creates a new account. The password is stored as a bcrypt hash.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)

	switch {
	case name == "":
		return nil, &domain.ValidationError{Field: "name", Message: "is required"}
	case email == "":
		return nil, &domain.ValidationError{Field: "email", Message: "is required"}
	case password == "":
		return nil, &domain.ValidationError{Field: "password", Message: "is required"}
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, &domain.ValidationError{Field: "email", Message: "is not a valid address"}
	}

	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrUserAlreadyExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.hashCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &domain.User{
		ID:           uuid.New().String(),
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", "user_id", user.ID)
	return user, nil
}

// Authenticate checks email and password and opens a session. Unknown emails
// and wrong passwords both return ErrInvalidCredentials.
func (s *authService) Authenticate(ctx context.Context, email, password string) (*domain.User, string, error) {
	user, err := s.users.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, "", domain.ErrInvalidCredentials
		}
		return nil, "", fmt.Errorf("failed to look up user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, "", domain.ErrInvalidCredentials
	}

	token, _, err := s.sessions.Issue(user)
	if err != nil {
		return nil, "", err
	}
	s.logger.Info("User logged in", "user_id", user.ID)
	return user, token, nil
}

// ValidateToken returns the session behind token.
func (s *authService) ValidateToken(token string) (*domain.Session, error) {
	session, err := s.sessions.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}
	return session, nil
}

// Logout revokes the session behind token.
func (s *authService) Logout(token string) error {
	return s.sessions.Revoke(token)
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
