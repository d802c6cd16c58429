package service

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"pdf-translator/internal/domain"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SessionClaims extends standard JWT claims with user info.
type SessionClaims struct {
	UserID string `json:"user_id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// JWTSessionManager issues HS256 session tokens and remembers revoked ones
// until they would have expired anyway.
type JWTSessionManager struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time

	revokedMu sync.RWMutex
	revoked   map[string]time.Time
}

// NewJWTSessionManager creates the session store. It lives for the whole
// process and is closed on shutdown.
func NewJWTSessionManager(secret string, ttl time.Duration) *JWTSessionManager {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}
	return &JWTSessionManager{
		secret:  []byte(secret),
		ttl:     ttl,
		now:     time.Now,
		revoked: make(map[string]time.Time),
	}
}

// Issue creates a signed token for user.
func (m *JWTSessionManager) Issue(user *domain.User) (string, *domain.Session, error) {
	now := m.now()
	claims := SessionClaims{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", nil, fmt.Errorf("failed to sign session token: %w", err)
	}
	return token, sessionFromClaims(&claims), nil
}

// Validate parses token and checks its signature, expiry and revocation.
func (m *JWTSessionManager) Validate(token string) (*domain.Session, error) {
	claims, err := m.parse(token)
	if err != nil {
		return nil, err
	}

	m.revokedMu.RLock()
	_, revoked := m.revoked[claims.ID]
	m.revokedMu.RUnlock()
	if revoked {
		return nil, fmt.Errorf("session revoked: %w", domain.ErrInvalidToken)
	}

	return sessionFromClaims(claims), nil
}

// Revoke invalidates token. Revoking an invalid or expired token is a no-op.
func (m *JWTSessionManager) Revoke(token string) error {
	claims, err := m.parse(token)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidToken) {
			return nil
		}
		return err
	}

	now := m.now()
	m.revokedMu.Lock()
	defer m.revokedMu.Unlock()
	for id, exp := range m.revoked {
		if now.After(exp) {
			delete(m.revoked, id)
		}
	}
	m.revoked[claims.ID] = claims.ExpiresAt.Time
	return nil
}

// Close forgets all revocations.
func (m *JWTSessionManager) Close() {
	m.revokedMu.Lock()
	m.revoked = make(map[string]time.Time)
	m.revokedMu.Unlock()
}

func (m *JWTSessionManager) parse(token string) (*SessionClaims, error) {
	claims := &SessionClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		return m.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(m.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidToken, err)
	}
	if !parsed.Valid || claims.ID == "" {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}

func sessionFromClaims(c *SessionClaims) *domain.Session {
	s := &domain.Session{
		UserID:  c.UserID,
		Name:    c.Name,
		Email:   c.Email,
		TokenID: c.ID,
	}
	if c.ExpiresAt != nil {
		s.ExpiresAt = c.ExpiresAt.Time
	}
	return s
}
