package handler

import (
	"context"
	"net/http"
	"strings"

	"pdf-translator/internal/domain"
)

type tokenValidator interface {
	ValidateToken(token string) (*domain.Session, error)
}

// AuthMiddleware authenticates requests with a session token taken from the
// Authorization header or, failing that, the session cookie.
type AuthMiddleware struct {
	authService tokenValidator
	logger      domain.Logger
}

func NewAuthMiddleware(authService tokenValidator, logger domain.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		authService: authService,
		logger:      logger,
	}
}

func (m *AuthMiddleware) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := m.tokenFromRequest(w, r)
		if !ok {
			return
		}

		session, err := m.authService.ValidateToken(token)
		if err != nil {
			m.logger.Debug("Token validation failed", "error", err, "path", r.URL.Path)
			writeError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), sessionContextKey, session)
		ctx = context.WithValue(ctx, tokenContextKey, token)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *AuthMiddleware) tokenFromRequest(w http.ResponseWriter, r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		if cookie, err := r.Cookie(sessionCookieName); err == nil && cookie.Value != "" {
			return cookie.Value, true
		}
		writeError(w, http.StatusUnauthorized, "Authorization header required")
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		writeError(w, http.StatusUnauthorized, "Invalid authorization header format")
		return "", false
	}
	if parts[1] == "" {
		writeError(w, http.StatusUnauthorized, "Token required")
		return "", false
	}
	return parts[1], true
}
