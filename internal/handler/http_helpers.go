package handler

import (
	"encoding/json"
	"net/http"

	"pdf-translator/internal/domain"
	apperrors "pdf-translator/pkg/errors"
)

type contextKey string

const (
	sessionContextKey contextKey = "session"
	tokenContextKey   contextKey = "token"
)

const sessionCookieName = "session_token"

// GetSessionFromContext extracts the authenticated session from request context
func GetSessionFromContext(r *http.Request) (*domain.Session, bool) {
	session, ok := r.Context().Value(sessionContextKey).(*domain.Session)
	return session, ok
}

// GetTokenFromContext extracts the authentication token from request context
func GetTokenFromContext(r *http.Request) (string, bool) {
	token, ok := r.Context().Value(tokenContextKey).(string)
	return token, ok
}

func writeJSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	_ = json.NewEncoder(w).Encode(data)
}

// writeError writes an error response (helper function)
func writeError(w http.ResponseWriter, statusCode int, message string) {
	writeJSON(w, statusCode, map[string]string{"error": message})
}

// writeAppError maps err to its HTTP status. Internal errors are logged and
// their cause is not exposed.
func writeAppError(w http.ResponseWriter, logger domain.Logger, err error) {
	appErr := apperrors.FromDomain(err)
	if apperrors.IsType(appErr, apperrors.ErrorTypeInternal) {
		logger.Error("Request failed", err)
	}
	writeError(w, apperrors.GetStatusCode(appErr), appErr.Message)
}
