package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"pdf-translator/internal/domain"
)

func newTestRouter(authService *mockAuthService) http.Handler {
	logger := NewMockHandlerLogger()
	return NewRouter(
		NewAuthHandler(authService, time.Hour, logger),
		NewDocumentHandler(&mockDocumentService{extraction: domain.ExtractedText{Status: domain.ExtractionOK, Text: "Hello"}}, 1<<20, logger),
		NewTranslateHandler(&mockTranslator{}, logger),
		NewAuthMiddleware(authService, logger).Middleware,
		[]string{"http://localhost:5173"},
	)
}

func TestNewRouter_Health(t *testing.T) {
	router := newTestRouter(&mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"status":"ok"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_PublicRoutes(t *testing.T) {
	router := newTestRouter(&mockAuthService{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/languages", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
}

func TestNewRouter_ProtectedRoutesRequireAuth(t *testing.T) {
	router := newTestRouter(&mockAuthService{})

	paths := []struct {
		method string
		path   string
	}{
		{http.MethodGet, "/api/v1/auth/me"},
		{http.MethodPost, "/api/v1/auth/logout"},
		{http.MethodPost, "/api/v1/documents"},
		{http.MethodGet, "/api/v1/documents/abc.pdf/text"},
		{http.MethodGet, "/api/v1/documents/abc.pdf/translation"},
		{http.MethodGet, "/api/v1/translate?text=hi"},
		{http.MethodGet, "/uploads/abc.pdf"},
	}
	for _, p := range paths {
		req := httptest.NewRequest(p.method, p.path, nil)
		rr := httptest.NewRecorder()
		router.ServeHTTP(rr, req)

		if rr.Code != http.StatusUnauthorized {
			t.Errorf("%s %s: expected status %d, got %d", p.method, p.path, http.StatusUnauthorized, rr.Code)
		}
	}
}

func TestNewRouter_AuthenticatedRequest(t *testing.T) {
	router := newTestRouter(&mockAuthService{session: &domain.Session{UserID: "u1"}})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/documents/abc.pdf/text", nil)
	req.Header.Set("Authorization", "Bearer tok")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"message":"Hello"`) {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestNewRouter_CORS(t *testing.T) {
	router := newTestRouter(&mockAuthService{})

	req := httptest.NewRequest(http.MethodOptions, "/api/v1/languages", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected allowed origin header, got %q", got)
	}
}
