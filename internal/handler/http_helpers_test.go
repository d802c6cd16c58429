package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"pdf-translator/internal/domain"
)

func TestWriteError(t *testing.T) {
	rr := httptest.NewRecorder()
	writeError(rr, http.StatusTeapot, "nope")

	if rr.Code != http.StatusTeapot {
		t.Fatalf("expected status %d, got %d", http.StatusTeapot, rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Fatalf("expected content type application/json, got %s", ct)
	}
	if strings.TrimSpace(rr.Body.String()) != `{"error":"nope"}` {
		t.Fatalf("unexpected response body: %s", rr.Body.String())
	}
}

func TestWriteAppError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantBody   string
		wantLogged bool
	}{
		{"not found", fmt.Errorf("lookup: %w", domain.ErrDocumentNotFound), http.StatusNotFound, "Error: PDF file not found", false},
		{"invalid file", domain.ErrInvalidFile, http.StatusBadRequest, "Invalid file format", false},
		{"conflict", domain.ErrUserAlreadyExists, http.StatusConflict, "User already exists", false},
		{"internal", errors.New("disk on fire"), http.StatusInternalServerError, "Internal server error", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			logger := NewMockHandlerLogger()
			writeAppError(rr, logger, tt.err)

			if rr.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, rr.Code)
			}
			if !strings.Contains(rr.Body.String(), tt.wantBody) {
				t.Fatalf("unexpected response body: %s", rr.Body.String())
			}
			if strings.Contains(rr.Body.String(), "disk on fire") {
				t.Fatalf("internal cause leaked: %s", rr.Body.String())
			}
			if logged := len(logger.errors) > 0; logged != tt.wantLogged {
				t.Fatalf("logged = %v, want %v (%v)", logged, tt.wantLogged, logger.errors)
			}
		})
	}
}
