package service

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"pdf-translator/internal/domain"
)

func TestLocalDocumentStore_Save(t *testing.T) {
	root := filepath.Join(t.TempDir(), "uploads")
	store, err := NewLocalDocumentStore(root)
	if err != nil {
		t.Fatalf("NewLocalDocumentStore() error = %v", err)
	}

	first, err := store.Save(context.Background(), "My Report (1).pdf", strings.NewReader("%PDF-1.7"))
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	second, _ := store.Save(context.Background(), "My Report (1).pdf", strings.NewReader("%PDF-1.7"))

	if first.Filename == second.Filename {
		t.Fatalf("same stored name for two uploads: %s", first.Filename)
	}
	if !strings.HasSuffix(first.Filename, "_My_Report_1_.pdf") {
		t.Errorf("Filename = %q", first.Filename)
	}
	data, err := os.ReadFile(filepath.Join(root, first.Filename))
	if err != nil || string(data) != "%PDF-1.7" {
		t.Errorf("stored content = %q, err = %v", data, err)
	}
}

func TestLocalDocumentStore_Path(t *testing.T) {
	store, _ := NewLocalDocumentStore(t.TempDir())

	for _, name := range []string{"", ".", "..", "../x.pdf", "a/b.pdf", `a\b.pdf`} {
		if _, err := store.Path(name); err != domain.ErrInvalidFile {
			t.Errorf("Path(%q) error = %v, want ErrInvalidFile", name, err)
		}
	}
	if _, err := store.Path("abc_doc.pdf"); err != nil {
		t.Errorf("Path(valid) error = %v", err)
	}
}

func TestSanitizeFilename(t *testing.T) {
	tests := map[string]string{
		"report.pdf":             "report.pdf",
		"../../etc/passwd":       "passwd",
		`C:\Users\ada\notes.pdf`: "notes.pdf",
		"":                       "document.pdf",
		"...":                    "document.pdf",
		"résumé.pdf":             "r_sum_.pdf",
	}
	for in, want := range tests {
		if got := sanitizeFilename(in); got != want {
			t.Errorf("sanitizeFilename(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestNewStorageService(t *testing.T) {
	svc := NewStorageService("http://localhost:54321/", "test-key", "pdfs")
	if svc.baseURL != "http://localhost:54321" {
		t.Fatalf("expected base url to be set, got %s", svc.baseURL)
	}
	if svc.apiKey != "test-key" {
		t.Fatalf("expected api key to be set, got %s", svc.apiKey)
	}
	if svc.client == nil {
		t.Fatalf("expected http client to be initialized")
	}
}

func TestSupabaseStorage_Upload(t *testing.T) {
	var gotPath, gotAuth, gotKey, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAuth = r.Header.Get("Authorization")
		gotKey = r.Header.Get("apikey")
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	svc := NewStorageService(srv.URL, "key", "pdfs")
	if err := svc.Upload(context.Background(), "abc_doc.pdf", strings.NewReader("%PDF-")); err != nil {
		t.Fatalf("Upload() error = %v", err)
	}

	if gotPath != "/storage/v1/object/pdfs/abc_doc.pdf" {
		t.Errorf("path = %q", gotPath)
	}
	if gotAuth != "Bearer key" || gotKey != "key" {
		t.Errorf("auth headers = %q %q", gotAuth, gotKey)
	}
	if gotBody != "%PDF-" {
		t.Errorf("body = %q", gotBody)
	}
}

func TestSupabaseStorage_UploadError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bucket not found", http.StatusNotFound)
	}))
	defer srv.Close()

	svc := NewStorageService(srv.URL, "key", "missing")
	err := svc.Upload(context.Background(), "abc_doc.pdf", strings.NewReader("%PDF-"))
	if err == nil || !strings.Contains(err.Error(), "404") || !strings.Contains(err.Error(), "bucket not found") {
		t.Fatalf("Upload() error = %v", err)
	}
}
