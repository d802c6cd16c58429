package service

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"pdf-translator/internal/domain"

	"github.com/google/uuid"
)

var unsafeNameChars = regexp.MustCompile(`[^A-Za-z0-9._-]+`)

// LocalDocumentStore keeps uploads in a single directory.
type LocalDocumentStore struct {
	root string
}

// NewLocalDocumentStore creates root if it does not exist.
func NewLocalDocumentStore(root string) (*LocalDocumentStore, error) {
	if err := os.MkdirAll(root, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalDocumentStore{root: root}, nil
}

// Save writes r under a fresh name derived from originalName.
func (s *LocalDocumentStore) Save(ctx context.Context, originalName string, r io.Reader) (*domain.StoredDocument, error) {
	filename := uuid.New().String() + "_" + sanitizeFilename(originalName)
	path := filepath.Join(s.root, filename)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("failed to create upload file: %w", err)
	}
	size, copyErr := io.Copy(f, r)
	closeErr := f.Close()
	if copyErr != nil || closeErr != nil {
		_ = os.Remove(path)
		if copyErr != nil {
			return nil, fmt.Errorf("failed to write upload: %w", copyErr)
		}
		return nil, fmt.Errorf("failed to write upload: %w", closeErr)
	}

	return &domain.StoredDocument{
		Filename:     filename,
		OriginalName: originalName,
		Size:         size,
		UploadedAt:   time.Now().UTC(),
	}, nil
}

// Path maps a stored filename back to disk. Names that could escape the
// upload directory are rejected.
func (s *LocalDocumentStore) Path(filename string) (string, error) {
	if filename == "" || filename == "." || filename == ".." ||
		strings.ContainsAny(filename, `/\`) || filepath.Base(filename) != filename {
		return "", domain.ErrInvalidFile
	}
	return filepath.Join(s.root, filename), nil
}

func sanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, `\`, "/"))
	name = unsafeNameChars.ReplaceAllString(name, "_")
	name = strings.Trim(name, "._")
	if name == "" {
		return "document.pdf"
	}
	return name
}

// SupabaseStorage copies uploads into a Supabase Storage bucket.
type SupabaseStorage struct {
	baseURL string
	apiKey  string
	bucket  string
	client  *http.Client
}

func NewStorageService(
	baseURL string,
	apiKey string,
	bucket string,
) *SupabaseStorage {
	return &SupabaseStorage{
		baseURL: strings.TrimRight(baseURL, "/"),
		apiKey:  apiKey,
		bucket:  bucket,
		client:  &http.Client{Timeout: 60 * time.Second},
	}
}

// Upload stores file at path inside the bucket.
func (s *SupabaseStorage) Upload(
	ctx context.Context,
	path string,
	file io.Reader,
) error {
	url := s.baseURL + "/storage/v1/object/" + s.bucket + "/" + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, file)
	if err != nil {
		return fmt.Errorf("failed to build storage request: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+s.apiKey)
	req.Header.Set("apikey", s.apiKey)
	req.Header.Set("Content-Type", "application/pdf")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("storage upload failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("storage upload failed: status %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
	}

	return nil
}
