package domain

import (
	"context"
	"io"
	"time"
)

// StoredDocument is an uploaded PDF kept in the upload directory.
type StoredDocument struct {
	Filename     string    `json:"filename"`
	OriginalName string    `json:"original_name"`
	Size         int64     `json:"size"`
	UploadedAt   time.Time `json:"uploaded_at"`
}

// DocumentStore keeps uploaded PDFs on local disk.
type DocumentStore interface {
	Save(ctx context.Context, originalName string, r io.Reader) (*StoredDocument, error)
	// Path resolves a stored filename to a filesystem path. It does not check
	// that the file exists.
	Path(filename string) (string, error)
}

// StorageMirror receives a copy of every upload.
type StorageMirror interface {
	Upload(ctx context.Context, path string, file io.Reader) error
}

// PipelineState names the states of an extract-then-translate run.
type PipelineState string

const (
	StateIdle              PipelineState = "idle"
	StateExtracting        PipelineState = "extracting"
	StateExtractedOK       PipelineState = "extracted_ok"
	StateExtractedEmpty    PipelineState = "extracted_empty"
	StateExtractFailed     PipelineState = "extract_failed"
	StateTranslating       PipelineState = "translating"
	StateTranslatedOK      PipelineState = "translated_ok"
	StateTranslationFailed PipelineState = "translation_failed"
	StateNoInput           PipelineState = "no_input"
)

// PipelineResult is the terminal state of a pipeline run with the results of
// every stage that ran.
type PipelineResult struct {
	State       PipelineState      `json:"state"`
	Extraction  ExtractedText      `json:"extraction"`
	Translation *TranslationResult `json:"translation,omitempty"`
}

// DocumentService defines the use-case operations for uploaded documents.
type DocumentService interface {
	Upload(ctx context.Context, originalName string, file io.Reader) (*StoredDocument, ExtractedText, error)
	Extract(ctx context.Context, filename string) ExtractedText
	TranslateDocument(ctx context.Context, filename, targetLanguage string) PipelineResult
	Path(filename string) (string, error)
}
