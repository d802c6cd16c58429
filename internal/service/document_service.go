package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"pdf-translator/internal/domain"
)

// DocumentService ties uploads to the extraction and translation engines.
type DocumentService struct {
	store      domain.DocumentStore
	mirror     domain.StorageMirror
	extractor  domain.Extractor
	translator domain.Translator
	logger     domain.Logger
}

// NewDocumentService creates a document service. mirror may be nil.
func NewDocumentService(
	store domain.DocumentStore,
	mirror domain.StorageMirror,
	extractor domain.Extractor,
	translator domain.Translator,
	logger domain.Logger,
) *DocumentService {
	return &DocumentService{
		store:      store,
		mirror:     mirror,
		extractor:  extractor,
		translator: translator,
		logger:     logger,
	}
}

// Upload stores the PDF and extracts its text.
func (s *DocumentService) Upload(ctx context.Context, originalName string, file io.Reader) (*domain.StoredDocument, domain.ExtractedText, error) {
	doc, err := s.store.Save(ctx, originalName, file)
	if err != nil {
		return nil, domain.ExtractedText{}, err
	}
	s.logger.Info("Document uploaded", "filename", doc.Filename, "size", doc.Size)

	path, err := s.store.Path(doc.Filename)
	if err != nil {
		return nil, domain.ExtractedText{}, err
	}

	if s.mirror != nil {
		s.mirrorUpload(ctx, doc.Filename, path)
	}

	result := s.extractor.Extract(ctx, path)
	s.logger.Info("Document extracted",
		"filename", doc.Filename,
		"status", result.Status,
		"method", result.Method,
		"page_count", result.PageCount,
	)
	return doc, result, nil
}

// Extract extracts a previously uploaded document.
func (s *DocumentService) Extract(ctx context.Context, filename string) domain.ExtractedText {
	path, err := s.store.Path(filename)
	if err != nil {
		return domain.ExtractedText{Status: domain.ExtractionDocumentNotFound}
	}
	return s.extractor.Extract(ctx, path)
}

// TranslateDocument extracts a stored document and translates the result.
// Failed extractions stop the pipeline; an empty one ends in NoInput without
// contacting the provider. Every state the run passes through is logged.
func (s *DocumentService) TranslateDocument(ctx context.Context, filename, targetLanguage string) domain.PipelineResult {
	s.enter(filename, domain.StateIdle)
	s.enter(filename, domain.StateExtracting)
	extraction := s.Extract(ctx, filename)

	result := domain.PipelineResult{Extraction: extraction}
	switch extraction.Status {
	case domain.ExtractionOK:
		result.State = domain.StateExtractedOK
	case domain.ExtractionNoTextFound:
		result.State = domain.StateExtractedEmpty
	default:
		result.State = domain.StateExtractFailed
	}
	s.enter(filename, result.State)
	if result.State == domain.StateExtractFailed {
		return result
	}

	s.enter(filename, domain.StateTranslating)
	translation := s.translator.Translate(ctx, extraction.Text, targetLanguage)
	result.Translation = &translation

	switch translation.Status {
	case domain.TranslationTranslated:
		result.State = domain.StateTranslatedOK
	case domain.TranslationNoInput:
		result.State = domain.StateNoInput
	default:
		result.State = domain.StateTranslationFailed
	}
	s.enter(filename, result.State)
	return result
}

func (s *DocumentService) enter(filename string, state domain.PipelineState) {
	s.logger.Debug("Pipeline state", "filename", filename, "state", state)
}

// Path resolves a stored document and reports ErrDocumentNotFound if it is not
// on disk.
func (s *DocumentService) Path(filename string) (string, error) {
	path, err := s.store.Path(filename)
	if err != nil {
		return "", err
	}
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", domain.ErrDocumentNotFound
		}
		return "", fmt.Errorf("failed to stat document: %w", err)
	}
	if !info.Mode().IsRegular() {
		return "", domain.ErrDocumentNotFound
	}
	return path, nil
}

// mirrorUpload copies the stored file to the mirror. Failures are logged only.
func (s *DocumentService) mirrorUpload(ctx context.Context, filename, path string) {
	f, err := os.Open(path)
	if err != nil {
		s.logger.Warn("Failed to open upload for mirroring", "filename", filename, "error", err)
		return
	}
	defer f.Close()

	if err := s.mirror.Upload(ctx, filename, f); err != nil {
		s.logger.Warn("Failed to mirror upload", "filename", filename, "error", err)
		return
	}
	s.logger.Debug("Upload mirrored", "filename", filename)
}
