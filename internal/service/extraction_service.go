package service

import (
	"context"
	"fmt"
	"os"
	"strings"

	"pdf-translator/internal/domain"

	"golang.org/x/sync/errgroup"
)

// ExtractionOptions tunes the OCR fallback.
type ExtractionOptions struct {
	Mode    domain.FallbackMode
	Workers int
	TempDir string
}

// ExtractionService extracts text from PDFs: embedded text first, OCR when
// there is none.
type ExtractionService struct {
	pages      domain.PageTextReader
	rasterizer domain.PageRasterizer
	ocr        domain.OCREngine
	logger     domain.Logger
	opts       ExtractionOptions
}

// NewExtractionService creates a new extraction service
func NewExtractionService(
	pages domain.PageTextReader,
	rasterizer domain.PageRasterizer,
	ocr domain.OCREngine,
	logger domain.Logger,
	opts ExtractionOptions,
) *ExtractionService {
	if opts.Mode == "" {
		opts.Mode = domain.FallbackDocument
	}
	if opts.Workers < 1 {
		opts.Workers = 1
	}
	return &ExtractionService{
		pages:      pages,
		rasterizer: rasterizer,
		ocr:        ocr,
		logger:     logger,
		opts:       opts,
	}
}

// Extract never returns an error: every failure of the underlying libraries is
// reported through the Status of the result.
func (s *ExtractionService) Extract(ctx context.Context, path string) domain.ExtractedText {
	if !readableFile(path) {
		s.logger.Warn("PDF not found", "path", path)
		return domain.ExtractedText{Status: domain.ExtractionDocumentNotFound}
	}

	pageTexts, err := s.pages.PageTexts(ctx, path)
	if err != nil {
		// An unparseable text layer is treated as an empty one; rasterization
		// reports the failure if the document really is unreadable.
		s.logger.Warn("Embedded text extraction failed; falling back to OCR", "path", path, "error", err)
		pageTexts = nil
	}

	embedded := joinPages(pageTexts, true)
	if hasText(embedded) {
		if s.opts.Mode == domain.FallbackPage && hasBlankPage(pageTexts) {
			return s.extractPerPage(ctx, path, pageTexts)
		}
		s.logger.Debug("Embedded text found", "path", path, "pages", len(pageTexts))
		return domain.ExtractedText{
			Status:    domain.ExtractionOK,
			Text:      embedded,
			Method:    domain.MethodEmbedded,
			PageCount: len(pageTexts),
		}
	}

	s.logger.Info("No embedded text; running OCR", "path", path)
	ocrTexts, err := s.recognizeAll(ctx, path, nil)
	if err != nil {
		s.logger.Error("OCR failed", err, "path", path)
		return domain.ExtractedText{Status: domain.ExtractionOCRFailed, Reason: err.Error()}
	}

	text := joinPages(ocrTexts, false)
	if !hasText(text) {
		return domain.ExtractedText{Status: domain.ExtractionNoTextFound, PageCount: len(ocrTexts)}
	}
	return domain.ExtractedText{
		Status:    domain.ExtractionOK,
		Text:      text,
		Method:    domain.MethodOCR,
		PageCount: len(ocrTexts),
	}
}

// extractPerPage fills pages without embedded text with their OCR text. If
// OCR fails the embedded text is returned as is.
func (s *ExtractionService) extractPerPage(ctx context.Context, path string, pageTexts []string) domain.ExtractedText {
	wanted := make(map[int]bool)
	for i, t := range pageTexts {
		if !hasText(t) {
			wanted[i] = true
		}
	}

	embedded := domain.ExtractedText{
		Status:    domain.ExtractionOK,
		Text:      joinPages(pageTexts, true),
		Method:    domain.MethodEmbedded,
		PageCount: len(pageTexts),
	}

	ocrTexts, err := s.recognizeAll(ctx, path, wanted)
	if err != nil {
		s.logger.Error("Per-page OCR failed; keeping embedded text", err, "path", path)
		return embedded
	}

	merged := make([]string, len(pageTexts))
	copy(merged, pageTexts)
	recognized := false
	for i := range wanted {
		if i < len(ocrTexts) && hasText(ocrTexts[i]) {
			merged[i] = ocrTexts[i]
			recognized = true
		}
	}
	if !recognized {
		return embedded
	}

	return domain.ExtractedText{
		Status:    domain.ExtractionOK,
		Text:      joinPages(merged, true),
		Method:    domain.MethodMixed,
		PageCount: len(pageTexts),
	}
}

// recognizeAll rasterizes the document into a call-private directory and runs
// OCR on each page, or only on the pages in only when it is non-nil. The
// returned slice is indexed by page. The directory is always removed.
func (s *ExtractionService) recognizeAll(ctx context.Context, path string, only map[int]bool) (texts []string, err error) {
	defer func() {
		if r := recover(); r != nil {
			texts, err = nil, fmt.Errorf("ocr panic: %v", r)
		}
	}()

	dir, err := os.MkdirTemp(s.opts.TempDir, "ocr-*")
	if err != nil {
		return nil, fmt.Errorf("failed to create raster directory: %w", err)
	}
	defer func() {
		if rmErr := os.RemoveAll(dir); rmErr != nil {
			s.logger.Warn("Failed to remove raster directory", "dir", dir, "error", rmErr)
		}
	}()

	images, err := s.rasterizer.Rasterize(ctx, path, dir)
	if err != nil {
		return nil, err
	}

	texts = make([]string, len(images))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.Workers)
	for i, img := range images {
		if only != nil && !only[i] {
			continue
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("ocr panic on page %d: %v", i+1, r)
				}
			}()
			text, err := s.ocr.Recognize(gctx, img)
			if err != nil {
				return fmt.Errorf("page %d: %w", i+1, err)
			}
			texts[i] = text
			s.logger.Debug("OCR page done", "page", i+1, "total", len(images))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return texts, nil
}

// joinPages joins page texts with newlines in page order. With skipEmpty,
// pages with no text contribute nothing.
func joinPages(pages []string, skipEmpty bool) string {
	if !skipEmpty {
		return strings.Join(pages, "\n")
	}
	kept := make([]string, 0, len(pages))
	for _, p := range pages {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, "\n")
}

func hasText(s string) bool {
	return strings.TrimSpace(s) != ""
}

func hasBlankPage(pages []string) bool {
	for _, p := range pages {
		if !hasText(p) {
			return true
		}
	}
	return false
}

func readableFile(path string) bool {
	info, err := os.Stat(path)
	if err != nil || !info.Mode().IsRegular() {
		return false
	}
	f, err := os.Open(path)
	if err != nil {
		return false
	}
	_ = f.Close()
	return true
}
