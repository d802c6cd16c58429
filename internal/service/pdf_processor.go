package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"pdf-translator/internal/domain"

	"github.com/gen2brain/go-fitz"
)

const defaultPageTimeout = 90 * time.Second

// PDFProcessor reads PDFs through MuPDF. It provides both the embedded text
// layer and page rasterization for OCR.
type PDFProcessor struct {
	logger      domain.Logger
	dpi         float64
	pageTimeout time.Duration
}

// NewPDFProcessor creates a new PDF processor rendering pages at dpi
func NewPDFProcessor(logger domain.Logger, dpi float64) *PDFProcessor {
	if dpi <= 0 {
		dpi = 200
	}
	return &PDFProcessor{
		logger:      logger,
		dpi:         dpi,
		pageTimeout: defaultPageTimeout,
	}
}

// PageTexts returns the embedded text of every page. Pages without text
// yield "".
func (p *PDFProcessor) PageTexts(ctx context.Context, path string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	// A page that times out keeps running in the background; the document is
	// closed by that goroutine instead.
	closeDoc := true
	defer func() {
		if closeDoc {
			_ = doc.Close()
		}
	}()

	type pageResult struct {
		text string
		err  error
	}

	numPages := doc.NumPage()
	texts := make([]string, 0, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		p.logger.Debug("PDF processing page", "page", pageNum+1, "total", numPages)

		resultCh := make(chan pageResult, 1)
		go func(idx int) {
			t, e := doc.Text(idx)
			resultCh <- pageResult{text: t, err: e}
		}(pageNum)

		var res pageResult
		select {
		case res = <-resultCh:
		case <-time.After(p.pageTimeout):
			closeDoc = false
			go func() { <-resultCh; _ = doc.Close() }()
			return nil, fmt.Errorf("page %d: text extraction timed out after %v", pageNum+1, p.pageTimeout)
		case <-ctx.Done():
			closeDoc = false
			go func() { <-resultCh; _ = doc.Close() }()
			return nil, ctx.Err()
		}

		if res.err != nil {
			p.logger.Warn("Failed to extract text from page", "page_num", pageNum+1, "total", numPages, "error", res.err)
			texts = append(texts, "")
			continue
		}
		texts = append(texts, strings.TrimSpace(sanitizeText(res.text)))
	}

	return texts, nil
}

// Rasterize renders every page to a PNG file in dir.
func (p *PDFProcessor) Rasterize(ctx context.Context, path string, dir string) ([]string, error) {
	doc, err := fitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer doc.Close()

	numPages := doc.NumPage()
	images := make([]string, 0, numPages)
	for pageNum := 0; pageNum < numPages; pageNum++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		png, err := doc.ImagePNG(pageNum, p.dpi)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", pageNum+1, err)
		}
		out := filepath.Join(dir, fmt.Sprintf("page-%04d.png", pageNum+1))
		if err := os.WriteFile(out, png, 0o600); err != nil {
			return nil, fmt.Errorf("failed to write page %d image: %w", pageNum+1, err)
		}
		images = append(images, out)
	}

	p.logger.Debug("PDF rasterized", "path", path, "pages", numPages, "dpi", p.dpi)
	return images, nil
}

// sanitizeText drops NUL and other control characters that break JSON
// consumers, keeping tabs and line breaks.
func sanitizeText(text string) string {
	var result strings.Builder
	result.Grow(len(text))

	for _, r := range text {
		switch {
		case r == '\t' || r == '\n' || r == '\r':
			result.WriteRune(r)
		case r < 0x20 || r == 0x7F:
			// control character
		case r == '\uFFFD':
			// undecodable glyph or invalid UTF-8
		default:
			result.WriteRune(r)
		}
	}

	return result.String()
}
