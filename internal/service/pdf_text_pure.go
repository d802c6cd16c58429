package service

import (
	"context"
	"fmt"
	"strings"

	"pdf-translator/internal/domain"

	"github.com/ledongthuc/pdf"
)

// PurePDFTextReader reads the embedded text layer with a pure Go parser, for
// deployments without MuPDF.
type PurePDFTextReader struct {
	logger domain.Logger
}

func NewPurePDFTextReader(logger domain.Logger) *PurePDFTextReader {
	return &PurePDFTextReader{logger: logger}
}

// PageTexts returns the embedded text of every page. Pages that are missing
// or fail to decode yield "".
func (r *PurePDFTextReader) PageTexts(ctx context.Context, path string) (texts []string, err error) {
	// The parser panics on some malformed cross-reference tables.
	defer func() {
		if rec := recover(); rec != nil {
			texts, err = nil, fmt.Errorf("failed to parse PDF: %v", rec)
		}
	}()

	f, reader, err := pdf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}
	defer f.Close()

	pageCount := reader.NumPage()
	texts = make([]string, 0, pageCount)
	for i := 1; i <= pageCount; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		page := reader.Page(i)
		if page.V.IsNull() {
			texts = append(texts, "")
			continue
		}

		text, err := page.GetPlainText(nil)
		if err != nil {
			// Image-only pages commonly have no decodable text.
			r.logger.Warn("Failed to extract text from page", "page_num", i, "total", pageCount, "error", err)
			texts = append(texts, "")
			continue
		}
		texts = append(texts, strings.TrimSpace(sanitizeText(text)))
	}

	return texts, nil
}
