package domain

import "context"

// ExtractionStatus is the outcome of a single extraction call.
type ExtractionStatus string

const (
	ExtractionOK               ExtractionStatus = "ok"
	ExtractionNoTextFound      ExtractionStatus = "no_text_found"
	ExtractionDocumentNotFound ExtractionStatus = "document_not_found"
	ExtractionOCRFailed        ExtractionStatus = "ocr_failed"
)

// ExtractionMethod records which tier produced the text of an ok result.
type ExtractionMethod string

const (
	MethodEmbedded ExtractionMethod = "embedded"
	MethodOCR      ExtractionMethod = "ocr"
	// MethodMixed marks per-page fallback output combining both tiers.
	MethodMixed ExtractionMethod = "embedded+ocr"
)

// FallbackMode selects when OCR is attempted.
type FallbackMode string

const (
	// FallbackDocument runs OCR only when no page of the document has embedded text.
	FallbackDocument FallbackMode = "document"
	// FallbackPage runs OCR on each page that has no embedded text.
	FallbackPage FallbackMode = "page"
)

// ExtractedText is the result of extracting a document. Status is always set;
// Text is only meaningful when Status is ExtractionOK and Reason only when it
// is ExtractionOCRFailed.
type ExtractedText struct {
	Status    ExtractionStatus `json:"status"`
	Text      string           `json:"text,omitempty"`
	Reason    string           `json:"reason,omitempty"`
	Method    ExtractionMethod `json:"method,omitempty"`
	PageCount int              `json:"page_count,omitempty"`
}

// OK reports whether the extraction produced text.
func (e ExtractedText) OK() bool { return e.Status == ExtractionOK }

// Message returns the text a user should see for this outcome.
func (e ExtractedText) Message() string {
	switch e.Status {
	case ExtractionOK:
		return e.Text
	case ExtractionNoTextFound:
		return "No readable text found in the PDF (even with OCR)."
	case ExtractionDocumentNotFound:
		return "Error: PDF file not found"
	case ExtractionOCRFailed:
		return "OCR Error: " + e.Reason
	default:
		return ""
	}
}

// PageTextReader returns the embedded text of every page of a PDF, indexed by
// zero-based page number. A page without embedded text yields "".
type PageTextReader interface {
	PageTexts(ctx context.Context, path string) ([]string, error)
}

// PageRasterizer renders every page of a PDF into an image file inside dir and
// returns the image paths in page order.
type PageRasterizer interface {
	Rasterize(ctx context.Context, path string, dir string) ([]string, error)
}

// OCREngine recognises the text in a single image file.
type OCREngine interface {
	Recognize(ctx context.Context, imagePath string) (string, error)
}

// Extractor turns a document reference into text.
type Extractor interface {
	Extract(ctx context.Context, path string) ExtractedText
}
