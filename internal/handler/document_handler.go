// Package handler provides HTTP handlers for the API.
package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"pdf-translator/internal/domain"

	"github.com/gorilla/mux"
)

const multipartMemory = 32 << 20

var pdfMagic = []byte("%PDF-")

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	documentService domain.DocumentService
	maxFileSize     int64
	logger          domain.Logger
}

// NewDocumentHandler creates a new document handler
func NewDocumentHandler(documentService domain.DocumentService, maxFileSize int64, logger domain.Logger) *DocumentHandler {
	return &DocumentHandler{
		documentService: documentService,
		maxFileSize:     maxFileSize,
		logger:          logger,
	}
}

type extractionResponse struct {
	domain.ExtractedText
	Message string `json:"message"`
}

func newExtractionResponse(e domain.ExtractedText) extractionResponse {
	return extractionResponse{ExtractedText: e, Message: e.Message()}
}

type translationResponse struct {
	domain.TranslationResult
	Message string `json:"message"`
}

func newTranslationResponse(t domain.TranslationResult) translationResponse {
	return translationResponse{TranslationResult: t, Message: t.Message()}
}

type uploadResponse struct {
	Document   *domain.StoredDocument `json:"document"`
	Extraction extractionResponse     `json:"extraction"`
}

type pipelineResponse struct {
	State       domain.PipelineState `json:"state"`
	Extraction  extractionResponse   `json:"extraction"`
	Translation *translationResponse `json:"translation,omitempty"`
	Message     string               `json:"message"`
}

// UploadDocument stores a PDF sent as the pdf_file form field and returns its
// extracted text.
func (h *DocumentHandler) UploadDocument(w http.ResponseWriter, r *http.Request) {
	if h.maxFileSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxFileSize)
	}
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "File too large")
			return
		}
		writeError(w, http.StatusBadRequest, "Invalid file format")
		return
	}

	file, header, err := r.FormFile("pdf_file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid file format")
		return
	}
	defer file.Close()

	originalName := strings.TrimSpace(filepath.Base(header.Filename))
	if strings.ToLower(filepath.Ext(originalName)) != ".pdf" {
		writeError(w, http.StatusBadRequest, "Invalid file format")
		return
	}

	head := make([]byte, len(pdfMagic))
	if _, err := io.ReadFull(file, head); err != nil || !bytes.Equal(head, pdfMagic) {
		writeError(w, http.StatusBadRequest, "Invalid file format")
		return
	}
	if _, err := file.Seek(0, io.SeekStart); err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	doc, extraction, err := h.documentService.Upload(r.Context(), originalName, file)
	if err != nil {
		writeAppError(w, h.logger, err)
		return
	}

	writeJSON(w, http.StatusCreated, uploadResponse{
		Document:   doc,
		Extraction: newExtractionResponse(extraction),
	})
}

// GetText returns the extraction result of a stored document
func (h *DocumentHandler) GetText(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	result := h.documentService.Extract(r.Context(), filename)
	writeJSON(w, extractionStatusCode(result), newExtractionResponse(result))
}

// GetTranslation extracts a stored document and translates it into the lang
// query parameter.
func (h *DocumentHandler) GetTranslation(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]
	lang := targetLanguage(r)

	result := h.documentService.TranslateDocument(r.Context(), filename, lang)

	resp := pipelineResponse{
		State:      result.State,
		Extraction: newExtractionResponse(result.Extraction),
		Message:    result.Extraction.Message(),
	}
	if result.Translation != nil {
		t := newTranslationResponse(*result.Translation)
		resp.Translation = &t
		resp.Message = t.Message
	}
	writeJSON(w, extractionStatusCode(result.Extraction), resp)
}

// ServeUpload streams a stored PDF
func (h *DocumentHandler) ServeUpload(w http.ResponseWriter, r *http.Request) {
	filename := mux.Vars(r)["filename"]

	path, err := h.documentService.Path(filename)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidFile) {
			err = domain.ErrDocumentNotFound
		}
		writeAppError(w, h.logger, err)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}

func extractionStatusCode(e domain.ExtractedText) int {
	if e.Status == domain.ExtractionDocumentNotFound {
		return http.StatusNotFound
	}
	return http.StatusOK
}

func targetLanguage(r *http.Request) string {
	lang := strings.TrimSpace(r.URL.Query().Get("lang"))
	if lang == "" {
		return domain.DefaultTargetLanguage
	}
	return lang
}
