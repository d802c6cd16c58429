package handler

import (
	"net/http"

	"pdf-translator/internal/domain"
)

// TranslateHandler serves free-text translation and the language catalog
type TranslateHandler struct {
	translator domain.Translator
	logger     domain.Logger
}

func NewTranslateHandler(translator domain.Translator, logger domain.Logger) *TranslateHandler {
	return &TranslateHandler{
		translator: translator,
		logger:     logger,
	}
}

// Translate translates the text query parameter, typically a selected word or
// phrase.
func (h *TranslateHandler) Translate(w http.ResponseWriter, r *http.Request) {
	text := r.URL.Query().Get("text")
	result := h.translator.Translate(r.Context(), text, targetLanguage(r))
	writeJSON(w, http.StatusOK, newTranslationResponse(result))
}

// ListLanguages returns the supported target languages sorted by name
func (h *TranslateHandler) ListLanguages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"default":   domain.DefaultTargetLanguage,
		"languages": domain.SortedLanguages(),
	})
}
