package domain

import "context"

// TranslationStatus is the outcome of a single translation call.
type TranslationStatus string

const (
	TranslationTranslated TranslationStatus = "translated"
	TranslationNoInput    TranslationStatus = "no_input"
	TranslationFailed     TranslationStatus = "translation_failed"
)

// TranslationResult carries either translated text or a typed failure.
// A translation to the empty string has Status TranslationTranslated and an
// empty Text.
type TranslationResult struct {
	Status         TranslationStatus `json:"status"`
	Text           string            `json:"text"`
	Reason         string            `json:"reason,omitempty"`
	TargetLanguage string            `json:"target_language"`
	SourceLanguage string            `json:"source_language,omitempty"`
}

// OK reports whether the provider returned a translation.
func (r TranslationResult) OK() bool { return r.Status == TranslationTranslated }

// Message returns the text a user should see for this outcome.
func (r TranslationResult) Message() string {
	switch r.Status {
	case TranslationTranslated:
		return r.Text
	case TranslationNoInput:
		return "No text provided"
	case TranslationFailed:
		return "Translation Error: " + r.Reason
	default:
		return ""
	}
}

// Translation is what a provider returns on success.
type Translation struct {
	Text           string
	SourceLanguage string
}

// TranslationProvider is a remote machine translation backend. The source
// language is always detected by the provider.
type TranslationProvider interface {
	Name() string
	Translate(ctx context.Context, text string, targetLanguage string) (*Translation, error)
}

// Translator is the translation use case.
type Translator interface {
	Translate(ctx context.Context, text string, targetLanguage string) TranslationResult
}
