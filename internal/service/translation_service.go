package service

import (
	"context"
	"fmt"
	"time"

	"pdf-translator/internal/domain"
)

// TranslationService wraps a provider so that no provider failure reaches the
// caller as an error.
type TranslationService struct {
	provider domain.TranslationProvider
	logger   domain.Logger
	timeout  time.Duration
}

// NewTranslationService creates a translation service. A zero timeout leaves
// provider calls bounded only by the caller's context.
func NewTranslationService(provider domain.TranslationProvider, logger domain.Logger, timeout time.Duration) *TranslationService {
	return &TranslationService{
		provider: provider,
		logger:   logger,
		timeout:  timeout,
	}
}

// Translate translates text into targetLanguage with the source language
// detected by the provider. targetLanguage is not checked against the catalog.
func (s *TranslationService) Translate(ctx context.Context, text string, targetLanguage string) domain.TranslationResult {
	result := domain.TranslationResult{TargetLanguage: targetLanguage}

	if text == "" {
		result.Status = domain.TranslationNoInput
		return result
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	translation, err := s.callProvider(ctx, text, targetLanguage)
	if err != nil {
		s.logger.Error("Translation failed", err, "provider", s.provider.Name(), "target", targetLanguage, "chars", len(text))
		result.Status = domain.TranslationFailed
		result.Reason = err.Error()
		return result
	}

	s.logger.Debug("Translated text", "provider", s.provider.Name(), "source", translation.SourceLanguage, "target", targetLanguage)
	result.Status = domain.TranslationTranslated
	result.Text = translation.Text
	result.SourceLanguage = translation.SourceLanguage
	return result
}

func (s *TranslationService) callProvider(ctx context.Context, text, target string) (t *domain.Translation, err error) {
	defer func() {
		if r := recover(); r != nil {
			t, err = nil, fmt.Errorf("provider panic: %v", r)
		}
	}()

	t, err = s.provider.Translate(ctx, text, target)
	if err == nil && t == nil {
		err = fmt.Errorf("provider %s returned no translation", s.provider.Name())
	}
	return t, err
}
