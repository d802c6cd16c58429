package service

import (
	"context"
	"fmt"

	"pdf-translator/internal/domain"

	"cloud.google.com/go/translate"
	"golang.org/x/text/language"
	"google.golang.org/api/option"
)

// translateClient is the subset of *translate.Client the provider uses.
type translateClient interface {
	Translate(ctx context.Context, inputs []string, target language.Tag, opts *translate.Options) ([]translate.Translation, error)
	Close() error
}

// GoogleTranslateProvider calls the Cloud Translation API (v2).
type GoogleTranslateProvider struct {
	client translateClient
}

// NewGoogleTranslateProvider creates a provider authenticated with apiKey, or
// with application default credentials when apiKey is empty.
func NewGoogleTranslateProvider(ctx context.Context, apiKey string) (*GoogleTranslateProvider, error) {
	var opts []option.ClientOption
	if apiKey != "" {
		opts = append(opts, option.WithAPIKey(apiKey))
	}
	client, err := translate.NewClient(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create translate client: %w", err)
	}
	return &GoogleTranslateProvider{client: client}, nil
}

func (p *GoogleTranslateProvider) Name() string { return "google" }

// Translate leaves the source language unset so the API detects it.
func (p *GoogleTranslateProvider) Translate(ctx context.Context, text string, targetLanguage string) (*domain.Translation, error) {
	target, err := language.Parse(targetLanguage)
	if err != nil {
		return nil, fmt.Errorf("invalid target language %q: %w", targetLanguage, err)
	}

	resp, err := p.client.Translate(ctx, []string{text}, target, &translate.Options{Format: translate.Text})
	if err != nil {
		return nil, err
	}
	if len(resp) == 0 {
		return nil, fmt.Errorf("translate API returned no translations")
	}

	out := &domain.Translation{Text: resp[0].Text}
	if resp[0].Source != language.Und {
		out.SourceLanguage = resp[0].Source.String()
	}
	return out, nil
}

// Close releases the underlying client.
func (p *GoogleTranslateProvider) Close() error {
	return p.client.Close()
}
