package service

import (
	"context"
	"errors"
	"strings"
	"testing"
)

func TestVertexTranslateProvider_Translate(t *testing.T) {
	var prompt string
	p := &VertexTranslateProvider{generate: func(ctx context.Context, in string) (string, error) {
		prompt = in
		return "  Bonjour le monde\n", nil
	}}

	got, err := p.Translate(context.Background(), "Hello world", "fr")
	if err != nil {
		t.Fatalf("Translate() error = %v", err)
	}
	if got.Text != "Bonjour le monde" {
		t.Errorf("Text = %q", got.Text)
	}
	if !strings.Contains(prompt, "French (fr)") || !strings.HasSuffix(prompt, "Hello world") {
		t.Errorf("prompt = %q", prompt)
	}
}

func TestVertexTranslateProvider_Errors(t *testing.T) {
	p := &VertexTranslateProvider{generate: func(ctx context.Context, in string) (string, error) {
		return "", errors.New("quota")
	}}
	if _, err := p.Translate(context.Background(), "Hello", "fr"); err == nil || err.Error() != "quota" {
		t.Errorf("error = %v", err)
	}

	p = &VertexTranslateProvider{generate: func(ctx context.Context, in string) (string, error) {
		return " \n", nil
	}}
	if _, err := p.Translate(context.Background(), "Hello", "fr"); err == nil {
		t.Errorf("expected error for empty model output")
	}

	if err := p.Close(); err != nil {
		t.Errorf("Close() without client error = %v", err)
	}
}

func TestTranslationPrompt_UnknownCode(t *testing.T) {
	got := translationPrompt("Hi", "tlh")
	if got != "Target language: tlh\n\nText:\nHi" {
		t.Fatalf("translationPrompt() = %q", got)
	}
}
