package service

import (
	"context"
	"fmt"
	"strings"

	"pdf-translator/internal/domain"

	"cloud.google.com/go/vertexai/genai"
	"golang.org/x/oauth2/google"
)

const cloudPlatformScope = "https://www.googleapis.com/auth/cloud-platform"

// VertexTranslateProvider translates with a Gemini model on Vertex AI.
type VertexTranslateProvider struct {
	generate func(ctx context.Context, prompt string) (string, error)
	close    func() error
}

// NewVertexTranslateProvider creates a Gemini-backed provider. An empty
// projectID is taken from application default credentials.
func NewVertexTranslateProvider(ctx context.Context, projectID, location, modelName string) (*VertexTranslateProvider, error) {
	if projectID == "" {
		creds, err := google.FindDefaultCredentials(ctx, cloudPlatformScope)
		if err != nil {
			return nil, fmt.Errorf("failed to get default credentials: %w", err)
		}
		projectID = creds.ProjectID
	}
	if projectID == "" {
		return nil, fmt.Errorf("vertex project id not configured")
	}

	client, err := genai.NewClient(ctx, projectID, location)
	if err != nil {
		return nil, fmt.Errorf("failed to create vertex ai client: %w", err)
	}

	model := client.GenerativeModel(modelName)
	model.SetTemperature(0)
	model.SystemInstruction = &genai.Content{
		Parts: []genai.Part{genai.Text(
			"You are a translation engine. Detect the language of the input and translate it into the requested language. " +
				"Reply with the translation only, without quotes, notes or explanations. Preserve line breaks.",
		)},
	}

	return &VertexTranslateProvider{
		generate: func(ctx context.Context, prompt string) (string, error) {
			resp, err := model.GenerateContent(ctx, genai.Text(prompt))
			if err != nil {
				return "", fmt.Errorf("gemini call failed: %w", err)
			}
			if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
				return "", nil
			}
			var sb strings.Builder
			for _, part := range resp.Candidates[0].Content.Parts {
				if t, ok := part.(genai.Text); ok {
					sb.WriteString(string(t))
				}
			}
			return sb.String(), nil
		},
		close: client.Close,
	}, nil
}

func (p *VertexTranslateProvider) Name() string { return "vertex" }

func (p *VertexTranslateProvider) Translate(ctx context.Context, text string, targetLanguage string) (*domain.Translation, error) {
	out, err := p.generate(ctx, translationPrompt(text, targetLanguage))
	if err != nil {
		return nil, err
	}
	out = strings.TrimSpace(out)
	if out == "" {
		return nil, fmt.Errorf("empty response from model")
	}
	return &domain.Translation{Text: out}, nil
}

// Close releases the underlying client.
func (p *VertexTranslateProvider) Close() error {
	if p.close == nil {
		return nil
	}
	return p.close()
}

func translationPrompt(text, targetLanguage string) string {
	name := domain.LanguageName(targetLanguage)
	target := targetLanguage
	if name != targetLanguage {
		target = fmt.Sprintf("%s (%s)", name, targetLanguage)
	}
	return fmt.Sprintf("Target language: %s\n\nText:\n%s", target, text)
}
