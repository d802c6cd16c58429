package handler

import (
	"context"
	"io"

	"pdf-translator/internal/domain"
)

// mockLogger records error messages so tests can check what was logged.
type mockLogger struct {
	errors []string
}

func NewMockHandlerLogger() *mockLogger {
	return &mockLogger{}
}

func (l *mockLogger) Info(msg string, fields ...interface{})  {}
func (l *mockLogger) Debug(msg string, fields ...interface{}) {}
func (l *mockLogger) Warn(msg string, fields ...interface{})  {}
func (l *mockLogger) Error(msg string, err error, fields ...interface{}) {
	l.errors = append(l.errors, msg+": "+err.Error())
}

type mockAuthService struct {
	user    *domain.User
	token   string
	session *domain.Session
	err     error

	lastToken   string
	loggedOut   []string
	registerArg [3]string
}

func (m *mockAuthService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	m.registerArg = [3]string{name, email, password}
	if m.err != nil {
		return nil, m.err
	}
	return m.user, nil
}

func (m *mockAuthService) Authenticate(ctx context.Context, email, password string) (*domain.User, string, error) {
	if m.err != nil {
		return nil, "", m.err
	}
	return m.user, m.token, nil
}

func (m *mockAuthService) ValidateToken(token string) (*domain.Session, error) {
	m.lastToken = token
	if m.err != nil {
		return nil, m.err
	}
	return m.session, nil
}

func (m *mockAuthService) Logout(token string) error {
	m.loggedOut = append(m.loggedOut, token)
	return nil
}

type mockDocumentService struct {
	doc        *domain.StoredDocument
	extraction domain.ExtractedText
	pipeline   domain.PipelineResult
	path       string
	err        error

	uploadedName    string
	uploadedContent []byte
	lastFilename    string
	lastLanguage    string
}

func (m *mockDocumentService) Upload(ctx context.Context, originalName string, file io.Reader) (*domain.StoredDocument, domain.ExtractedText, error) {
	m.uploadedName = originalName
	m.uploadedContent, _ = io.ReadAll(file)
	if m.err != nil {
		return nil, domain.ExtractedText{}, m.err
	}
	return m.doc, m.extraction, nil
}

func (m *mockDocumentService) Extract(ctx context.Context, filename string) domain.ExtractedText {
	m.lastFilename = filename
	return m.extraction
}

func (m *mockDocumentService) TranslateDocument(ctx context.Context, filename, targetLanguage string) domain.PipelineResult {
	m.lastFilename = filename
	m.lastLanguage = targetLanguage
	return m.pipeline
}

func (m *mockDocumentService) Path(filename string) (string, error) {
	m.lastFilename = filename
	if m.err != nil {
		return "", m.err
	}
	return m.path, nil
}

type mockTranslator struct {
	result   domain.TranslationResult
	lastText string
	lastLang string
}

func (m *mockTranslator) Translate(ctx context.Context, text string, targetLanguage string) domain.TranslationResult {
	m.lastText = text
	m.lastLang = targetLanguage
	r := m.result
	r.TargetLanguage = targetLanguage
	return r
}
