package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"pdf-translator/internal/domain"
)

type MockLogger struct {
	mu       sync.Mutex
	messages []string
	fields   []map[string]interface{}
}

func NewMockLogger() *MockLogger {
	return &MockLogger{
		messages: []string{},
	}
}

func (m *MockLogger) record(line string, args ...interface{}) {
	kv := make(map[string]interface{}, len(args)/2)
	for i := 0; i+1 < len(args); i += 2 {
		if key, ok := args[i].(string); ok {
			kv[key] = args[i+1]
		}
	}
	m.mu.Lock()
	m.messages = append(m.messages, line)
	m.fields = append(m.fields, kv)
	m.mu.Unlock()
}

func (m *MockLogger) Info(msg string, args ...interface{}) {
	m.record("INFO: "+msg, args...)
}

func (m *MockLogger) Error(msg string, err error, args ...interface{}) {
	m.record("ERROR: "+msg+" - "+err.Error(), args...)
}

func (m *MockLogger) Debug(msg string, args ...interface{}) {
	m.record("DEBUG: "+msg, args...)
}

func (m *MockLogger) Warn(msg string, args ...interface{}) {
	m.record("WARN: "+msg, args...)
}

func (m *MockLogger) Messages() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.messages...)
}

// Values returns the value logged under key for every line equal to line.
func (m *MockLogger) Values(line, key string) []interface{} {
	m.mu.Lock()
	defer m.mu.Unlock()
	var values []interface{}
	for i, msg := range m.messages {
		if msg == line {
			values = append(values, m.fields[i][key])
		}
	}
	return values
}

// fakePageReader returns fixed page texts.
type fakePageReader struct {
	pages []string
	err   error
	calls int32
}

func (f *fakePageReader) PageTexts(ctx context.Context, path string) ([]string, error) {
	atomic.AddInt32(&f.calls, 1)
	if f.err != nil {
		return nil, f.err
	}
	return f.pages, nil
}

// fakeRasterizer writes one placeholder image per page into dir.
type fakeRasterizer struct {
	pages int
	err   error

	mu    sync.Mutex
	dir   string
	calls int
}

func (f *fakeRasterizer) Rasterize(ctx context.Context, path string, dir string) ([]string, error) {
	f.mu.Lock()
	f.dir = dir
	f.calls++
	f.mu.Unlock()

	if f.err != nil {
		return nil, f.err
	}
	images := make([]string, f.pages)
	for i := range images {
		images[i] = filepath.Join(dir, fmt.Sprintf("page-%04d.png", i+1))
		if err := os.WriteFile(images[i], []byte("png"), 0o600); err != nil {
			return nil, err
		}
	}
	return images, nil
}

func (f *fakeRasterizer) Dir() string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dir
}

func (f *fakeRasterizer) Calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.calls
}

// fakeOCR recognises images by file name. Earlier pages are delayed longer so
// that completion order is the reverse of page order.
type fakeOCR struct {
	texts   map[string]string
	errs    map[string]error
	panics  map[string]bool
	stagger time.Duration

	calls int32
}

func (f *fakeOCR) Recognize(ctx context.Context, imagePath string) (string, error) {
	atomic.AddInt32(&f.calls, 1)
	name := filepath.Base(imagePath)

	if f.stagger > 0 {
		var page int
		_, _ = fmt.Sscanf(name, "page-%04d.png", &page)
		time.Sleep(time.Duration(10-page) * f.stagger)
	}
	if f.panics[name] {
		panic("tesseract crashed")
	}
	if err := f.errs[name]; err != nil {
		return "", err
	}
	return f.texts[name], nil
}

func (f *fakeOCR) Calls() int {
	return int(atomic.LoadInt32(&f.calls))
}

// fakeProvider is a scripted translation backend.
type fakeProvider struct {
	translate func(ctx context.Context, text, target string) (*domain.Translation, error)
	calls     int32
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) Translate(ctx context.Context, text string, targetLanguage string) (*domain.Translation, error) {
	atomic.AddInt32(&f.calls, 1)
	return f.translate(ctx, text, targetLanguage)
}

func (f *fakeProvider) Calls() int {
	return int(atomic.LoadInt32(&f.calls))
}

func echoProvider(prefix string) *fakeProvider {
	return &fakeProvider{translate: func(ctx context.Context, text, target string) (*domain.Translation, error) {
		return &domain.Translation{Text: prefix + text, SourceLanguage: "en"}, nil
	}}
}

// writePDF creates a file the extractor can open. The fakes never parse it.
func writePDF(dir, name string) string {
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte("%PDF-1.4\n%%EOF\n"), 0o644); err != nil {
		panic(err)
	}
	return path
}
