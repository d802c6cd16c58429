package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"pdf-translator/internal/domain"
)

// AppConfig implements the domain.Config interface
type AppConfig struct {
	ServerPort     string
	UploadPath     string
	MaxFileSize    int64
	LogLevel       string
	AllowedOrigins []string

	JWTSecret  string
	SessionTTL time.Duration

	DatabaseURL           string
	MigrationsPath        string
	SupabaseURL           string
	SupabaseKey           string
	SupabaseStorageBucket string

	PDFTextBackend string
	FallbackMode   domain.FallbackMode
	OCRLanguages   []string
	OCRDPI         float64
	OCRWorkers     int
	TempDir        string

	TranslationProvider   string
	TranslationTimeout    time.Duration
	GoogleTranslateAPIKey string
	VertexProjectID       string
	VertexLocation        string
	VertexModel           string
}

// NewConfig creates a new configuration instance with default values
func NewConfig() domain.Config {
	return &AppConfig{
		// Cloud Run (and many PaaS) provide the listening port via PORT.
		// Keep SERVER_PORT for local/dev compatibility.
		ServerPort:  getEnvOrDefault("PORT", getEnvOrDefault("SERVER_PORT", "8080")),
		UploadPath:  getEnvOrDefault("UPLOAD_PATH", "./uploads"),
		MaxFileSize: getEnvInt64OrDefault("MAX_FILE_SIZE", 50*1024*1024), // 50MB default
		LogLevel:    getEnvOrDefault("LOG_LEVEL", "info"),
		AllowedOrigins: getEnvListOrDefault("ALLOWED_ORIGINS", []string{
			"http://localhost:5173",
			"http://localhost:3000",
		}),

		JWTSecret:  getEnvOrDefault("JWT_SECRET", ""),
		SessionTTL: getEnvDurationOrDefault("SESSION_TTL", 24*time.Hour),

		DatabaseURL:           getEnvOrDefault("DATABASE_URL", ""),
		MigrationsPath:        getEnvOrDefault("MIGRATIONS_PATH", "./migrations"),
		SupabaseURL:           getEnvOrDefault("SUPABASE_URL", ""),
		SupabaseKey:           getEnvOrDefault("SUPABASE_ANON_KEY", ""),
		SupabaseStorageBucket: getEnvOrDefault("SUPABASE_STORAGE_BUCKET", ""),

		PDFTextBackend: strings.ToLower(getEnvOrDefault("PDF_TEXT_BACKEND", "mupdf")),
		FallbackMode:   parseFallbackMode(getEnvOrDefault("PDF_FALLBACK_MODE", "document")),
		OCRLanguages:   getEnvListOrDefault("OCR_LANGUAGES", []string{"eng"}),
		OCRDPI:         getEnvFloatOrDefault("OCR_DPI", 200),
		OCRWorkers:     int(getEnvInt64OrDefault("OCR_WORKERS", 4)),
		TempDir:        getEnvOrDefault("TEMP_DIR", os.TempDir()),

		TranslationProvider:   strings.ToLower(getEnvOrDefault("TRANSLATION_PROVIDER", "google")),
		TranslationTimeout:    getEnvDurationOrDefault("TRANSLATION_TIMEOUT", 30*time.Second),
		GoogleTranslateAPIKey: getEnvOrDefault("GOOGLE_TRANSLATE_API_KEY", ""),
		VertexProjectID:       getEnvOrDefault("VERTEX_PROJECT_ID", ""),
		VertexLocation:        getEnvOrDefault("VERTEX_LOCATION", "us-central1"),
		VertexModel:           getEnvOrDefault("VERTEX_MODEL", "gemini-2.0-flash-001"),
	}
}

func (c *AppConfig) GetServerPort() string       { return c.ServerPort }
func (c *AppConfig) GetUploadPath() string       { return c.UploadPath }
func (c *AppConfig) GetMaxFileSize() int64       { return c.MaxFileSize }
func (c *AppConfig) GetLogLevel() string         { return c.LogLevel }
func (c *AppConfig) GetAllowedOrigins() []string { return c.AllowedOrigins }

func (c *AppConfig) GetJWTSecret() string         { return c.JWTSecret }
func (c *AppConfig) GetSessionTTL() time.Duration { return c.SessionTTL }

func (c *AppConfig) GetDatabaseURL() string           { return c.DatabaseURL }
func (c *AppConfig) GetMigrationsPath() string        { return c.MigrationsPath }
func (c *AppConfig) GetSupabaseURL() string           { return c.SupabaseURL }
func (c *AppConfig) GetSupabaseKey() string           { return c.SupabaseKey }
func (c *AppConfig) GetSupabaseStorageBucket() string { return c.SupabaseStorageBucket }

func (c *AppConfig) GetPDFTextBackend() string            { return c.PDFTextBackend }
func (c *AppConfig) GetFallbackMode() domain.FallbackMode { return c.FallbackMode }
func (c *AppConfig) GetOCRLanguages() []string            { return c.OCRLanguages }
func (c *AppConfig) GetOCRDPI() float64                   { return c.OCRDPI }
func (c *AppConfig) GetOCRWorkers() int                   { return c.OCRWorkers }
func (c *AppConfig) GetTempDir() string                   { return c.TempDir }

func (c *AppConfig) GetTranslationProvider() string       { return c.TranslationProvider }
func (c *AppConfig) GetTranslationTimeout() time.Duration { return c.TranslationTimeout }
func (c *AppConfig) GetGoogleTranslateAPIKey() string     { return c.GoogleTranslateAPIKey }
func (c *AppConfig) GetVertexProjectID() string           { return c.VertexProjectID }
func (c *AppConfig) GetVertexLocation() string            { return c.VertexLocation }
func (c *AppConfig) GetVertexModel() string               { return c.VertexModel }

// placeholderJWTSecret is the sample value from older .env templates.
const placeholderJWTSecret = "your-secret-key-change-in-production"

// ErrJWTSecretNotConfigured is returned when JWT_SECRET is missing or still
// set to the sample value.
var ErrJWTSecretNotConfigured = errors.New("JWT_SECRET must be set to a private value")

// ValidateJWTSecret rejects secrets anyone could use to sign session tokens.
func ValidateJWTSecret(secret string) error {
	secret = strings.TrimSpace(secret)
	if secret == "" || secret == placeholderJWTSecret {
		return ErrJWTSecretNotConfigured
	}
	return nil
}

func parseFallbackMode(v string) domain.FallbackMode {
	if strings.EqualFold(strings.TrimSpace(v), string(domain.FallbackPage)) {
		return domain.FallbackPage
	}
	return domain.FallbackDocument
}

// Helper functions for environment variable handling
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64OrDefault(key string, defaultValue int64) int64 {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.ParseInt(value, 10, 64); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if f, err := strconv.ParseFloat(value, 64); err == nil && f > 0 {
			return f
		}
	}
	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}

func getEnvListOrDefault(key string, defaultValue []string) []string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}
