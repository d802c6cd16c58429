package domain

import "time"

// Logger defines the interface for logging operations
type Logger interface {
	Info(msg string, fields ...interface{})
	Error(msg string, err error, fields ...interface{})
	Debug(msg string, fields ...interface{})
	Warn(msg string, fields ...interface{})
}

// Config defines the interface for configuration management
type Config interface {
	GetServerPort() string
	GetUploadPath() string
	GetMaxFileSize() int64
	GetLogLevel() string
	GetAllowedOrigins() []string

	GetJWTSecret() string
	GetSessionTTL() time.Duration

	GetDatabaseURL() string
	GetMigrationsPath() string
	GetSupabaseURL() string
	GetSupabaseKey() string
	GetSupabaseStorageBucket() string

	GetPDFTextBackend() string
	GetFallbackMode() FallbackMode
	GetOCRLanguages() []string
	GetOCRDPI() float64
	GetOCRWorkers() int
	GetTempDir() string

	GetTranslationProvider() string
	GetTranslationTimeout() time.Duration
	GetGoogleTranslateAPIKey() string
	GetVertexProjectID() string
	GetVertexLocation() string
	GetVertexModel() string
}
