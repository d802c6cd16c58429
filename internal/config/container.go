package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"pdf-translator/internal/domain"
	"pdf-translator/internal/infra/supabase"
	"pdf-translator/internal/repository"
	"pdf-translator/internal/service"
	"pdf-translator/pkg/logger"

	"github.com/jmoiron/sqlx"
)

// Container holds all application dependencies
type Container struct {
	Config             domain.Config
	Logger             domain.Logger
	SupabaseClient     domain.SupabaseClient
	UserRepository     domain.UserRepository
	SessionManager     domain.SessionManager
	AuthService        domain.AuthService
	Extractor          domain.Extractor
	TranslationService domain.Translator
	DocumentService    domain.DocumentService

	db       *sqlx.DB
	provider domain.TranslationProvider
}

// NewContainer creates a new dependency injection container. Close must be
// called to release the database pool and provider clients.
func NewContainer(ctx context.Context) (*Container, error) {
	cfg := NewConfig()
	if err := ValidateJWTSecret(cfg.GetJWTSecret()); err != nil {
		return nil, err
	}
	baseLogger := logger.NewLoggerWithWriter(cfg.GetLogLevel(), os.Stdout)

	c := &Container{
		Config: cfg,
		Logger: baseLogger,
	}

	if cfg.GetSupabaseURL() != "" && cfg.GetSupabaseKey() != "" {
		client := supabase.NewClient(cfg, baseLogger.Named("supabase"))
		if err := client.Initialize(); err != nil {
			return nil, err
		}
		c.SupabaseClient = client
	}

	users, err := c.newUserRepository(baseLogger.Named("users"))
	if err != nil {
		return nil, err
	}
	c.UserRepository = users

	c.SessionManager = service.NewJWTSessionManager(cfg.GetJWTSecret(), cfg.GetSessionTTL())
	c.AuthService = service.NewAuthService(users, c.SessionManager, baseLogger.Named("auth"))

	c.Extractor = newExtractor(cfg, baseLogger.Named("extraction"))

	provider, err := newTranslationProvider(ctx, cfg)
	if err != nil {
		c.Close()
		return nil, err
	}
	c.provider = provider
	c.TranslationService = service.NewTranslationService(provider, baseLogger.Named("translation"), cfg.GetTranslationTimeout())

	store, err := service.NewLocalDocumentStore(cfg.GetUploadPath())
	if err != nil {
		c.Close()
		return nil, err
	}
	var mirror domain.StorageMirror
	if c.SupabaseClient != nil && cfg.GetSupabaseStorageBucket() != "" {
		mirror = service.NewStorageService(c.SupabaseClient.BaseURL(), c.SupabaseClient.APIKey(), cfg.GetSupabaseStorageBucket())
	}
	c.DocumentService = service.NewDocumentService(store, mirror, c.Extractor, c.TranslationService, baseLogger.Named("documents"))

	baseLogger.Info("Container initialized",
		"text_backend", cfg.GetPDFTextBackend(),
		"fallback_mode", cfg.GetFallbackMode(),
		"translation_provider", provider.Name(),
	)
	return c, nil
}

// newUserRepository prefers Postgres, then Supabase, then process memory.
func (c *Container) newUserRepository(log domain.Logger) (domain.UserRepository, error) {
	if url := c.Config.GetDatabaseURL(); url != "" {
		db, err := repository.OpenPostgres(url)
		if err != nil {
			return nil, err
		}
		if err := repository.RunMigrations(db, c.Config.GetMigrationsPath(), log); err != nil {
			_ = db.Close()
			return nil, err
		}
		c.db = db
		log.Info("Using Postgres user store")
		return repository.NewPostgresUserRepository(db), nil
	}

	if c.SupabaseClient != nil {
		log.Info("Using Supabase user store")
		return repository.NewSupabaseUserRepository(c.SupabaseClient, log), nil
	}

	log.Warn("No database configured, accounts are kept in memory")
	return repository.NewMemoryUserRepository(), nil
}

func newExtractor(cfg domain.Config, log *logger.AppLogger) *service.ExtractionService {
	processor := service.NewPDFProcessor(log.Named("mupdf"), cfg.GetOCRDPI())

	var pages domain.PageTextReader = processor
	if cfg.GetPDFTextBackend() == "pure" {
		pages = service.NewPurePDFTextReader(log.Named("pdf"))
	}

	return service.NewExtractionService(
		pages,
		processor,
		service.NewTesseractEngine(cfg.GetOCRLanguages()),
		log,
		service.ExtractionOptions{
			Mode:    cfg.GetFallbackMode(),
			Workers: cfg.GetOCRWorkers(),
			TempDir: cfg.GetTempDir(),
		},
	)
}

func newTranslationProvider(ctx context.Context, cfg domain.Config) (domain.TranslationProvider, error) {
	switch cfg.GetTranslationProvider() {
	case "google":
		return service.NewGoogleTranslateProvider(ctx, cfg.GetGoogleTranslateAPIKey())
	case "vertex":
		return service.NewVertexTranslateProvider(ctx, cfg.GetVertexProjectID(), cfg.GetVertexLocation(), cfg.GetVertexModel())
	default:
		return nil, fmt.Errorf("unknown translation provider %q", cfg.GetTranslationProvider())
	}
}

// Close releases everything the container opened.
func (c *Container) Close() error {
	var errs []error
	if closer, ok := c.provider.(io.Closer); ok {
		errs = append(errs, closer.Close())
	}
	if c.db != nil {
		errs = append(errs, c.db.Close())
	}
	if c.SessionManager != nil {
		c.SessionManager.Close()
	}
	return errors.Join(errs...)
}
