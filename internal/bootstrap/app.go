package bootstrap

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/gin-gonic/gin"

	"stonkie-backend/internal/analysis"
	"stonkie-backend/internal/faq"
	"stonkie-backend/internal/llm"
	"stonkie-backend/internal/llm/gemini"
	"stonkie-backend/internal/llm/openai"
	"stonkie-backend/internal/shared/config"
	"stonkie-backend/internal/shared/server"
	"stonkie-backend/internal/shared/storage/db"
	"stonkie-backend/internal/shared/storage/object"
	gcsstore "stonkie-backend/internal/shared/storage/object/gcs"
	localstore "stonkie-backend/internal/shared/storage/object/local"
	s3store "stonkie-backend/internal/shared/storage/object/s3"
	"stonkie-backend/internal/shared/telemetry"
	"stonkie-backend/internal/statements"
)

const defaultOpenAIModel = "gpt-4o-mini"

// App holds shared dependencies and the configured router.
type App struct {
	Config     config.Config
	Router     *gin.Engine
	DB         *sql.DB
	Statements object.BlobStore
	Artifacts  object.BlobStore
	Generator  llm.Generator

	StatementsService *statements.Service
	AnalysisService   *analysis.Service
	FAQService        *faq.Service

	StatementsHandler *statements.Handler
	AnalysisHandler   *analysis.Handler
	FAQHandler        *faq.Handler
}

// Option overrides a dependency chosen from configuration.
type Option func(*options)

type options struct {
	generator llm.Generator
}

// WithGenerator replaces the configured text-generation provider.
func WithGenerator(g llm.Generator) Option {
	return func(o *options) { o.generator = g }
}

// Build prepares shared dependencies and wires routes.
func Build(cfg config.Config, opts ...Option) (*App, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if strings.TrimSpace(cfg.Env) == "" {
		cfg.Env = "dev"
	}
	if strings.TrimSpace(cfg.ObjectStoreType) == "" {
		cfg.ObjectStoreType = config.StoreLocal
	}
	ctx := context.Background()

	sqlDB, err := buildDB(ctx, cfg)
	if err != nil {
		return nil, err
	}

	stmtStore, err := buildStatementStore(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gen := o.generator
	if gen == nil {
		gen = buildGenerator(ctx, cfg)
	}

	app := &App{
		Config:     cfg,
		DB:         sqlDB,
		Statements: stmtStore,
		Artifacts:  buildArtifactStore(cfg, stmtStore),
		Generator:  gen,
	}
	if err := buildServices(app); err != nil {
		return nil, err
	}

	app.Router = server.NewRouter(server.RouterDeps{
		Config:            app.Config,
		StatementsHandler: app.StatementsHandler,
		AnalysisHandler:   app.AnalysisHandler,
		FAQHandler:        app.FAQHandler,
	})
	return app, nil
}

func buildDB(ctx context.Context, cfg config.Config) (*sql.DB, error) {
	if strings.TrimSpace(cfg.DatabaseURL) == "" {
		telemetry.Info("bootstrap.memory_repo", map[string]any{"reason": "DATABASE_URL empty"})
		return nil, nil
	}

	sqlDB, err := db.Connect(ctx, cfg.DatabaseURL, db.OptionsFromEnv(db.DefaultServerOptions()))
	if err == nil {
		err = db.RunMigrations(ctx, sqlDB)
		if err != nil {
			sqlDB.Close()
		}
	}
	if err != nil {
		if isDevLike(cfg.Env) {
			telemetry.Warn("bootstrap.memory_repo", map[string]any{"reason": "database unavailable", "error": err})
			return nil, nil
		}
		return nil, err
	}
	return sqlDB, nil
}

// buildStatementStore returns a nil store when GCS credentials are absent or
// unusable so statement reads degrade to empty results.
func buildStatementStore(ctx context.Context, cfg config.Config) (object.BlobStore, error) {
	switch cfg.ObjectStoreType {
	case config.StoreLocal:
		return localstore.New(cfg.LocalStoreDir), nil
	case config.StoreS3:
		bucket := cfg.S3Bucket
		if strings.TrimSpace(bucket) == "" {
			bucket = cfg.StatementsBucket
		}
		store, err := s3store.New(ctx, cfg.AWSRegion, bucket, cfg.S3Prefix)
		if err != nil {
			return nil, fmt.Errorf("s3 statement store: %w", err)
		}
		return store, nil
	default:
		store, err := gcsstore.New(ctx, cfg.StatementsBucket, cfg.GoogleCredentialsB64)
		if err != nil {
			fields := map[string]any{"bucket": cfg.StatementsBucket}
			if !errors.Is(err, gcsstore.ErrNoCredentials) {
				fields["error"] = err
			}
			telemetry.Warn("bootstrap.statement_store_unconfigured", fields)
			return nil, nil
		}
		return store, nil
	}
}

func buildArtifactStore(cfg config.Config, statementStore object.BlobStore) object.BlobStore {
	if cfg.ArtifactStoreType == "same" && statementStore != nil {
		return statementStore
	}
	return localstore.New(cfg.ArtifactDir)
}

func buildGenerator(ctx context.Context, cfg config.Config) llm.Generator {
	switch cfg.LLMProvider {
	case "openai":
		model := cfg.LLMModel
		if strings.HasPrefix(strings.ToLower(model), "gemini") {
			model = defaultOpenAIModel
		}
		client, err := openai.NewClient(cfg.OpenAIAPIKey, model, cfg.LLMTimeout)
		if err != nil {
			telemetry.Warn("bootstrap.llm_unconfigured", map[string]any{"provider": "openai", "error": err})
			return llm.PlaceholderGenerator{}
		}
		return client
	default:
		gen, err := gemini.New(ctx, cfg.GeminiAPIKey, cfg.LLMModel)
		if err != nil {
			telemetry.Warn("bootstrap.llm_unconfigured", map[string]any{"provider": "gemini", "error": err})
			return llm.PlaceholderGenerator{}
		}
		return gen
	}
}

func buildServices(app *App) error {
	var repo analysis.Repo
	if app.DB != nil {
		repo = &analysis.PGRepo{DB: app.DB}
	} else {
		repo = analysis.NewMemoryRepo()
	}

	fetcher := statements.NewFetcher(app.Statements)
	invoker := &analysis.Invoker{
		Generator: app.Generator,
		Artifacts: app.Artifacts,
		Timeout:   app.Config.LLMTimeout,
	}

	app.StatementsService = statements.NewService(fetcher)
	app.AnalysisService = analysis.NewService(fetcher, invoker, repo, app.Artifacts)
	app.FAQService = faq.NewService(app.Generator, app.Config.LLMTimeout)

	app.StatementsHandler = statements.NewHandler(app.StatementsService)
	app.AnalysisHandler = analysis.NewHandler(app.AnalysisService)
	app.FAQHandler = faq.NewHandler(app.FAQService)

	if app.StatementsHandler == nil || app.AnalysisHandler == nil || app.FAQHandler == nil {
		return errors.New("failed to initialize handlers")
	}
	return nil
}

func isDevLike(env string) bool {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "dev", "local":
		return true
	default:
		return false
	}
}
