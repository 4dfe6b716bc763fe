package bootstrap

import (
	"context"
	"fmt"

	"marketing-server/internal/config"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	analysisHandler "marketing-server/internal/analysis/handler"
	analysisProcessor "marketing-server/internal/analysis/processor"
	"marketing-server/internal/auth/handler"
	"marketing-server/internal/auth/processor"
	"marketing-server/internal/clients/googleai"
	"marketing-server/internal/clients/moz"
	"marketing-server/internal/clients/openai"
	redisClient "marketing-server/internal/clients/redis"
	"marketing-server/internal/clients/webpage"
	companyHandler "marketing-server/internal/company/handler"
	companyProcessor "marketing-server/internal/company/processor"
	contentHandler "marketing-server/internal/content/handler"
	contentProcessor "marketing-server/internal/content/processor"
	"marketing-server/internal/insights"
	"marketing-server/internal/ratelimit"
)

// Dependencies holds all initialized application dependencies
type Dependencies struct {
	// Core
	Store  store.Store
	Logger *observability.Logger

	// Handlers
	AuthHandler     handler.Handler
	CompanyHandler  companyHandler.Handler
	AnalysisHandler analysisHandler.Handler
	ContentHandler  contentHandler.Handler

	RateLimiter *ratelimit.Service

	// Clients (for cleanup)
	RedisClient  *redisClient.Client
	GeminiClient *googleai.Client
}

// Initialize sets up all application dependencies
func Initialize(ctx context.Context, cfg *config.Config, logger *observability.Logger) (*Dependencies, error) {
	deps := &Dependencies{
		Logger: logger,
	}

	// Initialize database store
	connectionString := cfg.Database.ConnectionString()
	var err error
	deps.Store, err = store.New(connectionString, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Initialize clients
	mozClient := moz.NewClient(moz.Config{
		AccessID:          cfg.Services.MozAccessID,
		SecretKey:         cfg.Services.MozSecretKey,
		Timeout:           cfg.Providers.MozTimeout,
		MaxAttempts:       cfg.Providers.MozMaxAttempts,
		RequestsPerSecond: cfg.Providers.MozRequestsPerSecond,
	}, logger)

	completer, err := deps.newCompleter(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}
	generator := insights.NewGenerator(completer, cfg.Providers.AITimeout, logger)
	pageFetcher := webpage.NewFetcher(cfg.Providers.PageFetchTimeout, logger)

	// Redis backs the generation rate limiter; nil when disabled
	deps.RedisClient, err = redisClient.NewClient(cfg.Redis, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}
	deps.RateLimiter = ratelimit.NewService(deps.RedisClient, cfg.RateLimit.GenerationsPerMinute, logger)

	// Initialize auth processor and handler
	authProc := processor.New(cfg.Auth.JWTSecret, logger)
	deps.AuthHandler = handler.New(authProc, logger)

	// Initialize company processor and handler
	companyProc := companyProcessor.New(&deps.Store, logger)
	deps.CompanyHandler = companyHandler.New(&companyProc, logger)

	// Initialize analysis processor and handler
	analysisProc := analysisProcessor.New(&deps.Store, mozClient, generator, pageFetcher, logger)
	deps.AnalysisHandler = analysisHandler.New(&analysisProc, logger)

	// Initialize content processor and handler
	contentProc := contentProcessor.New(&deps.Store, logger)
	deps.ContentHandler = contentHandler.New(&contentProc, logger)

	return deps, nil
}

// newCompleter builds the configured AI provider
func (d *Dependencies) newCompleter(ctx context.Context, cfg *config.Config, logger *observability.Logger) (insights.Completer, error) {
	switch cfg.Services.AIProvider {
	case config.AIProviderGemini:
		client, err := googleai.NewClient(ctx, cfg.Services.GoogleAIAPIKey, cfg.Services.GeminiModel, logger)
		if err != nil {
			return nil, fmt.Errorf("failed to create gemini client: %w", err)
		}
		d.GeminiClient = client
		return client, nil
	case config.AIProviderOpenAI:
		return openai.NewClient(cfg.Services.OpenAIAPIKey, cfg.Services.OpenAIModel, logger), nil
	default:
		return nil, fmt.Errorf("AI_PROVIDER=%q: %w", cfg.Services.AIProvider, config.ErrUnknownAIProvider)
	}
}

// Cleanup closes all resources that need cleanup
func (d *Dependencies) Cleanup() {
	ctx := context.Background()
	if d.GeminiClient != nil {
		if err := d.GeminiClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close gemini client", err)
		}
	}
	if d.RedisClient.IsEnabled() {
		if err := d.RedisClient.Close(); err != nil {
			d.Logger.Error(ctx, "failed to close redis client", err)
		}
	}
	if err := d.Store.Close(); err != nil {
		d.Logger.Error(ctx, "failed to close database", err)
	}
}
