package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"marketing-server/internal/clients/moz"
	"marketing-server/internal/insights"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/google/uuid"
)

// Store defines the database operations required by AnalysisProcessor
type Store interface {
	GetCompanyByUserID(ctx context.Context, userID uuid.UUID) (store.Company, error)
	GetCompetitorByID(ctx context.Context, companyID, competitorID uuid.UUID) (store.Competitor, error)
	GetCompetitorsByCompany(ctx context.Context, companyID uuid.UUID) ([]store.Competitor, error)
	GetCompetitorSnapshotsByCompany(ctx context.Context, companyID uuid.UUID) ([]store.CompetitorSnapshot, error)
	CreateCompetitiveAnalysis(ctx context.Context, params store.CreateCompetitiveAnalysisParams) (store.CompetitiveAnalysis, error)
	GetCompetitiveAnalysesByCompany(ctx context.Context, companyID uuid.UUID) ([]store.CompetitiveAnalysis, error)
	CreateLandscapeAnalysis(ctx context.Context, params store.CreateLandscapeAnalysisParams) (store.LandscapeAnalysis, error)
	GetLatestLandscapeAnalysis(ctx context.Context, companyID uuid.UUID) (store.LandscapeAnalysis, error)
	GetPositioningRecommendationsByCompany(ctx context.Context, companyID uuid.UUID) ([]store.PositioningRecommendation, error)
	GetBlogIdeasByStatus(ctx context.Context, companyID uuid.UUID, status store.BlogIdeaStatus) ([]store.BlogIdea, error)
}

// MetricsProvider returns SEO metrics for a URL
type MetricsProvider interface {
	Analyze(ctx context.Context, rawURL string) (moz.Metrics, error)
}

// InsightGenerator produces untrusted JSON objects; every result goes through normalize
type InsightGenerator interface {
	AnalyzeCompetitor(ctx context.Context, company store.Company, req insights.CompetitorRequest) (map[string]interface{}, error)
	AnalyzeLandscape(ctx context.Context, company store.Company, competitors []store.CompetitorSnapshot) (map[string]interface{}, error)
	AnalyzePositioning(ctx context.Context, company store.Company) (map[string]interface{}, error)
	BlogIdeas(ctx context.Context, req insights.BlogIdeasRequest) (map[string]interface{}, error)
	FullArticle(ctx context.Context, req insights.ArticleRequest) (map[string]interface{}, error)
}

// PageFetcher returns readable text of a web page
type PageFetcher interface {
	Snapshot(ctx context.Context, rawURL string) (string, error)
}

var (
	ErrCompanyNotFound    = errors.New("company not found")
	ErrCompetitorNotFound = errors.New("competitor not found")
	ErrLandscapeNotFound  = errors.New("landscape analysis not found")
	ErrNoCompetitors      = errors.New("company has no competitors")
	ErrNoWebsite          = errors.New("company has no website")
	ErrInvalidIdea        = errors.New("blog idea requires a title")
	ErrGenerationFailed   = insights.ErrGenerationFailed
	ErrPersistenceFailed  = errors.New("failed to persist analysis")

	errEmptyArticle = errors.New("article content is empty")
)

const (
	kindCompetitor  = "competitor"
	kindBatch       = "competitor_batch"
	kindDomain      = "domain"
	kindLandscape   = "landscape"
	kindPositioning = "positioning"
	kindBlogIdeas   = "blog_ideas"
	kindArticle     = "article"

	blogIdeaCount = 5
)

type AnalysisProcessor struct {
	store     Store
	metrics   MetricsProvider
	generator InsightGenerator
	pages     PageFetcher
	logger    *observability.Logger
}

// New builds the processor. pages may be nil, in which case competitor
// prompts go without a homepage snapshot.
func New(store Store, metrics MetricsProvider, generator InsightGenerator, pages PageFetcher, logger *observability.Logger) AnalysisProcessor {
	return AnalysisProcessor{
		store:     store,
		metrics:   metrics,
		generator: generator,
		pages:     pages,
		logger:    logger,
	}
}

// loadCompany resolves the caller's company and tags ctx with its id.
func (p *AnalysisProcessor) loadCompany(ctx context.Context, userID uuid.UUID) (context.Context, store.Company, error) {
	company, err := p.store.GetCompanyByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ctx, store.Company{}, ErrCompanyNotFound
		}
		p.logger.Error(ctx, "failed to get company", err)
		return ctx, store.Company{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "company_id", Value: company.ID.String()})
	return ctx, company, nil
}

func analysisContext(ctx context.Context, userID uuid.UUID, kind string) context.Context {
	return observability.WithFields(ctx,
		observability.Field{Key: "user_id", Value: userID.String()},
		observability.Field{Key: "analysis_kind", Value: kind},
	)
}

func generationFailed(err error) error {
	if errors.Is(err, ErrGenerationFailed) {
		return err
	}
	return fmt.Errorf("%w: %w", ErrGenerationFailed, err)
}

func persistenceFailed(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
}
