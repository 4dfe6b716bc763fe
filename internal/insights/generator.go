package insights

import (
	"context"
	"errors"
	"fmt"
	"time"

	"marketing-server/internal/observability"
	"marketing-server/internal/store"
)

var ErrGenerationFailed = errors.New("insight generation failed")

// Completer is a single-shot LLM call that is asked to answer with JSON.
type Completer interface {
	CompleteJSON(ctx context.Context, systemPrompt, userPrompt string) (string, error)
}

// CompetitorRequest is the context of one competitor analysis.
type CompetitorRequest struct {
	Name            string
	Website         string
	Description     string
	DomainAuthority int
	PageAuthority   int
	SpamScore       int
	LinkingDomains  int
	TotalLinks      int
	SEOStrength     string
	TopKeywords     []string
	PageText        string
}

// BlogIdeasRequest carries everything blog idea generation is grounded on.
type BlogIdeasRequest struct {
	Company         store.Company
	Competitors     []store.Competitor
	Recommendations []store.PositioningRecommendation
	Rejected        []store.BlogIdea
	Count           int
}

// IdeaBrief is the subset of a blog idea an article is written from.
type IdeaBrief struct {
	Title           string   `json:"title"`
	Description     string   `json:"description"`
	Keywords        []string `json:"keywords"`
	TargetAudience  string   `json:"target_audience"`
	EstimatedLength string   `json:"estimated_length"`
	ContentPillars  []string `json:"content_pillars"`
}

type ArticleRequest struct {
	Idea            IdeaBrief
	Company         store.Company
	Competitors     []store.Competitor
	Recommendations []store.PositioningRecommendation
}

// Generator turns company context into untrusted JSON objects. Each call makes
// exactly one completer request; failures surface as ErrGenerationFailed.
type Generator struct {
	completer Completer
	timeout   time.Duration
	logger    *observability.Logger
}

func NewGenerator(completer Completer, timeout time.Duration, logger *observability.Logger) *Generator {
	return &Generator{
		completer: completer,
		timeout:   timeout,
		logger:    logger,
	}
}

func (g *Generator) AnalyzeCompetitor(ctx context.Context, company store.Company, req CompetitorRequest) (map[string]interface{}, error) {
	return g.generate(ctx, "competitor", competitorPrompt(company, req), "")
}

func (g *Generator) AnalyzeLandscape(ctx context.Context, company store.Company, competitors []store.CompetitorSnapshot) (map[string]interface{}, error) {
	return g.generate(ctx, "landscape", landscapePrompt(company, competitors), "")
}

func (g *Generator) AnalyzePositioning(ctx context.Context, company store.Company) (map[string]interface{}, error) {
	return g.generate(ctx, "positioning", positioningPrompt(company), "recommendations")
}

func (g *Generator) BlogIdeas(ctx context.Context, req BlogIdeasRequest) (map[string]interface{}, error) {
	return g.generate(ctx, "blog_ideas", blogIdeasPrompt(req), "ideas")
}

func (g *Generator) FullArticle(ctx context.Context, req ArticleRequest) (map[string]interface{}, error) {
	return g.generate(ctx, "article", articlePrompt(req), "")
}

func (g *Generator) generate(ctx context.Context, kind, userPrompt, arrayKey string) (map[string]interface{}, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "insight_kind", Value: kind})

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	raw, err := g.completer.CompleteJSON(ctx, systemPrompt, userPrompt)
	if err != nil {
		g.logger.Error(ctx, "insight generation request failed", err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}

	obj, err := parseObject(raw, arrayKey)
	if err != nil {
		g.logger.Error(ctx, "insight generation returned malformed JSON", err)
		return nil, fmt.Errorf("%w: %w", ErrGenerationFailed, err)
	}
	return obj, nil
}
