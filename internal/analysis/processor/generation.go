package processor

import (
	"context"
	"strings"

	"marketing-server/internal/analysis/normalize"
	"marketing-server/internal/insights"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// RunPositioningAnalysis generates positioning advice from the current company
// profile. Nothing is stored.
func (p *AnalysisProcessor) RunPositioningAnalysis(ctx context.Context, userID uuid.UUID) (result normalize.PositioningAnalysis, err error) {
	ctx = analysisContext(ctx, userID, kindPositioning)
	defer func() { observability.ObserveAnalysisRun(kindPositioning, err) }()

	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return normalize.PositioningAnalysis{}, err
	}

	raw, err := p.generator.AnalyzePositioning(ctx, company)
	if err != nil {
		p.logger.Error(ctx, "failed to generate positioning analysis", err)
		return normalize.PositioningAnalysis{}, generationFailed(err)
	}

	return normalize.Positioning(raw), nil
}

// GenerateBlogIdeas suggests fresh ideas, steering away from ideas the user
// rejected before. Ideas without a title are dropped individually.
func (p *AnalysisProcessor) GenerateBlogIdeas(ctx context.Context, userID uuid.UUID) (ideas []normalize.BlogIdea, err error) {
	ctx = analysisContext(ctx, userID, kindBlogIdeas)
	defer func() { observability.ObserveAnalysisRun(kindBlogIdeas, err) }()

	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	var (
		competitors     []store.Competitor
		recommendations []store.PositioningRecommendation
		rejected        []store.BlogIdea
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		competitors, err = p.store.GetCompetitorsByCompany(gctx, company.ID)
		return err
	})
	g.Go(func() error {
		var err error
		recommendations, err = p.store.GetPositioningRecommendationsByCompany(gctx, company.ID)
		return err
	})
	g.Go(func() error {
		var err error
		rejected, err = p.store.GetBlogIdeasByStatus(gctx, company.ID, store.BlogIdeaStatusRejected)
		return err
	})
	if err := g.Wait(); err != nil {
		p.logger.Error(ctx, "failed to load blog idea context", err)
		return nil, err
	}

	raw, err := p.generator.BlogIdeas(ctx, insights.BlogIdeasRequest{
		Company:         company,
		Competitors:     competitors,
		Recommendations: recommendations,
		Rejected:        rejected,
		Count:           blogIdeaCount,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to generate blog ideas", err)
		return nil, generationFailed(err)
	}

	return excludeRejected(normalize.BlogIdeas(raw), rejected), nil
}

// excludeRejected drops ideas whose title repeats a rejected one.
func excludeRejected(ideas []normalize.BlogIdea, rejected []store.BlogIdea) []normalize.BlogIdea {
	if len(rejected) == 0 {
		return ideas
	}
	seen := make(map[string]struct{}, len(rejected))
	for _, r := range rejected {
		seen[titleKey(r.Title)] = struct{}{}
	}
	kept := make([]normalize.BlogIdea, 0, len(ideas))
	for _, idea := range ideas {
		if _, ok := seen[titleKey(idea.Title)]; ok {
			continue
		}
		kept = append(kept, idea)
	}
	return kept
}

func titleKey(title string) string {
	return strings.Join(strings.Fields(strings.ToLower(title)), " ")
}

// GenerateArticle writes a full article for idea. The result is returned, not
// stored; publishing an idea stores it as content.
func (p *AnalysisProcessor) GenerateArticle(ctx context.Context, userID uuid.UUID, idea normalize.BlogIdea) (article normalize.Article, err error) {
	ctx = analysisContext(ctx, userID, kindArticle)
	defer func() { observability.ObserveAnalysisRun(kindArticle, err) }()

	if strings.TrimSpace(idea.Title) == "" {
		return normalize.Article{}, ErrInvalidIdea
	}

	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return normalize.Article{}, err
	}

	var (
		competitors     []store.Competitor
		recommendations []store.PositioningRecommendation
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		competitors, err = p.store.GetCompetitorsByCompany(gctx, company.ID)
		return err
	})
	g.Go(func() error {
		var err error
		recommendations, err = p.store.GetPositioningRecommendationsByCompany(gctx, company.ID)
		return err
	})
	if err := g.Wait(); err != nil {
		p.logger.Error(ctx, "failed to load article context", err)
		return normalize.Article{}, err
	}

	raw, err := p.generator.FullArticle(ctx, insights.ArticleRequest{
		Idea: insights.IdeaBrief{
			Title:           idea.Title,
			Description:     idea.Description,
			Keywords:        idea.Keywords,
			TargetAudience:  idea.TargetAudience,
			EstimatedLength: idea.EstimatedLength,
			ContentPillars:  idea.ContentPillars,
		},
		Company:         company,
		Competitors:     competitors,
		Recommendations: recommendations,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to generate article", err)
		return normalize.Article{}, generationFailed(err)
	}

	article = normalize.FullArticle(raw, idea.Title)
	if article.Content == "" {
		err = generationFailed(errEmptyArticle)
		p.logger.Error(ctx, "generated article has no content", err)
		return normalize.Article{}, err
	}
	return article, nil
}
