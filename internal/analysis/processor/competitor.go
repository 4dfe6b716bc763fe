package processor

import (
	"context"
	"errors"
	"strings"

	"marketing-server/internal/analysis/normalize"
	"marketing-server/internal/insights"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/google/uuid"
)

// DomainAnalysis is the SEO profile of the company's own website. It is not stored.
type DomainAnalysis struct {
	Website  string               `json:"website"`
	Metrics  normalize.SEOMetrics `json:"metrics"`
	Degraded bool                 `json:"degraded"`
}

// RunCompetitorAnalysis fetches metrics, generates the narrative and stores one new record.
// A metrics provider failure degrades to zeroed metrics instead of failing the run.
func (p *AnalysisProcessor) RunCompetitorAnalysis(ctx context.Context, userID, competitorID uuid.UUID) (analysis store.CompetitiveAnalysis, err error) {
	ctx = analysisContext(ctx, userID, kindCompetitor)
	ctx = observability.WithFields(ctx, observability.Field{Key: "competitor_id", Value: competitorID.String()})
	defer func() { observability.ObserveAnalysisRun(kindCompetitor, err) }()

	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return store.CompetitiveAnalysis{}, err
	}

	competitor, err := p.store.GetCompetitorByID(ctx, company.ID, competitorID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.CompetitiveAnalysis{}, ErrCompetitorNotFound
		}
		p.logger.Error(ctx, "failed to get competitor", err)
		return store.CompetitiveAnalysis{}, err
	}

	metrics, _ := p.fetchMetrics(ctx, kindCompetitor, competitor.Website)
	return p.analyzeCompetitor(ctx, company, competitor, metrics)
}

// AnalyzeAllCompetitors analyzes every competitor sequentially. A competitor
// whose metrics, generation or persistence fails is skipped; only successes
// are returned.
func (p *AnalysisProcessor) AnalyzeAllCompetitors(ctx context.Context, userID uuid.UUID) (results []store.CompetitiveAnalysis, err error) {
	ctx = analysisContext(ctx, userID, kindBatch)
	defer func() { observability.ObserveAnalysisRun(kindBatch, err) }()

	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	competitors, err := p.store.GetCompetitorsByCompany(ctx, company.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to get competitors", err)
		return nil, err
	}

	results = make([]store.CompetitiveAnalysis, 0, len(competitors))
	for _, competitor := range competitors {
		if ctx.Err() != nil {
			p.logger.WarnWithError(ctx, "stopping competitor batch", ctx.Err())
			break
		}

		itemCtx := observability.WithFields(ctx, observability.Field{Key: "competitor_id", Value: competitor.ID.String()})

		metrics, err := p.fetchMetrics(itemCtx, kindBatch, competitor.Website)
		if err != nil {
			p.logger.Warn(itemCtx, "skipping competitor after metrics failure")
			continue
		}

		analysis, err := p.analyzeCompetitor(itemCtx, company, competitor, metrics)
		if err != nil {
			p.logger.WarnWithError(itemCtx, "skipping competitor after analysis failure", err)
			continue
		}
		results = append(results, analysis)
	}

	ctx = observability.WithFields(ctx,
		observability.Field{Key: "competitors_total", Value: len(competitors)},
		observability.Field{Key: "competitors_analyzed", Value: len(results)},
	)
	p.logger.Info(ctx, "competitor batch completed")
	return results, nil
}

// RunDomainAnalysis reports SEO metrics of the company's own website.
func (p *AnalysisProcessor) RunDomainAnalysis(ctx context.Context, userID uuid.UUID) (result DomainAnalysis, err error) {
	ctx = analysisContext(ctx, userID, kindDomain)
	defer func() { observability.ObserveAnalysisRun(kindDomain, err) }()

	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return DomainAnalysis{}, err
	}

	if strings.TrimSpace(company.Website) == "" {
		return DomainAnalysis{}, ErrNoWebsite
	}

	metrics, metricsErr := p.fetchMetrics(ctx, kindDomain, company.Website)
	return DomainAnalysis{
		Website:  company.Website,
		Metrics:  metrics,
		Degraded: metricsErr != nil,
	}, nil
}

// ListCompetitorAnalyses returns the stored competitor analyses, newest first.
func (p *AnalysisProcessor) ListCompetitorAnalyses(ctx context.Context, userID uuid.UUID) ([]store.CompetitiveAnalysis, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	analyses, err := p.store.GetCompetitiveAnalysesByCompany(ctx, company.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list competitive analyses", err)
		return nil, err
	}
	return analyses, nil
}

// fetchMetrics always returns usable metrics. On a provider failure they are
// the degraded metrics and the provider error is returned alongside. A
// competitor without a website gets degraded metrics and no error.
func (p *AnalysisProcessor) fetchMetrics(ctx context.Context, kind, website string) (normalize.SEOMetrics, error) {
	if strings.TrimSpace(website) == "" {
		return normalize.DegradedMetrics(), nil
	}

	raw, err := p.metrics.Analyze(ctx, website)
	if err != nil {
		p.logger.WarnWithError(ctx, "metrics provider degraded", err)
		observability.ObserveDegradedMetrics(kind)
		return normalize.DegradedMetrics(), err
	}
	return normalize.Metrics(raw), nil
}

// pageText returns a homepage snapshot, or "" when it cannot be fetched.
func (p *AnalysisProcessor) pageText(ctx context.Context, website string) string {
	if p.pages == nil || strings.TrimSpace(website) == "" {
		return ""
	}
	text, err := p.pages.Snapshot(ctx, website)
	if err != nil {
		p.logger.InfoWithError(ctx, "homepage snapshot unavailable", err)
		return ""
	}
	return text
}

func (p *AnalysisProcessor) analyzeCompetitor(ctx context.Context, company store.Company, competitor store.Competitor, metrics normalize.SEOMetrics) (store.CompetitiveAnalysis, error) {
	raw, err := p.generator.AnalyzeCompetitor(ctx, company, insights.CompetitorRequest{
		Name:            competitor.Name,
		Website:         competitor.Website,
		Description:     competitor.Description,
		DomainAuthority: metrics.DomainAuthority,
		PageAuthority:   metrics.PageAuthority,
		SpamScore:       metrics.SpamScore,
		LinkingDomains:  metrics.LinkingDomains,
		TotalLinks:      metrics.TotalLinks,
		SEOStrength:     metrics.SEOStrength,
		TopKeywords:     metrics.TopKeywords,
		PageText:        p.pageText(ctx, competitor.Website),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to generate competitor insights", err)
		return store.CompetitiveAnalysis{}, generationFailed(err)
	}

	narrative := normalize.Competitor(raw)

	analysis, err := p.store.CreateCompetitiveAnalysis(ctx, store.CreateCompetitiveAnalysisParams{
		CompanyID:       company.ID,
		CompetitorID:    competitor.ID,
		DomainAuthority: metrics.DomainAuthority,
		PageAuthority:   metrics.PageAuthority,
		SpamScore:       metrics.SpamScore,
		LinkingDomains:  metrics.LinkingDomains,
		TotalLinks:      metrics.TotalLinks,
		SEOStrength:     metrics.SEOStrength,
		TopKeywords:     metrics.TopKeywords,
		Summary:         narrative.Summary,
		ThreatLevel:     narrative.ThreatLevel,
		Insights:        narrative.Insights,
		Threats:         narrative.Threats,
		Opportunities:   narrative.Opportunities,
		Recommendations: narrative.Recommendations,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to persist competitive analysis", err)
		return store.CompetitiveAnalysis{}, persistenceFailed(err)
	}

	p.logger.Info(ctx, "competitive analysis created")
	return analysis, nil
}
