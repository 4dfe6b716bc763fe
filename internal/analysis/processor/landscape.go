package processor

import (
	"context"
	"errors"

	"marketing-server/internal/analysis/normalize"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/google/uuid"
)

// RunLandscapeAnalysis compares the company against all of its competitors in
// one generator call and appends a new snapshot. Stored competitor SEO fields
// are used as they are; no metrics are fetched.
func (p *AnalysisProcessor) RunLandscapeAnalysis(ctx context.Context, userID uuid.UUID) (analysis store.LandscapeAnalysis, err error) {
	ctx = analysisContext(ctx, userID, kindLandscape)
	defer func() { observability.ObserveAnalysisRun(kindLandscape, err) }()

	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return store.LandscapeAnalysis{}, err
	}

	competitors, err := p.store.GetCompetitorSnapshotsByCompany(ctx, company.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to get competitor snapshots", err)
		return store.LandscapeAnalysis{}, err
	}
	if len(competitors) == 0 {
		return store.LandscapeAnalysis{}, ErrNoCompetitors
	}

	raw, err := p.generator.AnalyzeLandscape(ctx, company, competitors)
	if err != nil {
		p.logger.Error(ctx, "failed to generate landscape analysis", err)
		return store.LandscapeAnalysis{}, generationFailed(err)
	}

	landscape := normalize.LandscapeAnalysis(raw)

	analysis, err = p.store.CreateLandscapeAnalysis(ctx, store.CreateLandscapeAnalysisParams{
		CompanyID:          company.ID,
		Summary:            landscape.Summary,
		MarketPosition:     landscape.MarketPosition,
		CompetitorInsights: landscape.CompetitorInsights,
		Recommendations:    landscape.Recommendations,
		Opportunities:      landscape.Opportunities,
		Implications:       landscape.Implications,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to persist landscape analysis", err)
		return store.LandscapeAnalysis{}, persistenceFailed(err)
	}

	p.logger.Info(ctx, "landscape analysis created")
	return analysis, nil
}

// GetLatestLandscape returns the newest stored landscape snapshot.
func (p *AnalysisProcessor) GetLatestLandscape(ctx context.Context, userID uuid.UUID) (store.LandscapeAnalysis, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return store.LandscapeAnalysis{}, err
	}

	analysis, err := p.store.GetLatestLandscapeAnalysis(ctx, company.ID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.LandscapeAnalysis{}, ErrLandscapeNotFound
		}
		p.logger.Error(ctx, "failed to get landscape analysis", err)
		return store.LandscapeAnalysis{}, err
	}
	return analysis, nil
}
