package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateLandscapeAnalysisParams represents parameters for persisting a landscape snapshot
type CreateLandscapeAnalysisParams struct {
	CompanyID          uuid.UUID
	Summary            string
	MarketPosition     MarketPosition
	CompetitorInsights LandscapeCompetitorInsights
	Recommendations    LandscapeRecommendations
	Opportunities      []string
	Implications       []string
}

const sqlCreateLandscapeAnalysis = `
INSERT INTO landscape_analyses (company_id, summary, market_position, competitor_insights, recommendations,
                                opportunities, implications)
VALUES ($1, $2, $3, $4, $5, $6, $7)
RETURNING id, company_id, summary, market_position, competitor_insights, recommendations, opportunities,
          implications, created_at
`

// CreateLandscapeAnalysis appends a landscape snapshot for a company
func (s *Store) CreateLandscapeAnalysis(ctx context.Context, params CreateLandscapeAnalysisParams) (LandscapeAnalysis, error) {
	var analysis LandscapeAnalysis
	err := s.db.GetContext(ctx, &analysis, sqlCreateLandscapeAnalysis,
		params.CompanyID,
		params.Summary,
		params.MarketPosition,
		params.CompetitorInsights,
		params.Recommendations,
		stringArray(params.Opportunities),
		stringArray(params.Implications))
	if err != nil {
		return LandscapeAnalysis{}, fmt.Errorf("failed to create landscape analysis: %w", err)
	}
	return analysis, nil
}

const sqlGetLatestLandscapeAnalysis = `
SELECT id, company_id, summary, market_position, competitor_insights, recommendations, opportunities,
       implications, created_at
FROM landscape_analyses
WHERE company_id = $1
ORDER BY created_at DESC, id DESC
LIMIT 1
`

// GetLatestLandscapeAnalysis retrieves the newest landscape snapshot of a company
func (s *Store) GetLatestLandscapeAnalysis(ctx context.Context, companyID uuid.UUID) (LandscapeAnalysis, error) {
	var analysis LandscapeAnalysis
	err := s.db.GetContext(ctx, &analysis, sqlGetLatestLandscapeAnalysis, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return LandscapeAnalysis{}, ErrNotFound
		}
		return LandscapeAnalysis{}, fmt.Errorf("failed to get landscape analysis: %w", err)
	}
	return analysis, nil
}
