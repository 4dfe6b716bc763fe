package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreatePositioningRecommendationParams represents a recommendation the user saves
type CreatePositioningRecommendationParams struct {
	CompanyID        uuid.UUID
	Category         string
	Title            string
	Description      string
	KeyPoints        []string
	MessagingStyle   string
	ValueProposition string
	Differentiators  []string
	TargetSegments   []string
	ConfidenceScore  float64
}

const positioningRecommendationColumns = `id, company_id, category, title, description, key_points, messaging_style,
value_proposition, differentiators, target_segments, confidence_score, created_at`

const sqlCreatePositioningRecommendation = `
INSERT INTO positioning_recommendations (company_id, category, title, description, key_points, messaging_style,
                                         value_proposition, differentiators, target_segments, confidence_score)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + positioningRecommendationColumns

// CreatePositioningRecommendation saves a positioning recommendation
func (s *Store) CreatePositioningRecommendation(ctx context.Context, params CreatePositioningRecommendationParams) (PositioningRecommendation, error) {
	var rec PositioningRecommendation
	err := s.db.GetContext(ctx, &rec, sqlCreatePositioningRecommendation,
		params.CompanyID,
		params.Category,
		params.Title,
		params.Description,
		stringArray(params.KeyPoints),
		params.MessagingStyle,
		params.ValueProposition,
		stringArray(params.Differentiators),
		stringArray(params.TargetSegments),
		params.ConfidenceScore)
	if err != nil {
		return PositioningRecommendation{}, fmt.Errorf("failed to create positioning recommendation: %w", err)
	}
	return rec, nil
}

const sqlGetPositioningRecommendationsByCompany = `
SELECT ` + positioningRecommendationColumns + `
FROM positioning_recommendations
WHERE company_id = $1
ORDER BY created_at DESC
`

// GetPositioningRecommendationsByCompany retrieves saved recommendations, newest first
func (s *Store) GetPositioningRecommendationsByCompany(ctx context.Context, companyID uuid.UUID) ([]PositioningRecommendation, error) {
	recs := []PositioningRecommendation{}
	err := s.db.SelectContext(ctx, &recs, sqlGetPositioningRecommendationsByCompany, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get positioning recommendations: %w", err)
	}
	return recs, nil
}

const sqlDeletePositioningRecommendation = `
DELETE FROM positioning_recommendations
WHERE id = $1 AND company_id = $2
`

// DeletePositioningRecommendation removes a saved recommendation owned by companyID
func (s *Store) DeletePositioningRecommendation(ctx context.Context, companyID, recommendationID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeletePositioningRecommendation, recommendationID, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete positioning recommendation: %w", err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}
	return nil
}
