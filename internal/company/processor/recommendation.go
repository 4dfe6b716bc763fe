package processor

import (
	"context"
	"errors"

	"marketing-server/internal/analysis/normalize"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/google/uuid"
)

// SaveRecommendation bookmarks a generated positioning recommendation.
// The payload is untrusted and goes through the same bounds as generated output.
func (p *CompanyProcessor) SaveRecommendation(ctx context.Context, userID uuid.UUID, rec normalize.PositioningRecommendation) (store.PositioningRecommendation, error) {
	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return store.PositioningRecommendation{}, err
	}

	saved, err := p.store.CreatePositioningRecommendation(ctx, store.CreatePositioningRecommendationParams{
		CompanyID:        company.ID,
		Category:         orDefault(rec.Category, "General"),
		Title:            orDefault(rec.Title, normalize.FallbackText),
		Description:      rec.Description,
		KeyPoints:        rec.KeyPoints,
		MessagingStyle:   rec.MessagingStyle,
		ValueProposition: rec.ValueProposition,
		Differentiators:  rec.Differentiators,
		TargetSegments:   rec.TargetSegments,
		ConfidenceScore:  clampConfidence(rec.ConfidenceScore),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to save positioning recommendation", err)
		return store.PositioningRecommendation{}, persistenceFailed(err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "recommendation_id", Value: saved.ID.String()})
	p.logger.Info(ctx, "positioning recommendation saved")
	return saved, nil
}

func (p *CompanyProcessor) ListRecommendations(ctx context.Context, userID uuid.UUID) ([]store.PositioningRecommendation, error) {
	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	recs, err := p.store.GetPositioningRecommendationsByCompany(ctx, company.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list positioning recommendations", err)
		return nil, err
	}
	return recs, nil
}

func (p *CompanyProcessor) DeleteRecommendation(ctx context.Context, userID, recommendationID uuid.UUID) error {
	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return err
	}

	if err := p.store.DeletePositioningRecommendation(ctx, company.ID, recommendationID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrRecommendationNotFound
		}
		p.logger.Error(ctx, "failed to delete positioning recommendation", err)
		return persistenceFailed(err)
	}
	return nil
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// clampConfidence maps a missing or out-of-range score to the default.
func clampConfidence(f float64) float64 {
	switch {
	case f <= 0 || f > 1:
		return normalize.DefaultConfidence
	default:
		return f
	}
}
