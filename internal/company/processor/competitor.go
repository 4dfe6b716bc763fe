package processor

import (
	"context"
	"errors"
	"strings"

	"marketing-server/internal/clients/moz"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/google/uuid"
)

// CreateCompetitorParams describes a competitor to track
type CreateCompetitorParams struct {
	Name        string
	Website     string
	Description string
}

// ListCompetitors returns the company's competitors with the SEO fields of their newest analysis
func (p *CompanyProcessor) ListCompetitors(ctx context.Context, userID uuid.UUID) ([]store.CompetitorSnapshot, error) {
	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	competitors, err := p.store.GetCompetitorSnapshotsByCompany(ctx, company.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list competitors", err)
		return nil, err
	}
	return competitors, nil
}

func (p *CompanyProcessor) CreateCompetitor(ctx context.Context, userID uuid.UUID, params CreateCompetitorParams) (store.Competitor, error) {
	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return store.Competitor{}, err
	}

	competitor, err := p.store.CreateCompetitor(ctx, store.CreateCompetitorParams{
		CompanyID:   company.ID,
		Name:        strings.TrimSpace(params.Name),
		Website:     moz.NormalizeURL(params.Website),
		Description: strings.TrimSpace(params.Description),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create competitor", err)
		return store.Competitor{}, persistenceFailed(err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "competitor_id", Value: competitor.ID.String()})
	p.logger.Info(ctx, "competitor created")
	return competitor, nil
}

// DeleteCompetitor removes a competitor owned by the caller's company
func (p *CompanyProcessor) DeleteCompetitor(ctx context.Context, userID, competitorID uuid.UUID) error {
	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "competitor_id", Value: competitorID.String()})

	if err := p.store.DeleteCompetitor(ctx, company.ID, competitorID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCompetitorNotFound
		}
		p.logger.Error(ctx, "failed to delete competitor", err)
		return persistenceFailed(err)
	}

	p.logger.Info(ctx, "competitor deleted")
	return nil
}
