package processor

//go:generate go run go.uber.org/mock/mockgen@latest -source=processor.go -destination=mocks_test.go -package=processor

import (
	"context"
	"errors"
	"fmt"

	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/google/uuid"
)

// Store defines the database operations required by CompanyProcessor
type Store interface {
	GetCompanyByUserID(ctx context.Context, userID uuid.UUID) (store.Company, error)
	CreateCompany(ctx context.Context, params store.CreateCompanyParams) (store.Company, error)
	UpdateCompany(ctx context.Context, companyID uuid.UUID, params store.UpdateCompanyParams) (store.Company, error)
	GetCompetitorSnapshotsByCompany(ctx context.Context, companyID uuid.UUID) ([]store.CompetitorSnapshot, error)
	CreateCompetitor(ctx context.Context, params store.CreateCompetitorParams) (store.Competitor, error)
	DeleteCompetitor(ctx context.Context, companyID, competitorID uuid.UUID) error
	CreatePositioningRecommendation(ctx context.Context, params store.CreatePositioningRecommendationParams) (store.PositioningRecommendation, error)
	GetPositioningRecommendationsByCompany(ctx context.Context, companyID uuid.UUID) ([]store.PositioningRecommendation, error)
	DeletePositioningRecommendation(ctx context.Context, companyID, recommendationID uuid.UUID) error
}

var (
	ErrCompanyNotFound        = errors.New("company not found")
	ErrCompanyNameRequired    = errors.New("company name is required")
	ErrCompetitorNotFound     = errors.New("competitor not found")
	ErrRecommendationNotFound = errors.New("positioning recommendation not found")
	ErrPersistenceFailed      = errors.New("failed to persist company data")
)

type CompanyProcessor struct {
	store  Store
	logger *observability.Logger
}

func New(store Store, logger *observability.Logger) CompanyProcessor {
	return CompanyProcessor{
		store:  store,
		logger: logger,
	}
}

func (p *CompanyProcessor) loadCompany(ctx context.Context, userID uuid.UUID) (context.Context, store.Company, error) {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

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

func persistenceFailed(err error) error {
	return fmt.Errorf("%w: %v", ErrPersistenceFailed, err)
}
