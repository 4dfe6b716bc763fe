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

// SaveCompanyParams is a partial company profile. Nil fields are left unchanged on update.
type SaveCompanyParams struct {
	Name                     *string
	Industry                 *string
	Size                     *string
	Website                  *string
	Description              *string
	UniqueSellingProposition *string
	Products                 []string
	Services                 []string
	IdealCustomerProfile     *string
	PainPoints               []string
	TargetAudience           *string
}

// GetCompany returns the company owned by userID
func (p *CompanyProcessor) GetCompany(ctx context.Context, userID uuid.UUID) (store.Company, error) {
	_, company, err := p.loadCompany(ctx, userID)
	return company, err
}

// SaveCompany creates the company on first save and applies a partial update afterwards.
func (p *CompanyProcessor) SaveCompany(ctx context.Context, userID uuid.UUID, params SaveCompanyParams) (store.Company, error) {
	if params.Website != nil {
		website := moz.NormalizeURL(*params.Website)
		params.Website = &website
	}

	ctx, existing, err := p.loadCompany(ctx, userID)
	if err != nil && !errors.Is(err, ErrCompanyNotFound) {
		return store.Company{}, err
	}

	if errors.Is(err, ErrCompanyNotFound) {
		return p.createCompany(ctx, userID, params)
	}

	if params.Name != nil && strings.TrimSpace(*params.Name) == "" {
		return store.Company{}, ErrCompanyNameRequired
	}

	company, err := p.store.UpdateCompany(ctx, existing.ID, store.UpdateCompanyParams{
		Name:                     params.Name,
		Industry:                 params.Industry,
		Size:                     params.Size,
		Website:                  params.Website,
		Description:              params.Description,
		UniqueSellingProposition: params.UniqueSellingProposition,
		Products:                 params.Products,
		Services:                 params.Services,
		IdealCustomerProfile:     params.IdealCustomerProfile,
		PainPoints:               params.PainPoints,
		TargetAudience:           params.TargetAudience,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to update company", err)
		return store.Company{}, persistenceFailed(err)
	}

	p.logger.Info(ctx, "company updated")
	return company, nil
}

func (p *CompanyProcessor) createCompany(ctx context.Context, userID uuid.UUID, params SaveCompanyParams) (store.Company, error) {
	name := deref(params.Name)
	if strings.TrimSpace(name) == "" {
		return store.Company{}, ErrCompanyNameRequired
	}

	company, err := p.store.CreateCompany(ctx, store.CreateCompanyParams{
		UserID:                   userID,
		Name:                     strings.TrimSpace(name),
		Industry:                 deref(params.Industry),
		Size:                     deref(params.Size),
		Website:                  deref(params.Website),
		Description:              deref(params.Description),
		UniqueSellingProposition: deref(params.UniqueSellingProposition),
		Products:                 params.Products,
		Services:                 params.Services,
		IdealCustomerProfile:     deref(params.IdealCustomerProfile),
		PainPoints:               params.PainPoints,
		TargetAudience:           deref(params.TargetAudience),
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create company", err)
		return store.Company{}, persistenceFailed(err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "company_id", Value: company.ID.String()})
	p.logger.Info(ctx, "company created")
	return company, nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
