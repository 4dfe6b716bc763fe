package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const companyColumns = `id, user_id, name, industry, size, website, description, unique_selling_proposition,
products, services, ideal_customer_profile, pain_points, target_audience, created_at, updated_at`

// CreateCompanyParams represents parameters for creating a company profile
type CreateCompanyParams struct {
	UserID                   uuid.UUID
	Name                     string
	Industry                 string
	Size                     string
	Website                  string
	Description              string
	UniqueSellingProposition string
	Products                 []string
	Services                 []string
	IdealCustomerProfile     string
	PainPoints               []string
	TargetAudience           string
}

const sqlCreateCompany = `
INSERT INTO companies (user_id, name, industry, size, website, description, unique_selling_proposition,
                       products, services, ideal_customer_profile, pain_points, target_audience)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + companyColumns

// CreateCompany creates the company profile for a user
func (s *Store) CreateCompany(ctx context.Context, params CreateCompanyParams) (Company, error) {
	var company Company
	err := s.db.GetContext(ctx, &company, sqlCreateCompany,
		params.UserID,
		params.Name,
		params.Industry,
		params.Size,
		params.Website,
		params.Description,
		params.UniqueSellingProposition,
		stringArray(params.Products),
		stringArray(params.Services),
		params.IdealCustomerProfile,
		stringArray(params.PainPoints),
		params.TargetAudience)
	if err != nil {
		return Company{}, fmt.Errorf("failed to create company: %w", err)
	}
	return company, nil
}

const sqlGetCompanyByUserID = `
SELECT ` + companyColumns + `
FROM companies
WHERE user_id = $1
`

// GetCompanyByUserID retrieves the company owned by a user
func (s *Store) GetCompanyByUserID(ctx context.Context, userID uuid.UUID) (Company, error) {
	var company Company
	err := s.db.GetContext(ctx, &company, sqlGetCompanyByUserID, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Company{}, ErrNotFound
		}
		return Company{}, fmt.Errorf("failed to get company: %w", err)
	}
	return company, nil
}

// UpdateCompanyParams represents a partial company update. Nil fields are left unchanged.
type UpdateCompanyParams struct {
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

const sqlUpdateCompany = `
UPDATE companies
SET name = COALESCE($2, name),
    industry = COALESCE($3, industry),
    size = COALESCE($4, size),
    website = COALESCE($5, website),
    description = COALESCE($6, description),
    unique_selling_proposition = COALESCE($7, unique_selling_proposition),
    products = COALESCE($8, products),
    services = COALESCE($9, services),
    ideal_customer_profile = COALESCE($10, ideal_customer_profile),
    pain_points = COALESCE($11, pain_points),
    target_audience = COALESCE($12, target_audience),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1
RETURNING ` + companyColumns

// UpdateCompany applies a partial update to a company
func (s *Store) UpdateCompany(ctx context.Context, companyID uuid.UUID, params UpdateCompanyParams) (Company, error) {
	var company Company
	err := s.db.GetContext(ctx, &company, sqlUpdateCompany,
		companyID,
		params.Name,
		params.Industry,
		params.Size,
		params.Website,
		params.Description,
		params.UniqueSellingProposition,
		optionalArray(params.Products),
		optionalArray(params.Services),
		params.IdealCustomerProfile,
		optionalArray(params.PainPoints),
		params.TargetAudience)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Company{}, ErrNotFound
		}
		return Company{}, fmt.Errorf("failed to update company: %w", err)
	}
	return company, nil
}

// optionalArray keeps nil as SQL NULL so COALESCE leaves the column alone.
func optionalArray(values []string) interface{} {
	if values == nil {
		return nil
	}
	return stringArray(values)
}
