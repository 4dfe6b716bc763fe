package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateCompetitorParams represents parameters for creating a competitor
type CreateCompetitorParams struct {
	CompanyID   uuid.UUID
	Name        string
	Website     string
	Description string
}

const sqlCreateCompetitor = `
INSERT INTO competitors (company_id, name, website, description)
VALUES ($1, $2, $3, $4)
RETURNING id, company_id, name, website, description, created_at
`

// CreateCompetitor creates a competitor for a company
func (s *Store) CreateCompetitor(ctx context.Context, params CreateCompetitorParams) (Competitor, error) {
	var competitor Competitor
	err := s.db.GetContext(ctx, &competitor, sqlCreateCompetitor,
		params.CompanyID,
		params.Name,
		params.Website,
		params.Description)
	if err != nil {
		return Competitor{}, fmt.Errorf("failed to create competitor: %w", err)
	}
	return competitor, nil
}

const sqlGetCompetitorByID = `
SELECT id, company_id, name, website, description, created_at
FROM competitors
WHERE id = $1 AND company_id = $2
`

// GetCompetitorByID retrieves a competitor only if it belongs to companyID
func (s *Store) GetCompetitorByID(ctx context.Context, companyID, competitorID uuid.UUID) (Competitor, error) {
	var competitor Competitor
	err := s.db.GetContext(ctx, &competitor, sqlGetCompetitorByID, competitorID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Competitor{}, ErrNotFound
		}
		return Competitor{}, fmt.Errorf("failed to get competitor: %w", err)
	}
	return competitor, nil
}

const sqlGetCompetitorsByCompany = `
SELECT id, company_id, name, website, description, created_at
FROM competitors
WHERE company_id = $1
ORDER BY created_at ASC
`

// GetCompetitorsByCompany retrieves all competitors of a company in creation order
func (s *Store) GetCompetitorsByCompany(ctx context.Context, companyID uuid.UUID) ([]Competitor, error) {
	competitors := []Competitor{}
	err := s.db.SelectContext(ctx, &competitors, sqlGetCompetitorsByCompany, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get competitors: %w", err)
	}
	return competitors, nil
}

const sqlGetCompetitorSnapshotsByCompany = `
SELECT c.id, c.company_id, c.name, c.website, c.description, c.created_at,
       latest.domain_authority, latest.seo_strength
FROM competitors c
LEFT JOIN LATERAL (
    SELECT ca.domain_authority, ca.seo_strength
    FROM competitive_analyses ca
    WHERE ca.competitor_id = c.id
    ORDER BY ca.created_at DESC
    LIMIT 1
) latest ON true
WHERE c.company_id = $1
ORDER BY c.created_at ASC
`

// GetCompetitorSnapshotsByCompany retrieves competitors with the SEO fields of their newest analysis
func (s *Store) GetCompetitorSnapshotsByCompany(ctx context.Context, companyID uuid.UUID) ([]CompetitorSnapshot, error) {
	snapshots := []CompetitorSnapshot{}
	err := s.db.SelectContext(ctx, &snapshots, sqlGetCompetitorSnapshotsByCompany, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get competitor snapshots: %w", err)
	}
	return snapshots, nil
}

const sqlDeleteCompetitor = `
DELETE FROM competitors
WHERE id = $1 AND company_id = $2
`

// DeleteCompetitor removes a competitor owned by companyID
func (s *Store) DeleteCompetitor(ctx context.Context, companyID, competitorID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteCompetitor, competitorID, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete competitor: %w", err)
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
