package store

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// CreateCompetitiveAnalysisParams represents parameters for persisting a competitor analysis
type CreateCompetitiveAnalysisParams struct {
	CompanyID       uuid.UUID
	CompetitorID    uuid.UUID
	DomainAuthority int
	PageAuthority   int
	SpamScore       int
	LinkingDomains  int
	TotalLinks      int
	SEOStrength     string
	TopKeywords     []string
	Summary         string
	ThreatLevel     string
	Insights        []string
	Threats         []string
	Opportunities   []string
	Recommendations []string
}

const sqlCreateCompetitiveAnalysis = `
WITH inserted AS (
    INSERT INTO competitive_analyses (company_id, competitor_id, domain_authority, page_authority, spam_score,
                                      linking_domains, total_links, seo_strength, top_keywords, summary,
                                      threat_level, insights, threats, opportunities, recommendations)
    VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
    RETURNING *
)
SELECT i.id, i.company_id, i.competitor_id, c.name AS competitor_name, i.domain_authority, i.page_authority,
       i.spam_score, i.linking_domains, i.total_links, i.seo_strength, i.top_keywords, i.summary,
       i.threat_level, i.insights, i.threats, i.opportunities, i.recommendations, i.created_at
FROM inserted i
JOIN competitors c ON c.id = i.competitor_id
`

// CreateCompetitiveAnalysis inserts a new immutable analysis record
func (s *Store) CreateCompetitiveAnalysis(ctx context.Context, params CreateCompetitiveAnalysisParams) (CompetitiveAnalysis, error) {
	var analysis CompetitiveAnalysis
	err := s.db.GetContext(ctx, &analysis, sqlCreateCompetitiveAnalysis,
		params.CompanyID,
		params.CompetitorID,
		params.DomainAuthority,
		params.PageAuthority,
		params.SpamScore,
		params.LinkingDomains,
		params.TotalLinks,
		params.SEOStrength,
		stringArray(params.TopKeywords),
		params.Summary,
		params.ThreatLevel,
		stringArray(params.Insights),
		stringArray(params.Threats),
		stringArray(params.Opportunities),
		stringArray(params.Recommendations))
	if err != nil {
		return CompetitiveAnalysis{}, fmt.Errorf("failed to create competitive analysis: %w", err)
	}
	return analysis, nil
}

const sqlGetCompetitiveAnalysesByCompany = `
SELECT ca.id, ca.company_id, ca.competitor_id, c.name AS competitor_name, ca.domain_authority, ca.page_authority,
       ca.spam_score, ca.linking_domains, ca.total_links, ca.seo_strength, ca.top_keywords, ca.summary,
       ca.threat_level, ca.insights, ca.threats, ca.opportunities, ca.recommendations, ca.created_at
FROM competitive_analyses ca
JOIN competitors c ON c.id = ca.competitor_id
WHERE ca.company_id = $1
ORDER BY ca.created_at DESC
`

// GetCompetitiveAnalysesByCompany retrieves all analyses of a company, newest first
func (s *Store) GetCompetitiveAnalysesByCompany(ctx context.Context, companyID uuid.UUID) ([]CompetitiveAnalysis, error) {
	analyses := []CompetitiveAnalysis{}
	err := s.db.SelectContext(ctx, &analyses, sqlGetCompetitiveAnalysesByCompany, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get competitive analyses: %w", err)
	}
	return analyses, nil
}
