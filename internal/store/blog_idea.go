package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
)

// CreateBlogIdeaParams represents a blog idea decision to record
type CreateBlogIdeaParams struct {
	CompanyID       uuid.UUID
	Title           string
	Description     string
	Keywords        []string
	EstimatedLength string
	Difficulty      string
	TargetAudience  string
	ContentPillars  []string
	SEOScore        int
	Rationale       string
	Status          BlogIdeaStatus
	Reason          *string
}

const blogIdeaColumns = `id, company_id, title, description, keywords, estimated_length, difficulty, target_audience,
content_pillars, seo_score, rationale, status, reason, created_at`

const sqlCreateBlogIdea = `
INSERT INTO blog_ideas (company_id, title, description, keywords, estimated_length, difficulty, target_audience,
                        content_pillars, seo_score, rationale, status, reason)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
RETURNING ` + blogIdeaColumns

// CreateBlogIdea records a rejected or published blog idea
func (s *Store) CreateBlogIdea(ctx context.Context, params CreateBlogIdeaParams) (BlogIdea, error) {
	var idea BlogIdea
	err := s.db.GetContext(ctx, &idea, sqlCreateBlogIdea,
		params.CompanyID,
		params.Title,
		params.Description,
		stringArray(params.Keywords),
		params.EstimatedLength,
		params.Difficulty,
		params.TargetAudience,
		stringArray(params.ContentPillars),
		params.SEOScore,
		params.Rationale,
		params.Status,
		params.Reason)
	if err != nil {
		return BlogIdea{}, fmt.Errorf("failed to create blog idea: %w", err)
	}
	return idea, nil
}

const sqlGetBlogIdeasByStatus = `
SELECT ` + blogIdeaColumns + `
FROM blog_ideas
WHERE company_id = $1 AND status = $2
ORDER BY created_at DESC
`

// GetBlogIdeasByStatus retrieves a company's recorded ideas with the given status, newest first
func (s *Store) GetBlogIdeasByStatus(ctx context.Context, companyID uuid.UUID, status BlogIdeaStatus) ([]BlogIdea, error) {
	ideas := []BlogIdea{}
	err := s.db.SelectContext(ctx, &ideas, sqlGetBlogIdeasByStatus, companyID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to get blog ideas: %w", err)
	}
	return ideas, nil
}

const sqlDeleteBlogIdea = `
DELETE FROM blog_ideas
WHERE id = $1 AND company_id = $2
`

// DeleteBlogIdea removes a recorded idea owned by companyID
func (s *Store) DeleteBlogIdea(ctx context.Context, companyID, ideaID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteBlogIdea, ideaID, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete blog idea: %w", err)
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

// PublishBlogIdea records a published idea and its draft content item in one transaction
func (s *Store) PublishBlogIdea(ctx context.Context, idea CreateBlogIdeaParams, item CreateContentItemParams) (BlogIdea, ContentItem, error) {
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return BlogIdea{}, ContentItem{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
			s.logger.Error(ctx, "failed to rollback transaction", err)
		}
	}()

	var published BlogIdea
	err = tx.GetContext(ctx, &published, sqlCreateBlogIdea,
		idea.CompanyID,
		idea.Title,
		idea.Description,
		stringArray(idea.Keywords),
		idea.EstimatedLength,
		idea.Difficulty,
		idea.TargetAudience,
		stringArray(idea.ContentPillars),
		idea.SEOScore,
		idea.Rationale,
		BlogIdeaStatusPublished,
		idea.Reason)
	if err != nil {
		return BlogIdea{}, ContentItem{}, fmt.Errorf("failed to create blog idea: %w", err)
	}

	var content ContentItem
	err = tx.GetContext(ctx, &content, sqlCreateContentItem,
		item.CompanyID,
		item.Title,
		item.Body,
		item.Type,
		item.Status,
		stringArray(item.Keywords),
		item.Tone,
		item.WordCount,
		item.ScheduledAt,
		item.PublishedAt)
	if err != nil {
		return BlogIdea{}, ContentItem{}, fmt.Errorf("failed to create content item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return BlogIdea{}, ContentItem{}, fmt.Errorf("failed to commit transaction: %w", err)
	}
	return published, content, nil
}
