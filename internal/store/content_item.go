package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

const contentItemColumns = `id, company_id, title, body, type, status, keywords, tone, word_count, scheduled_at,
published_at, created_at, updated_at`

// CreateContentItemParams represents parameters for creating a content item
type CreateContentItemParams struct {
	CompanyID   uuid.UUID
	Title       string
	Body        string
	Type        string
	Status      ContentStatus
	Keywords    []string
	Tone        string
	WordCount   int
	ScheduledAt *time.Time
	PublishedAt *time.Time
}

const sqlCreateContentItem = `
INSERT INTO content_items (company_id, title, body, type, status, keywords, tone, word_count, scheduled_at, published_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
RETURNING ` + contentItemColumns

// CreateContentItem creates a content item
func (s *Store) CreateContentItem(ctx context.Context, params CreateContentItemParams) (ContentItem, error) {
	var item ContentItem
	err := s.db.GetContext(ctx, &item, sqlCreateContentItem,
		params.CompanyID,
		params.Title,
		params.Body,
		params.Type,
		params.Status,
		stringArray(params.Keywords),
		params.Tone,
		params.WordCount,
		params.ScheduledAt,
		params.PublishedAt)
	if err != nil {
		return ContentItem{}, fmt.Errorf("failed to create content item: %w", err)
	}
	return item, nil
}

const sqlGetContentItemByID = `
SELECT ` + contentItemColumns + `
FROM content_items
WHERE id = $1 AND company_id = $2
`

// GetContentItemByID retrieves a content item owned by companyID
func (s *Store) GetContentItemByID(ctx context.Context, companyID, itemID uuid.UUID) (ContentItem, error) {
	var item ContentItem
	err := s.db.GetContext(ctx, &item, sqlGetContentItemByID, itemID, companyID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ContentItem{}, ErrNotFound
		}
		return ContentItem{}, fmt.Errorf("failed to get content item: %w", err)
	}
	return item, nil
}

const sqlGetContentItemsByCompany = `
SELECT ` + contentItemColumns + `
FROM content_items
WHERE company_id = $1
ORDER BY created_at DESC
`

// GetContentItemsByCompany retrieves all content items of a company, newest first
func (s *Store) GetContentItemsByCompany(ctx context.Context, companyID uuid.UUID) ([]ContentItem, error) {
	items := []ContentItem{}
	err := s.db.SelectContext(ctx, &items, sqlGetContentItemsByCompany, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to get content items: %w", err)
	}
	return items, nil
}

// UpdateContentItemParams represents a partial content update. Nil fields are left unchanged.
type UpdateContentItemParams struct {
	Title       *string
	Body        *string
	Type        *string
	Status      *ContentStatus
	Keywords    []string
	Tone        *string
	WordCount   *int
	ScheduledAt *time.Time
	PublishedAt *time.Time
}

const sqlUpdateContentItem = `
UPDATE content_items
SET title = COALESCE($3, title),
    body = COALESCE($4, body),
    type = COALESCE($5, type),
    status = COALESCE($6, status),
    keywords = COALESCE($7, keywords),
    tone = COALESCE($8, tone),
    word_count = COALESCE($9, word_count),
    scheduled_at = COALESCE($10, scheduled_at),
    published_at = COALESCE(published_at, $11),
    updated_at = CURRENT_TIMESTAMP
WHERE id = $1 AND company_id = $2
RETURNING ` + contentItemColumns

// UpdateContentItem applies a partial update to a content item owned by companyID
func (s *Store) UpdateContentItem(ctx context.Context, companyID, itemID uuid.UUID, params UpdateContentItemParams) (ContentItem, error) {
	var item ContentItem
	err := s.db.GetContext(ctx, &item, sqlUpdateContentItem,
		itemID,
		companyID,
		params.Title,
		params.Body,
		params.Type,
		params.Status,
		optionalArray(params.Keywords),
		params.Tone,
		params.WordCount,
		params.ScheduledAt,
		params.PublishedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ContentItem{}, ErrNotFound
		}
		return ContentItem{}, fmt.Errorf("failed to update content item: %w", err)
	}
	return item, nil
}

const sqlDeleteContentItem = `
DELETE FROM content_items
WHERE id = $1 AND company_id = $2
`

// DeleteContentItem removes a content item owned by companyID
func (s *Store) DeleteContentItem(ctx context.Context, companyID, itemID uuid.UUID) error {
	res, err := s.db.ExecContext(ctx, sqlDeleteContentItem, itemID, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete content item: %w", err)
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
