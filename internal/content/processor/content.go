package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"marketing-server/internal/analysis/normalize"
	"marketing-server/internal/observability"
	"marketing-server/internal/store"

	"github.com/google/uuid"
)

type CreateContentParams struct {
	Title       string
	Body        string
	Type        string
	Status      string
	Keywords    []string
	Tone        string
	WordCount   *int
	ScheduledAt *time.Time
}

// UpdateContentParams is a partial update. Nil fields are left unchanged.
type UpdateContentParams struct {
	Title       *string
	Body        *string
	Type        *string
	Status      *string
	Keywords    []string
	Tone        *string
	WordCount   *int
	ScheduledAt *time.Time
}

func (p *ContentProcessor) ListContent(ctx context.Context, userID uuid.UUID) ([]store.ContentItem, error) {
	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return nil, err
	}

	items, err := p.store.GetContentItemsByCompany(ctx, company.ID)
	if err != nil {
		p.logger.Error(ctx, "failed to list content items", err)
		return nil, err
	}
	return items, nil
}

func (p *ContentProcessor) GetContent(ctx context.Context, userID, itemID uuid.UUID) (store.ContentItem, error) {
	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return store.ContentItem{}, err
	}

	item, err := p.store.GetContentItemByID(ctx, company.ID, itemID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ContentItem{}, ErrContentNotFound
		}
		p.logger.Error(ctx, "failed to get content item", err)
		return store.ContentItem{}, err
	}
	return item, nil
}

// CreateContent stores a content item. The word count is computed from the
// body unless the caller supplies one.
func (p *ContentProcessor) CreateContent(ctx context.Context, userID uuid.UUID, params CreateContentParams) (store.ContentItem, error) {
	status, err := parseStatus(params.Status)
	if err != nil {
		return store.ContentItem{}, err
	}

	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return store.ContentItem{}, err
	}

	wordCount := normalize.WordCount(params.Body)
	if params.WordCount != nil && *params.WordCount >= 0 {
		wordCount = *params.WordCount
	}

	var publishedAt *time.Time
	if status == store.ContentStatusPublished {
		now := p.now().UTC()
		publishedAt = &now
	}

	item, err := p.store.CreateContentItem(ctx, store.CreateContentItemParams{
		CompanyID:   company.ID,
		Title:       strings.TrimSpace(params.Title),
		Body:        params.Body,
		Type:        orDefault(params.Type, defaultContentType),
		Status:      status,
		Keywords:    params.Keywords,
		Tone:        params.Tone,
		WordCount:   wordCount,
		ScheduledAt: params.ScheduledAt,
		PublishedAt: publishedAt,
	})
	if err != nil {
		p.logger.Error(ctx, "failed to create content item", err)
		return store.ContentItem{}, persistenceFailed(err)
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "content_id", Value: item.ID.String()})
	p.logger.Info(ctx, "content item created")
	return item, nil
}

// UpdateContent applies a partial update. A new body without an explicit
// word count gets a recomputed one; the first move to published stamps
// published_at and later updates keep it.
func (p *ContentProcessor) UpdateContent(ctx context.Context, userID, itemID uuid.UUID, params UpdateContentParams) (store.ContentItem, error) {
	var status *store.ContentStatus
	if params.Status != nil {
		parsed, err := parseStatus(*params.Status)
		if err != nil {
			return store.ContentItem{}, err
		}
		status = &parsed
	}

	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return store.ContentItem{}, err
	}
	ctx = observability.WithFields(ctx, observability.Field{Key: "content_id", Value: itemID.String()})

	wordCount := params.WordCount
	if wordCount == nil && params.Body != nil {
		n := normalize.WordCount(*params.Body)
		wordCount = &n
	}

	var publishedAt *time.Time
	if status != nil && *status == store.ContentStatusPublished {
		now := p.now().UTC()
		publishedAt = &now
	}

	item, err := p.store.UpdateContentItem(ctx, company.ID, itemID, store.UpdateContentItemParams{
		Title:       params.Title,
		Body:        params.Body,
		Type:        params.Type,
		Status:      status,
		Keywords:    params.Keywords,
		Tone:        params.Tone,
		WordCount:   wordCount,
		ScheduledAt: params.ScheduledAt,
		PublishedAt: publishedAt,
	})
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return store.ContentItem{}, ErrContentNotFound
		}
		p.logger.Error(ctx, "failed to update content item", err)
		return store.ContentItem{}, persistenceFailed(err)
	}
	return item, nil
}

func (p *ContentProcessor) DeleteContent(ctx context.Context, userID, itemID uuid.UUID) error {
	ctx, company, err := p.loadCompany(ctx, userID)
	if err != nil {
		return err
	}

	if err := p.store.DeleteContentItem(ctx, company.ID, itemID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrContentNotFound
		}
		p.logger.Error(ctx, "failed to delete content item", err)
		return persistenceFailed(err)
	}
	return nil
}

func orDefault(s, fallback string) string {
	if strings.TrimSpace(s) == "" {
		return fallback
	}
	return s
}
